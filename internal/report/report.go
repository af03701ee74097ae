/*
 * Copyright (c) 2026, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package report summarizes a finished resolution run for the downstream
// reporting and analytics collaborators. It only reads the profile
// collection; data-quality concerns (low confidence, single-source profiles)
// are surfaced here rather than raised as errors by the pipeline.
package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/wso2/customer-resolution-service/internal/profile/model"
)

// highConfidenceFloor is the confidence at or above which a profile is
// counted as strongly corroborated in the summary.
const highConfidenceFloor = 0.9

// Summary aggregates a resolution run.
type Summary struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`

	TotalRecords  int `json:"total_records"`
	TotalProfiles int `json:"total_profiles"`

	CompleteProfiles     int `json:"complete_profiles"`
	PartialProfiles      int `json:"partial_profiles"`
	SingleSourceProfiles int `json:"single_source_profiles"`

	WithEmail   int `json:"with_email"`
	WithPhone   int `json:"with_phone"`
	WithAddress int `json:"with_address"`

	HighConfidence int `json:"high_confidence"`
	LowConfidence  int `json:"low_confidence"`

	TotalBookings int `json:"total_bookings"`
	TotalThreads  int `json:"total_threads"`
}

// Build computes the summary of a profile collection.
func Build(profiles []*model.CustomerProfile) Summary {
	summary := Summary{
		RunID:         uuid.NewString(),
		GeneratedAt:   time.Now().UTC(),
		TotalProfiles: len(profiles),
	}

	for _, profile := range profiles {
		summary.TotalRecords += profile.RecordCount
		summary.TotalBookings += profile.TotalBookings
		summary.TotalThreads += len(profile.CorrespondenceThreads)

		switch len(profile.SourceTags) {
		case 3:
			summary.CompleteProfiles++
		case 2:
			summary.PartialProfiles++
		default:
			summary.SingleSourceProfiles++
		}

		if len(profile.Emails) > 0 {
			summary.WithEmail++
		}
		if len(profile.Phones) > 0 {
			summary.WithPhone++
		}
		if len(profile.Addresses) > 0 {
			summary.WithAddress++
		}

		if profile.Confidence >= highConfidenceFloor {
			summary.HighConfidence++
		} else {
			summary.LowConfidence++
		}
	}
	return summary
}

// Render formats the summary as a human-readable table.
func (s Summary) Render() string {
	t := table.NewWriter()
	t.SetTitle(fmt.Sprintf("Resolution run %s", s.RunID))
	t.AppendRows([]table.Row{
		{"Input records", s.TotalRecords},
		{"Unified profiles", s.TotalProfiles},
		{"Complete (3 sources)", s.CompleteProfiles},
		{"Partial (2 sources)", s.PartialProfiles},
		{"Single source", s.SingleSourceProfiles},
	})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"With email", s.WithEmail},
		{"With phone", s.WithPhone},
		{"With address", s.WithAddress},
	})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"High confidence (>= 90%)", s.HighConfidence},
		{"Low confidence", s.LowConfidence},
		{"Bookings tracked", s.TotalBookings},
		{"Email threads tracked", s.TotalThreads},
	})
	return t.Render()
}
