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

package model

import (
	"time"

	recordmodel "github.com/wso2/customer-resolution-service/internal/records/model"
	"github.com/wso2/customer-resolution-service/internal/servicedetails"
)

// BookingEvent is one calendar booking attributed to a profile, with the
// service details parsed from its description.
type BookingEvent struct {
	EventID        string                        `json:"event_id"`
	Title          string                        `json:"title,omitempty"`
	Date           time.Time                     `json:"date"`
	Location       string                        `json:"location,omitempty"`
	FullAddress    string                        `json:"full_address,omitempty"`
	ServiceDetails servicedetails.ServiceDetails `json:"service_details"`
}

// CorrespondenceThread is one email thread attributed to a profile.
type CorrespondenceThread struct {
	ThreadID string `json:"thread_id"`
	Subject  string `json:"subject,omitempty"`
	Snippet  string `json:"snippet,omitempty"`
	Email    string `json:"email,omitempty"`
}

// CustomerProfile is one resolved customer. The identifier sets hold only
// normalized values in first-seen order; duplicates are never stored twice.
type CustomerProfile struct {
	ID             string `json:"profile_id"`
	DisplayName    string `json:"display_name"`
	NormalizedName string `json:"normalized_name"`

	Emails    []string `json:"emails,omitempty"`
	Phones    []string `json:"phones,omitempty"`
	Addresses []string `json:"addresses,omitempty"`
	Companies []string `json:"companies,omitempty"`

	ExternalInvoiceID     string                 `json:"external_invoice_id,omitempty"`
	BookingEvents         []BookingEvent         `json:"booking_events,omitempty"`
	CorrespondenceThreads []CorrespondenceThread `json:"correspondence_threads,omitempty"`

	SourceTags       []recordmodel.Source `json:"source_tags"`
	Confidence       float64              `json:"confidence"`
	TotalBookings    int                  `json:"total_bookings"`
	RecordCount      int                  `json:"record_count"`
	ServiceTypesSeen []string             `json:"service_types_seen,omitempty"`
	LastActivity     time.Time            `json:"last_activity,omitzero"`
}

// HasSource reports whether the profile has absorbed a record from the given
// source.
func (p *CustomerProfile) HasSource(source recordmodel.Source) bool {
	for _, tag := range p.SourceTags {
		if tag == source {
			return true
		}
	}
	return false
}

// AddSource appends a source tag if it is not already present.
func (p *CustomerProfile) AddSource(source recordmodel.Source) {
	if !p.HasSource(source) {
		p.SourceTags = append(p.SourceTags, source)
	}
}
