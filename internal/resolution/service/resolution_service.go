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

// Package service orchestrates the resolution pipeline: seed profiles from
// the authoritative source, then enrich them from the remaining sources in
// priority order. One pass, no backtracking: once a record lands in a
// profile it is never reconsidered against a different profile.
package service

import (
	"github.com/wso2/customer-resolution-service/internal/normalization"
	profilemodel "github.com/wso2/customer-resolution-service/internal/profile/model"
	"github.com/wso2/customer-resolution-service/internal/profile/store"
	recordmodel "github.com/wso2/customer-resolution-service/internal/records/model"
	"github.com/wso2/customer-resolution-service/internal/resolution/matcher"
	"github.com/wso2/customer-resolution-service/internal/resolution/merger"
	"github.com/wso2/customer-resolution-service/internal/servicedetails"
	"github.com/wso2/customer-resolution-service/internal/system/config"
	"github.com/wso2/customer-resolution-service/internal/system/log"
)

// ResolutionServiceInterface defines the interface for the resolution service.
type ResolutionServiceInterface interface {
	Resolve(sources [][]recordmodel.RawRecord) []*profilemodel.CustomerProfile
}

// ResolutionService is the default implementation of the
// ResolutionServiceInterface.
type ResolutionService struct {
	cfg config.ResolutionConfig
}

// GetResolutionService creates a resolution service with the given
// configuration.
func GetResolutionService(cfg config.ResolutionConfig) ResolutionServiceInterface {

	return &ResolutionService{cfg: cfg}
}

// Resolve collapses the given per-source record batches into unified customer
// profiles. sources must be ordered by priority with the authoritative source
// first. Each call owns a fresh profile store, so independent runs never
// contaminate each other; given identical input the output is identical.
func (rs *ResolutionService) Resolve(sources [][]recordmodel.RawRecord) []*profilemodel.CustomerProfile {
	logger := log.GetLogger()

	profiles := store.NewProfileStore()
	match := matcher.NewMatcher(rs.cfg)
	merge := merger.NewMerger(profiles, rs.cfg)

	if len(sources) == 0 {
		return nil
	}

	// Seed: every authoritative record becomes its own profile.
	for _, rec := range sources[0] {
		identity := Canonicalize(rec)
		merge.ApplyRecord(rec, identity, nil)
	}
	logger.Info("Seeded profiles from authoritative source",
		log.Int("records", len(sources[0])),
		log.Int("profiles", profiles.Count()))

	// Enrich: remaining sources in priority order, merge-or-create.
	for _, batch := range sources[1:] {
		merged, created := 0, 0
		var source recordmodel.Source
		for _, rec := range batch {
			source = rec.Source()
			identity := Canonicalize(rec)
			if found, ok := match.FindMatch(identity, profiles); ok {
				merge.ApplyRecord(rec, identity, &found)
				merged++
				logger.Debug("Merged record into existing profile",
					log.String("source", string(source)),
					log.String("profile_id", found.ProfileID),
					log.String("rule", string(found.Rule)),
					log.Float64("score", found.Score))
			} else {
				merge.ApplyRecord(rec, identity, nil)
				created++
			}
		}
		logger.Info("Enriched profiles from source",
			log.String("source", string(source)),
			log.Int("merged", merged),
			log.Int("created", created))
	}

	return profiles.Profiles()
}

// Canonicalize builds the comparable identity of a record. For bookings the
// address is taken from the free-text description when present, falling back
// to the structured event location.
func Canonicalize(rec recordmodel.RawRecord) normalization.CanonicalIdentity {
	switch r := rec.(type) {
	case recordmodel.InvoiceRecord:
		return normalization.NewIdentity(r.ContactName, r.ContactEmail, r.ContactPhone, "")
	case recordmodel.BookingRecord:
		address := servicedetails.ExtractAddress(r.Description)
		if address == "" {
			address = r.Location
		}
		return normalization.NewIdentity(r.Name, r.Email, r.Phone, address)
	case recordmodel.EmailRecord:
		return normalization.NewIdentity(r.Name, r.Email, r.Phone, r.Address)
	default:
		return normalization.CanonicalIdentity{}
	}
}
