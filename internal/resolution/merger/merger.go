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

// Package merger applies one record to the profile store: it either merges
// the record into the matched profile or creates a new profile seeded from
// the record. Exactly one profile is touched per record, which is what keeps
// the conservation invariant trivial to audit.
package merger

import (
	"github.com/wso2/customer-resolution-service/internal/normalization"
	profilemodel "github.com/wso2/customer-resolution-service/internal/profile/model"
	"github.com/wso2/customer-resolution-service/internal/profile/store"
	recordmodel "github.com/wso2/customer-resolution-service/internal/records/model"
	"github.com/wso2/customer-resolution-service/internal/resolution/matcher"
	"github.com/wso2/customer-resolution-service/internal/servicedetails"
	"github.com/wso2/customer-resolution-service/internal/system/config"
)

// Merger mutates profiles in a single store on behalf of one resolution run.
type Merger struct {
	store *store.ProfileStore
	cfg   config.ResolutionConfig
}

// NewMerger creates a merger bound to the given per-run store.
func NewMerger(profiles *store.ProfileStore, cfg config.ResolutionConfig) *Merger {
	return &Merger{store: profiles, cfg: cfg}
}

// ApplyRecord attributes the record to a profile and returns the profile id.
// With a match it merges into that profile; without one it creates a new
// profile seeded from the record. Records with no identifying fields at all
// still produce a minimal profile so no input record is ever dropped.
func (m *Merger) ApplyRecord(rec recordmodel.RawRecord, identity normalization.CanonicalIdentity, match *matcher.Match) string {
	if match != nil {
		return m.merge(rec, identity, match.ProfileID)
	}
	return m.create(rec, identity)
}

func (m *Merger) merge(rec recordmodel.RawRecord, identity normalization.CanonicalIdentity, profileID string) string {
	profile, ok := m.store.Profile(profileID)
	if !ok {
		// A match can only reference a profile the store handed out.
		return m.create(rec, identity)
	}

	m.unionIdentifiers(profile, rec, identity)
	m.absorbPayload(profile, rec)

	if ts := rec.Timestamp(); ts.After(profile.LastActivity) {
		profile.LastActivity = ts
	}
	profile.Confidence = min(1.0, profile.Confidence+m.cfg.ConfidenceIncrement)
	profile.AddSource(rec.Source())
	profile.RecordCount++
	return profile.ID
}

func (m *Merger) create(rec recordmodel.RawRecord, identity normalization.CanonicalIdentity) string {
	profile := m.store.NewProfile()

	profile.DisplayName = displayName(rec, identity)
	profile.NormalizedName = identity.Name
	profile.Confidence = m.seedConfidence(rec.Source())
	profile.SourceTags = []recordmodel.Source{rec.Source()}
	profile.LastActivity = rec.Timestamp()
	profile.RecordCount = 1

	m.unionIdentifiers(profile, rec, identity)
	m.absorbPayload(profile, rec)
	return profile.ID
}

// unionIdentifiers adds every available normalized identifier to the profile
// sets and keeps the store indexes pointing at this profile.
func (m *Merger) unionIdentifiers(profile *profilemodel.CustomerProfile, rec recordmodel.RawRecord, identity normalization.CanonicalIdentity) {
	if identity.Email != "" {
		profile.Emails = appendUnique(profile.Emails, identity.Email)
		m.store.IndexEmail(identity.Email, profile.ID)
	}
	if identity.Phone != "" {
		profile.Phones = appendUnique(profile.Phones, identity.Phone)
		m.store.IndexPhone(identity.Phone, profile.ID)
	}
	if identity.Address != "" {
		profile.Addresses = appendUnique(profile.Addresses, identity.Address)
	}
	if invoice, ok := rec.(recordmodel.InvoiceRecord); ok && invoice.Company != "" {
		company := normalization.NormalizeName(invoice.Company)
		if company != "" {
			profile.Companies = appendUnique(profile.Companies, company)
		}
	}
}

// absorbPayload attaches the source-specific payload of the record.
func (m *Merger) absorbPayload(profile *profilemodel.CustomerProfile, rec recordmodel.RawRecord) {
	switch r := rec.(type) {
	case recordmodel.InvoiceRecord:
		if profile.ExternalInvoiceID == "" {
			profile.ExternalInvoiceID = r.InvoiceID
		}
	case recordmodel.BookingRecord:
		event := buildBookingEvent(r)
		profile.BookingEvents = append(profile.BookingEvents, event)
		profile.TotalBookings++
		if event.ServiceDetails.Type != "" {
			profile.ServiceTypesSeen = appendUnique(profile.ServiceTypesSeen, event.ServiceDetails.Type)
		}
	case recordmodel.EmailRecord:
		profile.CorrespondenceThreads = append(profile.CorrespondenceThreads, profilemodel.CorrespondenceThread{
			ThreadID: r.ThreadID,
			Subject:  r.Subject,
			Snippet:  r.Snippet,
			Email:    normalization.NormalizeEmail(r.Email),
		})
	}
}

func (m *Merger) seedConfidence(source recordmodel.Source) float64 {
	switch source {
	case recordmodel.SourceInvoicing:
		return 1.0
	case recordmodel.SourceCalendar:
		return m.cfg.CalendarSeedConfidence
	default:
		return m.cfg.EmailSeedConfidence
	}
}

func buildBookingEvent(r recordmodel.BookingRecord) profilemodel.BookingEvent {
	fullAddress := servicedetails.ExtractAddress(r.Description)
	if fullAddress == "" {
		fullAddress = r.Location
	}
	return profilemodel.BookingEvent{
		EventID:        r.EventID,
		Title:          r.Title,
		Date:           r.StartTime,
		Location:       r.Location,
		FullAddress:    fullAddress,
		ServiceDetails: servicedetails.Parse(r.Description),
	}
}

func displayName(rec recordmodel.RawRecord, identity normalization.CanonicalIdentity) string {
	var name string
	switch r := rec.(type) {
	case recordmodel.InvoiceRecord:
		name = r.ContactName
	case recordmodel.BookingRecord:
		name = r.Name
	case recordmodel.EmailRecord:
		name = r.Name
	}
	if name == "" {
		name = identity.Email
	}
	return name
}

func appendUnique(set []string, value string) []string {
	for _, existing := range set {
		if existing == value {
			return set
		}
	}
	return append(set, value)
}
