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

// Package store holds the per-run profile collection. A ProfileStore is owned
// by exactly one resolution run and is never shared across runs; profiles are
// only created or mutated, never deleted, and iteration follows insertion
// order so matching stays deterministic.
package store

import (
	"fmt"

	"github.com/wso2/customer-resolution-service/internal/profile/model"
)

// ProfileStore is the in-memory profile collection of one resolution run,
// with exact-match indexes over normalized emails and phones.
type ProfileStore struct {
	profiles []*model.CustomerProfile
	byID     map[string]*model.CustomerProfile

	emailIndex map[string]string
	phoneIndex map[string]string

	nextID int
}

// NewProfileStore creates an empty store.
func NewProfileStore() *ProfileStore {
	return &ProfileStore{
		byID:       make(map[string]*model.CustomerProfile),
		emailIndex: make(map[string]string),
		phoneIndex: make(map[string]string),
		nextID:     1,
	}
}

// NewProfile creates, registers and returns an empty profile with the next
// sequential id. Ids are stable within a run and never reused.
func (s *ProfileStore) NewProfile() *model.CustomerProfile {
	profile := &model.CustomerProfile{
		ID: fmt.Sprintf("PROFILE_%04d", s.nextID),
	}
	s.nextID++
	s.profiles = append(s.profiles, profile)
	s.byID[profile.ID] = profile
	return profile
}

// Profile returns the profile with the given id.
func (s *ProfileStore) Profile(id string) (*model.CustomerProfile, bool) {
	profile, ok := s.byID[id]
	return profile, ok
}

// Profiles returns all profiles in insertion order. Callers must not reorder
// the returned slice.
func (s *ProfileStore) Profiles() []*model.CustomerProfile {
	return s.profiles
}

// Count returns the number of profiles in the store.
func (s *ProfileStore) Count() int {
	return len(s.profiles)
}

// ProfileIDByEmail resolves a normalized email to a profile id.
func (s *ProfileStore) ProfileIDByEmail(email string) (string, bool) {
	id, ok := s.emailIndex[email]
	return id, ok
}

// ProfileIDByPhone resolves a normalized phone to a profile id.
func (s *ProfileStore) ProfileIDByPhone(phone string) (string, bool) {
	id, ok := s.phoneIndex[phone]
	return id, ok
}

// IndexEmail points a normalized email at a profile id.
func (s *ProfileStore) IndexEmail(email, profileID string) {
	if email != "" {
		s.emailIndex[email] = profileID
	}
}

// IndexPhone points a normalized phone at a profile id.
func (s *ProfileStore) IndexPhone(phone, profileID string) {
	if phone != "" {
		s.phoneIndex[phone] = profileID
	}
}
