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

package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wso2/customer-resolution-service/internal/normalization"
	"github.com/wso2/customer-resolution-service/internal/profile/store"
	"github.com/wso2/customer-resolution-service/internal/system/config"
)

func newTestMatcher() *Matcher {
	return NewMatcher(config.DefaultConfig().Resolution)
}

func TestFindMatch_ExactEmail(t *testing.T) {
	profiles := store.NewProfileStore()
	profile := profiles.NewProfile()
	profile.Emails = []string{"john@x.com"}
	profiles.IndexEmail("john@x.com", profile.ID)

	match, ok := newTestMatcher().FindMatch(normalization.CanonicalIdentity{Email: "john@x.com"}, profiles)
	require.True(t, ok)
	assert.Equal(t, profile.ID, match.ProfileID)
	assert.Equal(t, RuleEmail, match.Rule)
	assert.Equal(t, 1.0, match.Score)
}

func TestFindMatch_ExactPhone(t *testing.T) {
	profiles := store.NewProfileStore()
	profile := profiles.NewProfile()
	profile.Phones = []string{"+4512345678"}
	profiles.IndexPhone("+4512345678", profile.ID)

	match, ok := newTestMatcher().FindMatch(normalization.CanonicalIdentity{Phone: "+4512345678"}, profiles)
	require.True(t, ok)
	assert.Equal(t, profile.ID, match.ProfileID)
	assert.Equal(t, RulePhone, match.Rule)
	assert.Equal(t, 0.95, match.Score)
}

// Phone equality is literal: a number stored with a country code never
// matches the same number without one.
func TestFindMatch_PhoneCountryCodeMismatch(t *testing.T) {
	profiles := store.NewProfileStore()
	profile := profiles.NewProfile()
	profiles.IndexPhone("+4512345678", profile.ID)

	_, ok := newTestMatcher().FindMatch(normalization.CanonicalIdentity{Phone: "12345678"}, profiles)
	assert.False(t, ok)
}

func TestFindMatch_EmailPreemptsPhone(t *testing.T) {
	profiles := store.NewProfileStore()
	byEmail := profiles.NewProfile()
	profiles.IndexEmail("anna@example.dk", byEmail.ID)
	byPhone := profiles.NewProfile()
	profiles.IndexPhone("12345678", byPhone.ID)

	identity := normalization.CanonicalIdentity{Email: "anna@example.dk", Phone: "12345678"}
	match, ok := newTestMatcher().FindMatch(identity, profiles)
	require.True(t, ok)
	assert.Equal(t, byEmail.ID, match.ProfileID)
	assert.Equal(t, RuleEmail, match.Rule)
}

func TestFindMatch_AddressSimilarity(t *testing.T) {
	profiles := store.NewProfileStore()
	profile := profiles.NewProfile()
	profile.Addresses = []string{"nørrebrogade 123 københavn"}

	identity := normalization.CanonicalIdentity{Address: "nørrebrogade 123"}
	match, ok := newTestMatcher().FindMatch(identity, profiles)
	require.True(t, ok)
	assert.Equal(t, profile.ID, match.ProfileID)
	assert.Equal(t, RuleAddress, match.Rule)
	assert.InDelta(t, 0.8, match.Score, 1e-9)
}

// The street-token heuristic scores 0.6, below the 0.7 acceptance threshold.
func TestFindMatch_AddressBelowThreshold(t *testing.T) {
	profiles := store.NewProfileStore()
	profile := profiles.NewProfile()
	profile.Addresses = []string{"nørrebrogade 200"}
	profile.NormalizedName = "et helt andet navn"

	identity := normalization.CanonicalIdentity{Address: "nørrebrogade 123"}
	_, ok := newTestMatcher().FindMatch(identity, profiles)
	assert.False(t, ok)
}

func TestFindMatch_NameFallback(t *testing.T) {
	profiles := store.NewProfileStore()
	profile := profiles.NewProfile()
	profile.NormalizedName = "anna hansen"

	identity := normalization.CanonicalIdentity{Name: "anna hansen"}
	match, ok := newTestMatcher().FindMatch(identity, profiles)
	require.True(t, ok)
	assert.Equal(t, profile.ID, match.ProfileID)
	assert.Equal(t, RuleName, match.Rule)
	assert.Equal(t, 1.0, match.Score)
}

func TestFindMatch_NameBelowThreshold(t *testing.T) {
	profiles := store.NewProfileStore()
	profile := profiles.NewProfile()
	profile.NormalizedName = "anna kjær nielsen"

	identity := normalization.CanonicalIdentity{Name: "anna hansen"}
	_, ok := newTestMatcher().FindMatch(identity, profiles)
	assert.False(t, ok)
}

// Ties at the same maximal score resolve to the profile created first, i.e.
// the smallest id.
func TestFindMatch_TieBreaksToSmallestID(t *testing.T) {
	profiles := store.NewProfileStore()
	first := profiles.NewProfile()
	first.NormalizedName = "anna hansen"
	second := profiles.NewProfile()
	second.NormalizedName = "anna hansen"

	identity := normalization.CanonicalIdentity{Name: "anna hansen"}
	match, ok := newTestMatcher().FindMatch(identity, profiles)
	require.True(t, ok)
	assert.Equal(t, first.ID, match.ProfileID)
}

func TestFindMatch_NoSignal(t *testing.T) {
	profiles := store.NewProfileStore()
	profile := profiles.NewProfile()
	profile.NormalizedName = "anna hansen"
	profile.Addresses = []string{"vestergade 4"}

	_, ok := newTestMatcher().FindMatch(normalization.CanonicalIdentity{}, profiles)
	assert.False(t, ok)
}

func TestFindMatch_EmptyStore(t *testing.T) {
	profiles := store.NewProfileStore()
	identity := normalization.CanonicalIdentity{Email: "john@x.com", Name: "john"}
	_, ok := newTestMatcher().FindMatch(identity, profiles)
	assert.False(t, ok)
}
