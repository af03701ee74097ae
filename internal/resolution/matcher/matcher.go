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

// Package matcher finds the best existing profile for an incoming record via
// an ordered cascade of identifier comparisons. The matcher only reads from
// the profile store; it never mutates it.
package matcher

import (
	"github.com/wso2/customer-resolution-service/internal/normalization"
	"github.com/wso2/customer-resolution-service/internal/profile/model"
	"github.com/wso2/customer-resolution-service/internal/profile/store"
	"github.com/wso2/customer-resolution-service/internal/system/config"
)

// Rule names the cascade rule that produced a match.
type Rule string

const (
	RuleEmail   Rule = "email"
	RulePhone   Rule = "phone"
	RuleAddress Rule = "address"
	RuleName    Rule = "name"
)

// Match is an accepted candidate from the cascade.
type Match struct {
	ProfileID string
	Score     float64
	Rule      Rule
}

// Matcher evaluates the cascade with the thresholds it was constructed with.
type Matcher struct {
	cfg config.ResolutionConfig
}

// NewMatcher creates a matcher using the given resolution thresholds.
func NewMatcher(cfg config.ResolutionConfig) *Matcher {
	return &Matcher{cfg: cfg}
}

// FindMatch runs the cascade in strict priority order: exact email, exact
// phone, address similarity, name similarity. The first rule that yields a
// candidate at or above its threshold wins and later rules are not tried.
// Fallback rules scan profiles in insertion order and keep only strictly
// better scores, so ties resolve to the smallest profile id.
func (m *Matcher) FindMatch(identity normalization.CanonicalIdentity, profiles *store.ProfileStore) (Match, bool) {
	if identity.Email != "" {
		if id, ok := profiles.ProfileIDByEmail(identity.Email); ok {
			return Match{ProfileID: id, Score: 1.0, Rule: RuleEmail}, true
		}
	}

	if identity.Phone != "" {
		if id, ok := profiles.ProfileIDByPhone(identity.Phone); ok {
			return Match{ProfileID: id, Score: 0.95, Rule: RulePhone}, true
		}
	}

	if identity.Address != "" {
		if match, ok := m.bestByAddress(identity.Address, profiles); ok {
			return match, true
		}
	}

	if identity.Name != "" {
		if match, ok := m.bestByName(identity.Name, profiles); ok {
			return match, true
		}
	}

	return Match{}, false
}

func (m *Matcher) bestByAddress(address string, profiles *store.ProfileStore) (Match, bool) {
	best := Match{Rule: RuleAddress}
	for _, profile := range profiles.Profiles() {
		score := profileAddressSimilarity(address, profile)
		if score > best.Score {
			best.Score = score
			best.ProfileID = profile.ID
		}
	}
	if best.ProfileID == "" || best.Score < m.cfg.AddressMatchThreshold {
		return Match{}, false
	}
	return best, true
}

func (m *Matcher) bestByName(name string, profiles *store.ProfileStore) (Match, bool) {
	best := Match{Rule: RuleName}
	for _, profile := range profiles.Profiles() {
		score := NameSimilarity(name, profile.NormalizedName)
		if score > best.Score {
			best.Score = score
			best.ProfileID = profile.ID
		}
	}
	if best.ProfileID == "" || best.Score < m.cfg.NameMatchThreshold {
		return Match{}, false
	}
	return best, true
}

func profileAddressSimilarity(address string, profile *model.CustomerProfile) float64 {
	best := 0.0
	for _, stored := range profile.Addresses {
		if score := AddressSimilarity(address, stored); score > best {
			best = score
		}
	}
	return best
}
