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

// Package servicedetails extracts structured booking attributes from the
// free-text descriptions the booking calendar carries. Parsing is best
// effort: a field whose pattern does not appear is simply left empty, and no
// input ever fails the containing record.
package servicedetails

import (
	"regexp"
	"strings"
)

// ServiceDetails holds the structured attributes parsed from one booking
// description. Every field is independently optional.
type ServiceDetails struct {
	Type                string   `json:"type,omitempty"`
	PropertySize        string   `json:"property_size,omitempty"`
	TimeEstimate        string   `json:"time_estimate,omitempty"`
	Price               string   `json:"price,omitempty"`
	RoomCount           string   `json:"room_count,omitempty"`
	ServiceChecklist    []string `json:"service_checklist,omitempty"`
	AccessCode          string   `json:"access_code,omitempty"`
	SpecialInstructions string   `json:"special_instructions,omitempty"`
}

// extractor fills exactly one field of ServiceDetails. Each extractor is
// independent of the others so the cascade can be tested field by field.
type extractor func(description, lowered string, details *ServiceDetails)

var extractors = []extractor{
	extractType,
	extractPropertySize,
	extractTimeEstimate,
	extractPrice,
	extractRoomCount,
	extractChecklist,
	extractAccessCode,
	extractSpecialInstructions,
}

// Parse runs every field extractor over the description. It never fails;
// an empty or unparseable description yields zero-valued details.
func Parse(description string) ServiceDetails {
	details := ServiceDetails{}
	lowered := strings.ToLower(description)
	for _, extract := range extractors {
		extract(description, lowered, &details)
	}
	return details
}

// serviceTypeKeywords maps a lowercase keyword to the canonical service type
// label. Ordered: the first keyword found wins.
var serviceTypeKeywords = []struct {
	keyword string
	label   string
}{
	{"flytterengøring", "Flytterengøring"},
	{"hovedrengøring", "Hovedrengøring"},
	{"fast rengøring", "Fast Rengøring"},
	{"restaurant", "Restaurant Rengøring"},
	{"erhverv", "Erhvervsrengøring"},
}

func extractType(_, lowered string, details *ServiceDetails) {
	for _, entry := range serviceTypeKeywords {
		if strings.Contains(lowered, entry.keyword) {
			details.Type = entry.label
			return
		}
	}
}

var propertySizePattern = regexp.MustCompile(`(?i)(\d+)\s*m²`)

func extractPropertySize(description, _ string, details *ServiceDetails) {
	if m := propertySizePattern.FindStringSubmatch(description); m != nil {
		details.PropertySize = m[1] + " m²"
	}
}

var timeEstimatePattern = regexp.MustCompile(`(?i)(\d+(?:-\d+)?)\s*timer`)

func extractTimeEstimate(description, _ string, details *ServiceDetails) {
	if m := timeEstimatePattern.FindStringSubmatch(description); m != nil {
		details.TimeEstimate = m[1] + " timer"
	}
}

var pricePattern = regexp.MustCompile(`(?i)(\d+[.,]?\d*)\s*kr`)

func extractPrice(description, _ string, details *ServiceDetails) {
	if m := pricePattern.FindStringSubmatch(description); m != nil {
		details.Price = m[1] + " kr"
	}
}

var roomCountPattern = regexp.MustCompile(`(?i)(\d+)\s*rum`)

func extractRoomCount(description, _ string, details *ServiceDetails) {
	if m := roomCountPattern.FindStringSubmatch(description); m != nil {
		details.RoomCount = m[1] + " rum"
	}
}

// checklistKeywords maps substring occurrences to checklist entries. Several
// may match the same description.
var checklistKeywords = []struct {
	keyword string
	label   string
}{
	{"vindues", "Vinduespudsning"},
	{"gulv", "Gulvvask"},
	{"køkken", "Køkken"},
	{"bad", "Badeværelse"},
	{"støvsug", "Støvsugning"},
}

func extractChecklist(_, lowered string, details *ServiceDetails) {
	for _, entry := range checklistKeywords {
		if strings.Contains(lowered, entry.keyword) {
			details.ServiceChecklist = append(details.ServiceChecklist, entry.label)
		}
	}
}

var accessCodePattern = regexp.MustCompile(`(?i)kode[:\s]*(\d+)`)

func extractAccessCode(description, _ string, details *ServiceDetails) {
	if m := accessCodePattern.FindStringSubmatch(description); m != nil {
		details.AccessCode = m[1]
	}
}

// specialInstructionPhrases is the small fixed set of known instruction
// patterns. First match wins.
var specialInstructionPhrases = []struct {
	keyword string
	label   string
}{
	{"ingen sulfo", "Ingen sulfo på trægulve"},
	{"svanemærket", "Svanemærkede produkter"},
}

func extractSpecialInstructions(_, lowered string, details *ServiceDetails) {
	for _, entry := range specialInstructionPhrases {
		if strings.Contains(lowered, entry.keyword) {
			details.SpecialInstructions = entry.label
			return
		}
	}
}
