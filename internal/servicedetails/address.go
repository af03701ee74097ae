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

package servicedetails

import (
	"regexp"
	"strings"
)

// addressPatterns are tried in order: an explicit address label first, then a
// Danish street-name heuristic (capitalised word ending in a street suffix).
var addressPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:Adr|Adresse|Lokation)[:-]?\s*([^\n]+)`),
	regexp.MustCompile(`([A-ZÆØÅ][\wæøå]+(?:vej|gade|alle|plads|vænget|stræde|bro)[^\n,]{0,30})`),
}

// ExtractAddress pulls a service address out of a booking description.
// Returns the empty string when no pattern applies.
func ExtractAddress(description string) string {
	for _, pattern := range addressPatterns {
		if m := pattern.FindStringSubmatch(description); m != nil {
			return strings.Join(strings.Fields(m[1]), " ")
		}
	}
	return ""
}
