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

package loader

import (
	"regexp"
	"strings"

	recordmodel "github.com/wso2/customer-resolution-service/internal/records/model"
)

// Lead-mail bodies carry the customer's contact data as labelled lines
// (Navn:, Adresse:, Tlf:/Telefon:/Mobil:, E-mail:) rather than in the thread
// headers.
var (
	bodyEmailPattern   = regexp.MustCompile(`(?i)E-?mail:?\s*([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`)
	bodyPhonePattern   = regexp.MustCompile(`(?i)(?:Tlf|Telefon|Mobil)\.?:?\s*([\d\s+()-]{8,})`)
	bodyNamePattern    = regexp.MustCompile(`(?i)Navn:?\s*([^\n\r]+)`)
	bodyAddressPattern = regexp.MustCompile(`(?i)Adresse:?\s*([^\n\r]+)`)
)

// fillFromBody recovers missing contact fields from the thread snippet.
// Fields already present on the record are left untouched.
func fillFromBody(rec *recordmodel.EmailRecord) {
	if rec.Snippet == "" {
		return
	}

	if rec.Email == "" {
		if m := bodyEmailPattern.FindStringSubmatch(rec.Snippet); m != nil {
			rec.Email = strings.TrimSpace(m[1])
		}
	}
	if rec.Phone == "" {
		if m := bodyPhonePattern.FindStringSubmatch(rec.Snippet); m != nil {
			rec.Phone = strings.TrimSpace(m[1])
		}
	}
	if rec.Name == "" {
		if m := bodyNamePattern.FindStringSubmatch(rec.Snippet); m != nil {
			rec.Name = strings.TrimSpace(m[1])
		}
	}
	if rec.Address == "" {
		if m := bodyAddressPattern.FindStringSubmatch(rec.Snippet); m != nil {
			rec.Address = strings.TrimSpace(m[1])
		}
	}
}
