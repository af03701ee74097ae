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

// Package normalization canonicalizes raw contact fields into the comparable
// forms used by the matching cascade. Every function is pure and total: a
// malformed or empty input degrades to the empty string, never to an error.
package normalization

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CanonicalIdentity holds the normalized contact fields of a single record.
// An empty field means the record did not carry a usable value.
type CanonicalIdentity struct {
	Email   string
	Phone   string
	Name    string
	Address string
}

// NewIdentity normalizes all four contact fields of a record at once.
func NewIdentity(name, email, phone, address string) CanonicalIdentity {
	return CanonicalIdentity{
		Email:   NormalizeEmail(email),
		Phone:   NormalizePhone(phone),
		Name:    NormalizeName(name),
		Address: NormalizeAddress(address),
	}
}

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(raw string) string {
	return lower(strings.TrimSpace(raw))
}

// NormalizePhone strips everything except digits and a leading plus sign.
// Country codes are NOT reconciled: "+4512345678" and "12345678" stay
// distinct, so phone equality is a literal comparison of the kept characters.
func NormalizePhone(raw string) string {
	trimmed := strings.TrimSpace(raw)
	var b strings.Builder
	for i, r := range trimmed {
		if r == '+' && i == 0 {
			b.WriteRune(r)
			continue
		}
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	normalized := b.String()
	if normalized == "" || normalized == "+" {
		return ""
	}
	return normalized
}

// NormalizeName lowercases a person or company name, drops everything that is
// not a letter, digit or space and collapses repeated whitespace.
func NormalizeName(raw string) string {
	lowered := lower(raw)
	var b strings.Builder
	for _, r := range lowered {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return collapseWhitespace(b.String())
}

// NormalizeAddress lowercases an address, strips punctuation, removes
// four-digit postal-code tokens and collapses whitespace.
func NormalizeAddress(raw string) string {
	lowered := lower(raw)
	var b strings.Builder
	for _, r := range lowered {
		if unicode.IsPunct(r) {
			continue
		}
		b.WriteRune(r)
	}

	tokens := strings.Fields(b.String())
	kept := tokens[:0]
	for _, token := range tokens {
		if isPostalCode(token) {
			continue
		}
		kept = append(kept, token)
	}
	return strings.Join(kept, " ")
}

// lower performs Danish-aware case folding. The source data mixes Danish and
// plain ASCII contact fields.
func lower(s string) string {
	return cases.Lower(language.Danish).String(s)
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func isPostalCode(token string) bool {
	if len(token) != 4 {
		return false
	}
	for _, r := range token {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
