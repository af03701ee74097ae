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

package normalization

import "testing"

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "lowercases", input: "John@X.com", expected: "john@x.com"},
		{name: "trims whitespace", input: "  anna@example.dk \n", expected: "anna@example.dk"},
		{name: "empty input", input: "", expected: ""},
		{name: "whitespace only", input: "   ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeEmail(tt.input); got != tt.expected {
				t.Errorf("NormalizeEmail(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "strips spaces keeps plus", input: "+45 12 34 56 78", expected: "+4512345678"},
		{name: "plain digits", input: "12345678", expected: "12345678"},
		{name: "parentheses and dashes", input: "(45) 12-34-56-78", expected: "4512345678"},
		{name: "plus only at start", input: "12+345678", expected: "12345678"},
		{name: "leading whitespace before plus", input: "  +45 11 22 33 44", expected: "+4511223344"},
		{name: "letters only", input: "ukendt", expected: ""},
		{name: "bare plus", input: "+", expected: ""},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePhone(tt.input); got != tt.expected {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

// Country codes are intentionally not reconciled: "+4512345678" and
// "12345678" must stay distinct so phone equality is literal.
func TestNormalizePhone_CountryCodeNotStripped(t *testing.T) {
	withCode := NormalizePhone("+45 12 34 56 78")
	withoutCode := NormalizePhone("12345678")
	if withCode == withoutCode {
		t.Errorf("expected %q and %q to differ", withCode, withoutCode)
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "lowercase and collapse", input: "  Anna   Hansen ", expected: "anna hansen"},
		{name: "punctuation stripped", input: "O'Brien, Jens-Peter", expected: "obrien jenspeter"},
		{name: "danish letters kept", input: "Søren Kjærgaard", expected: "søren kjærgaard"},
		{name: "digits kept", input: "Firma 2000 ApS", expected: "firma 2000 aps"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeName(tt.input); got != tt.expected {
				t.Errorf("NormalizeName(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeAddress(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "postal code removed",
			input:    "Nørrebrogade 123, 2200 København",
			expected: "nørrebrogade 123 københavn",
		},
		{
			name:     "street number kept",
			input:    "Åboulevarden 70, Aarhus",
			expected: "åboulevarden 70 aarhus",
		},
		{
			name:     "already normalized",
			input:    "nørrebrogade 123",
			expected: "nørrebrogade 123",
		},
		{
			name:     "punctuation and whitespace",
			input:    "  Vestergade 1.,  8000   Aarhus C ",
			expected: "vestergade 1 aarhus c",
		},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeAddress(tt.input); got != tt.expected {
				t.Errorf("NormalizeAddress(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNewIdentity(t *testing.T) {
	identity := NewIdentity(" Anna Hansen ", "Anna@Example.dk", "+45 12 34 56 78", "Nørrebrogade 123, 2200 København")

	if identity.Name != "anna hansen" {
		t.Errorf("Name = %q", identity.Name)
	}
	if identity.Email != "anna@example.dk" {
		t.Errorf("Email = %q", identity.Email)
	}
	if identity.Phone != "+4512345678" {
		t.Errorf("Phone = %q", identity.Phone)
	}
	if identity.Address != "nørrebrogade 123 københavn" {
		t.Errorf("Address = %q", identity.Address)
	}
}
