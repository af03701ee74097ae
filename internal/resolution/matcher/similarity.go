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

import "strings"

// AddressSimilarity scores two normalized addresses: 1.0 when equal, 0.8 when
// one contains the other, 0.6 when only the leading street-name token agrees,
// 0 otherwise.
func AddressSimilarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1.0
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return 0.8
	}

	streetA := firstToken(a)
	streetB := firstToken(b)
	if streetA != "" && streetA == streetB {
		return 0.6
	}
	return 0
}

// NameSimilarity scores two normalized names: 1.0 when equal, the length
// ratio when one contains the other, otherwise the fraction of shared tokens
// longer than two characters over the larger token count.
func NameSimilarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1.0
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return lengthRatio(a, b)
	}

	tokensA := strings.Fields(a)
	tokensB := strings.Fields(b)
	shared := 0
	for _, token := range tokensA {
		if len([]rune(token)) <= 2 {
			continue
		}
		if containsToken(tokensB, token) {
			shared++
		}
	}
	if shared == 0 {
		return 0
	}
	return float64(shared) / float64(max(len(tokensA), len(tokensB)))
}

func lengthRatio(a, b string) float64 {
	lenA := len([]rune(a))
	lenB := len([]rune(b))
	return float64(min(lenA, lenB)) / float64(max(lenA, lenB))
}

func firstToken(s string) string {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i]
	}
	return s
}

func containsToken(tokens []string, token string) bool {
	for _, t := range tokens {
		if t == token {
			return true
		}
	}
	return false
}
