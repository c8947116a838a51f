// Copyright 2026 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package microsyntax

// tokenOctets reports which bytes may appear in an RFC 2616 token:
//
//	token      = 1*<any CHAR except CTLs or separators>
//	separators = "(" | ")" | "<" | ">" | "@"
//	           | "," | ";" | ":" | "\" | <">
//	           | "/" | "[" | "]" | "?" | "="
//	           | "{" | "}" | SP | HT
var tokenOctets [256]bool

func init() {
	for c := 0x21; c < 0x7f; c++ {
		switch c {
		case '(', ')', '<', '>', '@', ',', ';', ':', '\\', '"', '/', '[', ']', '?', '=', '{', '}':
		default:
			tokenOctets[c] = true
		}
	}
}

// IsToken reports whether b is a token
// as defined by [RFC 2616 section 2.2].
// The empty sequence is not a token.
//
// [RFC 2616 section 2.2]: https://www.rfc-editor.org/rfc/rfc2616#section-2.2
func IsToken(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	for _, c := range b {
		if !tokenOctets[c] {
			return false
		}
	}
	return true
}
