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

// Package microsyntax implements the legacy attribute value grammars
// from the [HTML Standard]: integers, non-negative integers,
// dimension values, legacy font sizes, and legacy colors.
//
// Every parser is a pure function of its input.
// Malformed values never cause a panic;
// they produce the fallback that the HTML Standard requires.
//
// [HTML Standard]: https://html.spec.whatwg.org/multipage/common-microsyntaxes.html
package microsyntax

import "strings"

// IsHTMLSpace reports whether c is one of the five [ASCII whitespace] characters
// HTML uses in attribute values:
// U+0020 SPACE, U+0009 TAB, U+000A LF, U+000C FF, or U+000D CR.
// It does not include any other Unicode white space.
//
// [ASCII whitespace]: https://infra.spec.whatwg.org/#ascii-whitespace
func IsHTMLSpace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\f' || c == '\r'
}

// IsWhitespace reports whether s consists only of HTML space characters.
// The empty string is considered whitespace.
func IsWhitespace(s string) bool {
	for i := 0; i < len(s); i++ {
		if !IsHTMLSpace(rune(s[i])) {
			return false
		}
	}
	return true
}

// TrimHTMLSpace returns s with all leading and trailing HTML space characters removed.
func TrimHTMLSpace(s string) string {
	return strings.TrimFunc(s, IsHTMLSpace)
}

// TrimLeftHTMLSpace returns s with all leading HTML space characters removed.
func TrimLeftHTMLSpace(s string) string {
	return strings.TrimLeftFunc(s, IsHTMLSpace)
}

// SplitHTMLSpace splits s around each run of HTML space characters.
// Empty fields are omitted, so the result is nil if s is whitespace.
func SplitHTMLSpace(s string) []string {
	if f := strings.FieldsFunc(s, IsHTMLSpace); len(f) > 0 {
		return f
	}
	return nil
}

func isASCIIDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
