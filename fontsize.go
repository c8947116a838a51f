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

import "strconv"

// FontSize is one of the CSS absolute font size keywords
// that a legacy font size maps to.
type FontSize uint8

// Font sizes, from smallest to largest.
const (
	XSmall FontSize = 1 + iota
	Small
	Medium
	Large
	XLarge
	XXLarge
	XXXLarge
)

var fontSizeKeywords = [...]string{
	XSmall:   "x-small",
	Small:    "small",
	Medium:   "medium",
	Large:    "large",
	XLarge:   "x-large",
	XXLarge:  "xx-large",
	XXXLarge: "xxx-large",
}

// String returns the CSS keyword for the size, such as "x-large".
func (size FontSize) String() string {
	if size < XSmall || size > XXXLarge {
		return "FontSize(" + strconv.Itoa(int(size)) + ")"
	}
	return fontSizeKeywords[size]
}

// ParseLegacyFontSize parses s according to the
// [rules for parsing a legacy font size],
// as used by the size attribute of the font element.
// A leading "+" or "-" makes the size relative to 3.
// Sizes below 1 or above 7 are clamped.
// It reports false if s has no digits after trimming and the optional sign.
//
// [rules for parsing a legacy font size]: https://html.spec.whatwg.org/multipage/rendering.html#rules-for-parsing-a-legacy-font-size
func ParseLegacyFontSize(s string) (FontSize, bool) {
	s = TrimHTMLSpace(s)
	if s == "" {
		return 0, false
	}
	const base = 3
	sign := int64(0)
	switch s[0] {
	case '+':
		sign = 1
		s = s[1:]
	case '-':
		sign = -1
		s = s[1:]
	}
	n, ok := readDigits(s)
	if !ok {
		return 0, false
	}
	// Anything past the clamp bounds behaves the same,
	// so limit the magnitude before applying the offset.
	n = min(n, int64(XXXLarge)+base)
	if sign != 0 {
		n = base + sign*n
	}
	switch {
	case n >= int64(XXXLarge):
		return XXXLarge, true
	case n <= int64(XSmall):
		return XSmall, true
	default:
		return FontSize(n), true
	}
}
