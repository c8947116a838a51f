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

import "math"

// readDigits consumes the maximal run of ASCII digits at the start of s
// and returns its value.
// It reports false if s does not start with a digit
// or if the value does not fit in an int64.
// Characters after the run are ignored.
func readDigits(s string) (n int64, ok bool) {
	if s == "" || !isASCIIDigit(s[0]) {
		return 0, false
	}
	for i := 0; i < len(s) && isASCIIDigit(s[i]); i++ {
		d := int64(s[i] - '0')
		if n > math.MaxInt64/10 {
			return 0, false
		}
		n *= 10
		if n > math.MaxInt64-d {
			return 0, false
		}
		n += d
	}
	return n, true
}

// parseInteger is the algorithm shared by [ParseInteger]
// and [ParseNonNegativeInteger] before narrowing.
func parseInteger(s string) (int64, bool) {
	s = TrimLeftHTMLSpace(s)
	if s == "" {
		return 0, false
	}
	sign := int64(1)
	switch s[0] {
	case '-':
		sign = -1
		s = s[1:]
	case '+':
		s = s[1:]
	}
	n, ok := readDigits(s)
	if !ok {
		return 0, false
	}
	// n is non-negative, so negating it cannot overflow.
	return n * sign, true
}

// ParseInteger parses s according to the [rules for parsing integers].
// Leading HTML space characters are skipped
// and anything after the digits is ignored,
// so ParseInteger(" 42px") returns 42.
// It reports false if s has no digits
// or if the value does not fit in an int32.
//
// [rules for parsing integers]: https://html.spec.whatwg.org/multipage/common-microsyntaxes.html#rules-for-parsing-integers
func ParseInteger(s string) (int32, bool) {
	n, ok := parseInteger(s)
	if !ok || n < math.MinInt32 || n > math.MaxInt32 {
		return 0, false
	}
	return int32(n), true
}

// ParseNonNegativeInteger parses s according to the
// [rules for parsing non-negative integers].
// It accepts the same syntax as [ParseInteger],
// but reports false if the value is negative
// or does not fit in a uint32.
// "-0" parses as zero.
//
// [rules for parsing non-negative integers]: https://html.spec.whatwg.org/multipage/common-microsyntaxes.html#rules-for-parsing-non-negative-integers
func ParseNonNegativeInteger(s string) (uint32, bool) {
	n, ok := parseInteger(s)
	if !ok || n < 0 || n > math.MaxUint32 {
		return 0, false
	}
	return uint32(n), true
}
