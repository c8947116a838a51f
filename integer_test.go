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

import (
	"math"
	"strconv"
	"testing"
)

func TestReadDigits(t *testing.T) {
	tests := []struct {
		s      string
		want   int64
		wantOK bool
	}{
		{"", 0, false},
		{"x1", 0, false},
		{"+1", 0, false},
		{"0", 0, true},
		{"123abc", 123, true},
		{"9223372036854775807", math.MaxInt64, true},
		{"9223372036854775808", 0, false},
		{"92233720368547758070", 0, false},
		{"00000000000000000000000000001", 1, true},
	}
	for _, test := range tests {
		got, ok := readDigits(test.s)
		if got != test.want || ok != test.wantOK {
			t.Errorf("readDigits(%q) = %d, %t; want %d, %t", test.s, got, ok, test.want, test.wantOK)
		}
	}
}

func TestParseIntegerRoundTrip(t *testing.T) {
	for _, n := range []int64{0, 1, 9, 10, 255, 65536, math.MaxInt32, math.MaxInt32 + 1, math.MaxUint32} {
		s := strconv.FormatInt(n, 10)

		wantSigned := n <= math.MaxInt32
		if got, ok := ParseInteger(s); ok != wantSigned || (ok && int64(got) != n) {
			t.Errorf("ParseInteger(%q) = %d, %t; want %d, %t", s, got, ok, n, wantSigned)
		}
		if got, ok := ParseInteger("+" + s); ok != wantSigned || (ok && int64(got) != n) {
			t.Errorf("ParseInteger(%q) = %d, %t; want %d, %t", "+"+s, got, ok, n, wantSigned)
		}
		wantNegative := -n >= math.MinInt32
		if got, ok := ParseInteger("-" + s); ok != wantNegative || (ok && int64(got) != -n) {
			t.Errorf("ParseInteger(%q) = %d, %t; want %d, %t", "-"+s, got, ok, -n, wantNegative)
		}

		if got, ok := ParseNonNegativeInteger(s); !ok || int64(got) != n {
			t.Errorf("ParseNonNegativeInteger(%q) = %d, %t; want %d, true", s, got, ok, n)
		}
		if got, ok := ParseNonNegativeInteger("+" + s); !ok || int64(got) != n {
			t.Errorf("ParseNonNegativeInteger(%q) = %d, %t; want %d, true", "+"+s, got, ok, n)
		}
		if n > 0 {
			if got, ok := ParseNonNegativeInteger("-" + s); ok {
				t.Errorf("ParseNonNegativeInteger(%q) = %d, true; want _, false", "-"+s, got)
			}
		}
	}
}

func TestParseIntegerOverflow(t *testing.T) {
	for _, s := range []string{"2147483648", "99999999999999999999", "-99999999999999999999"} {
		if got, ok := ParseInteger(s); ok {
			t.Errorf("ParseInteger(%q) = %d, true; want _, false", s, got)
		}
	}
	if got, ok := ParseNonNegativeInteger("9223372036854775807"); ok {
		t.Errorf("ParseNonNegativeInteger(%q) = %d, true; want _, false", "9223372036854775807", got)
	}
}
