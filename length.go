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
	"errors"
	"math"
	"strconv"
)

// AuPerPx is the number of app units in a CSS pixel.
const AuPerPx = 60

// Au is a length in app units, a fixed-point representation of CSS pixels.
type Au int32

// AuFromPx converts a length in CSS pixels to app units,
// rounding half away from zero.
// Values outside the range of Au saturate.
func AuFromPx(px float64) Au {
	v := math.Round(px * AuPerPx)
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt32:
		return math.MaxInt32
	case v <= math.MinInt32:
		return math.MinInt32
	default:
		return Au(v)
	}
}

// Px returns the length in CSS pixels.
func (au Au) Px() float64 {
	return float64(au) / AuPerPx
}

// DimensionKind is an enumeration of the variants of [LengthOrPercentageOrAuto].
type DimensionKind uint8

// Dimension kinds.
const (
	AutoKind DimensionKind = iota
	PercentageKind
	LengthKind
)

// String returns the CSS keyword or unit for the kind.
func (k DimensionKind) String() string {
	switch k {
	case AutoKind:
		return "auto"
	case PercentageKind:
		return "%"
	case LengthKind:
		return "px"
	default:
		return "DimensionKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// LengthOrPercentageOrAuto is the result of parsing a [dimension value].
// The zero value is auto.
//
// [dimension value]: https://html.spec.whatwg.org/multipage/common-microsyntaxes.html#rules-for-parsing-dimension-values
type LengthOrPercentageOrAuto struct {
	kind    DimensionKind
	percent float32
	length  Au
}

// AutoDimension returns the auto value.
func AutoDimension() LengthOrPercentageOrAuto {
	return LengthOrPercentageOrAuto{}
}

// PercentageDimension returns a percentage value.
// fraction is the percentage divided by 100,
// so 50% is represented as 0.5.
func PercentageDimension(fraction float32) LengthOrPercentageOrAuto {
	return LengthOrPercentageOrAuto{kind: PercentageKind, percent: fraction}
}

// LengthDimension returns an absolute length value.
func LengthDimension(length Au) LengthOrPercentageOrAuto {
	return LengthOrPercentageOrAuto{kind: LengthKind, length: length}
}

// Kind returns the active variant.
func (v LengthOrPercentageOrAuto) Kind() DimensionKind {
	return v.kind
}

// IsAuto reports whether v is auto.
func (v LengthOrPercentageOrAuto) IsAuto() bool {
	return v.kind == AutoKind
}

// Percentage returns the fraction of a percentage value
// or zero if v is not a percentage.
func (v LengthOrPercentageOrAuto) Percentage() float32 {
	if v.kind != PercentageKind {
		return 0
	}
	return v.percent
}

// Length returns the length of an absolute length value
// or zero if v is not a length.
func (v LengthOrPercentageOrAuto) Length() Au {
	if v.kind != LengthKind {
		return 0
	}
	return v.length
}

// String formats v as a CSS value, such as "auto", "50%", or "10.5px".
// Passing the result to [ParseLength] yields v again.
func (v LengthOrPercentageOrAuto) String() string {
	return string(v.AppendCSS(nil))
}

// AppendCSS appends the CSS text of v to dst and returns the extended buffer.
func (v LengthOrPercentageOrAuto) AppendCSS(dst []byte) []byte {
	switch v.kind {
	case PercentageKind:
		// Use the shortest decimal that parses back to the same fraction.
		pct := float64(v.percent) * 100
		var b []byte
		for prec := 0; prec <= 64; prec++ {
			b = strconv.AppendFloat(dst, pct, 'f', prec, 64)
			if f, ok := parsePercentage(string(b[len(dst):])); ok && f == v.percent {
				break
			}
		}
		return append(b, '%')
	case LengthKind:
		dst = strconv.AppendFloat(dst, v.length.Px(), 'f', -1, 64)
		return append(dst, "px"...)
	default:
		return append(dst, "auto"...)
	}
}

// ParseLength parses s according to the [rules for parsing dimension values].
// Leading HTML space characters and a single leading "+" are skipped.
// The number ends at the first "%", the second ".",
// or the first character that is neither a digit nor ".";
// anything after it is ignored.
// If the number is followed by "%", the result is a percentage.
// Otherwise it is a length in CSS pixels.
// ParseLength returns auto for any value that does not start with a digit
// or whose number cannot be converted.
//
// [rules for parsing dimension values]: https://html.spec.whatwg.org/multipage/common-microsyntaxes.html#rules-for-parsing-dimension-values
func ParseLength(s string) LengthOrPercentageOrAuto {
	s = TrimLeftHTMLSpace(s)
	if s == "" {
		return AutoDimension()
	}
	if s[0] == '+' {
		s = s[1:]
	}
	if s == "" || !isASCIIDigit(s[0]) {
		return AutoDimension()
	}

	end := len(s)
	sawFullStop, sawPercent := false, false
scan:
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case isASCIIDigit(c):
		case c == '%':
			sawPercent = true
			end = i
			break scan
		case c == '.' && !sawFullStop:
			sawFullStop = true
		default:
			end = i
			break scan
		}
	}
	number := s[:end]

	if sawPercent {
		f, ok := parsePercentage(number)
		if !ok {
			return AutoDimension()
		}
		return PercentageDimension(f)
	}
	// Out of range lengths come back as infinities and saturate.
	f, err := strconv.ParseFloat(number, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return AutoDimension()
	}
	return LengthDimension(AuFromPx(f))
}

// ParseNonzeroLength parses s according to the
// [rules for parsing non-zero dimension values].
// It is the same as [ParseLength],
// except that zero lengths and zero percentages are mapped to auto.
//
// [rules for parsing non-zero dimension values]: https://html.spec.whatwg.org/multipage/common-microsyntaxes.html#rules-for-parsing-non-zero-dimension-values
func ParseNonzeroLength(s string) LengthOrPercentageOrAuto {
	v := ParseLength(s)
	switch {
	case v.kind == LengthKind && v.length == 0:
		return AutoDimension()
	case v.kind == PercentageKind && v.percent == 0:
		return AutoDimension()
	default:
		return v
	}
}

// parsePercentage converts the number before a percent sign to a fraction.
// Infinite percentages have no CSS form, so out of range numbers fail.
func parsePercentage(number string) (float32, bool) {
	f, err := strconv.ParseFloat(number, 32)
	if err != nil {
		return 0, false
	}
	return float32(f) / 100, true
}
