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
	"fmt"
	"image/color"
	"strconv"

	"golang.org/x/image/colornames"
)

// ErrInvalidLegacyColor is returned (possibly wrapped)
// by [ParseLegacyColor] for values that do not name a color.
var ErrInvalidLegacyColor = errors.New("not a legacy color")

// RGBA is a color with floating-point channels in the range [0, 1].
// It implements [color.Color].
type RGBA struct {
	Red   float32
	Green float32
	Blue  float32
	Alpha float32
}

func rgbaFromBytes(r, g, b, a uint8) RGBA {
	return RGBA{
		Red:   float32(r) / 255,
		Green: float32(g) / 255,
		Blue:  float32(b) / 255,
		Alpha: float32(a) / 255,
	}
}

// RGBA returns the alpha-premultiplied 16-bit channels of c.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	return color.NRGBA64{
		R: channel16(c.Red),
		G: channel16(c.Green),
		B: channel16(c.Blue),
		A: channel16(c.Alpha),
	}.RGBA()
}

// NRGBA returns c with 8-bit channels.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: channel8(c.Red),
		G: channel8(c.Green),
		B: channel8(c.Blue),
		A: channel8(c.Alpha),
	}
}

// String formats c as a CSS color function,
// "rgb(r, g, b)" for opaque colors and "rgba(r, g, b, a)" otherwise.
func (c RGBA) String() string {
	n := c.NRGBA()
	if n.A == 0xff {
		return fmt.Sprintf("rgb(%d, %d, %d)", n.R, n.G, n.B)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", n.R, n.G, n.B,
		strconv.FormatFloat(float64(c.Alpha), 'f', -1, 32))
}

func channel8(x float32) uint8 {
	return uint8(clampUnit(x)*0xff + 0.5)
}

func channel16(x float32) uint16 {
	return uint16(clampUnit(x)*0xffff + 0.5)
}

func clampUnit(x float32) float32 {
	switch {
	case x > 1:
		return 1
	case x >= 0:
		return x
	default:
		return 0
	}
}

// LookupColorKeyword returns the value of a CSS named color,
// such as "red" or "cornflowerblue".
// The match is ASCII case-insensitive.
// Keywords that are not plain colors, like "transparent" and "currentcolor",
// are not found.
func LookupColorKeyword(name string) (RGBA, bool) {
	if len(name) > maxColorKeywordLength {
		return RGBA{}, false
	}
	var buf [maxColorKeywordLength]byte
	for i := 0; i < len(name); i++ {
		buf[i] = toLowerASCII(name[i])
	}
	c, ok := colornames.Map[string(buf[:len(name)])]
	if !ok {
		return RGBA{}, false
	}
	return rgbaFromBytes(c.R, c.G, c.B, c.A), true
}

// maxColorKeywordLength is the length of the longest CSS named color,
// "lightgoldenrodyellow".
const maxColorKeywordLength = 20

func toLowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func equalFoldASCII(s, t string) bool {
	if len(s) != len(t) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if toLowerASCII(s[i]) != toLowerASCII(t[i]) {
			return false
		}
	}
	return true
}

// ParseLegacyColor parses s according to the [rules for parsing a legacy color value],
// as used by attributes like bgcolor and the color attribute of the font element.
// Named colors and "#rgb" are recognized first.
// Any other value is coerced into hexadecimal digits
// and split into red, green, and blue parts,
// so even garbage like "chucknorris" produces a color.
// The only values that fail to parse are the empty string and "transparent".
//
// [rules for parsing a legacy color value]: https://html.spec.whatwg.org/multipage/common-microsyntaxes.html#rules-for-parsing-a-legacy-colour-value
func ParseLegacyColor(s string) (RGBA, error) {
	if s == "" {
		return RGBA{}, fmt.Errorf("parse legacy color: empty value: %w", ErrInvalidLegacyColor)
	}
	input := TrimHTMLSpace(s)
	if equalFoldASCII(input, "transparent") {
		return RGBA{}, fmt.Errorf("parse legacy color %q: %w", s, ErrInvalidLegacyColor)
	}
	if c, ok := LookupColorKeyword(input); ok {
		return c, nil
	}
	if len(input) == 4 && input[0] == '#' {
		r, rok := hexValue(rune(input[1]))
		g, gok := hexValue(rune(input[2]))
		b, bok := hexValue(rune(input[3]))
		if rok && gok && bok {
			return rgbaFromBytes(r*17, g*17, b*17, 0xff), nil
		}
	}

	// Characters outside the Basic Multilingual Plane count as two zeros,
	// and only the first 128 characters are considered.
	const maxChars = 128
	chars := make([]rune, 0, maxChars+1)
	for _, c := range input {
		if c > 0xffff {
			chars = append(chars, '0', '0')
		} else {
			chars = append(chars, c)
		}
		if len(chars) >= maxChars {
			chars = chars[:maxChars]
			break
		}
	}
	if len(chars) > 0 && chars[0] == '#' {
		chars = chars[1:]
	}
	digits := make([]byte, len(chars), len(chars)+2)
	for i, c := range chars {
		if _, ok := hexValue(c); ok {
			digits[i] = byte(c)
		} else {
			digits[i] = '0'
		}
	}
	for len(digits) == 0 || len(digits)%3 != 0 {
		digits = append(digits, '0')
	}

	n := len(digits) / 3
	red, green, blue := digits[:n], digits[n:2*n], digits[2*n:]
	if n > 8 {
		red, green, blue = red[n-8:], green[n-8:], blue[n-8:]
		n = 8
	}
	for n > 2 && red[0] == '0' && green[0] == '0' && blue[0] == '0' {
		red, green, blue = red[1:], green[1:], blue[1:]
		n--
	}
	return rgbaFromBytes(hexByte(red), hexByte(green), hexByte(blue), 0xff), nil
}

// hexValue returns the value of a single hexadecimal digit.
func hexValue(c rune) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint8(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint8(c-'a') + 10, true
	case 'A' <= c && c <= 'F':
		return uint8(c-'A') + 10, true
	default:
		return 0, false
	}
}

// hexByte converts the first two hex digits of b to a byte.
// A single digit is its own value.
func hexByte(b []byte) uint8 {
	hi, _ := hexValue(rune(b[0]))
	if len(b) == 1 {
		return hi
	}
	lo, _ := hexValue(rune(b[1]))
	return hi<<4 | lo
}
