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

// Package hints maps legacy presentational HTML attributes to CSS declarations
// using the [presentational hints] rules of the HTML Standard,
// like turning <font size="+2" color="chucknorris"> into
// "font-size: x-large; color: rgb(192, 0, 0)".
//
// [presentational hints]: https://html.spec.whatwg.org/multipage/rendering.html#presentational-hints
package hints

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"go4.org/bytereplacer"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"zombiezen.com/go/microsyntax"
)

// Declaration is a single CSS property and its value.
type Declaration struct {
	Property string `yaml:"property"`
	Value    string `yaml:"value"`
}

// Element is an HTML element that has presentational hints.
type Element struct {
	Tag          string        `yaml:"tag"`
	Declarations []Declaration `yaml:"declarations"`
}

// A valueFunc converts an attribute value to CSS text.
// It reports false if the attribute should not produce a declaration.
type valueFunc func(value string) (string, bool)

type rule struct {
	attr       string
	properties []string
	value      valueFunc
}

var (
	colorRule           = rule{"color", []string{"color"}, legacyColor}
	bgcolorRule         = rule{"bgcolor", []string{"background-color"}, legacyColor}
	widthRule           = rule{"width", []string{"width"}, dimension}
	heightRule          = rule{"height", []string{"height"}, dimension}
	nonzeroWidthRule    = rule{"width", []string{"width"}, nonzeroDimension}
	nonzeroHeightRule   = rule{"height", []string{"height"}, nonzeroDimension}
	replacedElementRule = []rule{widthRule, heightRule}
)

var rules = map[atom.Atom][]rule{
	atom.Font: {
		colorRule,
		{"size", []string{"font-size"}, legacyFontSize},
		{"face", []string{"font-family"}, fontFamily},
	},
	atom.Body: {
		bgcolorRule,
		{"text", []string{"color"}, legacyColor},
	},
	atom.Table: {
		nonzeroWidthRule,
		heightRule,
		bgcolorRule,
		{"border", []string{"border-width"}, pixels},
		{"cellspacing", []string{"border-spacing"}, pixels},
	},
	atom.Td:       {nonzeroWidthRule, nonzeroHeightRule, bgcolorRule},
	atom.Th:       {nonzeroWidthRule, nonzeroHeightRule, bgcolorRule},
	atom.Tr:       {bgcolorRule, heightRule},
	atom.Img:      replacedElementRule,
	atom.Iframe:   replacedElementRule,
	atom.Embed:    replacedElementRule,
	atom.Object:   replacedElementRule,
	atom.Video:    replacedElementRule,
	atom.Canvas:   replacedElementRule,
	atom.Col:      {widthRule},
	atom.Colgroup: {widthRule},
	atom.Hr: {
		widthRule,
		{"color", []string{"color", "background-color"}, legacyColor},
	},
}

// ForElement returns the declarations that the attributes of an element
// with the given tag contribute to its style,
// in the order of attrs.
// Attribute names must be lowercase, as produced by [html.Tokenizer].
// Attributes that fail to parse or that parse to auto are skipped.
func ForElement(tag atom.Atom, attrs []html.Attribute) []Declaration {
	tagRules := rules[tag]
	if len(tagRules) == 0 {
		return nil
	}
	var decls []Declaration
	for _, attr := range attrs {
		if attr.Namespace != "" {
			continue
		}
		for _, r := range tagRules {
			if r.attr != attr.Key {
				continue
			}
			v, ok := r.value(attr.Val)
			if !ok {
				break
			}
			for _, prop := range r.properties {
				decls = append(decls, Declaration{Property: prop, Value: v})
			}
			break
		}
	}
	return decls
}

func legacyColor(value string) (string, bool) {
	c, err := microsyntax.ParseLegacyColor(value)
	if err != nil {
		return "", false
	}
	return c.String(), true
}

func legacyFontSize(value string) (string, bool) {
	size, ok := microsyntax.ParseLegacyFontSize(value)
	if !ok {
		return "", false
	}
	return size.String(), true
}

func dimension(value string) (string, bool) {
	v := microsyntax.ParseLength(value)
	return v.String(), !v.IsAuto()
}

func nonzeroDimension(value string) (string, bool) {
	v := microsyntax.ParseNonzeroLength(value)
	return v.String(), !v.IsAuto()
}

func pixels(value string) (string, bool) {
	n, ok := microsyntax.ParseNonNegativeInteger(value)
	if !ok {
		return "", false
	}
	return strconv.FormatUint(uint64(n), 10) + "px", true
}

var cssStringEscaper = bytereplacer.New(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\a `,
	"\r", `\d `,
	"\f", `\c `,
)

// fontFamily converts a comma-separated list of font names
// to a font-family value.
// Names that are not plain identifiers are quoted.
func fontFamily(value string) (string, bool) {
	var buf []byte
	for _, name := range strings.Split(value, ",") {
		name = microsyntax.TrimHTMLSpace(name)
		if name == "" {
			continue
		}
		if len(buf) > 0 {
			buf = append(buf, ", "...)
		}
		if isIdent(name) {
			buf = append(buf, name...)
			continue
		}
		buf = append(buf, '"')
		buf = append(buf, cssStringEscaper.Replace([]byte(name))...)
		buf = append(buf, '"')
	}
	return string(buf), len(buf) > 0
}

func isIdent(s string) bool {
	if s == "" || s[0] == '-' || '0' <= s[0] && s[0] <= '9' {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' || c == '-' || c == '_') {
			return false
		}
	}
	return true
}

// AppendStyle appends the declarations to dst
// in the syntax of a style attribute, like "width: 50%; color: rgb(255, 0, 0)".
func AppendStyle(dst []byte, decls []Declaration) []byte {
	for i, d := range decls {
		if i > 0 {
			dst = append(dst, "; "...)
		}
		dst = append(dst, d.Property...)
		dst = append(dst, ": "...)
		dst = append(dst, d.Value...)
	}
	return dst
}

var htmlEscaper = bytereplacer.New(
	"&", "&amp;",
	`'`, "&#39;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&#34;",
)

// StyleAttr returns the declarations as style attribute text
// escaped for use inside a quoted HTML attribute value.
func StyleAttr(decls []Declaration) string {
	return string(htmlEscaper.Replace(AppendStyle(nil, decls)))
}

// Extract reads HTML from r and returns every element
// whose attributes produce presentational hints, in document order.
func Extract(r io.Reader) ([]Element, error) {
	tok := html.NewTokenizer(r)
	var elems []Element
	var attrs []html.Attribute
	for {
		switch tok.Next() {
		case html.ErrorToken:
			if err := tok.Err(); err != io.EOF {
				return elems, fmt.Errorf("extract hints: %w", err)
			}
			return elems, nil
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := tok.TagName()
			tag := atom.Lookup(name)
			if !hasAttr || rules[tag] == nil {
				continue
			}
			attrs = attrs[:0]
			for more := true; more; {
				var k, v []byte
				k, v, more = tok.TagAttr()
				attrs = append(attrs, html.Attribute{Key: string(k), Val: string(v)})
			}
			if decls := ForElement(tag, attrs); len(decls) > 0 {
				elems = append(elems, Element{
					Tag:          string(name),
					Declarations: decls,
				})
			}
		}
	}
}
