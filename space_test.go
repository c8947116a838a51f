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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIsHTMLSpace(t *testing.T) {
	for _, c := range " \t\n\f\r" {
		if !IsHTMLSpace(c) {
			t.Errorf("IsHTMLSpace(%q) = false; want true", c)
		}
	}
	for _, c := range "\v\u00a0\u0085\u2028\u3000x0" {
		if IsHTMLSpace(c) {
			t.Errorf("IsHTMLSpace(%q) = true; want false", c)
		}
	}
}

func TestIsWhitespace(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"", true},
		{" \t\n\f\r", true},
		{" x ", false},
		{"\u00a0", false},
		{"\v", false},
	}
	for _, test := range tests {
		if got := IsWhitespace(test.s); got != test.want {
			t.Errorf("IsWhitespace(%q) = %t; want %t", test.s, got, test.want)
		}
	}
}

func TestTrimHTMLSpace(t *testing.T) {
	tests := []struct {
		s        string
		want     string
		wantLeft string
	}{
		{"", "", ""},
		{"  a b  ", "a b", "a b  "},
		{"\f\r\nx\t", "x", "x\t"},
		{"\u00a0x\u00a0", "\u00a0x\u00a0", "\u00a0x\u00a0"},
	}
	for _, test := range tests {
		if got := TrimHTMLSpace(test.s); got != test.want {
			t.Errorf("TrimHTMLSpace(%q) = %q; want %q", test.s, got, test.want)
		}
		if got := TrimLeftHTMLSpace(test.s); got != test.wantLeft {
			t.Errorf("TrimLeftHTMLSpace(%q) = %q; want %q", test.s, got, test.wantLeft)
		}
	}
}

func TestSplitHTMLSpace(t *testing.T) {
	tests := []struct {
		s    string
		want []string
	}{
		{"", nil},
		{" \t ", nil},
		{"\r\n\f", nil},
		{"a", []string{"a"}},
		{"  foo\tbar\n\nbaz ", []string{"foo", "bar", "baz"}},
		{"a\u00a0b c", []string{"a\u00a0b", "c"}},
	}
	for _, test := range tests {
		got := SplitHTMLSpace(test.s)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("SplitHTMLSpace(%q) (-want +got):\n%s", test.s, diff)
		}
	}
}
