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

package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
	"zombiezen.com/go/microsyntax/hints"
)

func runApp(tb testing.TB, stdin string, args ...string) (string, error) {
	tb.Helper()
	app := newApp()
	out := new(bytes.Buffer)
	app.Writer = out
	app.ErrWriter = io.Discard
	app.Reader = strings.NewReader(stdin)
	err := app.Run(contextWithEnv(context.Background()), append([]string{"microsyntax"}, args...))
	return out.String(), err
}

func TestValueCommands(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{
			args: []string{"int", " 42px", "-7", "2147483648"},
			want: "\" 42px\" => 42\n\"-7\" => -7\n\"2147483648\" => none\n",
		},
		{
			args: []string{"uint", "-1", "4294967295"},
			want: "\"-1\" => none\n\"4294967295\" => 4294967295\n",
		},
		{
			args: []string{"length", "50%", "10.5.5px", "abc", "0"},
			want: "\"50%\" => 50%\n\"10.5.5px\" => 10.5px\n\"abc\" => auto\n\"0\" => 0px\n",
		},
		{
			args: []string{"nonzero-length", "0", "0%", "3"},
			want: "\"0\" => auto\n\"0%\" => auto\n\"3\" => 3px\n",
		},
		{
			args: []string{"fontsize", "+2", "1", "-10", ""},
			want: "\"+2\" => x-large\n\"1\" => x-small\n\"-10\" => x-small\n\"\" => none\n",
		},
		{
			args: []string{"--debug", "color", "#123", "red", "transparent"},
			want: "\"#123\" => rgb(17, 34, 51)\n\"red\" => rgb(255, 0, 0)\n\"transparent\" => none\n",
		},
	}
	for _, test := range tests {
		got, err := runApp(t, "", test.args...)
		if err != nil {
			t.Errorf("microsyntax %q: %v", test.args, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("microsyntax %q output (-want +got):\n%s", test.args, diff)
		}
	}
}

func TestValueCommandNoArgs(t *testing.T) {
	if _, err := runApp(t, "", "color"); err == nil {
		t.Error("microsyntax color did not return an error")
	}
}

const hintsInput = `<body bgcolor=white><font color=red size=+1>x</font></body>`

func TestHintsText(t *testing.T) {
	got, err := runApp(t, hintsInput, "hints", "--format", "text")
	if err != nil {
		t.Fatal(err)
	}
	want := "<body style=\"background-color: rgb(255, 255, 255)\">\n" +
		"<font style=\"color: rgb(255, 0, 0); font-size: large\">\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output (-want +got):\n%s", diff)
	}
}

func TestHintsYAML(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "page.html")
	if err := os.WriteFile(fname, []byte(hintsInput), 0o666); err != nil {
		t.Fatal(err)
	}
	out, err := runApp(t, "", "hints", fname)
	if err != nil {
		t.Fatal(err)
	}
	var got []hints.Element
	if err := yaml.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("Output is not YAML: %v\n%s", err, out)
	}
	want := []hints.Element{
		{Tag: "body", Declarations: []hints.Declaration{
			{Property: "background-color", Value: "rgb(255, 255, 255)"},
		}},
		{Tag: "font", Declarations: []hints.Declaration{
			{Property: "color", Value: "rgb(255, 0, 0)"},
			{Property: "font-size", Value: "large"},
		}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output (-want +got):\n%s", diff)
	}
}

func TestHintsErrors(t *testing.T) {
	_, err := runApp(t, "", "hints", filepath.Join(t.TempDir(), "missing.html"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("hints on missing file error = %v; want %v", err, fs.ErrNotExist)
	}
	if _, err := runApp(t, hintsInput, "hints", "--format", "xml"); err == nil {
		t.Error("hints --format xml did not return an error")
	}
}
