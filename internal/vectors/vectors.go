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

// Package vectors provides a shared table of legacy attribute values
// and the results the HTML Standard requires for them.
package vectors

import (
	_ "embed"
	"encoding/json"
)

// Vector is a single input to one of the microsyntax parsers.
type Vector struct {
	// Parser is one of "integer", "non-negative-integer", "length",
	// "non-zero-length", "font-size", or "color".
	Parser string
	Input  string
	// Want is the formatted result,
	// or "none" if parsing should fail.
	Want    string
	Comment string `json:",omitempty"`
}

//go:embed legacy.json
var legacyData []byte

// Load returns the test vectors.
func Load() ([]Vector, error) {
	var vs []Vector
	if err := json.Unmarshal(legacyData, &vs); err != nil {
		return nil, err
	}
	return vs, nil
}

// Filter returns the vectors for the given parser.
func Filter(vs []Vector, parser string) []Vector {
	var result []Vector
	for _, v := range vs {
		if v.Parser == parser {
			result = append(result, v)
		}
	}
	return result
}
