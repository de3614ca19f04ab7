// Copyright 2025 The Task Chat Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package openai

import "strings"

// repairJSON fixes the malformations small models produce most often:
// object keys missing their opening quote (`, priority":` instead of
// `, "priority":`) and trailing commas before a closing brace or bracket.
func repairJSON(s string) string {
	s = repairUnquotedKeys(s)
	return repairTrailingCommas(s)
}

func repairUnquotedKeys(s string) string {
	in := []rune(s)
	out := make([]rune, 0, len(in)+16)

	i := 0
	for i < len(in) {
		ch := in[i]
		out = append(out, ch)
		i++
		if ch != '{' && ch != ',' {
			continue
		}

		for i < len(in) && (in[i] == ' ' || in[i] == '\n' || in[i] == '\t') {
			out = append(out, in[i])
			i++
		}
		if i >= len(in) || in[i] == '"' || !isASCIILetter(in[i]) {
			continue
		}

		// A run of key characters ending in `":` means the opening quote
		// was dropped; anything else is copied through untouched.
		start := i
		for i < len(in) && (isASCIILetter(in[i]) || in[i] == '_') {
			i++
		}
		if i+1 < len(in) && in[i] == '"' && in[i+1] == ':' {
			out = append(out, '"')
		}
		out = append(out, in[start:i]...)
	}

	return string(out)
}

func repairTrailingCommas(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	in := []rune(s)

	for i := 0; i < len(in); i++ {
		if in[i] == ',' {
			j := i + 1
			for j < len(in) && (in[j] == ' ' || in[j] == '\n' || in[j] == '\t') {
				j++
			}
			if j < len(in) && (in[j] == '}' || in[j] == ']') {
				continue
			}
		}
		b.WriteRune(in[i])
	}

	return b.String()
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
