/*
   Copyright 2026 The Northscaler Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package naming

import (
	"errors"
	"strings"
	"unicode"
)

var (
	// ErrNoInput is returned by Derive when both the code and the name are
	// empty. At least one of the two is required to identify a variant.
	ErrNoInput = errors.New("naming: neither code nor name given")
)

// Derive completes a (code, name) pair from whichever halves are present.
//
// Resolution:
//
//  1. both empty: ErrNoInput;
//  2. name only: the code is derived via CodeFor;
//  3. code only: the name is derived via NameFor;
//  4. both present: returned unchanged, with no cross-validation.
//
// The empty string always means "not provided".
func Derive(code, name string) (string, string, error) {
	switch {
	case code == "" && name == "":
		return "", "", ErrNoInput
	case code == "":
		return CodeFor(name), name, nil
	case name == "":
		return code, NameFor(code), nil
	}
	return code, name, nil
}

// CodeFor derives the code for a variant name.
//
// The name is upper snake cased and prefixed with "E_", then one trailing
// "_ERROR" segment is stripped: "FooError" -> "E_FOO", "Error" -> "E".
// The empty name passes through unchanged.
func CodeFor(name string) string {
	if name == "" {
		return name
	}
	return strings.TrimSuffix("E_"+UpperSnake(name), "_ERROR")
}

// NameFor derives the variant name for a code.
//
// One leading "E_" is stripped, the remainder is upper camel cased, and
// "Error" is appended unless the result already ends with it:
// "E_FOO" -> "FooError", "E_TIMEOUT_ERROR" -> "TimeoutError".
// The empty code passes through unchanged.
func NameFor(code string) string {
	if code == "" {
		return code
	}
	n := UpperCamel(strings.TrimPrefix(code, "E_"))
	if !strings.HasSuffix(n, "Error") {
		n += "Error"
	}
	return n
}

// LowerSnake converts a camel case identifier to lower snake case.
//
// An underscore is inserted before every uppercase letter except a leading
// one, and all letters are lowered: "FooError" -> "foo_error". Acronyms are
// not folded, so "HTTPError" -> "h_t_t_p_error". The empty string passes
// through unchanged.
func LowerSnake(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// UpperSnake converts a camel case identifier to upper snake case:
// "FooError" -> "FOO_ERROR".
func UpperSnake(s string) string {
	return strings.ToUpper(LowerSnake(s))
}

// UpperCamel converts a snake case identifier to upper camel case.
//
// The input is split on underscores, each segment is lowered, and the first
// letter of every segment is raised: "FOO_BAR" -> "FooBar". Empty segments
// are dropped. The empty string passes through unchanged.
func UpperCamel(s string) string {
	return camel(s, true)
}

// LowerCamel converts a snake case identifier to lower camel case:
// "FOO_BAR" -> "fooBar".
func LowerCamel(s string) string {
	return camel(s, false)
}

func camel(s string, upperFirst bool) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	wrote := false
	for _, seg := range strings.Split(s, "_") {
		if seg == "" {
			continue
		}
		seg = strings.ToLower(seg)
		if !wrote && !upperFirst {
			b.WriteString(seg)
			wrote = true
			continue
		}
		b.WriteString(strings.ToUpper(seg[:1]))
		b.WriteString(seg[1:])
		wrote = true
	}
	return b.String()
}
