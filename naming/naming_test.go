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
	"testing"
)

func TestDerive_NameOnly(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantCode string
	}{
		{"simple", "FooError", "E_FOO"},
		{"two words", "IllegalArgumentError", "E_ILLEGAL_ARGUMENT"},
		{"no error suffix", "Foo", "E_FOO"},
		{"bare error", "Error", "E"},
		{"double error", "ErrorError", "E_ERROR"},
		{"acronym not folded", "HTTPError", "E_H_T_T_P"},
		{"digits pass through", "Foo2Error", "E_FOO2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, name, err := Derive("", tt.in)
			if err != nil {
				t.Fatalf("Derive(%q) unexpected error: %v", tt.in, err)
			}
			if code != tt.wantCode {
				t.Fatalf("Derive(%q) code = %q, want %q", tt.in, code, tt.wantCode)
			}
			if name != tt.in {
				t.Fatalf("Derive(%q) name = %q, want it unchanged", tt.in, name)
			}
		})
	}
}

func TestDerive_CodeOnly(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantName string
	}{
		{"simple", "E_FOO", "FooError"},
		{"two words", "E_ILLEGAL_ARGUMENT", "IllegalArgumentError"},
		{"already suffixed", "E_TIMEOUT_ERROR", "TimeoutError"},
		{"no prefix", "FOO", "FooError"},
		{"bare e", "E", "EError"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, name, err := Derive(tt.in, "")
			if err != nil {
				t.Fatalf("Derive(%q) unexpected error: %v", tt.in, err)
			}
			if name != tt.wantName {
				t.Fatalf("Derive(%q) name = %q, want %q", tt.in, name, tt.wantName)
			}
			if code != tt.in {
				t.Fatalf("Derive(%q) code = %q, want it unchanged", tt.in, code)
			}
		})
	}
}

func TestDerive_BothPassThrough(t *testing.T) {
	// No cross-validation: a mismatched pair is returned as-is.
	code, name, err := Derive("E_SOMETHING_ELSE", "FooError")
	if err != nil {
		t.Fatalf("Derive unexpected error: %v", err)
	}
	if code != "E_SOMETHING_ELSE" || name != "FooError" {
		t.Fatalf("Derive changed a complete pair: code=%q name=%q", code, name)
	}
}

func TestDerive_Neither(t *testing.T) {
	_, _, err := Derive("", "")
	if err == nil {
		t.Fatalf("Derive(\"\", \"\") expected error")
	}
	if !errors.Is(err, ErrNoInput) {
		t.Fatalf("Derive(\"\", \"\") error = %v, want ErrNoInput", err)
	}
}

func TestLowerSnake(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"camel", "FooError", "foo_error"},
		{"lower camel", "fooBar", "foo_bar"},
		{"acronym", "HTTPError", "h_t_t_p_error"},
		{"already lower", "foo", "foo"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LowerSnake(tt.in); got != tt.want {
				t.Fatalf("LowerSnake(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestUpperSnake(t *testing.T) {
	if got := UpperSnake("FooBarError"); got != "FOO_BAR_ERROR" {
		t.Fatalf("UpperSnake = %q, want FOO_BAR_ERROR", got)
	}
	if got := UpperSnake(""); got != "" {
		t.Fatalf("UpperSnake(\"\") = %q, want empty", got)
	}
}

func TestUpperCamel(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"upper snake", "FOO_BAR", "FooBar"},
		{"lower snake", "foo_bar", "FooBar"},
		{"single segment", "FOO", "Foo"},
		{"empty segments dropped", "FOO__BAR", "FooBar"},
		{"leading underscore", "_FOO", "Foo"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UpperCamel(tt.in); got != tt.want {
				t.Fatalf("UpperCamel(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLowerCamel(t *testing.T) {
	if got := LowerCamel("FOO_BAR_BAZ"); got != "fooBarBaz" {
		t.Fatalf("LowerCamel = %q, want fooBarBaz", got)
	}
	if got := LowerCamel("_FOO_BAR"); got != "fooBar" {
		t.Fatalf("LowerCamel = %q, want fooBar", got)
	}
}

func TestRoundTrip_NameToCodeToName(t *testing.T) {
	// Conventionally shaped names survive the round trip.
	for _, name := range []string{"FooError", "IllegalArgumentError", "TimeoutError"} {
		code := CodeFor(name)
		if got := NameFor(code); got != name {
			t.Fatalf("NameFor(CodeFor(%q)) = %q via %q", name, got, code)
		}
	}
}
