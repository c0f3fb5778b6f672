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

package errorsupport

import (
	"strings"
	"testing"
)

func TestCapture_FirstFrameIsTheCaller(t *testing.T) {
	e := New("x")
	st := e.Stack()
	if len(st) == 0 {
		t.Fatalf("no frames captured")
	}
	if !strings.Contains(st[0].Function, "TestCapture_FirstFrameIsTheCaller") {
		t.Fatalf("first frame = %s, want this test", st[0].Function)
	}
	if st[0].File == "" || st[0].Line == 0 {
		t.Fatalf("frame missing file or line: %+v", st[0])
	}
}

func TestCapture_VariantConstructorSkipsItself(t *testing.T) {
	e := MustDefine("", "SkipCheckError").New("x")
	if got := e.Stack()[0].Function; !strings.Contains(got, "TestCapture_VariantConstructorSkipsItself") {
		t.Fatalf("first frame = %s, want this test", got)
	}
}

func TestStack_String(t *testing.T) {
	lines := strings.Split(New("x").Stack().String(), "\n")
	if len(lines) < 2 {
		t.Fatalf("rendered stack too short: %q", lines)
	}
	if !strings.Contains(lines[0], "TestStack_String") {
		t.Fatalf("line 0 = %q, want the function name", lines[0])
	}
	if !strings.HasPrefix(lines[1], "\t") || !strings.Contains(lines[1], ".go:") {
		t.Fatalf("line 1 = %q, want an indented file:line", lines[1])
	}

	var empty Stack
	if empty.String() != "" {
		t.Fatalf("empty stack renders empty, got %q", empty.String())
	}
}
