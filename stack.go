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
	"fmt"
	"runtime"
	"strings"
)

// maxStackDepth bounds how many frames a construction site captures.
const maxStackDepth = 64

// Frame is one resolved call site in a captured stack.
type Frame struct {
	// PC is the program counter for the call.
	PC uintptr

	// File is the full path of the source file.
	File string

	// Line is the line number within File.
	Line int

	// Function is the fully qualified function name.
	Function string
}

// Stack is the call stack captured when an instance was constructed,
// innermost frame first.
type Stack []Frame

// String renders the stack one frame per pair of lines:
//
//	github.com/acme/app.ServeHTTP
//		/src/app/server.go:42
func (s Stack) String() string {
	var b strings.Builder
	for i, f := range s {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s\n\t%s:%d", f.Function, f.File, f.Line)
	}
	return b.String()
}

// capture records the current call stack. skip counts frames above the
// caller of capture to drop; the +2 accounts for runtime.Callers and
// capture itself.
func capture(skip int) Stack {
	pcs := make([]uintptr, maxStackDepth)
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pcs[:n])
	st := make(Stack, 0, n)
	for {
		f, more := frames.Next()
		st = append(st, Frame{PC: f.PC, File: f.File, Line: f.Line, Function: f.Function})
		if !more {
			break
		}
	}
	return st
}
