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
	"io"
	"reflect"
	"strings"
)

// renderMessage produces the single-line message text for an instance.
//
// The shape is fixed:
//
//	<code>: <message>
//	<code>: <message>: <cause>
//	<code>: <message>: [<cause>, <cause>]
//
// with NoCode and NoMessage standing in for empty halves. List causes join
// their elements with ", ", dropping nil entries; a single nil or
// empty-string cause appends nothing. Causes render one level deep only:
// a family cause contributes its own already-rendered message, so deep
// chains accumulate without re-walking the graph.
func renderMessage(code Code, message string, cause any, hasCause bool) string {
	var b strings.Builder
	if code == "" {
		b.WriteString(NoCode)
	} else {
		b.WriteString(string(code))
	}
	b.WriteString(": ")
	if message == "" {
		b.WriteString(NoMessage)
	} else {
		b.WriteString(message)
	}

	if !hasCause || isNil(cause) {
		return b.String()
	}

	if list, ok := listElements(cause); ok {
		b.WriteString(": [")
		first := true
		for _, el := range list {
			if isNil(el) {
				continue
			}
			if !first {
				b.WriteString(", ")
			}
			b.WriteString(renderCauseElement(el))
			first = false
		}
		b.WriteString("]")
		return b.String()
	}

	if s, ok := cause.(string); ok && s == "" {
		return b.String()
	}
	b.WriteString(": ")
	b.WriteString(renderCauseElement(cause))
	return b.String()
}

// renderCauseElement renders one non-nil cause for the message line:
// family and foreign errors contribute their message (NoMessage when that
// is empty), any other value its default text conversion.
func renderCauseElement(el any) string {
	switch v := el.(type) {
	case *CodedError:
		if v.message == "" {
			return NoMessage
		}
		return v.message
	case error:
		if m := v.Error(); m != "" {
			return m
		}
		return NoMessage
	default:
		return fmt.Sprint(el)
	}
}

// listElements normalizes a slice or array value to []any. The second
// result reports whether the value is a list at all.
func listElements(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}
	if l, ok := v.([]any); ok {
		return l, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// Format implements fmt.Formatter.
//
//	%s, %v   the rendered message
//	%+v      the message followed by the captured stack
//	%q       the quoted message
func (e *CodedError) Format(f fmt.State, verb rune) {
	if e == nil {
		_, _ = io.WriteString(f, "<nil>")
		return
	}
	switch verb {
	case 'v':
		if f.Flag('+') {
			_, _ = io.WriteString(f, e.message)
			if len(e.stack) > 0 {
				_, _ = io.WriteString(f, "\n")
				_, _ = io.WriteString(f, e.stack.String())
			}
			return
		}
		_, _ = io.WriteString(f, e.message)
	case 's':
		_, _ = io.WriteString(f, e.message)
	case 'q':
		_, _ = fmt.Fprintf(f, "%q", e.message)
	}
}
