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

// CodedError is the canonical structured error.
//
// It carries:
//   - code: stable symbolic identifier, from the variant unless overridden;
//   - name: display identifier, from the variant unless overridden;
//   - message: the rendered single-line text, computed at construction;
//   - cause: an optional single value or ordered list of values, each a
//     family member, a foreign error, nil, or any other value;
//   - info: an optional, opaque contextual payload;
//   - stack: the call stack captured at construction.
//
// All mutation helpers (WithX) return a shallow copy with the message
// re-rendered, so instances can be safely shared and refined in a
// functional style. The engine never mutates caller-supplied cause or
// info structures.
type CodedError struct {
	code     Code
	name     string
	raw      string
	message  string
	cause    any
	hasCause bool
	info     any
	hasInfo  bool
	stack    Stack
	variant  *Variant
}

// New constructs an instance of v with the given message.
//
// Construction is total: it never fails, whatever the options supply. The
// message is rendered eagerly, so a later change to a cause's own state
// cannot alter text already rendered here.
//
// Usage:
//
//	return Widget.New("no such widget",
//	    errorsupport.WithCauseOption(err),
//	    errorsupport.WithInfoOption(map[string]any{"id": id}),
//	)
func (v *Variant) New(message string, opts ...Option) *CodedError {
	return v.construct(message, 2, opts)
}

// New constructs an instance of the engine's base type, for errors that
// belong to no defined variant. The rendered message uses the NoCode
// sentinel in place of a code.
func New(message string, opts ...Option) *CodedError {
	return baseVariant.construct(message, 2, opts)
}

// construct builds the instance, captures the call stack skip frames up,
// renders the message, and applies the options in order.
func (v *Variant) construct(message string, skip int, opts []Option) *CodedError {
	e := &CodedError{
		code:    v.code,
		name:    v.name,
		raw:     message,
		variant: v,
		stack:   capture(skip),
	}
	e.message = renderMessage(e.code, e.raw, e.cause, e.hasCause)
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// rerender recomputes the stored message from the current inputs.
func (e *CodedError) rerender() *CodedError {
	e.message = renderMessage(e.code, e.raw, e.cause, e.hasCause)
	return e
}

// Error implements the built-in error interface, returning the rendered
// single-line message.
func (e *CodedError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.message
}

// Unwrap exposes error-typed causes to errors.Is and errors.As. A single
// error cause yields one element; a cause list yields its error elements
// in order; anything else yields nil.
func (e *CodedError) Unwrap() []error {
	if e == nil || !e.hasCause {
		return nil
	}
	if list, ok := e.causeList(); ok {
		var errs []error
		for _, el := range list {
			if err, ok := el.(error); ok && !isNil(err) {
				errs = append(errs, err)
			}
		}
		return errs
	}
	if err, ok := e.cause.(error); ok && !isNil(err) {
		return []error{err}
	}
	return nil
}

// WithCause returns a copy of e with err as its single cause.
// If err is nil, the original error is returned unchanged.
func (e *CodedError) WithCause(err error) *CodedError {
	if err == nil {
		return e
	}
	cp := *e
	cp.cause = err
	cp.hasCause = true
	return cp.rerender()
}

// WithCauseValue returns a copy of e with v as its single cause, recording
// presence even when v is nil. An explicitly nil cause renders nothing in
// the message but appears as null in converted structures.
func (e *CodedError) WithCauseValue(v any) *CodedError {
	cp := *e
	cp.cause = v
	cp.hasCause = true
	return cp.rerender()
}

// WithCauses returns a copy of e with an ordered cause list. The list is
// copied to keep the instance detached from the caller's slice. Calling
// with no arguments records an empty list, which renders as ": []".
func (e *CodedError) WithCauses(vs ...any) *CodedError {
	cp := *e
	cp.cause = append(make([]any, 0, len(vs)), vs...)
	cp.hasCause = true
	return cp.rerender()
}

// WithInfo returns a copy of e carrying v as contextual info. The value is
// held as given and copied verbatim, at its top level, by conversions.
func (e *CodedError) WithInfo(v any) *CodedError {
	cp := *e
	cp.info = v
	cp.hasInfo = true
	return &cp
}

// WithCode returns a copy of e with its code overridden, re-rendering the
// message. The empty code is a no-op, preserving the variant's own code.
func (e *CodedError) WithCode(c Code) *CodedError {
	if c == "" {
		return e
	}
	cp := *e
	cp.code = c
	return cp.rerender()
}

// WithName returns a copy of e with its display name overridden. The empty
// name is a no-op. Ancestry tests are unaffected: IsInstance matches on
// variant names, never on instance names.
func (e *CodedError) WithName(n string) *CodedError {
	if n == "" {
		return e
	}
	cp := *e
	cp.name = n
	return &cp
}

// WithMessage returns a copy of e with a replaced message, re-rendered
// against the same code and cause.
func (e *CodedError) WithMessage(msg string) *CodedError {
	cp := *e
	cp.raw = msg
	return cp.rerender()
}

// Code returns the instance's code (the variant's, unless overridden).
func (e *CodedError) Code() Code { return e.code }

// Name returns the instance's display name (the variant's, unless
// overridden).
func (e *CodedError) Name() string { return e.name }

// Message returns the rendered message, identical to Error().
func (e *CodedError) Message() string { return e.message }

// Cause returns the cause as constructed: a single value, a list, or nil.
// Use HasCause to distinguish an explicit nil cause from no cause at all.
func (e *CodedError) Cause() any { return e.cause }

// HasCause reports whether a cause was recorded, including an explicit
// nil one.
func (e *CodedError) HasCause() bool { return e.hasCause }

// Info returns the contextual info value, or nil when none was attached.
func (e *CodedError) Info() any { return e.info }

// Stack returns the call stack captured at construction. Copies made by
// the WithX helpers keep the original capture site.
func (e *CodedError) Stack() Stack { return e.stack }

// Variant returns the variant this instance realizes, or nil for
// instances of the engine's base type.
func (e *CodedError) Variant() *Variant {
	if e.variant == baseVariant {
		return nil
	}
	return e.variant
}

// causeList normalizes a slice or array cause to []any. The second result
// reports whether the cause is a list at all.
func (e *CodedError) causeList() ([]any, bool) {
	if !e.hasCause {
		return nil, false
	}
	return listElements(e.cause)
}
