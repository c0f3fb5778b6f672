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

// Option is a functional option for constructing or transforming a
// CodedError. It always takes a *CodedError and returns a (possibly new)
// *CodedError.
type Option func(*CodedError) *CodedError

// WithCauseOption attaches a single error cause on construction.
// A nil err leaves the instance unchanged.
// Intended to be used with New(...).
func WithCauseOption(err error) Option {
	return func(e *CodedError) *CodedError {
		return e.WithCause(err)
	}
}

// WithCauseValueOption attaches a single arbitrary cause on construction,
// recording presence even for nil.
// Intended to be used with New(...).
func WithCauseValueOption(v any) Option {
	return func(e *CodedError) *CodedError {
		return e.WithCauseValue(v)
	}
}

// WithCausesOption attaches an ordered cause list on construction.
// Intended to be used with New(...).
func WithCausesOption(vs ...any) Option {
	return func(e *CodedError) *CodedError {
		return e.WithCauses(vs...)
	}
}

// WithInfoOption attaches contextual info on construction.
// Intended to be used with New(...).
func WithInfoOption(v any) Option {
	return func(e *CodedError) *CodedError {
		return e.WithInfo(v)
	}
}

// WithCodeOption overrides the variant's code for this instance.
// The empty code is a no-op.
// Intended to be used with New(...).
func WithCodeOption(c Code) Option {
	return func(e *CodedError) *CodedError {
		return e.WithCode(c)
	}
}

// WithNameOption overrides the variant's display name for this instance.
// The empty name is a no-op and ancestry tests are unaffected.
// Intended to be used with New(...).
func WithNameOption(n string) Option {
	return func(e *CodedError) *CodedError {
		return e.WithName(n)
	}
}

// WithMessageOption sets the message when New was called with an empty
// one.
//
// Deprecated: pass the message to New directly. When both are given, the
// constructor argument wins and this option is ignored.
func WithMessageOption(msg string) Option {
	return func(e *CodedError) *CodedError {
		if e.raw != "" {
			return e
		}
		return e.WithMessage(msg)
	}
}
