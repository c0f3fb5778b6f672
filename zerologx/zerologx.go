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

// Package zerologx renders family errors as structured zerolog fields
// instead of flat strings.
//
// Hook it in once, process-wide:
//
//	zerolog.ErrorMarshalFunc = zerologx.MarshalError
//
// after which every Err(err) carrying a family error logs its code,
// name, message, and structured cause. Or attach one error explicitly:
//
//	log.Warn().Object("cause", zerologx.Object(e)).Msg("retrying")
package zerologx

import (
	"errors"

	"github.com/rs/zerolog"

	errorsupport "github.com/northscaler/error-support"
)

// Object wraps a family error for structured logging. The marshaled
// fields are code, name, and message, plus cause and info when present.
// Stacks are left out; log them explicitly when wanted:
//
//	log.Error().Str("stack", e.Stack().String())
func Object(e *errorsupport.CodedError) zerolog.LogObjectMarshaler {
	return errorObject{e: e}
}

type errorObject struct {
	e *errorsupport.CodedError
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (o errorObject) MarshalZerologObject(ev *zerolog.Event) {
	if o.e == nil {
		return
	}
	ev.Str("code", o.e.Code().String()).
		Str("name", o.e.Name()).
		Str("message", o.e.Message())
	if o.e.HasCause() {
		ev.Interface("cause", errorsupport.AnyToObject(o.e.Cause(), nil))
	}
	if info := o.e.Info(); info != nil {
		ev.Interface("info", info)
	}
}

// MarshalError is a drop-in zerolog.ErrorMarshalFunc. Family errors,
// wrapped or not, marshal as structured objects; anything else is
// returned unchanged for zerolog's default handling.
func MarshalError(err error) any {
	var ce *errorsupport.CodedError
	if errors.As(err, &ce) && ce != nil {
		return Object(ce)
	}
	return err
}
