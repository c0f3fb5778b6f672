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

package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	errorsupport "github.com/northscaler/error-support"
	"github.com/northscaler/error-support/mapper"
)

// Meta carries extra context that the HTTP layer can add per response.
// All fields are optional and typically come from request context,
// rate-limiter output, or router-level logic.
type Meta struct {
	// Omitting governs the body, as for ToJSONText. A nil set means the
	// default, so stacks stay out of responses unless asked for.
	Omitting errorsupport.Omission

	// Indent, when non-empty, pretty-prints the body.
	Indent string

	// RetryAfterSeconds sets the Retry-After header when positive.
	RetryAfterSeconds int
}

// Writer is a thin adapter that knows how to turn an error into an HTTP
// response using the provided status mapper.
type Writer struct {
	Mapper *mapper.Mapper
}

// Write resolves err's status through the Mapper and writes a JSON body.
//
// A family error (wrapped or not) serializes through ToJSONText, so the
// body never fails to encode. A foreign error reduces to its generic
// three-key object. A nil err writes nothing.
//
// No automatic redaction beyond the omission set is performed here:
// whatever the error and Meta expose goes out as-is. Higher-level
// handlers should apply policy if needed.
func (w Writer) Write(rw http.ResponseWriter, err error, meta Meta) {
	if err == nil {
		return
	}

	status := w.Mapper.HTTPStatus(err)

	var body []byte
	var ce *errorsupport.CodedError
	if errors.As(err, &ce) && ce != nil {
		body = []byte(ce.ToJSONText(errorsupport.TextConfig{
			Omitting: meta.Omitting,
			Indent:   meta.Indent,
		}))
	} else {
		// Foreign errors reduce to message, name, and stack; that shape
		// is strings and nulls, which the encoder always accepts.
		obj := errorsupport.AnyToObject(err, meta.Omitting)
		if meta.Indent != "" {
			body, _ = json.MarshalIndent(obj, "", meta.Indent)
		} else {
			body, _ = json.Marshal(obj)
		}
	}

	rw.Header().Set("Content-Type", "application/json")
	if meta.RetryAfterSeconds > 0 {
		rw.Header().Set("Retry-After", strconv.Itoa(meta.RetryAfterSeconds))
	}
	rw.WriteHeader(status)
	_, _ = rw.Write(body)
}
