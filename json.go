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
	"encoding/json"
	"fmt"
)

// TextConfig controls ToJSONText. The zero value means the default
// omission set, the standard library encoder, and no indentation.
type TextConfig struct {
	// Omitting names the keys to mask, as for ToObject. A nil set means
	// OmitDefault.
	Omitting Omission

	// Formatter encodes the converted structure. nil means encoding/json.
	// A Formatter that fails or panics triggers the fallback shape; the
	// failure never propagates.
	Formatter func(v any) ([]byte, error)

	// Indent, when non-empty, is the per-level indent string for the
	// standard encoder. A custom Formatter owns its own layout.
	Indent string
}

// ToJSONText encodes ToObject(cfg.Omitting) as JSON text.
//
// It never fails. When the encoder rejects the structure (a cyclic info
// payload is the usual case) or a custom Formatter fails or panics, the
// result is a fallback shape with exactly two top-level keys:
//
//	jsonStringifyError  the encoding failure's message, name, and stack
//	error               this instance's message, code, name, and stack
//
// both subject to the same omission set. The fallback touches only
// strings and nulls, which the standard encoder always accepts.
func (e *CodedError) ToJSONText(cfg TextConfig) string {
	if e == nil {
		return "null"
	}
	b, err := encode(e.ToObject(cfg.Omitting), cfg)
	if err == nil {
		return string(b)
	}
	return e.fallbackText(err, cfg)
}

// encode runs the configured formatter, converting a panic into an error
// so the fallback path sees every failure mode.
func encode(v any, cfg TextConfig) (b []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("formatter panic: %v", r)
		}
	}()
	if cfg.Formatter != nil {
		return cfg.Formatter(v)
	}
	if cfg.Indent != "" {
		return json.MarshalIndent(v, "", cfg.Indent)
	}
	return json.Marshal(v)
}

// fallbackText builds the fixed two-key shape for a failed encode. The
// failure itself is reduced like any foreign error.
func (e *CodedError) fallbackText(cause error, cfg TextConfig) string {
	om := cfg.Omitting.orDefault()
	obj := map[string]any{
		"jsonStringifyError": foreignToObject(cause, om),
		"error": map[string]any{
			"message": omitOr(om, "message", e.message),
			"code":    omitOr(om, "code", string(e.code)),
			"name":    omitOr(om, "name", e.name),
			"stack":   omitOr(om, "stack", e.stack.String()),
		},
	}
	var b []byte
	if cfg.Indent != "" {
		b, _ = json.MarshalIndent(obj, "", cfg.Indent)
	} else {
		b, _ = json.Marshal(obj)
	}
	return string(b)
}
