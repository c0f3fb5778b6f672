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

package mapper

import (
	"net/http"

	"google.golang.org/grpc/codes"

	errorsupport "github.com/northscaler/error-support"
	"github.com/northscaler/error-support/catalog"
)

type builder struct {
	// user-provided adjustments (applied on top of library defaults)

	// overrides holds exact per-code mappings, above every chain rule.
	overrides map[errorsupport.Code]Mapping

	// variantDefaults holds per-variant mappings keyed by variant name.
	// Seeded from defaultMappings before options run, so an option for a
	// catalog name replaces the library rule.
	variantDefaults map[string]Mapping

	// fallback is used when nothing else matches.
	fallback Mapping
}

// newBuilder creates an empty builder with maps pre-sized to hold
// typical numbers of entries.
func newBuilder() *builder {
	return &builder{
		// overrides are usually few
		overrides: make(map[errorsupport.Code]Mapping),

		// sized for the built-in defaults
		variantDefaults: make(map[string]Mapping, len(defaultMappings)),

		// hard fallback if the error matches no rule at all
		fallback: Mapping{HTTP: http.StatusInternalServerError, GRPC: codes.Internal},
	}
}

// validate checks every recorded rule before the builder freezes.
// Failures are catalog.IllegalArgument instances naming the bad rule.
func (b *builder) validate() error {
	for c, mp := range b.overrides {
		if c == "" {
			return catalog.IllegalArgument.New("mapper: override code must not be empty")
		}
		if err := validMapping("override", string(c), mp); err != nil {
			return err
		}
	}
	for name, mp := range b.variantDefaults {
		if name == "" {
			return catalog.IllegalArgument.New("mapper: variant default name must not be empty")
		}
		if err := validMapping("variant default", name, mp); err != nil {
			return err
		}
	}
	return validMapping("fallback", "", b.fallback)
}

// validMapping rejects HTTP statuses outside the wire-legal range. gRPC
// codes are left alone: the codes type is open-ended and grpc-go carries
// unknown values through.
func validMapping(rule, key string, mp Mapping) error {
	if mp.HTTP < 100 || mp.HTTP > 599 {
		return catalog.IllegalArgument.New("mapper: HTTP status out of range",
			errorsupport.WithInfoOption(map[string]any{
				"rule": rule,
				"key":  key,
				"http": mp.HTTP,
			}))
	}
	return nil
}
