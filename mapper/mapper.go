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
	"errors"
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"

	errorsupport "github.com/northscaler/error-support"
)

// Mapping is the pair of transport statuses one logical error resolves to.
// Resolving both from a single rule keeps the HTTP and gRPC views of the
// same failure consistent.
type Mapping struct {
	// HTTP is the response status code, e.g. http.StatusConflict.
	HTTP int

	// GRPC is the canonical status code, e.g. codes.FailedPrecondition.
	GRPC codes.Code
}

// New constructs an immutable Mapper snapshot.
//
// The resulting Mapper is fully thread-safe and designed for long-lived
// reuse. Each build creates a self-contained instance — no references to
// global state or caller-provided structures remain.
//
// Build process overview:
//
//  1. Seed the builder with the library defaults for the catalog variants.
//  2. Apply user-provided options (overrides, variant defaults, fallback).
//  3. Validate every rule (non-empty keys, sane HTTP statuses).
//  4. Freeze all maps into fresh copies.
//
// Errors returned from this function are catalog.IllegalArgument
// instances describing the offending rule.
func New(opts ...Option) (*Mapper, error) {
	b := newBuilder()

	for name, mp := range defaultMappings {
		b.variantDefaults[name] = mp
	}

	for _, opt := range opts {
		opt(b)
	}

	if err := b.validate(); err != nil {
		return nil, err
	}

	return &Mapper{
		overrides:       freezeOverrides(b.overrides),
		variantDefaults: freezeVariantDefaults(b.variantDefaults),
		fallback:        b.fallback,
	}, nil
}

// Mapper is an immutable resolver from family errors to transport
// statuses. It combines exact per-code overrides, per-variant defaults
// consulted along the variant's ancestry, and a global fallback. Lookups
// are O(chain depth) and safe for concurrent use once constructed.
type Mapper struct {
	// overrides holds exact per-code mappings. These take precedence over
	// everything else and key on the instance's code, so a WithCode
	// override on the error participates.
	overrides map[errorsupport.Code]Mapping

	// variantDefaults holds per-variant mappings keyed by variant name.
	// Resolution walks the error's variant chain from its own variant
	// upward and takes the first name present here.
	variantDefaults map[string]Mapping

	// fallback is used for foreign errors, base instances, and variants
	// whose whole chain has no default. Typically 500/codes.Internal.
	fallback Mapping
}

// Resolution sources, in precedence order.
const (
	sourceOverride = "override"
	sourceVariant  = "variant"
	sourceAncestor = "ancestor"
	sourceFallback = "fallback"
)

// resolution records how one error resolved, for Resolve and Explain.
type resolution struct {
	mapping Mapping
	source  string
	// variant is the matched variant's name when source is variant or
	// ancestor.
	variant string
}

// Resolve maps err to its transport statuses.
//
// Resolution order (highest to lowest):
//
//  1. exact override for the instance's code;
//  2. the first variant default found walking the variant chain, the
//     error's own variant first, then its ancestors;
//  3. the global fallback.
//
// err may be wrapped: the first family error errors.As finds is the one
// resolved. A nil, foreign, or base-instance err resolves to the
// fallback. Resolve never fails.
func (m *Mapper) Resolve(err error) Mapping {
	return m.resolve(err).mapping
}

// HTTPStatus resolves just the HTTP half of the mapping.
func (m *Mapper) HTTPStatus(err error) int {
	return m.Resolve(err).HTTP
}

// GRPCStatus resolves just the gRPC half of the mapping.
func (m *Mapper) GRPCStatus(err error) codes.Code {
	return m.Resolve(err).GRPC
}

func (m *Mapper) resolve(err error) resolution {
	fb := resolution{mapping: m.fallback, source: sourceFallback}
	if err == nil {
		return fb
	}

	var ce *errorsupport.CodedError
	if !errors.As(err, &ce) || ce == nil {
		return fb
	}

	// 1. Exact override for this code.
	if mp, ok := m.overrides[ce.Code()]; ok {
		return resolution{mapping: mp, source: sourceOverride}
	}

	// 2. First default along the variant chain, self first.
	self := ce.Variant()
	for v := self; v != nil; v = v.Parent() {
		if mp, ok := m.variantDefaults[v.Name()]; ok {
			src := sourceVariant
			if v != self {
				src = sourceAncestor
			}
			return resolution{mapping: mp, source: src, variant: v.Name()}
		}
	}

	// 3. Global fallback.
	return fb
}

// Explain produces a textual trace of how the mapper resolved err.
//
// This is primarily a diagnostic tool: it shows which tier matched
// (override, variant, ancestor, or fallback) and, for chain matches,
// which variant supplied the mapping.
//
// Example output:
//
//	code="E_ALREADY_INITIALIZED" name="AlreadyInitializedError"
//	http: source=ancestor variant="IllegalStateError" -> 409
//	grpc: source=ancestor variant="IllegalStateError" -> FAILEDPRECONDITION(9)
//
// Notes:
//   - source ∈ {override | variant | ancestor | fallback}
//   - variant names the chain entry that matched, which for an ancestor
//     match is not the error's own variant
//
// The output is for inspection and logging, not stable machine parsing.
func (m *Mapper) Explain(err error) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "code=%q name=%q\n", explainCode(err), explainName(err))

	r := m.resolve(err)
	where := ""
	if r.variant != "" {
		where = fmt.Sprintf(" variant=%q", r.variant)
	}
	_, _ = fmt.Fprintf(&b, "http: source=%s%s -> %d\n", r.source, where, r.mapping.HTTP)
	_, _ = fmt.Fprintf(&b, "grpc: source=%s%s -> %s(%d)",
		r.source, where, strings.ToUpper(r.mapping.GRPC.String()), int(r.mapping.GRPC))

	return b.String()
}

// explainCode extracts the code for the Explain header, empty for
// anything that is not a family error.
func explainCode(err error) string {
	var ce *errorsupport.CodedError
	if errors.As(err, &ce) && ce != nil {
		return string(ce.Code())
	}
	return ""
}

// explainName extracts the name for the Explain header: the family
// error's name, the dynamic type of a foreign error, or empty for nil.
func explainName(err error) string {
	if err == nil {
		return ""
	}
	var ce *errorsupport.CodedError
	if errors.As(err, &ce) && ce != nil {
		return ce.Name()
	}
	return fmt.Sprintf("%T", err)
}
