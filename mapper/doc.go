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

// Package mapper provides deterministic, immutable mappings from family
// errors to transport-level statuses for HTTP and gRPC.
//
// # Overview
//
// A family error carries two identities that matter at a transport
// boundary:
//
//  1. its code (e.g. "E_NOT_INITIALIZED"), possibly refined per instance;
//  2. its variant chain (NotInitialized -> IllegalState), shared by every
//     instance of the variant.
//
// Transport layers (HTTP handlers, gRPC interceptors, gateways) need to
// turn an error into concrete status codes. Package mapper does that in
// a way that is:
//
//   - immutable — a Mapper is a snapshot, safe for concurrent reuse;
//   - overridable — callers can change library defaults per variant;
//   - chain-aware — a subclass with no rule of its own inherits its
//     ancestors' rule;
//   - dual — HTTP and gRPC are resolved from one rule, so the two views
//     of a failure never disagree about its nature.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the instance's code;
//  2. the first variant default found walking the variant chain, the
//     error's own variant first, then its ancestors;
//  3. the global fallback (500 / codes.Internal).
//
// Wrapped errors resolve through errors.As, so a family error inside an
// fmt.Errorf chain still maps. Foreign errors, nil, and base instances
// resolve to the fallback.
//
// # Library defaults
//
// The package ships with defaults for the catalog variants, mapping them
// to standard net/http constants and grpc/codes values (IllegalArgument
// -> 400 / InvalidArgument, IllegalState -> 409 / FailedPrecondition,
// Timeout -> 504 / DeadlineExceeded, and so on). Subclasses without an
// entry inherit through the chain: AlreadyInitialized resolves to
// IllegalState's 409, while NotInitialized carries its own 503 because
// the condition is transient.
//
// # Building a mapper
//
// A Mapper is created once and reused:
//
//	m, err := mapper.New(
//	    mapper.WithVariantDefault("QuotaExceededError",
//	        mapper.Mapping{HTTP: http.StatusTooManyRequests, GRPC: codes.ResourceExhausted}),
//	    mapper.WithOverride("E_TIMEOUT", mapper.Mapping{HTTP: 408, GRPC: codes.Canceled}),
//	)
//	if err != nil {
//	    // invalid rule
//	}
//
//	st := m.Resolve(catalog.AlreadyInitialized.New("started twice"))
//	// st.HTTP == 409, st.GRPC == codes.FailedPrecondition
//
// # Diagnostics
//
// For debugging and tests, Mapper.Explain returns a human-readable trace
// of how a particular error was resolved, including which tier matched
// and, for chain matches, which variant supplied the rule.
//
// This is intended for inspection and logging, not for stable machine
// parsing.
//
// # Immutability
//
// All rules are copied during New. After construction, the Mapper does
// not observe further changes to anything the caller holds. This makes
// it safe to share a single instance across handlers, goroutines, and
// requests.
package mapper
