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

// defaultMappings defines the library's built-in transport mappings for
// the catalog variants, keyed by variant name. These are only defaults:
// callers are expected to adjust them at the boundary where a status is
// actually produced (HTTP handler, gRPC interceptor, gateway).
//
// A subclass with no entry of its own inherits through the chain walk,
// so only variants whose mapping differs from their parent's appear
// here. MissingRequiredArgument and IllegalArgumentType resolve through
// IllegalArgument; AlreadyInitialized resolves through IllegalState.
var defaultMappings = map[string]Mapping{
	// Bad input is the client's problem.
	catalog.IllegalArgument.Name(): {HTTP: http.StatusBadRequest, GRPC: codes.InvalidArgument},

	// Bad state means the request was well-formed but the current state
	// of the target cannot serve it.
	catalog.IllegalState.Name(): {HTTP: http.StatusConflict, GRPC: codes.FailedPrecondition},

	// Not initialized differs from its parent: the condition is
	// transient, so clients should treat it as unavailability and retry.
	catalog.NotInitialized.Name(): {HTTP: http.StatusServiceUnavailable, GRPC: codes.Unavailable},

	// Declared but unwritten operations.
	catalog.MethodNotImplemented.Name(): {HTTP: http.StatusNotImplemented, GRPC: codes.Unimplemented},

	// Operation exceeded its time budget.
	catalog.Timeout.Name(): {HTTP: http.StatusGatewayTimeout, GRPC: codes.DeadlineExceeded},

	// Misconfiguration inside the library's own surface is a server
	// fault; do not expose internal details.
	errorsupport.ErrConfiguration.Name(): {HTTP: http.StatusInternalServerError, GRPC: codes.Internal},
}

// Defaults returns a fresh copy of the built-in mapping table, keyed by
// variant name. Mutating the copy has no effect on the library.
func Defaults() map[string]Mapping {
	out := make(map[string]Mapping, len(defaultMappings))
	for k, v := range defaultMappings {
		out[k] = v
	}
	return out
}
