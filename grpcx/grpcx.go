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

package grpcx

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
	"google.golang.org/protobuf/types/known/structpb"

	errorsupport "github.com/northscaler/error-support"
	"github.com/northscaler/error-support/mapper"
)

// Extras holds optional, rich metadata that can be embedded into the
// google.rpc error details. All fields are optional.
type Extras struct {
	// Domain is the ErrorInfo domain, typically the service's logical
	// name ("widgets.northscaler.com").
	Domain string

	// Meta is merged into the ErrorInfo metadata alongside the error's
	// name. Caller keys win on collision.
	Meta map[string]string

	// IncludeDebugInfo attaches the construction stack as a DebugInfo
	// detail. Meant for internal surfaces; stacks leak file paths.
	IncludeDebugInfo bool

	// IncludeObject attaches the converted error object as a Struct
	// detail, subject to Omitting.
	IncludeObject bool

	// Omitting governs the object detail, as for ToObject. A nil set
	// means the default, so stacks stay hidden unless asked for.
	Omitting errorsupport.Omission
}

// MetaFn extracts Extras from context and the family error.
// It can return an empty Extras if nothing is available.
type MetaFn func(ctx context.Context, e *errorsupport.CodedError) Extras

// ToStatus converts a family error into a gRPC status.
//
// The mapper resolves the status code; the rendered message becomes the
// status message. An ErrorInfo detail always rides along, carrying the
// error's code as its reason and its name in the metadata. DebugInfo and
// Struct details are added per ex.
//
// Detail attachment is best-effort: if a detail cannot be encoded, the
// status goes out without it.
func ToStatus(e *errorsupport.CodedError, m *mapper.Mapper, ex Extras) *gstatus.Status {
	base := gstatus.New(m.GRPCStatus(e), e.Error())
	if e == nil {
		return base
	}

	meta := map[string]string{"name": e.Name()}
	for k, v := range ex.Meta {
		meta[k] = v
	}
	details := []protoadapt.MessageV1{
		&errdetails.ErrorInfo{
			Reason:   string(e.Code()),
			Domain:   ex.Domain,
			Metadata: meta,
		},
	}

	if ex.IncludeDebugInfo {
		details = append(details, &errdetails.DebugInfo{
			StackEntries: stackEntries(e.Stack()),
		})
	}

	if ex.IncludeObject {
		// The converted object can hold values Struct has no kind for
		// (arbitrary info payloads); skip the detail in that case.
		if obj, err := structpb.NewStruct(e.ToObject(ex.Omitting)); err == nil {
			details = append(details, obj)
		}
	}

	// Try to attach the details. If that fails — return base.
	if with, err := base.WithDetails(details...); err == nil {
		return with
	}
	return base
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// family errors into gRPC statuses with google.rpc details.
//
// The provided mapper resolves transport status codes. Wrapped family
// errors are found with errors.As; foreign errors pass through as-is.
//
// The optional MetaFn can be used to extract additional metadata from
// context and the error to populate the details. If nil, no extra
// metadata will be added.
func UnaryServerInterceptor(m *mapper.Mapper, metaFn MetaFn) grpc.UnaryServerInterceptor {
	if metaFn == nil {
		metaFn = func(context.Context, *errorsupport.CodedError) Extras { return Extras{} }
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		var ce *errorsupport.CodedError
		if !errors.As(err, &ce) || ce == nil {
			// Not ours — return as-is.
			return nil, err
		}

		return nil, ToStatus(ce, m, metaFn(ctx, ce)).Err()
	}
}

// ExtractErrorInfo pulls the ErrorInfo detail out of a gRPC error, if
// present. Useful in tests and client code.
func ExtractErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if ei, ok := d.(*errdetails.ErrorInfo); ok {
			return ei, true
		}
	}
	return nil, false
}

// stackEntries renders captured frames one string per frame, the layout
// DebugInfo expects.
func stackEntries(st errorsupport.Stack) []string {
	out := make([]string, len(st))
	for i, f := range st {
		out[i] = fmt.Sprintf("%s %s:%d", f.Function, f.File, f.Line)
	}
	return out
}
