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
	"fmt"
	"reflect"
)

// Omission names the keys whose values ToObject replaces with the Omitted
// marker. A nil Omission means OmitDefault.
type Omission []string

// OmitDefault returns the default omission set, which hides stacks.
func OmitDefault() Omission { return Omission{"stack"} }

// OmitNone returns an empty, non-nil omission set: every key keeps its
// real value.
func OmitNone() Omission { return Omission{} }

// Omit builds an omission set from the given keys, dropping empty ones.
func Omit(keys ...string) Omission {
	out := make(Omission, 0, len(keys))
	for _, k := range keys {
		if k == "" {
			continue
		}
		out = append(out, k)
	}
	return out
}

// orDefault resolves a nil set to the default one.
func (o Omission) orDefault() Omission {
	if o == nil {
		return OmitDefault()
	}
	return o
}

// omits reports whether key is named in the set.
func (o Omission) omits(key string) bool {
	for _, k := range o {
		if k == key {
			return true
		}
	}
	return false
}

const (
	// maxConvertDepth bounds recursion through nested causes and payloads.
	maxConvertDepth = 256

	// circularValue replaces a value revisited along one conversion path,
	// so cyclic cause graphs convert without recursing forever.
	circularValue = "[circular]"

	// truncatedValue replaces values nested beyond maxConvertDepth.
	truncatedValue = "[truncated]"
)

// ToObject converts the instance to a plain, JSON-ready map.
//
// The keys code, name, message, and stack are always present; cause and
// info appear only when set. A key named in omitting keeps its place with
// the Omitted marker as its value. The cause converts recursively through
// AnyToObject unless omitted, in which case the marker is placed directly
// with no recursion attempted.
//
// The info value is copied verbatim at its top level: its own keys are
// never individually omitted by this call, no matter what omitting names.
// Info payloads nested inside a converted cause are subject to omission
// like any other plain structure reached by recursion.
//
// A nil omitting set means OmitDefault, so stacks are hidden unless asked
// for.
func (e *CodedError) ToObject(omitting Omission) map[string]any {
	if e == nil {
		return nil
	}
	om := omitting.orDefault()
	vs := newVisit()
	if p, ok := pathPointer(e); ok {
		vs.enter(p)
	}
	return e.toObject(om, vs)
}

func (e *CodedError) toObject(om Omission, vs *visit) map[string]any {
	out := make(map[string]any, 6)
	out["code"] = omitOr(om, "code", string(e.code))
	out["name"] = omitOr(om, "name", e.name)
	out["message"] = omitOr(om, "message", e.message)
	out["stack"] = omitOr(om, "stack", e.stack.String())
	if e.hasCause {
		if om.omits("cause") {
			out["cause"] = Omitted
		} else {
			out["cause"] = anyToObject(e.cause, om, vs)
		}
	}
	if e.hasInfo {
		out["info"] = omitOr(om, "info", e.info)
	}
	return out
}

// AnyToObject converts an arbitrary value the way ToObject converts a
// cause.
//
// nil and simple values pass through unchanged. Lists convert element by
// element, keeping nil entries. Family members convert via their own
// ToObject; foreign errors reduce to exactly the keys message, name, and
// stack, each subject to omission. String-keyed maps convert per key,
// omitted keys carrying the marker. Other composite values pass through
// unchanged for the encoder to handle.
func AnyToObject(item any, omitting Omission) any {
	return anyToObject(item, omitting.orDefault(), newVisit())
}

func anyToObject(item any, om Omission, vs *visit) any {
	if isNil(item) {
		return nil
	}
	if vs.depth >= maxConvertDepth {
		return truncatedValue
	}
	if p, ok := pathPointer(item); ok {
		if !vs.enter(p) {
			return circularValue
		}
		defer vs.leave(p)
	}
	vs.depth++
	defer func() { vs.depth-- }()

	switch v := item.(type) {
	case *CodedError:
		return v.toObject(om, vs)
	case error:
		return foreignToObject(v, om)
	}

	rv := reflect.ValueOf(item)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = anyToObject(rv.Index(i).Interface(), om, vs)
		}
		return out
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return item
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := iter.Key().String()
			if om.omits(k) {
				out[k] = Omitted
				continue
			}
			out[k] = anyToObject(iter.Value().Interface(), om, vs)
		}
		return out
	default:
		return item
	}
}

// foreignToObject reduces a non-family error to the three keys a generic
// error exposes.
func foreignToObject(err error, om Omission) map[string]any {
	out := make(map[string]any, 3)
	out["message"] = omitOr(om, "message", err.Error())
	out["name"] = omitOr(om, "name", fmt.Sprintf("%T", err))
	// Foreign errors carry no capture, so an unomitted stack is null.
	out["stack"] = omitOr(om, "stack", nil)
	return out
}

// omitOr returns the Omitted marker when key is in the set, v otherwise.
func omitOr(om Omission, key string, v any) any {
	if om.omits(key) {
		return Omitted
	}
	return v
}

// visit tracks one conversion path. Pointer identities are marked on
// entry and cleared on exit, so shared non-cyclic values convert normally
// while true cycles compact to circularValue.
type visit struct {
	seen  map[uintptr]struct{}
	depth int
}

func newVisit() *visit {
	return &visit{seen: make(map[uintptr]struct{})}
}

func (vs *visit) enter(p uintptr) bool {
	if _, dup := vs.seen[p]; dup {
		return false
	}
	vs.seen[p] = struct{}{}
	return true
}

func (vs *visit) leave(p uintptr) {
	delete(vs.seen, p)
}

// pathPointer returns a stable identity for values that can participate
// in reference cycles.
func pathPointer(v any) (uintptr, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice:
		if rv.IsNil() {
			return 0, false
		}
		return rv.Pointer(), true
	}
	return 0, false
}

// isNil reports whether v is nil or a typed nil pointer, map, slice,
// function, channel, or interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
