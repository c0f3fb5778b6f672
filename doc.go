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

// Package errorsupport provides structured, chainable application errors:
// a base error type carrying a stable symbolic code, an optional cause (or
// ordered list of causes), and arbitrary contextual info, plus a factory
// for deriving named/coded error variants and safe serialization to a
// plain structure and to JSON text.
//
// # Variants
//
// A Variant is a distinct error type identified by a (code, name) pair.
// Define mints one from either half, deriving the other:
//
//	Widget, err := errorsupport.Define("", "WidgetError") // code E_WIDGET
//
// Variants subclass into single-inheritance chains of unlimited depth, and
// IsInstance walks that chain, so an instance of a subclassed variant tests
// positive for every ancestor:
//
//	Gear := Widget.MustSubclass("", "GearError")
//	Widget.IsInstance(Gear.New("stripped")) // true
//
// # Instances
//
// Variant.New constructs a CodedError. Construction never fails: missing
// messages, foreign causes, non-error cause values, and nil entries in a
// cause list are all valid inputs with defined rendering. The message is
// rendered eagerly at construction into a single line:
//
//	<code>: <message>
//	<code>: <message>: <cause message>
//	<code>: <message>: [<cause message>, <cause message>]
//
// The NoCode and NoMessage sentinels stand in for an absent code or
// message. A wrapped cause contributes its own already-rendered message,
// so deep chains accumulate left to right without re-walking the graph.
//
// # Serialization
//
// ToObject converts an instance to a plain map, replacing the values of
// omitted keys with the Omitted marker (the key stays present) and
// recursing through the cause chain via AnyToObject. ToJSONText encodes
// that map and is guaranteed never to fail: if the encoder rejects the
// structure, a fixed two-key fallback shape is produced instead.
//
// # Interop
//
// CodedError implements error, fmt.Formatter, and Unwrap() []error, so
// instances cooperate with errors.Is, errors.As, and %+v stack printing.
// Subpackages adapt instances to transports and logging: mapper resolves
// HTTP/gRPC statuses, grpcx and httpx build responses, and zerologx
// renders instances as structured log fields.
package errorsupport
