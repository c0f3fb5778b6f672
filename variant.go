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

	"github.com/northscaler/error-support/naming"
)

// Code is the stable symbolic identifier of an error variant, conventionally
// prefixed with "E_" ("E_ILLEGAL_ARGUMENT").
//
// Codes are opaque to this package: derived ones follow the naming rules,
// explicitly supplied ones are taken as-is with no validation. The empty
// code means "not provided".
type Code string

// String returns the code as a plain string.
func (c Code) String() string { return string(c) }

// Variant is a distinct error type minted by Define or Subclass.
//
// A variant binds a (code, name) pair and an optional parent, forming a
// single-inheritance chain. Both halves of the pair are non-empty after
// creation. Variants are immutable and safe for concurrent use.
type Variant struct {
	code   Code
	name   string
	parent *Variant
}

// baseVariant is the engine's own base type, realized by the package-level
// New constructor. It terminates no chain and matches no ancestry test:
// IsInstance walks a candidate's chain up to, but never including, this
// variant.
var baseVariant = &Variant{name: "CodedError"}

// Define mints a new root variant from a code and/or a name.
//
// Whichever half is missing is derived from the other (see package naming):
//
//	Define("", "FooError") // code E_FOO
//	Define("E_FOO", "")    // name FooError
//	Define("E_X", "YError") // both kept as given
//
// Supplying neither fails with an error satisfying
// errors.Is(err, ErrConfiguration).
func Define(code Code, name string) (*Variant, error) {
	c, n, err := naming.Derive(string(code), name)
	if err != nil {
		return nil, fmt.Errorf("errorsupport: define variant: %w: %w", ErrConfiguration, err)
	}
	return &Variant{code: Code(c), name: n}, nil
}

// MustDefine is the panic-on-error variant of Define. It is useful for
// declaring package-level variants in var blocks.
func MustDefine(code Code, name string) *Variant {
	v, err := Define(code, name)
	if err != nil {
		panic(err)
	}
	return v
}

// Subclass mints a child variant whose parent is v, re-deriving the
// (code, name) pair the same way Define does. Chains may be subclassed to
// any depth. Supplying neither a code nor a name fails with an error
// satisfying errors.Is(err, ErrConfiguration).
func (v *Variant) Subclass(code Code, name string) (*Variant, error) {
	c, n, err := naming.Derive(string(code), name)
	if err != nil {
		return nil, fmt.Errorf("errorsupport: subclass %s: %w: %w", v.name, ErrConfiguration, err)
	}
	return &Variant{code: Code(c), name: n, parent: v}, nil
}

// MustSubclass is the panic-on-error variant of Subclass.
func (v *Variant) MustSubclass(code Code, name string) *Variant {
	child, err := v.Subclass(code, name)
	if err != nil {
		panic(err)
	}
	return child
}

// IsInstance reports whether candidate is a family error whose variant
// chain contains a variant with v's name, anywhere from the candidate's
// own variant up to, but not including, the engine's base type.
//
// The test matches on variant names, so a per-instance name override does
// not affect it. A nil, foreign, or non-error candidate is simply not an
// instance; IsInstance never panics.
func (v *Variant) IsInstance(candidate any) bool {
	if v == nil || candidate == nil {
		return false
	}
	ce, ok := candidate.(*CodedError)
	if !ok || ce == nil {
		return false
	}
	for a := ce.variant; a != nil && a != baseVariant; a = a.parent {
		if a.name == v.name {
			return true
		}
	}
	return false
}

// Code returns the variant's symbolic code.
func (v *Variant) Code() Code { return v.code }

// Name returns the variant's display name.
func (v *Variant) Name() string { return v.name }

// Parent returns the variant this one subclasses, or nil for root variants.
func (v *Variant) Parent() *Variant { return v.parent }

// String renders the variant as "name(code)" for diagnostics.
func (v *Variant) String() string {
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s(%s)", v.name, v.code)
}
