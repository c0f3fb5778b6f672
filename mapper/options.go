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
	errorsupport "github.com/northscaler/error-support"
)

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithOverride registers an exact mapping for the given code. Overrides
// take precedence over every variant default, including the error's own,
// and key on the instance code, so they also catch WithCode refinements.
func WithOverride(c errorsupport.Code, m Mapping) Option {
	return func(b *builder) { b.overrides[c] = m }
}

// WithVariantDefault sets or replaces the mapping consulted when the
// named variant appears in an error's chain. Defaults for a subclass win
// over its ancestors' because resolution walks the chain bottom-up.
func WithVariantDefault(name string, m Mapping) Option {
	return func(b *builder) { b.variantDefaults[name] = m }
}

// WithFallback replaces the mapping used when nothing else matches:
// foreign errors, base instances, and chains with no default anywhere.
// The library fallback is 500/codes.Internal.
func WithFallback(m Mapping) Option {
	return func(b *builder) { b.fallback = m }
}
