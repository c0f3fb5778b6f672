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

// freezeOverrides makes an immutable copy of the override map. Used when
// finalizing the mapper so later mutations to the builder cannot affect
// the frozen snapshot.
func freezeOverrides(src map[errorsupport.Code]Mapping) map[errorsupport.Code]Mapping {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[errorsupport.Code]Mapping, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// freezeVariantDefaults makes an immutable copy of the variant default
// map.
func freezeVariantDefaults(src map[string]Mapping) map[string]Mapping {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[string]Mapping, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
