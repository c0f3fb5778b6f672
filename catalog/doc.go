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

// Package catalog declares the error variants most services end up
// needing, so codebases share one code per common failure mode instead of
// minting near-duplicates.
//
// The variants form two small hierarchies, bad input and bad state, plus
// two standalone conditions:
//
//	IllegalArgument (E_ILLEGAL_ARGUMENT)
//	├── MissingRequiredArgument (E_MISSING_REQUIRED_ARGUMENT)
//	└── IllegalArgumentType (E_ILLEGAL_ARGUMENT_TYPE)
//	IllegalState (E_ILLEGAL_STATE)
//	├── NotInitialized (E_NOT_INITIALIZED)
//	└── AlreadyInitialized (E_ALREADY_INITIALIZED)
//	MethodNotImplemented (E_METHOD_NOT_IMPLEMENTED)
//	Timeout (E_TIMEOUT)
//
// Use them like any other variant:
//
//	if limit < 0 {
//	    return catalog.IllegalArgument.New("limit must not be negative",
//	        errorsupport.WithInfoOption(map[string]any{"limit": limit}))
//	}
//
// The hierarchies matter to classification: an instance of
// MissingRequiredArgument is also an instance of IllegalArgument, and the
// mapper package resolves transport mappings through the same chain.
package catalog
