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

// Package naming derives the (code, name) pair that identifies an error
// variant when only one half is supplied.
//
// A "code" is the machine-facing identifier of a variant, conventionally
// prefixed with "E_" and written in upper snake case ("E_ILLEGAL_ARGUMENT").
// A "name" is the human-facing identifier, conventionally suffixed with
// "Error" and written in upper camel case ("IllegalArgumentError").
//
// Derive fills in whichever half is missing:
//
//   - name only: code = "E_" + UpperSnake(name), with one trailing "_ERROR"
//     stripped, so "FooError" yields "E_FOO" rather than "E_FOO_ERROR";
//   - code only: name = UpperCamel of the code with one leading "E_"
//     stripped, suffixed with "Error" unless already so suffixed, so
//     "E_FOO" yields "FooError";
//   - both: passed through unchanged, with no cross-validation;
//   - neither: an error wrapping ErrNoInput.
//
// The casing converters are deliberately mechanical. UpperSnake inserts an
// underscore before every uppercase letter, so an acronym like "HTTPError"
// becomes "E_H_T_T_P". Codes derived here are stable identifiers, not prose;
// keeping the conversion mechanical keeps round trips predictable.
package naming
