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

package catalog

import (
	errorsupport "github.com/northscaler/error-support"
)

var (
	// IllegalArgument flags an argument that fails validation.
	IllegalArgument = errorsupport.MustDefine("", "IllegalArgumentError")

	// MissingRequiredArgument flags an argument the operation requires
	// but did not receive. Subclasses IllegalArgument.
	MissingRequiredArgument = IllegalArgument.MustSubclass("", "MissingRequiredArgumentError")

	// IllegalArgumentType flags an argument of the wrong type or shape.
	// Subclasses IllegalArgument.
	IllegalArgumentType = IllegalArgument.MustSubclass("", "IllegalArgumentTypeError")

	// IllegalState flags an operation invoked while its receiver is in a
	// state that cannot serve it.
	IllegalState = errorsupport.MustDefine("", "IllegalStateError")

	// NotInitialized flags use before initialization completed.
	// Subclasses IllegalState.
	NotInitialized = IllegalState.MustSubclass("", "NotInitializedError")

	// AlreadyInitialized flags initialization attempted twice.
	// Subclasses IllegalState.
	AlreadyInitialized = IllegalState.MustSubclass("", "AlreadyInitializedError")

	// MethodNotImplemented flags an operation that is declared but not
	// yet written.
	MethodNotImplemented = errorsupport.MustDefine("", "MethodNotImplementedError")

	// Timeout flags an operation that ran out of time.
	Timeout = errorsupport.MustDefine("", "TimeoutError")
)
