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

const (
	// NoCode is substituted for the code when a rendered message has none.
	NoCode = "NO_CODE"

	// NoMessage is substituted for the message when a rendered message has
	// none, including cause entries whose own message is empty.
	NoMessage = "NO_MESSAGE"
)

// Omitted is the marker value an omitted key carries in ToObject output.
//
// An omitted key is never dropped from the structure: it stays present
// with this marker as its value, which keeps "omitted" distinguishable
// from "absent". The marker encodes as JSON null.
var Omitted any = nil

// configurationVariant backs ErrConfiguration. Built literally rather than
// through Define: Define's failure path wraps ErrConfiguration, so routing
// this one through the factory would make the initializers cyclic.
var configurationVariant = &Variant{code: "E_CONFIGURATION", name: "ConfigurationError"}

// ErrConfiguration is the failure returned, wrapped, by Define and
// Subclass when neither a code nor a name is supplied. It is the only
// condition this package ever fails with; everything else is defined
// behavior. Test for it with errors.Is.
var ErrConfiguration = configurationVariant.New("a code or a name is required")
