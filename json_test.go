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
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestToJSONText_MatchesToObject(t *testing.T) {
	e := MustDefine("", "RoundTripError").New("boom",
		WithCauseOption(errors.New("why")),
		WithInfoOption(map[string]any{"n": 1, "tags": []any{"a", "b"}}),
	)

	var fromText, fromObject any
	if err := json.Unmarshal([]byte(e.ToJSONText(TextConfig{})), &fromText); err != nil {
		t.Fatalf("ToJSONText produced unparsable text: %v", err)
	}
	b, err := json.Marshal(e.ToObject(nil))
	if err != nil {
		t.Fatalf("marshal of ToObject failed: %v", err)
	}
	if err := json.Unmarshal(b, &fromObject); err != nil {
		t.Fatalf("re-parse of ToObject failed: %v", err)
	}
	if !reflect.DeepEqual(fromText, fromObject) {
		t.Fatalf("text and object disagree:\n%#v\n%#v", fromText, fromObject)
	}
}

func TestToJSONText_Indent(t *testing.T) {
	e := New("boom")
	txt := e.ToJSONText(TextConfig{Indent: "  "})
	if !strings.Contains(txt, "\n  ") {
		t.Fatalf("indented text has no indented lines:\n%s", txt)
	}
	var parsed map[string]any
	if err := json.Unmarshal([]byte(txt), &parsed); err != nil {
		t.Fatalf("indented text unparsable: %v", err)
	}
}

func TestToJSONText_OmissionFlowsThrough(t *testing.T) {
	e := New("boom")
	var parsed map[string]any
	if err := json.Unmarshal([]byte(e.ToJSONText(TextConfig{Omitting: OmitNone()})), &parsed); err != nil {
		t.Fatalf("unparsable: %v", err)
	}
	if s, ok := parsed["stack"].(string); !ok || s == "" {
		t.Fatalf("OmitNone must surface the stack: %#v", parsed["stack"])
	}
}

func TestToJSONText_FallbackOnCyclicInfo(t *testing.T) {
	info := map[string]any{}
	info["self"] = info
	e := MustDefine("", "LoopedInfoError").New("boom", WithInfoOption(info))

	txt := e.ToJSONText(TextConfig{})
	var parsed map[string]any
	if err := json.Unmarshal([]byte(txt), &parsed); err != nil {
		t.Fatalf("fallback text unparsable: %v\n%s", err, txt)
	}
	if len(parsed) != 2 {
		t.Fatalf("fallback must have exactly two top-level keys: %#v", parsed)
	}
	ser, ok := parsed["jsonStringifyError"].(map[string]any)
	if !ok {
		t.Fatalf("missing jsonStringifyError: %#v", parsed)
	}
	if msg, _ := ser["message"].(string); !strings.Contains(msg, "cycle") {
		t.Fatalf("serialization failure message = %#v", ser["message"])
	}
	inner, ok := parsed["error"].(map[string]any)
	if !ok {
		t.Fatalf("missing error: %#v", parsed)
	}
	if inner["code"] != "E_LOOPED_INFO" || inner["message"] != "E_LOOPED_INFO: boom" {
		t.Fatalf("fallback error summary = %#v", inner)
	}
	if inner["stack"] != nil {
		t.Fatalf("default omission reaches the fallback too: %#v", inner["stack"])
	}
}

func TestToJSONText_FallbackHonorsOmission(t *testing.T) {
	e := New("boom", WithInfoOption(make(chan int)))

	var parsed map[string]any
	if err := json.Unmarshal([]byte(e.ToJSONText(TextConfig{Omitting: OmitNone()})), &parsed); err != nil {
		t.Fatalf("fallback text unparsable: %v", err)
	}
	inner := parsed["error"].(map[string]any)
	if s, ok := inner["stack"].(string); !ok || s == "" {
		t.Fatalf("OmitNone must surface the stack in the fallback: %#v", inner["stack"])
	}
}

func TestToJSONText_FallbackOnFormatterError(t *testing.T) {
	e := New("boom")
	txt := e.ToJSONText(TextConfig{
		Formatter: func(any) ([]byte, error) { return nil, errors.New("nope") },
	})

	var parsed map[string]any
	if err := json.Unmarshal([]byte(txt), &parsed); err != nil {
		t.Fatalf("fallback text unparsable: %v", err)
	}
	ser := parsed["jsonStringifyError"].(map[string]any)
	if ser["message"] != "nope" {
		t.Fatalf("failure message = %#v", ser["message"])
	}
}

func TestToJSONText_FallbackOnFormatterPanic(t *testing.T) {
	e := New("boom")
	txt := e.ToJSONText(TextConfig{
		Formatter: func(any) ([]byte, error) { panic("kaboom") },
	})

	var parsed map[string]any
	if err := json.Unmarshal([]byte(txt), &parsed); err != nil {
		t.Fatalf("fallback text unparsable: %v", err)
	}
	ser := parsed["jsonStringifyError"].(map[string]any)
	if msg, _ := ser["message"].(string); !strings.Contains(msg, "kaboom") {
		t.Fatalf("panic text must reach the failure message: %#v", ser["message"])
	}
}

func TestToJSONText_CustomFormatter(t *testing.T) {
	e := New("boom")
	txt := e.ToJSONText(TextConfig{
		Formatter: func(v any) ([]byte, error) { return json.Marshal(map[string]any{"wrapped": v}) },
	})
	var parsed map[string]any
	if err := json.Unmarshal([]byte(txt), &parsed); err != nil {
		t.Fatalf("unparsable: %v", err)
	}
	if _, ok := parsed["wrapped"]; !ok {
		t.Fatalf("custom formatter output must be used verbatim: %#v", parsed)
	}
}

func TestToJSONText_NilReceiver(t *testing.T) {
	var e *CodedError
	if got := e.ToJSONText(TextConfig{}); got != "null" {
		t.Fatalf("nil receiver = %q, want null", got)
	}
}
