package node

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestParseSchema(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		wantNil bool
		wantErr bool
	}{
		{"empty", "", true, false},
		{"blank", "  \n\t", true, false},
		{"empty object", "{}", true, false},
		{"object", `{"type":"object"}`, false, false},
		{"truncated", `{"type":`, false, true},
		{"array", `[1,2]`, false, true},
		{"string", `"object"`, false, true},
		{"null", `null`, false, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ParseSchema(c.in)
			if c.wantErr {
				if !IsInvalidSchema(err) {
					t.Fatalf("expected InvalidSchema, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if (got == nil) != c.wantNil {
				t.Fatalf("got %v, wantNil=%v", got, c.wantNil)
			}
		})
	}
}

func TestBuildChatRequest_Body(t *testing.T) {
	p := Params{Temperature: 0.1, MaxTokens: 50}
	req, err := BuildChatRequest("m", "Say hi in one word.", p)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	b, _ := json.Marshal(req)
	var body map[string]any
	if err := json.Unmarshal(b, &body); err != nil {
		t.Fatalf("json: %v", err)
	}
	if body["model"] != "m" || body["temperature"] != 0.1 || body["max_tokens"] != float64(50) {
		t.Fatalf("unexpected body: %s", b)
	}
	if _, ok := body["response_format"]; ok {
		t.Fatalf("response_format should be absent: %s", b)
	}
	msgs := body["messages"].([]any)
	first := msgs[0].(map[string]any)
	if len(msgs) != 1 || first["role"] != "user" || first["content"] != "Say hi in one word." {
		t.Fatalf("unexpected messages: %s", b)
	}
}

func TestBuildChatRequest_OmitsMaxTokensAndKeepsZeroTemperature(t *testing.T) {
	req, err := BuildChatRequest("m", "x", Params{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	b, _ := json.Marshal(req)
	s := string(b)
	if strings.Contains(s, "max_tokens") {
		t.Fatalf("max_tokens should be omitted: %s", s)
	}
	if !strings.Contains(s, `"temperature":0`) {
		t.Fatalf("temperature must always be sent: %s", s)
	}
}

func TestBuildChatRequest_ResponseFormat(t *testing.T) {
	p := Params{JSONSchema: `{"type":"object","properties":{"greeting":{"type":"string"}}}`}
	req, err := BuildChatRequest("m", "x", p)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	b, _ := json.Marshal(req)
	want := `"response_format":{"type":"json_schema","json_schema":{"name":"response_schema","strict":true,"schema":{`
	if !strings.Contains(string(b), want) {
		t.Fatalf("missing response_format in %s", b)
	}
	if requestedSchema(req) == nil {
		t.Fatalf("requestedSchema should return the schema")
	}
}

func TestRender(t *testing.T) {
	got, err := render("message", "plain {text}", nil)
	if err != nil || got != "plain {text}" {
		t.Fatalf("plain text changed: %q %v", got, err)
	}
	got, err = render("message", "Hello {{.who}}", map[string]any{"who": "world"})
	if err != nil || got != "Hello world" {
		t.Fatalf("render: %q %v", got, err)
	}
	if _, err := render("message", "{{.who", nil); !IsInvalidParameter(err) {
		t.Fatalf("expected parse failure, got %v", err)
	}
}
