package ai

import (
	"encoding/json"
	"testing"
)

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"bare json", `{"a":1}`, `{"a":1}`},
		{"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"fence without language", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"embedded in prose", "Here is the result:\n{\"a\":1}\nHope that helps!", `{"a":1}`},
		{"whitespace", "  \n {\"a\":1} \n ", `{"a":1}`},
	}
	for _, c := range cases {
		got := ExtractJSON(c.in)
		if got != c.want {
			t.Errorf("%s: got %q, want %q", c.name, got, c.want)
			continue
		}
		var out map[string]any
		if err := json.Unmarshal([]byte(got), &out); err != nil {
			t.Errorf("%s: extracted payload does not parse: %v", c.name, err)
		}
	}
}

func TestExtractJSON_NonJSONInput(t *testing.T) {
	if got := ExtractJSON("plain prose, no braces"); got != "plain prose, no braces" {
		t.Errorf("got %q", got)
	}
}
