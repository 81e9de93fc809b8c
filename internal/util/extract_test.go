package util

import (
	"testing"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{"bare object", `{"a": 1}`, `{"a": 1}`, true},
		{"prose around object", `Sure, here it is: {"a": 1}. Enjoy!`, `{"a": 1}`, true},
		{"markdown fences", "```json\n{\"a\": 1}\n```", `{"a": 1}`, true},
		{"nested objects", `{"a": {"b": 2}}`, `{"a": {"b": 2}}`, true},
		{"no object", "no json here", "", false},
		{"reversed braces", "} then {", "", false},
		{"empty input", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractJSON(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ExtractJSON(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
