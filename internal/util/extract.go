package util

import (
	"strings"
)

// ExtractJSON pulls the outermost JSON object out of an LLM reply, which
// may wrap it in prose or markdown fences. Returns false when no object
// boundaries are present.
func ExtractJSON(s string) (string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return s[start : end+1], true
}
