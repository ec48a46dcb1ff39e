package llm

import (
	"fmt"
	"strings"
)

// ExtractJSON cuts the outermost JSON object out of a model response.
// Models wrap their JSON in prose and code fences, so everything
// before the first brace and after the last one is thrown away.
func ExtractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return "", fmt.Errorf("no JSON object in response")
	}
	return s[start : end+1], nil
}
