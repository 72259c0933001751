package llm

import (
	"regexp"
	"strings"
)

var fencedBlockRe = regexp.MustCompile("```(?:json)?\\s*([\\s\\S]*?)```")

// extractPayload pulls the structured payload out of a possibly decorated
// model response: the inner content of the first fenced code block when one
// exists, otherwise the whole text. Surrounding prose outside the outermost
// braces is trimmed either way.
func extractPayload(content string) string {
	content = strings.TrimSpace(content)

	if m := fencedBlockRe.FindStringSubmatch(content); m != nil {
		content = strings.TrimSpace(m[1])
	}

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}

// truncateForLog keeps logged response excerpts bounded.
func truncateForLog(s string) string {
	const max = 500
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}
