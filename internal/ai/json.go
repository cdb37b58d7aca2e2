package ai

import "strings"

// ExtractJSON strips markdown fencing and surrounding prose from a model
// response, returning the best-effort JSON payload. Responses may arrive as
// bare JSON, ```json fenced blocks, or JSON embedded in prose.
func ExtractJSON(raw string) string {
	cleaned := strings.TrimSpace(raw)

	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSpace(cleaned)
		if idx := strings.LastIndex(cleaned, "```"); idx != -1 {
			cleaned = cleaned[:idx]
		}
		return strings.TrimSpace(strings.Trim(cleaned, "`"))
	}

	// JSON embedded in prose: take the outermost braces.
	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start != -1 && end > start {
		return cleaned[start : end+1]
	}

	return strings.TrimSpace(strings.Trim(cleaned, "`"))
}
