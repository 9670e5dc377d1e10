package docs

import "strings"

// summaryLimit caps the derived short summary length, in runes. Longer
// summaries are cut and marked with an ellipsis.
const summaryLimit = 200

// Summarize derives a short one-paragraph summary from full documentation
// content: a leading three-hyphen metadata block is stripped, then the first
// paragraph that is not a Markdown heading is taken with its line breaks
// collapsed to spaces. When the content is nothing but headings, the first
// paragraph is used as-is. Returns "" when nothing usable remains.
func Summarize(content string) string {
	body := content
	if strings.HasPrefix(body, "---") {
		parts := strings.SplitN(body, "---", 3)
		if len(parts) == 3 {
			body = strings.TrimSpace(parts[2])
		}
	}

	var paragraphs []string
	for _, p := range strings.Split(body, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}

	summary := ""
	for _, p := range paragraphs {
		if !strings.HasPrefix(p, "#") {
			summary = strings.TrimSpace(strings.ReplaceAll(p, "\n", " "))
			break
		}
	}
	if summary == "" && len(paragraphs) > 0 {
		summary = strings.TrimSpace(strings.ReplaceAll(paragraphs[0], "\n", " "))
	}

	if runes := []rune(summary); len(runes) > summaryLimit {
		summary = string(runes[:summaryLimit-3]) + "..."
	}
	return summary
}
