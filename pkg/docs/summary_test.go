package docs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "plain paragraph",
			content: "This is the summary.",
			want:    "This is the summary.",
		},
		{
			name:    "frontmatter stripped",
			content: "---\na: b\n---\n\nBody text.",
			want:    "Body text.",
		},
		{
			name:    "heading skipped",
			content: "# Title\n\nFirst real paragraph.\n\nSecond paragraph.",
			want:    "First real paragraph.",
		},
		{
			name:    "line breaks collapsed",
			content: "First line\nsecond line\nthird line.",
			want:    "First line second line third line.",
		},
		{
			name:    "only headings falls back to first",
			content: "# Title\n\n## Subtitle",
			want:    "# Title",
		},
		{
			name:    "frontmatter and heading",
			content: "---\ntitle: X\n---\n\n# Heading\n\nThe description.",
			want:    "The description.",
		},
		{
			name:    "empty content",
			content: "",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.content)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSummarizeUnterminatedFrontmatter(t *testing.T) {
	// The opening marker alone is not a metadata block; collapsed verbatim.
	got := Summarize("---\na: b")
	assert.Equal(t, "--- a: b", got)
}

func TestSummarizeTruncation(t *testing.T) {
	content := strings.Repeat("x", 250)
	got := Summarize(content)

	assert.LessOrEqual(t, len(got), 203)
	assert.True(t, strings.HasSuffix(got, "..."), "summary should end with ellipsis, got %q", got)
	assert.Equal(t, 200, len(got))
}

func TestSummarizeMetadataMarkersAbsent(t *testing.T) {
	got := Summarize("---\na: b\n---\n\nBody text.")
	assert.Equal(t, "Body text.", got)
	assert.NotContains(t, got, "---")
}
