package stubgen

import (
	"embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/docmark/docmark/internal/scanner"
)

//go:embed templates/*.md
var builtinTemplates embed.FS

// minimalTemplate is synthesized when neither a kind-specific nor a function
// template can be loaded. It carries only the metadata placeholders.
const minimalTemplate = `---
source_file: {source_file}
kind: {kind}
name: {name}
---

# {name}
`

// loadTemplate selects the template content for a structural kind. A
// kind-specific file is preferred, then the function template, then the
// minimal inline fallback. dir == "" selects the built-in embedded set.
func loadTemplate(dir string, kind scanner.Kind) string {
	for _, name := range []string{string(kind) + ".md", "function.md"} {
		if dir == "" {
			if data, err := builtinTemplates.ReadFile("templates/" + name); err == nil {
				return string(data)
			}
			continue
		}
		if data, err := os.ReadFile(filepath.Join(dir, name)); err == nil {
			return string(data)
		}
	}
	return minimalTemplate
}

// render substitutes the recognized placeholders into a template. The module
// path is exposed dotted; the source path is root-relative with forward
// slashes.
func render(tmpl string, m scanner.Mark, modulePath, sourceFile string) string {
	return strings.NewReplacer(
		"{name}", m.Name,
		"{method_name}", m.Name,
		"{kind}", string(m.Kind),
		"{module_path}", modulePath,
		"{source_file}", sourceFile,
	).Replace(tmpl)
}
