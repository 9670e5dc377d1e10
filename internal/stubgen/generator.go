// Package stubgen materializes missing documentation stub files for marked
// declarations, composing the scanner's discovery with the documentation
// tree's naming convention.
package stubgen

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/docmark/docmark/internal/scanner"
	"github.com/docmark/docmark/pkg/docs"
)

// TemplateDirError reports a caller-supplied template directory that does not
// exist. It is the only failure Generate propagates.
type TemplateDirError struct {
	Dir string
}

func (e *TemplateDirError) Error() string {
	return fmt.Sprintf("template directory not found: %s", e.Dir)
}

// Options configures a single Generate call.
type Options struct {
	// TemplateDir holds custom per-kind templates. Empty selects the
	// built-in embedded set.
	TemplateDir string

	// Include and Exclude are shell-glob patterns applied to the file's
	// root-relative path. Exclude wins over include.
	Include []string
	Exclude []string

	// DryRun lists targets without writing them.
	DryRun bool
}

// Generator creates documentation stubs from templates.
//
//docmark:doc
type Generator struct {
	Resolver *docs.Resolver
	Scanner  *scanner.Scanner
	Log      *slog.Logger
}

// New returns a Generator over the given resolver. A nil resolver gets a
// default one.
func New(resolver *docs.Resolver, log *slog.Logger) *Generator {
	if resolver == nil {
		resolver = &docs.Resolver{Log: log}
	}
	return &Generator{Resolver: resolver, Scanner: &scanner.Scanner{Log: log}, Log: log}
}

func (g *Generator) log() *slog.Logger {
	if g.Log != nil {
		return g.Log
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (g *Generator) scanner() *scanner.Scanner {
	if g.Scanner != nil {
		return g.Scanner
	}
	return &scanner.Scanner{Log: g.Log}
}

// Generate scans one source file and creates a documentation stub for every
// marked declaration that does not already have one. It returns the target
// paths created, or with DryRun the paths that would be created. Existing
// targets are skipped silently and never overwritten.
func (g *Generator) Generate(path string, opts Options) ([]string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, nil
	}

	root, ok := g.Resolver.LocateRoot()
	if !ok {
		root = filepath.Dir(abs)
	}

	if !shouldProcess(abs, root, opts.Include, opts.Exclude) {
		g.log().Debug("file rejected by filter", "path", abs)
		return nil, nil
	}

	if opts.TemplateDir != "" {
		if info, err := os.Stat(opts.TemplateDir); err != nil || !info.IsDir() {
			return nil, &TemplateDirError{Dir: opts.TemplateDir}
		}
	}

	area, modulePath := splitSource(abs, root)

	marks := g.scanner().Scan(abs)
	if len(marks) == 0 {
		return nil, nil
	}

	docsBase := filepath.Join(root, "docs")
	targetDir := docsBase
	if area != "" {
		targetDir = filepath.Join(docsBase, area)
	}
	if modulePath != "" {
		targetDir = filepath.Join(targetDir, filepath.FromSlash(modulePath))
	}

	sourceRel := filepath.ToSlash(abs)
	if rel, err := filepath.Rel(root, abs); err == nil {
		sourceRel = filepath.ToSlash(rel)
	}

	var created []string
	for _, m := range marks {
		target := filepath.Join(targetDir, m.Name+".md")
		if m.Filename != "" {
			target = filepath.Join(docsBase, filepath.FromSlash(m.Filename))
		}
		if _, err := os.Stat(target); err == nil {
			g.log().Debug("stub already exists", "target", target)
			continue
		}

		content := render(loadTemplate(opts.TemplateDir, m.Kind), m, strings.ReplaceAll(modulePath, "/", "."), sourceRel)

		if !opts.DryRun {
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				g.log().Error("failed to create stub directory", "target", target, "error", err)
				continue
			}
			if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
				g.log().Error("failed to write stub", "target", target, "error", err)
				continue
			}
			g.log().Info("created documentation stub", "target", target, "name", m.Name, "kind", m.Kind)
		}
		created = append(created, target)
	}
	return created, nil
}

// splitSource derives the documentation sub-area and module path for a source
// file. Out-of-area files and files whose root-relative path cannot be
// determined fall back to the bare file name.
func splitSource(path, root string) (area, modulePath string) {
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", fileStem(path)
	}
	if area, modulePath, ok := docs.AreaSplit(rel); ok {
		return area, modulePath
	}
	return "", fileStem(path)
}

func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
