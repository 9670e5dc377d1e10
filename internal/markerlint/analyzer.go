// Package markerlint provides a linter for docmark marker directives.
package markerlint

import (
	"go/ast"
	"go/token"
	"regexp"
	"strings"

	"golang.org/x/tools/go/analysis"

	"github.com/docmark/docmark/internal/scanner"
)

// Analyzer checks docmark marker directives for correct usage.
var Analyzer = &analysis.Analyzer{
	Name: "docmarklint",
	Doc:  "checks docmark marker directives for correct placement and arguments",
	Run:  run,
}

var argRe = regexp.MustCompile(`^(\w+)=("[^"]*"|'[^']*')$`)

func run(pass *analysis.Pass) (interface{}, error) {
	seen := map[string]token.Pos{}
	for _, file := range pass.Files {
		ordered, attached := attachedDirectives(file)
		checkAttached(pass, ordered, seen)
		checkDetached(pass, file, attached)
	}
	return nil, nil
}

// attachedDirectives collects the directive comments that document a type or
// function declaration, the only placements the scanner honors. The slice
// keeps document order.
func attachedDirectives(file *ast.File) ([]*ast.Comment, map[*ast.Comment]bool) {
	var ordered []*ast.Comment
	attached := map[*ast.Comment]bool{}
	collect := func(doc *ast.CommentGroup) {
		if doc == nil {
			return
		}
		for _, c := range doc.List {
			if isDirective(c.Text) && !attached[c] {
				ordered = append(ordered, c)
				attached[c] = true
			}
		}
	}
	ast.Inspect(file, func(n ast.Node) bool {
		switch decl := n.(type) {
		case *ast.FuncDecl:
			collect(decl.Doc)
		case *ast.GenDecl:
			if decl.Tok != token.TYPE {
				return true
			}
			// The declaration doc comment attaches to its TypeSpec
			// only when the declaration is not parenthesized.
			if len(decl.Specs) == 1 {
				collect(decl.Doc)
			}
			for _, spec := range decl.Specs {
				if ts, ok := spec.(*ast.TypeSpec); ok {
					collect(ts.Doc)
				}
			}
		}
		return true
	})
	return ordered, attached
}

func checkAttached(pass *analysis.Pass, ordered []*ast.Comment, seen map[string]token.Pos) {
	for _, c := range ordered {
		text := strings.TrimSpace(strings.TrimPrefix(c.Text, "//"))
		args := strings.TrimSpace(strings.TrimPrefix(text, scanner.Directive))
		checkArgs(pass, c, args, seen)
	}
}

func checkArgs(pass *analysis.Pass, c *ast.Comment, args string, seen map[string]token.Pos) {
	for _, tok := range strings.Fields(args) {
		m := argRe.FindStringSubmatch(tok)
		if m == nil {
			pass.Reportf(c.Pos(), "malformed marker argument %q: expect key=\"value\"", tok)
			continue
		}
		if m[1] != "filename" {
			pass.Reportf(c.Pos(), "unknown marker argument %q", m[1])
			continue
		}
		value := strings.Trim(m[2], `"'`)
		if value == "" {
			pass.Reportf(c.Pos(), "empty filename in marker directive")
			continue
		}
		if prev, dup := seen[value]; dup {
			pass.Reportf(c.Pos(), "duplicate filename %q also used at %s", value, pass.Fset.Position(prev))
		} else {
			seen[value] = c.Pos()
		}
	}
}

// checkDetached reports directives the scanner would never see: comments not
// serving as the doc comment of a type or function declaration.
func checkDetached(pass *analysis.Pass, file *ast.File, attached map[*ast.Comment]bool) {
	for _, group := range file.Comments {
		for _, c := range group.List {
			if isDirective(c.Text) && !attached[c] {
				pass.Reportf(c.Pos(), "marker directive is not attached to a type or function declaration")
			}
		}
	}
}

func isDirective(comment string) bool {
	text := strings.TrimPrefix(comment, "//")
	rest, ok := strings.CutPrefix(strings.TrimSpace(text), scanner.Directive)
	if !ok {
		return false
	}
	return rest == "" || strings.HasPrefix(rest, " ") || strings.HasPrefix(rest, "\t")
}
