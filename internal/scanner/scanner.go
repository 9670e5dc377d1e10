// Package scanner statically discovers docmark-marked declarations in Go
// source files. Discovery never executes the scanned code: files are parsed
// into a syntax tree and walked in document order.
package scanner

import (
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"
)

// Directive is the marker comment prefix that registers a declaration for
// documentation management, optionally followed by key="value" arguments:
//
//	//docmark:doc
//	//docmark:doc filename="guides/custom.md"
const Directive = "docmark:doc"

// Kind classifies a marked declaration for template selection.
type Kind string

const (
	KindType     Kind = "type"
	KindFunction Kind = "function"
	KindMethod   Kind = "method"
	KindTest     Kind = "test"
	KindPackage  Kind = "package"
)

// Mark is one discovered marked declaration. Records are immutable and carry
// no relation to each other beyond sharing a source file.
type Mark struct {
	// Name is the qualified name: "Recv.Method" for methods, the bare
	// declaration name otherwise.
	Name string

	// Filename is the explicit documentation path override from the
	// directive's filename argument, empty when absent.
	Filename string

	// Line is the 1-based source line of the declaration.
	Line int

	Kind Kind
}

// Scanner parses Go files and extracts marks. The zero value is usable.
//
//docmark:doc
type Scanner struct {
	Log *slog.Logger
}

func (s *Scanner) log() *slog.Logger {
	if s.Log != nil {
		return s.Log
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Scan returns the marks found in the file, in document order. Any read or
// parse failure yields nil: scanning must tolerate malformed and missing
// inputs.
func (s *Scanner) Scan(path string) []Mark {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
	if err != nil {
		s.log().Debug("failed to parse file", "path", path, "error", err)
		return nil
	}

	isTest := isTestFile(path)
	isInit := filepath.Base(path) == "doc.go"

	var marks []Mark
	ast.Inspect(file, func(n ast.Node) bool {
		switch decl := n.(type) {
		case *ast.FuncDecl:
			if ok, filename := parseDirective(decl.Doc); ok {
				marks = append(marks, Mark{
					Name:     funcName(decl),
					Filename: filename,
					Line:     fset.Position(decl.Pos()).Line,
					Kind:     classifyFunc(decl, isTest, isInit),
				})
			}
		case *ast.GenDecl:
			if decl.Tok != token.TYPE {
				return true
			}
			for _, spec := range decl.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				doc := ts.Doc
				if doc == nil && len(decl.Specs) == 1 {
					doc = decl.Doc
				}
				if ok, filename := parseDirective(doc); ok {
					marks = append(marks, Mark{
						Name:     ts.Name.Name,
						Filename: filename,
						Line:     fset.Position(ts.Pos()).Line,
						Kind:     classifyType(isTest, isInit),
					})
				}
			}
		}
		return true
	})
	return marks
}

// Scan scans with a zero-value Scanner.
func Scan(path string) []Mark {
	return (&Scanner{}).Scan(path)
}

// isTestFile reports whether the path follows the test-naming convention:
// "test" in the file's base name (which covers the _test.go suffix) or a
// containing directory named tests or testdata.
func isTestFile(path string) bool {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if strings.Contains(strings.ToLower(stem), "test") {
		return true
	}
	for _, part := range strings.Split(filepath.ToSlash(filepath.Dir(path)), "/") {
		if part == "tests" || part == "testdata" {
			return true
		}
	}
	return false
}

// Kind priority: package-init file, then test file, then the declaration's
// own structure.
func classifyType(isTest, isInit bool) Kind {
	switch {
	case isInit:
		return KindPackage
	case isTest:
		return KindTest
	default:
		return KindType
	}
}

func classifyFunc(decl *ast.FuncDecl, isTest, isInit bool) Kind {
	switch {
	case isInit:
		return KindPackage
	case isTest:
		return KindTest
	case decl.Recv != nil:
		return KindMethod
	default:
		return KindFunction
	}
}

// funcName returns the declaration's qualified name, prefixing methods with
// their receiver type.
func funcName(decl *ast.FuncDecl) string {
	if recv := receiverName(decl); recv != "" {
		return recv + "." + decl.Name.Name
	}
	return decl.Name.Name
}

func receiverName(decl *ast.FuncDecl) string {
	if decl.Recv == nil || len(decl.Recv.List) == 0 {
		return ""
	}
	t := decl.Recv.List[0].Type
	if star, ok := t.(*ast.StarExpr); ok {
		t = star.X
	}
	switch expr := t.(type) {
	case *ast.IndexExpr:
		t = expr.X
	case *ast.IndexListExpr:
		t = expr.X
	}
	if ident, ok := t.(*ast.Ident); ok {
		return ident.Name
	}
	return ""
}

var directiveArgRe = regexp.MustCompile(`(\w+)=("([^"]*)"|'([^']*)')`)

// parseDirective reports whether the comment group carries the marker
// directive and returns the filename override when one is given. Unknown
// argument keys are ignored here; the linter flags them.
func parseDirective(doc *ast.CommentGroup) (bool, string) {
	if doc == nil {
		return false, ""
	}
	for _, c := range doc.List {
		rest, ok := directiveArgs(c.Text)
		if !ok {
			continue
		}
		for _, m := range directiveArgRe.FindAllStringSubmatch(rest, -1) {
			if m[1] != "filename" {
				continue
			}
			if m[3] != "" {
				return true, m[3]
			}
			return true, m[4]
		}
		return true, ""
	}
	return false, ""
}

// directiveArgs returns the argument portion of a marker comment, or ok=false
// when the comment is not a marker.
func directiveArgs(comment string) (string, bool) {
	text, ok := strings.CutPrefix(comment, "//")
	if !ok {
		return "", false
	}
	rest, ok := strings.CutPrefix(strings.TrimSpace(text), Directive)
	if !ok {
		return "", false
	}
	if rest != "" && !strings.HasPrefix(rest, " ") && !strings.HasPrefix(rest, "\t") {
		return "", false
	}
	return strings.TrimSpace(rest), true
}
