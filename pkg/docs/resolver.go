package docs

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// sourceAreas are the recognized top-level source directories. Files under
// one of these mirror into docs/<area>/...; anything else falls back to a
// flat layout directly under docs/.
var sourceAreas = []string{"internal", "pkg", "examples"}

// Resolver maps an entity to the ordered set of documentation file paths the
// naming convention allows. It never returns errors: an undeterminable root
// or an empty candidate set both read as "not found".
//
//docmark:doc
type Resolver struct {
	// Root overrides documentation root discovery when non-empty.
	Root string

	// Log receives debug output; nil discards.
	Log *slog.Logger
}

func (r *Resolver) log() *slog.Logger {
	if r.Log != nil {
		return r.Log
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// LocateRoot returns the documentation root directory. An explicit Root wins;
// otherwise the root is found by walking upward from this package's own
// source location (pkg/docs -> pkg -> module root). The walk is repeated on
// every call so an override set between calls takes effect immediately.
func (r *Resolver) LocateRoot() (string, bool) {
	if r.Root != "" {
		return r.Root, true
	}
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		r.log().Debug("could not determine package root")
		return "", false
	}
	root := filepath.Dir(filepath.Dir(filepath.Dir(file)))
	r.log().Debug("located documentation root", "root", root)
	return root, true
}

// Candidates returns the ordered documentation paths to probe for an entity.
// An explicit override yields exactly one candidate under root/docs/. The
// convention otherwise produces up to four: the qualified and last-segment
// file names under the mirrored module directory, then the same two names
// flat under the area directory. A missing area directory short-circuits to
// nil.
func (r *Resolver) Candidates(e *Entity, override string) []string {
	root, ok := r.LocateRoot()
	if !ok {
		return nil
	}
	docsBase := filepath.Join(root, "docs")

	if override != "" {
		return []string{filepath.Join(docsBase, filepath.FromSlash(override))}
	}

	area, modulePath := r.splitEntity(e, root)
	searchBase := docsBase
	if area != "" {
		searchBase = filepath.Join(docsBase, area)
	}
	if _, err := os.Stat(searchBase); err != nil {
		return nil
	}

	names := candidateNames(e.Name)
	var out []string
	if modulePath != "" {
		for _, name := range names {
			out = append(out, filepath.Join(searchBase, filepath.FromSlash(modulePath), name))
		}
	}
	for _, name := range names {
		out = append(out, filepath.Join(searchBase, name))
	}
	return out
}

// Resolve probes the candidates in order and returns the first existing path.
func (r *Resolver) Resolve(e *Entity, override string) (string, bool) {
	for _, candidate := range r.Candidates(e, override) {
		r.log().Debug("checking candidate", "entity", e.Name, "path", candidate)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			r.log().Debug("found documentation file", "entity", e.Name, "path", candidate)
			return candidate, true
		}
	}
	return "", false
}

// splitEntity derives the documentation sub-area and slash-joined module path
// for an entity's originating file. Files outside every recognized area fall
// back to the dotted package path, except entities from package main, which
// use the source file's base name.
func (r *Resolver) splitEntity(e *Entity, root string) (area, modulePath string) {
	rel, err := filepath.Rel(root, e.File)
	if err != nil || e.File == "" || strings.HasPrefix(rel, "..") {
		return "", strings.ReplaceAll(e.Package, ".", "/")
	}
	if area, modulePath, ok := AreaSplit(rel); ok {
		return area, modulePath
	}
	if e.Package == "main" {
		return "", fileStem(e.File)
	}
	return "", strings.ReplaceAll(e.Package, ".", "/")
}

// AreaSplit maps a root-relative source path onto its documentation sub-area
// and slash-joined module path (the path below the area, minus the source
// file extension). ok is false when the first segment is not a recognized
// area.
func AreaSplit(rel string) (area, modulePath string, ok bool) {
	parts := strings.Split(filepath.ToSlash(rel), "/")
	if !isArea(parts[0]) {
		return "", "", false
	}
	rest := parts[1:]
	if len(rest) == 0 {
		return parts[0], "", true
	}
	rest[len(rest)-1] = strings.TrimSuffix(rest[len(rest)-1], filepath.Ext(rest[len(rest)-1]))
	return parts[0], strings.Join(rest, "/"), true
}

func isArea(segment string) bool {
	for _, a := range sourceAreas {
		if segment == a {
			return true
		}
	}
	return false
}

// candidateNames returns the file name candidates for a qualified name: the
// full dotted name first, then just its final segment. A method thereby
// inherits its type's file unless a method-specific one exists.
func candidateNames(qualName string) []string {
	names := []string{qualName + ".md"}
	if idx := strings.LastIndex(qualName, "."); idx >= 0 {
		names = append(names, qualName[idx+1:]+".md")
	} else {
		names = append(names, qualName+".md")
	}
	return names
}

func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
