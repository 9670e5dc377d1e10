// Package docs resolves externalized Markdown documentation for source-code
// entities. Documentation lives under <root>/docs/ in a tree that mirrors the
// source layout; entities are registered with a Session, which reads the
// matching file and injects a derived short summary back into the entity.
package docs

// Entity is a documentable unit: a type, function, method, or package. The
// host program owns the value; docs only fills in the Summary slot and an
// internal full-documentation cache.
//
//docmark:doc
type Entity struct {
	// Name is the qualified dotted name, e.g. "Store.Retrieve" for a method
	// or "Summarize" for a free function.
	Name string

	// Package is the dotted logical package path, e.g. "docmark.docs".
	// Package "main" marks entities from a top-level executable context.
	Package string

	// File is the originating source file path.
	File string

	// Summary is the inline short description. Bind overwrites it with a
	// summary derived from the resolved documentation file.
	Summary string

	full string // cached full documentation content
}

// QualifiedName returns the entity name prefixed with its package, for
// reporting.
func (e *Entity) QualifiedName() string {
	if e.Package == "" {
		return e.Name
	}
	return e.Package + "." + e.Name
}
