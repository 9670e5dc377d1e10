package docs

import (
	"fmt"
	"strings"
)

// NotFoundError reports that no documentation content could be resolved for
// an entity. It covers both a missing file and an unreadable one; callers are
// not expected to distinguish the two.
type NotFoundError struct {
	Name string
	Err  error
}

func (e *NotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("no documentation found for %s: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("no documentation found for %s", e.Name)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// ValidationError aggregates every registered entity whose documentation
// could not be resolved. Returned only by strict validation.
type ValidationError struct {
	Missing []Entry
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("missing documentation files:\n")
	for _, entry := range e.Missing {
		target := entry.Filename
		if target == "" {
			target = "(auto)"
		}
		fmt.Fprintf(&b, "  %s -> %s\n", entry.Entity.QualifiedName(), target)
	}
	return strings.TrimSuffix(b.String(), "\n")
}
