package stubgen

import (
	"path/filepath"
	"regexp"
	"strings"
)

// shouldProcess applies the include/exclude filter to a file. Patterns are
// shell-style globs matched against the root-relative, forward-slash path.
// Exclude patterns are checked first and always win; when include patterns
// are given the file must match at least one.
func shouldProcess(path, root string, include, exclude []string) bool {
	rel := filepath.ToSlash(path)
	if r, err := filepath.Rel(root, path); err == nil {
		rel = filepath.ToSlash(r)
	}

	for _, pattern := range exclude {
		if globMatch(pattern, rel) {
			return false
		}
	}
	if len(include) > 0 {
		for _, pattern := range include {
			if globMatch(pattern, rel) {
				return true
			}
		}
		return false
	}
	return true
}

// globMatch matches shell-style patterns where, unlike path.Match, a star
// also crosses path separators ("*/migrations/*" matches
// "src/migrations/v1/x.go").
func globMatch(pattern, name string) bool {
	re, err := regexp.Compile("^" + globToRegexp(pattern) + "$")
	if err != nil {
		return false
	}
	return re.MatchString(name)
}

func globToRegexp(pattern string) string {
	var b strings.Builder
	for _, r := range pattern {
		switch r {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	return b.String()
}
