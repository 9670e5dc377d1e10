package docs

import (
	"io"
	"log/slog"
	"os"
)

// Store retrieves documentation content for entities. Resolution goes through
// the Resolver; when no file matches, the entity's own inline summary is the
// fallback.
//
//docmark:doc
type Store struct {
	Resolver *Resolver
	Log      *slog.Logger
}

// NewStore returns a Store over the given resolver. A nil resolver gets a
// default one.
func NewStore(resolver *Resolver, log *slog.Logger) *Store {
	if resolver == nil {
		resolver = &Resolver{Log: log}
	}
	return &Store{Resolver: resolver, Log: log}
}

func (s *Store) log() *slog.Logger {
	if s.Log != nil {
		return s.Log
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Retrieve returns the documentation content for an entity. A resolved file
// is read as UTF-8 and returned verbatim. With no resolvable file the
// entity's pre-existing inline summary is returned if non-empty; otherwise a
// *NotFoundError carrying the entity name. Read failures surface as the same
// *NotFoundError wrapping the cause.
func (s *Store) Retrieve(e *Entity, override string) (string, error) {
	path, ok := s.Resolver.Resolve(e, override)
	if !ok {
		if e.Summary != "" {
			s.log().Debug("using inline summary", "entity", e.Name)
			return e.Summary, nil
		}
		s.log().Warn("no documentation file found", "entity", e.Name)
		return "", &NotFoundError{Name: e.QualifiedName()}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		s.log().Error("failed to read documentation file", "path", path, "error", err)
		return "", &NotFoundError{Name: e.QualifiedName(), Err: err}
	}
	s.log().Debug("read documentation file", "entity", e.Name, "path", path)
	return string(content), nil
}
