package docs

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Entry is one registration: the entity together with its explicit
// documentation path override, empty when resolution follows convention.
type Entry struct {
	Entity   *Entity
	Filename string
}

// Option configures a single Bind call.
type Option func(*bindOptions)

type bindOptions struct {
	filename string
}

// WithFilename sets an explicit documentation path, relative to root/docs/,
// bypassing convention-based resolution.
func WithFilename(name string) Option {
	return func(o *bindOptions) { o.filename = name }
}

// Session owns an ordered registry of bound entities. Entries are append-only
// and keep insertion order; duplicates are allowed. Sessions are not safe for
// concurrent use.
//
//docmark:doc
type Session struct {
	store   *Store
	log     *slog.Logger
	entries []Entry
}

// NewSession returns a Session over the given store. A nil store gets a
// default one resolving against this module's own root.
func NewSession(store *Store, log *slog.Logger) *Session {
	if store == nil {
		store = NewStore(nil, log)
	}
	return &Session{store: store, log: log}
}

func (s *Session) logger() *slog.Logger {
	if s.log != nil {
		return s.log
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Store returns the session's document store.
func (s *Session) Store() *Store { return s.store }

// Entries returns the registry in insertion order. The returned slice is the
// session's own; callers must not mutate it.
func (s *Session) Entries() []Entry { return s.entries }

// Bind registers an entity and injects its documentation summary. The entity
// is appended to the registry unconditionally, even when no documentation
// resolves. On success the full content is cached on the entity and its
// Summary is overwritten with the derived short form. When nothing resolves,
// a non-empty existing Summary is left alone; an empty one gets a pending
// placeholder. Bind never fails and may be applied to the same entity more
// than once.
func (s *Session) Bind(e *Entity, opts ...Option) *Entity {
	var o bindOptions
	for _, opt := range opts {
		opt(&o)
	}
	s.logger().Debug("binding entity", "entity", e.Name, "filename", o.filename)
	s.entries = append(s.entries, Entry{Entity: e, Filename: o.filename})

	content, err := s.store.Retrieve(e, o.filename)
	if err != nil {
		var nf *NotFoundError
		if !errors.As(err, &nf) {
			s.logger().Error("unexpected error loading documentation", "entity", e.Name, "error", err)
		} else {
			s.logger().Warn("documentation not found", "entity", e.Name, "error", err)
		}
		if e.Summary == "" {
			e.Summary = fmt.Sprintf("Documentation pending for %s", e.Name)
		}
		return e
	}

	e.full = content
	summary := Summarize(content)
	if summary == "" {
		summary = fmt.Sprintf("See documentation for %s", e.Name)
	}
	e.Summary = summary
	return e
}

// Validate re-resolves documentation for every registry entry and returns the
// entries that fail, in registration order. In strict mode a non-empty result
// is returned as a *ValidationError instead.
func (s *Session) Validate(strict bool) ([]Entry, error) {
	var missing []Entry
	for _, entry := range s.entries {
		if _, err := s.store.Retrieve(entry.Entity, entry.Filename); err != nil {
			missing = append(missing, entry)
		}
	}
	if strict && len(missing) > 0 {
		return missing, &ValidationError{Missing: missing}
	}
	return missing, nil
}

// Show returns the full documentation content for an entity: the copy cached
// by Bind when present, else a fresh retrieval.
func (s *Session) Show(e *Entity) (string, error) {
	if e.full != "" {
		return e.full, nil
	}
	return s.store.Retrieve(e, "")
}

// defaultSession backs the package-level Bind/Validate/Show, mirroring a
// process-wide registry for hosts that do not manage their own session.
var defaultSession = NewSession(nil, nil)

// Bind registers an entity with the default session.
func Bind(e *Entity, opts ...Option) *Entity { return defaultSession.Bind(e, opts...) }

// Validate validates the default session's registry.
func Validate(strict bool) ([]Entry, error) { return defaultSession.Validate(strict) }

// Show returns full documentation via the default session.
func Show(e *Entity) (string, error) { return defaultSession.Show(e) }

// Reset clears the default session's registry and returns a function that
// restores the previous entries. Intended for tests.
func Reset() func() {
	saved := defaultSession.entries
	defaultSession.entries = nil
	return func() { defaultSession.entries = saved }
}
