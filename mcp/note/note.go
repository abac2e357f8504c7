// Package note holds the fixed set of placeholder text notes served as MCP
// resources. Notes are created once and never change afterwards.
package note

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/viant/n8n-mcp/internal/syncmap"
)

const (
	// Scheme prefixes every note URI.
	Scheme = "note"
	// MimeType is the content type of every note.
	MimeType = "text/plain"
)

// ErrNotFound is returned for URIs that do not resolve to a note.
var ErrNotFound = errors.New("note not found")

// Note is a titled piece of plain text.
type Note struct {
	ID      string
	Title   string
	Content string
}

// URI returns the resource address of the note.
func (n *Note) URI() string {
	return URI(n.ID)
}

// Description returns the human readable resource description.
func (n *Note) Description() string {
	return "A text note: " + n.Title
}

// URI builds a note address for id.
func URI(id string) string {
	return Scheme + ":///" + id
}

// ID extracts the note id from a resource URI.
func ID(uri string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("invalid note uri %q: %w", uri, err)
	}
	return strings.TrimPrefix(u.Path, "/"), nil
}

// Store is a read-only collection of notes.
type Store struct {
	notes *syncmap.Map[*Note]
}

// NewStore creates a store holding notes.
func NewStore(notes ...*Note) *Store {
	ret := &Store{notes: syncmap.New[*Note]()}
	for _, n := range notes {
		ret.notes.Set(n.ID, n)
	}
	return ret
}

// Default returns the placeholder notes exposed by the server.
func Default() *Store {
	return NewStore(
		&Note{ID: "1", Title: "First Note", Content: "This is note 1"},
		&Note{ID: "2", Title: "Second Note", Content: "This is note 2"},
	)
}

// List returns all notes ordered by id.
func (s *Store) List() []*Note {
	return s.notes.List()
}

// Get returns the note with id.
func (s *Store) Get(id string) (*Note, error) {
	if n, ok := s.notes.Get(id); ok {
		return n, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Read resolves a resource URI to its note.
func (s *Store) Read(uri string) (*Note, error) {
	id, err := ID(uri)
	if err != nil {
		return nil, err
	}
	n, err := s.Get(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, uri)
	}
	return n, nil
}
