// Package registry tracks the presentations a server session has open.
// Documents are keyed by ID so tool calls can address any of them; the most
// recently opened or created one is the default when a call names none.
package registry

import (
	"crypto/rand"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/slidesmith/ppt-tools-mcp/internal/deck"
	"github.com/slidesmith/ppt-tools-mcp/internal/render"
)

// Document is one open presentation plus the session state attached to it.
type Document struct {
	ID   string
	Path string
	Deck *deck.Deck

	// Charts remembers the spec behind each chart picture so the data can
	// be updated and the picture re-rendered. Keys are "slide:shape".
	Charts map[string]render.ChartSpec

	CreatedAt time.Time
}

// Store holds the open documents of one server session.
type Store struct {
	mu        sync.Mutex
	docs      map[string]*Document
	defaultID string
	entropy   *ulid.MonotonicEntropy
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		docs:    make(map[string]*Document),
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

func (s *Store) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

// Add registers a deck under the given ID, or under a generated ULID when id
// is empty. The new document becomes the default. Returns the document.
func (s *Store) Add(id string, d *deck.Deck, path string) (*Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == "" {
		id = s.newID()
	} else if _, exists := s.docs[id]; exists {
		return nil, fmt.Errorf("presentation ID %q is already in use", id)
	}

	doc := &Document{
		ID:        id,
		Path:      path,
		Deck:      d,
		Charts:    make(map[string]render.ChartSpec),
		CreatedAt: time.Now(),
	}
	s.docs[id] = doc
	s.defaultID = id
	return doc, nil
}

// Resolve looks up a document by ID. An empty ID means the current default.
func (s *Store) Resolve(id string) (*Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == "" {
		if s.defaultID == "" {
			return nil, fmt.Errorf("no presentation is open: create or open one first")
		}
		id = s.defaultID
	}
	doc, ok := s.docs[id]
	if !ok {
		return nil, fmt.Errorf("no presentation with ID %q", id)
	}
	return doc, nil
}

// Remove closes and forgets a document. When the default is removed, the
// most recently added remaining document becomes the new default.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == "" {
		id = s.defaultID
	}
	doc, ok := s.docs[id]
	if !ok {
		return fmt.Errorf("no presentation with ID %q", id)
	}
	delete(s.docs, id)
	if err := doc.Deck.Close(); err != nil {
		return fmt.Errorf("failed to close presentation %q: %w", id, err)
	}
	if s.defaultID == id {
		s.defaultID = ""
		var newest *Document
		for _, d := range s.docs {
			if newest == nil || d.CreatedAt.After(newest.CreatedAt) {
				newest = d
			}
		}
		if newest != nil {
			s.defaultID = newest.ID
		}
	}
	return nil
}

// SetDefault makes an existing document the default target.
func (s *Store) SetDefault(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[id]; !ok {
		return fmt.Errorf("no presentation with ID %q", id)
	}
	s.defaultID = id
	return nil
}

// DefaultID reports the current default document ID, empty when none.
func (s *Store) DefaultID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.defaultID
}

// SetPath records where a document was last saved.
func (s *Store) SetPath(id, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[id]
	if !ok {
		return fmt.Errorf("no presentation with ID %q", id)
	}
	doc.Path = path
	return nil
}

// ListEntry is one row of List.
type ListEntry struct {
	ID        string `json:"id"`
	Path      string `json:"path,omitempty"`
	Slides    int    `json:"slides"`
	IsDefault bool   `json:"is_default"`
}

// List reports all open documents, oldest first.
func (s *Store) List() []ListEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := make([]*Document, 0, len(s.docs))
	for _, d := range s.docs {
		docs = append(docs, d)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].CreatedAt.Before(docs[j].CreatedAt) })

	entries := make([]ListEntry, len(docs))
	for i, d := range docs {
		entries[i] = ListEntry{
			ID:        d.ID,
			Path:      d.Path,
			Slides:    d.Deck.SlideCount(),
			IsDefault: d.ID == s.defaultID,
		}
	}
	return entries
}

// Len reports the number of open documents.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.docs)
}
