// Package catalogfile persists the tag catalog as a single JSON
// document, rewritten in full on every mutation. The catalog holds tens
// of entries and changes only on operator action, so a whole-document
// rewrite is sufficient.
package catalogfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"utmbot/internal/domain"
	"utmbot/internal/repository"
)

// document mirrors the on-disk layout: a flat list of sources plus
// grouped mediums and campaigns.
type document struct {
	Sources   []domain.CatalogEntry            `json:"sources"`
	Mediums   map[string][]domain.CatalogEntry `json:"mediums"`
	Campaigns map[string][]domain.CatalogEntry `json:"campaigns"`
}

func emptyDocument() *document {
	return &document{
		Sources: []domain.CatalogEntry{},
		Mediums: map[string][]domain.CatalogEntry{
			"publications": {},
			"mailings":     {},
			"stories":      {},
			"channels":     {},
		},
		Campaigns: map[string][]domain.CatalogEntry{
			"spb":     {},
			"msk":     {},
			"tr":      {},
			"regions": {},
			"foreign": {},
		},
	}
}

// Store implements repository.CatalogRepository over a JSON file.
// All writes are serialized by the internal mutex.
type Store struct {
	path string

	mu  sync.RWMutex
	doc *document
}

// New opens the catalog file, creating it with an empty skeleton when
// missing.
func New(path string) (*Store, error) {
	s := &Store{path: path}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create catalog dir: %w", err)
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		s.doc = emptyDocument()
		if err := s.save(); err != nil {
			return nil, err
		}
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	doc := emptyDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	s.doc = doc

	return s, nil
}

// List returns the entries of a category. Unknown keys yield an empty
// list.
func (s *Store) List(categoryKey string) ([]domain.CatalogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, ok := s.bucket(categoryKey)
	if !ok {
		return nil, nil
	}

	out := make([]domain.CatalogEntry, len(entries))
	copy(out, entries)
	return out, nil
}

// Add appends an entry to a category and rewrites the document.
// Duplicate slugs within a category are rejected.
func (s *Store) Add(categoryKey string, entry domain.CatalogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, ok := s.bucket(categoryKey)
	if !ok {
		return repository.ErrUnknownCategory
	}

	for _, e := range entries {
		if e.Slug == entry.Slug {
			return repository.ErrDuplicateSlug
		}
	}

	s.setBucket(categoryKey, append(entries, entry))

	if err := s.save(); err != nil {
		s.setBucket(categoryKey, entries)
		return err
	}
	return nil
}

// Delete removes every entry with the given slug from a category and
// rewrites the document. Deleting an absent slug succeeds.
func (s *Store) Delete(categoryKey, slug string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, ok := s.bucket(categoryKey)
	if !ok {
		return repository.ErrUnknownCategory
	}

	kept := make([]domain.CatalogEntry, 0, len(entries))
	for _, e := range entries {
		if e.Slug != slug {
			kept = append(kept, e)
		}
	}

	s.setBucket(categoryKey, kept)

	if err := s.save(); err != nil {
		s.setBucket(categoryKey, entries)
		return err
	}
	return nil
}

// bucket resolves a category key to its entry list. Callers must hold
// the mutex.
func (s *Store) bucket(categoryKey string) ([]domain.CatalogEntry, bool) {
	switch {
	case categoryKey == "source":
		return s.doc.Sources, true
	case strings.HasPrefix(categoryKey, "medium_"):
		entries, ok := s.doc.Mediums[strings.TrimPrefix(categoryKey, "medium_")]
		return entries, ok
	case strings.HasPrefix(categoryKey, "campaign_"):
		entries, ok := s.doc.Campaigns[strings.TrimPrefix(categoryKey, "campaign_")]
		return entries, ok
	}
	return nil, false
}

func (s *Store) setBucket(categoryKey string, entries []domain.CatalogEntry) {
	switch {
	case categoryKey == "source":
		s.doc.Sources = entries
	case strings.HasPrefix(categoryKey, "medium_"):
		s.doc.Mediums[strings.TrimPrefix(categoryKey, "medium_")] = entries
	case strings.HasPrefix(categoryKey, "campaign_"):
		s.doc.Campaigns[strings.TrimPrefix(categoryKey, "campaign_")] = entries
	}
}

// save rewrites the whole document. Callers must hold the mutex.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	return nil
}
