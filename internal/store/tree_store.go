package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"quizadmin/internal/domain"
	"quizadmin/internal/fingerprint"
)

const documentMode = 0o644

// TreeFileStore keeps the catalog in one JSON document on disk.
//
// Every Load reads the file afresh; there is no cache shared between calls.
// Update serialises read-modify-write cycles within the process so concurrent
// mutations cannot lose each other's changes.
type TreeFileStore struct {
	path string
	mu   sync.Mutex

	written string // fingerprint of the last document this store wrote
}

// NewTreeFileStore returns a TreeFileStore backed by the file at path.
func NewTreeFileStore(path string) *TreeFileStore {
	return &TreeFileStore{path: path}
}

// Path returns the location of the backing document.
func (s *TreeFileStore) Path() string { return s.path }

// Load reads and parses the document. A missing file is an empty catalog.
func (s *TreeFileStore) Load(ctx context.Context) (domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return domain.Document{}, err
	}
	return s.load()
}

// Save replaces the document with doc.
func (s *TreeFileStore) Save(ctx context.Context, doc domain.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(doc)
}

// Update loads the document, applies fn and saves the result, all under the
// writer lock. When fn fails nothing is written.
func (s *TreeFileStore) Update(ctx context.Context, fn func(doc *domain.Document) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(&doc); err != nil {
		return err
	}
	return s.save(doc)
}

func (s *TreeFileStore) load() (domain.Document, error) {
	b, err := readFile(s.path)
	if err != nil {
		return domain.Document{}, fmt.Errorf("%w: read %s: %v", domain.ErrPersistence, s.path, err)
	}
	if b == nil { // file didn’t exist
		return domain.Document{Domains: []domain.Domain{}}, nil
	}
	return decodeDocument(s.path, b)
}

func (s *TreeFileStore) save(doc domain.Document) error {
	doc.Normalize()
	b, err := encodeJSON(doc)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", domain.ErrPersistence, s.path, err)
	}
	if err := writeFile(s.path, b, documentMode); err != nil {
		return fmt.Errorf("%w: write %s: %v", domain.ErrPersistence, s.path, err)
	}
	s.written = fingerprint.Sum(b)
	return nil
}

// decodeDocument parses b, requiring a top-level "domains" array.
func decodeDocument(path string, b []byte) (domain.Document, error) {
	var probe struct {
		Domains json.RawMessage `json:"domains"`
	}
	if err := json.Unmarshal(b, &probe); err != nil {
		return domain.Document{}, fmt.Errorf("%w: %s: %v", domain.ErrCorruptStore, path, err)
	}
	raw := bytes.TrimSpace(probe.Domains)
	if len(raw) == 0 || raw[0] != '[' {
		return domain.Document{}, fmt.Errorf("%w: %s: missing domains array", domain.ErrCorruptStore, path)
	}

	var doc domain.Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return domain.Document{}, fmt.Errorf("%w: %s: %v", domain.ErrCorruptStore, path, err)
	}
	doc.Normalize()
	return doc, nil
}

// Compile-time assertion that TreeFileStore implements domain.TreeStore.
var _ domain.TreeStore = (*TreeFileStore)(nil)
