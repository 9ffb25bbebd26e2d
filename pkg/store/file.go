package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileStore keeps each document as a JSON file in a directory, named after
// the document. Fits single-machine CLI usage.
type FileStore struct {
	dir string
}

// NewFileStore creates a file store rooted at dir, creating the directory
// if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(name string) string {
	// Document names come from user flags; flatten path separators so a
	// name cannot escape the store directory.
	safe := strings.NewReplacer("/", "_", string(os.PathSeparator), "_").Replace(name)
	return filepath.Join(s.dir, safe+".json")
}

// Save upserts a document under its name.
func (s *FileStore) Save(ctx context.Context, doc Document) error {
	if doc.Name == "" {
		return fmt.Errorf("document without a name")
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(doc.Name), data, 0644)
}

// Get retrieves a document by name.
func (s *FileStore) Get(ctx context.Context, name string) (Document, error) {
	data, err := os.ReadFile(s.path(name))
	if os.IsNotExist(err) {
		return Document{}, ErrNotFound
	}
	if err != nil {
		return Document{}, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("corrupt document %s: %w", name, err)
	}
	return doc, nil
}

// List returns all documents ordered by creation time, oldest first.
func (s *FileStore) List(ctx context.Context) ([]Document, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	var docs []Document
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		var doc Document
		if err := json.Unmarshal(data, &doc); err != nil {
			continue // skip corrupt entries rather than failing the listing
		}
		docs = append(docs, doc)
	}
	sort.Slice(docs, func(i, j int) bool {
		return docs[i].CreatedAt.Before(docs[j].CreatedAt)
	})
	return docs, nil
}

// Close does nothing for the file backend.
func (s *FileStore) Close(ctx context.Context) error { return nil }

var _ Store = (*FileStore)(nil)
