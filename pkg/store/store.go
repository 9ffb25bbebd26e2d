// Package store persists serialized topology documents, keyed by name,
// with file-tree and MongoDB backends.
package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested document does not exist.
var ErrNotFound = errors.New("document not found")

// Document is one stored topology snapshot. Name is the lookup key; saving
// under an existing name replaces the previous snapshot.
type Document struct {
	Name      string    `bson:"_id"        json:"name"`
	XML       string    `bson:"xml"        json:"xml"`
	Entities  int       `bson:"entities"   json:"entities"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Store is a named-document repository.
type Store interface {
	// Save upserts a document under its name.
	Save(ctx context.Context, doc Document) error
	// Get retrieves a document by name, or ErrNotFound.
	Get(ctx context.Context, name string) (Document, error)
	// List returns all documents ordered by creation time, oldest first.
	List(ctx context.Context) ([]Document, error)
	Close(ctx context.Context) error
}
