package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	defer s.Close(ctx)

	doc := Document{
		Name:      "lab",
		XML:       "<nml:Node></nml:Node>",
		Entities:  1,
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := s.Save(ctx, doc); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Get(ctx, "lab")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != doc {
		t.Errorf("Get = %+v, want %+v", got, doc)
	}

	if _, err := s.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(missing) = %v, want ErrNotFound", err)
	}
}

func TestFileStoreSaveReplaces(t *testing.T) {
	ctx := context.Background()
	s, _ := NewFileStore(t.TempDir())

	first := Document{Name: "lab", XML: "v1", CreatedAt: time.Now().UTC()}
	second := Document{Name: "lab", XML: "v2", CreatedAt: time.Now().UTC()}
	if err := s.Save(ctx, first); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(ctx, second); err != nil {
		t.Fatal(err)
	}

	got, err := s.Get(ctx, "lab")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.XML != "v2" {
		t.Errorf("XML = %q, want v2", got.XML)
	}

	docs, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(docs) != 1 {
		t.Errorf("List = %d documents, want 1", len(docs))
	}
}

func TestFileStoreListOrder(t *testing.T) {
	ctx := context.Background()
	s, _ := NewFileStore(t.TempDir())

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	// Save out of chronological order.
	for i, name := range []string{"c", "a", "b"} {
		offsets := map[string]int{"a": 0, "b": 1, "c": 2}
		doc := Document{Name: name, CreatedAt: base.Add(time.Duration(offsets[name]) * time.Hour)}
		if err := s.Save(ctx, doc); err != nil {
			t.Fatalf("Save %d: %v", i, err)
		}
	}

	docs, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	var names []string
	for _, d := range docs {
		names = append(names, d.Name)
	}
	want := []string{"a", "b", "c"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("List order = %v, want %v", names, want)
		}
	}
}

func TestFileStoreRejectsUnnamed(t *testing.T) {
	s, _ := NewFileStore(t.TempDir())
	if err := s.Save(context.Background(), Document{XML: "x"}); err == nil {
		t.Fatal("Save accepted an unnamed document")
	}
}

func TestFileStorePathTraversal(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, _ := NewFileStore(dir)

	doc := Document{Name: "../escape", XML: "x", CreatedAt: time.Now().UTC()}
	if err := s.Save(ctx, doc); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Get(ctx, "../escape")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.XML != "x" {
		t.Errorf("XML = %q", got.XML)
	}
}
