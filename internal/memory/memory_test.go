package memory

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
)

// fakeEmbedder maps known words onto fixed axes so similarity is
// predictable without a network call.
type fakeEmbedder struct {
	calls int
}

func (f *fakeEmbedder) Embed(_ context.Context, text string) ([]float64, error) {
	f.calls++
	vec := make([]float64, 3)
	lower := strings.ToLower(text)
	if strings.Contains(lower, "database") {
		vec[0] = 1
	}
	if strings.Contains(lower, "auth") {
		vec[1] = 1
	}
	if strings.Contains(lower, "frontend") {
		vec[2] = 1
	}
	return vec, nil
}

type failingEmbedder struct{}

func (failingEmbedder) Embed(context.Context, string) ([]float64, error) {
	return nil, fmt.Errorf("embedding service unavailable")
}

func TestStore_AddAndSearch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.json")
	store, err := Open(path, &fakeEmbedder{})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	ctx := context.Background()
	for _, text := range []string{
		"configure the database schema",
		"wire up auth middleware",
		"frontend routing setup",
	} {
		if err := store.Add(ctx, text, "test", nil); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	results, err := store.Search(ctx, "database migrations", 2)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if !strings.Contains(results[0].Entry.Text, "database") {
		t.Fatalf("expected database entry first, got %q", results[0].Entry.Text)
	}
	if results[0].Score < results[1].Score {
		t.Fatal("results not sorted by score")
	}
}

func TestStore_PersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.json")
	ctx := context.Background()

	store, err := Open(path, &fakeEmbedder{})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := store.Add(ctx, "auth tokens", "seed", map[string]string{"source": "test"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	reopened, err := Open(path, &fakeEmbedder{})
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	if reopened.Len() != 1 {
		t.Fatalf("expected 1 entry after reopen, got %d", reopened.Len())
	}
	results, err := reopened.Search(ctx, "auth", 1)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 1 || results[0].Entry.Metadata["source"] != "test" {
		t.Fatalf("unexpected results: %+v", results)
	}
}

func TestStore_BlankTextIgnored(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "m.json"), &fakeEmbedder{})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := store.Add(context.Background(), "   \n\t ", "x", nil); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("expected blank text to be ignored, got %d entries", store.Len())
	}
}

func TestStore_EmbedderErrorSurfaces(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "m.json"), failingEmbedder{})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := store.Add(context.Background(), "text", "x", nil); err == nil {
		t.Fatal("expected embedder error to surface")
	}
}

func TestChunk(t *testing.T) {
	text := "para one\n\npara two\n\n" + strings.Repeat("x", 50)
	chunks := Chunk(text, 20)
	if len(chunks) < 3 {
		t.Fatalf("expected at least 3 chunks, got %d: %v", len(chunks), chunks)
	}
	for _, c := range chunks {
		if len(c) > 20 {
			t.Fatalf("chunk exceeds limit: %d bytes", len(c))
		}
	}
}

func TestChunk_PacksSmallParagraphs(t *testing.T) {
	chunks := Chunk("a\n\nb\n\nc", 100)
	if len(chunks) != 1 {
		t.Fatalf("expected 1 packed chunk, got %v", chunks)
	}
	if chunks[0] != "a\n\nb\n\nc" {
		t.Fatalf("unexpected chunk: %q", chunks[0])
	}
}

func TestHydrate(t *testing.T) {
	emb := &fakeEmbedder{}
	store, err := Open(filepath.Join(t.TempDir(), "m.json"), emb)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := store.Hydrate(context.Background(), "database setup\n\nauth setup", "merged_prompt"); err != nil {
		t.Fatalf("Hydrate failed: %v", err)
	}
	if store.Len() != 1 {
		t.Fatalf("expected 1 packed entry, got %d", store.Len())
	}
	if store.entries[0].Context != "merged_prompt" {
		t.Fatalf("unexpected context label: %q", store.entries[0].Context)
	}
}
