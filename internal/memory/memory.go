// Package memory is a small persistent vector store: text chunks with
// embeddings in a JSON file, queried by cosine similarity. It is always
// injected into the components that use it, never reached through a global,
// so tests can substitute an in-memory embedder.
package memory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/vibekit/vibe/internal/manifest"
)

// Embedder turns text into a vector. The HTTP implementation lives in the
// provider package.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// Entry is one stored chunk.
type Entry struct {
	ID        string            `json:"id"`
	Text      string            `json:"text"`
	Embedding []float64         `json:"embedding"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	Context   string            `json:"context,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// SearchResult pairs an entry with its similarity to the query.
type SearchResult struct {
	Entry Entry
	Score float64
}

// Store persists entries in a single JSON file. Concurrent stores over the
// same file are the caller's problem; one workflow invocation owns its
// store for the duration of the run.
type Store struct {
	path     string
	embedder Embedder
	entries  []Entry
}

// Open loads the store at path, creating parent directories as needed.
// A missing or corrupt file starts fresh rather than failing the run.
func Open(path string, embedder Embedder) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating memory dir: %w", err)
	}
	s := &Store{path: path, embedder: embedder}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(data, &s.entries); err != nil {
		// Corrupt store: start over instead of blocking generation.
		s.entries = nil
	}
	return s, nil
}

// Len returns the number of stored entries.
func (s *Store) Len() int { return len(s.entries) }

// Add embeds text and appends it to the store, persisting immediately.
// Blank text is ignored.
func (s *Store) Add(ctx context.Context, text, label string, metadata map[string]string) error {
	if trimLen(text) == 0 {
		return nil
	}
	vec, err := s.embedder.Embed(ctx, text)
	if err != nil {
		return fmt.Errorf("embedding text: %w", err)
	}
	s.entries = append(s.entries, Entry{
		ID:        uuid.NewString(),
		Text:      text,
		Embedding: vec,
		Metadata:  metadata,
		Context:   label,
		Timestamp: time.Now().UTC(),
	})
	return s.save()
}

// Search returns the topK most similar entries, highest score first.
func (s *Store) Search(ctx context.Context, query string, topK int) ([]SearchResult, error) {
	if len(s.entries) == 0 || trimLen(query) == 0 {
		return nil, nil
	}
	qv, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	results := make([]SearchResult, 0, len(s.entries))
	for _, e := range s.entries {
		results = append(results, SearchResult{Entry: e, Score: cosine(qv, e.Embedding)})
	}
	// Insertion sort by score; entry counts are small.
	for i := 1; i < len(results); i++ {
		for j := i; j > 0 && results[j].Score > results[j-1].Score; j-- {
			results[j], results[j-1] = results[j-1], results[j]
		}
	}
	if topK > 0 && len(results) > topK {
		results = results[:topK]
	}
	return results, nil
}

func (s *Store) save() error {
	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return err
	}
	return manifest.WriteFileAtomic(s.path, data, 0644)
}

func cosine(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

func trimLen(s string) int {
	n := 0
	for _, r := range s {
		if r != ' ' && r != '\n' && r != '\t' && r != '\r' {
			n++
		}
	}
	return n
}
