package memory

import (
	"context"
	"strings"
)

// maxChunkSize bounds one hydrated chunk; larger paragraphs are split.
const maxChunkSize = 2000

// Hydrate splits text into paragraph-sized chunks and stores each one under
// the given label. Used to seed the store with the composed prompt before
// generation so later runs can query prior context.
func (s *Store) Hydrate(ctx context.Context, text, label string) error {
	for _, chunk := range Chunk(text, maxChunkSize) {
		if err := s.Add(ctx, chunk, label, nil); err != nil {
			return err
		}
	}
	return nil
}

// Chunk splits text on blank lines, packing paragraphs together until the
// size limit, and hard-splitting any single paragraph that exceeds it.
func Chunk(text string, limit int) []string {
	var chunks []string
	var cur strings.Builder

	flush := func() {
		if s := strings.TrimSpace(cur.String()); s != "" {
			chunks = append(chunks, s)
		}
		cur.Reset()
	}

	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		for len(para) > limit {
			flush()
			chunks = append(chunks, para[:limit])
			para = para[limit:]
		}
		if cur.Len() > 0 && cur.Len()+len(para)+2 > limit {
			flush()
		}
		if cur.Len() > 0 {
			cur.WriteString("\n\n")
		}
		cur.WriteString(para)
	}
	flush()
	return chunks
}
