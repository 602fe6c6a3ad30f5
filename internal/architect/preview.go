package architect

import "github.com/vibekit/vibe/internal/fileblocks"

// previewContentLimit bounds how much of each file a dry-run preview shows.
const previewContentLimit = 100

// PreviewFile is one truncated entry in a dry-run preview.
type PreviewFile struct {
	Path    string `json:"path"`
	Content string `json:"content"`
	Size    int    `json:"size"`
}

// Preview summarizes a dry run: truncated contents and a rough time
// estimate for a real generation of the same file set.
type Preview struct {
	Files            []PreviewFile `json:"files"`
	EstimatedSeconds float64       `json:"estimated_seconds"`
}

// NewPreview builds the dry-run preview for a parsed file set.
func NewPreview(files []fileblocks.GeneratedFile) *Preview {
	p := &Preview{
		Files:            make([]PreviewFile, 0, len(files)),
		EstimatedSeconds: float64(len(files)) * 0.1,
	}
	for _, f := range files {
		content := f.Content
		if len(content) > previewContentLimit {
			content = content[:previewContentLimit] + "..."
		}
		p.Files = append(p.Files, PreviewFile{Path: f.Path, Content: content, Size: f.Size()})
	}
	return p
}
