// Package architect drives one generation: it sends the composed prompt to
// the model, parses the response into file blocks, and either writes them
// under the output directory or returns them as a preview. Completion
// failures are not retried here; retry policy belongs to the caller.
package architect

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vibekit/vibe/internal/fileblocks"
	"github.com/vibekit/vibe/internal/manifest"
	"github.com/vibekit/vibe/internal/project"
	"github.com/vibekit/vibe/internal/template"
)

// responseFileName is the raw model output saved alongside the project for
// audit.
const responseFileName = "claude_response.txt"

// Completer is the model-completion collaborator.
type Completer interface {
	Complete(ctx context.Context, systemText, userText string) (string, error)
}

// Hydrator seeds a context store with prompt text before generation. The
// vector memory store satisfies it; nil means no memory is attached.
type Hydrator interface {
	Hydrate(ctx context.Context, text, label string) error
}

// PathConflictError marks a generated file whose target already exists when
// overwrite was not requested. The file is skipped; generation continues.
type PathConflictError struct {
	Path string
}

func (e *PathConflictError) Error() string {
	return fmt.Sprintf("path conflict: %s already exists (use overwrite to replace)", e.Path)
}

// Options select the generation mode.
type Options struct {
	OutputDir string
	Overwrite bool
	DryRun    bool
	Archive   bool
}

// Result is the engine's outcome. Files holds what was actually produced:
// every parsed file in dry-run mode, only the files written to disk
// otherwise. Success is false whenever any error or skipped conflict
// occurred.
type Result struct {
	Success     bool
	Files       []fileblocks.GeneratedFile
	Errors      []string
	Warnings    []string
	ProjectDir  string
	ArchivePath string
	RawResponse string
	Preview     *Preview
}

// Engine runs generations against an injected completer.
type Engine struct {
	completer Completer
	memory    Hydrator
}

// New builds an engine. memory may be nil.
func New(completer Completer, memory Hydrator) *Engine {
	return &Engine{completer: completer, memory: memory}
}

// Generate runs one generation for the validated config and composed
// prompt. Completion and parse failures are fatal and yield an empty file
// list; per-file conflicts and write failures yield the partial set that
// made it to disk, with success false.
func (e *Engine) Generate(ctx context.Context, cfg *project.Config, composed template.ComposedPrompt, opts Options) *Result {
	res := &Result{}

	if e.memory != nil {
		if err := e.memory.Hydrate(ctx, composed.UserText, "merged_prompt"); err != nil {
			res.Warnings = append(res.Warnings, fmt.Sprintf("memory hydration failed: %v", err))
		}
	}

	raw, err := e.completer.Complete(ctx, composed.SystemText, composed.UserText)
	if err != nil {
		res.Errors = append(res.Errors, err.Error())
		return res
	}
	res.RawResponse = raw

	files, warnings, err := fileblocks.Parse(raw)
	res.Warnings = append(res.Warnings, warnings...)
	if err != nil {
		res.Errors = append(res.Errors, err.Error())
		return res
	}

	if opts.DryRun {
		res.Files = files
		res.Preview = NewPreview(files)
		res.Success = true
		return res
	}

	projectDir := filepath.Join(opts.OutputDir, cfg.ProjectName)
	if err := os.MkdirAll(projectDir, 0o755); err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("creating project directory: %v", err))
		return res
	}
	res.ProjectDir = projectDir

	if err := manifest.WriteFileAtomic(filepath.Join(projectDir, responseFileName), []byte(raw), 0o644); err != nil {
		res.Warnings = append(res.Warnings, fmt.Sprintf("saving raw response: %v", err))
	}

	written, conflicts, writeErr := e.writeFiles(files, projectDir, opts.Overwrite)
	res.Files = written
	for _, c := range conflicts {
		res.Warnings = append(res.Warnings, c.Error())
	}
	if writeErr != nil {
		res.Errors = append(res.Errors, writeErr.Error())
		return res
	}

	if missing := verifyFiles(written, projectDir); len(missing) > 0 {
		res.Errors = append(res.Errors, fmt.Sprintf("verification failed, missing files: %v", missing))
		return res
	}

	if opts.Archive {
		archivePath := projectDir + ".zip"
		if err := createArchive(projectDir, archivePath); err != nil {
			res.Warnings = append(res.Warnings, fmt.Sprintf("archive creation failed: %v", err))
		} else {
			res.ArchivePath = archivePath
		}
	}

	res.Success = len(conflicts) == 0
	return res
}

// writeFiles materializes each file under projectDir. Conflicts are skipped
// and collected; a write failure aborts the remaining files and returns
// what made it to disk so far.
func (e *Engine) writeFiles(files []fileblocks.GeneratedFile, projectDir string, overwrite bool) (written []fileblocks.GeneratedFile, conflicts []*PathConflictError, err error) {
	for _, f := range files {
		target := filepath.Join(projectDir, filepath.FromSlash(f.Path))
		if !overwrite {
			if _, statErr := os.Stat(target); statErr == nil {
				conflicts = append(conflicts, &PathConflictError{Path: f.Path})
				continue
			}
		}
		if mkErr := os.MkdirAll(filepath.Dir(target), 0o755); mkErr != nil {
			return written, conflicts, fmt.Errorf("creating directory for %s: %w", f.Path, mkErr)
		}
		if wErr := os.WriteFile(target, []byte(f.Content), 0o644); wErr != nil {
			return written, conflicts, fmt.Errorf("writing %s: %w", f.Path, wErr)
		}
		written = append(written, f)
	}
	return written, conflicts, nil
}

// verifyFiles re-checks that every written file exists on disk.
func verifyFiles(files []fileblocks.GeneratedFile, projectDir string) []string {
	var missing []string
	for _, f := range files {
		if _, err := os.Stat(filepath.Join(projectDir, filepath.FromSlash(f.Path))); err != nil {
			missing = append(missing, f.Path)
		}
	}
	return missing
}
