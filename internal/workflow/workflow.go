// Package workflow is the top-level orchestrator: it validates the raw
// request, composes the prompt, drives the generation engine, and folds
// everything into one uniform result for the caller. Each run walks the
// stages Init, Validating, Merging, Generating, Done exactly once; there
// are no retries across stages.
package workflow

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vibekit/vibe/internal/architect"
	"github.com/vibekit/vibe/internal/manifest"
	"github.com/vibekit/vibe/internal/project"
	"github.com/vibekit/vibe/internal/template"
)

// Stage names one step of a run.
type Stage string

const (
	StageInit       Stage = "init"
	StageValidating Stage = "validating"
	StageMerging    Stage = "merging"
	StageGenerating Stage = "generating"
	StageDone       Stage = "done"
)

// Progress is called as the run enters each stage. Used by the CLI for
// stage headers; nil is fine.
type Progress func(Stage)

// Request is the raw input to one run, as supplied by the CLI or any other
// caller.
type Request struct {
	RawConfig map[string]any
	DryRun    bool
	OutputDir string
	Overwrite bool
	Archive   bool
}

// FilePayload is one generated file in the serialized result.
type FilePayload struct {
	Path    string `json:"path"`
	Content string `json:"content"`
	Size    int    `json:"size"`
	Type    string `json:"type"`
}

// Metadata summarizes a run for the caller.
type Metadata struct {
	GenerationTime float64  `json:"generation_time"`
	TotalFiles     int      `json:"total_files"`
	TotalSize      int      `json:"total_size"`
	Framework      string   `json:"framework"`
	FeaturesUsed   []string `json:"features_used"`
}

// Result is the uniform outcome of a run. Success implies Errors is empty;
// fatal pre-generation failures carry no files, while generation-stage
// partial failures report the files that were actually produced.
type Result struct {
	RunID    string        `json:"run_id"`
	Success  bool          `json:"success"`
	Files    []FilePayload `json:"files"`
	Errors   []string      `json:"errors"`
	Warnings []string      `json:"warnings"`
	Metadata Metadata      `json:"metadata"`
}

// Workflow wires the stages together. BuildDir, when set, receives the run
// manifest, the config snapshot, and the composed prompt for audit;
// dry runs never write it.
type Workflow struct {
	Composer *template.Composer
	Engine   *architect.Engine
	Model    string
	BuildDir string
	Progress Progress
}

// Run executes one generation end to end and always returns a result; all
// failures are folded into it rather than returned as errors.
func (w *Workflow) Run(ctx context.Context, req Request) *Result {
	start := time.Now()
	res := &Result{
		RunID:    uuid.NewString(),
		Files:    []FilePayload{},
		Errors:   []string{},
		Warnings: []string{},
	}
	w.enter(StageInit)

	w.enter(StageValidating)
	cfg, err := project.FromMap(req.RawConfig)
	if err != nil {
		return w.finish(res, start, err)
	}
	res.Metadata.Framework = cfg.BackendStack
	res.Metadata.FeaturesUsed = cfg.CoreFeatures

	w.enter(StageMerging)
	composed, err := w.Composer.Compose(cfg)
	if err != nil {
		return w.finish(res, start, err)
	}

	w.enter(StageGenerating)
	engRes := w.Engine.Generate(ctx, cfg, *composed, architect.Options{
		OutputDir: req.OutputDir,
		Overwrite: req.Overwrite,
		DryRun:    req.DryRun,
		Archive:   req.Archive,
	})
	res.Success = engRes.Success
	res.Errors = append(res.Errors, engRes.Errors...)
	res.Warnings = append(res.Warnings, engRes.Warnings...)
	for _, f := range engRes.Files {
		res.Files = append(res.Files, FilePayload{
			Path:    f.Path,
			Content: f.Content,
			Size:    f.Size(),
			Type:    f.Type(),
		})
		res.Metadata.TotalSize += f.Size()
	}
	res.Metadata.TotalFiles = len(res.Files)

	if !req.DryRun && w.BuildDir != "" {
		w.record(res, cfg, composed, req, start)
	}
	return w.finish(res, start, nil)
}

func (w *Workflow) enter(s Stage) {
	if w.Progress != nil {
		w.Progress(s)
	}
}

// finish closes out the run: it stamps the elapsed time, records a fatal
// error if one ended the run early, and fires the Done stage.
func (w *Workflow) finish(res *Result, start time.Time, fatal error) *Result {
	if fatal != nil {
		res.Success = false
		res.Errors = append(res.Errors, fatal.Error())
	}
	res.Metadata.GenerationTime = time.Since(start).Seconds()
	if res.Metadata.FeaturesUsed == nil {
		res.Metadata.FeaturesUsed = []string{}
	}
	w.enter(StageDone)
	return res
}

// record persists the audit trail for a real run. Persistence problems are
// warnings; the generation itself already happened.
func (w *Workflow) record(res *Result, cfg *project.Config, composed *template.ComposedPrompt, req Request, start time.Time) {
	if err := manifest.EnsureDir(w.BuildDir); err != nil {
		res.Warnings = append(res.Warnings, fmt.Sprintf("creating build dir: %v", err))
		return
	}
	if err := manifest.SaveConfig(w.BuildDir, req.RawConfig); err != nil {
		res.Warnings = append(res.Warnings, fmt.Sprintf("saving config snapshot: %v", err))
	}
	if err := manifest.SavePrompt(w.BuildDir, composed.SystemText, composed.UserText); err != nil {
		res.Warnings = append(res.Warnings, fmt.Sprintf("saving prompt: %v", err))
	}

	paths := make([]string, 0, len(res.Files))
	for _, f := range res.Files {
		paths = append(paths, f.Path)
	}
	m := &manifest.Manifest{
		RunID:       res.RunID,
		ProjectName: cfg.ProjectName,
		Model:       w.Model,
		DryRun:      req.DryRun,
		Success:     res.Success,
		Files:       paths,
		Errors:      res.Errors,
		Warnings:    res.Warnings,
		StartedAt:   start.UTC(),
		Duration:    time.Since(start).Round(time.Millisecond).String(),
	}
	if err := m.Save(w.BuildDir); err != nil {
		res.Warnings = append(res.Warnings, fmt.Sprintf("saving manifest: %v", err))
	}
}
