// Package manifest records what a generation run did: the configuration it
// was given, the prompt it sent, and the outcome. Everything lands in the
// build directory next to the generated project so a run can be audited
// after the fact.
package manifest

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

const (
	manifestFile = "manifest.json"
	configFile   = "project_config.json"
	promptFile   = "merged_prompt.md"
	systemFile   = "system_prompt.md"
)

// Manifest is the persisted record of one generation run.
type Manifest struct {
	RunID       string    `json:"run_id"`
	ProjectName string    `json:"project_name"`
	Model       string    `json:"model"`
	DryRun      bool      `json:"dry_run"`
	Success     bool      `json:"success"`
	Files       []string  `json:"files"`
	Errors      []string  `json:"errors"`
	Warnings    []string  `json:"warnings"`
	StartedAt   time.Time `json:"started_at"`
	Duration    string    `json:"duration"`
}

// Save writes the manifest to the build directory atomically.
func (m *Manifest) Save(buildDir string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return WriteFileAtomic(filepath.Join(buildDir, manifestFile), data, 0644)
}

// Load reads a previously saved manifest. Returns nil without error when
// none exists.
func Load(buildDir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(buildDir, manifestFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveConfig persists the raw configuration the run was invoked with.
func SaveConfig(buildDir string, raw map[string]any) error {
	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return err
	}
	return WriteFileAtomic(filepath.Join(buildDir, configFile), data, 0644)
}

// SavePrompt persists the composed prompt pair for inspection.
func SavePrompt(buildDir, systemText, userText string) error {
	if err := WriteFileAtomic(filepath.Join(buildDir, systemFile), []byte(systemText), 0644); err != nil {
		return err
	}
	return WriteFileAtomic(filepath.Join(buildDir, promptFile), []byte(userText), 0644)
}

// EnsureDir creates the build directory.
func EnsureDir(buildDir string) error {
	return os.MkdirAll(buildDir, 0755)
}
