// Package doctor runs preflight checks: is the environment able to run a
// generation, and does the composed prompt look healthy.
package doctor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vibekit/vibe/internal/config"
	"github.com/vibekit/vibe/internal/provider"
	"github.com/vibekit/vibe/internal/template"
	"github.com/vibekit/vibe/internal/ux"
)

// Check is one preflight probe result.
type Check struct {
	Name   string
	OK     bool
	Detail string
}

// Run probes the environment described by cfg.
func Run(cfg *config.Config) []Check {
	checks := []Check{
		checkAPIKey(),
		checkTemplates(cfg.TemplatesDir),
		checkWritable("output directory", cfg.OutputDir),
		checkWritable("build directory", cfg.BuildDir),
	}
	if cfg.MemoryPath != "" {
		checks = append(checks, checkWritable("memory store directory", filepath.Dir(cfg.MemoryPath)))
	}
	return checks
}

// Healthy reports whether every check passed.
func Healthy(checks []Check) bool {
	for _, c := range checks {
		if !c.OK {
			return false
		}
	}
	return true
}

// Render prints the check results.
func Render(checks []Check) {
	fmt.Printf("\n%sPreflight:%s\n", ux.Bold, ux.Reset)
	for _, c := range checks {
		if c.OK {
			fmt.Printf("  %s✓%s %-24s %s%s%s\n", ux.Green, ux.Reset, c.Name, ux.Dim, c.Detail, ux.Reset)
		} else {
			fmt.Printf("  %s✗%s %-24s %s\n", ux.Red, ux.Reset, c.Name, c.Detail)
		}
	}
	fmt.Println()
}

func checkAPIKey() Check {
	if provider.HasAnthropicKey() {
		return Check{Name: "API key", OK: true, Detail: provider.AnthropicKeyEnv + " is set"}
	}
	return Check{Name: "API key", OK: false, Detail: provider.AnthropicKeyEnv + " is not set (add it to .env or the environment)"}
}

func checkTemplates(dir string) Check {
	name := "templates"
	store := template.NewStore(dir)
	if _, err := store.Get(template.MasterTemplate); err != nil {
		return Check{Name: name, OK: false, Detail: fmt.Sprintf("master template not loadable: %v", err)}
	}
	return Check{Name: name, OK: true, Detail: dir}
}

// checkWritable verifies the directory exists (or can be created) and
// accepts a write.
func checkWritable(name, dir string) Check {
	if dir == "" {
		return Check{Name: name, OK: true, Detail: "(not configured)"}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Check{Name: name, OK: false, Detail: fmt.Sprintf("cannot create %s: %v", dir, err)}
	}
	probe, err := os.CreateTemp(dir, ".vibe-doctor-*")
	if err != nil {
		return Check{Name: name, OK: false, Detail: fmt.Sprintf("not writable: %v", err)}
	}
	probe.Close()
	os.Remove(probe.Name())
	return Check{Name: name, OK: true, Detail: dir}
}
