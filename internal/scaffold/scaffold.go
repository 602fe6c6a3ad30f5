// Package scaffold creates a starter workspace: the templates directory the
// composer reads from, a settings file, and an env example for API keys.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vibekit/vibe/internal/config"
	"github.com/vibekit/vibe/internal/template"
	"github.com/vibekit/vibe/internal/ux"
)

const settingsTemplate = `# vibe settings
model: claude-3-5-sonnet-20241022
templates-dir: templates
output-dir: generated
build-dir: build
archive: true
# memory-path: .vibe/memory.json
`

const envExample = `ANTHROPIC_API_KEY=
OPENAI_API_KEY=
`

// Init creates the starter files under targetDir. It refuses to run when
// the templates directory already exists.
func Init(targetDir string) error {
	templatesDir := filepath.Join(targetDir, "templates")
	if _, err := os.Stat(templatesDir); err == nil {
		return fmt.Errorf("templates directory already exists in %s", targetDir)
	}

	files := map[string]string{
		filepath.Join("templates", template.MasterTemplate+".md"):       masterTemplate,
		filepath.Join("templates", template.SystemTemplate+".md"):       systemTemplate,
		filepath.Join("templates", "agent_prompts", "database.md"):      databasePrompt,
		filepath.Join("templates", "agent_prompts", "auth.md"):          authPrompt,
		config.DefaultFileName:                                          settingsTemplate,
		".env.example":                                                  envExample,
	}

	for rel, content := range files {
		full := filepath.Join(targetDir, rel)
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", rel, err)
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", rel, err)
		}
	}

	fmt.Printf("\n%s%s✓ Initialized vibe workspace%s\n\n", ux.Bold, ux.Green, ux.Reset)
	fmt.Printf("  Created:\n")
	fmt.Printf("    %stemplates/%s               — prompt templates\n", ux.Cyan, ux.Reset)
	fmt.Printf("    %stemplates/agent_prompts/%s — conditional prompt sections\n", ux.Cyan, ux.Reset)
	fmt.Printf("    %s%s%s                — settings\n", ux.Cyan, config.DefaultFileName, ux.Reset)
	fmt.Printf("    %s.env.example%s             — API key template\n\n", ux.Cyan, ux.Reset)
	fmt.Printf("  Next steps:\n")
	fmt.Printf("    1. Copy %s.env.example%s to %s.env%s and add your API key\n", ux.Cyan, ux.Reset, ux.Cyan, ux.Reset)
	fmt.Printf("    2. Edit the templates for your project conventions\n")
	fmt.Printf("    3. Run %svibe generate --config-json config.json --dry-run%s to preview\n\n", ux.Cyan, ux.Reset)

	return nil
}
