package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vibekit/vibe/internal/project"
	"github.com/vibekit/vibe/internal/template"
)

func TestInit_CreatesWorkspace(t *testing.T) {
	dir := t.TempDir()
	if err := Init(dir); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	for _, rel := range []string{
		filepath.Join("templates", template.MasterTemplate+".md"),
		filepath.Join("templates", template.SystemTemplate+".md"),
		filepath.Join("templates", "agent_prompts", "database.md"),
		filepath.Join("templates", "agent_prompts", "auth.md"),
		"vibe.yaml",
		".env.example",
	} {
		if _, err := os.Stat(filepath.Join(dir, rel)); err != nil {
			t.Fatalf("missing %s: %v", rel, err)
		}
	}
}

func TestInit_RefusesExistingTemplates(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "templates"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := Init(dir); err == nil {
		t.Fatal("expected error for existing templates directory")
	}
}

// The starter templates must compose cleanly for a minimal configuration.
func TestInit_TemplatesCompose(t *testing.T) {
	dir := t.TempDir()
	if err := Init(dir); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	store := template.NewStore(filepath.Join(dir, "templates"))
	composer := &template.Composer{Store: store}

	cfg, err := project.FromMap(map[string]any{
		"project_name":  "demo",
		"backend_stack": "fastapi",
		"database_type": "postgresql",
	})
	if err != nil {
		t.Fatalf("FromMap failed: %v", err)
	}

	composed, err := composer.Compose(cfg)
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	if composed.SystemText == "" || composed.UserText == "" {
		t.Fatal("composed prompt has empty parts")
	}
}
