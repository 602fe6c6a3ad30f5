package template

import (
	"fmt"
	"strings"

	"github.com/vibekit/vibe/internal/project"
)

// ComposedPrompt is the final system/user text pair sent to the
// model-completion provider. Created once per request, discarded after use.
type ComposedPrompt struct {
	SystemText string
	UserText   string
}

// defaultSystemPrompt is used when the store has no system template.
const defaultSystemPrompt = `You are an expert software architect. Generate a complete project structure based on the provided configuration and requirements.

Output each file as a block starting with a line "Fichier: <relative/path>" followed by the file's full content. Do not wrap file contents in code fences.`

// Composer merges the master template, conditional agent prompts, and the
// generation plan into a ComposedPrompt. Composition is deterministic:
// identical (store contents, config) inputs yield byte-identical output.
type Composer struct {
	Store *Store
}

// Compose builds the prompt pair for a validated configuration.
func (c *Composer) Compose(cfg *project.Config) (*ComposedPrompt, error) {
	vars := cfg.Vars()

	master, err := c.Store.Get(MasterTemplate)
	if err != nil {
		return nil, err
	}
	user, err := Render(master, vars)
	if err != nil {
		return nil, err
	}
	user = strings.TrimSpace(user)

	extras, err := c.Store.AgentPrompts(vars)
	if err != nil {
		return nil, err
	}
	for _, p := range extras {
		section, err := Render(p.Body, vars)
		if err != nil {
			return nil, fmt.Errorf("agent prompt %q: %w", p.Name, err)
		}
		if section = strings.TrimSpace(section); section != "" {
			user = user + "\n\n" + section
		}
	}

	user = user + "\n\n## Generation Plan\n\n" + Plan(cfg)

	system := defaultSystemPrompt
	if body, err := c.Store.Get(SystemTemplate); err == nil {
		if body = strings.TrimSpace(body); body != "" {
			system = body
		}
	}

	return &ComposedPrompt{SystemText: system, UserText: user}, nil
}

// Plan renders a numbered build plan from the configuration. Steps for
// absent stack choices are left out.
func Plan(cfg *project.Config) string {
	backend := cfg.BackendStack
	if backend == "" {
		backend = "the backend framework"
	}

	steps := []string{
		"Create the project structure and configuration",
		"Set up " + backend,
	}
	if !isNone(cfg.DatabaseType) {
		steps = append(steps,
			"Configure "+cfg.DatabaseType+" and the data access layer",
			"Create database models and migrations")
	}
	steps = append(steps,
		"Generate REST API endpoints and handlers",
		"Add request/response validation")
	if !isNone(cfg.AuthType) {
		steps = append(steps,
			"Integrate "+cfg.AuthType+" authentication",
			"Add authorization and permissions")
	}
	steps = append(steps,
		"Add error handling and logging",
		"Create tests and documentation")

	var b strings.Builder
	for i, s := range steps {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d. %s", i+1, s)
	}
	return b.String()
}
