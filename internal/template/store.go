package template

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Names of the templates the composer looks up. A store may carry more;
// these two are the required minimum for generation.
const (
	MasterTemplate = "master_init_template"
	SystemTemplate = "system_prompt_architect"
)

// agentPromptsDir is the subdirectory holding conditional prompt sections.
const agentPromptsDir = "agent_prompts"

// Meta is the YAML frontmatter of a prompt template. It gates whether the
// template is appended to the composed prompt for a given configuration.
type Meta struct {
	Stack            []string `yaml:"stack"`
	AuthRequired     bool     `yaml:"auth_required"`
	DatabaseRequired bool     `yaml:"database_required"`
	Priority         int      `yaml:"priority"`
}

// Prompt is one loaded template file: its name, gating metadata, and body.
type Prompt struct {
	Name string
	Meta Meta
	Body string
}

// Store is a named template lookup over a directory of .md files.
// Absence of a named template is the caller's configuration error, not a
// defect in this package.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir. The directory is not required to
// exist yet; lookups report missing files individually.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the store's root directory.
func (s *Store) Dir() string { return s.dir }

// Get returns the body of the named template (frontmatter stripped).
func (s *Store) Get(name string) (string, error) {
	_, body, err := s.load(name)
	return body, err
}

func (s *Store) load(name string) (Meta, string, error) {
	path := filepath.Join(s.dir, name+".md")
	data, err := os.ReadFile(path)
	if err != nil {
		return Meta{}, "", fmt.Errorf("template %q: %w", name, err)
	}
	meta, body := parseFrontmatter(string(data))
	return meta, body, nil
}

// AgentPrompts loads every template under agent_prompts/ whose frontmatter
// matches the given config values, ordered by priority (highest first),
// then by name for determinism. A missing agent_prompts directory is not
// an error; the extra sections are simply absent.
func (s *Store) AgentPrompts(vars map[string]string) ([]Prompt, error) {
	dir := filepath.Join(s.dir, agentPromptsDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading agent prompts: %w", err)
	}

	var prompts []Prompt
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading agent prompt %s: %w", e.Name(), err)
		}
		meta, body := parseFrontmatter(string(data))
		if !meta.matches(vars) {
			continue
		}
		prompts = append(prompts, Prompt{
			Name: strings.TrimSuffix(e.Name(), ".md"),
			Meta: meta,
			Body: body,
		})
	}

	sort.SliceStable(prompts, func(i, j int) bool {
		if prompts[i].Meta.Priority != prompts[j].Meta.Priority {
			return prompts[i].Meta.Priority > prompts[j].Meta.Priority
		}
		return prompts[i].Name < prompts[j].Name
	})
	return prompts, nil
}

// matches reports whether the template's gating conditions hold for the
// given config values.
func (m Meta) matches(vars map[string]string) bool {
	if len(m.Stack) > 0 {
		stack := strings.ToLower(vars["backend_stack"])
		if stack != "" {
			found := false
			for _, s := range m.Stack {
				if strings.ToLower(s) == stack {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
	}
	if m.AuthRequired && isNone(vars["auth_type"]) {
		return false
	}
	if m.DatabaseRequired && isNone(vars["database_type"]) {
		return false
	}
	return true
}

func isNone(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	return v == "" || v == "none"
}

// parseFrontmatter splits optional leading YAML frontmatter ("---" fenced)
// from the template body. Malformed frontmatter is treated as body text
// rather than failing the load.
func parseFrontmatter(content string) (Meta, string) {
	if !strings.HasPrefix(content, "---") {
		return Meta{}, content
	}
	parts := strings.SplitN(content, "---", 3)
	if len(parts) < 3 {
		return Meta{}, content
	}
	var meta Meta
	if err := yaml.Unmarshal([]byte(parts[1]), &meta); err != nil {
		return Meta{}, content
	}
	return meta, strings.TrimLeft(parts[2], "\n")
}
