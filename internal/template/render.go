// Package template provides the prompt template store and the merge step
// that turns a template plus a project configuration into the composed
// prompt pair sent to the model.
//
// Templates use a small conditional-section language:
//
//	{{placeholder}}                 — replaced with the config value, or ""
//	{{#if field}} ... {{/if}}       — kept only when field is non-empty
//
// Conditional markers on their own line are elided together with the line,
// so an omitted section leaves no blank gap behind.
package template

import (
	"fmt"
	"regexp"
	"strings"
)

// TemplateError reports a malformed template (unbalanced conditionals).
type TemplateError struct {
	Detail string
}

func (e *TemplateError) Error() string {
	return "template: " + e.Detail
}

var (
	placeholderRe = regexp.MustCompile(`\{\{\s*([\w.]+)\s*\}\}`)
	inlineIfRe    = regexp.MustCompile(`\{\{#if\s+([\w.]+)\}\}(.*?)\{\{/if\}\}`)
	ifOpenRe      = regexp.MustCompile(`^\{\{#if\s+([\w.]+)\}\}$`)
)

// Render substitutes placeholders and resolves conditional sections.
// Unknown placeholders resolve to the empty string so templates stay
// forward-compatible with config schema growth. The only failure mode is a
// structurally broken template: a {{/if}} without an opener, or an {{#if}}
// left unclosed.
func Render(tmpl string, vars map[string]string) (string, error) {
	lines := strings.Split(tmpl, "\n")
	var out []string
	var stack []bool // condition values of enclosing {{#if}} blocks

	included := func() bool {
		for _, ok := range stack {
			if !ok {
				return false
			}
		}
		return true
	}

	for n, line := range lines {
		trimmed := strings.TrimSpace(line)

		if m := ifOpenRe.FindStringSubmatch(trimmed); m != nil {
			stack = append(stack, vars[m[1]] != "")
			continue
		}
		if trimmed == "{{/if}}" {
			if len(stack) == 0 {
				return "", &TemplateError{Detail: fmt.Sprintf("line %d: {{/if}} without matching {{#if}}", n+1)}
			}
			stack = stack[:len(stack)-1]
			continue
		}
		if !included() {
			continue
		}

		// Same-line conditional spans, then plain placeholders.
		line = inlineIfRe.ReplaceAllStringFunc(line, func(span string) string {
			m := inlineIfRe.FindStringSubmatch(span)
			if vars[m[1]] == "" {
				return ""
			}
			return m[2]
		})
		// Any conditional marker still present is half of a pair: an
		// inline opener with no closer on its line, or vice versa.
		if strings.Contains(line, "{{#if") || strings.Contains(line, "{{/if}}") {
			return "", &TemplateError{Detail: fmt.Sprintf("line %d: unbalanced inline conditional", n+1)}
		}
		line = placeholderRe.ReplaceAllStringFunc(line, func(ph string) string {
			m := placeholderRe.FindStringSubmatch(ph)
			return vars[m[1]]
		})
		out = append(out, line)
	}

	if len(stack) > 0 {
		return "", &TemplateError{Detail: fmt.Sprintf("%d unclosed {{#if}} block(s)", len(stack))}
	}
	return strings.Join(out, "\n"), nil
}
