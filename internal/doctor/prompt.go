package doctor

import (
	"fmt"
	"strings"

	"github.com/vibekit/vibe/internal/ux"
)

// PromptReport grades a composed prompt: hard problems, softer suggestions,
// and a 0..1 quality score.
type PromptReport struct {
	Issues      []string
	Suggestions []string
	Score       float64
}

// Valid reports whether the prompt has no hard issues.
func (r *PromptReport) Valid() bool { return len(r.Issues) == 0 }

// expectedSections are topics a thorough generation prompt usually covers.
var expectedSections = []string{"project", "requirements", "architecture", "implementation"}

// ReviewPrompt grades composed prompt text.
func ReviewPrompt(text string) *PromptReport {
	r := &PromptReport{}
	trimmed := strings.TrimSpace(text)

	if trimmed == "" {
		r.Issues = append(r.Issues, "prompt is empty")
		return r
	}
	if len(trimmed) < 100 {
		r.Issues = append(r.Issues, "prompt is very short and may not provide enough context")
	}
	if len(trimmed) > 50000 {
		r.Suggestions = append(r.Suggestions, "prompt is very long, consider trimming templates")
	}
	if strings.Contains(text, "{{") {
		r.Issues = append(r.Issues, "prompt contains unresolved template markers")
	}

	lower := strings.ToLower(text)
	var missing []string
	for _, section := range expectedSections {
		if !strings.Contains(lower, section) {
			missing = append(missing, section)
		}
	}
	if len(missing) > 0 {
		r.Suggestions = append(r.Suggestions, "consider adding sections for: "+strings.Join(missing, ", "))
	}

	r.Score = scorePrompt(trimmed, len(r.Issues), len(r.Suggestions))
	return r
}

func scorePrompt(text string, issues, suggestions int) float64 {
	score := 1.0
	score -= float64(issues) * 0.2
	score -= float64(suggestions) * 0.05

	switch n := len(text); {
	case n >= 1000 && n <= 10000:
		score += 0.1
	case n >= 500 && n <= 20000:
		score += 0.05
	}
	if strings.Contains(text, "# ") {
		score += 0.05
	}

	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// RenderPromptReport prints the report.
func RenderPromptReport(r *PromptReport) {
	fmt.Printf("%sPrompt quality:%s %.2f\n", ux.Bold, ux.Reset, r.Score)
	for _, issue := range r.Issues {
		ux.Error(issue)
	}
	for _, s := range r.Suggestions {
		ux.Warn(s)
	}
	if r.Valid() && len(r.Suggestions) == 0 {
		ux.Info("no issues found")
	}
}
