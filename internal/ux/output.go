package ux

import (
	"fmt"
	"time"

	"github.com/vibekit/vibe/internal/workflow"
)

// ANSI color helpers
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

func timestamp() string {
	return time.Now().Format("15:04:05")
}

var stageLabels = map[workflow.Stage]string{
	workflow.StageInit:       "Preparing request",
	workflow.StageValidating: "Validating configuration",
	workflow.StageMerging:    "Composing prompt",
	workflow.StageGenerating: "Generating project",
	workflow.StageDone:       "Done",
}

// StageHeader prints a timestamped header as the workflow enters a stage.
func StageHeader(s workflow.Stage) {
	label, ok := stageLabels[s]
	if !ok {
		label = string(s)
	}
	if s == workflow.StageDone {
		fmt.Printf("%s[%s]%s  %s✓ %s%s\n", Dim, timestamp(), Reset, Green, label, Reset)
		return
	}
	fmt.Printf("%s[%s]%s  %s▸ %s%s\n", Dim, timestamp(), Reset, Cyan, label, Reset)
}

// Warn prints a single warning line.
func Warn(msg string) {
	fmt.Printf("  %s⚠ %s%s\n", Yellow, msg, Reset)
}

// Error prints a single error line.
func Error(msg string) {
	fmt.Printf("  %s✗ %s%s\n", Red, msg, Reset)
}

// Info prints a dimmed informational line.
func Info(msg string) {
	fmt.Printf("  %s%s%s\n", Dim, msg, Reset)
}
