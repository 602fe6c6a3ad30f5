package ux

import (
	"fmt"

	"github.com/vibekit/vibe/internal/workflow"
)

// RenderResult prints the full outcome of a run: headline, file listing,
// warnings, errors, and the summary line.
func RenderResult(res *workflow.Result, dryRun bool) {
	fmt.Println()
	switch {
	case res.Success && dryRun:
		fmt.Printf("%s%s══ Dry run complete ══%s\n", Bold, Green, Reset)
	case res.Success:
		fmt.Printf("%s%s══ Generation complete ══%s\n", Bold, Green, Reset)
	default:
		fmt.Printf("%s%s══ Generation failed ══%s\n", Bold, Red, Reset)
	}

	if len(res.Files) > 0 {
		fmt.Printf("\n%sFiles:%s\n", Bold, Reset)
		for _, f := range res.Files {
			fmt.Printf("  %s%-40s%s %s%d bytes%s\n", Cyan, f.Path, Reset, Dim, f.Size, Reset)
		}
	}

	if len(res.Warnings) > 0 {
		fmt.Printf("\n%sWarnings:%s\n", Bold, Reset)
		for _, w := range res.Warnings {
			Warn(w)
		}
	}
	if len(res.Errors) > 0 {
		fmt.Printf("\n%sErrors:%s\n", Bold, Reset)
		for _, e := range res.Errors {
			Error(e)
		}
	}

	fmt.Printf("\n%s%d files, %d bytes, %.2fs%s\n",
		Dim, res.Metadata.TotalFiles, res.Metadata.TotalSize, res.Metadata.GenerationTime, Reset)
	if res.Metadata.Framework != "" {
		fmt.Printf("%sFramework: %s%s\n", Dim, res.Metadata.Framework, Reset)
	}
	fmt.Println()
}
