package fileblocks

import (
	"errors"
	"strings"
	"testing"
)

func TestParse_TwoBlocks(t *testing.T) {
	input := "Fichier: package.json\n{\"name\":\"x\"}\nFichier: src/app.ts\nconsole.log(1)\n"
	files, warnings, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(files))
	}
	if files[0].Path != "package.json" || files[0].Content != `{"name":"x"}` {
		t.Fatalf("unexpected first file: %+v", files[0])
	}
	if files[1].Path != "src/app.ts" || files[1].Content != "console.log(1)" {
		t.Fatalf("unexpected second file: %+v", files[1])
	}
}

func TestParse_PreambleDiscarded(t *testing.T) {
	input := "Here is your project:\n\nFichier: README.md\n# Hello\n"
	files, _, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(files))
	}
	if files[0].Content != "# Hello" {
		t.Fatalf("unexpected content: %q", files[0].Content)
	}
}

func TestParse_NoMarkers(t *testing.T) {
	_, _, err := Parse("I could not generate any files, sorry.")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	_, _, err := Parse("")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError for empty input, got %v", err)
	}
}

func TestParse_UnsafePathsDropped(t *testing.T) {
	input := strings.Join([]string{
		"Fichier: ../../etc/passwd",
		"root:x:0",
		"Fichier: /etc/hosts",
		"127.0.0.1",
		"Fichier: C:/windows/system.ini",
		"[boot]",
		"Fichier: src/ok.go",
		"package main",
	}, "\n")

	files, warnings, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(files) != 1 || files[0].Path != "src/ok.go" {
		t.Fatalf("expected only src/ok.go, got %+v", files)
	}
	if len(warnings) != 3 {
		t.Fatalf("expected 3 warnings, got %v", warnings)
	}
	for _, f := range files {
		if strings.Contains(f.Path, "..") {
			t.Fatalf("path escaped root: %q", f.Path)
		}
	}
}

func TestParse_DotDotInsideSegmentDropped(t *testing.T) {
	input := "Fichier: src/../../escape.txt\nboom\nFichier: a.txt\nok\n"
	files, warnings, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(files) != 1 || files[0].Path != "a.txt" {
		t.Fatalf("expected only a.txt, got %+v", files)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %v", warnings)
	}
}

func TestParse_EmptyPathDropped(t *testing.T) {
	input := "Fichier:\norphaned content\nFichier: a.txt\nok\n"
	files, warnings, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(files))
	}
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %v", warnings)
	}
}

func TestParse_DuplicatePathLastWins(t *testing.T) {
	input := "Fichier: main.go\nfirst\nFichier: other.go\nmiddle\nFichier: main.go\nsecond\n"
	files, warnings, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(files))
	}
	if files[0].Path != "main.go" || files[0].Content != "second" {
		t.Fatalf("expected last duplicate to win, got %+v", files[0])
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "duplicate") {
		t.Fatalf("expected duplicate warning, got %v", warnings)
	}

	// Paths must be unique in the result.
	seen := make(map[string]bool)
	for _, f := range files {
		if seen[f.Path] {
			t.Fatalf("duplicate path in result: %q", f.Path)
		}
		seen[f.Path] = true
	}
}

func TestParse_TrimsAtMostOneTrailingNewline(t *testing.T) {
	// Block content ends with a blank line before the next marker: exactly
	// one newline is trimmed, interior blank lines are preserved.
	input := "Fichier: a.txt\nline1\n\nline3\n\nFichier: b.txt\nx\n"
	files, _, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if files[0].Content != "line1\n\nline3" {
		t.Fatalf("unexpected content: %q", files[0].Content)
	}
}

func TestParse_EmptyContentBlock(t *testing.T) {
	input := "Fichier: empty.txt\nFichier: a.txt\nok\n"
	files, _, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(files))
	}
	if files[0].Path != "empty.txt" || files[0].Content != "" {
		t.Fatalf("unexpected empty block: %+v", files[0])
	}
}

func TestParse_MarkerWithSurroundingSpaces(t *testing.T) {
	files, _, err := Parse("Fichier:   src/app.py  \nprint(1)\n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if files[0].Path != "src/app.py" {
		t.Fatalf("expected trimmed path, got %q", files[0].Path)
	}
}

func TestParse_BackslashPathsNormalized(t *testing.T) {
	files, _, err := Parse("Fichier: src\\app\\main.go\npackage main\n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if files[0].Path != "src/app/main.go" {
		t.Fatalf("expected normalized path, got %q", files[0].Path)
	}
}

func TestSize_AlwaysMatchesContent(t *testing.T) {
	for _, content := range []string{"", "abc", "héllo\nworld", strings.Repeat("x", 4096)} {
		f := GeneratedFile{Path: "f", Content: content}
		if f.Size() != len(content) {
			t.Fatalf("size %d does not match content length %d", f.Size(), len(content))
		}
	}
}
