// Package fileblocks extracts generated files from raw model output.
//
// The wire format is one block per file: a marker line "Fichier: <path>"
// followed by the file's content, running until the next marker or the end
// of the text. Anything before the first marker is preamble and discarded.
package fileblocks

import (
	"path"
	"strings"
)

// Marker is the literal prefix of a file header line in model output.
const Marker = "Fichier:"

// GeneratedFile is one output artifact parsed from the response.
type GeneratedFile struct {
	Path    string // relative, forward-slash normalized
	Content string
}

// Size returns the content length in bytes. It is always derived, never
// stored, so it cannot drift from the content.
func (f GeneratedFile) Size() int { return len(f.Content) }

// Type returns the artifact kind. The parser only ever produces files;
// directories materialize implicitly when files are written.
func (f GeneratedFile) Type() string { return "file" }

// ParseError means the response contained zero recoverable file blocks.
// An empty or unparseable response is a generation failure, not an empty
// success.
type ParseError struct {
	Detail string
}

func (e *ParseError) Error() string {
	return "parse: " + e.Detail
}

// Parse scans raw model output into generated files. Recoverable problems
// (unsafe paths, empty paths, duplicates) drop the offending block and
// record a warning; only a response with no valid blocks at all fails.
func Parse(text string) ([]GeneratedFile, []string, error) {
	var (
		files    []GeneratedFile
		warnings []string
		index    = make(map[string]int) // path -> position in files

		current string // path of the block being accumulated
		buf     []string
		inBlock bool
	)

	flush := func() {
		if !inBlock {
			return
		}
		// Trim at most one trailing newline: a block that ends right
		// before the next marker keeps its content byte-exact otherwise.
		if n := len(buf); n > 0 && buf[n-1] == "" {
			buf = buf[:n-1]
		}
		f := GeneratedFile{Path: current, Content: strings.Join(buf, "\n")}
		if pos, seen := index[current]; seen {
			warnings = append(warnings, "duplicate path "+current+": later block overwrites the earlier one")
			files[pos] = f
		} else {
			index[current] = len(files)
			files = append(files, f)
		}
		inBlock = false
		buf = nil
	}

	for _, line := range strings.Split(text, "\n") {
		if !strings.HasPrefix(line, Marker) {
			if inBlock {
				buf = append(buf, line)
			}
			// Text outside any block is preamble or explanation; dropped.
			continue
		}

		flush()

		declared := strings.TrimSpace(line[len(Marker):])
		if declared == "" {
			warnings = append(warnings, "file marker with empty path: block dropped")
			continue
		}
		clean, ok := safeRelPath(declared)
		if !ok {
			warnings = append(warnings, "unsafe path "+declared+": block dropped")
			continue
		}
		current = clean
		inBlock = true
		buf = nil
	}
	flush()

	if len(files) == 0 {
		return nil, warnings, &ParseError{Detail: "no file blocks found in model response"}
	}
	return files, warnings, nil
}

// safeRelPath normalizes a declared path to forward slashes and rejects
// anything absolute or escaping the project root via "..".
func safeRelPath(p string) (string, bool) {
	p = strings.ReplaceAll(p, "\\", "/")
	if strings.HasPrefix(p, "/") || hasDrivePrefix(p) {
		return "", false
	}
	clean := path.Clean(p)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", false
	}
	return clean, true
}

// hasDrivePrefix reports Windows-style absolute paths like "C:/x".
func hasDrivePrefix(p string) bool {
	if len(p) < 3 {
		return false
	}
	c := p[0]
	letter := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
	return letter && p[1] == ':' && p[2] == '/'
}
