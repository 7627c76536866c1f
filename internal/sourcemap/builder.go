package sourcemap

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"

	"github.com/uilens-dev/uilens/internal/classify"
	"github.com/uilens-dev/uilens/internal/extract"
	"github.com/uilens-dev/uilens/internal/pathutil"
)

// Extensions the scan recognizes as project source.
var recognizedExtensions = map[string]int{
	".tsx":    TierComponent,
	".ts":     TierScript,
	".jsx":    TierScript,
	".js":     TierScript,
	".mjs":    TierScript,
	".cjs":    TierScript,
	".vue":    TierOther,
	".svelte": TierOther,
}

// Directory names treated as source roots; a candidate's context is the
// path beneath the nearest one.
var sourceRoots = map[string]bool{
	"src":        true,
	"app":        true,
	"pages":      true,
	"components": true,
	"lib":        true,
	"packages":   true,
}

// ScanIssue records a per-file problem encountered during a scan. Issues are
// collected, never raised: a broken file only loses its own candidates.
type ScanIssue struct {
	File    string `json:"file"`
	Message string `json:"message"`
}

// ScanResult is the output of one full source-tree scan.
type ScanResult struct {
	Root    string              `json:"root"`
	Map     Map                 `json:"map"`
	Files   []string            `json:"files"`
	Usage   map[string][]string `json:"usage,omitempty"`
	Imports map[string][]string `json:"imports,omitempty"`
	Issues  []ScanIssue         `json:"issues,omitempty"`
}

// Scan walks the source tree under root once, building the name ->
// candidate index plus the per-file usage and import reference maps. The
// result replaces any previous scan wholesale. Marker directories and
// .gitignore matches are skipped.
func Scan(root string) (*ScanResult, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("source root unavailable: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source root %s is not a directory", root)
	}

	ignored := loadGitignore(root)
	result := &ScanResult{
		Root:    root,
		Map:     make(Map),
		Files:   make([]string, 0),
		Usage:   make(map[string][]string),
		Imports: make(map[string][]string),
	}

	walkErr := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}
		if err != nil {
			result.Issues = append(result.Issues, ScanIssue{File: rel, Message: fmt.Sprintf("walk error: %v", err)})
			if entry != nil && entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if rel == "." {
			return nil
		}
		if entry.IsDir() {
			if classify.IsExternalPath(entry.Name()) || (ignored != nil && ignored.MatchesPath(rel+"/")) {
				return filepath.SkipDir
			}
			return nil
		}
		if _, ok := recognizedExtensions[strings.ToLower(filepath.Ext(path))]; !ok {
			return nil
		}
		if ignored != nil && ignored.MatchesPath(rel) {
			return nil
		}

		result.Files = append(result.Files, path)
		if extract.Excluded(path) {
			return nil
		}

		content, readErr := os.ReadFile(path)
		if readErr != nil {
			result.Issues = append(result.Issues, ScanIssue{File: rel, Message: fmt.Sprintf("unreadable: %v", readErr)})
			return nil
		}
		text := string(content)

		tier := priorityFor(path)
		context := contextFor(rel)
		for _, name := range extract.Declarations(path, text) {
			result.Map.Add(name, Candidate{Path: path, Context: context, Priority: tier})
		}

		normalized := pathutil.Normalize(path)
		if usages := extract.Usages(text); len(usages) > 0 {
			result.Usage[normalized] = usages
		}
		if imports := extract.Imports(text); len(imports) > 0 {
			result.Imports[normalized] = imports
		}
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return result, nil
}

// CandidateFor derives the candidate entry a scan would produce for one
// file; used by the additive register-source event.
func CandidateFor(root, path string) Candidate {
	rel := path
	if root != "" {
		if r, err := filepath.Rel(root, path); err == nil {
			rel = r
		}
	}
	return Candidate{Path: path, Context: contextFor(rel), Priority: priorityFor(path)}
}

// priorityFor derives a candidate's tier purely from its file extension.
func priorityFor(path string) int {
	if tier, ok := recognizedExtensions[strings.ToLower(filepath.Ext(path))]; ok {
		return tier
	}
	return TierOther
}

// contextFor returns the directory tokens beneath the outermost source-root
// convention directory, falling back to the immediate parent directory.
// The scan is shallowest-first: grouping directories like components or lib
// are convention roots themselves, and taking an inner one would truncate
// the tokens the disambiguator matches against.
func contextFor(relPath string) []string {
	segments := pathutil.Segments(relPath)
	if len(segments) < 2 {
		return nil
	}
	dirs := segments[:len(segments)-1]
	for i, dir := range dirs {
		if sourceRoots[dir] && i < len(dirs)-1 {
			return append([]string(nil), dirs[i+1:]...)
		}
	}
	return []string{dirs[len(dirs)-1]}
}

func loadGitignore(root string) *gitignore.GitIgnore {
	matcher, err := gitignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return matcher
}
