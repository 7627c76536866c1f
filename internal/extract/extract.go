// Package extract pulls candidate component names out of source text using
// prioritized heuristic pattern rules. It never parses: the rules are
// deliberate, documented text heuristics.
package extract

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/uilens-dev/uilens/internal/fileutil"
	"github.com/uilens-dev/uilens/internal/markup"
)

// Files matching these patterns are never extracted: style modules,
// test/spec files, and type-declaration-only files.
var excludedFiles = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\.module\.(css|scss|sass|less|styl)$`),
	regexp.MustCompile(`(?i)\.(test|spec)\.[cm]?[jt]sx?$`),
	regexp.MustCompile(`(?i)\.d\.ts$`),
}

// Excluded reports whether a file must be skipped by every extraction mode.
func Excluded(path string) bool {
	for _, re := range excludedFiles {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}

// Declarations extracts candidate component names declared by the file, in
// rule-priority order. The first rule with a surviving candidate wins; when
// no rule survives, the file's base name is the last-resort candidate.
func Declarations(path, text string) []string {
	if Excluded(path) {
		return nil
	}
	for _, r := range declarationRules {
		matched, names := r.apply(text)
		if !matched {
			continue
		}
		if kept := filterNames(names); len(kept) > 0 {
			return kept
		}
	}
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if validName(base) {
		return []string{base}
	}
	return nil
}

// Usages extracts the set of component names referenced as tags in the file:
// self-closing tags, opening tags (dotted tags keep the trailing segment),
// and tags embedded in brace-delimited expressions.
func Usages(text string) []string {
	found := make(map[string]bool)
	for _, re := range []*regexp.Regexp{selfClosingTag, openingTag, braceTag} {
		for _, match := range re.FindAllStringSubmatch(text, -1) {
			name := trailingSegment(match[1])
			if validName(name) {
				found[name] = true
			}
		}
	}
	return fileutil.MapKeysSorted(found)
}

// Imports extracts the local binding names introduced by import statements:
// default imports, named-import lists ("as" aliases resolve to the local
// name), namespace imports, and combined default+named imports. Type-only
// imports are skipped.
func Imports(text string) []string {
	found := make(map[string]bool)

	addName := func(name string) {
		if validName(name) {
			found[name] = true
		}
	}
	addList := func(list string) {
		for _, entry := range strings.Split(list, ",") {
			entry = strings.TrimSpace(entry)
			if entry == "" || strings.HasPrefix(entry, "type ") {
				continue
			}
			if _, alias, ok := strings.Cut(entry, " as "); ok {
				entry = alias
			}
			addName(strings.TrimSpace(entry))
		}
	}

	for _, match := range importCombined.FindAllStringSubmatch(text, -1) {
		if match[1] != "" {
			continue
		}
		addName(match[2])
		addList(match[3])
	}
	for _, match := range importDefault.FindAllStringSubmatch(text, -1) {
		if match[1] != "" {
			continue
		}
		addName(match[2])
	}
	for _, match := range importNamed.FindAllStringSubmatch(text, -1) {
		if match[1] != "" {
			continue
		}
		addList(match[2])
	}
	for _, match := range importNamespace.FindAllStringSubmatch(text, -1) {
		if match[1] != "" {
			continue
		}
		addName(match[2])
	}

	return fileutil.MapKeysSorted(found)
}

// validName applies the shared candidate rejection filter: names shorter
// than two characters, markup tags, and keyword/built-in tokens are dropped.
func validName(name string) bool {
	if len(name) < 2 {
		return false
	}
	return !markup.IsTag(name) && !markup.IsKeyword(name)
}

func filterNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if !validName(name) || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

func trailingSegment(name string) string {
	if dot := strings.LastIndex(name, "."); dot >= 0 {
		return name[dot+1:]
	}
	return name
}
