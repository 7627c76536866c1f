// Package classify decides whether a path or component name belongs to the
// current project or to an external dependency.
package classify

import (
	"regexp"
	"strings"

	"github.com/uilens-dev/uilens/internal/pathutil"
)

// Reference exposes the process-wide state the classifier consults. The
// session type implements it; tests supply small fakes.
type Reference interface {
	ProjectRoot() string
	HasNameToken(name string) bool
}

// Marker directories that always denote dependency, build, or VCS output.
var externalMarkers = []string{
	"node_modules",
	"bower_components",
	".git",
	".cache",
	".turbo",
	".parcel-cache",
	"dist",
	"build",
	"out",
	".next",
	".nuxt",
	".output",
	"coverage",
}

var driveLetter = regexp.MustCompile(`^[A-Za-z]:[/\\]`)

// IsExternalPath reports whether the path contains a marker directory for a
// dependency cache, compiled output, version control, or build cache.
// Matching is case-insensitive over normalized path segments.
func IsExternalPath(path string) bool {
	for _, segment := range pathutil.Segments(path) {
		for _, marker := range externalMarkers {
			if segment == marker {
				return true
			}
		}
	}
	return false
}

// IsProjectNode decides project membership for a component given its
// optional source-origin path and optional resolved name.
//
// With an origin path: external marker paths are rejected; paths under the
// project root are accepted; otherwise a relative, non-dependency path is
// treated as an internal-looking reference. With only a name: the name must
// be a known token in the project file index. With neither: accept only
// while no project root has been established (cannot prove otherwise).
func IsProjectNode(origin, name string, ref Reference) bool {
	root := ""
	if ref != nil {
		root = ref.ProjectRoot()
	}

	if origin != "" {
		if IsExternalPath(origin) {
			return false
		}
		normalized := pathutil.Normalize(origin)
		if root != "" && strings.HasPrefix(normalized, pathutil.Normalize(root)) {
			return true
		}
		if !strings.Contains(normalized, "node_modules") && !isAbsolute(origin) {
			return true
		}
		return false
	}

	if name != "" {
		return ref != nil && ref.HasNameToken(strings.ToLower(name))
	}

	return root == ""
}

func isAbsolute(path string) bool {
	return strings.HasPrefix(path, "/") ||
		strings.HasPrefix(path, "\\") ||
		driveLetter.MatchString(path)
}
