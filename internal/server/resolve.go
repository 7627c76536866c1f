package server

import (
	"log"
	"os"
	"strings"

	"github.com/uilens-dev/uilens/internal/hierarchy"
	"github.com/uilens-dev/uilens/internal/sourcemap"
)

// handleOpen resolves an emitted hierarchy path string back to a source
// file. Failure is silent from the user's perspective: a logged warning and
// an unresolved reply, nothing opens.
func (s *Server) handleOpen(msg inboundMessage, send func(outboundMessage)) {
	file, ok := ResolvePath(msg.Path, s.session.SourceMap())
	if !ok {
		log.Printf("uilens: no source file resolved for %q", msg.Path)
		send(outboundMessage{Type: "unresolved", Path: msg.Path})
		return
	}
	if err := s.launcher.Open(file); err != nil {
		log.Printf("uilens: editor launch failed for %s: %v", file, err)
	}
	send(outboundMessage{Type: "resolved", Path: msg.Path, File: file})
}

// ResolvePath splits a hierarchy path on the arrow separator, trims the
// tokens, and tries them leaf-first against the source map; the first name
// that disambiguates to an existing file wins.
func ResolvePath(path string, sources sourcemap.Map) (string, bool) {
	tokens := splitHierarchy(path)
	for i := len(tokens) - 1; i >= 0; i-- {
		candidate, ok := sourcemap.Resolve(tokens[i], tokens, sources)
		if !ok {
			continue
		}
		if _, err := os.Stat(candidate.Path); err == nil {
			return candidate.Path, true
		}
	}
	return "", false
}

func splitHierarchy(path string) []string {
	parts := strings.Split(path, strings.TrimSpace(hierarchy.Separator))
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			tokens = append(tokens, part)
		}
	}
	return tokens
}
