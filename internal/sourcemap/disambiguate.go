package sourcemap

import "strings"

// Resolve picks one candidate file for name. With a single candidate the
// choice is trivial. With several, the immediate predecessor of name in the
// observed hierarchy (its parent in path order) is matched case-insensitively
// against each candidate's context tokens; failing that, the candidate with
// the highest priority tier wins, ties broken by first-encountered order.
func Resolve(name string, hierarchy []string, m Map) (Candidate, bool) {
	candidates := m[name]
	if len(candidates) == 0 {
		return Candidate{}, false
	}
	if len(candidates) == 1 {
		return candidates[0], true
	}

	if parent := parentOf(name, hierarchy); parent != "" {
		for _, candidate := range candidates {
			if contextContains(candidate.Context, parent) {
				return candidate, true
			}
		}
	}

	best := candidates[0]
	for _, candidate := range candidates[1:] {
		if candidate.Priority > best.Priority {
			best = candidate
		}
	}
	return best, true
}

func parentOf(name string, hierarchy []string) string {
	for i, entry := range hierarchy {
		if i > 0 && strings.EqualFold(strings.TrimSpace(entry), name) {
			return strings.TrimSpace(hierarchy[i-1])
		}
	}
	return ""
}

func contextContains(context []string, parent string) bool {
	for _, token := range context {
		if strings.EqualFold(token, parent) {
			return true
		}
	}
	return false
}
