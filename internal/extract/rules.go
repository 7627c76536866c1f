package extract

import "regexp"

// rule is one declaration-extraction pattern. Rules are applied in strict
// priority order: the first rule that yields a surviving candidate wins and
// lower tiers are never consulted, but all matches within the winning rule
// are kept. Downstream disambiguation depends on this short-circuit order,
// so treat the rule list as a contract.
type rule struct {
	name string
	re   *regexp.Regexp
}

// apply returns whether the rule matched and the captured names in source
// order. Names are raw; the caller filters them.
func (r rule) apply(text string) (bool, []string) {
	matches := r.re.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return false, nil
	}
	names := make([]string, 0, len(matches))
	for _, match := range matches {
		names = append(names, match[1])
	}
	return true, names
}

const identifier = `([A-Za-z_$][\w$]*)`

var declarationRules = []rule{
	{
		name: "default-function",
		re:   regexp.MustCompile(`export\s+default\s+(?:async\s+)?function\s+` + identifier),
	},
	{
		// A constant identifier bound inside a wrapped default export,
		// e.g. export default memo(Card) or export default React.forwardRef(Input).
		name: "default-const",
		re:   regexp.MustCompile(`export\s+default\s+(?:[A-Za-z_$][\w$]*\.)?(?:memo|forwardRef|observer|styled|withRouter|connect\([^)]*\))\s*\(\s*` + identifier),
	},
	{
		name: "default-identifier",
		re:   regexp.MustCompile(`(?m)export\s+default\s+` + identifier + `\s*;?\s*$`),
	},
	{
		// export const Name = ...function-like expression.
		name: "exported-const-function",
		re:   regexp.MustCompile(`(?m)^\s*export\s+const\s+` + identifier + `\s*(?::[^=\n]+)?=\s*(?:async\s*)?(?:function\b|\(|[A-Za-z_$][\w$]*\s*=>|(?:[A-Za-z_$][\w$]*\.)?(?:memo|forwardRef)\s*\()`),
	},
	{
		name: "exported-function",
		re:   regexp.MustCompile(`(?m)^\s*export\s+(?:async\s+)?function\s+` + identifier),
	},
	{
		name: "exported-class",
		re:   regexp.MustCompile(`(?m)^\s*export\s+(?:default\s+)?(?:abstract\s+)?class\s+` + identifier),
	},
	{
		// Only consulted when nothing is exported by name: any locally
		// declared function-like constant.
		name: "local-const-function",
		re:   regexp.MustCompile(`(?m)^\s*const\s+` + identifier + `\s*(?::[^=\n]+)?=\s*(?:async\s*)?(?:function\b|\(|[A-Za-z_$][\w$]*\s*=>)`),
	},
}

// Usage-mode shapes. Dotted tags keep only the trailing segment.
var (
	selfClosingTag = regexp.MustCompile(`<([A-Za-z][\w$]*(?:\.[A-Za-z][\w$]*)*)[^<>]*?/>`)
	openingTag     = regexp.MustCompile(`<([A-Za-z][\w$]*(?:\.[A-Za-z][\w$]*)*)[\s>]`)
	braceTag       = regexp.MustCompile(`\{\s*<([A-Za-z][\w$]*(?:\.[A-Za-z][\w$]*)*)`)
)

// Import-statement shapes. The leading optional "type" group marks a
// type-only import; matches carrying it are skipped.
var (
	importDefault   = regexp.MustCompile(`import\s+(type\s+)?([A-Za-z_$][\w$]*)\s+from`)
	importNamed     = regexp.MustCompile(`import\s+(type\s+)?\{([^}]*)\}\s*from`)
	importNamespace = regexp.MustCompile(`import\s+(type\s+)?\*\s*as\s+([A-Za-z_$][\w$]*)\s+from`)
	importCombined  = regexp.MustCompile(`import\s+(type\s+)?([A-Za-z_$][\w$]*)\s*,\s*\{([^}]*)\}\s*from`)
)
