// Package markup holds the shared token sets used to reject plain markup
// tags and language keywords during walking and extraction.
package markup

import (
	"strings"

	"github.com/uilens-dev/uilens/internal/fileutil"
)

var htmlTags = fileutil.ToSet([]string{
	"a", "abbr", "address", "area", "article", "aside", "audio", "b", "base",
	"bdi", "bdo", "blockquote", "body", "br", "button", "canvas", "caption",
	"cite", "code", "col", "colgroup", "data", "datalist", "dd", "del",
	"details", "dfn", "dialog", "div", "dl", "dt", "em", "embed", "fieldset",
	"figcaption", "figure", "footer", "form", "h1", "h2", "h3", "h4", "h5",
	"h6", "head", "header", "hgroup", "hr", "html", "i", "iframe", "img",
	"input", "ins", "kbd", "label", "legend", "li", "link", "main", "map",
	"mark", "menu", "meta", "meter", "nav", "noscript", "object", "ol",
	"optgroup", "option", "output", "p", "picture", "pre", "progress", "q",
	"rp", "rt", "ruby", "s", "samp", "script", "section", "select", "slot",
	"small", "source", "span", "strong", "style", "sub", "summary", "sup",
	"table", "tbody", "td", "template", "textarea", "tfoot", "th", "thead",
	"time", "title", "tr", "track", "u", "ul", "var", "video", "wbr",
	// common SVG container/shape tags that show up in component trees
	"svg", "g", "path", "circle", "ellipse", "line", "polygon", "polyline",
	"rect", "text", "tspan", "defs", "use", "clipPath", "linearGradient",
	"radialGradient", "stop", "mask", "pattern", "symbol", "foreignObject",
})

var keywords = fileutil.ToSet([]string{
	// declaration and control keywords that regex extraction can trip on
	"abstract", "any", "as", "async", "await", "boolean", "break", "case",
	"catch", "class", "const", "continue", "debugger", "default", "delete",
	"do", "else", "enum", "export", "extends", "false", "finally", "for",
	"from", "function", "if", "implements", "import", "in", "instanceof",
	"interface", "let", "namespace", "never", "new", "null", "number",
	"object", "of", "package", "private", "protected", "public", "readonly",
	"return", "static", "string", "super", "switch", "this", "throw", "true",
	"try", "type", "typeof", "undefined", "unknown", "var", "void", "while",
	"with", "yield",
	// globals frequently bound to consts in application code
	"array", "date", "error", "json", "map", "math", "promise", "proxy",
	"reflect", "regexp", "set", "symbol", "weakmap", "weakset", "window",
	"document", "console", "require", "module", "exports", "react",
})

// IsTag reports whether name denotes a plain markup element. Matching is
// exact: intrinsic elements are lower-case, so a capitalized Nav or Text is
// a component, not markup.
func IsTag(name string) bool {
	return htmlTags[name]
}

// IsKeyword reports whether name is a language keyword or built-in token.
func IsKeyword(name string) bool {
	return keywords[strings.ToLower(name)]
}
