package filter

import (
	"regexp"
)

// Rule is a single pattern -> capture-template rewrite
type Rule struct {
	Name     string
	pattern  *regexp.Regexp
	template string
}

// Result holds the rewritten text and how many spans were replaced
type Result struct {
	Text         string
	Replacements int
}

var (
	// \texttt{...} up to the first closing brace. Nested braces are not
	// balanced: the first } ends the capture.
	texttRegex = regexp.MustCompile(`\\texttt\{([^}]+)\}`)
)

// Texttt strips \texttt{X} down to X
var Texttt = &Rule{
	Name:     "texttt",
	pattern:  texttRegex,
	template: "$1",
}

// Apply rewrites every non-overlapping match in src, left to right
func (r *Rule) Apply(src string) Result {
	matches := r.pattern.FindAllStringSubmatchIndex(src, -1)
	if len(matches) == 0 {
		return Result{Text: src}
	}

	out := make([]byte, 0, len(src))
	last := 0
	for _, m := range matches {
		out = append(out, src[last:m[0]]...)
		out = r.pattern.ExpandString(out, r.template, src, m)
		last = m[1]
	}
	out = append(out, src[last:]...)

	return Result{Text: string(out), Replacements: len(matches)}
}

// Apply strips \texttt{} markup from src
func Apply(src string) Result {
	return Texttt.Apply(src)
}
