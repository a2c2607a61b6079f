// Package markup renders note source to a restricted, safe HTML form.
//
// The transform is deliberately line-oriented: every line is escaped and
// rendered independently, and there is no multi-line block detection
// (no fenced code blocks, no nested lists). Full Markdown compliance is
// a non-goal; the supported subset is headings, bold, italic and inline
// code.
package markup

import (
	"regexp"
	"strings"
)

var (
	boldRe   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicRe = regexp.MustCompile(`\*(.+?)\*`)
	codeRe   = regexp.MustCompile("`(.+?)`")

	escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
)

// Render transforms raw note source into safe display markup. Pure
// function: same input, same output, no state.
//
// Escaping runs before any pattern substitution, so the output never
// contains structural HTML from the input regardless of content.
func Render(source string) string {
	lines := strings.Split(source, "\n")
	rendered := make([]string, len(lines))
	for i, line := range lines {
		rendered[i] = renderLine(line)
	}
	return strings.Join(rendered, "\n")
}

func renderLine(line string) string {
	escaped := escaper.Replace(line)

	// Most specific prefix first: "### " before "## " before "# ".
	switch {
	case strings.HasPrefix(escaped, "### "):
		return "<h3>" + strings.TrimPrefix(escaped, "### ") + "</h3>"
	case strings.HasPrefix(escaped, "## "):
		return "<h2>" + strings.TrimPrefix(escaped, "## ") + "</h2>"
	case strings.HasPrefix(escaped, "# "):
		return "<h1>" + strings.TrimPrefix(escaped, "# ") + "</h1>"
	}

	if strings.TrimSpace(escaped) == "" {
		return "<br>"
	}

	out := boldRe.ReplaceAllString(escaped, "<strong>$1</strong>")
	out = italicRe.ReplaceAllString(out, "<em>$1</em>")
	out = codeRe.ReplaceAllString(out, "<code>$1</code>")
	return "<p>" + out + "</p>"
}
