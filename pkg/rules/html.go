package rules

import (
	"io"
	"strings"
)

var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// HTML escapes & < > " and ' so value can be embedded in markup, both in text
// nodes and in quoted attribute values.
func HTML(value string) string {
	return htmlReplacer.Replace(value)
}

// WriteHTML writes the escaped form of value to w.
func WriteHTML(w io.Writer, value string) (int, error) {
	return htmlReplacer.WriteString(w, value)
}
