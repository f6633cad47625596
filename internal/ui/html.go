package ui

import (
	"fmt"
	"html"
	"strings"
)

// Escape ensures user content cannot break inline markup.
func Escape(s string) string {
	return html.EscapeString(s)
}

// EscapeAttr escapes a string for use in attribute values.
func EscapeAttr(s string) string {
	return html.EscapeString(s)
}

const brand = "HOMESTREAM"

func writeHead(b *strings.Builder, title string) {
	fmt.Fprintf(b, `<!DOCTYPE html><html><head><meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%s</title>
<link rel="stylesheet" href="/style.css">
</head><body>`, Escape(title))
}

func writeFoot(b *strings.Builder) {
	b.WriteString(`</body></html>`)
}
