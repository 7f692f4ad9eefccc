// Package render implements the invoice document renderers (PDF and CSV).
// Renderers are pure functions of the invoice document: the same input
// always yields the same bytes.
package render

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Sanitize decomposes text (NFKD) and drops combining marks, so "Račun"
// becomes "Racun". Control characters other than newline and tab are
// removed.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, out)
}

// latin1 narrows sanitized text to what the PDF core fonts can draw.
// Runes outside Latin-1 become '?', except the euro sign which the
// cp1252 encoding carries.
func latin1(s string) string {
	return strings.Map(func(r rune) rune {
		if r <= 0xFF || r == '€' {
			return r
		}
		return '?'
	}, Sanitize(s))
}
