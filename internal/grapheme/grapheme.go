package grapheme

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// ControlPlaceholder is drawn in place of control clusters such as tabs and
// newlines. It occupies one cell, the width ClusterWidth gives a control.
const ControlPlaceholder = "?"

// Printable replaces every control cluster in text with ControlPlaceholder so
// the result renders on a single terminal line.
func Printable(text string) string {
	if strings.IndexFunc(text, unicode.IsControl) < 0 {
		return text
	}
	var sb strings.Builder
	for _, c := range Split(text) {
		if strings.IndexFunc(c, unicode.IsControl) >= 0 {
			sb.WriteString(ControlPlaceholder)
			continue
		}
		sb.WriteString(c)
	}
	return sb.String()
}

// ClusterWidth returns the terminal cell width of one grapheme cluster.
// Tabs and other control clusters occupy one cell.
func ClusterWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		return 1
	}
	if w > 2 {
		return 2
	}
	return w
}

// Width returns the terminal cell width of text.
func Width(text string) int {
	w := 0
	for _, c := range Split(text) {
		w += ClusterWidth(c)
	}
	return w
}

// Truncate returns the longest grapheme-safe prefix of text that fits in
// width cells, and that prefix's width.
func Truncate(text string, width int) (string, int) {
	if width <= 0 || text == "" {
		return "", 0
	}
	var sb strings.Builder
	used := 0
	for _, c := range Split(text) {
		cw := ClusterWidth(c)
		if used+cw > width {
			break
		}
		sb.WriteString(c)
		used += cw
	}
	return sb.String(), used
}
