// Package grapheme wraps rivo/uniseg with the small set of grapheme-cluster
// operations the rewriter needs. Cursor positions that respect cluster
// boundaries never split a user-perceived character.
package grapheme

import "github.com/rivo/uniseg"

// First returns the first grapheme cluster of text and its byte length.
// Returns "" and 0 for empty text.
func First(text string) (string, int) {
	if text == "" {
		return "", 0
	}
	g := uniseg.NewGraphemes(text)
	if !g.Next() {
		return "", 0
	}
	cluster := g.Str()
	return cluster, len(cluster)
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

// Split returns the grapheme clusters of text in order.
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
