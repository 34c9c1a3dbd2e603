// Package fuzzy picks the closest candidate string for a free-text query
// using Ratcliff/Obershelp sequence similarity.
package fuzzy

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// ProductCutoff is the similarity needed to bind a product label to a
// standards sheet. Labels vary widely in formatting, so it is lenient.
const ProductCutoff = 0.4

// ParameterCutoff is the similarity needed to bind a test description to a
// specification parameter. A loose match would compare a measurement against
// the wrong row, so it is strict.
const ParameterCutoff = 0.6

// Ratio returns the similarity of a and b in [0, 1], computed over code points.
func Ratio(a, b string) float64 {
	return difflib.NewMatcher(chars(a), chars(b)).Ratio()
}

// BestMatch returns the candidate most similar to query with a ratio of at
// least cutoff. Equal scores keep the earlier candidate. ok is false when no
// candidate reaches the cutoff.
func BestMatch(query string, candidates []string, cutoff float64) (match string, ok bool) {
	q := chars(query)
	best := -1.0
	for _, c := range candidates {
		m := difflib.NewMatcher(chars(c), q)
		if m.RealQuickRatio() < cutoff || m.QuickRatio() < cutoff {
			continue
		}
		r := m.Ratio()
		if r >= cutoff && r > best {
			best, match, ok = r, c, true
		}
	}
	return match, ok
}

func chars(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "")
}
