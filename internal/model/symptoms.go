package model

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeLabel applies NFKC normalization and trims whitespace.
func NormalizeLabel(s string) string {
	return strings.TrimSpace(norm.NFKC.String(s))
}

// NormalizeLabels normalizes every label and drops empty ones.
func NormalizeLabels(labels []string) []string {
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if l = NormalizeLabel(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

// Union returns the labels of a followed by those of b not already present,
// preserving first-seen order.
func Union(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, s := range list {
			if seen[s] {
				continue
			}
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// Contains reports whether list holds s exactly.
func Contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
