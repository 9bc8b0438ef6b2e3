// Package testutil provides small deterministic fixtures shared by test
// packages.
package testutil

import (
	"github.com/quarrydata/slate/internal/frame"
)

// Ints wraps integers as labels.
func Ints(vs ...int64) []frame.Label {
	labels := make([]frame.Label, len(vs))
	for i, v := range vs {
		labels[i] = frame.Int(v)
	}
	return labels
}

// Texts wraps strings as labels.
func Texts(vs ...string) []frame.Label {
	labels := make([]frame.Label, len(vs))
	for i, v := range vs {
		labels[i] = frame.Text(v)
	}
	return labels
}

// TextIndex builds an unnamed explicit index of text labels.
func TextIndex(vs ...string) *frame.Index {
	return frame.NewIndex("", Texts(vs...))
}

// IntIndex builds an unnamed explicit index of integer labels.
func IntIndex(vs ...int64) *frame.Index {
	return frame.NewIndex("", Ints(vs...))
}
