// Package match classifies fingerprint pairs as duplicates under a strict
// Hamming-distance threshold.
package match

import (
	"assetdedup/internal/phash"
)

// DefaultThreshold is the Hamming distance below which two fingerprints are
// considered the same visual content.
const DefaultThreshold = 5

// Matcher compares candidate fingerprints against a reference.
type Matcher struct {
	threshold int
}

// NewMatcher creates a new Matcher. A negative threshold falls back to the
// default.
func NewMatcher(threshold int) *Matcher {
	if threshold < 0 {
		threshold = DefaultThreshold
	}
	return &Matcher{threshold: threshold}
}

// Threshold returns the current threshold.
func (m *Matcher) Threshold() int {
	return m.threshold
}

// IsDuplicate reports whether candidate is a duplicate of reference, along
// with their Hamming distance. The rule is strict: a distance exactly equal
// to the threshold is not a match. Fingerprints of different bit lengths fail
// with phash.ErrLengthMismatch.
func (m *Matcher) IsDuplicate(reference, candidate *phash.Fingerprint) (int, bool, error) {
	dist, err := reference.Distance(candidate)
	if err != nil {
		return 0, false, err
	}
	return dist, dist < m.threshold, nil
}
