package match

import (
	"errors"
	"testing"

	"assetdedup/internal/phash"
)

// fpWithBits builds a 63-bit fingerprint with the first n bits set.
func fpWithBits(n int) *phash.Fingerprint {
	var word uint64
	for i := 0; i < n; i++ {
		word |= 1 << uint(i)
	}
	return phash.NewFingerprint([]uint64{word}, 63)
}

func TestIsDuplicateThresholdStrictness(t *testing.T) {
	reference := fpWithBits(0)

	tests := []struct {
		name      string
		threshold int
		distance  int
		wantDup   bool
	}{
		{"identical", 5, 0, true},
		{"just below threshold", 5, 4, true},
		{"exactly at threshold", 5, 5, false},
		{"above threshold", 5, 6, false},
		{"zero threshold rejects identical", 0, 0, false},
		{"custom threshold below", 10, 9, true},
		{"custom threshold at", 10, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMatcher(tt.threshold)
			dist, dup, err := m.IsDuplicate(reference, fpWithBits(tt.distance))
			if err != nil {
				t.Fatalf("IsDuplicate failed: %v", err)
			}
			if dist != tt.distance {
				t.Errorf("distance = %d, want %d", dist, tt.distance)
			}
			if dup != tt.wantDup {
				t.Errorf("duplicate = %v, want %v", dup, tt.wantDup)
			}
		})
	}
}

func TestNewMatcherNegativeThreshold(t *testing.T) {
	if got := NewMatcher(-1).Threshold(); got != DefaultThreshold {
		t.Errorf("Threshold = %d, want default %d", got, DefaultThreshold)
	}
}

func TestIsDuplicateLengthMismatch(t *testing.T) {
	a := phash.NewFingerprint([]uint64{0}, 63)
	b := phash.NewFingerprint([]uint64{0}, 15)

	_, _, err := NewMatcher(5).IsDuplicate(a, b)
	if !errors.Is(err, phash.ErrLengthMismatch) {
		t.Errorf("expected phash.ErrLengthMismatch, got %v", err)
	}
}
