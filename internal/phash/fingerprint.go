package phash

import (
	"errors"
	"fmt"
	"math/bits"
	"sort"
	"strings"
)

// ErrLengthMismatch is returned when two fingerprints of different bit lengths
// are compared. It indicates a configuration inconsistency, not bad input.
var ErrLengthMismatch = errors.New("fingerprint lengths do not match")

// Fingerprint is a fixed-length bit string derived from an image's
// low-frequency content. It is immutable once computed.
type Fingerprint struct {
	words []uint64
	nbits int
}

// NewFingerprint builds a fingerprint from raw bit words. Bit i lives at
// words[i/64] bit (i%64). The words are copied.
func NewFingerprint(words []uint64, nbits int) *Fingerprint {
	w := make([]uint64, (nbits+63)/64)
	copy(w, words)
	return &Fingerprint{words: w, nbits: nbits}
}

// BitLength returns the number of bits in the fingerprint.
func (f *Fingerprint) BitLength() int {
	return f.nbits
}

// Bit returns bit i of the fingerprint.
func (f *Fingerprint) Bit(i int) bool {
	return f.words[i/64]&(1<<uint(i%64)) != 0
}

// Distance returns the Hamming distance to other. Comparing fingerprints of
// different bit lengths fails with ErrLengthMismatch.
func (f *Fingerprint) Distance(other *Fingerprint) (int, error) {
	if f.nbits != other.nbits {
		return 0, fmt.Errorf("%w: %d vs %d bits", ErrLengthMismatch, f.nbits, other.nbits)
	}
	dist := 0
	for i := range f.words {
		dist += bits.OnesCount64(f.words[i] ^ other.words[i])
	}
	return dist, nil
}

// String returns the fingerprint as hex words, low word first.
func (f *Fingerprint) String() string {
	var b strings.Builder
	for _, w := range f.words {
		fmt.Fprintf(&b, "%016x", w)
	}
	return b.String()
}

// quantize builds a fingerprint from the top-left block x block coefficients.
// The DC term at (0,0) is excluded from both the median and the bit string.
// Bits follow row-major raster order over the block; a coefficient exactly
// equal to the median quantizes to 0, so an all-equal block yields an
// all-zero fingerprint.
func quantize(coeffs [][]float64, block int) *Fingerprint {
	vals := make([]float64, 0, block*block-1)
	for y := 0; y < block; y++ {
		for x := 0; x < block; x++ {
			if y == 0 && x == 0 {
				continue
			}
			vals = append(vals, coeffs[y][x])
		}
	}

	med := median(vals)
	f := &Fingerprint{
		words: make([]uint64, (len(vals)+63)/64),
		nbits: len(vals),
	}
	for i, v := range vals {
		if v > med {
			f.words[i/64] |= 1 << uint(i%64)
		}
	}
	return f
}

// median returns the middle value of vals, or the mean of the two middle
// values for even-length input.
func median(vals []float64) float64 {
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
