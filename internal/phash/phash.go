// Package phash computes DCT-based perceptual fingerprints for raster images.
//
// An image is reduced to a single-channel luminance grid, resampled to a
// fixed square size, transformed with a 2D Type-II DCT, and the top-left
// low-frequency block (minus the DC term) is quantized against its median
// into a fixed-length bit string. Visually similar images produce
// fingerprints with a low Hamming distance.
package phash

// Config holds the fingerprint parameters. Fingerprints are only comparable
// when they were built with identical parameters.
type Config struct {
	// GridSize is the side length of the resampled luminance grid.
	GridSize int
	// BlockSize is the side length of the low-frequency coefficient block.
	BlockSize int
}

// DefaultConfig returns the standard parameters: a 32x32 grid with an 8x8
// low-frequency block, yielding 63-bit fingerprints.
func DefaultConfig() Config {
	return Config{GridSize: 32, BlockSize: 8}
}

// BitLength returns the fingerprint length produced under this configuration.
// The DC coefficient is never part of the fingerprint.
func (c Config) BitLength() int {
	return c.BlockSize*c.BlockSize - 1
}
