package phash

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// DecodeError reports an image that could not be opened or decoded.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("decode image: %v", e.Err)
	}
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Hasher computes perceptual fingerprints for images. All fingerprints
// produced by one Hasher share the same parameters and are comparable.
type Hasher struct {
	cfg Config
}

// NewHasher creates a new Hasher. Non-positive parameters fall back to the
// defaults; the block never exceeds the grid.
func NewHasher(cfg Config) *Hasher {
	if cfg.GridSize <= 0 || cfg.BlockSize <= 0 {
		cfg = DefaultConfig()
	}
	if cfg.BlockSize > cfg.GridSize {
		cfg.BlockSize = cfg.GridSize
	}
	return &Hasher{cfg: cfg}
}

// Config returns the hasher's parameters.
func (h *Hasher) Config() Config { return h.cfg }

// HashFile opens, decodes and fingerprints the image at path. Any failure is
// reported as a *DecodeError carrying the path.
func (h *Hasher) HashFile(path string) (*Fingerprint, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	if err := validBounds(img); err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return h.hash(img), nil
}

// HashImage fingerprints an already decoded image. The image is never
// mutated. A zero-dimension image fails with a *DecodeError.
func (h *Hasher) HashImage(img image.Image) (*Fingerprint, error) {
	if err := validBounds(img); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return h.hash(img), nil
}

func (h *Hasher) hash(img image.Image) *Fingerprint {
	grid := grayResample(img, h.cfg.GridSize)
	return quantize(forward2D(grid), h.cfg.BlockSize)
}

func validBounds(img image.Image) error {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return fmt.Errorf("image has zero dimensions: %dx%d", b.Dx(), b.Dy())
	}
	return nil
}
