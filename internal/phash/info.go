package phash

import (
	"image"
	"os"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
)

// ImageInfo holds the fingerprint and file metadata for a single image.
type ImageInfo struct {
	Path        string
	Fingerprint *Fingerprint
	Width       int
	Height      int
	Format      string
	FileSize    int64
	HasExif     bool
}

// Inspect decodes the image at path and returns its fingerprint together
// with dimensions, format and EXIF presence.
func (h *Hasher) Inspect(path string) (*ImageInfo, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	// Check for EXIF data before decoding, as Decode consumes the reader.
	hasExif := checkExif(path)

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	if err := validBounds(img); err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	fp := h.hash(img)

	bounds := img.Bounds()
	return &ImageInfo{
		Path:        path,
		Fingerprint: fp,
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		Format:      strings.ToLower(format),
		FileSize:    stat.Size(),
		HasExif:     hasExif,
	}, nil
}

// checkExif checks if an image file contains EXIF data.
func checkExif(path string) bool {
	file, err := os.Open(path)
	if err != nil {
		return false
	}
	defer file.Close()

	_, err = exif.Decode(file)
	return err == nil
}
