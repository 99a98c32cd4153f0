package phash

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// blockImage builds a size x size image of 4x4 brightness blocks. The block
// pattern is fixed, so the same visual content can be rendered at any size.
func blockImage(size int) *image.RGBA {
	levels := [16]uint8{
		12, 200, 90, 250,
		170, 40, 220, 110,
		60, 240, 20, 150,
		190, 80, 130, 30,
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	cell := size / 4
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			v := levels[(y/cell)*4+(x/cell)]
			img.Set(x, y, color.RGBA{v, v, v, 255})
		}
	}
	return img
}

// gradientImage builds a horizontal luminance ramp.
func gradientImage(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			v := uint8(x * 255 / (size - 1))
			img.Set(x, y, color.RGBA{v, v, v, 255})
		}
	}
	return img
}

func TestHashImageDeterminism(t *testing.T) {
	h := NewHasher(DefaultConfig())
	img := blockImage(64)

	a, err := h.HashImage(img)
	if err != nil {
		t.Fatalf("first HashImage failed: %v", err)
	}
	b, err := h.HashImage(img)
	if err != nil {
		t.Fatalf("second HashImage failed: %v", err)
	}

	if a.String() != b.String() {
		t.Errorf("same image should produce identical fingerprints: %s != %s", a, b)
	}
}

func TestHashImageBitLength(t *testing.T) {
	h := NewHasher(DefaultConfig())
	fp, err := h.HashImage(blockImage(64))
	if err != nil {
		t.Fatalf("HashImage failed: %v", err)
	}
	if fp.BitLength() != 63 {
		t.Errorf("BitLength = %d, want 63", fp.BitLength())
	}
}

func TestHashImageResizedContentMatches(t *testing.T) {
	h := NewHasher(DefaultConfig())

	small, err := h.HashImage(blockImage(64))
	if err != nil {
		t.Fatalf("HashImage failed: %v", err)
	}
	large, err := h.HashImage(blockImage(128))
	if err != nil {
		t.Fatalf("HashImage failed: %v", err)
	}

	dist, err := small.Distance(large)
	if err != nil {
		t.Fatalf("Distance failed: %v", err)
	}
	if dist >= 5 {
		t.Errorf("same content at different sizes: distance %d, want < 5", dist)
	}
}

func TestHashImageRecompressedContentMatches(t *testing.T) {
	h := NewHasher(DefaultConfig())
	img := blockImage(128)

	original, err := h.HashImage(img)
	if err != nil {
		t.Fatalf("HashImage failed: %v", err)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 60}); err != nil {
		t.Fatalf("jpeg encode failed: %v", err)
	}
	decoded, err := jpeg.Decode(&buf)
	if err != nil {
		t.Fatalf("jpeg decode failed: %v", err)
	}
	recompressed, err := h.HashImage(decoded)
	if err != nil {
		t.Fatalf("HashImage failed: %v", err)
	}

	dist, err := original.Distance(recompressed)
	if err != nil {
		t.Fatalf("Distance failed: %v", err)
	}
	if dist >= 5 {
		t.Errorf("recompressed copy: distance %d, want < 5", dist)
	}
}

func TestHashImageUnrelatedContentDiffers(t *testing.T) {
	h := NewHasher(DefaultConfig())

	blocks, err := h.HashImage(blockImage(64))
	if err != nil {
		t.Fatalf("HashImage failed: %v", err)
	}
	gradient, err := h.HashImage(gradientImage(64))
	if err != nil {
		t.Fatalf("HashImage failed: %v", err)
	}

	dist, err := blocks.Distance(gradient)
	if err != nil {
		t.Fatalf("Distance failed: %v", err)
	}
	if dist <= 5 {
		t.Errorf("unrelated images: distance %d, want well above 5", dist)
	}
}

func TestHashImageZeroDimensions(t *testing.T) {
	h := NewHasher(DefaultConfig())

	_, err := h.HashImage(image.NewRGBA(image.Rect(0, 0, 0, 0)))
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Errorf("expected *DecodeError for zero-dimension image, got %v", err)
	}
}

func TestHashFileMatchesHashImage(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "blocks.png")

	img := blockImage(64)
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test image: %v", err)
	}
	if err := png.Encode(file, img); err != nil {
		t.Fatalf("png encode failed: %v", err)
	}
	file.Close()

	h := NewHasher(DefaultConfig())
	fromFile, err := h.HashFile(path)
	if err != nil {
		t.Fatalf("HashFile failed: %v", err)
	}
	fromImage, err := h.HashImage(img)
	if err != nil {
		t.Fatalf("HashImage failed: %v", err)
	}

	dist, err := fromFile.Distance(fromImage)
	if err != nil {
		t.Fatalf("Distance failed: %v", err)
	}
	if dist != 0 {
		t.Errorf("PNG round trip changed the fingerprint by %d bits", dist)
	}
}

func TestHashFileDecodeFailure(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "corrupt.jpg")
	if err := os.WriteFile(path, []byte("not an image"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	h := NewHasher(DefaultConfig())
	_, err := h.HashFile(path)

	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected *DecodeError, got %v", err)
	}
	if de.Path != path {
		t.Errorf("DecodeError.Path = %q, want %q", de.Path, path)
	}
}

func TestHashFileMissing(t *testing.T) {
	h := NewHasher(DefaultConfig())
	_, err := h.HashFile("/nonexistent/image.png")

	var de *DecodeError
	if !errors.As(err, &de) {
		t.Errorf("expected *DecodeError for missing file, got %v", err)
	}
}

func TestDifferentBlockSizesAreNotComparable(t *testing.T) {
	img := blockImage(64)

	a, err := NewHasher(Config{GridSize: 32, BlockSize: 8}).HashImage(img)
	if err != nil {
		t.Fatalf("HashImage failed: %v", err)
	}
	b, err := NewHasher(Config{GridSize: 32, BlockSize: 4}).HashImage(img)
	if err != nil {
		t.Fatalf("HashImage failed: %v", err)
	}

	if _, err := a.Distance(b); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestInspect(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "asset.png")

	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test image: %v", err)
	}
	if err := png.Encode(file, blockImage(48)); err != nil {
		t.Fatalf("png encode failed: %v", err)
	}
	file.Close()

	info, err := NewHasher(DefaultConfig()).Inspect(path)
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}

	if info.Width != 48 || info.Height != 48 {
		t.Errorf("dimensions = %dx%d, want 48x48", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("format = %q, want png", info.Format)
	}
	if info.FileSize <= 0 {
		t.Errorf("file size = %d, want > 0", info.FileSize)
	}
	if info.HasExif {
		t.Error("plain PNG should not report EXIF data")
	}
	if info.Fingerprint == nil || info.Fingerprint.BitLength() != 63 {
		t.Errorf("unexpected fingerprint: %v", info.Fingerprint)
	}
}
