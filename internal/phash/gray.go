package phash

import (
	"image"

	"golang.org/x/image/draw"
)

// ITU-R BT.601 luminance weights. A single-channel source decodes with
// r == g == b, so the weighted sum passes its intensity through unchanged.
const (
	weightR = 0.299
	weightG = 0.587
	weightB = 0.114
)

// grayResample scales img to a size x size grid and reduces each pixel to a
// single luminance value. The same bilinear kernel is used for every image in
// a run so reference and candidate grids stay comparable.
func grayResample(img image.Image, size int) [][]float64 {
	scaled := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.BiLinear.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)

	grid := make([][]float64, size)
	for y := 0; y < size; y++ {
		grid[y] = make([]float64, size)
		for x := 0; x < size; x++ {
			c := scaled.RGBAAt(x, y)
			grid[y][x] = weightR*float64(c.R) + weightG*float64(c.G) + weightB*float64(c.B)
		}
	}
	return grid
}
