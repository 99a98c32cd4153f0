package phash

import "math"

// forward1D applies the 1D Type-II DCT (orthonormal convention) to x:
//
//	X[k] = scale(k) * sum_{n=0}^{N-1} x[n] * cos(pi * k * (2n+1) / (2N))
//	scale(0) = sqrt(1/N), scale(k>0) = sqrt(2/N)
func forward1D(x []float64) []float64 {
	n := len(x)
	out := make([]float64, n)
	scale0 := math.Sqrt(1.0 / float64(n))
	scaleK := math.Sqrt(2.0 / float64(n))
	for k := 0; k < n; k++ {
		scale := scaleK
		if k == 0 {
			scale = scale0
		}
		sum := 0.0
		for i := 0; i < n; i++ {
			sum += x[i] * math.Cos(math.Pi*float64(k)*float64(2*i+1)/(2.0*float64(n)))
		}
		out[k] = scale * sum
	}
	return out
}

// forward2D applies the separable 2D DCT-II to a square grid: each row is
// transformed, then each column of the row-transformed result. The coefficient
// at (0,0) is the DC term.
func forward2D(grid [][]float64) [][]float64 {
	n := len(grid)

	rowOut := make([][]float64, n)
	for y := 0; y < n; y++ {
		rowOut[y] = forward1D(grid[y])
	}

	out := make([][]float64, n)
	for y := 0; y < n; y++ {
		out[y] = make([]float64, n)
	}
	col := make([]float64, n)
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			col[y] = rowOut[y][x]
		}
		transCol := forward1D(col)
		for y := 0; y < n; y++ {
			out[y][x] = transCol[y]
		}
	}
	return out
}
