// Package profile holds hydrographic fields as gonum matrices: rows are pressure
// levels (shallow to deep), columns are stations.
package profile

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrShape is returned when fields cannot be broadcast to a common shape
var ErrShape = errors.New("incompatible shapes")

// Scalar returns a 1x1 field
func Scalar(v float64) *mat.Dense {
	return mat.NewDense(1, 1, []float64{v})
}

// Column returns a single-station profile, one row per pressure level
func Column(v ...float64) *mat.Dense {
	return mat.NewDense(len(v), 1, append([]float64(nil), v...))
}

// Row returns one value per station (latitude, longitude, ..)
func Row(v ...float64) *mat.Dense {
	return mat.NewDense(1, len(v), append([]float64(nil), v...))
}

// Grid builds a levels x stations field from nested rows. Rows must be of equal length.
func Grid(rows [][]float64) *mat.Dense {
	nr, nc := len(rows), 0
	if nr > 0 {
		nc = len(rows[0])
	}
	d := make([]float64, 0, nr*nc)
	for i, r := range rows {
		if len(r) != nc {
			panic(fmt.Sprintf("profile.Grid: row %d has %d values, expecting %d", i, len(r), nc))
		}
		d = append(d, r...)
	}
	return mat.NewDense(nr, nc, d)
}

// Fill returns an r x c field set to v
func Fill(r, c int, v float64) *mat.Dense {
	d := make([]float64, r*c)
	for i := range d {
		d[i] = v
	}
	return mat.NewDense(r, c, d)
}

// NaNs returns an r x c field of undefined values
func NaNs(r, c int) *mat.Dense {
	return Fill(r, c, math.NaN())
}

// Flatten returns the field values in row-major order
func Flatten(m mat.Matrix) []float64 {
	r, c := m.Dims()
	a := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			a = append(a, m.At(i, j))
		}
	}
	return a
}
