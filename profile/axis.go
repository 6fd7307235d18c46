package profile

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	Levels   = 0 // axis down the profile
	Stations = 1 // axis across the section
)

// Upper returns levels [0, n-1), the top of every adjacent level pair
func Upper(m mat.Matrix) *mat.Dense {
	r, c := m.Dims()
	return slice(dense(m), 0, r-1, 0, c)
}

// Lower returns levels [1, n), the bottom of every adjacent level pair
func Lower(m mat.Matrix) *mat.Dense {
	r, c := m.Dims()
	return slice(dense(m), 1, r, 0, c)
}

// dense views m as a *mat.Dense, copying only when it is some other matrix type
func dense(m mat.Matrix) *mat.Dense {
	if d, ok := m.(*mat.Dense); ok {
		return d
	}
	return mat.DenseCopyOf(m)
}

// slice copies out the block [i0:i1, j0:j1]; the result never shares storage with d
func slice(d *mat.Dense, i0, i1, j0, j1 int) *mat.Dense {
	if i1 <= i0 || j1 <= j0 {
		panic(fmt.Errorf("profile: empty slice [%d:%d, %d:%d]: %w", i0, i1, j0, j1, ErrShape))
	}
	return mat.DenseCopyOf(d.Slice(i0, i1, j0, j1))
}

// Diff returns the first difference, a[k+1]-a[k], along axis. The axis must hold at
// least two values.
func Diff(m mat.Matrix, axis int) *mat.Dense {
	a, b := pairs(m, axis)
	a.Sub(b, a)
	return a
}

// Mean returns the average of adjacent values along axis
func Mean(m mat.Matrix, axis int) *mat.Dense {
	a, b := pairs(m, axis)
	a.Add(a, b)
	a.Scale(.5, a)
	return a
}

func pairs(m mat.Matrix, axis int) (*mat.Dense, *mat.Dense) {
	r, c := m.Dims()
	d := dense(m)
	switch axis {
	case Levels:
		return slice(d, 0, r-1, 0, c), slice(d, 1, r, 0, c)
	case Stations:
		return slice(d, 0, r, 0, c-1), slice(d, 0, r, 1, c)
	}
	panic(fmt.Sprintf("profile: unknown axis %d", axis))
}

// CumSum accumulates every station profile from the top level down
func CumSum(m mat.Matrix) *mat.Dense {
	r, c := m.Dims()
	out := mat.NewDense(r, c, nil)
	col, sum := make([]float64, r), make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, m)
		floats.CumSum(sum, col)
		out.SetCol(j, sum)
	}
	return out
}
