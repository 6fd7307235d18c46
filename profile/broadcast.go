package profile

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Shape returns the common shape of a set of fields. Along each axis sizes must
// either agree or be 1, a size of 1 being repeated to fit.
func Shape(ms ...mat.Matrix) (r, c int, err error) {
	r, c = 1, 1
	for k, m := range ms {
		mr, mc := m.Dims()
		nr, okr := stretch(r, mr)
		nc, okc := stretch(c, mc)
		if !okr || !okc {
			return 0, 0, fmt.Errorf("field %d (%dx%d) against (%dx%d): %w", k, mr, mc, r, c, ErrShape)
		}
		r, c = nr, nc
	}
	return r, c, nil
}

func stretch(n, m int) (int, bool) {
	switch {
	case n == m, m == 1:
		return n, true
	case n == 1:
		return m, true
	}
	return 0, false
}

// Broadcast expands every field to the common shape. Outputs are new matrices;
// inputs are left untouched.
func Broadcast(ms ...mat.Matrix) ([]*mat.Dense, error) {
	r, c, err := Shape(ms...)
	if err != nil {
		return nil, err
	}
	out := make([]*mat.Dense, len(ms))
	for k, m := range ms {
		out[k] = expand(m, r, c)
	}
	return out, nil
}

func expand(m mat.Matrix, r, c int) *mat.Dense {
	mr, mc := m.Dims()
	d := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			d.Set(i, j, m.At(i%mr, j%mc))
		}
	}
	return d
}

// Map broadcasts the fields and evaluates fn element-wise, passing one value per field
// in the order given.
func Map(fn func(v ...float64) float64, ms ...mat.Matrix) (*mat.Dense, error) {
	b, err := Broadcast(ms...)
	if err != nil {
		return nil, err
	}
	return Apply(fn, b...), nil
}

// Apply evaluates fn element-wise over fields that already share a shape.
// It panics with ErrShape otherwise.
func Apply(fn func(v ...float64) float64, ms ...*mat.Dense) *mat.Dense {
	r, c := ms[0].Dims()
	for _, m := range ms[1:] {
		if mr, mc := m.Dims(); mr != r || mc != c {
			panic(fmt.Errorf("profile.Apply: (%dx%d) against (%dx%d): %w", mr, mc, r, c, ErrShape))
		}
	}
	out := mat.NewDense(r, c, nil)
	v := make([]float64, len(ms))
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			for k, m := range ms {
				v[k] = m.At(i, j)
			}
			out.Set(i, j, fn(v...))
		}
	}
	return out
}
