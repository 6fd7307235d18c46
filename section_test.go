package seawater

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uservidya/seawater/profile"
)

func TestSection(t *testing.T) {
	lat, lon := []float64{30, 32, 35}, []float64{-30, -30, -30}
	x, err := NewSection(unescoS, profile.Scalar(15), unescoP, lat, lon)
	require.NoError(t, err)

	nl, ns := x.Dims()
	assert.Equal(t, 4, nl)
	assert.Equal(t, 3, ns)

	// the section keeps its own copy of the positions
	lat[0] = 0
	la, lo := x.Position(0)
	assert.Equal(t, 30., la)
	assert.Equal(t, -30., lo)
	assert.Panics(t, func() { x.Position(3) })
	assert.Panics(t, func() { x.Position(-1) })

	vel, err := x.Velocity()
	require.NoError(t, err)
	ga, err := Gpan(unescoS, profile.Scalar(15), unescoP)
	require.NoError(t, err)
	want, err := Gvel(ga, []float64{30, 32, 35}, lon)
	require.NoError(t, err)
	assert.Equal(t, profile.Flatten(want), profile.Flatten(vel))

	n2, q, pave, err := x.Stability()
	require.NoError(t, err)
	wn2, wq, wpave, err := Bfrq(unescoS, profile.Scalar(15), unescoP, []float64{30, 32, 35})
	require.NoError(t, err)
	assert.Equal(t, profile.Flatten(wn2), profile.Flatten(n2))
	assert.Equal(t, profile.Flatten(wq), profile.Flatten(q))
	assert.Equal(t, profile.Flatten(wpave), profile.Flatten(pave))

	sv, err := x.SpecificVolumeAnomaly()
	require.NoError(t, err)
	r, c := sv.Dims()
	assert.Equal(t, 4, r)
	assert.Equal(t, 3, c)
}

func TestNewSectionShapes(t *testing.T) {
	_, err := NewSection(unescoS, profile.Scalar(15), unescoP, []float64{30, 32}, []float64{-30, -30})
	assert.ErrorIs(t, err, profile.ErrShape)

	_, err = NewSection(unescoS, profile.Column(15, 15), unescoP, []float64{30, 32, 35}, []float64{-30, -30, -30})
	assert.ErrorIs(t, err, profile.ErrShape)
}

func TestNewSectionUTM(t *testing.T) {
	x, err := NewSectionUTM(unescoS, profile.Scalar(15), unescoP,
		[]float64{500000, 500000, 500000}, []float64{3320000, 3540000, 3875000}, 17, true)
	require.NoError(t, err)

	la, lo := x.Position(1)
	assert.InDelta(t, 32., la, .05)
	assert.InDelta(t, -81., lo, 1e-9)

	vel, err := x.Velocity()
	require.NoError(t, err)
	r, c := vel.Dims()
	assert.Equal(t, 4, r)
	assert.Equal(t, 2, c)

	_, err = NewSectionUTM(unescoS, profile.Scalar(15), unescoP, []float64{10, 20, 30}, []float64{0, 0, 0}, 17, true)
	assert.Error(t, err)
}
