// Package seawater computes the stratification and geostrophic quantities of
// hydrographic sections: specific volume anomaly, geopotential anomaly,
// Brunt-Väisälä frequency and geostrophic velocity.
//
// Fields are gonum matrices with pressure levels down the rows and stations
// across the columns; see package profile for building and broadcasting them.
package seawater

import (
	"fmt"
	"log"

	"github.com/uservidya/seawater/earth"
	"github.com/uservidya/seawater/eos80"
	"github.com/uservidya/seawater/profile"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Svan specific volume anomaly [m³/kg], the specific volume of seawater less that of
// standard seawater (s=35, t=0°C) at the same pressure:
//
//	svan = 1/dens(s,t,p) - 1/dens(35,0,p)
//
// Salinity [PSS-78], temperature [°C ITS-90] and pressure [dbar] are broadcast to a common shape.
// The value is not scaled (literature often quotes 1e8·svan).
func Svan(s, t, p mat.Matrix) (*mat.Dense, error) {
	sv, err := profile.Map(func(v ...float64) float64 {
		return 1./eos80.Dens(v[0], v[1], v[2]) - 1./eos80.Dens(35., 0., v[2])
	}, s, t, p)
	if err != nil {
		return nil, fmt.Errorf("svan: %w", err)
	}
	return sv, nil
}

// Gpan geopotential anomaly [J/kg = m²/s²], svan integrated over pressure from the
// sea surface down to every level. The reference is the surface, not the deepest
// common level (cf. Pond & Pickard, 1986, p.76).
func Gpan(s, t, p mat.Matrix) (*mat.Dense, error) {
	b, err := profile.Broadcast(s, t, p)
	if err != nil {
		return nil, fmt.Errorf("gpan: %w", err)
	}
	pr := b[2]
	svn, err := Svan(b[0], b[1], pr)
	if err != nil {
		return nil, fmt.Errorf("gpan: %w", err)
	}

	nl, ns := svn.Dims()
	ga := mat.NewDense(nl, ns, nil)
	for j := 0; j < ns; j++ {
		ga.Set(0, j, svn.At(0, j)*pr.At(0, j)*db2Pascal) // surface to the first level
	}
	if nl > 1 {
		inc := profile.Mean(svn, profile.Levels)
		inc.MulElem(inc, profile.Diff(pr, profile.Levels))
		inc.Scale(db2Pascal, inc)
		for i := 1; i < nl; i++ {
			ga.SetRow(i, inc.RawRowView(i-1))
		}
	}
	return profile.CumSum(ga), nil
}

// Bfrq Brunt-Väisälä frequency squared N² [1/s²] and planetary potential vorticity
// q [1/(m·s)] between adjacent levels, along with the mid pressures [dbar] they apply to.
// All three are (levels-1) x stations.
//
// lat [°] holds one latitude per station (or a single one for all). With lat given,
// depth and gravity follow from pressure and latitude; without (nil), depth is taken
// as pressure, gravity is 9.8 m/s² and, the Coriolis parameter being unknown, q is NaN.
//
// Potential densities of both levels are referenced to their mid pressure, so a stable
// column gives N² > 0; N² < 0 flags static instability.
// ref: Gill, A.E., 1982. Atmosphere-Ocean Dynamics. p.54 eqn 3.7.15
// ref: Jackett, D.R. and T.J. McDougall, 1995. Minimal adjustment of hydrographic profiles to achieve static stability. J. Atmos. Oceanic Technol. 12: 381-389.
func Bfrq(s, t, p mat.Matrix, lat []float64) (n2, q, pave *mat.Dense, err error) {
	ms := []mat.Matrix{s, t, p}
	if len(lat) > 0 {
		ms = append(ms, profile.Row(lat...))
	}
	b, err := profile.Broadcast(ms...)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("bfrq: %w", err)
	}
	sa, te, pr := b[0], b[1], b[2]
	nl, ns := pr.Dims()
	if nl < 2 {
		return nil, nil, nil, fmt.Errorf("bfrq: %d level: %w", nl, ErrTooFewLevels)
	}

	var z, grav, cor *mat.Dense
	if len(lat) == 0 {
		z, grav, cor = pr, profile.Fill(nl, ns, gdef), profile.NaNs(nl, ns)
	} else {
		la := b[3]
		z = profile.Apply(func(v ...float64) float64 { return eos80.Dpth(v[0], v[1]) }, pr, la)
		grav = profile.Apply(func(v ...float64) float64 { return earth.Grav(v[0], -v[1]) }, la, z) // height is -depth
		cor = profile.Apply(func(v ...float64) float64 { return earth.Cor(v[0]) }, la)
	}

	pave = profile.Mean(pr, profile.Levels)
	pden := func(v ...float64) float64 { return eos80.Pden(v[0], v[1], v[2], v[3]) }
	up := profile.Apply(pden, profile.Upper(sa), profile.Upper(te), profile.Upper(pr), pave)
	lo := profile.Apply(pden, profile.Lower(sa), profile.Lower(te), profile.Lower(pr), pave)

	var midPden, difPden mat.Dense
	midPden.Add(up, lo)
	midPden.Scale(.5, &midPden)
	difPden.Sub(up, lo)

	midG := profile.Mean(grav, profile.Levels)
	difZ := profile.Diff(z, profile.Levels)

	// common factor: -Δρ/(Δz·ρ̄)
	var strat mat.Dense
	strat.MulElem(difZ, &midPden)
	strat.DivElem(&difPden, &strat)
	strat.Scale(-1., &strat)

	n2, q = mat.NewDense(nl-1, ns, nil), mat.NewDense(nl-1, ns, nil)
	n2.MulElem(midG, &strat)
	q.MulElem(profile.Upper(cor), &strat)
	return n2, q, pave, nil
}

// Gvel geostrophic velocity [m/s] relative to the sea surface between every pair of
// adjacent stations, given the geopotential anomaly ga (levels x stations, see Gpan)
// and station positions [°]. The result is levels x (stations-1).
//
// Coincident stations are not guarded against: their velocities are ±Inf or NaN.
func Gvel(ga mat.Matrix, lat, lon []float64) (*mat.Dense, error) {
	km, _, err := earth.Dist(lat, lon)
	if err != nil {
		return nil, fmt.Errorf("gvel: %w", err)
	}
	return Gvel2(ga, floats.ScaleTo(km, km2m, km), lat)
}

// Gvel2 is Gvel with station separations distm [m] given directly,
// len(distm) = stations-1.
func Gvel2(ga mat.Matrix, distm, lat []float64) (*mat.Dense, error) {
	nl, ns := ga.Dims()
	if ns < 2 {
		return nil, fmt.Errorf("gvel: %d station: %w", ns, ErrTooFewStations)
	}
	if len(lat) != ns || len(distm) != ns-1 {
		return nil, fmt.Errorf("gvel: %d stations, %d latitudes, %d separations: %w", ns, len(lat), len(distm), profile.ErrShape)
	}

	vel := profile.Diff(ga, profile.Stations)
	for j := 0; j < ns-1; j++ {
		lf := earth.Cor((lat[j]+lat[j+1])/2.) * distm[j]
		if lf == 0. {
			log.Printf(" gvel warning: stations %d and %d give a zero f·dx (dx = %.3f m)", j, j+1, distm[j])
		}
		for i := 0; i < nl; i++ {
			vel.Set(i, j, -vel.At(i, j)/lf)
		}
	}
	return vel, nil
}
