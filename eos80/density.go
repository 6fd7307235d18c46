// Package eos80 is the UNESCO 1983 (EOS-80) equation of state for seawater.
// Temperatures are on the ITS-90 scale; the polynomials themselves are fitted to IPTS-68
// and the conversion is made internally.
// ref: Fofonoff, P. and R.C. Millard Jr, 1983. Algorithms for computation of fundamental properties of seawater. UNESCO Tech. Pap. in Mar. Sci. No. 44.
// ref: Millero, F.J., C.T. Chen, A. Bradshaw and K. Schleicher, 1980. A new high pressure equation of state for seawater. Deep-Sea Research 27A: 255-264.
package eos80

import "math"

// Smow density of Standard Mean Ocean Water (pure water) [kg/m³] at temperature t [°C]
func Smow(t float64) float64 {
	const (
		a0 = 999.842594
		a1 = 6.793952e-2
		a2 = -9.095290e-3
		a3 = 1.001685e-4
		a4 = -1.120083e-6
		a5 = 6.536332e-9
	)
	t68 := T68conv(t)
	return a0 + (a1+(a2+(a3+(a4+a5*t68)*t68)*t68)*t68)*t68
}

// Dens0 density of seawater at atmospheric pressure [kg/m³]
func Dens0(s, t float64) float64 {
	const (
		b0 = 8.24493e-1
		b1 = -4.0899e-3
		b2 = 7.6438e-5
		b3 = -8.2467e-7
		b4 = 5.3875e-9

		c0 = -5.72466e-3
		c1 = 1.0227e-4
		c2 = -1.6546e-6

		d0 = 4.8314e-4
	)
	t68 := T68conv(t)
	return Smow(t) + (b0+(b1+(b2+(b3+b4*t68)*t68)*t68)*t68)*s + (c0+(c1+c2*t68)*t68)*s*math.Sqrt(s) + d0*s*s
}

// Seck secant bulk modulus K of seawater [bar], pressure p given in dbar
func Seck(s, t, p float64) float64 {
	p *= db2bar
	t68 := T68conv(t)

	// pure water terms
	const (
		h0 = 3.239908
		h1 = 1.43713e-3
		h2 = 1.16092e-4
		h3 = -5.77905e-7

		k0 = 8.50935e-5
		k1 = -6.12293e-6
		k2 = 5.2787e-8

		e0 = 19652.21
		e1 = 148.4206
		e2 = -2.327105
		e3 = 1.360477e-2
		e4 = -5.155288e-5
	)
	aw := h0 + (h1+(h2+h3*t68)*t68)*t68
	bw := k0 + (k1+k2*t68)*t68
	kw := e0 + (e1+(e2+(e3+e4*t68)*t68)*t68)*t68

	// seawater terms
	const (
		j0 = 1.91075e-4

		i0 = 2.2838e-3
		i1 = -1.0981e-5
		i2 = -1.6078e-6

		m0 = -9.9348e-7
		m1 = 2.0816e-8
		m2 = 9.1697e-10

		f0 = 54.6746
		f1 = -0.603459
		f2 = 1.09987e-2
		f3 = -6.1670e-5

		g0 = 7.944e-2
		g1 = 1.6483e-2
		g2 = -5.3009e-4
	)
	sr := math.Sqrt(s)
	a := aw + (i0+(i1+i2*t68)*t68+j0*sr)*s
	b := bw + (m0+(m1+m2*t68)*t68)*s
	k0s := kw + (f0+(f1+(f2+f3*t68)*t68)*t68+(g0+(g1+g2*t68)*t68)*sr)*s // at p=0
	return k0s + (a+b*p)*p
}

// Dens density of seawater [kg/m³] for salinity s [PSS-78], temperature t [°C ITS-90]
// and pressure p [dbar]:
//
//	ρ(s,t,p) = ρ(s,t,0)/(1-p/K(s,t,p))
func Dens(s, t, p float64) float64 {
	return Dens0(s, t) / (1. - p*db2bar/Seck(s, t, p))
}

// Pden potential density [kg/m³]: the density a parcel at pressure p would have if
// moved adiabatically to reference pressure pr [dbar]
func Pden(s, t, p, pr float64) float64 {
	return Dens(s, Ptmp(s, t, p, pr), pr)
}
