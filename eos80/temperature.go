package eos80

import "math"

// T68conv converts ITS-90 temperature to IPTS-68
func T68conv(t90 float64) float64 { return t90 * t68fact }

// T90conv converts IPTS-68 temperature to ITS-90
func T90conv(t68 float64) float64 { return t68 / t68fact }

// Adtg adiabatic temperature gradient [°C/dbar]
// ref: Bryden, H., 1973. New polynomials for thermal expansion, adiabatic temperature gradient and potential temperature of sea water. Deep-Sea Research 20: 401-408.
func Adtg(s, t, p float64) float64 {
	const (
		a0 = 3.5803e-5
		a1 = 8.5258e-6
		a2 = -6.836e-8
		a3 = 6.6228e-10

		b0 = 1.8932e-6
		b1 = -4.2393e-8

		c0 = 1.8741e-8
		c1 = -6.7795e-10
		c2 = 8.733e-12
		c3 = -5.4481e-14

		d0 = -1.1351e-10
		d1 = 2.7759e-12

		e0 = -4.6206e-13
		e1 = 1.8676e-14
		e2 = -2.1687e-16
	)
	t68, ds := T68conv(t), s-refSal
	return a0 + (a1+(a2+a3*t68)*t68)*t68 +
		(b0+b1*t68)*ds +
		((c0+(c1+(c2+c3*t68)*t68)*t68)+(d0+d1*t68)*ds)*p +
		(e0+(e1+e2*t68)*t68)*p*p
}

// Ptmp potential temperature [°C ITS-90] of a parcel at pressure p brought to
// reference pressure pr, integrating Adtg with a 4th order Runge-Kutta step.
// ref: Fofonoff, N., 1977. Computation of potential temperature of seawater for an arbitrary reference pressure. Deep-Sea Research 24: 489-491.
func Ptmp(s, t, p, pr float64) float64 {
	dp := pr - p

	dth := dp * Adtg(s, t, p)
	th := T68conv(t) + .5*dth
	q := dth

	dth = dp * Adtg(s, T90conv(th), p+.5*dp)
	th += (1. - 1./math.Sqrt2) * (dth - q)
	q = (2.-math.Sqrt2)*dth + (-2.+3./math.Sqrt2)*q

	dth = dp * Adtg(s, T90conv(th), p+.5*dp)
	th += (1. + 1./math.Sqrt2) * (dth - q)
	q = (2.+math.Sqrt2)*dth + (-2.-3./math.Sqrt2)*q

	dth = dp * Adtg(s, T90conv(th), p+dp)
	return T90conv(th + (dth-2.*q)/6.)
}
