package eos80

import "math"

// Dpth depth [m] from pressure p [dbar] at latitude lat [°]
// ref: Saunders, P.M. and N.P. Fofonoff, 1976. Conversion of pressure to depth in the ocean. Deep-Sea Research 23: 109-111.
func Dpth(p, lat float64) float64 {
	const (
		c1 = 9.72659
		c2 = -2.2512e-5
		c3 = 2.279e-10
		c4 = -1.82e-15
	)
	x := math.Sin(math.Abs(lat) * deg2rad)
	x *= x
	bot := gravEq*(1.+(5.2788e-3+2.36e-5*x)*x) + gamDash*.5*p
	top := (((c4*p+c3)*p+c2)*p + c1) * p
	return top / bot
}

// Pres pressure [dbar] from depth [m] at latitude lat [°]
// ref: Saunders, P.M., 1981. Practical conversion of pressure to depth. Journal of Physical Oceanography 11: 573-574.
func Pres(depth, lat float64) float64 {
	x := math.Sin(math.Abs(lat) * deg2rad)
	c1 := 5.92e-3 + x*x*5.25e-3
	return ((1. - c1) - math.Sqrt((1.-c1)*(1.-c1)-8.84e-6*depth)) / 4.42e-6
}
