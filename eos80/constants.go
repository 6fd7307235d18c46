package eos80

import "math"

const (
	t68fact = 1.00024        // IPTS-68 to ITS-90 temperature scale factor
	deg2rad = math.Pi / 180. // [rad/°]
	db2bar  = .1             // [bar/dbar]
	gamDash = 2.184e-6       // mean vertical gradient of gravity [m/s²/dbar] (Saunders & Fofonoff, 1976)
	gravEq  = 9.780318       // gravity at the equator [m/s²] (Geodetic Reference System 1967)
	refSal  = 35.            // standard seawater salinity [PSS-78]
)
