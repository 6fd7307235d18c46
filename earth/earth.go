// Package earth holds the planetary quantities needed to turn hydrographic
// profiles into dynamics: gravity, the Coriolis parameter and station separation.
package earth

import (
	"fmt"
	"math"

	"github.com/im7mortal/UTM"
	"github.com/uservidya/seawater/profile"
	"gonum.org/v1/gonum/floats"
)

const (
	omega   = 7.292115e-5 // Earth's angular velocity [rad/s]
	radius  = 6371000.    // mean radius [m]
	gravEq  = 9.780318    // gravity at the equator [m/s²]
	deg2nm  = 60.         // nautical miles per degree of latitude
	nm2km   = 1.852       // [km/nm]
	deg2rad = math.Pi / 180.
	rad2deg = 180. / math.Pi
)

// Grav acceleration due to gravity [m/s²] at latitude lat [°] and height z [m],
// positive upward (pass -depth below the surface).
// ref: Unesco 1983, eqn (4); Pond & Pickard, 1986. Introductory Dynamical Oceanography, 2nd ed.
func Grav(lat, z float64) float64 {
	x := math.Sin(math.Abs(lat) * deg2rad)
	x *= x
	g := gravEq * (1. + (5.2788e-3+2.36e-5*x)*x)
	return g / ((1. + z/radius) * (1. + z/radius))
}

// Cor Coriolis parameter f = 2Ω·sin(lat) [1/s]
func Cor(lat float64) float64 {
	return 2. * omega * math.Sin(lat*deg2rad)
}

// Dist plane-sailing distance [km] and heading [° anticlockwise from east] between
// consecutive positions. Longitude steps over ±180° take the short way round.
func Dist(lat, lon []float64) (km, phase []float64, err error) {
	if len(lat) != len(lon) {
		return nil, nil, fmt.Errorf("dist: %d latitudes against %d longitudes: %w", len(lat), len(lon), profile.ErrShape)
	}
	if len(lat) < 2 {
		return []float64{}, []float64{}, nil
	}
	n := len(lat) - 1
	dlat := floats.SubTo(make([]float64, n), lat[1:], lat[:n])
	dlon := floats.SubTo(make([]float64, n), lon[1:], lon[:n])

	km, phase = make([]float64, n), make([]float64, n)
	for i := 0; i < n; i++ {
		if math.Abs(dlon[i]) > 180. {
			dlon[i] = -math.Copysign(360.-math.Abs(dlon[i]), dlon[i])
		}
		dep := math.Cos((math.Abs(lat[i+1]*deg2rad)+math.Abs(lat[i]*deg2rad))/2.) * dlon[i] // departure [°]
		km[i] = deg2nm * math.Hypot(dlat[i], dep) * nm2km
		phase[i] = math.Atan2(dlat[i], dep) * rad2deg
	}
	return km, phase, nil
}

// FromUTM converts station positions surveyed in UTM coordinates [m] to latitude and longitude [°]
func FromUTM(easting, northing []float64, zone int, northern bool) (lat, lon []float64, err error) {
	if len(easting) != len(northing) {
		return nil, nil, fmt.Errorf("utm: %d eastings against %d northings: %w", len(easting), len(northing), profile.ErrShape)
	}
	lat, lon = make([]float64, len(easting)), make([]float64, len(easting))
	for i := range easting {
		lat[i], lon[i], err = UTM.ToLatLon(easting[i], northing[i], zone, "", northern)
		if err != nil {
			return nil, nil, fmt.Errorf("utm: station %d (%f, %f) zone %d: %v", i, easting[i], northing[i], zone, err)
		}
	}
	return lat, lon, nil
}
