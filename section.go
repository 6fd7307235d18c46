package seawater

import (
	"fmt"

	"github.com/uservidya/seawater/earth"
	"github.com/uservidya/seawater/profile"
	"gonum.org/v1/gonum/mat"
)

// Section a line of hydrographic stations sampled on common pressure levels
type Section struct {
	s, t, p  *mat.Dense
	lat, lon []float64
}

// NewSection broadcasts salinity, temperature and pressure to levels x stations and
// checks that one position is given per station.
func NewSection(s, t, p mat.Matrix, lat, lon []float64) (*Section, error) {
	b, err := profile.Broadcast(s, t, p)
	if err != nil {
		return nil, fmt.Errorf("section: %w", err)
	}
	_, ns := b[0].Dims()
	if len(lat) != ns || len(lon) != ns {
		return nil, fmt.Errorf("section: %d stations, %d latitudes, %d longitudes: %w", ns, len(lat), len(lon), profile.ErrShape)
	}
	return &Section{
		s:   b[0],
		t:   b[1],
		p:   b[2],
		lat: append([]float64(nil), lat...),
		lon: append([]float64(nil), lon...),
	}, nil
}

// NewSectionUTM is NewSection for stations positioned by UTM easting/northing [m]
func NewSectionUTM(s, t, p mat.Matrix, easting, northing []float64, zone int, northern bool) (*Section, error) {
	lat, lon, err := earth.FromUTM(easting, northing, zone, northern)
	if err != nil {
		return nil, fmt.Errorf("section: %w", err)
	}
	return NewSection(s, t, p, lat, lon)
}

// Dims number of pressure levels and stations
func (x *Section) Dims() (levels, stations int) { return x.p.Dims() }

// Position latitude and longitude of station j; panics if j is outside [0, stations)
func (x *Section) Position(j int) (lat, lon float64) { return x.lat[j], x.lon[j] }

// SpecificVolumeAnomaly see Svan
func (x *Section) SpecificVolumeAnomaly() (*mat.Dense, error) { return Svan(x.s, x.t, x.p) }

// Geopotential anomaly relative to the sea surface, see Gpan
func (x *Section) Geopotential() (*mat.Dense, error) { return Gpan(x.s, x.t, x.p) }

// Velocity geostrophic velocity relative to the sea surface between adjacent stations
func (x *Section) Velocity() (*mat.Dense, error) {
	ga, err := x.Geopotential()
	if err != nil {
		return nil, err
	}
	return Gvel(ga, x.lat, x.lon)
}

// Stability N², potential vorticity and mid pressures using the station latitudes, see Bfrq
func (x *Section) Stability() (n2, q, pave *mat.Dense, err error) {
	return Bfrq(x.s, x.t, x.p, x.lat)
}
