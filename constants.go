package seawater

const (
	db2Pascal = 1e4 // [Pa/dbar]
	gdef      = 9.8 // default gravity [m/s²], used when latitude is not given
	km2m      = 1e3
)
