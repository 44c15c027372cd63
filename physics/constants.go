package physics

const (
	// G0 is standard gravity at sea level [m/s^2].
	G0 = 9.80665

	// RSpecificDryAir is the specific gas constant of dry air [J/(kg*K)].
	RSpecificDryAir = 287.058
)
