package orbit

import "fmt"

// LaunchSite is a point on the surface of a body.
type LaunchSite struct {
	Body      *Body
	Latitude  float64 // [deg]
	Longitude float64 // [deg]
	Altitude  float64 // above sea level [m]
}

func NewLaunchSite(body *Body, latitude, longitude, altitude float64) (*LaunchSite, error) {
	if body == nil {
		return nil, fmt.Errorf("%w: no body", ErrInvalidBody)
	}

	if !finite(latitude) || latitude < -90 || latitude > 90 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLatitude, latitude)
	}

	if !finite(longitude) || longitude < -180 || longitude > 180 {
		return nil, fmt.Errorf("%w: longitude %v", ErrInvalidInput, longitude)
	}

	if !finite(altitude) || altitude < 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAltitude, altitude)
	}

	return &LaunchSite{
		Body:      body,
		Latitude:  latitude,
		Longitude: longitude,
		Altitude:  altitude,
	}, nil
}

// SurfaceSpeed is the eastward speed the site already has from the body's spin [m/s].
func (s *LaunchSite) SurfaceSpeed() float64 {
	v, _ := s.Body.SpeedAtLatitude(s.Latitude)

	return v
}

// Gravity is the gravitational acceleration at the site [m/s^2].
func (s *LaunchSite) Gravity() float64 {
	g, _ := s.Body.GravitationalAcceleration(s.Altitude)

	return g
}
