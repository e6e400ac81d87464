package fare

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownLocation is returned when a location name is not part of
// the known location set.
var ErrUnknownLocation = errors.New("unknown location")

// Per-km rate tiers. Longer trips get a cheaper per-km rate.
const (
	rateAbove30Km = 7.0
	rateAbove20Km = 8.0
	rateAbove10Km = 9.0
	rateBase      = 10.0
)

// Quote is the priced result of a fare estimate.
type Quote struct {
	Source      string
	Destination string
	DistanceKm  float64
	RatePerKm   float64
	Amount      float64
}

// Calculator derives fares from the location graph. It is pure:
// repeated calls with the same inputs return identical results.
type Calculator struct {
	routes *RouteTable
}

// NewCalculator creates a Calculator over the given route table.
func NewCalculator(routes *RouteTable) *Calculator {
	return &Calculator{routes: routes}
}

// Resolve validates a location name case-insensitively and returns its
// canonical spelling.
func (c *Calculator) Resolve(name string) (string, error) {
	canonical, ok := c.routes.Resolve(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownLocation, name)
	}
	return canonical, nil
}

// Estimate prices the route between source and destination. Both names
// are validated against the known location set.
func (c *Calculator) Estimate(source, destination string) (*Quote, error) {
	src, err := c.Resolve(source)
	if err != nil {
		return nil, err
	}
	dest, err := c.Resolve(destination)
	if err != nil {
		return nil, err
	}

	distance := c.routes.Distance(src, dest)
	rate := ratePerKm(distance)

	return &Quote{
		Source:      src,
		Destination: dest,
		DistanceKm:  distance,
		RatePerKm:   rate,
		Amount:      math.Round(distance*rate*100) / 100,
	}, nil
}

// Locations returns the closed set of bookable locations.
func (c *Calculator) Locations() []string {
	return c.routes.Locations()
}

func ratePerKm(distanceKm float64) float64 {
	switch {
	case distanceKm > 30:
		return rateAbove30Km
	case distanceKm > 20:
		return rateAbove20Km
	case distanceKm > 10:
		return rateAbove10Km
	default:
		return rateBase
	}
}
