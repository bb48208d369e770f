package kachelmann

import (
	"math"
	"slices"
)

const (
	APIKeyLength = 128
	MaxLatitude  = 90
	MaxLongitude = 180
)

type Units string

const (
	Metric   Units = "metric"
	Imperial Units = "imperial"
)

type Timestep string

const (
	Timestep10Min Timestep = "10min"
	Timestep1H    Timestep = "1h"
	Timestep3H    Timestep = "3h"
	Timestep6H    Timestep = "6h"
	Timestep1D    Timestep = "1d"
)

var (
	forecastTimesteps     = []Timestep{Timestep1H, Timestep3H, Timestep6H}
	observationsTimesteps = []Timestep{Timestep10Min, Timestep1H, Timestep1D}
)

// ValidAPIKey only checks the length; the key is not checked for hex characters.
func ValidAPIKey(key string) bool {
	return len(key) == APIKeyLength
}

func ValidCoordinates(latitude, longitude float64) bool {
	if math.IsNaN(latitude) || math.IsNaN(longitude) {
		return false
	}
	return math.Abs(latitude) <= MaxLatitude && math.Abs(longitude) <= MaxLongitude
}

func ValidUnits(u Units) bool {
	return u == Metric || u == Imperial
}

func ValidForecastTimesteps(ts Timestep) bool {
	return slices.Contains(forecastTimesteps, ts)
}

func ValidObservationsTimesteps(ts Timestep) bool {
	return slices.Contains(observationsTimesteps, ts)
}
