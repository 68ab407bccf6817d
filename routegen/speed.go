package routegen

import (
	"strconv"
	"strings"
)

const (
	KPH_TO_MS   = 0.277778
	MPH_TO_MS   = 0.44704
	KNOTS_TO_MS = 0.514444
)

// ParseMaxSpeed converts an OSM maxspeed tag value to m/s. A bare number is
// km/h per the OSM convention. Unparsable values yield 0.
func ParseMaxSpeed(maxspeed string) float64 {
	splitSpeed := strings.Split(maxspeed, " ")
	if len(splitSpeed) == 0 {
		return 0
	}

	numeric, err := strconv.ParseUint(splitSpeed[0], 10, 64)
	if err != nil {
		return 0
	}

	if len(splitSpeed) == 1 {
		return KPH_TO_MS * float64(numeric)
	}

	if splitSpeed[1] == "kph" || splitSpeed[1] == "km/h" || splitSpeed[1] == "kmh" {
		return KPH_TO_MS * float64(numeric)
	} else if splitSpeed[1] == "mph" {
		return MPH_TO_MS * float64(numeric)
	} else if splitSpeed[1] == "knots" {
		return KNOTS_TO_MS * float64(numeric)
	}

	return 0
}
