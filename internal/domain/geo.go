package domain

import "math"

const earthRadiusKm = 6371

// DistanceKm returns the great-circle (haversine) distance between two
// coordinates, rounded to the nearest whole kilometre. It is a display
// estimate only — never an input to routing decisions.
func DistanceKm(lat1, lng1, lat2, lng2 float64) int {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return int(math.Round(earthRadiusKm * c))
}
