// Package geo provides great-circle distance calculations for hospital
// coordinates.
package geo

import "math"

const earthRadiusKm = 6371.0

// Distance returns the haversine distance in kilometers between two
// coordinate pairs given in degrees, rounded to one decimal place.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := degreesToRadians(lat2 - lat1)
	dLon := degreesToRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(degreesToRadians(lat1))*math.Cos(degreesToRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return math.Round(earthRadiusKm*c*10) / 10
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
