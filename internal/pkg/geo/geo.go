package geo

import "math"

const earthRadiusKm = 6371

// DefaultRadiusKm is the geofence tolerance applied to check-in/check-out
// when no site-specific radius is configured (100 meters).
const DefaultRadiusKm = 0.1

// DistanceKm returns the great-circle distance between two coordinates in
// kilometers using the haversine formula.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)

	lat1Rad := lat1 * (math.Pi / 180.0)
	lat2Rad := lat2 * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// IsWithin reports whether the reported position falls inside the geofence
// radius (in kilometers) around the site position.
func IsWithin(lat, lon, siteLat, siteLon, radiusKm float64) bool {
	return DistanceKm(lat, lon, siteLat, siteLon) <= radiusKm
}
