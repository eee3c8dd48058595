// Package geo содержит сферическую геометрию для расчета расстояний между координатами.
package geo

import "math"

// EarthRadiusMeters - средний радиус Земли (IUGG)
const EarthRadiusMeters = 6371008.8

// DistanceMeters возвращает расстояние по дуге большого круга между двумя точками в метрах.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	lat1 = toRadians(lat1)
	lat2 = toRadians(lat2)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1)*math.Cos(lat2)
	// На антиподах ошибки округления дают a чуть больше 1
	a = math.Min(1, a)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

func toRadians(deg float64) float64 {
	return deg * (math.Pi / 180.0)
}
