package algorithm

import "math"

const (
	// 地球半径（公里）
	earthRadiusKm = 6371

	// 平均配送车速（公里/小时）
	avgSpeedKmh = 40
)

// HaversineKm 计算两点间的球面距离（公里）
// 使用 Haversine 公式
func HaversineKm(loc1, loc2 Location) float64 {
	lat1 := toRadians(loc1.Latitude)
	lat2 := toRadians(loc2.Latitude)
	deltaLat := toRadians(loc2.Latitude - loc1.Latitude)
	deltaLng := toRadians(loc2.Longitude - loc1.Longitude)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// EstimateMinutes 估算配送时间（分钟）
// 按 40km/h 折算，先把小时数向上取整再换算成分钟
func EstimateMinutes(distanceKm float64) int {
	if distanceKm <= 0 {
		return 0
	}
	return int(math.Ceil(distanceKm/avgSpeedKmh)) * 60
}

// toRadians 角度转弧度
func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
