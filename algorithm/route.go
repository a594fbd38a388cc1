package algorithm

import "math"

// OptimizeRoute 用贪心最近邻算法优化配送访问顺序
//
// 以输入的第一个停靠点为起点，每一步选择距离当前位置最近的
// 未访问停靠点。不做全局最优（非 VRP 求解器），停靠点规模为
// 数十个时 O(n²) 足够。输出一定是输入的一个排列。
func OptimizeRoute(stops []DeliveryStop) RouteResult {
	if len(stops) == 0 {
		return RouteResult{Route: []DeliveryStop{}}
	}

	route := make([]DeliveryStop, 0, len(stops))
	route = append(route, stops[0])

	remaining := make([]DeliveryStop, len(stops)-1)
	copy(remaining, stops[1:])

	totalKm := 0.0
	current := stops[0].Location

	for len(remaining) > 0 {
		bestIdx := -1
		minDist := math.Inf(1)

		// 距离相同取下标靠前者，保证结果确定
		for i, stop := range remaining {
			d := HaversineKm(current, stop.Location)
			if d < minDist {
				minDist = d
				bestIdx = i
			}
		}

		// 剩余停靠点全部算不出有限距离（坐标为 NaN 等脏数据）时，
		// 按输入顺序取第一个，该段里程按 0 计
		if bestIdx < 0 {
			bestIdx = 0
			minDist = 0
		}

		next := remaining[bestIdx]
		route = append(route, next)
		totalKm += minDist
		current = next.Location
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	return RouteResult{
		Route:            route,
		TotalDistanceKm:  totalKm,
		EstimatedMinutes: EstimateMinutes(totalKm),
	}
}
