// Package algorithm 提供余量食物匹配、配送路径优化等算法
// 该包独立于业务逻辑，便于测试和升级
package algorithm

import "time"

// Location 地理位置
type Location struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// SurplusCandidate 待匹配的余量食物
type SurplusCandidate struct {
	OfferID   int64     `json:"offer_id"`
	Location  Location  `json:"location"`
	ExpiresAt time.Time `json:"expires_at"`
	Quantity  float64   `json:"quantity"` // 数量（份）
}

// RecipientCandidate 候选受赠机构
type RecipientCandidate struct {
	OrganizationID int64    `json:"organization_id"`
	Location       Location `json:"location"`
	Capacity       float64  `json:"capacity"` // 机构日接收能力（份），透传字段，不参与评分
}

// MatchResult 带匹配分数的候选机构
type MatchResult struct {
	Recipient     RecipientCandidate `json:"recipient"`
	Score         int                `json:"score"`          // 总分 0-100
	DistanceScore float64            `json:"distance_score"` // 距离分
	TimingScore   float64            `json:"timing_score"`   // 时效分
	QuantityScore float64            `json:"quantity_score"` // 数量分
}

// MatchConfig 匹配算法配置
type MatchConfig struct {
	DistanceWeight float64 `json:"distance_weight"` // 距离权重
	TimingWeight   float64 `json:"timing_weight"`   // 时效权重
	QuantityWeight float64 `json:"quantity_weight"` // 数量权重
	MaxResults     int     `json:"max_results"`     // 最大返回数量
}

// FullLoadQuantity 满载数量阈值（份）：达到该数量时数量分为满分
const FullLoadQuantity = 10.0

// DefaultMatchConfig 默认配置
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		DistanceWeight: 0.40,
		TimingWeight:   0.30,
		QuantityWeight: 0.30,
		MaxResults:     5,
	}
}

// DeliveryStop 配送路径中的一个停靠点
// 除位置外的数据对优化器透明，按输入原样携带到输出
type DeliveryStop struct {
	Location Location `json:"location"`
	Payload  any      `json:"-"`
}

// RouteResult 路径优化结果
// Route 是输入停靠点的一个排列（首个停靠点固定为起点）
type RouteResult struct {
	Route            []DeliveryStop `json:"route"`
	TotalDistanceKm  float64        `json:"total_distance"`
	EstimatedMinutes int            `json:"estimated_time"`
}
