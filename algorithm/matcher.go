package algorithm

import (
	"math"
	"sort"
	"time"
)

// SurplusMatcher 余量食物匹配算法接口
// 便于后期升级算法实现
type SurplusMatcher interface {
	// Rank 为一条余量食物对候选机构评分并排序
	// now 为评分时刻，由调用方传入以保证结果可复现
	Rank(surplus SurplusCandidate, recipients []RecipientCandidate, now time.Time) []MatchResult

	// Name 返回算法名称
	Name() string

	// Version 返回算法版本
	Version() string
}

// WeightedMatcher V1 加权匹配算法
// 基于距离、时效、数量三个维度计算匹配分数
type WeightedMatcher struct {
	config MatchConfig
}

// NewWeightedMatcher 创建加权匹配算法实例
func NewWeightedMatcher(config MatchConfig) *WeightedMatcher {
	if config.MaxResults <= 0 {
		config.MaxResults = DefaultMatchConfig().MaxResults
	}
	return &WeightedMatcher{config: config}
}

func (m *WeightedMatcher) Name() string {
	return "WeightedMatcher"
}

func (m *WeightedMatcher) Version() string {
	return "1.0.0"
}

// Rank 为一条余量食物对候选机构评分并排序
func (m *WeightedMatcher) Rank(surplus SurplusCandidate, recipients []RecipientCandidate, now time.Time) []MatchResult {
	if len(recipients) == 0 {
		return []MatchResult{}
	}

	timingScore := m.calculateTimingScore(surplus, now)
	quantityScore := m.calculateQuantityScore(surplus)

	results := make([]MatchResult, 0, len(recipients))
	for _, recipient := range recipients {
		distanceScore := m.calculateDistanceScore(surplus.Location, recipient.Location)

		// 加权计算总分，最终结果收敛到 [0, 100]
		// NaN（坐标缺失等脏数据）也会落到下限 0，保证不崩溃
		combined := distanceScore*m.config.DistanceWeight +
			timingScore*m.config.TimingWeight +
			quantityScore*m.config.QuantityWeight
		if !(combined > 0) {
			combined = 0
		}
		if combined > 100 {
			combined = 100
		}

		results = append(results, MatchResult{
			Recipient:     recipient,
			Score:         int(math.Round(combined)),
			DistanceScore: distanceScore,
			TimingScore:   timingScore,
			QuantityScore: quantityScore,
		})
	}

	// 按总分降序排序；分数相同保持输入顺序
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	// 返回 Top N
	if len(results) > m.config.MaxResults {
		results = results[:m.config.MaxResults]
	}

	return results
}

// calculateDistanceScore 计算距离分 (0-100)
// 使用经纬度平面距离（度），小服务范围内的近似；
// 与路径优化使用的球面距离刻意不一致，保持线上行为
func (m *WeightedMatcher) calculateDistanceScore(from, to Location) float64 {
	dLat := from.Latitude - to.Latitude
	dLng := from.Longitude - to.Longitude
	d := math.Sqrt(dLat*dLat + dLng*dLng)

	score := 100 - d*10
	if score < 0 {
		return 0
	}
	return score
}

// calculateTimingScore 计算时效分
// 剩余时间越长分数越高，上限 100；已过期则为负数，
// 由总分的下限收敛兜底
func (m *WeightedMatcher) calculateTimingScore(surplus SurplusCandidate, now time.Time) float64 {
	hoursRemaining := surplus.ExpiresAt.Sub(now).Hours()

	score := hoursRemaining * 5
	if score > 100 {
		return 100
	}
	return score
}

// calculateQuantityScore 计算数量分 (0-100)
// 达到满载阈值（10份）为满分，不足按比例折算
func (m *WeightedMatcher) calculateQuantityScore(surplus SurplusCandidate) float64 {
	if surplus.Quantity >= FullLoadQuantity {
		return 100
	}
	return surplus.Quantity / FullLoadQuantity * 100
}

// 确保实现了接口
var _ SurplusMatcher = (*WeightedMatcher)(nil)
