package algorithm

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWeightedMatcher_PerfectMatch(t *testing.T) {
	matcher := NewWeightedMatcher(DefaultMatchConfig())
	require.Equal(t, "WeightedMatcher", matcher.Name())
	require.Equal(t, "1.0.0", matcher.Version())

	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	// 同一位置、20小时后过期、满载数量：三个维度都是满分
	surplus := SurplusCandidate{
		OfferID:   1,
		Location:  Location{Longitude: 0, Latitude: 0},
		ExpiresAt: now.Add(20 * time.Hour),
		Quantity:  10,
	}
	recipients := []RecipientCandidate{
		{OrganizationID: 100, Location: Location{Longitude: 0, Latitude: 0}},
	}

	results := matcher.Rank(surplus, recipients, now)
	require.Len(t, results, 1)
	require.Equal(t, 100, results[0].Score)
	require.Equal(t, float64(100), results[0].DistanceScore)
	require.Equal(t, float64(100), results[0].TimingScore)
	require.Equal(t, float64(100), results[0].QuantityScore)
}

func TestWeightedMatcher_SubScores(t *testing.T) {
	matcher := NewWeightedMatcher(DefaultMatchConfig())
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	surplus := SurplusCandidate{
		Location:  Location{Longitude: 0, Latitude: 0},
		ExpiresAt: now.Add(20 * time.Hour),
		Quantity:  5,
	}

	// 3-4-5 直角三角形：平面度距离正好 5 度 -> 距离分 50
	recipients := []RecipientCandidate{
		{OrganizationID: 1, Location: Location{Longitude: 4, Latitude: 3}},
	}

	results := matcher.Rank(surplus, recipients, now)
	require.Len(t, results, 1)
	require.InDelta(t, 50, results[0].DistanceScore, 1e-9)
	// 数量 5 份 -> 数量分正好 50
	require.InDelta(t, 50, results[0].QuantityScore, 1e-9)
	// 0.4*50 + 0.3*100 + 0.3*50 = 65
	require.Equal(t, 65, results[0].Score)
}

func TestWeightedMatcher_QuantityThreshold(t *testing.T) {
	matcher := NewWeightedMatcher(DefaultMatchConfig())

	require.Equal(t, float64(100), matcher.calculateQuantityScore(SurplusCandidate{Quantity: 10}))
	require.Equal(t, float64(100), matcher.calculateQuantityScore(SurplusCandidate{Quantity: 25}))
	require.Equal(t, float64(50), matcher.calculateQuantityScore(SurplusCandidate{Quantity: 5}))
	require.Equal(t, float64(0), matcher.calculateQuantityScore(SurplusCandidate{Quantity: 0}))
}

func TestWeightedMatcher_ExpiredSurplus(t *testing.T) {
	matcher := NewWeightedMatcher(DefaultMatchConfig())
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	// 已过期 30 小时：时效分 -150，总分被权重拉低但不低于 0
	surplus := SurplusCandidate{
		Location:  Location{Longitude: 0, Latitude: 0},
		ExpiresAt: now.Add(-30 * time.Hour),
		Quantity:  10,
	}
	recipients := []RecipientCandidate{
		{OrganizationID: 1, Location: Location{Longitude: 0, Latitude: 0}},
	}

	results := matcher.Rank(surplus, recipients, now)
	require.Len(t, results, 1)
	require.InDelta(t, -150, results[0].TimingScore, 1e-9)
	// 0.4*100 + 0.3*(-150) + 0.3*100 = 25
	require.Equal(t, 25, results[0].Score)

	// 过期更久时总分收敛到 0，不会出现负分
	surplus.ExpiresAt = now.Add(-1000 * time.Hour)
	results = matcher.Rank(surplus, recipients, now)
	require.Equal(t, 0, results[0].Score)
}

func TestWeightedMatcher_TopN(t *testing.T) {
	matcher := NewWeightedMatcher(DefaultMatchConfig())
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	surplus := SurplusCandidate{
		Location:  Location{Longitude: 116.4, Latitude: 39.9},
		ExpiresAt: now.Add(10 * time.Hour),
		Quantity:  8,
	}

	// 8 个候选机构，距离依次变远
	var recipients []RecipientCandidate
	for i := 0; i < 8; i++ {
		recipients = append(recipients, RecipientCandidate{
			OrganizationID: int64(i + 1),
			Location:       Location{Longitude: 116.4 + float64(i)*0.5, Latitude: 39.9},
		})
	}

	results := matcher.Rank(surplus, recipients, now)
	require.Len(t, results, 5)

	// 分数应该是递减的，且最近的机构排第一
	require.Equal(t, int64(1), results[0].Recipient.OrganizationID)
	for i := 1; i < len(results); i++ {
		require.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}

	// 候选少于 MaxResults 时全部返回
	results = matcher.Rank(surplus, recipients[:3], now)
	require.Len(t, results, 3)
}

func TestWeightedMatcher_StableTieBreak(t *testing.T) {
	matcher := NewWeightedMatcher(DefaultMatchConfig())
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	surplus := SurplusCandidate{
		Location:  Location{Longitude: 0, Latitude: 0},
		ExpiresAt: now.Add(20 * time.Hour),
		Quantity:  10,
	}

	// 两个机构与食物距离相同，分数并列时保持输入顺序
	recipients := []RecipientCandidate{
		{OrganizationID: 7, Location: Location{Longitude: 1, Latitude: 0}},
		{OrganizationID: 3, Location: Location{Longitude: 0, Latitude: 1}},
	}

	results := matcher.Rank(surplus, recipients, now)
	require.Len(t, results, 2)
	require.Equal(t, results[0].Score, results[1].Score)
	require.Equal(t, int64(7), results[0].Recipient.OrganizationID)
	require.Equal(t, int64(3), results[1].Recipient.OrganizationID)
}

func TestWeightedMatcher_Deterministic(t *testing.T) {
	matcher := NewWeightedMatcher(DefaultMatchConfig())
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	surplus := SurplusCandidate{
		Location:  Location{Longitude: 116.4, Latitude: 39.9},
		ExpiresAt: now.Add(6 * time.Hour),
		Quantity:  3,
	}
	recipients := []RecipientCandidate{
		{OrganizationID: 1, Location: Location{Longitude: 116.5, Latitude: 39.8}},
		{OrganizationID: 2, Location: Location{Longitude: 116.2, Latitude: 40.1}},
		{OrganizationID: 3, Location: Location{Longitude: 117.0, Latitude: 39.0}},
	}

	first := matcher.Rank(surplus, recipients, now)
	second := matcher.Rank(surplus, recipients, now)
	require.Equal(t, first, second)
}

func TestWeightedMatcher_EmptyRecipients(t *testing.T) {
	matcher := NewWeightedMatcher(DefaultMatchConfig())

	results := matcher.Rank(SurplusCandidate{}, nil, time.Now())
	require.Empty(t, results)
	require.NotNil(t, results)
}

func TestWeightedMatcher_MalformedSurplus(t *testing.T) {
	matcher := NewWeightedMatcher(DefaultMatchConfig())
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	// 缺坐标、缺过期时间的脏数据：得到一个合法的低分而不是崩溃
	surplus := SurplusCandidate{
		Location: Location{Longitude: math.NaN(), Latitude: math.NaN()},
	}
	recipients := []RecipientCandidate{
		{OrganizationID: 1, Location: Location{Longitude: 116.4, Latitude: 39.9}},
	}

	results := matcher.Rank(surplus, recipients, now)
	require.Len(t, results, 1)
	require.GreaterOrEqual(t, results[0].Score, 0)
	require.LessOrEqual(t, results[0].Score, 100)
}
