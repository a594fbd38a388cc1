package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sunidhi090894/FoodShare-sub000/algorithm"
)

// 事务级业务错误，由 API 层映射为对应的 HTTP 状态码
var (
	ErrRequestNotPending = errors.New("领取请求不在待处理状态")
	ErrOfferUnavailable  = errors.New("发布单不可领取")
	ErrOfferExpired      = errors.New("发布单已过临期时间")
)

// ConfirmMatchTxParams contains the input parameters for confirming a match
type ConfirmMatchTxParams struct {
	RequestID int64
	Now       time.Time
}

// ConfirmMatchTxResult contains the result of the match confirmation transaction
type ConfirmMatchTxResult struct {
	Request      FoodRequest
	Offer        SurplusOffer
	Organization Organization
	Match        Match
	Delivery     Delivery
}

// ConfirmMatchTx executes all operations for approving a food request in a
// single transaction:
// 1. Lock the request and its offer
// 2. Approve the request, reject competing pending requests
// 3. Mark the offer as matched
// 4. Record the match with its score breakdown
// 5. Create the pending delivery with distance/time estimates
func (store *SQLStore) ConfirmMatchTx(ctx context.Context, arg ConfirmMatchTxParams) (ConfirmMatchTxResult, error) {
	var result ConfirmMatchTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		var err error

		// 1. 锁定领取请求，确认仍处于 pending
		request, err := q.GetFoodRequestForUpdate(ctx, arg.RequestID)
		if err != nil {
			return fmt.Errorf("get food request for update: %w", err)
		}
		if request.Status != "pending" {
			return ErrRequestNotPending
		}

		// 2. 锁定发布单，确认仍可领取且未过期
		offer, err := q.GetSurplusOfferForUpdate(ctx, request.OfferID)
		if err != nil {
			return fmt.Errorf("get surplus offer for update: %w", err)
		}
		if offer.Status != "available" {
			return ErrOfferUnavailable
		}
		if !offer.ExpiresAt.After(arg.Now) {
			return ErrOfferExpired
		}

		result.Organization, err = q.GetOrganization(ctx, request.OrganizationID)
		if err != nil {
			return fmt.Errorf("get organization: %w", err)
		}

		// 3. 批准当前请求，拒绝同一发布单下其他 pending 请求
		result.Request, err = q.UpdateFoodRequestStatus(ctx, UpdateFoodRequestStatusParams{
			ID:     request.ID,
			Status: "approved",
		})
		if err != nil {
			return fmt.Errorf("approve food request: %w", err)
		}

		err = q.RejectOtherPendingRequests(ctx, RejectOtherPendingRequestsParams{
			OfferID: offer.ID,
			ID:      request.ID,
		})
		if err != nil {
			return fmt.Errorf("reject other pending requests: %w", err)
		}

		// 4. 发布单置为 matched
		result.Offer, err = q.UpdateSurplusOfferStatus(ctx, UpdateSurplusOfferStatusParams{
			ID:     offer.ID,
			Status: "matched",
		})
		if err != nil {
			return fmt.Errorf("update offer status: %w", err)
		}

		// 5. 记录匹配及评分明细
		matcher := algorithm.NewWeightedMatcher(algorithm.DefaultMatchConfig())
		ranked := matcher.Rank(
			algorithm.SurplusCandidate{
				OfferID: offer.ID,
				Location: algorithm.Location{
					Longitude: offer.Longitude,
					Latitude:  offer.Latitude,
				},
				ExpiresAt: offer.ExpiresAt,
				Quantity:  offer.Quantity,
			},
			[]algorithm.RecipientCandidate{
				{
					OrganizationID: result.Organization.ID,
					Location: algorithm.Location{
						Longitude: result.Organization.Longitude,
						Latitude:  result.Organization.Latitude,
					},
					Capacity: result.Organization.Capacity,
				},
			},
			arg.Now,
		)

		matchParams := CreateMatchParams{
			OfferID:        offer.ID,
			OrganizationID: result.Organization.ID,
			RequestID:      request.ID,
		}
		if len(ranked) > 0 {
			matchParams.Score = int32(ranked[0].Score)
			matchParams.DistanceScore = ranked[0].DistanceScore
			matchParams.TimingScore = ranked[0].TimingScore
			matchParams.QuantityScore = ranked[0].QuantityScore
		}
		result.Match, err = q.CreateMatch(ctx, matchParams)
		if err != nil {
			return fmt.Errorf("create match: %w", err)
		}

		// 6. 创建待认领配送单，距离与时间走测地线估算
		distanceKm := algorithm.HaversineKm(
			algorithm.Location{Longitude: offer.Longitude, Latitude: offer.Latitude},
			algorithm.Location{Longitude: result.Organization.Longitude, Latitude: result.Organization.Latitude},
		)
		result.Delivery, err = q.CreateDelivery(ctx, CreateDeliveryParams{
			OfferID:          offer.ID,
			OrganizationID:   result.Organization.ID,
			MatchID:          result.Match.ID,
			PickupAddress:    offer.PickupAddress,
			PickupLongitude:  offer.Longitude,
			PickupLatitude:   offer.Latitude,
			DropoffAddress:   result.Organization.Address,
			DropoffLongitude: result.Organization.Longitude,
			DropoffLatitude:  result.Organization.Latitude,
			DistanceKm:       distanceKm,
			EstimatedMinutes: int32(algorithm.EstimateMinutes(distanceKm)),
		})
		if err != nil {
			return fmt.Errorf("create delivery: %w", err)
		}

		return nil
	})

	return result, err
}
