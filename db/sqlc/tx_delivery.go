package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

var (
	ErrDeliveryUnavailable = errors.New("配送单已被认领或不可认领")
	ErrNotDeliveryOwner    = errors.New("配送单不属于当前志愿者")
	ErrDeliveryNotActive   = errors.New("配送单不在可完成状态")
)

// ==================== 志愿者认领事务 ====================

// ClaimDeliveryTxParams contains the input parameters for claiming a delivery
type ClaimDeliveryTxParams struct {
	DeliveryID  int64
	VolunteerID int64
}

// ClaimDeliveryTxResult contains the result of the claim delivery transaction
type ClaimDeliveryTxResult struct {
	Delivery Delivery
	Offer    SurplusOffer
}

// ClaimDeliveryTx assigns a pending delivery to a volunteer in a single
// transaction. The delivery row is locked first so only one volunteer wins
// under concurrent claims.
func (store *SQLStore) ClaimDeliveryTx(ctx context.Context, arg ClaimDeliveryTxParams) (ClaimDeliveryTxResult, error) {
	var result ClaimDeliveryTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		var err error

		// 1. 锁定配送单行，并发认领只有一人成功
		delivery, err := q.GetDeliveryForUpdate(ctx, arg.DeliveryID)
		if err != nil {
			return fmt.Errorf("get delivery for update: %w", err)
		}
		if delivery.Status != "pending" || delivery.VolunteerID.Valid {
			return ErrDeliveryUnavailable
		}

		// 2. 分配给志愿者
		result.Delivery, err = q.AssignDelivery(ctx, AssignDeliveryParams{
			ID:          delivery.ID,
			VolunteerID: pgtype.Int8{Int64: arg.VolunteerID, Valid: true},
		})
		if err != nil {
			return fmt.Errorf("assign delivery: %w", err)
		}

		// 3. 发布单进入已认领状态
		result.Offer, err = q.UpdateSurplusOfferStatus(ctx, UpdateSurplusOfferStatusParams{
			ID:     delivery.OfferID,
			Status: "claimed",
		})
		if err != nil {
			return fmt.Errorf("update offer status: %w", err)
		}

		return nil
	})

	return result, err
}

// ==================== 确认送达事务 ====================

// CompleteDeliveryTxParams contains the input parameters for completing a delivery
type CompleteDeliveryTxParams struct {
	DeliveryID  int64
	VolunteerID int64
}

// CompleteDeliveryTxResult contains the result of the complete delivery transaction
type CompleteDeliveryTxResult struct {
	Delivery Delivery
	Offer    SurplusOffer
	Request  FoodRequest
}

// CompleteDeliveryTx finishes a delivery in a single transaction:
// delivery -> completed, offer -> completed, originating request -> fulfilled.
func (store *SQLStore) CompleteDeliveryTx(ctx context.Context, arg CompleteDeliveryTxParams) (CompleteDeliveryTxResult, error) {
	var result CompleteDeliveryTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		var err error

		// 1. 锁定配送单并校验归属与状态
		delivery, err := q.GetDeliveryForUpdate(ctx, arg.DeliveryID)
		if err != nil {
			return fmt.Errorf("get delivery for update: %w", err)
		}
		if !delivery.VolunteerID.Valid || delivery.VolunteerID.Int64 != arg.VolunteerID {
			return ErrNotDeliveryOwner
		}
		switch delivery.Status {
		case "assigned", "picking", "delivering":
		default:
			return ErrDeliveryNotActive
		}

		// 2. 配送单完成
		result.Delivery, err = q.CompleteDelivery(ctx, delivery.ID)
		if err != nil {
			return fmt.Errorf("complete delivery: %w", err)
		}

		// 3. 发布单完成
		result.Offer, err = q.UpdateSurplusOfferStatus(ctx, UpdateSurplusOfferStatusParams{
			ID:     delivery.OfferID,
			Status: "completed",
		})
		if err != nil {
			return fmt.Errorf("update offer status: %w", err)
		}

		// 4. 对应领取请求置为 fulfilled
		match, err := q.GetMatch(ctx, delivery.MatchID)
		if err != nil {
			return fmt.Errorf("get match: %w", err)
		}
		result.Request, err = q.UpdateFoodRequestStatus(ctx, UpdateFoodRequestStatusParams{
			ID:     match.RequestID,
			Status: "fulfilled",
		})
		if err != nil {
			return fmt.Errorf("fulfill food request: %w", err)
		}

		return nil
	})

	return result, err
}
