package db

import (
	"context"
	"fmt"
	"time"
)

// ExpireOffersTxParams contains the input parameters for the offer expiry sweep
type ExpireOffersTxParams struct {
	Now time.Time
}

// ExpireOffersTxResult contains the offers transitioned to expired
type ExpireOffersTxResult struct {
	Expired []SurplusOffer
}

// ExpireOffersTx marks every available/matched offer whose expiry has passed as
// expired and cancels its still-pending requests, all in a single transaction.
func (store *SQLStore) ExpireOffersTx(ctx context.Context, arg ExpireOffersTxParams) (ExpireOffersTxResult, error) {
	var result ExpireOffersTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		var err error

		// 1. 批量将过期发布单置为 expired
		result.Expired, err = q.ExpireSurplusOffers(ctx, arg.Now)
		if err != nil {
			return fmt.Errorf("expire surplus offers: %w", err)
		}

		// 2. 取消这些发布单下仍处于 pending 的领取请求
		for _, offer := range result.Expired {
			if err = q.CancelPendingRequestsForOffer(ctx, offer.ID); err != nil {
				return fmt.Errorf("cancel pending requests for offer %d: %w", offer.ID, err)
			}
		}

		return nil
	})

	return result, err
}
