package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
	db "github.com/sunidhi090894/FoodShare-sub000/db/sqlc"
)

const (
	TaskExpireOffer = "offer:expire"
)

// ExpireOfferPayload 发布单过期任务载荷
type ExpireOfferPayload struct {
	OfferID int64 `json:"offer_id"`
}

// DistributeTaskExpireOffer 分发发布单过期任务。
// 调用方通过 asynq.ProcessAt(offer.ExpiresAt) 把任务安排在临期时间点执行。
func (distributor *RedisTaskDistributor) DistributeTaskExpireOffer(
	ctx context.Context,
	payload *ExpireOfferPayload,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	task := asynq.NewTask(TaskExpireOffer, jsonPayload, opts...)
	info, err := distributor.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueue task: %w", err)
	}

	log.Debug().
		Str("type", task.Type()).
		Str("queue", info.Queue).
		Int64("offer_id", payload.OfferID).
		Time("process_at", info.NextProcessAt).
		Msg("enqueued offer expiry task")

	return nil
}

// ProcessTaskExpireOffer 处理发布单过期任务。
// 任务是幂等的：发布单已进入终态时直接跳过。
func (processor *RedisTaskProcessor) ProcessTaskExpireOffer(ctx context.Context, task *asynq.Task) error {
	var payload ExpireOfferPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	offer, err := processor.store.GetSurplusOffer(ctx, payload.OfferID)
	if err != nil {
		return fmt.Errorf("get surplus offer: %w", err)
	}

	switch offer.Status {
	case "available", "matched":
	default:
		// 已认领/完成/取消的发布单不再处理
		log.Debug().Int64("offer_id", offer.ID).Str("status", offer.Status).Msg("offer already settled, skip expiry")
		return nil
	}

	result, err := processor.store.ExpireOffersTx(ctx, db.ExpireOffersTxParams{
		Now: time.Now(),
	})
	if err != nil {
		return fmt.Errorf("expire offers tx: %w", err)
	}

	log.Info().
		Int64("offer_id", payload.OfferID).
		Int("expired_count", len(result.Expired)).
		Msg("offer expiry processed")

	return nil
}
