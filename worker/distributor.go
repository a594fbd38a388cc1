package worker

import (
	"context"

	"github.com/hibiken/asynq"
)

// TaskDistributor 任务分发接口
type TaskDistributor interface {
	// DistributeTaskSendNotification 分发发送通知任务
	DistributeTaskSendNotification(
		ctx context.Context,
		payload *SendNotificationPayload,
		opts ...asynq.Option,
	) error

	// DistributeTaskExpireOffer 分发发布单过期任务（在临期时间点触发）
	DistributeTaskExpireOffer(
		ctx context.Context,
		payload *ExpireOfferPayload,
		opts ...asynq.Option,
	) error
}

type RedisTaskDistributor struct {
	client *asynq.Client
}

func NewRedisTaskDistributor(redisOpt asynq.RedisClientOpt) TaskDistributor {
	client := asynq.NewClient(redisOpt)
	return &RedisTaskDistributor{
		client: client,
	}
}
