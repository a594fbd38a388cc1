package worker

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
	db "github.com/sunidhi090894/FoodShare-sub000/db/sqlc"
)

const (
	QueueCritical = "critical"
	QueueDefault  = "default"
)

// TaskProcessor 任务处理接口
type TaskProcessor interface {
	Start() error
	Shutdown()
	// ProcessTaskSendNotification 处理发送通知任务
	ProcessTaskSendNotification(ctx context.Context, task *asynq.Task) error
	// ProcessTaskExpireOffer 处理发布单过期任务
	ProcessTaskExpireOffer(ctx context.Context, task *asynq.Task) error
}

type RedisTaskProcessor struct {
	server      *asynq.Server
	store       db.Store
	redisClient *redis.Client // Redis客户端（用于Pub/Sub推送通知）
}

func NewRedisTaskProcessor(redisOpt asynq.RedisClientOpt, store db.Store) TaskProcessor {
	logger := NewLogger()
	redis.SetLogger(logger)

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Queues: map[string]int{
				QueueCritical: 10,
				QueueDefault:  5,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				log.Error().Err(err).Str("type", task.Type()).
					Bytes("payload", task.Payload()).Msg("process task failed")
			}),
			Logger:          logger,
			ShutdownTimeout: 10 * time.Second,
		},
	)

	// 创建Redis客户端（用于Pub/Sub）
	redisClient := redis.NewClient(&redis.Options{
		Addr:     redisOpt.Addr,
		Password: redisOpt.Password,
		DB:       redisOpt.DB,
	})

	return &RedisTaskProcessor{
		server:      server,
		store:       store,
		redisClient: redisClient,
	}
}

// NewTestTaskProcessor 创建用于测试的处理器实例（不需要Redis连接）
func NewTestTaskProcessor(store db.Store) *RedisTaskProcessor {
	return &RedisTaskProcessor{
		store: store,
	}
}

func (processor *RedisTaskProcessor) Start() error {
	mux := asynq.NewServeMux()

	// 注册任务处理器
	mux.HandleFunc(TaskSendNotification, processor.ProcessTaskSendNotification)
	mux.HandleFunc(TaskExpireOffer, processor.ProcessTaskExpireOffer)

	return processor.server.Start(mux)
}

func (processor *RedisTaskProcessor) Shutdown() {
	processor.server.Shutdown()
}
