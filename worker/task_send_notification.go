package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/zerolog/log"
	db "github.com/sunidhi090894/FoodShare-sub000/db/sqlc"
)

const (
	TaskSendNotification = "notification:send"
)

// SendNotificationPayload 发送通知任务载荷
type SendNotificationPayload struct {
	UserID      int64          `json:"user_id"`
	Type        string         `json:"type"` // offer/request/match/delivery/system
	Title       string         `json:"title"`
	Content     string         `json:"content"`
	RelatedType string         `json:"related_type,omitempty"` // offer/request/match/delivery
	RelatedID   int64          `json:"related_id,omitempty"`
	ExtraData   map[string]any `json:"extra_data,omitempty"`
	ExpiresAt   *time.Time     `json:"expires_at,omitempty"`
}

// DistributeTaskSendNotification 分发发送通知任务
func (distributor *RedisTaskDistributor) DistributeTaskSendNotification(
	ctx context.Context,
	payload *SendNotificationPayload,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	task := asynq.NewTask(TaskSendNotification, jsonPayload, opts...)
	info, err := distributor.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueue task: %w", err)
	}

	log.Debug().
		Str("type", task.Type()).
		Str("queue", info.Queue).
		Int64("user_id", payload.UserID).
		Str("notification_type", payload.Type).
		Msg("enqueued notification task")

	return nil
}

// ProcessTaskSendNotification 处理发送通知任务
func (processor *RedisTaskProcessor) ProcessTaskSendNotification(ctx context.Context, task *asynq.Task) error {
	var payload SendNotificationPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	log.Info().
		Int64("user_id", payload.UserID).
		Str("type", payload.Type).
		Str("title", payload.Title).
		Msg("processing send notification task")

	// 构建extra_data
	var extraDataJSON []byte
	if payload.ExtraData != nil {
		var err error
		extraDataJSON, err = json.Marshal(payload.ExtraData)
		if err != nil {
			return fmt.Errorf("marshal extra_data: %w", err)
		}
	}

	// 创建通知记录
	createParams := db.CreateNotificationParams{
		UserID:  payload.UserID,
		Type:    payload.Type,
		Title:   payload.Title,
		Content: payload.Content,
	}

	if payload.RelatedType != "" {
		createParams.RelatedType = pgtype.Text{String: payload.RelatedType, Valid: true}
	}

	if payload.RelatedID > 0 {
		createParams.RelatedID = pgtype.Int8{Int64: payload.RelatedID, Valid: true}
	}

	if len(extraDataJSON) > 0 {
		createParams.ExtraData = extraDataJSON
	}

	if payload.ExpiresAt != nil {
		createParams.ExpiresAt = pgtype.Timestamptz{Time: *payload.ExpiresAt, Valid: true}
	}

	notification, err := processor.store.CreateNotification(ctx, createParams)
	if err != nil {
		return fmt.Errorf("create notification: %w", err)
	}

	log.Info().
		Int64("notification_id", notification.ID).
		Int64("user_id", payload.UserID).
		Str("type", payload.Type).
		Msg("notification created successfully")

	// WebSocket实时推送：通过Redis Pub/Sub通知API服务器
	if err := processor.tryWebSocketPush(ctx, notification); err != nil {
		// 推送失败不影响主流程，通知已经存入数据库
		log.Error().Err(err).Int64("notification_id", notification.ID).Msg("WebSocket push failed (non-critical)")
	}

	return nil
}

// tryWebSocketPush 尝试通过WebSocket推送通知给在线用户
func (processor *RedisTaskProcessor) tryWebSocketPush(ctx context.Context, notification db.Notification) error {
	if processor.redisClient == nil {
		return nil
	}

	notificationData, _ := json.Marshal(map[string]any{
		"id":         notification.ID,
		"user_id":    notification.UserID,
		"type":       notification.Type,
		"title":      notification.Title,
		"content":    notification.Content,
		"is_read":    notification.IsRead,
		"created_at": notification.CreatedAt,
	})

	wsMessage := map[string]any{
		"type":      "notification",
		"data":      json.RawMessage(notificationData),
		"timestamp": time.Now(),
	}

	wsMessageJSON, _ := json.Marshal(wsMessage)

	// 按用户维度的频道发布，由持有该用户连接的API实例转发
	channel := fmt.Sprintf("notification:user:%d", notification.UserID)
	if err := processor.redisClient.Publish(ctx, channel, wsMessageJSON).Err(); err != nil {
		return fmt.Errorf("publish to redis: %w", err)
	}

	log.Debug().Int64("user_id", notification.UserID).Msg("published notification push request to Redis")

	// 标记已推送
	if err := processor.store.MarkNotificationPushed(ctx, notification.ID); err != nil {
		log.Error().Err(err).Int64("notification_id", notification.ID).Msg("mark as pushed failed")
	}

	return nil
}
