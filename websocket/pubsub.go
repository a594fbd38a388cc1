package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

const (
	// Redis频道前缀
	channelPrefixUser      = "notification:user:" // notification:user:{user_id}
	channelVolunteersBroad = "notification:volunteers"
)

// PubSubManager 管理Redis Pub/Sub，用于跨进程通知推送
type PubSubManager struct {
	redisClient *redis.Client
	hub         *Hub
	ctx         context.Context
	cancel      context.CancelFunc
}

// NewPubSubManager 创建PubSub管理器
func NewPubSubManager(redisAddr string, redisPassword string, hub *Hub) (*PubSubManager, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
	})

	// 测试连接
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())

	manager := &PubSubManager{
		redisClient: client,
		hub:         hub,
		ctx:         ctx,
		cancel:      cancel,
	}

	return manager, nil
}

// Start 启动订阅（监听按用户推送和志愿者广播两类频道）
func (m *PubSubManager) Start() {
	pubsub := m.redisClient.PSubscribe(m.ctx, channelPrefixUser+"*", channelVolunteersBroad)

	go func() {
		defer pubsub.Close()

		log.Info().Msg("WebSocket PubSub started, listening for notification push requests")

		for {
			select {
			case <-m.ctx.Done():
				log.Info().Msg("WebSocket PubSub stopped")
				return
			default:
				msg, err := pubsub.ReceiveMessage(m.ctx)
				if err != nil {
					if m.ctx.Err() != nil {
						return
					}
					log.Error().Err(err).Msg("receive pubsub message failed")
					time.Sleep(time.Second)
					continue
				}

				m.handlePubSubMessage(msg.Channel, msg.Payload)
			}
		}
	}()
}

// Stop 停止订阅
func (m *PubSubManager) Stop() {
	m.cancel()
	m.redisClient.Close()
}

// handlePubSubMessage 处理接收到的消息
func (m *PubSubManager) handlePubSubMessage(channel string, payload string) {
	var wsMessage Message
	if err := json.Unmarshal([]byte(payload), &wsMessage); err != nil {
		log.Error().Err(err).Str("payload", payload).Msg("unmarshal pubsub message failed")
		return
	}

	// 志愿者广播频道：推给所有在线志愿者
	if channel == channelVolunteersBroad {
		m.hub.BroadcastToVolunteers(wsMessage)
		log.Debug().
			Int("volunteer_clients", m.hub.GetOnlineCountByRole(ClientRoleVolunteer)).
			Str("type", wsMessage.Type).
			Msg("broadcasted message to volunteers via WebSocket")
		return
	}

	// 用户频道：notification:user:{user_id}
	userID, err := strconv.ParseInt(strings.TrimPrefix(channel, channelPrefixUser), 10, 64)
	if err != nil {
		log.Warn().Str("channel", channel).Msg("unexpected pubsub channel")
		return
	}

	if m.hub.IsUserOnline(userID) {
		m.hub.SendToUser(userID, wsMessage)
		log.Debug().
			Int64("user_id", userID).
			Str("type", wsMessage.Type).
			Msg("pushed notification to user via WebSocket")
	} else {
		log.Debug().
			Int64("user_id", userID).
			Msg("user offline, skip WebSocket push")
	}
}

// PublishToUser 通过本管理器的Redis连接发布按用户的推送请求
func (m *PubSubManager) PublishToUser(ctx context.Context, userID int64, message Message) error {
	return PublishUserPush(ctx, m.redisClient, userID, message)
}

// BroadcastVolunteers 通过本管理器的Redis连接发布志愿者广播
func (m *PubSubManager) BroadcastVolunteers(ctx context.Context, message Message) error {
	return PublishVolunteerBroadcast(ctx, m.redisClient, message)
}

// PublishUserPush 发布按用户的推送请求（由worker或API调用）
func PublishUserPush(ctx context.Context, redisClient *redis.Client, userID int64, message Message) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return err
	}

	channel := fmt.Sprintf("%s%d", channelPrefixUser, userID)
	return redisClient.Publish(ctx, channel, payload).Err()
}

// PublishVolunteerBroadcast 发布志愿者广播（新配送单可认领时调用）
func PublishVolunteerBroadcast(ctx context.Context, redisClient *redis.Client, message Message) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return err
	}

	return redisClient.Publish(ctx, channelVolunteersBroad, payload).Err()
}
