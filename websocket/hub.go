package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Message 通过WebSocket发送的消息结构
type Message struct {
	Type      string          `json:"type"`      // 消息类型：notification/delivery/ping/pong
	Data      json.RawMessage `json:"data"`      // 消息数据
	Timestamp time.Time       `json:"timestamp"` // 消息时间戳
}

// ClientRole 客户端连接角色
type ClientRole string

const (
	ClientRoleVolunteer    ClientRole = "volunteer"    // 志愿者
	ClientRoleOrganization ClientRole = "organization" // 受赠机构
	ClientRoleDonor        ClientRole = "donor"        // 捐赠方
	ClientRoleAdmin        ClientRole = "admin"        // 平台管理员
)

// ClientInfo 客户端信息
type ClientInfo struct {
	UserID int64      // 用户ID
	Role   ClientRole // 客户端角色
}

// Hub 管理所有WebSocket连接，按用户ID索引
type Hub struct {
	clients map[int64]*Client // key: user_id

	// 注册/注销通道
	register   chan *Client
	unregister chan *Client

	// 广播消息
	broadcast chan BroadcastMessage

	mu     sync.RWMutex
	ctx    context.Context
	cancel context.CancelFunc
}

// BroadcastMessage 广播消息
type BroadcastMessage struct {
	Role    ClientRole // 目标角色，空表示不过滤
	UserID  int64      // 目标用户ID，0表示广播给所有匹配角色的客户端
	Message Message    // 消息内容
}

// NewHub 创建新的Hub
func NewHub(ctx context.Context) *Hub {
	ctx, cancel := context.WithCancel(ctx)
	return &Hub{
		clients:    make(map[int64]*Client),
		register:   make(chan *Client, 10),
		unregister: make(chan *Client, 10),
		broadcast:  make(chan BroadcastMessage, 100),
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Run 启动Hub，处理注册、注销和广播
func (h *Hub) Run() {
	log.Info().Msg("WebSocket Hub started")
	defer log.Info().Msg("WebSocket Hub stopped")

	for {
		select {
		case <-h.ctx.Done():
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case msg := <-h.broadcast:
			h.broadcastMessage(msg)
		}
	}
}

// registerClient 注册客户端，同一用户的旧连接会被顶掉
func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if old, exists := h.clients[client.info.UserID]; exists {
		close(old.done)
	}
	h.clients[client.info.UserID] = client
	log.Info().
		Int64("user_id", client.info.UserID).
		Str("role", string(client.info.Role)).
		Msg("client connected via WebSocket")
}

// unregisterClient 注销客户端。
// 只有当 map 中的 client 就是当前要注销的 client 时才删除，
// 避免新连接替换旧连接后，旧连接注销时删除了新连接。
func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if existing, exists := h.clients[client.info.UserID]; exists && existing == client {
		delete(h.clients, client.info.UserID)
		client.closeOnce.Do(func() {
			close(client.send)
		})
		log.Info().
			Int64("user_id", client.info.UserID).
			Str("role", string(client.info.Role)).
			Msg("client disconnected from WebSocket")
	}
}

// broadcastMessage 广播消息
func (h *Hub) broadcastMessage(msg BroadcastMessage) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if msg.UserID != 0 {
		if client, exists := h.clients[msg.UserID]; exists {
			h.trySend(client, msg.Message)
		}
		return
	}

	for _, client := range h.clients {
		if msg.Role != "" && client.info.Role != msg.Role {
			continue
		}
		h.trySend(client, msg.Message)
	}
}

func (h *Hub) trySend(client *Client, msg Message) {
	select {
	case client.send <- msg:
	default:
		log.Warn().
			Int64("user_id", client.info.UserID).
			Msg("client send buffer full, dropping message")
	}
}

// Register 注册客户端到Hub
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister 从Hub注销客户端
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// Broadcast 广播消息
func (h *Hub) Broadcast(msg BroadcastMessage) {
	select {
	case h.broadcast <- msg:
	default:
		log.Warn().Msg("Broadcast channel full, dropping message")
	}
}

// SendToUser 发送消息给特定用户
func (h *Hub) SendToUser(userID int64, msg Message) {
	h.Broadcast(BroadcastMessage{
		UserID:  userID,
		Message: msg,
	})
}

// BroadcastToVolunteers 广播消息给所有在线志愿者（新配送单可认领时使用）
func (h *Hub) BroadcastToVolunteers(msg Message) {
	h.Broadcast(BroadcastMessage{
		Role:    ClientRoleVolunteer,
		UserID:  0,
		Message: msg,
	})
}

// IsUserOnline 检查用户是否在线
func (h *Hub) IsUserOnline(userID int64) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, exists := h.clients[userID]
	return exists
}

// GetOnlineCount 获取在线连接数量
func (h *Hub) GetOnlineCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// GetOnlineCountByRole 获取指定角色的在线连接数量
func (h *Hub) GetOnlineCountByRole(role ClientRole) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	count := 0
	for _, client := range h.clients {
		if client.info.Role == role {
			count++
		}
	}
	return count
}

// Shutdown 关闭Hub
func (h *Hub) Shutdown() {
	log.Info().Msg("Shutting down WebSocket Hub")
	h.cancel()

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, client := range h.clients {
		client.closeOnce.Do(func() {
			close(client.send)
		})
	}
}
