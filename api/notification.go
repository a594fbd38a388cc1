package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	gorillaws "github.com/gorilla/websocket"
	db "github.com/sunidhi090894/FoodShare-sub000/db/sqlc"
	"github.com/sunidhi090894/FoodShare-sub000/token"
	"github.com/sunidhi090894/FoodShare-sub000/util"
	"github.com/sunidhi090894/FoodShare-sub000/websocket"
)

type notificationResponse struct {
	ID          int64          `json:"id"`
	UserID      int64          `json:"user_id"`
	Type        string         `json:"type"`
	Title       string         `json:"title"`
	Content     string         `json:"content"`
	RelatedType *string        `json:"related_type,omitempty"`
	RelatedID   *int64         `json:"related_id,omitempty"`
	ExtraData   map[string]any `json:"extra_data,omitempty"`
	IsRead      bool           `json:"is_read"`
	CreatedAt   time.Time      `json:"created_at"`
}

func newNotificationResponse(n db.Notification) notificationResponse {
	rsp := notificationResponse{
		ID:        n.ID,
		UserID:    n.UserID,
		Type:      n.Type,
		Title:     n.Title,
		Content:   n.Content,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
	if n.RelatedType.Valid {
		rsp.RelatedType = &n.RelatedType.String
	}
	if n.RelatedID.Valid {
		rsp.RelatedID = &n.RelatedID.Int64
	}
	if len(n.ExtraData) > 0 {
		var extra map[string]any
		if err := json.Unmarshal(n.ExtraData, &extra); err == nil {
			rsp.ExtraData = extra
		}
	}
	return rsp
}

type listNotificationsRequest struct {
	Limit  int32 `form:"limit"`
	Offset int32 `form:"offset" binding:"min=0"`
}

// listNotifications godoc
// @Summary 通知列表
// @Tags 通知
// @Produce json
// @Param limit query int false "每页数量（默认 20，最大 100）"
// @Param offset query int false "偏移量"
// @Success 200 {array} notificationResponse
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Failure 500 {object} ErrorResponse "服务器内部错误"
// @Router /v1/notifications [get]
// @Security BearerAuth
func (server *Server) listNotifications(ctx *gin.Context) {
	var req listNotificationsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	notifications, err := server.store.ListUserNotifications(ctx, db.ListUserNotificationsParams{
		UserID: authPayload.UserID,
		Limit:  normalizePageLimit(req.Limit),
		Offset: req.Offset,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	rsp := make([]notificationResponse, 0, len(notifications))
	for _, n := range notifications {
		rsp = append(rsp, newNotificationResponse(n))
	}

	ctx.JSON(http.StatusOK, rsp)
}

type unreadCountResponse struct {
	Count int64 `json:"count"`
}

// getUnreadCount godoc
// @Summary 未读通知数
// @Tags 通知
// @Produce json
// @Success 200 {object} unreadCountResponse
// @Failure 500 {object} ErrorResponse "服务器内部错误"
// @Router /v1/notifications/unread-count [get]
// @Security BearerAuth
func (server *Server) getUnreadCount(ctx *gin.Context) {
	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	count, err := server.store.CountUnreadNotifications(ctx, authPayload.UserID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, unreadCountResponse{Count: count})
}

// markNotificationRead godoc
// @Summary 标记通知已读
// @Tags 通知
// @Produce json
// @Param id path int true "通知 ID"
// @Success 200 {object} notificationResponse
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Failure 404 {object} ErrorResponse "通知不存在"
// @Failure 500 {object} ErrorResponse "服务器内部错误"
// @Router /v1/notifications/{id}/read [patch]
// @Security BearerAuth
func (server *Server) markNotificationRead(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	notification, err := server.store.MarkNotificationRead(ctx, db.MarkNotificationReadParams{
		ID:     id,
		UserID: authPayload.UserID,
	})
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("notification not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, newNotificationResponse(notification))
}

// markAllNotificationsRead godoc
// @Summary 全部标记已读
// @Tags 通知
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 500 {object} ErrorResponse "服务器内部错误"
// @Router /v1/notifications/read-all [patch]
// @Security BearerAuth
func (server *Server) markAllNotificationsRead(ctx *gin.Context) {
	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	if err := server.store.MarkAllNotificationsRead(ctx, authPayload.UserID); err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, MessageResponse{Message: "all notifications marked as read"})
}

// ==================== WebSocket ====================

var wsUpgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// roleToClientRole 平台角色映射到 WebSocket 客户端角色
func roleToClientRole(role string) websocket.ClientRole {
	switch role {
	case util.VolunteerRole:
		return websocket.ClientRoleVolunteer
	case util.RecipientRole:
		return websocket.ClientRoleOrganization
	case util.DonorRole:
		return websocket.ClientRoleDonor
	default:
		return websocket.ClientRoleAdmin
	}
}

// handleWebSocket godoc
// @Summary WebSocket 实时推送
// @Description 升级为 WebSocket 连接，接收站内通知与配送任务广播（token 可通过 query 参数传递）
// @Tags 通知
// @Param token query string false "访问令牌"
// @Success 101 {string} string "Switching Protocols"
// @Failure 401 {object} ErrorResponse "未授权"
// @Router /v1/ws [get]
// @Security BearerAuth
func (server *Server) handleWebSocket(ctx *gin.Context) {
	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	user, err := server.store.GetUser(ctx, authPayload.UserID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusUnauthorized, errorResponse(errors.New("user not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	conn, err := wsUpgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		LogWithRequestID(ctx).Error().Err(err).Msg("failed to upgrade websocket connection")
		return
	}

	info := websocket.ClientInfo{
		UserID: user.ID,
		Role:   roleToClientRole(user.Role),
	}

	client := websocket.NewClient(server.wsHub, conn, info)
	server.wsHub.Register(client)

	UpdateWSMetrics(string(info.Role), server.wsHub.GetOnlineCountByRole(info.Role))

	go client.WritePump()
	go client.ReadPump()
}
