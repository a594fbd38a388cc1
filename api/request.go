package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	db "github.com/sunidhi090894/FoodShare-sub000/db/sqlc"
	"github.com/sunidhi090894/FoodShare-sub000/token"
	"github.com/sunidhi090894/FoodShare-sub000/websocket"
	"github.com/sunidhi090894/FoodShare-sub000/worker"
)

type requestResponse struct {
	ID             int64     `json:"id"`
	OfferID        int64     `json:"offer_id"`
	OrganizationID int64     `json:"organization_id"`
	Status         string    `json:"status"`
	Message        string    `json:"message"`
	CreatedAt      time.Time `json:"created_at"`
}

func newRequestResponse(request db.FoodRequest) requestResponse {
	return requestResponse{
		ID:             request.ID,
		OfferID:        request.OfferID,
		OrganizationID: request.OrganizationID,
		Status:         request.Status,
		Message:        request.Message,
		CreatedAt:      request.CreatedAt,
	}
}

type createFoodRequestRequest struct {
	Message string `json:"message" binding:"max=500"`
}

// createFoodRequest godoc
// @Summary 申请领取余量
// @Description 已审核机构对可用的余量发布提交领取申请
// @Tags 领取申请
// @Accept json
// @Produce json
// @Param id path int true "发布 ID"
// @Param request body createFoodRequestRequest true "申请留言"
// @Success 200 {object} requestResponse
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Failure 403 {object} ErrorResponse "机构未登记或未通过审核"
// @Failure 404 {object} ErrorResponse "发布不存在"
// @Failure 409 {object} ErrorResponse "发布不可申请或已申请过"
// @Failure 500 {object} ErrorResponse "服务器内部错误"
// @Router /v1/offers/{id}/requests [post]
// @Security BearerAuth
func (server *Server) createFoodRequest(ctx *gin.Context) {
	offerID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req createFoodRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	org, err := server.store.GetOrganizationByOwner(ctx, authPayload.UserID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusForbidden, errorResponse(errors.New("no organization registered for this user")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	if !org.IsVerified {
		ctx.JSON(http.StatusForbidden, errorResponse(errors.New("organization is not verified yet")))
		return
	}

	offer, err := server.store.GetSurplusOffer(ctx, offerID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("offer not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	if offer.Status != "available" {
		ctx.JSON(http.StatusConflict, errorResponse(errors.New("offer is not available for requests")))
		return
	}

	request, err := server.store.CreateFoodRequest(ctx, db.CreateFoodRequestParams{
		OfferID:        offer.ID,
		OrganizationID: org.ID,
		Message:        req.Message,
	})
	if err != nil {
		if db.ErrorCode(err) == db.UniqueViolation {
			ctx.JSON(http.StatusConflict, errorResponse(errors.New("organization already requested this offer")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	server.notifyUser(ctx, offer.DonorID, "request", "收到新的领取申请",
		org.Name+" 申请领取「"+offer.Title+"」", "food_request", request.ID)

	ctx.JSON(http.StatusOK, newRequestResponse(request))
}

type listMyRequestsRequest struct {
	Limit  int32 `form:"limit"`
	Offset int32 `form:"offset" binding:"min=0"`
}

// listMyRequests godoc
// @Summary 本机构的申请列表
// @Tags 领取申请
// @Produce json
// @Param limit query int false "每页数量（默认 20，最大 100）"
// @Param offset query int false "偏移量"
// @Success 200 {array} requestResponse
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Failure 403 {object} ErrorResponse "机构未登记"
// @Failure 500 {object} ErrorResponse "服务器内部错误"
// @Router /v1/requests [get]
// @Security BearerAuth
func (server *Server) listMyRequests(ctx *gin.Context) {
	var req listMyRequestsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	org, err := server.store.GetOrganizationByOwner(ctx, authPayload.UserID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusForbidden, errorResponse(errors.New("no organization registered for this user")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	requests, err := server.store.ListRequestsByOrganization(ctx, db.ListRequestsByOrganizationParams{
		OrganizationID: org.ID,
		Limit:          normalizePageLimit(req.Limit),
		Offset:         req.Offset,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	rsp := make([]requestResponse, 0, len(requests))
	for _, request := range requests {
		rsp = append(rsp, newRequestResponse(request))
	}

	ctx.JSON(http.StatusOK, rsp)
}

type approveRequestResponse struct {
	Request  requestResponse  `json:"request"`
	Offer    offerResponse    `json:"offer"`
	Match    matchRecord      `json:"match"`
	Delivery deliveryResponse `json:"delivery"`
}

type matchRecord struct {
	ID             int64   `json:"id"`
	OfferID        int64   `json:"offer_id"`
	OrganizationID int64   `json:"organization_id"`
	RequestID      int64   `json:"request_id"`
	Score          int32   `json:"score"`
	DistanceScore  float64 `json:"distance_score"`
	TimingScore    float64 `json:"timing_score"`
	QuantityScore  float64 `json:"quantity_score"`
}

// approveRequest godoc
// @Summary 批准领取申请
// @Description 捐赠方批准申请：记录匹配评分、创建配送单、驳回其余待处理申请，并向志愿者广播新配送任务
// @Tags 领取申请
// @Produce json
// @Param id path int true "申请 ID"
// @Success 200 {object} approveRequestResponse
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Failure 403 {object} ErrorResponse "无权操作他人发布的申请"
// @Failure 404 {object} ErrorResponse "申请不存在"
// @Failure 409 {object} ErrorResponse "申请或发布状态不允许批准"
// @Failure 500 {object} ErrorResponse "服务器内部错误"
// @Router /v1/requests/{id}/approve [post]
// @Security BearerAuth
func (server *Server) approveRequest(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	request, err := server.store.GetFoodRequest(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("request not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	offer, err := server.store.GetSurplusOffer(ctx, request.OfferID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	if offer.DonorID != authPayload.UserID {
		ctx.JSON(http.StatusForbidden, errorResponse(errors.New("offer doesn't belong to the authenticated user")))
		return
	}

	result, err := server.store.ConfirmMatchTx(ctx, db.ConfirmMatchTxParams{
		RequestID: request.ID,
		Now:       time.Now(),
	})
	if err != nil {
		switch {
		case errors.Is(err, db.ErrRequestNotPending),
			errors.Is(err, db.ErrOfferUnavailable),
			errors.Is(err, db.ErrOfferExpired):
			ctx.JSON(http.StatusConflict, errorResponse(err))
		case errors.Is(err, db.ErrRecordNotFound):
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("request not found")))
		default:
			ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		}
		return
	}

	RecordMatchConfirmed()

	server.notifyUser(ctx, result.Organization.OwnerID, "match", "领取申请已批准",
		"「"+result.Offer.Title+"」的领取申请已批准，等待志愿者配送", "match", result.Match.ID)

	server.broadcastDelivery(ctx, result.Delivery)

	ctx.JSON(http.StatusOK, approveRequestResponse{
		Request: newRequestResponse(result.Request),
		Offer:   newOfferResponse(result.Offer),
		Match: matchRecord{
			ID:             result.Match.ID,
			OfferID:        result.Match.OfferID,
			OrganizationID: result.Match.OrganizationID,
			RequestID:      result.Match.RequestID,
			Score:          result.Match.Score,
			DistanceScore:  result.Match.DistanceScore,
			TimingScore:    result.Match.TimingScore,
			QuantityScore:  result.Match.QuantityScore,
		},
		Delivery: newDeliveryResponse(result.Delivery),
	})
}

// rejectRequest godoc
// @Summary 驳回领取申请
// @Tags 领取申请
// @Produce json
// @Param id path int true "申请 ID"
// @Success 200 {object} requestResponse
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Failure 403 {object} ErrorResponse "无权操作他人发布的申请"
// @Failure 404 {object} ErrorResponse "申请不存在"
// @Failure 409 {object} ErrorResponse "申请不在待处理状态"
// @Failure 500 {object} ErrorResponse "服务器内部错误"
// @Router /v1/requests/{id}/reject [post]
// @Security BearerAuth
func (server *Server) rejectRequest(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	request, err := server.store.GetFoodRequest(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("request not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	offer, err := server.store.GetSurplusOffer(ctx, request.OfferID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	if offer.DonorID != authPayload.UserID {
		ctx.JSON(http.StatusForbidden, errorResponse(errors.New("offer doesn't belong to the authenticated user")))
		return
	}

	if request.Status != "pending" {
		ctx.JSON(http.StatusConflict, errorResponse(errors.New("request is not pending")))
		return
	}

	updated, err := server.store.UpdateFoodRequestStatus(ctx, db.UpdateFoodRequestStatusParams{
		ID:     request.ID,
		Status: "rejected",
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	org, err := server.store.GetOrganization(ctx, request.OrganizationID)
	if err == nil {
		server.notifyUser(ctx, org.OwnerID, "request", "领取申请被驳回",
			"「"+offer.Title+"」的领取申请未通过", "food_request", request.ID)
	}

	ctx.JSON(http.StatusOK, newRequestResponse(updated))
}

// notifyUser 通过异步任务投递站内通知，失败只记日志
func (server *Server) notifyUser(ctx *gin.Context, userID int64, notifType, title, content, relatedType string, relatedID int64) {
	if server.taskDistributor == nil {
		return
	}

	err := server.taskDistributor.DistributeTaskSendNotification(
		ctx,
		&worker.SendNotificationPayload{
			UserID:      userID,
			Type:        notifType,
			Title:       title,
			Content:     content,
			RelatedType: relatedType,
			RelatedID:   relatedID,
		},
		asynq.Queue(worker.QueueCritical),
	)
	if err != nil {
		LogWithRequestID(ctx).Warn().Err(err).
			Int64("user_id", userID).
			Str("type", notifType).
			Msg("failed to distribute notification task")
	}
}

// broadcastDelivery 向在线志愿者广播新的配送任务
func (server *Server) broadcastDelivery(ctx *gin.Context, delivery db.Delivery) {
	if server.wsPubSub == nil {
		return
	}

	data, err := json.Marshal(newDeliveryResponse(delivery))
	if err != nil {
		LogWithRequestID(ctx).Error().Err(err).Msg("failed to marshal delivery broadcast")
		return
	}

	err = server.wsPubSub.BroadcastVolunteers(ctx, websocket.Message{
		Type:      "delivery",
		Data:      data,
		Timestamp: time.Now(),
	})
	if err != nil {
		LogWithRequestID(ctx).Warn().Err(err).
			Int64("delivery_id", delivery.ID).
			Msg("failed to broadcast delivery to volunteers")
	}
}
