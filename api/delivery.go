package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/sunidhi090894/FoodShare-sub000/algorithm"
	db "github.com/sunidhi090894/FoodShare-sub000/db/sqlc"
	"github.com/sunidhi090894/FoodShare-sub000/token"
)

type deliveryResponse struct {
	ID               int64      `json:"id"`
	OfferID          int64      `json:"offer_id"`
	OrganizationID   int64      `json:"organization_id"`
	MatchID          int64      `json:"match_id"`
	VolunteerID      *int64     `json:"volunteer_id,omitempty"`
	PickupAddress    string     `json:"pickup_address"`
	PickupLongitude  float64    `json:"pickup_longitude"`
	PickupLatitude   float64    `json:"pickup_latitude"`
	DropoffAddress   string     `json:"dropoff_address"`
	DropoffLongitude float64    `json:"dropoff_longitude"`
	DropoffLatitude  float64    `json:"dropoff_latitude"`
	Status           string     `json:"status"`
	DistanceKm       float64    `json:"distance_km"`
	EstimatedMinutes int32      `json:"estimated_minutes"`
	ClaimedAt        *time.Time `json:"claimed_at,omitempty"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

func newDeliveryResponse(delivery db.Delivery) deliveryResponse {
	rsp := deliveryResponse{
		ID:               delivery.ID,
		OfferID:          delivery.OfferID,
		OrganizationID:   delivery.OrganizationID,
		MatchID:          delivery.MatchID,
		PickupAddress:    delivery.PickupAddress,
		PickupLongitude:  delivery.PickupLongitude,
		PickupLatitude:   delivery.PickupLatitude,
		DropoffAddress:   delivery.DropoffAddress,
		DropoffLongitude: delivery.DropoffLongitude,
		DropoffLatitude:  delivery.DropoffLatitude,
		Status:           delivery.Status,
		DistanceKm:       delivery.DistanceKm,
		EstimatedMinutes: delivery.EstimatedMinutes,
		CreatedAt:        delivery.CreatedAt,
	}
	if delivery.VolunteerID.Valid {
		rsp.VolunteerID = &delivery.VolunteerID.Int64
	}
	if delivery.ClaimedAt.Valid {
		rsp.ClaimedAt = &delivery.ClaimedAt.Time
	}
	if delivery.CompletedAt.Valid {
		rsp.CompletedAt = &delivery.CompletedAt.Time
	}
	return rsp
}

type listDeliveriesRequest struct {
	Limit  int32 `form:"limit"`
	Offset int32 `form:"offset" binding:"min=0"`
}

// listAvailableDeliveries godoc
// @Summary 可认领配送单列表
// @Description 志愿者查看待认领的配送任务
// @Tags 配送
// @Produce json
// @Param limit query int false "每页数量（默认 20，最大 100）"
// @Param offset query int false "偏移量"
// @Success 200 {array} deliveryResponse
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Failure 500 {object} ErrorResponse "服务器内部错误"
// @Router /v1/deliveries/available [get]
// @Security BearerAuth
func (server *Server) listAvailableDeliveries(ctx *gin.Context) {
	var req listDeliveriesRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	deliveries, err := server.store.ListAvailableDeliveries(ctx, db.ListAvailableDeliveriesParams{
		Limit:  normalizePageLimit(req.Limit),
		Offset: req.Offset,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	rsp := make([]deliveryResponse, 0, len(deliveries))
	for _, delivery := range deliveries {
		rsp = append(rsp, newDeliveryResponse(delivery))
	}

	ctx.JSON(http.StatusOK, rsp)
}

// listMyDeliveries godoc
// @Summary 我的配送单列表
// @Tags 配送
// @Produce json
// @Param limit query int false "每页数量（默认 20，最大 100）"
// @Param offset query int false "偏移量"
// @Success 200 {array} deliveryResponse
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Failure 500 {object} ErrorResponse "服务器内部错误"
// @Router /v1/deliveries/mine [get]
// @Security BearerAuth
func (server *Server) listMyDeliveries(ctx *gin.Context) {
	var req listDeliveriesRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	deliveries, err := server.store.ListDeliveriesByVolunteer(ctx, db.ListDeliveriesByVolunteerParams{
		VolunteerID: pgtype.Int8{Int64: authPayload.UserID, Valid: true},
		Limit:       normalizePageLimit(req.Limit),
		Offset:      req.Offset,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	rsp := make([]deliveryResponse, 0, len(deliveries))
	for _, delivery := range deliveries {
		rsp = append(rsp, newDeliveryResponse(delivery))
	}

	ctx.JSON(http.StatusOK, rsp)
}

// claimDelivery godoc
// @Summary 认领配送单
// @Description 志愿者认领待配送的任务，先到先得
// @Tags 配送
// @Produce json
// @Param id path int true "配送单 ID"
// @Success 200 {object} deliveryResponse
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Failure 404 {object} ErrorResponse "配送单不存在"
// @Failure 409 {object} ErrorResponse "配送单已被认领"
// @Failure 500 {object} ErrorResponse "服务器内部错误"
// @Router /v1/deliveries/{id}/claim [post]
// @Security BearerAuth
func (server *Server) claimDelivery(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	result, err := server.store.ClaimDeliveryTx(ctx, db.ClaimDeliveryTxParams{
		DeliveryID:  id,
		VolunteerID: authPayload.UserID,
	})
	if err != nil {
		switch {
		case errors.Is(err, db.ErrRecordNotFound):
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("delivery not found")))
		case errors.Is(err, db.ErrDeliveryUnavailable):
			ctx.JSON(http.StatusConflict, errorResponse(err))
		default:
			ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		}
		return
	}

	org, err := server.store.GetOrganization(ctx, result.Delivery.OrganizationID)
	if err == nil {
		server.notifyUser(ctx, org.OwnerID, "delivery", "配送任务已被认领",
			"「"+result.Offer.Title+"」的配送任务已由志愿者认领", "delivery", result.Delivery.ID)
	}

	ctx.JSON(http.StatusOK, newDeliveryResponse(result.Delivery))
}

type updateDeliveryStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=picking delivering completed"`
}

// updateDeliveryStatus godoc
// @Summary 更新配送状态
// @Description 志愿者推进配送流程：assigned→picking→delivering→completed，完成时联动更新发布与申请状态
// @Tags 配送
// @Accept json
// @Produce json
// @Param id path int true "配送单 ID"
// @Param request body updateDeliveryStatusRequest true "目标状态"
// @Success 200 {object} deliveryResponse
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Failure 403 {object} ErrorResponse "非本人的配送单"
// @Failure 404 {object} ErrorResponse "配送单不存在"
// @Failure 409 {object} ErrorResponse "状态流转不合法"
// @Failure 500 {object} ErrorResponse "服务器内部错误"
// @Router /v1/deliveries/{id}/status [post]
// @Security BearerAuth
func (server *Server) updateDeliveryStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req updateDeliveryStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	if req.Status == "completed" {
		result, err := server.store.CompleteDeliveryTx(ctx, db.CompleteDeliveryTxParams{
			DeliveryID:  id,
			VolunteerID: authPayload.UserID,
		})
		if err != nil {
			switch {
			case errors.Is(err, db.ErrRecordNotFound):
				ctx.JSON(http.StatusNotFound, errorResponse(errors.New("delivery not found")))
			case errors.Is(err, db.ErrNotDeliveryOwner):
				ctx.JSON(http.StatusForbidden, errorResponse(err))
			case errors.Is(err, db.ErrDeliveryNotActive):
				ctx.JSON(http.StatusConflict, errorResponse(err))
			default:
				ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
			}
			return
		}

		RecordDeliveryCompleted()

		org, err := server.store.GetOrganization(ctx, result.Delivery.OrganizationID)
		if err == nil {
			server.notifyUser(ctx, org.OwnerID, "delivery", "配送完成",
				"「"+result.Offer.Title+"」已送达", "delivery", result.Delivery.ID)
		}
		server.notifyUser(ctx, result.Offer.DonorID, "delivery", "捐赠已完成",
			"「"+result.Offer.Title+"」已成功送达受赠机构", "delivery", result.Delivery.ID)

		ctx.JSON(http.StatusOK, newDeliveryResponse(result.Delivery))
		return
	}

	delivery, err := server.store.GetDelivery(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("delivery not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	if !delivery.VolunteerID.Valid || delivery.VolunteerID.Int64 != authPayload.UserID {
		ctx.JSON(http.StatusForbidden, errorResponse(errors.New("delivery doesn't belong to the authenticated volunteer")))
		return
	}

	if !isValidDeliveryTransition(delivery.Status, req.Status) {
		ctx.JSON(http.StatusConflict, errorResponse(errors.New("invalid delivery status transition")))
		return
	}

	updated, err := server.store.UpdateDeliveryStatus(ctx, db.UpdateDeliveryStatusParams{
		ID:     delivery.ID,
		Status: req.Status,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, newDeliveryResponse(updated))
}

// isValidDeliveryTransition 校验配送状态流转
func isValidDeliveryTransition(from, to string) bool {
	switch to {
	case "picking":
		return from == "assigned"
	case "delivering":
		return from == "picking"
	default:
		return false
	}
}

type routeStopRequest struct {
	Location struct {
		Longitude float64 `json:"longitude" binding:"required"`
		Latitude  float64 `json:"latitude" binding:"required"`
	} `json:"location" binding:"required"`
	// 透传字段，原样出现在规划结果里（配送单号、地址等）
	Payload any `json:"payload"`
}

type optimizeRouteRequest struct {
	Stops []routeStopRequest `json:"stops" binding:"required,min=1,dive"`
}

type routeStopResponse struct {
	Location struct {
		Longitude float64 `json:"longitude"`
		Latitude  float64 `json:"latitude"`
	} `json:"location"`
	Payload any `json:"payload,omitempty"`
}

type optimizeRouteResponse struct {
	Route            []routeStopResponse `json:"route"`
	TotalDistanceKm  float64             `json:"total_distance"`
	EstimatedMinutes int                 `json:"estimated_time"`
}

// optimizeRoute godoc
// @Summary 配送路线规划
// @Description 贪心最近邻算法规划多点配送顺序，返回总里程和预计耗时
// @Tags 配送
// @Accept json
// @Produce json
// @Param request body optimizeRouteRequest true "途经点列表（第一个为起点）"
// @Success 200 {object} optimizeRouteResponse
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Router /v1/deliveries/route/optimize [post]
// @Security BearerAuth
func (server *Server) optimizeRoute(ctx *gin.Context) {
	var req optimizeRouteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	stops := make([]algorithm.DeliveryStop, 0, len(req.Stops))
	for _, stop := range req.Stops {
		stops = append(stops, algorithm.DeliveryStop{
			Location: algorithm.Location{
				Longitude: stop.Location.Longitude,
				Latitude:  stop.Location.Latitude,
			},
			Payload: stop.Payload,
		})
	}

	result := algorithm.OptimizeRoute(stops)

	rsp := optimizeRouteResponse{
		Route:            make([]routeStopResponse, 0, len(result.Route)),
		TotalDistanceKm:  result.TotalDistanceKm,
		EstimatedMinutes: result.EstimatedMinutes,
	}
	for _, stop := range result.Route {
		var entry routeStopResponse
		entry.Location.Longitude = stop.Location.Longitude
		entry.Location.Latitude = stop.Location.Latitude
		entry.Payload = stop.Payload
		rsp.Route = append(rsp.Route, entry)
	}

	ctx.JSON(http.StatusOK, rsp)
}
