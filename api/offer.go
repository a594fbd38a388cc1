package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/sunidhi090894/FoodShare-sub000/algorithm"
	db "github.com/sunidhi090894/FoodShare-sub000/db/sqlc"
	"github.com/sunidhi090894/FoodShare-sub000/token"
	"github.com/sunidhi090894/FoodShare-sub000/val"
	"github.com/sunidhi090894/FoodShare-sub000/worker"
)

type offerResponse struct {
	ID            int64     `json:"id"`
	DonorID       int64     `json:"donor_id"`
	Title         string    `json:"title"`
	Category      string    `json:"category"`
	Quantity      float64   `json:"quantity"`
	Unit          string    `json:"unit"`
	PickupAddress string    `json:"pickup_address"`
	Longitude     float64   `json:"longitude"`
	Latitude      float64   `json:"latitude"`
	ExpiresAt     time.Time `json:"expires_at"`
	Status        string    `json:"status"`
	Note          string    `json:"note"`
	CreatedAt     time.Time `json:"created_at"`
}

func newOfferResponse(offer db.SurplusOffer) offerResponse {
	return offerResponse{
		ID:            offer.ID,
		DonorID:       offer.DonorID,
		Title:         offer.Title,
		Category:      offer.Category,
		Quantity:      offer.Quantity,
		Unit:          offer.Unit,
		PickupAddress: offer.PickupAddress,
		Longitude:     offer.Longitude,
		Latitude:      offer.Latitude,
		ExpiresAt:     offer.ExpiresAt,
		Status:        offer.Status,
		Note:          offer.Note,
		CreatedAt:     offer.CreatedAt,
	}
}

type createOfferRequest struct {
	Title         string    `json:"title" binding:"required,min=2,max=128"`
	Category      string    `json:"category" binding:"required,min=1,max=32"`
	Quantity      float64   `json:"quantity" binding:"required,gt=0"`
	Unit          string    `json:"unit" binding:"required,min=1,max=16"`
	PickupAddress string    `json:"pickup_address" binding:"required,min=4,max=255"`
	Longitude     float64   `json:"longitude" binding:"required"`
	Latitude      float64   `json:"latitude" binding:"required"`
	ExpiresAt     time.Time `json:"expires_at" binding:"required"`
	Note          string    `json:"note" binding:"max=500"`
}

// createOffer godoc
// @Summary 发布余量食物
// @Description 捐赠方发布一条余量食物信息，到期后自动过期
// @Tags 余量发布
// @Accept json
// @Produce json
// @Param request body createOfferRequest true "发布内容"
// @Success 200 {object} offerResponse
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Failure 500 {object} ErrorResponse "服务器内部错误"
// @Router /v1/offers [post]
// @Security BearerAuth
func (server *Server) createOffer(ctx *gin.Context) {
	var req createOfferRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if err := val.ValidateCoordinates(req.Longitude, req.Latitude); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if !req.ExpiresAt.After(time.Now()) {
		ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("expires_at must be in the future")))
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	offer, err := server.store.CreateSurplusOffer(ctx, db.CreateSurplusOfferParams{
		DonorID:       authPayload.UserID,
		Title:         req.Title,
		Category:      req.Category,
		Quantity:      req.Quantity,
		Unit:          req.Unit,
		PickupAddress: req.PickupAddress,
		Longitude:     req.Longitude,
		Latitude:      req.Latitude,
		ExpiresAt:     req.ExpiresAt,
		Note:          req.Note,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	RecordOfferCreated()

	// 定时任务在到期时间触发过期处理，失败不影响发布
	if server.taskDistributor != nil {
		err = server.taskDistributor.DistributeTaskExpireOffer(
			ctx,
			&worker.ExpireOfferPayload{OfferID: offer.ID},
			asynq.ProcessAt(offer.ExpiresAt),
			asynq.Queue(worker.QueueDefault),
		)
		if err != nil {
			LogWithRequestID(ctx).Warn().Err(err).
				Int64("offer_id", offer.ID).
				Msg("failed to schedule offer expiration task")
		}
	}

	ctx.JSON(http.StatusOK, newOfferResponse(offer))
}

type listOffersRequest struct {
	Status   string `form:"status"`
	Category string `form:"category"`
	Mine     bool   `form:"mine"`
	Limit    int32  `form:"limit"`
	Offset   int32  `form:"offset" binding:"min=0"`
}

// listOffers godoc
// @Summary 余量发布列表
// @Description 分页查询余量发布，支持按状态/分类过滤；mine=true 时仅返回当前捐赠方自己的发布
// @Tags 余量发布
// @Produce json
// @Param status query string false "状态过滤"
// @Param category query string false "分类过滤"
// @Param mine query bool false "仅查询我的发布"
// @Param limit query int false "每页数量（默认 20，最大 100）"
// @Param offset query int false "偏移量"
// @Success 200 {array} offerResponse
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Failure 500 {object} ErrorResponse "服务器内部错误"
// @Router /v1/offers [get]
// @Security BearerAuth
func (server *Server) listOffers(ctx *gin.Context) {
	var req listOffersRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	limit := normalizePageLimit(req.Limit)
	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	var offers []db.SurplusOffer
	var err error

	if req.Mine {
		offers, err = server.store.ListOffersByDonor(ctx, db.ListOffersByDonorParams{
			DonorID: authPayload.UserID,
			Limit:   limit,
			Offset:  req.Offset,
		})
	} else {
		params := db.ListSurplusOffersParams{
			Limit:  limit,
			Offset: req.Offset,
		}
		if req.Status != "" {
			params.Status = pgtype.Text{String: req.Status, Valid: true}
		}
		if req.Category != "" {
			params.Category = pgtype.Text{String: req.Category, Valid: true}
		}
		offers, err = server.store.ListSurplusOffers(ctx, params)
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	rsp := make([]offerResponse, 0, len(offers))
	for _, offer := range offers {
		rsp = append(rsp, newOfferResponse(offer))
	}

	ctx.JSON(http.StatusOK, rsp)
}

// getOffer godoc
// @Summary 余量发布详情
// @Tags 余量发布
// @Produce json
// @Param id path int true "发布 ID"
// @Success 200 {object} offerResponse
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Failure 404 {object} ErrorResponse "发布不存在"
// @Failure 500 {object} ErrorResponse "服务器内部错误"
// @Router /v1/offers/{id} [get]
// @Security BearerAuth
func (server *Server) getOffer(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	offer, err := server.store.GetSurplusOffer(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("offer not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, newOfferResponse(offer))
}

// cancelOffer godoc
// @Summary 取消余量发布
// @Description 捐赠方取消自己的发布，所有待处理申请同步取消
// @Tags 余量发布
// @Produce json
// @Param id path int true "发布 ID"
// @Success 200 {object} offerResponse
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Failure 403 {object} ErrorResponse "无权操作他人发布"
// @Failure 404 {object} ErrorResponse "发布不存在"
// @Failure 409 {object} ErrorResponse "当前状态不可取消"
// @Failure 500 {object} ErrorResponse "服务器内部错误"
// @Router /v1/offers/{id}/cancel [post]
// @Security BearerAuth
func (server *Server) cancelOffer(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	offer, err := server.store.GetSurplusOffer(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("offer not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	if offer.DonorID != authPayload.UserID {
		ctx.JSON(http.StatusForbidden, errorResponse(errors.New("offer doesn't belong to the authenticated user")))
		return
	}

	if offer.Status != "available" && offer.Status != "matched" {
		ctx.JSON(http.StatusConflict, errorResponse(errors.New("offer cannot be cancelled in its current status")))
		return
	}

	updated, err := server.store.UpdateSurplusOfferStatus(ctx, db.UpdateSurplusOfferStatusParams{
		ID:     offer.ID,
		Status: "cancelled",
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	if err := server.store.CancelPendingRequestsForOffer(ctx, offer.ID); err != nil {
		LogWithRequestID(ctx).Error().Err(err).
			Int64("offer_id", offer.ID).
			Msg("failed to cancel pending requests for offer")
	}

	ctx.JSON(http.StatusOK, newOfferResponse(updated))
}

type matchEntry struct {
	Organization  organizationResponse `json:"organization"`
	Score         int                  `json:"score"`
	DistanceScore float64              `json:"distance_score"`
	TimingScore   float64              `json:"timing_score"`
	QuantityScore float64              `json:"quantity_score"`
}

type findMatchesResponse struct {
	OfferID int64        `json:"offer_id"`
	Matches []matchEntry `json:"matches"`
}

// findMatches godoc
// @Summary 推荐匹配机构
// @Description 基于距离、时效、容量的加权评分为发布推荐最多 5 个已审核机构
// @Tags 余量发布
// @Produce json
// @Param id path int true "发布 ID"
// @Success 200 {object} findMatchesResponse
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Failure 403 {object} ErrorResponse "无权查看他人发布的匹配"
// @Failure 404 {object} ErrorResponse "发布不存在"
// @Failure 500 {object} ErrorResponse "服务器内部错误"
// @Router /v1/offers/{id}/matches [get]
// @Security BearerAuth
func (server *Server) findMatches(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	offer, err := server.store.GetSurplusOffer(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("offer not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	if offer.DonorID != authPayload.UserID {
		ctx.JSON(http.StatusForbidden, errorResponse(errors.New("offer doesn't belong to the authenticated user")))
		return
	}

	orgs, err := server.store.ListVerifiedOrganizations(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	surplus := algorithm.SurplusCandidate{
		OfferID: offer.ID,
		Location: algorithm.Location{
			Longitude: offer.Longitude,
			Latitude:  offer.Latitude,
		},
		ExpiresAt: offer.ExpiresAt,
		Quantity:  offer.Quantity,
	}

	orgByID := make(map[int64]db.Organization, len(orgs))
	recipients := make([]algorithm.RecipientCandidate, 0, len(orgs))
	for _, org := range orgs {
		orgByID[org.ID] = org
		recipients = append(recipients, algorithm.RecipientCandidate{
			OrganizationID: org.ID,
			Location: algorithm.Location{
				Longitude: org.Longitude,
				Latitude:  org.Latitude,
			},
			Capacity: org.Capacity,
		})
	}

	matcher := algorithm.NewWeightedMatcher(algorithm.DefaultMatchConfig())
	results := matcher.Rank(surplus, recipients, time.Now())

	rsp := findMatchesResponse{
		OfferID: offer.ID,
		Matches: make([]matchEntry, 0, len(results)),
	}
	for _, result := range results {
		rsp.Matches = append(rsp.Matches, matchEntry{
			Organization:  newOrganizationResponse(orgByID[result.Recipient.OrganizationID]),
			Score:         result.Score,
			DistanceScore: result.DistanceScore,
			TimingScore:   result.TimingScore,
			QuantityScore: result.QuantityScore,
		})
	}

	ctx.JSON(http.StatusOK, rsp)
}
