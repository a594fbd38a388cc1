package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgtype"
	db "github.com/sunidhi090894/FoodShare-sub000/db/sqlc"
	"github.com/sunidhi090894/FoodShare-sub000/token"
	"github.com/sunidhi090894/FoodShare-sub000/val"
)

type organizationResponse struct {
	ID           int64     `json:"id"`
	OwnerID      int64     `json:"owner_id"`
	Name         string    `json:"name"`
	ContactPhone string    `json:"contact_phone"`
	Address      string    `json:"address"`
	Longitude    float64   `json:"longitude"`
	Latitude     float64   `json:"latitude"`
	Capacity     float64   `json:"capacity"`
	IsVerified   bool      `json:"is_verified"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

func newOrganizationResponse(org db.Organization) organizationResponse {
	return organizationResponse{
		ID:           org.ID,
		OwnerID:      org.OwnerID,
		Name:         org.Name,
		ContactPhone: org.ContactPhone,
		Address:      org.Address,
		Longitude:    org.Longitude,
		Latitude:     org.Latitude,
		Capacity:     org.Capacity,
		IsVerified:   org.IsVerified,
		Status:       org.Status,
		CreatedAt:    org.CreatedAt,
	}
}

type createOrganizationRequest struct {
	Name         string  `json:"name" binding:"required,min=2,max=64"`
	ContactPhone string  `json:"contact_phone" binding:"required,validPhone"`
	Address      string  `json:"address" binding:"required,min=4,max=255"`
	Longitude    float64 `json:"longitude" binding:"required"`
	Latitude     float64 `json:"latitude" binding:"required"`
	Capacity     float64 `json:"capacity" binding:"required,gt=0"`
}

// createOrganization godoc
// @Summary 创建受赠机构
// @Description 受赠方用户登记机构资料，机构需管理员审核后方可申请领取
// @Tags 机构
// @Accept json
// @Produce json
// @Param request body createOrganizationRequest true "机构资料"
// @Success 200 {object} organizationResponse
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Failure 409 {object} ErrorResponse "该用户已登记机构"
// @Failure 500 {object} ErrorResponse "服务器内部错误"
// @Router /v1/organizations [post]
// @Security BearerAuth
func (server *Server) createOrganization(ctx *gin.Context) {
	var req createOrganizationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if err := val.ValidateCoordinates(req.Longitude, req.Latitude); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	// 每个受赠方用户只能登记一个机构
	if _, err := server.store.GetOrganizationByOwner(ctx, authPayload.UserID); err == nil {
		ctx.JSON(http.StatusConflict, errorResponse(errors.New("organization already registered for this user")))
		return
	} else if !errors.Is(err, db.ErrRecordNotFound) {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	org, err := server.store.CreateOrganization(ctx, db.CreateOrganizationParams{
		OwnerID:      authPayload.UserID,
		Name:         req.Name,
		ContactPhone: req.ContactPhone,
		Address:      req.Address,
		Longitude:    req.Longitude,
		Latitude:     req.Latitude,
		Capacity:     req.Capacity,
	})
	if err != nil {
		if db.ErrorCode(err) == db.UniqueViolation {
			ctx.JSON(http.StatusConflict, errorResponse(errors.New("organization already registered for this user")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, newOrganizationResponse(org))
}

type listOrganizationsRequest struct {
	Limit  int32 `form:"limit"`
	Offset int32 `form:"offset" binding:"min=0"`
}

// listOrganizations godoc
// @Summary 机构列表
// @Description 分页查询受赠机构
// @Tags 机构
// @Produce json
// @Param limit query int false "每页数量（默认 20，最大 100）"
// @Param offset query int false "偏移量"
// @Success 200 {array} organizationResponse
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Failure 500 {object} ErrorResponse "服务器内部错误"
// @Router /v1/organizations [get]
// @Security BearerAuth
func (server *Server) listOrganizations(ctx *gin.Context) {
	var req listOrganizationsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	limit := normalizePageLimit(req.Limit)

	orgs, err := server.store.ListOrganizations(ctx, db.ListOrganizationsParams{
		Limit:  limit,
		Offset: req.Offset,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	rsp := make([]organizationResponse, 0, len(orgs))
	for _, org := range orgs {
		rsp = append(rsp, newOrganizationResponse(org))
	}

	ctx.JSON(http.StatusOK, rsp)
}

// getOrganization godoc
// @Summary 机构详情
// @Description 查询单个受赠机构详情
// @Tags 机构
// @Produce json
// @Param id path int true "机构 ID"
// @Success 200 {object} organizationResponse
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Failure 404 {object} ErrorResponse "机构不存在"
// @Failure 500 {object} ErrorResponse "服务器内部错误"
// @Router /v1/organizations/{id} [get]
// @Security BearerAuth
func (server *Server) getOrganization(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	org, err := server.store.GetOrganization(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("organization not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, newOrganizationResponse(org))
}

type updateOrganizationRequest struct {
	Name         *string  `json:"name" binding:"omitempty,min=2,max=64"`
	ContactPhone *string  `json:"contact_phone" binding:"omitempty,validPhone"`
	Address      *string  `json:"address" binding:"omitempty,min=4,max=255"`
	Longitude    *float64 `json:"longitude"`
	Latitude     *float64 `json:"latitude"`
	Capacity     *float64 `json:"capacity" binding:"omitempty,gt=0"`
}

// updateCurrentOrganization godoc
// @Summary 更新本机构资料
// @Description 受赠方更新自己机构的联系方式、地址或接收容量
// @Tags 机构
// @Accept json
// @Produce json
// @Param request body updateOrganizationRequest true "更新内容"
// @Success 200 {object} organizationResponse
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Failure 404 {object} ErrorResponse "尚未登记机构"
// @Failure 500 {object} ErrorResponse "服务器内部错误"
// @Router /v1/organizations/me [patch]
// @Security BearerAuth
func (server *Server) updateCurrentOrganization(ctx *gin.Context) {
	var req updateOrganizationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	// 经纬度必须成对提供
	if (req.Longitude == nil) != (req.Latitude == nil) {
		ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("longitude and latitude must be provided together")))
		return
	}
	if req.Longitude != nil {
		if err := val.ValidateCoordinates(*req.Longitude, *req.Latitude); err != nil {
			ctx.JSON(http.StatusBadRequest, errorResponse(err))
			return
		}
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	org, err := server.store.GetOrganizationByOwner(ctx, authPayload.UserID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("no organization registered for this user")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	params := db.UpdateOrganizationParams{
		ID: org.ID,
	}
	if req.Name != nil {
		params.Name = pgtype.Text{String: *req.Name, Valid: true}
	}
	if req.ContactPhone != nil {
		params.ContactPhone = pgtype.Text{String: *req.ContactPhone, Valid: true}
	}
	if req.Address != nil {
		params.Address = pgtype.Text{String: *req.Address, Valid: true}
	}
	if req.Longitude != nil {
		params.Longitude = pgtype.Float8{Float64: *req.Longitude, Valid: true}
		params.Latitude = pgtype.Float8{Float64: *req.Latitude, Valid: true}
	}
	if req.Capacity != nil {
		params.Capacity = pgtype.Float8{Float64: *req.Capacity, Valid: true}
	}

	updated, err := server.store.UpdateOrganization(ctx, params)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, newOrganizationResponse(updated))
}
