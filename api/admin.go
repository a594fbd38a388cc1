package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	db "github.com/sunidhi090894/FoodShare-sub000/db/sqlc"
	"github.com/sunidhi090894/FoodShare-sub000/util"
)

type adminStatsResponse struct {
	Users struct {
		Donors     int64 `json:"donors"`
		Recipients int64 `json:"recipients"`
		Volunteers int64 `json:"volunteers"`
		Admins     int64 `json:"admins"`
	} `json:"users"`
	Organizations int64 `json:"organizations"`
	Offers        struct {
		Available int64 `json:"available"`
		Completed int64 `json:"completed"`
		Expired   int64 `json:"expired"`
	} `json:"offers"`
	Matches    int64 `json:"matches"`
	Deliveries struct {
		Pending   int64 `json:"pending"`
		Completed int64 `json:"completed"`
	} `json:"deliveries"`
	OnlineConnections int `json:"online_connections"`
}

// getAdminStats godoc
// @Summary 平台统计
// @Description 管理员查看用户、机构、发布、匹配、配送的汇总数据
// @Tags 管理
// @Produce json
// @Success 200 {object} adminStatsResponse
// @Failure 500 {object} ErrorResponse "服务器内部错误"
// @Router /v1/admin/stats [get]
// @Security BearerAuth
func (server *Server) getAdminStats(ctx *gin.Context) {
	var rsp adminStatsResponse
	var err error

	if rsp.Users.Donors, err = server.store.CountUsersByRole(ctx, util.DonorRole); err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}
	if rsp.Users.Recipients, err = server.store.CountUsersByRole(ctx, util.RecipientRole); err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}
	if rsp.Users.Volunteers, err = server.store.CountUsersByRole(ctx, util.VolunteerRole); err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}
	if rsp.Users.Admins, err = server.store.CountUsersByRole(ctx, util.AdminRole); err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}
	if rsp.Organizations, err = server.store.CountOrganizations(ctx); err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}
	if rsp.Offers.Available, err = server.store.CountOffersByStatus(ctx, "available"); err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}
	if rsp.Offers.Completed, err = server.store.CountOffersByStatus(ctx, "completed"); err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}
	if rsp.Offers.Expired, err = server.store.CountOffersByStatus(ctx, "expired"); err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}
	if rsp.Matches, err = server.store.CountMatches(ctx); err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}
	if rsp.Deliveries.Pending, err = server.store.CountDeliveriesByStatus(ctx, "pending"); err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}
	if rsp.Deliveries.Completed, err = server.store.CountDeliveriesByStatus(ctx, "completed"); err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	if server.wsHub != nil {
		rsp.OnlineConnections = server.wsHub.GetOnlineCount()
	}

	ctx.JSON(http.StatusOK, rsp)
}

// verifyOrganization godoc
// @Summary 审核通过机构
// @Description 管理员将机构标记为已审核，审核后机构才能申请领取
// @Tags 管理
// @Produce json
// @Param id path int true "机构 ID"
// @Success 200 {object} organizationResponse
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Failure 404 {object} ErrorResponse "机构不存在"
// @Failure 500 {object} ErrorResponse "服务器内部错误"
// @Router /v1/admin/organizations/{id}/verify [post]
// @Security BearerAuth
func (server *Server) verifyOrganization(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	org, err := server.store.SetOrganizationVerified(ctx, db.SetOrganizationVerifiedParams{
		ID:         id,
		IsVerified: true,
	})
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("organization not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	server.notifyUser(ctx, org.OwnerID, "system", "机构审核通过",
		"机构「"+org.Name+"」已通过审核，现在可以申请领取余量食物", "organization", org.ID)

	ctx.JSON(http.StatusOK, newOrganizationResponse(org))
}
