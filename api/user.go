package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgtype"
	db "github.com/sunidhi090894/FoodShare-sub000/db/sqlc"
	"github.com/sunidhi090894/FoodShare-sub000/token"
	"github.com/sunidhi090894/FoodShare-sub000/util"
)

type userResponse struct {
	ID        int64     `json:"id"`
	Phone     string    `json:"phone"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserResponse(user db.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Phone:     user.Phone,
		FullName:  user.FullName,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

type createUserRequest struct {
	Phone    string `json:"phone" binding:"required,validPhone"`
	Password string `json:"password" binding:"required,min=6,max=64"`
	FullName string `json:"full_name" binding:"required,min=1,max=64"`
	Role     string `json:"role" binding:"required,validRole"`
}

// createUser godoc
// @Summary 注册用户
// @Description 创建新用户（捐赠方/受赠机构/志愿者），注册成功后收到欢迎通知
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body createUserRequest true "注册信息"
// @Success 200 {object} userResponse
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Failure 409 {object} ErrorResponse "手机号已注册"
// @Failure 500 {object} ErrorResponse "服务器内部错误"
// @Router /v1/auth/register [post]
func (server *Server) createUser(ctx *gin.Context) {
	var req createUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	// 管理员账户不开放自助注册
	if req.Role == util.AdminRole {
		ctx.JSON(http.StatusForbidden, errorResponse(errors.New("admin accounts cannot be self-registered")))
		return
	}

	hashedPassword, err := util.HashPassword(req.Password)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	result, err := server.store.CreateUserTx(ctx, db.CreateUserTxParams{
		Phone:          req.Phone,
		HashedPassword: hashedPassword,
		FullName:       req.FullName,
		Role:           req.Role,
	})
	if err != nil {
		if db.ErrorCode(err) == db.UniqueViolation {
			ctx.JSON(http.StatusConflict, errorResponse(errors.New("phone number already registered")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, newUserResponse(result.User))
}

type loginUserRequest struct {
	Phone    string `json:"phone" binding:"required,validPhone"`
	Password string `json:"password" binding:"required,min=6,max=64"`
}

type loginUserResponse struct {
	SessionID             int64        `json:"session_id"`
	AccessToken           string       `json:"access_token"`
	AccessTokenExpiresAt  time.Time    `json:"access_token_expires_at"`
	RefreshToken          string       `json:"refresh_token"`
	RefreshTokenExpiresAt time.Time    `json:"refresh_token_expires_at"`
	User                  userResponse `json:"user"`
}

// loginUser godoc
// @Summary 用户登录
// @Description 手机号+密码登录，返回访问令牌和刷新令牌
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body loginUserRequest true "登录信息"
// @Success 200 {object} loginUserResponse
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Failure 401 {object} ErrorResponse "密码错误"
// @Failure 403 {object} ErrorResponse "账户已禁用"
// @Failure 404 {object} ErrorResponse "用户不存在"
// @Failure 500 {object} ErrorResponse "服务器内部错误"
// @Router /v1/auth/login [post]
func (server *Server) loginUser(ctx *gin.Context) {
	var req loginUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	user, err := server.store.GetUserByPhone(ctx, req.Phone)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("user not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	if err := util.CheckPassword(req.Password, user.HashedPassword); err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(errors.New("incorrect password")))
		return
	}

	if !user.IsActive {
		ctx.JSON(http.StatusForbidden, errorResponse(errors.New("user account is disabled")))
		return
	}

	accessToken, accessPayload, err := server.tokenMaker.CreateToken(
		user.ID,
		server.config.AccessTokenDuration,
		token.TokenTypeAccessToken,
	)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	refreshToken, refreshPayload, err := server.tokenMaker.CreateToken(
		user.ID,
		server.config.RefreshTokenDuration,
		token.TokenTypeRefreshToken,
	)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	session, err := server.store.CreateSession(ctx, db.CreateSessionParams{
		UserID:       user.ID,
		RefreshToken: refreshToken,
		UserAgent:    ctx.Request.UserAgent(),
		ClientIp:     ctx.ClientIP(),
		ExpiresAt:    refreshPayload.ExpiredAt,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, loginUserResponse{
		SessionID:             session.ID,
		AccessToken:           accessToken,
		AccessTokenExpiresAt:  accessPayload.ExpiredAt,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: refreshPayload.ExpiredAt,
		User:                  newUserResponse(user),
	})
}

// getCurrentUser godoc
// @Summary 获取当前用户
// @Description 获取当前登录用户的资料
// @Tags 用户
// @Produce json
// @Success 200 {object} userResponse
// @Failure 401 {object} ErrorResponse "未授权"
// @Failure 500 {object} ErrorResponse "服务器内部错误"
// @Router /v1/users/me [get]
// @Security BearerAuth
func (server *Server) getCurrentUser(ctx *gin.Context) {
	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	user, err := server.store.GetUser(ctx, authPayload.UserID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("user not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, newUserResponse(user))
}

type updateCurrentUserRequest struct {
	FullName *string `json:"full_name" binding:"omitempty,min=1,max=64"`
	Password *string `json:"password" binding:"omitempty,min=6,max=64"`
}

// updateCurrentUser godoc
// @Summary 更新当前用户
// @Description 更新当前登录用户的姓名或密码
// @Tags 用户
// @Accept json
// @Produce json
// @Param request body updateCurrentUserRequest true "更新内容"
// @Success 200 {object} userResponse
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Failure 401 {object} ErrorResponse "未授权"
// @Failure 500 {object} ErrorResponse "服务器内部错误"
// @Router /v1/users/me [patch]
// @Security BearerAuth
func (server *Server) updateCurrentUser(ctx *gin.Context) {
	var req updateCurrentUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	params := db.UpdateUserParams{
		ID: authPayload.UserID,
	}

	if req.FullName != nil {
		params.FullName = pgtype.Text{String: *req.FullName, Valid: true}
	}

	if req.Password != nil {
		hashedPassword, err := util.HashPassword(*req.Password)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
			return
		}
		params.HashedPassword = pgtype.Text{String: hashedPassword, Valid: true}
	}

	user, err := server.store.UpdateUser(ctx, params)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("user not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, newUserResponse(user))
}
