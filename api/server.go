package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
	db "github.com/sunidhi090894/FoodShare-sub000/db/sqlc"
	"github.com/sunidhi090894/FoodShare-sub000/token"
	"github.com/sunidhi090894/FoodShare-sub000/util"
	"github.com/sunidhi090894/FoodShare-sub000/websocket"
	"github.com/sunidhi090894/FoodShare-sub000/worker"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// MessageResponse 通用消息响应
type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

// Server serves HTTP requests for the food redistribution service.
type Server struct {
	config          util.Config
	store           db.Store
	tokenMaker      token.Maker
	taskDistributor worker.TaskDistributor
	wsHub           *websocket.Hub           // WebSocket连接管理（志愿者和机构）
	wsPubSub        *websocket.PubSubManager // Redis Pub/Sub管理（跨进程推送）
	router          *gin.Engine
}

// NewServer creates a new HTTP server and set up routing.
func NewServer(config util.Config, store db.Store, taskDistributor worker.TaskDistributor) (*Server, error) {
	tokenMaker, err := token.NewPasetoMaker(config.TokenSymmetricKey)
	if err != nil {
		return nil, fmt.Errorf("cannot create token maker: %w", err)
	}

	// 创建WebSocket Hub（管理志愿者和机构的实时连接）
	wsHub := websocket.NewHub(context.Background())

	// 创建Redis Pub/Sub管理器（用于跨进程推送通知）
	var wsPubSub *websocket.PubSubManager
	if config.RedisAddress != "" {
		wsPubSub, err = websocket.NewPubSubManager(config.RedisAddress, config.RedisPassword, wsHub)
		if err != nil {
			log.Warn().Err(err).Msg("failed to create PubSub manager, WebSocket push will be disabled")
		} else {
			wsPubSub.Start()
			log.Info().Msg("✅ WebSocket PubSub manager started")
		}
	}

	// 初始化 Casbin 权限控制（仅当尚未初始化时）
	if GetGlobalCasbinEnforcer() == nil {
		if err := InitCasbin("casbin"); err != nil {
			log.Warn().Err(err).Msg("failed to initialize Casbin, RBAC will use fallback middleware")
		}
	}

	server := &Server{
		config:          config,
		store:           store,
		tokenMaker:      tokenMaker,
		taskDistributor: taskDistributor,
		wsHub:           wsHub,
		wsPubSub:        wsPubSub,
	}

	server.setupRouter()
	return server, nil
}

// GetWebSocketHub returns the WebSocket hub for external access
func (server *Server) GetWebSocketHub() *websocket.Hub {
	return server.wsHub
}

func (server *Server) setupRouter() {
	if server.config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// 📝 注册自定义验证器
	registerCustomValidators()

	// 🌐 跨域资源共享中间件
	router.Use(CORSMiddleware(server.config.AllowedOrigins))

	// 🔒 安全响应头中间件（防止 XSS、点击劫持等）
	router.Use(SecurityHeadersMiddleware())

	// 🔒 HSTS 中间件（强制 HTTPS）
	if server.config.Environment == "production" {
		router.Use(HSTSMiddleware(31536000))
	}

	// 📊 请求追踪中间件（生成 X-Request-ID）
	router.Use(RequestTracingMiddleware())
	router.Use(RequestLoggingMiddleware())

	// 📈 Prometheus 指标中间件
	router.Use(PrometheusMiddleware())

	// 🛡️ 速率限制中间件
	rateLimiter := NewRateLimiter(DefaultRateLimiterConfig())
	router.Use(rateLimiter.Middleware())

	// 🕐 全局超时中间件：防止慢查询导致goroutine泄漏
	router.Use(TimeoutMiddleware(30 * time.Second))

	// 📊 Prometheus 指标端点（供监控系统抓取）
	router.GET("/metrics", MetricsHandler())

	// 🏥 健康检查端点（供 Nginx/K8s 使用，无需认证）
	router.GET("/health", server.healthCheck)
	router.GET("/ready", server.readinessCheck)

	// Swagger API 文档（开发环境）
	if server.config.Environment == "development" {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// API v1
	v1 := router.Group("/v1")

	// 认证路由(无需认证，但需要额外的速率限制)
	authPublicGroup := v1.Group("/auth")
	authPublicGroup.Use(rateLimiter.SensitiveAPIMiddleware(10)) // 敏感 API 更严格限制：每分钟 10 次
	authPublicGroup.POST("/register", server.createUser)
	authPublicGroup.POST("/login", server.loginUser)
	authPublicGroup.POST("/refresh", server.renewAccessToken)

	// 需要认证的路由
	authGroup := v1.Group("")
	authGroup.Use(authMiddleware(server.tokenMaker))

	// 用户
	authGroup.GET("/users/me", server.getCurrentUser)
	authGroup.PATCH("/users/me", server.updateCurrentUser)

	// 受赠机构（查询对所有登录用户开放）
	authGroup.GET("/organizations", server.listOrganizations)
	authGroup.GET("/organizations/:id", server.getOrganization)

	// 受赠机构管理（机构角色）
	recipientGroup := authGroup.Group("")
	recipientGroup.Use(server.CasbinRoleMiddleware(util.RecipientRole))
	{
		recipientGroup.POST("/organizations", server.createOrganization)
		recipientGroup.PATCH("/organizations/me", server.updateCurrentOrganization)
		recipientGroup.POST("/offers/:id/requests", server.createFoodRequest)
		recipientGroup.GET("/requests", server.listMyRequests)
	}

	// 余量发布单（查询对所有登录用户开放）
	authGroup.GET("/offers", server.listOffers)
	authGroup.GET("/offers/:id", server.getOffer)

	// 捐赠方操作
	donorGroup := authGroup.Group("")
	donorGroup.Use(server.CasbinRoleMiddleware(util.DonorRole))
	{
		donorGroup.POST("/offers", server.createOffer)
		donorGroup.POST("/offers/:id/cancel", server.cancelOffer)
		donorGroup.GET("/offers/:id/matches", server.findMatches)
		donorGroup.POST("/requests/:id/approve", server.approveRequest)
		donorGroup.POST("/requests/:id/reject", server.rejectRequest)
	}

	// 志愿者配送
	volunteerGroup := authGroup.Group("/deliveries")
	volunteerGroup.Use(server.CasbinRoleMiddleware(util.VolunteerRole))
	{
		volunteerGroup.GET("/available", server.listAvailableDeliveries)
		volunteerGroup.GET("/mine", server.listMyDeliveries)
		volunteerGroup.POST("/:id/claim", server.claimDelivery)
		volunteerGroup.POST("/:id/status", server.updateDeliveryStatus)
		volunteerGroup.POST("/route/optimize", server.optimizeRoute)
	}

	// 通知
	notificationsGroup := authGroup.Group("/notifications")
	{
		notificationsGroup.GET("", server.listNotifications)
		notificationsGroup.GET("/unread-count", server.getUnreadCount)
		notificationsGroup.PATCH("/:id/read", server.markNotificationRead)
		notificationsGroup.PATCH("/read-all", server.markAllNotificationsRead)
	}

	// WebSocket路由（志愿者和机构实时通知）
	authGroup.GET("/ws", server.handleWebSocket)

	// 平台管理
	adminGroup := authGroup.Group("/admin")
	adminGroup.Use(server.CasbinRoleMiddleware(util.AdminRole))
	{
		adminGroup.GET("/stats", server.getAdminStats)
		adminGroup.POST("/organizations/:id/verify", server.verifyOrganization)
	}

	server.router = router
}

// Start runs the HTTP server on a specific address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}

// GetRouter returns the gin router for creating http.Server
func (server *Server) GetRouter() *gin.Engine {
	return server.router
}

// healthCheck 健康检查 - 基础存活检查
// GET /health
func (server *Server) healthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "foodbridge-api",
	})
}

// readinessCheck 就绪检查 - 检查依赖服务
// GET /ready
func (server *Server) readinessCheck(ctx *gin.Context) {
	if err := server.store.Ping(ctx); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"error":  "database connection failed",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":   "ready",
		"service":  "foodbridge-api",
		"database": "connected",
	})
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// errorResponse creates an error response.
// For 4xx client errors: returns the actual error message
// For 5xx server errors: use internalError() instead to avoid leaking details
func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}

// internalError logs the actual error and returns a safe generic message.
// Use this for 5xx errors to prevent leaking internal implementation details.
func internalError(ctx *gin.Context, err error) gin.H {
	// Attach to gin context so RequestLoggingMiddleware can include it
	_ = ctx.Error(err)

	evt := log.Error().
		Err(err).
		Str("request_id", GetRequestID(ctx)).
		Str("path", ctx.Request.URL.Path).
		Str("method", ctx.Request.Method)

	// If it's a Postgres error, log structured fields for faster debugging
	if pgErr, ok := err.(*pgconn.PgError); ok {
		evt = evt.
			Str("sqlstate", pgErr.Code).
			Str("pg_message", pgErr.Message).
			Str("pg_detail", pgErr.Detail).
			Str("pg_constraint", pgErr.ConstraintName)
	}

	evt.Msg("internal error")

	return gin.H{"error": "internal server error"}
}
