package api

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	db "github.com/sunidhi090894/FoodShare-sub000/db/sqlc"
	"github.com/sunidhi090894/FoodShare-sub000/token"
)

// CasbinEnforcer 封装 Casbin enforcer 并提供线程安全访问
type CasbinEnforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
}

// NewCasbinEnforcer 创建新的 Casbin enforcer
// modelPath: model.conf 文件路径
// policyPath: policy.csv 文件路径
func NewCasbinEnforcer(modelPath, policyPath string) (*CasbinEnforcer, error) {
	enforcer, err := casbin.NewEnforcer(modelPath, policyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("failed to load casbin policy: %w", err)
	}

	log.Info().
		Str("model", modelPath).
		Str("policy", policyPath).
		Msg("✅ Casbin enforcer initialized")

	return &CasbinEnforcer{
		enforcer: enforcer,
	}, nil
}

// NewCasbinEnforcerFromString 从字符串创建 Casbin enforcer（用于测试）
func NewCasbinEnforcerFromString(modelText, policyText string) (*CasbinEnforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("failed to parse casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	// 解析策略文本并添加
	lines := strings.Split(policyText, "\n")
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, ",")
		if len(parts) < 2 {
			continue
		}

		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		ptype := parts[0]
		values := parts[1:]

		args := make([]interface{}, len(values))
		for i, v := range values {
			args[i] = v
		}

		switch ptype {
		case "p":
			if _, err := enforcer.AddPolicy(args...); err != nil {
				log.Warn().Err(err).Str("policy", line).Msg("failed to add policy")
			}
		case "g":
			if _, err := enforcer.AddGroupingPolicy(args...); err != nil {
				log.Warn().Err(err).Str("grouping", line).Msg("failed to add grouping policy")
			}
		}
	}

	return &CasbinEnforcer{
		enforcer: enforcer,
	}, nil
}

// Enforce 检查权限
// sub: 角色 (donor, recipient, volunteer, admin)
// obj: 资源路径 (/v1/offers/:id)
// act: 操作 (GET, POST, PATCH, DELETE)
func (ce *CasbinEnforcer) Enforce(sub, obj, act string) (bool, error) {
	ce.mu.RLock()
	defer ce.mu.RUnlock()
	return ce.enforcer.Enforce(sub, obj, act)
}

// ReloadPolicy 重新加载策略
func (ce *CasbinEnforcer) ReloadPolicy() error {
	ce.mu.Lock()
	defer ce.mu.Unlock()
	return ce.enforcer.LoadPolicy()
}

// GetEnforcer 获取底层 enforcer（用于测试）
func (ce *CasbinEnforcer) GetEnforcer() *casbin.Enforcer {
	return ce.enforcer
}

// ==================== Server 集成 ====================

var globalCasbinEnforcer *CasbinEnforcer

// InitCasbin 初始化 Casbin enforcer
// 应在 server 启动时调用
func InitCasbin(casbinDir string) error {
	modelPath := filepath.Join(casbinDir, "model.conf")
	policyPath := filepath.Join(casbinDir, "policy.csv")

	enforcer, err := NewCasbinEnforcer(modelPath, policyPath)
	if err != nil {
		return err
	}

	globalCasbinEnforcer = enforcer
	return nil
}

// SetGlobalCasbinEnforcer 设置全局 enforcer（用于测试）
func SetGlobalCasbinEnforcer(enforcer *CasbinEnforcer) {
	globalCasbinEnforcer = enforcer
}

// GetGlobalCasbinEnforcer 获取全局 enforcer
func GetGlobalCasbinEnforcer() *CasbinEnforcer {
	return globalCasbinEnforcer
}

// ==================== Casbin 中间件 ====================

// currentUserKey 当前用户存储在 context 中的 key
const currentUserKey = "current_user"

// CasbinRoleMiddleware 创建指定角色的权限验证中间件
// 1. 从 token 获取用户 ID 并加载用户
// 2. 验证用户处于激活状态且拥有指定角色
// 3. 使用 Casbin 检查该角色对请求路径的访问权限
//
// 注意：此中间件必须在 authMiddleware 之后使用
func (server *Server) CasbinRoleMiddleware(requiredRole string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

		user, err := server.store.GetUser(ctx, authPayload.UserID)
		if err != nil {
			if errors.Is(err, db.ErrRecordNotFound) {
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse(
					errors.New("user not found"),
				))
				return
			}
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, internalError(ctx, err))
			return
		}

		if !user.IsActive {
			ctx.AbortWithStatusJSON(http.StatusForbidden, errorResponse(
				errors.New("user account is disabled"),
			))
			return
		}

		// 缓存用户到 context
		ctx.Set(currentUserKey, user)

		if user.Role != requiredRole {
			ctx.AbortWithStatusJSON(http.StatusForbidden, errorResponse(
				fmt.Errorf("this endpoint requires %s role", requiredRole),
			))
			return
		}

		// 未初始化 Casbin 时退化为纯角色检查
		if globalCasbinEnforcer == nil {
			log.Warn().Msg("Casbin enforcer not initialized, falling back to role-only check")
			ctx.Next()
			return
		}

		obj := ctx.Request.URL.Path
		act := ctx.Request.Method

		allowed, err := globalCasbinEnforcer.Enforce(user.Role, obj, act)
		if err != nil {
			log.Error().Err(err).
				Str("path", obj).
				Str("method", act).
				Str("role", user.Role).
				Msg("Casbin enforcement error")
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, internalError(ctx, err))
			return
		}

		if !allowed {
			ctx.AbortWithStatusJSON(http.StatusForbidden, errorResponse(
				errors.New("you don't have permission to access this resource"),
			))
			return
		}

		ctx.Next()
	}
}

// GetCurrentUserFromContext 从 context 获取已加载的当前用户
func GetCurrentUserFromContext(ctx *gin.Context) (db.User, bool) {
	val, exists := ctx.Get(currentUserKey)
	if !exists {
		return db.User{}, false
	}
	user, ok := val.(db.User)
	return user, ok
}
