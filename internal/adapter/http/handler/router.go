package handler

import (
	"wallet-settings/internal/adapter/http/middleware"
	"wallet-settings/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// MaxRequestBody bounds every request body.
const MaxRequestBody = 64 << 10

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	SettingSvc     ports.SettingService
	RateSvc        ports.RateService
	Notifications  ports.NotificationQueue
	RateLimitStore middleware.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService // nil = audit logging disabled
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(MaxRequestBody))

	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	rules := middleware.DefaultRateLimitRules()
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	v1 := r.Group("/api/v1")

	settingsHandler := NewSettingsHandler(deps.SettingSvc)
	settings := v1.Group("/settings")
	{
		settings.GET("", rl(middleware.GroupSettingsRead), settingsHandler.Get)
		settings.PUT("/unit", rl(middleware.GroupSettingsWrite), settingsHandler.SetUnit)
		settings.PUT("/fiat", rl(middleware.GroupSettingsWrite), settingsHandler.SetFiat)
		settings.POST("/fiat/detect", rl(middleware.GroupSettingsWrite), settingsHandler.DetectFiat)
		settings.PUT("/restoring", rl(middleware.GroupSettingsWrite), settingsHandler.SetRestoring)
		settings.POST("/autopilot/toggle", rl(middleware.GroupAutopilot), settingsHandler.ToggleAutopilot)
	}

	if deps.Notifications != nil {
		notificationHandler := NewNotificationHandler(deps.Notifications)
		v1.GET("/notifications", rl(middleware.GroupSettingsRead), notificationHandler.List)
	}

	if deps.RateSvc != nil {
		rateHandler := NewRateHandler(deps.RateSvc, deps.SettingSvc)
		v1.GET("/rates/:fiat", rl(middleware.GroupRates), rateHandler.GetRate)
		v1.GET("/convert", rl(middleware.GroupRates), rateHandler.Convert)
	}

	return r
}
