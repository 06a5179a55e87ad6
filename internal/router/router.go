package router

import (
	"github.com/minishop/internal/cache"
	"github.com/minishop/internal/config"
	publichandlers "github.com/minishop/internal/http/handlers/public"
	"github.com/minishop/internal/logger"
	"github.com/minishop/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	r := gin.New()

	h := publichandlers.New(c)
	loginRule := RateLimitRule{
		Prefix:        c.Cache.Key(cache.LoginRateLimitPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		Message:       "too many login attempts",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(logger.Z()))
	r.Use(MetricsMiddleware(c.Metrics))
	r.Use(CORSMiddleware(cfg.CORS))
	r.Use(TimeoutMiddleware(requestTimeout(cfg)))

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.UserRegister)
			auth.POST("/login", RateLimitMiddleware(c.Cache.Client(), loginRule, KeyByIPAndJSONField("username")), h.UserLogin)
			auth.GET("/me", UserJWTAuthMiddleware(c.UserAuthService), h.GetCurrentUser)
		}

		api.GET("/products", h.ListProducts)
		api.GET("/products/:id", h.GetProduct)
		api.POST("/products", h.CreateProduct)

		api.POST("/cart", h.AddCartItem)
		api.GET("/cart/:userId", h.GetCart)
		api.DELETE("/cart/:userId/items/:itemId", h.RemoveCartItem)

		api.POST("/orders", h.Checkout)
		api.GET("/orders", h.ListOrders)
	}

	// 健康检查
	r.GET("/healthz", h.Healthz)
	if c.Metrics != nil {
		r.GET("/metrics", gin.WrapH(c.Metrics.Handler()))
	}

	return r
}
