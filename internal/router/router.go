package router

import (
	"fmt"
	"strings"

	"github.com/foodie-app/internal/cache"
	"github.com/foodie-app/internal/config"
	publichandlers "github.com/foodie-app/internal/http/handlers/public"
	"github.com/foodie-app/internal/http/response"
	"github.com/foodie-app/internal/logger"
	"github.com/foodie-app/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "foodie"
	}
	redisClient := cache.Client()
	mutationRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:mutation", redisPrefix),
		WindowSeconds: cfg.Security.MutationRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.MutationRateLimit.MaxRequests,
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// 未注册的路径与方法返回结构化错误而不是 gin 默认文本
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(ctx *gin.Context) {
		response.MethodNotAllowed(ctx)
	})
	r.NoRoute(func(ctx *gin.Context) {
		response.NotFound(ctx, response.KindNotFound, "route not found")
	})

	apiV1 := r.Group("/api/v1")
	{
		apiV1.GET("/health", publicHandler.Health)

		// 用户接口（需鉴权）
		user := apiV1.Group("")
		user.Use(TokenAuthMiddleware())
		mutate := RateLimitMiddleware(redisClient, mutationRule, KeyByUser)
		{
			user.GET("/me", publicHandler.GetProfile)
			user.GET("/menu", publicHandler.GetMenu)
			user.GET("/menu/:item_id", publicHandler.GetMenuItem)
			user.GET("/cart", publicHandler.GetCart)
			// /cart 与 /cart/items 指向同一组处理器，兼容两种客户端路径
			user.POST("/cart", mutate, publicHandler.AddCartItem)
			user.PUT("/cart", mutate, publicHandler.UpdateCartItem)
			user.POST("/cart/items", mutate, publicHandler.AddCartItem)
			user.PUT("/cart/items", mutate, publicHandler.UpdateCartItem)
			user.DELETE("/cart/items/:item_id", mutate, publicHandler.DeleteCartItem)
			user.DELETE("/cart", mutate, publicHandler.ClearCart)
			user.GET("/orders", publicHandler.ListOrders)
			user.POST("/orders", mutate, publicHandler.CreateOrder)
			user.GET("/orders/:id", publicHandler.GetOrder)
			user.PUT("/orders/:id", mutate, publicHandler.UpdateOrder)
		}
	}

	return r
}
