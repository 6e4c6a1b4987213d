package provider

import (
	"github.com/foodie-app/internal/cache"
	"github.com/foodie-app/internal/config"
	"github.com/foodie-app/internal/logger"
	"github.com/foodie-app/internal/models"
	"github.com/foodie-app/internal/queue"
	"github.com/foodie-app/internal/repository"
	"github.com/foodie-app/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	MenuRepo  repository.MenuRepository
	CartRepo  repository.CartRepository
	OrderRepo repository.OrderRepository

	// Services
	MenuService  *service.MenuService
	CartService  *service.CartService
	OrderService *service.OrderService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.MenuRepo = repository.NewMenuRepository(models.DB)
	c.CartRepo = repository.NewCartRepository(models.DB)
	c.OrderRepo = repository.NewOrderRepository(models.DB)

	pricing := service.NewPricingConfig(cfg.Order.DeliveryFee, cfg.Order.TaxRatePercent)
	c.MenuService = service.NewMenuService(c.MenuRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.MenuRepo, pricing)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.CartRepo, c.QueueClient, pricing, cfg.Order.EstimatedDeliveryMinutes)

	return c
}
