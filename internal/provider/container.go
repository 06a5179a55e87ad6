package provider

import (
	"github.com/minishop/internal/cache"
	"github.com/minishop/internal/config"
	"github.com/minishop/internal/events"
	"github.com/minishop/internal/logger"
	"github.com/minishop/internal/metrics"
	"github.com/minishop/internal/queue"
	"github.com/minishop/internal/repository"
	"github.com/minishop/internal/service"

	"gorm.io/gorm"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config
	DB     *gorm.DB

	// Infrastructure
	Cache          *cache.Store
	QueueClient    *queue.Client
	EventPublisher events.Publisher
	Metrics        *metrics.Registry

	// Repositories
	Transactor  repository.Transactor
	UserRepo    repository.UserRepository
	ProductRepo repository.ProductRepository
	CartRepo    repository.CartRepository
	OrderRepo   repository.OrderRepository

	// Services
	UserAuthService *service.UserAuthService
	ProductService  *service.ProductService
	CartService     *service.CartService
	OrderService    *service.OrderService
}

// NewContainer 初始化容器，db 由调用方打开并注入
func NewContainer(cfg *config.Config, db *gorm.DB) *Container {
	c := &Container{
		Config: cfg,
		DB:     db,
	}

	// 1. 初始化基础设施
	c.initInfrastructure()

	// 2. 初始化 Repositories
	c.initRepositories()

	// 3. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initInfrastructure() {
	c.Cache = cache.New(&c.Config.Redis)
	if c.Cache.Enabled() {
		logger.Infow("provider_redis_enabled", "host", c.Config.Redis.Host, "port", c.Config.Redis.Port)
	}
	c.QueueClient = queue.NewClient(&c.Config.Queue)
	c.EventPublisher = events.NewPublisher(&c.Config.Kafka)
	if c.Config.Metrics.Enabled {
		c.Metrics = metrics.New(c.Config.Metrics.Namespace)
	}
}

func (c *Container) initRepositories() {
	db := c.DB
	c.Transactor = repository.NewTransactor(db)
	c.UserRepo = repository.NewUserRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
}

func (c *Container) initServices() {
	var recorder service.CheckoutRecorder
	if c.Metrics != nil {
		recorder = c.Metrics
	}
	c.UserAuthService = service.NewUserAuthService(c.Config, c.UserRepo)
	c.ProductService = service.NewProductService(c.ProductRepo, c.Cache)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo)
	c.OrderService = service.NewOrderService(c.Transactor, c.OrderRepo, c.CartRepo, c.ProductRepo, c.QueueClient, recorder)
}

// Close 释放外部连接
func (c *Container) Close() {
	if err := c.QueueClient.Close(); err != nil {
		logger.Warnw("provider_queue_client_close_failed", "error", err)
	}
	if err := c.Cache.Close(); err != nil {
		logger.Warnw("provider_redis_close_failed", "error", err)
	}
	if c.EventPublisher != nil {
		if err := c.EventPublisher.Close(); err != nil {
			logger.Warnw("provider_event_publisher_close_failed", "error", err)
		}
	}
}
