package container

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"heritage-backend/internal/config"
	cartHandler "heritage-backend/internal/domains/cart/handler"
	cartRepo "heritage-backend/internal/domains/cart/repository"
	cartService "heritage-backend/internal/domains/cart/service"
	checkoutHandler "heritage-backend/internal/domains/checkout/handler"
	checkoutService "heritage-backend/internal/domains/checkout/service"
	orderHandler "heritage-backend/internal/domains/order/handler"
	orderRepo "heritage-backend/internal/domains/order/repository"
	orderService "heritage-backend/internal/domains/order/service"
	"heritage-backend/internal/domains/pricing"
	"heritage-backend/internal/domains/receipt"
	"heritage-backend/internal/infrastructure/cache"
	"heritage-backend/internal/infrastructure/email"
	"heritage-backend/internal/shared/tasks"
)

// ========================================
// CONTAINER
// ========================================

// Container holds the application's dependency graph. Initialization
// order matters: config → infrastructure → repositories → services →
// handlers.
type Container struct {
	Config *config.Config
	Redis  *redis.Client // nil when Redis is disabled

	// Repositories
	CartRepo  cartRepo.CartRepository
	OrderRepo orderRepo.OrderRepository

	// Services
	CartService     cartService.ServiceInterface
	OrderService    orderService.OrderService
	CheckoutService checkoutService.ServiceInterface
	Enqueuer        tasks.Enqueuer
	ReceiptGen      *receipt.Generator
	EmailService    email.Service

	// Handlers
	CartHandler     *cartHandler.Handler
	CheckoutHandler *checkoutHandler.Handler
	OrderHandler    *orderHandler.Handler

	// in-memory store janitor
	janitorStop chan struct{}
	asynqClient *tasks.Client
}

// NewContainer builds and initializes the whole dependency graph
func NewContainer() (*Container, error) {
	c := &Container{}

	// STEP 1: configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("environment", cfg.App.Environment).Msg("Config loaded")

	// STEP 2: infrastructure
	rules := pricing.DefaultRules()

	if cfg.Redis.Enabled {
		client := cache.NewRedisClient(cfg.Redis)
		if err := cache.Connect(context.Background(), client); err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		c.Redis = client

		c.CartRepo = cartRepo.NewRedisRepository(client, cfg.Session.CartTTL)
		c.OrderRepo = orderRepo.NewRedisRepository(client, cfg.Session.OrderTTL)

		c.asynqClient = tasks.NewClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
		c.Enqueuer = c.asynqClient
	} else {
		// Single-instance mode: transient TTL maps, tasks dropped
		cartMem := cartRepo.NewMemoryRepository(cfg.Session.CartTTL)
		orderMem := orderRepo.NewMemoryRepository(cfg.Session.OrderTTL)
		c.CartRepo = cartMem
		c.OrderRepo = orderMem
		c.Enqueuer = tasks.NoopEnqueuer{}

		c.startJanitor(cartMem, orderMem)
		log.Info().Msg("Redis disabled, using in-memory stores")
	}

	c.EmailService = email.NewMockService(cfg.Email.From)

	// STEP 3: services
	c.CartService = cartService.NewCartService(c.CartRepo, rules, cfg.Pricing)
	c.OrderService = orderService.NewOrderService(c.OrderRepo, rules, cfg.Pricing)
	c.CheckoutService = checkoutService.NewCheckoutService(c.CartService, c.OrderService, c.Enqueuer)
	c.ReceiptGen = receipt.NewGenerator(cfg.App.StoreName)

	// STEP 4: handlers
	c.CartHandler = cartHandler.NewHandler(c.CartService)
	c.CheckoutHandler = checkoutHandler.NewHandler(c.CheckoutService)
	c.OrderHandler = orderHandler.NewHandler(c.OrderService, c.ReceiptGen)

	log.Info().Msg("Container initialized")
	return c, nil
}

// startJanitor sweeps expired in-memory entries until Cleanup
func (c *Container) startJanitor(carts *cartRepo.MemoryRepository, orders *orderRepo.MemoryRepository) {
	c.janitorStop = make(chan struct{})

	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				removed := carts.SweepExpired() + orders.SweepExpired()
				if removed > 0 {
					log.Debug().Int("removed", removed).Msg("Swept expired store entries")
				}
			case <-c.janitorStop:
				return
			}
		}
	}()
}

// Cleanup releases resources on shutdown
func (c *Container) Cleanup() {
	if c.janitorStop != nil {
		close(c.janitorStop)
	}

	if c.asynqClient != nil {
		if err := c.asynqClient.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close asynq client")
		}
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close Redis")
		}
	}

	log.Info().Msg("Container cleanup completed")
}
