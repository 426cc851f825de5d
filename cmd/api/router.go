package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"heritage-backend/internal/shared/middleware"
	"heritage-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	// Session + optional identity apply to the whole storefront surface
	sessionConfig := middleware.DefaultSessionMiddlewareConfig()
	sessionConfig.CookieSecure = c.Config.Session.CookieSecure
	if c.Config.App.Environment == "development" {
		sessionConfig.CookieSecure = false
	}
	router.Use(
		middleware.SessionMiddleware(sessionConfig),
		middleware.OptionalIdentityMiddleware(c.Config.Auth.JWTSecret),
	)

	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", healthCheckHandler(c))

		setupCartRoutes(v1, c)
		setupCheckoutRoutes(v1, c)
		setupOrderRoutes(v1, c)
	}

	return router
}

// ========================================
// CART ROUTES
// ========================================
func setupCartRoutes(v1 *gin.RouterGroup, c *container.Container) {
	cart := v1.Group("/cart")
	{
		cart.GET("", c.CartHandler.GetCart)
		cart.DELETE("", c.CartHandler.Clear)
		cart.POST("/items", c.CartHandler.SetItem)
		cart.POST("/items/:productId/increment", c.CartHandler.Increment)
		cart.POST("/items/:productId/decrement", c.CartHandler.Decrement)
		cart.DELETE("/items/:productId", c.CartHandler.RemoveItem)
		cart.POST("/coupon", c.CartHandler.ApplyCoupon)
		cart.DELETE("/coupon", c.CartHandler.RemoveCoupon)
	}
}

// ========================================
// CHECKOUT ROUTES
// ========================================
func setupCheckoutRoutes(v1 *gin.RouterGroup, c *container.Container) {
	checkout := v1.Group("/checkout")
	{
		checkout.POST("", c.CheckoutHandler.Submit)
		checkout.POST("/validate", c.CheckoutHandler.Validate)
		checkout.POST("/validate-registration", c.CheckoutHandler.ValidateRegistration)
	}
}

// ========================================
// ORDER ROUTES
// ========================================
func setupOrderRoutes(v1 *gin.RouterGroup, c *container.Container) {
	orders := v1.Group("/orders")
	{
		orders.GET("/:orderId", c.OrderHandler.Get)
		orders.GET("/:orderId/timeline", c.OrderHandler.Timeline)
		orders.PATCH("/:orderId/status", c.OrderHandler.UpdateStatus)
		orders.POST("/:orderId/cancel", c.OrderHandler.Cancel)
		orders.GET("/:orderId/receipt", c.OrderHandler.Receipt)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"store":     appCtx.Config.App.StoreName,
		}

		// Check redis (in-memory mode reports "disabled")
		redisStatus := "disabled"
		if appCtx.Redis != nil {
			redisStatus = "ok"

			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Redis.Ping(ctx).Err(); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		health["services"] = gin.H{
			"redis": redisStatus,
		}

		statusCode := http.StatusOK
		if health["status"] != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
