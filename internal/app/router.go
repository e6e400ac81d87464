package app

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"cabride/internal/handler"
	"cabride/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	RideHandler    *handler.RideHandler
	DriverHandler  *handler.DriverHandler
	RiderHandler   *handler.RiderHandler
	PaymentHandler *handler.PaymentHandler
	RatingHandler  *handler.RatingHandler
	RedisClient    *redis.Client
	NewRelicApp    *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(cors.Default())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	router.Use(middleware.IdempotencyMiddleware(deps.RedisClient))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// Rider routes.
		riders := v1.Group("/riders")
		{
			riders.POST("/register", deps.RiderHandler.Register)
			riders.GET("", deps.RiderHandler.GetAll)
			riders.GET("/:id", deps.RiderHandler.Get)
		}

		// Ride routes.
		rides := v1.Group("/rides")
		{
			rides.POST("", deps.RideHandler.BookRide)
			rides.GET("", deps.RideHandler.History)
			rides.GET("/:id", deps.RideHandler.GetRide)
			rides.POST("/:id/end", deps.RideHandler.EndRide)
			rides.GET("/:id/receipt", deps.PaymentHandler.GetReceipt)
		}

		// Fare routes.
		v1.GET("/fare/estimate", deps.RideHandler.EstimateFare)
		v1.GET("/locations", deps.RideHandler.Locations)

		// Driver routes.
		drivers := v1.Group("/drivers")
		{
			drivers.POST("/register", deps.DriverHandler.Register)
			drivers.GET("", deps.DriverHandler.GetAll)
			drivers.PUT("/:id/status", deps.DriverHandler.SetStatus)
			drivers.GET("/:id/active-ride", deps.DriverHandler.ActiveRide)
			drivers.GET("/:id/rides", deps.DriverHandler.RideHistory)
		}

		// Payment routes.
		payments := v1.Group("/payments")
		{
			payments.POST("", deps.PaymentHandler.ProcessPayment)
		}

		// Rating routes.
		ratings := v1.Group("/ratings")
		{
			ratings.POST("", deps.RatingHandler.Submit)
			ratings.GET("/for/:id", deps.RatingHandler.For)
			ratings.GET("/by/:id", deps.RatingHandler.By)
		}
	}

	return router
}
