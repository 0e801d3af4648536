package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mkarev/shopapi/internal/server/http/dto"
	"github.com/mkarev/shopapi/internal/server/http/handlers"
	"github.com/mkarev/shopapi/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.ShopFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.Metrics())
	engine.Use(cors.Default())
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	productHandler := handlers.NewProductHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)

	authenticated := middleware.AuthRequired(facade)
	adminOnly := middleware.AdminRequired(facade)

	user := engine.Group("/user")
	user.POST("/signup", authHandler.Signup)
	user.POST("/login", authHandler.Login)

	engine.GET("/products", productHandler.List)
	engine.GET("/products/:id", productHandler.Get)
	engine.POST("/products", authenticated, adminOnly, productHandler.Create)

	orders := engine.Group("/orders")
	orders.Use(authenticated)
	orders.POST("", orderHandler.Create)
	orders.GET("", adminOnly, orderHandler.List)
	orders.PUT("/mark-delivered/:id", adminOnly, orderHandler.MarkDelivered)

	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "This route does not exist"})
	})

	return engine
}
