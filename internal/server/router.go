package server

import (
	"github.com/gin-gonic/gin"

	"github.com/rainaarpit12/Sih-2025/internal/handlers"
	"github.com/rainaarpit12/Sih-2025/internal/logger"
	"github.com/rainaarpit12/Sih-2025/internal/middleware"
	"github.com/rainaarpit12/Sih-2025/internal/types"
)

type RouterConfig struct {
	Log                *logger.Logger
	AuthMiddleware     *middleware.AuthMiddleware
	AuthHandler        handlers.AuthHandler
	HealthHandler      handlers.HealthHandler
	ProductHandler     handlers.ProductHandler
	DistributorHandler handlers.DistributorHandler
	RetailerHandler    handlers.RetailerHandler

	// AuthEnforced gates role checks on the write routes. When false the
	// write routes stay open, matching the pre-auth deployment.
	AuthEnforced bool
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.AttachTraceContext())
	if cfg.Log != nil {
		router.Use(middleware.RequestLogger(cfg.Log))
	}

	// guard authenticates and gates a write route to one role. It degrades
	// to a no-op when enforcement is off, matching the pre-auth deployment.
	guard := func(role string, handler gin.HandlerFunc) []gin.HandlerFunc {
		if !cfg.AuthEnforced {
			return []gin.HandlerFunc{handler}
		}
		return []gin.HandlerFunc{
			cfg.AuthMiddleware.RequireAuth(),
			cfg.AuthMiddleware.RequireRole(role),
			handler,
		}
	}

	// ===============
	// || Public    ||
	// ===============
	router.GET("/", cfg.HealthHandler.Root)

	api := router.Group("/api")
	{
		api.GET("/health", cfg.HealthHandler.Health)
		api.GET("/test", cfg.HealthHandler.Test)

		auth := api.Group("/auth")
		{
			auth.POST("/register", cfg.AuthHandler.Register)
			auth.POST("/login", cfg.AuthHandler.Login)
			auth.POST("/refresh", cfg.AuthHandler.Refresh)
		}

		products := api.Group("/products")
		{
			products.POST("/register", guard(types.RoleFarmer, cfg.ProductHandler.Register)...)
			products.GET("/verify/:encryptedCode", cfg.ProductHandler.Verify)
			products.GET("/debug/products", cfg.ProductHandler.DebugProducts)
			products.GET("/debug/records", cfg.ProductHandler.DebugLedgerRecords)
			products.GET("/:productId", cfg.ProductHandler.GetProduct)
		}

		distributor := api.Group("/distributor")
		{
			distributor.POST("/update-info/:productId", guard(types.RoleDistributor, cfg.DistributorHandler.UpdateInfo)...)
			distributor.GET("/info/:productId", cfg.DistributorHandler.GetInfo)
			distributor.DELETE("/info/:productId", guard(types.RoleDistributor, cfg.DistributorHandler.DeleteInfo)...)
			distributor.GET("/product-details/:encryptedCode", cfg.DistributorHandler.ProductDetails)
		}

		retailer := api.Group("/retailer")
		{
			retailer.POST("/update-info/:productId", guard(types.RoleRetailer, cfg.RetailerHandler.UpdateInfo)...)
			retailer.GET("/info/:productId", cfg.RetailerHandler.GetInfo)
			retailer.GET("/product-details/:encryptedCode", cfg.RetailerHandler.ProductDetails)
		}
	}

	// ===============
	// || Protected ||
	// ===============
	protected := router.Group("/api")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	protected.POST("/auth/logout", cfg.AuthHandler.Logout)

	return router
}
