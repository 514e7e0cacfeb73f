package app

import (
	"github.com/gin-gonic/gin"

	"github.com/rainaarpit12/Sih-2025/internal/handlers"
	"github.com/rainaarpit12/Sih-2025/internal/logger"
	"github.com/rainaarpit12/Sih-2025/internal/middleware"
	"github.com/rainaarpit12/Sih-2025/internal/server"
)

type Handlers struct {
	Health      handlers.HealthHandler
	Auth        handlers.AuthHandler
	Product     handlers.ProductHandler
	Distributor handlers.DistributorHandler
	Retailer    handlers.RetailerHandler
}

type Middleware struct {
	Auth *middleware.AuthMiddleware
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:      handlers.NewHealthHandler(log),
		Auth:        handlers.NewAuthHandler(log, serviceset.Auth),
		Product:     handlers.NewProductHandler(log, serviceset.Product),
		Distributor: handlers.NewDistributorHandler(log, serviceset.Distributor),
		Retailer:    handlers.NewRetailerHandler(log, serviceset.Retailer),
	}
}

func wireMiddleware(log *logger.Logger, serviceset Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: middleware.NewAuthMiddleware(log, serviceset.Auth),
	}
}

func wireRouter(log *logger.Logger, cfg Config, handlerset Handlers, middlewareset Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		Log:                log,
		AuthMiddleware:     middlewareset.Auth,
		AuthHandler:        handlerset.Auth,
		HealthHandler:      handlerset.Health,
		ProductHandler:     handlerset.Product,
		DistributorHandler: handlerset.Distributor,
		RetailerHandler:    handlerset.Retailer,
		AuthEnforced:       cfg.AuthEnforced,
	})
}
