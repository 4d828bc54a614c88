package http

import (
	"github.com/balady/orderledger/internal/adapter/config"
	"github.com/balady/orderledger/internal/core/domain"
	"github.com/balady/orderledger/internal/core/port"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.HTTP,
	tokenService port.TokenService,
	userHandler *UserHandler,
	orderHandler *OrderHandler,
	settlementHandler *SettlementHandler,
	logger *zap.Logger) (*Router, error) {

	router := gin.New()

	h := NewHandler(logger)

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		user := api.Group("/user")
		{
			user.POST("/register", userHandler.RegisterAccount)
			user.POST("/login", userHandler.LoginAccount)
		}

		authed := api.Group("")
		authed.Use(authCheck(tokenService, h))
		{
			orders := authed.Group("/orders")
			{
				orders.POST("", requireRole(h, domain.RoleCustomer), orderHandler.PlaceOrder)
				orders.GET("", orderHandler.ListMyOrders)
				orders.GET("/:number", orderHandler.GetOrder)
				orders.GET("/:number/breakdown", orderHandler.GetOrderBreakdown)
				orders.PATCH("/:number/status",
					requireRole(h, domain.RoleShop, domain.RoleRider), orderHandler.TransitionOrder)
				orders.POST("/:number/cancel",
					requireRole(h, domain.RoleCustomer, domain.RoleShop, domain.RoleAdmin),
					orderHandler.CancelOrder)
			}

			authed.GET("/customer/points",
				requireRole(h, domain.RoleCustomer), userHandler.CustomerPoints)

			admin := authed.Group("/admin")
			admin.Use(requireRole(h, domain.RoleAdmin))
			{
				admin.POST("/periods/close", settlementHandler.CloseWeek)
				admin.GET("/periods/:id/report", settlementHandler.SettlementReport)
				admin.POST("/settlements/shops/:id/settle", settlementHandler.SettleShopSettlement)
				admin.POST("/settlements/riders/:id/settle", settlementHandler.SettleRiderSettlement)
			}
		}
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
