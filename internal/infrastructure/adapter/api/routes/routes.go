package routes

import (
	"github.com/gin-gonic/gin"

	coreport "payment-gateway/internal/domain/port/core"
	"payment-gateway/internal/infrastructure/adapter/api/handler"
	"payment-gateway/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	paymentHandler *handler.PaymentHandler,
) {
	// Payment routes
	paymentRoutes := router.Group("/payment")
	{
		// POST /payment/create_url
		paymentRoutes.POST("/create_url", paymentHandler.CreatePaymentURL)

		// GET /payment/vnpay_return
		paymentRoutes.GET("/vnpay_return", paymentHandler.HandleReturn)

		// GET /payment/vnpay_ipn
		paymentRoutes.GET("/vnpay_ipn", paymentHandler.HandleIPN)

		// GET /payment/order/:orderId
		paymentRoutes.GET("/order/:orderId", paymentHandler.GetPaymentsByOrder)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
