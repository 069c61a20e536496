// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"portal/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	SubscriptionHandler *handler.SubscriptionHandler
	DeviceHandler       *handler.DeviceHandler
	PinCodeHandler      *handler.PinCodeHandler
	BillingHandler      *handler.BillingHandler
	VPNServerHandler    *handler.VPNServerHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	subscriptionHandler *handler.SubscriptionHandler
	deviceHandler       *handler.DeviceHandler
	pinCodeHandler      *handler.PinCodeHandler
	billingHandler      *handler.BillingHandler
	vpnServerHandler    *handler.VPNServerHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		subscriptionHandler: params.SubscriptionHandler,
		deviceHandler:       params.DeviceHandler,
		pinCodeHandler:      params.PinCodeHandler,
		billingHandler:      params.BillingHandler,
		vpnServerHandler:    params.VPNServerHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// User routes; lookup takes uuid or email as query parameter
	userGroup := e.Group("/users")
	{
		userGroup.GET("", r.userHandler.GetUser)
		userGroup.POST("", r.userHandler.CreateUser)
		userGroup.PUT("/:userUUID", r.userHandler.UpdateUser)

		// Pairing pin codes
		userGroup.GET("/pincode/:pinCode", r.pinCodeHandler.ResolvePinCode)
		userGroup.POST("/pincode/:pinCode", r.pinCodeHandler.ExchangePinCode)
		userGroup.GET("/pincode/:pinCode/qr", r.pinCodeHandler.PinCodeQR)

		// Subscriptions of a user
		userGroup.GET("/:userUUID/subscriptions", r.subscriptionHandler.ListSubscriptions)
		userGroup.POST("/:userUUID/subscriptions", r.subscriptionHandler.CreateSubscription)
		userGroup.GET("/:userUUID/subscriptions/:subscriptionUUID", r.subscriptionHandler.GetSubscription)
		userGroup.PUT("/:userUUID/subscriptions/:subscriptionUUID", r.subscriptionHandler.UpdateSubscription)

		// Devices of a user
		userGroup.GET("/:userUUID/devices", r.deviceHandler.ListDevices)
		userGroup.POST("/:userUUID/devices", r.deviceHandler.CreateDevice)
		userGroup.GET("/:userUUID/devices/:deviceUUID", r.deviceHandler.GetDevice)
		userGroup.PUT("/:userUUID/devices/:deviceUUID", r.deviceHandler.UpdateDevice)
		userGroup.DELETE("/:userUUID/devices/:deviceUUID", r.deviceHandler.DeleteDevice)
	}

	// VPN server routes: full views, condition views, selection strategies
	serverGroup := e.Group("/servers")
	{
		serverGroup.GET("", r.vpnServerHandler.ListServers)
		serverGroup.POST("", r.vpnServerHandler.CreateServer)
		serverGroup.GET("/type/:typeID", r.vpnServerHandler.ListServersByType)
		serverGroup.GET("/status/:statusID", r.vpnServerHandler.ListServersByStatus)
		serverGroup.GET("/conditions", r.vpnServerHandler.ListConditions)
		serverGroup.GET("/conditions/type/:typeID", r.vpnServerHandler.ListConditionsByType)
		serverGroup.GET("/conditions/status/:statusID", r.vpnServerHandler.ListConditionsByStatus)
		serverGroup.GET("/random", r.vpnServerHandler.RandomServer)
		serverGroup.GET("/nearest", r.vpnServerHandler.NearestServer)
		serverGroup.GET("/:serverUUID", r.vpnServerHandler.GetServer)
		serverGroup.PUT("/:serverUUID", r.vpnServerHandler.UpdateServer)
		serverGroup.GET("/:serverUUID/condition", r.vpnServerHandler.GetServerCondition)
		serverGroup.GET("/:serverUUID/configuration", r.vpnServerHandler.GetServerConfiguration)
	}

	// Catalogs
	e.GET("/types", r.vpnServerHandler.ListTypes)
	e.GET("/statuses", r.vpnServerHandler.ListStatuses)

	// Payment provider callbacks
	e.POST("/payments/notification/:orderCode", r.billingHandler.PaymentNotification)
}
