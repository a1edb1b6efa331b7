// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"shamba/internal/delivery/http/middleware"
	"shamba/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	PreferenceHandler *handler.PreferenceHandler
	CartHandler       *handler.CartHandler
	CatalogHandler    *handler.CatalogHandler
	WeatherHandler    *handler.WeatherHandler
	DiagnosisHandler  *handler.DiagnosisHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	preferenceHandler *handler.PreferenceHandler
	cartHandler       *handler.CartHandler
	catalogHandler    *handler.CatalogHandler
	weatherHandler    *handler.WeatherHandler
	diagnosisHandler  *handler.DiagnosisHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		preferenceHandler: params.PreferenceHandler,
		cartHandler:       params.CartHandler,
		catalogHandler:    params.CatalogHandler,
		weatherHandler:    params.WeatherHandler,
		diagnosisHandler:  params.DiagnosisHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/signup", r.authHandler.SignUp)
		authGroup.POST("/google", r.authHandler.SignInWithGoogle)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword)
	}

	// Public catalog and content routes
	e.GET("/products", r.catalogHandler.GetProducts)
	e.GET("/categories", r.catalogHandler.GetCategories)
	e.GET("/weather", r.weatherHandler.GetWeather)
	e.GET("/strings", r.preferenceHandler.GetStrings)

	// Preference routes
	prefGroup := e.Group("/preferences")
	{
		prefGroup.GET("", r.preferenceHandler.GetPreferences)
		prefGroup.PUT("/language", r.preferenceHandler.SetLanguage)
		prefGroup.POST("/theme/toggle", r.preferenceHandler.ToggleTheme)
	}

	// Cart routes
	cartGroup := e.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PUT("/items/:id", r.cartHandler.UpdateQuantity)
		cartGroup.DELETE("/items/:id", r.cartHandler.RemoveItem)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
		cartGroup.POST("/checkout", r.cartHandler.Checkout)
	}

	// Routes that require an authenticated session token
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.authHandler.GetProfile)
		userGroup.PUT("/profile", r.authHandler.UpdateProfile)
		userGroup.GET("/orders", r.catalogHandler.GetOrders)
	}

	diagnosisGroup := e.Group("/diagnosis")
	diagnosisGroup.Use(r.authMiddleware.Authenticate)
	{
		diagnosisGroup.POST("", r.diagnosisHandler.Diagnose)
		diagnosisGroup.GET("/history", r.diagnosisHandler.GetHistory)
	}
}
