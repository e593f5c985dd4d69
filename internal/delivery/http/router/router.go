// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/kendymann/leftover-love/internal/delivery/http/middleware"
	"github.com/kendymann/leftover-love/internal/delivery/http/router/handler"
	"github.com/kendymann/leftover-love/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	RestaurantHandler *handler.RestaurantHandler
	CharityHandler    *handler.CharityHandler
	ListingHandler    *handler.ListingHandler
	StatsHandler      *handler.StatsHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	restaurantHandler *handler.RestaurantHandler
	charityHandler    *handler.CharityHandler
	listingHandler    *handler.ListingHandler
	statsHandler      *handler.StatsHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		restaurantHandler: params.RestaurantHandler,
		charityHandler:    params.CharityHandler,
		listingHandler:    params.ListingHandler,
		statsHandler:      params.StatsHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Global impact statistics, public
	api.GET("/stats", r.statsHandler.GetGlobalStats)

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.GetMe, r.authMiddleware.Authenticate)
		authGroup.PUT("/update", r.authHandler.UpdateAccount, r.authMiddleware.Authenticate)
		authGroup.PUT("/password", r.authHandler.ChangePassword, r.authMiddleware.Authenticate)
		authGroup.DELETE("/delete", r.authHandler.DeleteAccount, r.authMiddleware.Authenticate)
	}

	// Restaurant routes that require authentication and "restaurant" role
	restaurantGroup := api.Group("/restaurants")
	restaurantGroup.Use(r.authMiddleware.Authenticate)
	restaurantGroup.Use(r.authMiddleware.RequireRole(entity.RoleRestaurant))
	{
		restaurantGroup.POST("/profile", r.restaurantHandler.CreateProfile)
		restaurantGroup.GET("/profile", r.restaurantHandler.GetProfile)
		restaurantGroup.PUT("/profile", r.restaurantHandler.UpdateProfile)
		restaurantGroup.GET("/stats", r.restaurantHandler.GetStats)
		restaurantGroup.GET("/listings", r.restaurantHandler.GetListings)
		restaurantGroup.GET("/pickups", r.restaurantHandler.GetPickups)
	}

	// Charity routes that require authentication and "charity" role
	charityGroup := api.Group("/charities")
	charityGroup.Use(r.authMiddleware.Authenticate)
	charityGroup.Use(r.authMiddleware.RequireRole(entity.RoleCharity))
	{
		charityGroup.POST("/profile", r.charityHandler.CreateProfile)
		charityGroup.GET("/profile", r.charityHandler.GetProfile)
		charityGroup.PUT("/profile", r.charityHandler.UpdateProfile)
		charityGroup.GET("/stats", r.charityHandler.GetStats)
		charityGroup.GET("/pickups", r.charityHandler.GetPickups)
	}

	// Listing routes; browsing is public, mutations are role-gated
	listingGroup := api.Group("/listings")
	{
		listingGroup.GET("", r.listingHandler.ListAvailable)
		listingGroup.POST("", r.listingHandler.Create,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleRestaurant))
		listingGroup.PUT("/:id", r.listingHandler.Update,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleRestaurant))
		listingGroup.DELETE("/:id", r.listingHandler.Delete,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleRestaurant))
		listingGroup.POST("/:id/pickup", r.listingHandler.SchedulePickup,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleCharity))
		listingGroup.PUT("/pickups/:id", r.listingHandler.UpdatePickup, r.authMiddleware.Authenticate)
	}
}
