package routes

import (
	"net/http"
	"time"

	"foodbridge/handlers"
	"foodbridge/middleware"
	"foodbridge/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration and login endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.AuthHandler.RegisterHandler)
		api.POST("/login", hb.AuthHandler.LoginHandler)
	}
}

// RegisterUserRoutes registers user profile endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.AuthCache))
		api.GET("/:id", hb.UserHandler.GetUserByIDHandler)
		api.PUT("/:id", hb.UserHandler.UpdateUserHandler)
	}
}

// RegisterListingRoutes registers listing endpoints. Reads are open to any
// authenticated account; writes are restricted inside the service layer.
func RegisterListingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/listings")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.AuthCache))
		api.POST("", hb.ListingHandler.CreateListingHandler)
		api.GET("", hb.ListingHandler.GetListingsHandler)
		api.GET("/:id", hb.ListingHandler.GetListingHandler)
		api.PUT("/:id", hb.ListingHandler.UpdateListingHandler)
		api.DELETE("/:id", hb.ListingHandler.DeleteListingHandler)
	}
}

// RegisterRequestRoutes registers pickup-request endpoints.
func RegisterRequestRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/requests")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.AuthCache))
		api.POST("", hb.RequestHandler.CreateRequestHandler)
		api.GET("", hb.RequestHandler.GetRequestsHandler)
		api.GET("/:id", hb.RequestHandler.GetRequestHandler)
		api.PUT("/:id", hb.RequestHandler.UpdateRequestHandler)
	}
}

// RegisterNotificationRoutes registers notification feed endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.AuthCache))
		api.GET("", hb.NotificationHandler.GetNotificationsHandler)
		api.PUT("/:id/read", hb.NotificationHandler.MarkNotificationReadHandler)
	}
}

// RegisterMatchingRoutes registers the recommendation endpoint.
func RegisterMatchingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/matching")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.AuthCache))
		api.POST("", hb.MatchingHandler.MatchListingHandler)
	}
}

// RegisterCityRoutes registers city graph management endpoints.
func RegisterCityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/cities")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.AuthCache))
		api.GET("", hb.CityHandler.GetCitiesHandler)

		admin := api.Group("")
		admin.Use(middleware.RequireRoles(models.RoleAdmin))
		admin.POST("", hb.CityHandler.CreateCityHandler)
		admin.POST("/neighbors", hb.CityHandler.CreateNeighborHandler)
	}
}

// RegisterAdminRoutes registers admin-only endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.AuthCache))
		api.Use(middleware.RequireRoles(models.RoleAdmin))
		api.GET("/users", hb.AdminHandler.GetAllUsersHandler)
		api.GET("/listings", hb.AdminHandler.GetAllListingsHandler)
		api.GET("/requests", hb.AdminHandler.GetAllRequestsHandler)
		api.GET("/stats", hb.AdminHandler.GetStatsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterListingRoutes(r, hb)
	RegisterRequestRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterMatchingRoutes(r, hb)
	RegisterCityRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
