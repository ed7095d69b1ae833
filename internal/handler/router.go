package handler

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stayloop/stayloop/internal/facade"
	"github.com/stayloop/stayloop/internal/middleware"
	"github.com/stayloop/stayloop/internal/tokenstore"
)

// RouterDeps carries everything the route table needs. The facade is
// injected explicitly so tests can assemble a router around an in-memory
// or SQLite-backed instance without a running server.
type RouterDeps struct {
	Facade       *facade.Facade
	JWTSecret    string
	JWTExpiry    time.Duration
	Revoked      *tokenstore.RevocationStore // nil disables logout revocation
	LoginLimiter gin.HandlerFunc             // nil disables login rate limiting
	IsProduction bool
}

// NewRouter builds the full route table under /api/v1.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.HSTSMiddleware(deps.IsProduction))

	authHandler := NewAuthHandler(deps.Facade, deps.JWTSecret, deps.JWTExpiry, deps.Revoked, deps.IsProduction)
	userHandler := NewUserHandler(deps.Facade)
	placeHandler := NewPlaceHandler(deps.Facade)
	amenityHandler := NewAmenityHandler(deps.Facade)
	reviewHandler := NewReviewHandler(deps.Facade)

	authRequired := middleware.AuthMiddleware(deps.JWTSecret, deps.Revoked)
	adminRequired := middleware.AdminMiddleware()

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		login := auth.Group("")
		if deps.LoginLimiter != nil {
			login.Use(deps.LoginLimiter)
		}
		login.POST("/login", authHandler.Login)
		auth.POST("/logout", authRequired, authHandler.Logout)
	}

	users := v1.Group("/users")
	{
		users.POST("/", authRequired, adminRequired, userHandler.Create)
		users.GET("/", userHandler.List)
		users.GET("/home", authRequired, userHandler.Home)
		users.GET("/:id", userHandler.Get)
		users.PUT("/:id", authRequired, userHandler.Update)
		users.DELETE("/:id", authRequired, userHandler.Delete)
	}

	places := v1.Group("/places")
	{
		places.POST("/", authRequired, placeHandler.Create)
		places.GET("/", placeHandler.List)
		places.GET("/:id", placeHandler.Get)
		places.GET("/:id/reviews", reviewHandler.ListByPlace)
		places.PUT("/:id", authRequired, placeHandler.Update)
		places.DELETE("/:id", authRequired, placeHandler.Delete)
	}

	amenities := v1.Group("/amenities")
	{
		amenities.POST("/", authRequired, adminRequired, amenityHandler.Create)
		amenities.GET("/", amenityHandler.List)
		amenities.GET("/:id", amenityHandler.Get)
		amenities.PUT("/:id", authRequired, adminRequired, amenityHandler.Update)
		// No auth on amenity delete: preserved from the original service.
		amenities.DELETE("/:id", amenityHandler.Delete)
	}

	reviews := v1.Group("/reviews")
	{
		reviews.POST("/", authRequired, reviewHandler.Create)
		reviews.GET("/", reviewHandler.List)
		reviews.GET("/:id", reviewHandler.Get)
		reviews.PUT("/:id", authRequired, reviewHandler.Update)
		reviews.DELETE("/:id", authRequired, reviewHandler.Delete)
	}

	return router
}
