package api

import (
	stdhttp "net/http"
	"time"

	intconfig "travelapp/internal/config"
	h "travelapp/internal/http/handlers"
	"travelapp/internal/http/middleware"
	"travelapp/internal/routegen"
	"travelapp/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env, sessions *services.SessionService, bookings *services.BookingService, gen *routegen.Generator) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     env.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	authHandler := h.NewAuthHandler(sessions, []byte(env.JWTSecret))
	routesHandler := h.NewRoutesHandler(gen)
	bookingsHandler := h.NewBookingsHandler(bookings)
	requireSession := middleware.RequireSession(sessions, []byte(env.JWTSecret))

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)

		api.GET("/locations", h.ListLocations)
		api.GET("/locations/:id", h.GetLocation)

		auth := api.Group("/auth")
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/me", authHandler.Me)

		// search and booking both require an authenticated session
		api.GET("/routes", requireSession, routesHandler.Search)

		bookingsGroup := api.Group("/bookings", requireSession)
		bookingsGroup.GET("", bookingsHandler.List)
		bookingsGroup.POST("", bookingsHandler.Create)
		bookingsGroup.GET("/:id", bookingsHandler.Get)
		bookingsGroup.POST("/:id/cancel", bookingsHandler.Cancel)
		bookingsGroup.GET("/:id/e-ticket", bookingsHandler.ETicket)
	}

	return r
}
