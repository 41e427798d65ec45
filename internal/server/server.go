package server

import (
	"fmt"
	"os"

	"github.com/farellandr/cinetix/config"
	"github.com/farellandr/cinetix/internal/handlers"
	"github.com/farellandr/cinetix/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	r := gin.Default()

	setupRoutes(r, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return r.Run(":" + port)
}

func setupRoutes(r *gin.Engine, db *gorm.DB) {
	r.Use(middleware.DatabaseMiddleware(db))

	api := r.Group("/api")
	{
		api.POST("/register", handlers.Register)
		api.POST("/login", handlers.Login)

		api.POST("/movies", handlers.CreateMovie)
		api.GET("/movies", handlers.ListMovies)
		api.PUT("/movies/:id", handlers.UpdateMovie)
		api.DELETE("/movies/:id", handlers.DeleteMovie)

		api.GET("/genres", handlers.ListGenres)
		api.GET("/rooms", handlers.ListRooms)

		api.POST("/screenings", handlers.CreateScreening)
		api.GET("/screenings/:movie_id", handlers.ListScreeningsByMovie)
		api.DELETE("/screenings/:id", handlers.DeleteScreening)
	}

	protected := r.Group("/api")
	protected.Use(middleware.JWTAuthMiddleware())
	{
		protected.POST("/rooms", handlers.CreateRoom)

		tickets := protected.Group("/tickets")
		{
			tickets.POST("", handlers.PurchaseTicket)
			tickets.GET("", handlers.ListMyTickets)
			tickets.POST("/:id/cancel", handlers.CancelTicket)
			tickets.GET("/:id/qr", handlers.GenerateTicketQR)
		}
	}
}
