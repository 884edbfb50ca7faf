package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Salman-Farid/Mofa-s-Kitchen-Buddy/config"
	"github.com/Salman-Farid/Mofa-s-Kitchen-Buddy/internal/api"
	"github.com/Salman-Farid/Mofa-s-Kitchen-Buddy/internal/database"
	"github.com/Salman-Farid/Mofa-s-Kitchen-Buddy/internal/middleware"
	"github.com/Salman-Farid/Mofa-s-Kitchen-Buddy/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *gorm.DB
	logger *zap.Logger
}

// Deps bundles the services the handlers need.
type Deps struct {
	RecipeLog  *service.RecipeLogService
	Extraction *service.ExtractionService
	Images     service.ImageStore
}

// New creates a new server instance with all routes registered.
func New(cfg *config.Config, db *gorm.DB, deps Deps, logger *zap.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(
		middleware.Recovery(logger),
		middleware.RequestLogger(logger),
		cors.New(cors.Config{
			AllowOrigins:     cfg.Server.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
	)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to Mofa's Kitchen Buddy!",
			"version": "1.0.0",
		})
	})
	router.GET("/health", func(c *gin.Context) {
		if err := database.HealthCheck(c.Request.Context(), db); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api.NewIngredientHandler(db, logger).RegisterRoutes(router)
	api.NewRecipeHandler(db, deps.RecipeLog, deps.Extraction, deps.Images, logger).RegisterRoutes(router)
	api.NewChatbotHandler(db, logger).RegisterRoutes(router)

	return &Server{
		router: router,
		http: &http.Server{
			Addr:    cfg.Server.Host + ":" + cfg.Server.Port,
			Handler: router,
		},
		db:     db,
		logger: logger,
	}
}

// Start begins serving; it blocks until the listener stops.
func (s *Server) Start() error {
	s.logger.Info("starting server", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
