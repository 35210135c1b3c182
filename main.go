package main

import (
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"food-ordering-api/auth"
	"food-ordering-api/config"
	"food-ordering-api/mailer"
	"food-ordering-api/routes"
)

func main() {
	// Structured logging (JSON to stdout)
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	db, err := config.OpenDatabase(cfg.DBPath)
	if err != nil {
		slog.Error("database setup failed", "error", err)
		os.Exit(1)
	}
	slog.Info("database connected and migrated", "path", cfg.DBPath)

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	mail := buildMailer(cfg)

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Default middleware: logger + recovery
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Food Ordering API",
		})
	})

	routes.SetupRoutes(r, db, tokens, mail, cfg.PublicBaseURL)

	slog.Info("server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func buildMailer(cfg *config.Config) mailer.Mailer {
	if cfg.SMTPHost == "" {
		slog.Warn("SMTP_HOST not set, outbound mail will be logged only")
		return mailer.LogMailer{}
	}
	port, err := strconv.Atoi(cfg.SMTPPort)
	if err != nil {
		port = 587
	}
	return mailer.NewSMTPMailer(cfg.SMTPHost, port, cfg.MailFrom, cfg.SMTPUsername, cfg.SMTPPassword)
}
