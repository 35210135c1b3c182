package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"food-ordering-api/auth"
	"food-ordering-api/handlers"
	"food-ordering-api/mailer"
	"food-ordering-api/middleware"
)

// SetupRoutes wires every handler under /api/v1. Dependencies come in
// explicitly; nothing here reaches for package globals.
func SetupRoutes(r *gin.Engine, db *gorm.DB, tokens *auth.TokenService, mail mailer.Mailer, baseURL string) {
	authHandler := handlers.NewAuthHandler(db, tokens, mail, baseURL)
	adminHandler := handlers.NewAdminHandler(db, tokens)
	userHandler := handlers.NewUserHandler(db)
	restaurantHandler := handlers.NewRestaurantHandler(db)
	foodHandler := handlers.NewFoodHandler(db)
	categoryHandler := handlers.NewCategoryHandler(db)
	orderHandler := handlers.NewOrderHandler(db)

	authenticated := middleware.Authenticate(tokens)
	adminOnly := middleware.AdminOnly(db)

	api := r.Group("/api/v1")

	// ── Public auth routes ─────────────────────────────────────────
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/verifyEmail", authHandler.VerifyEmail)
		authGroup.POST("/forgot", authHandler.ForgotPassword)
		authGroup.POST("/updatepassword", authHandler.ResetPasswordByToken)
	}

	// ── Admin auth routes ──────────────────────────────────────────
	adminGroup := api.Group("/admin")
	{
		adminGroup.POST("/register", adminHandler.Register)
		adminGroup.POST("/login", adminHandler.Login)
	}

	// ── Self-service user routes ───────────────────────────────────
	userGroup := api.Group("/user")
	userGroup.Use(authenticated)
	{
		userGroup.GET("/getUser", userHandler.GetUser)
		userGroup.PUT("/updateUser", userHandler.UpdateUser)
		userGroup.PUT("/updatePassword", userHandler.UpdatePassword)
		userGroup.POST("/resetPassword", userHandler.ResetPasswordByAnswer)
		userGroup.DELETE("/deleteUser", userHandler.DeleteUser)
	}

	// ── Food catalog + ordering ────────────────────────────────────
	foodGroup := api.Group("/food")
	{
		foodGroup.GET("/getall", foodHandler.GetAll)
		foodGroup.GET("/get/:id", foodHandler.GetByID)
		foodGroup.GET("/getbyrestaurant/:id", foodHandler.GetByRestaurant)
		foodGroup.POST("/create", authenticated, adminOnly, foodHandler.Create)
		foodGroup.PUT("/update/:id", authenticated, adminOnly, foodHandler.Update)
		foodGroup.DELETE("/delete/:id", authenticated, adminOnly, foodHandler.Delete)
		foodGroup.POST("/placeorder", authenticated, orderHandler.PlaceOrder)
		foodGroup.POST("/orderstatus/:id", authenticated, adminOnly, orderHandler.UpdateStatus)
	}

	// ── Restaurant catalog ─────────────────────────────────────────
	restaurantGroup := api.Group("/restaurant")
	{
		restaurantGroup.GET("/getall", restaurantHandler.GetAll)
		restaurantGroup.GET("/get/:id", restaurantHandler.GetByID)
		restaurantGroup.POST("/create", authenticated, adminOnly, restaurantHandler.Create)
		restaurantGroup.DELETE("/delete/:id", authenticated, adminOnly, restaurantHandler.Delete)
	}

	// ── Category catalog ───────────────────────────────────────────
	categoryGroup := api.Group("/category")
	{
		categoryGroup.GET("/getall", categoryHandler.GetAll)
		categoryGroup.POST("/create", authenticated, adminOnly, categoryHandler.Create)
		categoryGroup.PUT("/update/:id", authenticated, adminOnly, categoryHandler.Update)
		categoryGroup.DELETE("/delete/:id", authenticated, adminOnly, categoryHandler.Delete)
	}
}
