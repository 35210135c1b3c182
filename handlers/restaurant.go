package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"food-ordering-api/models"
)

type RestaurantHandler struct {
	db *gorm.DB
}

func NewRestaurantHandler(db *gorm.DB) *RestaurantHandler {
	return &RestaurantHandler{db: db}
}

type CreateRestaurantRequest struct {
	Title       string  `json:"title" binding:"required"`
	Address     string  `json:"address" binding:"required"`
	ImageURL    string  `json:"imageUrl"`
	Time        string  `json:"time"`
	Pickup      *bool   `json:"pickup"`
	Delivery    *bool   `json:"delivery"`
	IsOpen      *bool   `json:"isOpen"`
	LogoURL     string  `json:"logoUrl"`
	Rating      float64 `json:"rating"`
	RatingCount int     `json:"ratingCount"`
	Code        string  `json:"code"`
}

// Create adds a new restaurant; title and address are mandatory
func (h *RestaurantHandler) Create(c *gin.Context) {
	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please provide title and address"})
		return
	}

	restaurant := models.Restaurant{
		Title:       req.Title,
		Address:     req.Address,
		ImageURL:    req.ImageURL,
		Time:        req.Time,
		Pickup:      boolOr(req.Pickup, true),
		Delivery:    boolOr(req.Delivery, true),
		IsOpen:      boolOr(req.IsOpen, true),
		LogoURL:     req.LogoURL,
		Rating:      req.Rating,
		RatingCount: req.RatingCount,
		Code:        req.Code,
	}
	if err := h.db.Create(&restaurant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create restaurant"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"message":    "New Restaurant Created Successfully",
		"restaurant": restaurant,
	})
}

// GetAll returns every restaurant
func (h *RestaurantHandler) GetAll(c *gin.Context) {
	var restaurants []models.Restaurant
	if err := h.db.Find(&restaurants).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch restaurants"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Restaurants Found Successfully",
		"totalCount":  len(restaurants),
		"restaurants": restaurants,
	})
}

// GetByID returns a single restaurant with its foods
func (h *RestaurantHandler) GetByID(c *gin.Context) {
	var restaurant models.Restaurant
	if err := h.db.Preload("Foods").First(&restaurant, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Restaurant Not Found By Id"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Restaurant Found Successfully By Id",
		"restaurant": restaurant,
	})
}

// Delete removes a restaurant; unknown ids are a 404, not a server fault
func (h *RestaurantHandler) Delete(c *gin.Context) {
	var restaurant models.Restaurant
	if err := h.db.First(&restaurant, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Restaurant Not Found By Id"})
		return
	}
	if err := h.db.Delete(&restaurant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete restaurant"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Restaurant Deleted Successfully"})
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}
