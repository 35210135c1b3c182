package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"food-ordering-api/models"
)

type FoodHandler struct {
	db *gorm.DB
}

func NewFoodHandler(db *gorm.DB) *FoodHandler {
	return &FoodHandler{db: db}
}

type CreateFoodRequest struct {
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description" binding:"required"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	RestaurantID uint    `json:"restaurant" binding:"required"`
	ImageURL     string  `json:"imageUrl"`
	FoodTags     string  `json:"foodTags"`
	Category     string  `json:"category"`
	Code         string  `json:"code"`
	IsAvailable  *bool   `json:"isAvailable"`
	Rating       float64 `json:"rating"`
}

// Create adds a food item to an existing restaurant
func (h *FoodHandler) Create(c *gin.Context) {
	var req CreateFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please provide all fields"})
		return
	}

	var restaurant models.Restaurant
	if err := h.db.First(&restaurant, req.RestaurantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Restaurant Not Found By Id"})
		return
	}

	food := models.Food{
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		RestaurantID: req.RestaurantID,
		ImageURL:     req.ImageURL,
		FoodTags:     req.FoodTags,
		Category:     req.Category,
		Code:         req.Code,
		IsAvailable:  boolOr(req.IsAvailable, true),
		Rating:       req.Rating,
	}
	if err := h.db.Create(&food).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create food"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Food created successfully",
		"food":    food,
	})
}

// GetAll returns every food item
func (h *FoodHandler) GetAll(c *gin.Context) {
	var foods []models.Food
	if err := h.db.Find(&foods).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch foods"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Foods fetched successfully",
		"count":   len(foods),
		"foods":   foods,
	})
}

// GetByID returns a single food item
func (h *FoodHandler) GetByID(c *gin.Context) {
	var food models.Food
	if err := h.db.First(&food, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "No food found with this id"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Food fetched successfully",
		"food":    food,
	})
}

// GetByRestaurant returns all foods owned by one restaurant
func (h *FoodHandler) GetByRestaurant(c *gin.Context) {
	var foods []models.Food
	if err := h.db.Where("restaurant_id = ?", c.Param("id")).Find(&foods).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch foods"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Food based on restaurant fetched successfully",
		"count":   len(foods),
		"foods":   foods,
	})
}

// Update performs a partial merge: only provided fields overwrite. Ownership
// never transfers, so the restaurant reference is not updatable.
func (h *FoodHandler) Update(c *gin.Context) {
	var food models.Food
	if err := h.db.First(&food, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "No food found with this id"})
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	allowed := map[string]string{
		"title":       "title",
		"description": "description",
		"price":       "price",
		"imageUrl":    "image_url",
		"foodTags":    "food_tags",
		"category":    "category",
		"code":        "code",
		"isAvailable": "is_available",
		"rating":      "rating",
	}
	update := map[string]interface{}{}
	for k, v := range req {
		if col, ok := allowed[k]; ok {
			update[col] = v
		}
	}
	if len(update) > 0 {
		if err := h.db.Model(&food).Updates(update).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update food"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Food updated successfully",
		"food":    food,
	})
}

// Delete removes a food item
func (h *FoodHandler) Delete(c *gin.Context) {
	var food models.Food
	if err := h.db.First(&food, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "No food found with this id"})
		return
	}
	if err := h.db.Delete(&food).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete food"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Food deleted successfully"})
}
