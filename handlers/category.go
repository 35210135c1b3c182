package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"food-ordering-api/models"
)

type CategoryHandler struct {
	db *gorm.DB
}

func NewCategoryHandler(db *gorm.DB) *CategoryHandler {
	return &CategoryHandler{db: db}
}

type CreateCategoryRequest struct {
	Title    string `json:"title" binding:"required"`
	ImageURL string `json:"imageUrl"`
}

// Create adds a new category
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please provide title"})
		return
	}

	category := models.Category{Title: req.Title, ImageURL: req.ImageURL}
	if err := h.db.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create category"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Category Created Successfully",
		"category": category,
	})
}

// GetAll returns every category
func (h *CategoryHandler) GetAll(c *gin.Context) {
	var categories []models.Category
	if err := h.db.Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"message":         "Categories found successfully",
		"totalCategories": len(categories),
		"categories":      categories,
	})
}

// Update performs a partial merge on title/imageUrl
func (h *CategoryHandler) Update(c *gin.Context) {
	var category models.Category
	if err := h.db.First(&category, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "No category found with this Id"})
		return
	}

	var req struct {
		Title    string `json:"title"`
		ImageURL string `json:"imageUrl"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	update := map[string]interface{}{}
	if req.Title != "" {
		update["title"] = req.Title
	}
	if req.ImageURL != "" {
		update["image_url"] = req.ImageURL
	}
	if len(update) > 0 {
		if err := h.db.Model(&category).Updates(update).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error in updating category"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Category Updated Successfully"})
}

// Delete removes a category
func (h *CategoryHandler) Delete(c *gin.Context) {
	var category models.Category
	if err := h.db.First(&category, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Category Not Found"})
		return
	}
	if err := h.db.Delete(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error in Deleting Category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Category Deleted Successfully"})
}
