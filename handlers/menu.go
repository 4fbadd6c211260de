package handlers

import (
	"net/http"

	"warung-pos-api/config"
	"warung-pos-api/middleware"
	"warung-pos-api/models"

	"github.com/gin-gonic/gin"
)

// ── Menu Catalog ─────────────────────────────────────────────────────

type CreateMenuItemRequest struct {
	Name      string `json:"name" binding:"required"`
	UnitPrice int64  `json:"unit_price" binding:"required,gt=0"`
	ImageRef  string `json:"image_ref"`
	Category  string `json:"category"`
}

// GetMenu lists the owner's catalog, optionally filtered by category
func GetMenu(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	var items []models.MenuItem
	query := config.DB.Where("owner_id = ?", ownerID)

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if available := c.Query("available"); available == "true" {
		query = query.Where("is_available = ?", true)
	}
	query.Order("category, name").Find(&items)

	c.JSON(http.StatusOK, gin.H{"count": len(items), "menu": items})
}

// AddMenuItem creates a catalog entry. ImageRef is whatever reference
// the external blob store returned — the bytes never pass through here.
func AddMenuItem(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := models.MenuItem{
		OwnerID:     ownerID,
		Name:        req.Name,
		UnitPrice:   req.UnitPrice,
		ImageRef:    req.ImageRef,
		Category:    req.Category,
		IsAvailable: true,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create menu item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Menu item created", "item": item})
}

// UpdateMenuItem edits a catalog entry. Orders snapshot name/price, so
// edits never touch historical totals.
func UpdateMenuItem(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	var item models.MenuItem
	if err := config.DB.Where("owner_id = ?", ownerID).
		First(&item, c.Param("itemId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// Only allow safe fields
	allowed := map[string]bool{"name": true, "unit_price": true, "image_ref": true, "category": true, "is_available": true}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	config.DB.Model(&item).Updates(update)
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated", "item": item})
}

// DeleteMenuItem removes a catalog entry. Existing order lines keep
// their snapshots.
func DeleteMenuItem(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	res := config.DB.Where("owner_id = ?", ownerID).
		Delete(&models.MenuItem{}, c.Param("itemId"))
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}
