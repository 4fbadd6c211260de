package handlers

import (
	"net/http"

	"warung-pos-api/config"
	"warung-pos-api/middleware"
	"warung-pos-api/models"

	"github.com/gin-gonic/gin"
)

// ── Dining Tables ────────────────────────────────────────────────────

type CreateTableRequest struct {
	Number   int `json:"number" binding:"required,gt=0"`
	Capacity int `json:"capacity" binding:"gte=0"`
}

// ListTables returns the owner's tables with their stored status.
// For the effective floor view (occupied derived from orders) use
// GetFloor instead.
func ListTables(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	var tables []models.DiningTable
	config.DB.Where("owner_id = ?", ownerID).Order("number asc").Find(&tables)
	c.JSON(http.StatusOK, gin.H{"count": len(tables), "tables": tables})
}

// CreateTable adds a physical table. Number 0 is the takeaway sentinel
// and can never be a real table.
func CreateTable(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	var req CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.DiningTable
	if err := config.DB.Where("owner_id = ? AND number = ?", ownerID, req.Number).
		First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Table number already exists"})
		return
	}

	capacity := req.Capacity
	if capacity == 0 {
		capacity = 4
	}
	table := models.DiningTable{
		OwnerID:  ownerID,
		Number:   req.Number,
		Capacity: capacity,
		Status:   models.TableAvailable,
	}
	if err := config.DB.Create(&table).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create table"})
		return
	}
	hub.Publish(ownerID, "tables")
	c.JSON(http.StatusCreated, gin.H{"message": "Table created", "table": table})
}

type SetTableStatusRequest struct {
	Status models.TableStatus `json:"status" binding:"required"`
}

// SetTableStatus lets staff mark a table available or reserved for
// walk-in management. "occupied" is not settable — it exists only as a
// projection of active orders.
func SetTableStatus(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	var req SetTableStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Status != models.TableAvailable && req.Status != models.TableReserved {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be 'available' or 'reserved'"})
		return
	}

	var table models.DiningTable
	if err := config.DB.Where("owner_id = ?", ownerID).
		First(&table, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Table not found"})
		return
	}

	config.DB.Model(&table).Update("status", req.Status)
	hub.Publish(ownerID, "tables")
	c.JSON(http.StatusOK, gin.H{"message": "Table status updated", "table": table})
}

// DeleteTable removes a physical table
func DeleteTable(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	res := config.DB.Where("owner_id = ?", ownerID).
		Delete(&models.DiningTable{}, c.Param("id"))
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Table not found"})
		return
	}
	hub.Publish(ownerID, "tables")
	c.JSON(http.StatusOK, gin.H{"message": "Table deleted"})
}

// GetFloor returns the derived floor state: each table's effective
// status plus one virtual card per active takeaway order.
func GetFloor(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	cards, err := floorSvc.FloorState(ownerID)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	stats := map[string]int{}
	for _, card := range cards {
		if !card.Takeaway {
			stats[card.Status]++
		}
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats, "floor": cards})
}
