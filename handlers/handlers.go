package handlers

import (
	"errors"
	"net/http"

	"warung-pos-api/notify"
	"warung-pos-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	hub        *notify.Hub
	revenueSvc *services.RevenueService
	orderSvc   *services.OrderService
	floorSvc   *services.OccupancyService
	shiftSvc   *services.ShiftService
)

// Init wires the service layer. Must be called after config.InitDB and
// before route registration.
func Init(db *gorm.DB, h *notify.Hub) {
	hub = h
	revenueSvc = services.NewRevenueService(db, h)
	orderSvc = services.NewOrderService(db, revenueSvc, h)
	floorSvc = services.NewOccupancyService(db)
	shiftSvc = services.NewShiftService(db, h)
}

// abortServiceError maps service sentinel errors to HTTP status codes.
func abortServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrTableOccupied),
		errors.Is(err, services.ErrShiftActive),
		errors.Is(err, services.ErrAlreadyPaid),
		errors.Is(err, services.ErrNoActiveShift):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidTransition):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}
