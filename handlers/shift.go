package handlers

import (
	"net/http"
	"strconv"

	"warung-pos-api/middleware"

	"github.com/gin-gonic/gin"
)

type OpenShiftRequest struct {
	PICName      string `json:"pic_name" binding:"required"`
	StartingCash int64  `json:"starting_cash" binding:"required,gt=0"`
}

// OpenShift starts a cashier session with a starting cash float
func OpenShift(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	var req OpenShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shift, err := shiftSvc.Open(ownerID, req.PICName, req.StartingCash)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Shift opened", "shift": shift})
}

// GetActiveShift returns the running session with its realtime
// expected drawer, recomputed from the ledger on every call
func GetActiveShift(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	state, err := shiftSvc.Active(ownerID)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

type CloseShiftRequest struct {
	ActualCash int64 `json:"actual_cash" binding:"required,gte=0"`
}

// CloseShift ends the active session with the counted drawer amount
// and records the reconciliation result
func CloseShift(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	var req CloseShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shift, err := shiftSvc.Close(ownerID, req.ActualCash)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Shift closed", "shift": shift})
}

// GetShiftHistory returns recently closed sessions, newest first
func GetShiftHistory(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	shifts, err := shiftSvc.History(ownerID, limit)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(shifts), "shifts": shifts})
}

// DeleteShiftHistory removes one closed session record
func DeleteShiftHistory(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	if err := shiftSvc.DeleteHistory(ownerID, uint(id)); err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Shift record deleted"})
}
