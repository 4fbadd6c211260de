package handlers

import (
	"net/http"
	"time"

	"warung-pos-api/middleware"
	"warung-pos-api/money"

	"github.com/gin-gonic/gin"
)

// GetDashboard returns today's numbers in one call: revenue summary,
// active order counts and the floor occupancy stats.
func GetDashboard(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	summary, err := revenueSvc.Summarize(ownerID, startOfDay, now)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	board, err := orderSvc.KitchenBoard(ownerID)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	orderCounts := map[string]int{}
	activeOrders := 0
	for status, orders := range board {
		orderCounts[string(status)] = len(orders)
		activeOrders += len(orders)
	}

	cards, err := floorSvc.FloorState(ownerID)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	tableStats := map[string]int{}
	for _, card := range cards {
		if !card.Takeaway {
			tableStats[card.Status]++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"today_revenue":           summary.Total,
		"today_revenue_formatted": money.FormatRupiah(summary.Total),
		"today_transactions":      summary.Count,
		"revenue_by_method":       summary.ByMethod,
		"active_orders":           activeOrders,
		"orders_by_status":        orderCounts,
		"tables":                  tableStats,
	})
}
