package handlers

import (
	"net/http"
	"time"

	"warung-pos-api/middleware"

	"github.com/gin-gonic/gin"
)

// parsePeriod reads from/to query params (RFC 3339). Defaults: from =
// start of today, to = now. The interval is half-open [from, to).
func parsePeriod(c *gin.Context) (time.Time, time.Time, bool) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := now

	if v := c.Query("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'from' timestamp, expected RFC 3339"})
			return from, to, false
		}
		from = t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'to' timestamp, expected RFC 3339"})
			return from, to, false
		}
		to = t
	}
	return from, to, true
}

// ListRevenue returns ledger entries for a period, newest first. The
// rows are flat records ready for CSV export by the client.
func ListRevenue(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	from, to, ok := parsePeriod(c)
	if !ok {
		return
	}

	entries, err := revenueSvc.ListForPeriod(ownerID, from, to)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	var total int64
	for _, e := range entries {
		total += e.TotalAmount
	}
	c.JSON(http.StatusOK, gin.H{
		"from":    from,
		"to":      to,
		"count":   len(entries),
		"total":   total,
		"entries": entries,
	})
}

// GetRevenueSummary aggregates a period by payment method and order
// type for the dashboard and profit/loss views
func GetRevenueSummary(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	from, to, ok := parsePeriod(c)
	if !ok {
		return
	}

	summary, err := revenueSvc.Summarize(ownerID, from, to)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// ResetRevenue bulk-deletes the owner's entire ledger. Irreversible,
// so the caller must pass ?confirm=true explicitly.
func ResetRevenue(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Revenue reset is irreversible. Repeat the request with ?confirm=true",
		})
		return
	}

	deleted, err := revenueSvc.ResetAll(ownerID)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Revenue ledger reset", "deleted": deleted})
}
