package routes

import (
	"warung-pos-api/handlers"
	"warung-pos-api/middleware"
	"warung-pos-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", handlers.GetStateMachineInfo)
	}

	// ── Authenticated POS routes ───────────────────────────────────
	pos := r.Group("/api")
	pos.Use(middleware.AuthRequired())
	{
		pos.GET("/profile", handlers.GetProfile)

		// Menu catalog
		pos.GET("/menu", handlers.GetMenu)
		pos.POST("/menu", handlers.AddMenuItem)
		pos.PUT("/menu/:itemId", handlers.UpdateMenuItem)
		pos.DELETE("/menu/:itemId", handlers.DeleteMenuItem)

		// Dining tables & floor projection
		pos.GET("/tables", handlers.ListTables)
		pos.POST("/tables", handlers.CreateTable)
		pos.PUT("/tables/:id/status", handlers.SetTableStatus)
		pos.DELETE("/tables/:id", handlers.DeleteTable)
		pos.GET("/floor", handlers.GetFloor)

		// Orders
		pos.POST("/orders", handlers.SubmitOrder)
		pos.GET("/orders", handlers.ListOrders)
		pos.GET("/orders/:id", handlers.GetOrderDetail)
		pos.PUT("/orders/:id/status", handlers.AdvanceOrder)
		pos.PUT("/orders/:id/pay", handlers.PayOrder)
		pos.DELETE("/orders/:id", handlers.CancelOrder)
		pos.GET("/kitchen", handlers.GetKitchenBoard)

		// Revenue ledger
		pos.GET("/revenue", handlers.ListRevenue)
		pos.GET("/revenue/summary", handlers.GetRevenueSummary)
		pos.DELETE("/revenue", handlers.ResetRevenue)

		// Shifts
		pos.POST("/shifts/open", handlers.OpenShift)
		pos.POST("/shifts/close", handlers.CloseShift)
		pos.GET("/shifts/active", handlers.GetActiveShift)
		pos.GET("/shifts/history", handlers.GetShiftHistory)
		pos.DELETE("/shifts/history/:id", handlers.DeleteShiftHistory)

		// Dashboard & change notifications
		pos.GET("/dashboard", handlers.GetDashboard)
		pos.GET("/events", handlers.StreamEvents)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/orders", handlers.AdminGetAllOrders)
		admin.GET("/users", handlers.AdminGetAllUsers)
	}
}
