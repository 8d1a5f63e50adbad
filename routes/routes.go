package routes

import (
	"github.com/gin-gonic/gin"

	"cafe-admin-api/auth"
	"cafe-admin-api/handlers"
	"cafe-admin-api/middleware"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler, tokens *auth.Tokens) {
	r.GET("/health", h.Health)

	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", h.Register)
		public.POST("/auth/login", h.Login)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", h.GetStateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	api := r.Group("/api")
	api.Use(middleware.AuthRequired(tokens))
	{
		api.POST("/auth/logout", h.Logout)
		api.GET("/profile", h.GetProfile)

		dashboard := api.Group("/dashboard")
		dashboard.GET("", h.GetDashboard)
		dashboard.GET("/stats", h.GetStats)
		dashboard.GET("/revenue", h.GetRevenue)
		dashboard.GET("/popular", h.GetPopularItems)
		dashboard.GET("/recent", h.GetRecent)
		dashboard.POST("/refresh", h.Refresh)

		food := api.Group("/food")
		food.GET("", h.ListFood)
		food.POST("", h.AddFood)
		food.GET("/:id", h.GetFood)
		food.PUT("/:id", h.UpdateFood)
		food.DELETE("/:id", h.DeleteFood)

		orders := api.Group("/orders")
		orders.GET("", h.ListOrders)
		orders.POST("", h.AddOrder)
		orders.GET("/:id", h.GetOrder)
		orders.PUT("/:id", h.EditOrder)
		orders.PUT("/:id/status", h.UpdateOrderStatus)
		orders.PUT("/:id/cancel", h.CancelOrder)
		orders.DELETE("/:id", h.DeleteOrder)
		orders.GET("/:id/history", h.GetOrderHistory)
		orders.POST("/:id/reorder", h.Reorder)

		checkout := api.Group("/checkout")
		checkout.POST("", h.StartCheckout)
		checkout.POST("/:linkId/complete", h.CompleteCheckout)

		reservations := api.Group("/reservations")
		reservations.GET("", h.ListReservations)
		reservations.POST("", h.AddReservation)
		reservations.PUT("/:id", h.UpdateReservation)
		reservations.PUT("/:id/status", h.SetReservationStatus)
		reservations.DELETE("/:id", h.DeleteReservation)

		support := api.Group("/support")
		support.GET("", h.ListTickets)
		support.POST("", h.AddTicket)
		support.GET("/:id", h.GetTicket)
		support.PUT("/:id", h.UpdateTicket)
		support.PUT("/:id/status", h.UpdateTicketStatus)
		support.DELETE("/:id", h.DeleteTicket)

		feedback := api.Group("/feedback")
		feedback.GET("", h.ListFeedback)
		feedback.POST("", h.AddFeedback)
		feedback.GET("/:id", h.GetFeedback)
		feedback.PUT("/:id", h.UpdateFeedback)
		feedback.PUT("/:id/status", h.UpdateFeedbackStatus)
		feedback.PUT("/:id/response", h.RespondToFeedback)
		feedback.DELETE("/:id", h.DeleteFeedback)
	}
}
