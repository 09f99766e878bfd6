package adminRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "courseweb/controllers/adminController"
	"courseweb/middleware"
)

// SetupAdminRoutes sets up the admin dashboard
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.RequireLogin)

	adminGroup.Get("/", controllers.Dashboard)

	adminGroup.Get("/payments", controllers.Payments)
	adminGroup.Post("/payments/:id/status", controllers.UpdatePaymentStatus)

	adminGroup.Get("/notifications", controllers.Notifications)
	adminGroup.Post("/notifications/:id/read", controllers.MarkRead)
	adminGroup.Post("/notifications/read-all", controllers.MarkAllRead)

	// Polled by the header badge script
	adminGroup.Get("/api/notifications/count", controllers.NotificationCount)
}
