package paymentRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "courseweb/controllers/paymentController"
	"courseweb/middleware"
	validators "courseweb/validators/paymentValidator"
)

// SetupPaymentRoutes sets up enrollment and the manual payment flow
func SetupPaymentRoutes(app *fiber.App) {
	app.Post("/courses/:id/enroll", middleware.RequireLogin, controllers.Enroll)

	app.Get("/courses/:id/pay", middleware.RequireLogin, controllers.Wizard)
	app.Post("/courses/:id/pay", middleware.RequireLogin, validators.SubmitPayment(), controllers.Submit)

	app.Get("/payments", middleware.RequireLogin, controllers.MyPayments)
	app.Get("/payments/:id/receipt", middleware.RequireLogin, controllers.ReceiptPage)
	app.Post("/payments/:id/receipt", middleware.RequireLogin, controllers.UploadReceipt)
}
