package authRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "courseweb/controllers/authController"
	validators "courseweb/validators/authValidator"
)

// SetupAuthRoutes sets up login, registration and logout
func SetupAuthRoutes(app *fiber.App) {
	app.Get("/login", controllers.LoginPage)
	app.Post("/login", validators.Login(), controllers.Login)

	app.Get("/register", controllers.RegisterPage)
	app.Post("/register", validators.Register(), controllers.Register)

	app.Get("/logout", controllers.Logout)
}
