package publicRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "courseweb/controllers/publicController"
)

// SetupPublicRoutes sets up the public browsing pages
func SetupPublicRoutes(app *fiber.App) {
	app.Get("/", controllers.Home)
	app.Get("/courses", controllers.CourseList)
	app.Get("/courses/:id", controllers.CourseDetail)
}
