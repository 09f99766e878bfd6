package teacherRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "courseweb/controllers/teacherController"
	"courseweb/middleware"
	courseValidators "courseweb/validators/courseValidator"
	lessonValidators "courseweb/validators/lessonValidator"
	quizValidators "courseweb/validators/quizValidator"
)

// SetupTeacherRoutes sets up the teacher dashboard
func SetupTeacherRoutes(app *fiber.App) {
	teacherGroup := app.Group("/teacher", middleware.RequireLogin)

	teacherGroup.Get("/", controllers.Dashboard)
	teacherGroup.Get("/courses", controllers.Courses)
	teacherGroup.Get("/courses/new", controllers.NewCourseForm)
	teacherGroup.Get("/courses/:id/edit", controllers.EditCourseForm)
	teacherGroup.Post("/courses/save", courseValidators.SaveCourse(), controllers.SaveCourse)
	teacherGroup.Post("/courses/:id/delete", controllers.DeleteCourse)

	teacherGroup.Get("/courses/:id/lessons", controllers.Lessons)
	teacherGroup.Post("/lessons/save", lessonValidators.SaveLesson(), controllers.SaveLesson)
	teacherGroup.Post("/lessons/:id/delete", controllers.DeleteLesson)
	teacherGroup.Post("/lessons/:id/move", controllers.MoveLesson)

	teacherGroup.Get("/lessons/:id/quiz", controllers.Quiz)
	teacherGroup.Post("/lessons/:id/quiz", quizValidators.CreateQuestion(), controllers.AddQuestion)
	teacherGroup.Post("/quizzes/:id/delete", controllers.DeleteQuestion)
}
