package publicController

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"courseweb/middleware"
	"courseweb/models"
	"courseweb/views"
)

// Home renders the landing page with the featured course grid
func Home(c *fiber.Ctx) error {
	api := middleware.Api(c)

	courses, err := api.Courses()
	if err != nil {
		return c.Render("index", middleware.PageData(c, fiber.Map{
			"Error": "خطأ في تحميل الكورسات: " + err.Error(),
		}), "layouts/main")
	}

	return c.Render("index", middleware.PageData(c, fiber.Map{
		"Cards":        views.NewCourseCards(courses),
		"CoursesCount": len(courses),
	}), "layouts/main")
}

// CourseList renders the full course grid, optionally narrowed to one
// category via the query string
func CourseList(c *fiber.Ctx) error {
	api := middleware.Api(c)
	category := c.Query("category")

	courses, err := api.Courses()
	if err != nil {
		return c.Render("courses", middleware.PageData(c, fiber.Map{
			"PageTitle": "جميع الكورسات",
			"Error":     "خطأ في تحميل الكورسات: " + err.Error(),
		}), "layouts/main")
	}

	if category != "" {
		filtered := make([]models.Course, 0, len(courses))
		for _, course := range courses {
			if course.Category == category {
				filtered = append(filtered, course)
			}
		}
		courses = filtered
	}

	pageTitle := "جميع الكورسات"
	if category != "" {
		pageTitle = "كورسات " + category
	}

	return c.Render("courses", middleware.PageData(c, fiber.Map{
		"PageTitle": pageTitle,
		"Category":  category,
		"Cards":     views.NewCourseCards(courses),
	}), "layouts/main")
}

// CourseDetail renders the course page. The course and its lesson list
// are fetched concurrently and merged before rendering; selecting a
// lesson via the query string fills the player region.
func CourseDetail(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil || courseID <= 0 {
		return c.Redirect("/courses")
	}

	api := middleware.Api(c)

	var course *models.Course
	var lessons []models.Lesson

	var group errgroup.Group
	group.Go(func() error {
		var fetchErr error
		course, fetchErr = api.Course(courseID)
		return fetchErr
	})
	group.Go(func() error {
		var fetchErr error
		lessons, fetchErr = api.CourseLessons(courseID)
		return fetchErr
	})

	if err := group.Wait(); err != nil {
		return c.Render("course", middleware.PageData(c, fiber.Map{
			"Error": "خطأ في تحميل الكورس: " + err.Error(),
		}), "layouts/main")
	}

	// View-layer merge only; the relationship is not persisted here
	course.Lessons = lessons

	sess := middleware.Session(c)
	detail := views.NewCourseDetail(*course, sess.CurrentUser(), c.QueryInt("lesson"))

	return c.Render("course", middleware.PageData(c, fiber.Map{
		"Detail":   detail,
		"Enrolled": c.Query("enrolled") == "1",
		"Receipt":  c.Query("receipt") == "1",
		"Notice":   c.Query("notice"),
		"Flash":    c.Query("error"),
	}), "layouts/main")
}
