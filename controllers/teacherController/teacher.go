package teacherController

import (
	"fmt"
	"mime/multipart"
	"net/url"
	"path/filepath"
	"sort"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"courseweb/client"
	"courseweb/middleware"
	"courseweb/models"
	"courseweb/validators/courseValidator"
	"courseweb/validators/lessonValidator"
	"courseweb/views"
)

// myCourses narrows the course list to the ones this user teaches.
// Admins see everything. Display-side filtering only; the API still
// rejects edits on courses the user does not own.
func myCourses(courses []models.Course, user *models.User) []models.Course {
	if user == nil {
		return nil
	}
	if user.Role == models.RoleAdmin {
		return courses
	}

	var mine []models.Course
	for _, course := range courses {
		if course.InstructorID == user.ID || course.Instructor == user.Name {
			mine = append(mine, course)
		}
	}
	return mine
}

// Dashboard renders the teacher landing page with course counts
func Dashboard(c *fiber.Ctx) error {
	sess := middleware.Session(c)
	api := middleware.Api(c)

	courses, err := api.Courses()
	if err != nil {
		return c.Render("teacher/index", middleware.PageData(c, fiber.Map{
			"Error": err.Error(),
		}), "layouts/dashboard")
	}

	mine := myCourses(courses, sess.CurrentUser())

	recent := mine
	if len(recent) > 5 {
		recent = recent[:5]
	}

	return c.Render("teacher/index", middleware.PageData(c, fiber.Map{
		"MyCoursesCount": len(mine),
		"RecentCourses":  views.NewCourseCards(recent),
	}), "layouts/dashboard")
}

// Courses renders the my-courses management grid
func Courses(c *fiber.Ctx) error {
	sess := middleware.Session(c)
	api := middleware.Api(c)

	courses, err := api.Courses()
	if err != nil {
		return c.Render("teacher/courses", middleware.PageData(c, fiber.Map{
			"Error": "خطأ في تحميل الكورسات: " + err.Error(),
		}), "layouts/dashboard")
	}

	return c.Render("teacher/courses", middleware.PageData(c, fiber.Map{
		"Courses": myCourses(courses, sess.CurrentUser()),
		"Flash":   c.Query("error"),
		"Notice":  c.Query("notice"),
	}), "layouts/dashboard")
}

// NewCourseForm renders an empty course form with the current user
// prefilled as instructor
func NewCourseForm(c *fiber.Ctx) error {
	sess := middleware.Session(c)

	instructor := ""
	if user := sess.CurrentUser(); user != nil {
		instructor = user.Name
	}

	return c.Render("teacher/course_form", middleware.PageData(c, fiber.Map{
		"FormTitle":  "إضافة كورس جديد",
		"Instructor": instructor,
		"Flash":      c.Query("error"),
	}), "layouts/dashboard")
}

// EditCourseForm renders the course form prefilled from the server
func EditCourseForm(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil || courseID <= 0 {
		return c.Redirect("/teacher/courses")
	}

	api := middleware.Api(c)

	course, err := api.Course(courseID)
	if err != nil {
		return c.Redirect("/teacher/courses?error=" + url.QueryEscape(err.Error()))
	}

	return c.Render("teacher/course_form", middleware.PageData(c, fiber.Map{
		"FormTitle": "تعديل الكورس",
		"Course":    course,
		"Flash":     c.Query("error"),
	}), "layouts/dashboard")
}

// SaveCourse creates or updates a course from the validated form. An
// attached thumbnail file goes through the two-step upload first; if
// that fails the submitted URL (or none) is used instead, matching the
// forgiving behavior of the thumbnail field.
func SaveCourse(c *fiber.Ctx) error {
	form := c.Locals("validatedCourse").(*courseValidator.CourseForm)
	api := middleware.Api(c)

	thumbnailURL := form.ThumbnailURL
	if file, err := c.FormFile("thumbnail_file"); err == nil && file != nil {
		if uploaded, uploadErr := uploadFile(api, file, "thumbnails"); uploadErr == nil {
			thumbnailURL = uploaded
		} else {
			log.Warn().Err(uploadErr).Msg("Thumbnail upload failed, keeping URL field")
		}
	}

	input := client.CourseInput{
		Title:              form.Title,
		Description:        form.Description,
		Category:           form.Category,
		Instructor:         form.Instructor,
		ThumbnailURL:       thumbnailURL,
		Price:              form.Price,
		OriginalPrice:      form.OriginalPrice,
		DiscountPercentage: form.DiscountPercentage,
		DurationMinutes:    form.DurationMinutes,
		CanDownload:        form.CanDownload,
		Requirements:       form.Requirements,
		ExtraContent:       form.ExtraContent,
	}

	if form.CourseID > 0 {
		if err := api.UpdateCourse(form.CourseID, input); err != nil {
			return c.Redirect(fmt.Sprintf("/teacher/courses/%d/edit?error=%s",
				form.CourseID, url.QueryEscape(err.Error())))
		}
		return c.Redirect("/teacher/courses?notice=" + url.QueryEscape("تم تحديث الكورس بنجاح"))
	}

	if _, err := api.CreateCourse(input); err != nil {
		return c.Redirect("/teacher/courses/new?error=" + url.QueryEscape(err.Error()))
	}
	return c.Redirect("/teacher/courses?notice=" + url.QueryEscape("تم إضافة الكورس بنجاح"))
}

// DeleteCourse deletes a course and returns to the grid
func DeleteCourse(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil || courseID <= 0 {
		return c.Redirect("/teacher/courses")
	}

	api := middleware.Api(c)
	if err := api.DeleteCourse(courseID); err != nil {
		return c.Redirect("/teacher/courses?error=" + url.QueryEscape(err.Error()))
	}
	return c.Redirect("/teacher/courses?notice=" + url.QueryEscape("تم حذف الكورس بنجاح"))
}

// Lessons renders the lesson management page of one course. The course
// and its lessons are fetched concurrently, like the public page.
func Lessons(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil || courseID <= 0 {
		return c.Redirect("/teacher/courses")
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
		return c.Render("teacher/lessons", middleware.PageData(c, fiber.Map{
			"Error": err.Error(),
		}), "layouts/dashboard")
	}

	sortLessons(lessons)

	var editing *models.Lesson
	if editID := c.QueryInt("lesson"); editID > 0 {
		for i := range lessons {
			if lessons[i].ID == editID {
				editing = &lessons[i]
				break
			}
		}
	}

	return c.Render("teacher/lessons", middleware.PageData(c, fiber.Map{
		"Course":  course,
		"Lessons": lessons,
		"Editing": editing,
		"Flash":   c.Query("error"),
		"Notice":  c.Query("notice"),
	}), "layouts/dashboard")
}

// SaveLesson creates or updates a lesson from the validated form. An
// attached video file goes through the two-step upload and its public
// URL becomes the lesson content.
func SaveLesson(c *fiber.Ctx) error {
	form := c.Locals("validatedLesson").(*lessonValidator.LessonForm)
	api := middleware.Api(c)

	contentURL := form.ContentURL
	if file, err := c.FormFile("video_file"); err == nil && file != nil {
		uploaded, uploadErr := uploadFile(api, file, "videos")
		if uploadErr != nil {
			return redirectToLessons(c, form.CourseID, "error", uploadErr.Error())
		}
		contentURL = uploaded
	}

	input := client.LessonInput{
		Title:           form.Title,
		Type:            form.Type,
		ContentURL:      contentURL,
		TextContent:     form.TextContent,
		DurationSeconds: form.DurationSeconds,
		OrderNum:        form.OrderNum,
		IsFree:          form.IsFree,
	}

	if form.LessonID > 0 {
		if err := api.UpdateLesson(form.LessonID, input); err != nil {
			return redirectToLessons(c, form.CourseID, "error", err.Error())
		}
		return redirectToLessons(c, form.CourseID, "notice", "تم تحديث الدرس بنجاح")
	}

	if _, err := api.CreateLesson(form.CourseID, input); err != nil {
		return redirectToLessons(c, form.CourseID, "error", err.Error())
	}
	return redirectToLessons(c, form.CourseID, "notice", "تم إضافة الدرس بنجاح")
}

// DeleteLesson deletes a lesson and returns to the lesson page
func DeleteLesson(c *fiber.Ctx) error {
	lessonID, err := c.ParamsInt("id")
	courseID := queryOrFormInt(c, "course_id")
	if err != nil || lessonID <= 0 {
		return c.Redirect("/teacher/courses")
	}

	api := middleware.Api(c)
	if err := api.DeleteLesson(lessonID); err != nil {
		return redirectToLessons(c, courseID, "error", err.Error())
	}
	return redirectToLessons(c, courseID, "notice", "تم حذف الدرس بنجاح")
}

// MoveLesson swaps a lesson with its neighbor in the given direction
func MoveLesson(c *fiber.Ctx) error {
	lessonID, err := c.ParamsInt("id")
	courseID := queryOrFormInt(c, "course_id")
	direction := c.FormValue("dir")
	if err != nil || lessonID <= 0 || courseID <= 0 {
		return c.Redirect("/teacher/courses")
	}

	api := middleware.Api(c)

	lessons, err := api.CourseLessons(courseID)
	if err != nil {
		return redirectToLessons(c, courseID, "error", err.Error())
	}
	sortLessons(lessons)

	index := -1
	for i := range lessons {
		if lessons[i].ID == lessonID {
			index = i
			break
		}
	}
	if index < 0 {
		return redirectToLessons(c, courseID, "error", "الدرس غير موجود")
	}

	neighbor := index - 1
	if direction == "down" {
		neighbor = index + 1
	}
	if neighbor < 0 || neighbor >= len(lessons) {
		return redirectToLessons(c, courseID, "", "")
	}

	if err := api.SwapLessonOrder(lessons[index], lessons[neighbor]); err != nil {
		return redirectToLessons(c, courseID, "error", err.Error())
	}
	return redirectToLessons(c, courseID, "", "")
}

// Quiz renders the quiz management page of one lesson
func Quiz(c *fiber.Ctx) error {
	lessonID, err := c.ParamsInt("id")
	if err != nil || lessonID <= 0 {
		return c.Redirect("/teacher/courses")
	}

	api := middleware.Api(c)

	questions, err := api.LessonQuiz(lessonID)
	if err != nil {
		return c.Render("teacher/quiz", middleware.PageData(c, fiber.Map{
			"Error":    err.Error(),
			"LessonID": lessonID,
		}), "layouts/dashboard")
	}

	return c.Render("teacher/quiz", middleware.PageData(c, fiber.Map{
		"LessonID":  lessonID,
		"CourseID":  c.QueryInt("course_id"),
		"Questions": questions,
		"Flash":     c.Query("error"),
		"Notice":    c.Query("notice"),
	}), "layouts/dashboard")
}

// AddQuestion creates the validated quiz question
func AddQuestion(c *fiber.Ctx) error {
	lessonID, err := c.ParamsInt("id")
	if err != nil || lessonID <= 0 {
		return c.Redirect("/teacher/courses")
	}

	question := c.Locals("validatedQuestion").(models.QuizQuestion)
	api := middleware.Api(c)

	if _, err := api.CreateQuizQuestion(lessonID, question); err != nil {
		return c.Redirect(fmt.Sprintf("/teacher/lessons/%d/quiz?error=%s",
			lessonID, url.QueryEscape(err.Error())))
	}
	return c.Redirect(fmt.Sprintf("/teacher/lessons/%d/quiz?notice=%s",
		lessonID, url.QueryEscape("تم إضافة السؤال بنجاح")))
}

// DeleteQuestion removes a quiz question
func DeleteQuestion(c *fiber.Ctx) error {
	questionID, err := c.ParamsInt("id")
	lessonID := queryOrFormInt(c, "lesson_id")
	if err != nil || questionID <= 0 {
		return c.Redirect("/teacher/courses")
	}

	api := middleware.Api(c)
	if err := api.DeleteQuizQuestion(questionID); err != nil {
		return c.Redirect(fmt.Sprintf("/teacher/lessons/%d/quiz?error=%s",
			lessonID, url.QueryEscape(err.Error())))
	}
	return c.Redirect(fmt.Sprintf("/teacher/lessons/%d/quiz?notice=%s",
		lessonID, url.QueryEscape("تم حذف السؤال")))
}

// uploadFile pushes one multipart file through the presign + direct
// PUT path and returns its public URL
func uploadFile(api *client.Client, file *multipart.FileHeader, folder string) (string, error) {
	contentType := file.Header.Get("Content-Type")
	objectName := fmt.Sprintf("%s/%s%s", folder, uuid.NewString(), filepath.Ext(file.Filename))

	target, err := api.RequestUploadURL(objectName, contentType)
	if err != nil {
		return "", err
	}

	source, err := file.Open()
	if err != nil {
		return "", err
	}
	defer source.Close()

	err = api.UploadBinary(target.UploadURL, contentType, source, file.Size, func(percent int) {
		log.Debug().Int("percent", percent).Str("object", objectName).Msg("Upload progress")
	})
	if err != nil {
		return "", err
	}

	return target.PublicURL, nil
}

func sortLessons(lessons []models.Lesson) {
	sort.Slice(lessons, func(i, j int) bool {
		return lessons[i].OrderNum < lessons[j].OrderNum
	})
}

func queryOrFormInt(c *fiber.Ctx, key string) int {
	if value := c.FormValue(key); value != "" {
		var parsed int
		if _, err := fmt.Sscanf(value, "%d", &parsed); err == nil {
			return parsed
		}
	}
	return c.QueryInt(key)
}

func redirectToLessons(c *fiber.Ctx, courseID int, key, message string) error {
	target := fmt.Sprintf("/teacher/courses/%d/lessons", courseID)
	if key != "" && message != "" {
		target += "?" + key + "=" + url.QueryEscape(message)
	}
	return c.Redirect(target)
}
