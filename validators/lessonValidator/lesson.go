package lessonValidator

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"courseweb/models"
)

// LessonForm is the parsed lesson create/update submission
type LessonForm struct {
	LessonID        int    `form:"lesson_id"`
	CourseID        int    `form:"course_id"`
	Title           string `form:"title"`
	Type            string `form:"type"`
	ContentURL      string `form:"content_url"`
	TextContent     string `form:"text_content"`
	DurationSeconds int    `form:"duration_seconds"`
	OrderNum        int    `form:"order_num"`
	IsFree          bool   `form:"is_free"`
}

var lessonTypes = map[string]bool{
	models.LessonVideo: true,
	models.LessonText:  true,
	models.LessonPDF:   true,
}

// SaveLesson validates the lesson form. A video or pdf lesson needs
// either a content URL or an uploaded file; a text lesson needs text.
func SaveLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		form := new(LessonForm)
		if err := c.BodyParser(form); err != nil {
			return redirectWithError(c, form.CourseID, "حدث خطأ في معالجة النموذج")
		}

		_, hasUpload := fileAttached(c)

		var message string
		switch {
		case strings.TrimSpace(form.Title) == "":
			message = "عنوان الدرس مطلوب"
		case !lessonTypes[form.Type]:
			message = "نوع الدرس غير صالح"
		case form.Type == models.LessonText && strings.TrimSpace(form.TextContent) == "":
			message = "محتوى الدرس النصي مطلوب"
		case form.Type != models.LessonText && strings.TrimSpace(form.ContentURL) == "" && !hasUpload:
			message = "يرجى إدخال رابط المحتوى أو اختيار ملف للرفع"
		case form.DurationSeconds < 0:
			message = "مدة الدرس غير صالحة"
		}

		if message != "" {
			return redirectWithError(c, form.CourseID, message)
		}

		c.Locals("validatedLesson", form)
		return c.Next()
	}
}

func fileAttached(c *fiber.Ctx) (string, bool) {
	file, err := c.FormFile("video_file")
	if err != nil || file == nil {
		return "", false
	}
	return file.Filename, true
}

func redirectWithError(c *fiber.Ctx, courseID int, message string) error {
	return c.Redirect(fmt.Sprintf("/teacher/courses/%d/lessons?error=%s", courseID, url.QueryEscape(message)))
}
