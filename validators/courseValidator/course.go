package courseValidator

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CourseForm is the parsed course create/update submission
type CourseForm struct {
	CourseID           int     `form:"course_id"`
	Title              string  `form:"title"`
	Description        string  `form:"description"`
	Category           string  `form:"category"`
	Instructor         string  `form:"instructor"`
	ThumbnailURL       string  `form:"thumbnail_url"`
	Price              float64 `form:"price"`
	OriginalPrice      float64 `form:"original_price"`
	DiscountPercentage float64 `form:"discount_percentage"`
	DurationMinutes    int     `form:"duration_minutes"`
	CanDownload        bool    `form:"can_download"`
	Requirements       string  `form:"requirements"`
	ExtraContent       string  `form:"extra_content"`
}

// SaveCourse validates the course form and bounces back to the form
// with the first error when it fails
func SaveCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		form := new(CourseForm)
		if err := c.BodyParser(form); err != nil {
			return redirectWithError(c, form.CourseID, "حدث خطأ في معالجة النموذج")
		}

		errors := make(map[string]string)

		if strings.TrimSpace(form.Title) == "" {
			errors["title"] = "عنوان الكورس مطلوب"
		} else if len(strings.TrimSpace(form.Title)) < 3 {
			errors["title"] = "العنوان يجب ألا يقل عن 3 أحرف"
		}

		if strings.TrimSpace(form.Description) == "" {
			errors["description"] = "وصف الكورس مطلوب"
		} else if len(strings.TrimSpace(form.Description)) < 5 {
			errors["description"] = "الوصف يجب ألا يقل عن 5 أحرف"
		}

		if strings.TrimSpace(form.Category) == "" {
			errors["category"] = "التصنيف مطلوب"
		}

		if form.Price < 0 {
			errors["price"] = "السعر لا يمكن أن يكون سالباً"
		}

		for _, field := range []string{"title", "description", "category", "price"} {
			if message, found := errors[field]; found {
				return redirectWithError(c, form.CourseID, message)
			}
		}

		c.Locals("validatedCourse", form)
		return c.Next()
	}
}

func redirectWithError(c *fiber.Ctx, courseID int, message string) error {
	target := "/teacher/courses/new"
	if courseID > 0 {
		target = fmt.Sprintf("/teacher/courses/%d/edit", courseID)
	}
	return c.Redirect(target + "?error=" + url.QueryEscape(message))
}
