package authValidator

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// LoginForm is the parsed login submission
type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
	Redirect string `form:"redirect"`
}

// RegisterForm is the parsed registration submission
type RegisterForm struct {
	Name     string `form:"name" validate:"required,min=2"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=6"`
	Phone    string `form:"phone"`
}

// Login validates the login form and re-renders the page with field
// errors before any network call is made
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		form := new(LoginForm)
		if err := c.BodyParser(form); err != nil {
			return c.Status(fiber.StatusBadRequest).Render("login", fiber.Map{
				"Error":    "حدث خطأ في معالجة النموذج",
				"Email":    "",
				"Redirect": "",
			}, "layouts/main")
		}

		errors := make(map[string]string)
		if err := validate.Struct(form); err != nil {
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "Email":
					errors["email"] = "يرجى إدخال بريد إلكتروني صحيح"
				case "Password":
					errors["password"] = "كلمة المرور مطلوبة"
				}
			}
		}

		if len(errors) > 0 {
			return c.Status(fiber.StatusUnprocessableEntity).Render("login", fiber.Map{
				"Errors":   errors,
				"Email":    form.Email,
				"Redirect": form.Redirect,
			}, "layouts/main")
		}

		c.Locals("validatedLogin", form)
		return c.Next()
	}
}

// Register validates the registration form
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		form := new(RegisterForm)
		if err := c.BodyParser(form); err != nil {
			return c.Status(fiber.StatusBadRequest).Render("register", fiber.Map{
				"Error": "حدث خطأ في معالجة النموذج",
				"Name":  "",
				"Email": "",
				"Phone": "",
			}, "layouts/main")
		}

		errors := make(map[string]string)
		if err := validate.Struct(form); err != nil {
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "Name":
					errors["name"] = "الاسم مطلوب (حرفان على الأقل)"
				case "Email":
					errors["email"] = "يرجى إدخال بريد إلكتروني صحيح"
				case "Password":
					errors["password"] = "كلمة المرور يجب ألا تقل عن 6 أحرف"
				}
			}
		}

		if len(errors) > 0 {
			return c.Status(fiber.StatusUnprocessableEntity).Render("register", fiber.Map{
				"Errors": errors,
				"Name":   form.Name,
				"Email":  form.Email,
				"Phone":  form.Phone,
			}, "layouts/main")
		}

		c.Locals("validatedRegister", form)
		return c.Next()
	}
}
