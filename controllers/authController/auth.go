package authController

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"courseweb/middleware"
	"courseweb/validators/authValidator"
)

// LoginPage renders the login form. A redirect target from the query
// string survives the round trip as a hidden field.
func LoginPage(c *fiber.Ctx) error {
	sess := middleware.Session(c)
	if sess.IsAuthenticated() {
		return c.Redirect("/")
	}

	return c.Render("login", middleware.PageData(c, fiber.Map{
		"Redirect": c.Query("redirect"),
		"Email":    "",
	}), "layouts/main")
}

// Login handles the validated login submission. The facade persists
// the token and profile into the session as a side effect.
func Login(c *fiber.Ctx) error {
	form := c.Locals("validatedLogin").(*authValidator.LoginForm)

	sess := middleware.Session(c)
	api := middleware.Api(c)

	if _, err := api.Login(form.Email, form.Password); err != nil {
		return c.Status(fiber.StatusUnauthorized).Render("login", middleware.PageData(c, fiber.Map{
			"Error":    err.Error(),
			"Email":    form.Email,
			"Redirect": form.Redirect,
		}), "layouts/main")
	}

	if err := sess.Save(); err != nil {
		log.Error().Err(err).Msg("Failed to persist session after login")
	}

	target := form.Redirect
	if target == "" || !strings.HasPrefix(target, "/") {
		target = "/"
	}
	return c.Redirect(target)
}

// RegisterPage renders the registration form
func RegisterPage(c *fiber.Ctx) error {
	sess := middleware.Session(c)
	if sess.IsAuthenticated() {
		return c.Redirect("/")
	}

	return c.Render("register", middleware.PageData(c, fiber.Map{
		"Name":  "",
		"Email": "",
		"Phone": "",
	}), "layouts/main")
}

// Register handles the validated registration submission
func Register(c *fiber.Ctx) error {
	form := c.Locals("validatedRegister").(*authValidator.RegisterForm)

	sess := middleware.Session(c)
	api := middleware.Api(c)

	if _, err := api.Register(form.Name, form.Email, form.Password, form.Phone); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).Render("register", middleware.PageData(c, fiber.Map{
			"Error": err.Error(),
			"Name":  form.Name,
			"Email": form.Email,
			"Phone": form.Phone,
		}), "layouts/main")
	}

	if err := sess.Save(); err != nil {
		log.Error().Err(err).Msg("Failed to persist session after registration")
	}

	return c.Redirect("/")
}

// Logout clears the session and returns to the landing page. There is
// no server-side token to invalidate.
func Logout(c *fiber.Ctx) error {
	sess := middleware.Session(c)
	api := middleware.Api(c)

	api.Logout()
	if err := sess.Save(); err != nil {
		log.Error().Err(err).Msg("Failed to persist session after logout")
	}

	return c.Redirect("/")
}
