package paymentValidator

import (
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"courseweb/models"
)

// PaymentForm is the parsed final step of the payment wizard
type PaymentForm struct {
	CourseID int     `form:"course_id"`
	Method   string  `form:"method"`
	Amount   float64 `form:"amount"`
	Notes    string  `form:"notes"`
}

var paymentMethods = map[string]bool{
	models.PaymentCash:         true,
	models.PaymentBankTransfer: true,
	models.PaymentOnline:       true,
}

// SubmitPayment validates the wizard submission before the payment
// call is made
func SubmitPayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		form := new(PaymentForm)
		if err := c.BodyParser(form); err != nil {
			return redirectWithError(c, c.Params("id"), "حدث خطأ في معالجة النموذج")
		}

		var message string
		switch {
		case !paymentMethods[form.Method]:
			message = "يرجى اختيار طريقة دفع صالحة"
		case form.Amount <= 0:
			message = "مبلغ الدفع غير صالح"
		case len(form.Notes) > 500:
			message = "الملاحظات طويلة جداً"
		}

		if message != "" {
			return redirectWithError(c, c.Params("id"), message)
		}

		c.Locals("validatedPayment", form)
		return c.Next()
	}
}

func redirectWithError(c *fiber.Ctx, courseID, message string) error {
	return c.Redirect(fmt.Sprintf("/courses/%s/pay?error=%s", courseID, url.QueryEscape(message)))
}
