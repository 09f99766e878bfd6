package paymentController

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"courseweb/client"
	"courseweb/middleware"
	"courseweb/models"
	"courseweb/validators/paymentValidator"
	"courseweb/views"
)

// Method-specific instructions shown on the second wizard step
var methodInstructions = map[string]string{
	models.PaymentCash:         "يمكنك الدفع نقداً في مقر المعهد خلال أوقات الدوام. احتفظ بالإيصال وارفع صورته هنا بعد الدفع.",
	models.PaymentBankTransfer: "حوّل المبلغ إلى الحساب البنكي رقم 0123456789 (بنك سورية الدولي الإسلامي) ثم ارفع صورة إشعار التحويل.",
	models.PaymentOnline:       "ادفع عبر المحفظة الإلكترونية على الرقم 0999999999 ثم ارفع لقطة شاشة لعملية الدفع.",
}

var methodNames = map[string]string{
	models.PaymentCash:         "نقداً",
	models.PaymentBankTransfer: "حوالة بنكية",
	models.PaymentOnline:       "دفع إلكتروني",
}

// Phrases the API uses for expected business conflicts. Matching is by
// substring; these stay ordinary server errors, the friendlier copy is
// presentation only.
var conflictPhrases = map[string]string{
	"already paid":    "لقد دفعت رسوم هذا الكورس مسبقاً",
	"payment pending": "لديك دفعة قيد المراجعة لهذا الكورس",
	"مدفوع مسبقاً":    "لقد دفعت رسوم هذا الكورس مسبقاً",
	"قيد المراجعة":    "لديك دفعة قيد المراجعة لهذا الكورس",
}

func friendlyConflict(err error) (string, bool) {
	message := strings.ToLower(err.Error())
	for phrase, friendly := range conflictPhrases {
		if strings.Contains(message, strings.ToLower(phrase)) {
			return friendly, true
		}
	}
	return "", false
}

// Enroll handles the enroll button. Free courses enroll directly and
// reload; paid courses enter the payment wizard.
func Enroll(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil || courseID <= 0 {
		return c.Redirect("/courses")
	}

	api := middleware.Api(c)

	course, err := api.Course(courseID)
	if err != nil {
		return redirectToCourse(c, courseID, "error", err.Error())
	}

	if !course.IsFree() {
		return c.Redirect(fmt.Sprintf("/courses/%d/pay", courseID))
	}

	if err := api.Enroll(courseID); err != nil {
		if friendly, ok := friendlyConflict(err); ok {
			return redirectToCourse(c, courseID, "notice", friendly)
		}
		return redirectToCourse(c, courseID, "error", err.Error())
	}

	return c.Redirect(fmt.Sprintf("/courses/%d?enrolled=1", courseID))
}

// Wizard renders the three-step payment flow. All wizard state lives
// in the query string and hidden fields; a reload starts over.
func Wizard(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil || courseID <= 0 {
		return c.Redirect("/courses")
	}

	api := middleware.Api(c)

	course, err := api.Course(courseID)
	if err != nil {
		return redirectToCourse(c, courseID, "error", err.Error())
	}
	if course.IsFree() {
		return c.Redirect(fmt.Sprintf("/courses/%d", courseID))
	}

	step := c.QueryInt("step", 1)
	method := c.Query("method")
	if step > 1 && !validMethod(method) {
		step = 1
	}
	if step < 1 || step > 3 {
		step = 1
	}

	return c.Render("payment", middleware.PageData(c, fiber.Map{
		"Course":       course,
		"Price":        views.FormatPrice(course.Price, course.OriginalPrice, course.DiscountPercentage),
		"Step":         step,
		"Method":       method,
		"MethodName":   methodNames[method],
		"Instructions": methodInstructions[method],
		"Flash":        c.Query("error"),
	}), "layouts/main")
}

func validMethod(method string) bool {
	_, ok := methodInstructions[method]
	return ok
}

// Submit creates the payment record from the validated wizard form and
// moves on to the receipt upload page
func Submit(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil || courseID <= 0 {
		return c.Redirect("/courses")
	}

	form := c.Locals("validatedPayment").(*paymentValidator.PaymentForm)
	api := middleware.Api(c)

	payment, err := api.SubmitPayment(client.PaymentInput{
		CourseID: courseID,
		Method:   form.Method,
		Amount:   form.Amount,
		Notes:    form.Notes,
	})
	if err != nil {
		if friendly, ok := friendlyConflict(err); ok {
			return redirectToCourse(c, courseID, "notice", friendly)
		}
		return c.Redirect(fmt.Sprintf("/courses/%d/pay?step=3&method=%s&error=%s",
			courseID, form.Method, url.QueryEscape(err.Error())))
	}

	return c.Redirect(fmt.Sprintf("/payments/%d/receipt", payment.ID))
}

// MyPayments renders the current user's payment history
func MyPayments(c *fiber.Ctx) error {
	api := middleware.Api(c)

	payments, err := api.MyPayments()
	if err != nil {
		return c.Render("payments", middleware.PageData(c, fiber.Map{
			"Error": err.Error(),
		}), "layouts/main")
	}

	return c.Render("payments", middleware.PageData(c, fiber.Map{
		"Payments": payments,
	}), "layouts/main")
}

// ReceiptPage renders the receipt upload form for a submitted payment
func ReceiptPage(c *fiber.Ctx) error {
	paymentID, err := c.ParamsInt("id")
	if err != nil || paymentID <= 0 {
		return c.Redirect("/courses")
	}

	api := middleware.Api(c)

	payment, err := api.Payment(paymentID)
	if err != nil {
		return c.Render("receipt", middleware.PageData(c, fiber.Map{
			"Error": err.Error(),
		}), "layouts/main")
	}

	return c.Render("receipt", middleware.PageData(c, fiber.Map{
		"Payment": payment,
		"Flash":   c.Query("error"),
	}), "layouts/main")
}

// UploadReceipt streams the receipt image through the two-step upload
// path and attaches the public URL to the payment. Success reloads the
// course page so enrollment state comes back from the server.
func UploadReceipt(c *fiber.Ctx) error {
	paymentID, err := c.ParamsInt("id")
	if err != nil || paymentID <= 0 {
		return c.Redirect("/courses")
	}

	file, err := c.FormFile("receipt")
	if err != nil {
		return redirectToReceipt(c, paymentID, "يرجى اختيار صورة الإيصال")
	}

	api := middleware.Api(c)

	payment, err := api.Payment(paymentID)
	if err != nil {
		return redirectToReceipt(c, paymentID, err.Error())
	}

	contentType := file.Header.Get("Content-Type")
	objectName := fmt.Sprintf("receipts/%s%s", uuid.NewString(), filepath.Ext(file.Filename))

	target, err := api.RequestUploadURL(objectName, contentType)
	if err != nil {
		return redirectToReceipt(c, paymentID, err.Error())
	}

	source, err := file.Open()
	if err != nil {
		return redirectToReceipt(c, paymentID, client.GenericErrorMessage)
	}
	defer source.Close()

	err = api.UploadBinary(target.UploadURL, contentType, source, file.Size, func(percent int) {
		log.Debug().Int("percent", percent).Int("payment_id", paymentID).Msg("Receipt upload progress")
	})
	if err != nil {
		return redirectToReceipt(c, paymentID, err.Error())
	}

	if err := api.AttachReceipt(paymentID, target.PublicURL); err != nil {
		return redirectToReceipt(c, paymentID, err.Error())
	}

	return c.Redirect(fmt.Sprintf("/courses/%d?receipt=1", payment.CourseID))
}

func redirectToCourse(c *fiber.Ctx, courseID int, key, message string) error {
	return c.Redirect(fmt.Sprintf("/courses/%d?%s=%s", courseID, key, url.QueryEscape(message)))
}

func redirectToReceipt(c *fiber.Ctx, paymentID int, message string) error {
	return c.Redirect(fmt.Sprintf("/payments/%d/receipt?error=%s", paymentID, url.QueryEscape(message)))
}
