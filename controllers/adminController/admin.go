package adminController

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"courseweb/middleware"
	"courseweb/models"
	"courseweb/views"
)

// Dashboard renders the admin landing page. Course list, payment list
// and the unread badge count are fetched concurrently.
func Dashboard(c *fiber.Ctx) error {
	api := middleware.Api(c)

	var courses []models.Course
	var payments []models.Payment

	var group errgroup.Group
	group.Go(func() error {
		var err error
		courses, err = api.Courses()
		return err
	})
	group.Go(func() error {
		var err error
		payments, err = api.Payments()
		return err
	})

	if err := group.Wait(); err != nil {
		return c.Render("admin/index", middleware.PageData(c, fiber.Map{
			"Error": err.Error(),
		}), "layouts/dashboard")
	}

	// Badge count is best-effort, like its JSON endpoint: a failure
	// here must not blank the dashboard.
	unread := 0
	if count, err := api.NotificationCount(); err == nil {
		unread = count
	}

	pending := 0
	for _, payment := range payments {
		if payment.Status == models.PaymentPending {
			pending++
		}
	}

	recent := courses
	if len(recent) > 5 {
		recent = recent[:5]
	}

	return c.Render("admin/index", middleware.PageData(c, fiber.Map{
		"CoursesCount":    len(courses),
		"PaymentsCount":   len(payments),
		"PendingPayments": pending,
		"UnreadCount":     unread,
		"RecentCourses":   views.NewCourseCards(recent),
	}), "layouts/dashboard")
}

// Payments renders the payment review queue
func Payments(c *fiber.Ctx) error {
	api := middleware.Api(c)

	payments, err := api.Payments()
	if err != nil {
		return c.Render("admin/payments", middleware.PageData(c, fiber.Map{
			"Error": err.Error(),
		}), "layouts/dashboard")
	}

	return c.Render("admin/payments", middleware.PageData(c, fiber.Map{
		"Payments": payments,
		"Flash":    c.Query("error"),
		"Notice":   c.Query("notice"),
	}), "layouts/dashboard")
}

// UpdatePaymentStatus confirms or rejects one payment
func UpdatePaymentStatus(c *fiber.Ctx) error {
	paymentID, err := c.ParamsInt("id")
	if err != nil || paymentID <= 0 {
		return c.Redirect("/admin/payments")
	}

	status := c.FormValue("status")
	if status != models.PaymentConfirmed && status != models.PaymentRejected {
		return c.Redirect("/admin/payments?error=" + url.QueryEscape("حالة الدفع غير صالحة"))
	}

	api := middleware.Api(c)
	if err := api.UpdatePaymentStatus(paymentID, status); err != nil {
		return c.Redirect("/admin/payments?error=" + url.QueryEscape(err.Error()))
	}
	return c.Redirect("/admin/payments?notice=" + url.QueryEscape("تم تحديث حالة الدفع"))
}

// Notifications renders the notification list
func Notifications(c *fiber.Ctx) error {
	api := middleware.Api(c)

	items, err := api.Notifications(15)
	if err != nil {
		return c.Render("admin/notifications", middleware.PageData(c, fiber.Map{
			"Error": err.Error(),
		}), "layouts/dashboard")
	}

	return c.Render("admin/notifications", middleware.PageData(c, fiber.Map{
		"Notifications": views.NewNotificationViews(items),
		"Flash":         c.Query("error"),
	}), "layouts/dashboard")
}

// MarkRead marks one notification as read and returns to the list
func MarkRead(c *fiber.Ctx) error {
	notificationID, err := c.ParamsInt("id")
	if err != nil || notificationID <= 0 {
		return c.Redirect("/admin/notifications")
	}

	api := middleware.Api(c)
	if err := api.MarkNotificationRead(notificationID); err != nil {
		return c.Redirect("/admin/notifications?error=" + url.QueryEscape(err.Error()))
	}
	return c.Redirect("/admin/notifications")
}

// MarkAllRead marks every notification as read
func MarkAllRead(c *fiber.Ctx) error {
	api := middleware.Api(c)
	if err := api.MarkAllNotificationsRead(); err != nil {
		return c.Redirect("/admin/notifications?error=" + url.QueryEscape(err.Error()))
	}
	return c.Redirect("/admin/notifications")
}

// NotificationCount serves the JSON badge count the admin header polls
// every 30 seconds. Failures degrade to zero so non-admin sessions see
// no badge instead of an error.
func NotificationCount(c *fiber.Ctx) error {
	api := middleware.Api(c)

	count, err := api.NotificationCount()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "", fiber.Map{"count": 0})
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "", fiber.Map{"count": count})
}
