package publicController

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courseweb/client"
	"courseweb/config"
	"courseweb/middleware"
	"courseweb/views"
)

// newPageApp builds a fiber app with the real template engine and the
// shared client pointed at a fake API server
func newPageApp(t *testing.T, api http.Handler) *fiber.App {
	t.Helper()

	server := httptest.NewServer(api)
	t.Cleanup(server.Close)

	config.AppConfig = &config.Config{
		SessionTTLDays: 1,
		CookieName:     "course_session",
	}
	middleware.InitSessionStore(nil)
	client.Init(server.URL, 2*time.Second)

	engine := html.New("../../templates", ".html")
	engine.AddFunc("lessonIcon", views.LessonTypeIcon)
	engine.AddFunc("lessonName", views.LessonTypeName)
	engine.AddFunc("formatDuration", views.FormatDuration)
	engine.AddFunc("lessonDuration", views.FormatLessonDuration)
	engine.AddFunc("timeAgo", views.TimeAgo)
	engine.AddFunc("notifIcon", views.NotificationIcon)

	return fiber.New(fiber.Config{Views: engine})
}

func getPage(t *testing.T, app *fiber.App, target string) (int, string) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil), 5000)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func emptyCourseAPI() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/courses/1", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":1,"title":"كورس بلا دروس","category":"برمجة","instructor":"أحمد","price":0}`))
	})
	mux.HandleFunc("/courses/1/lessons", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[]}`))
	})
	return mux
}

func TestCourseDetailRendersEmptyLessonListMessage(t *testing.T) {
	app := newPageApp(t, emptyCourseAPI())
	app.Get("/courses/:id", CourseDetail)

	status, body := getPage(t, app, "/courses/1")

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "كورس بلا دروس")
	assert.Contains(t, body, "لا توجد دروس بعد")
}

func TestCourseDetailShowsReceiptConfirmation(t *testing.T) {
	app := newPageApp(t, emptyCourseAPI())
	app.Get("/courses/:id", CourseDetail)

	_, withFlag := getPage(t, app, "/courses/1?receipt=1")
	assert.Contains(t, withFlag, "تم رفع الإيصال بنجاح")

	_, withoutFlag := getPage(t, app, "/courses/1")
	assert.NotContains(t, withoutFlag, "تم رفع الإيصال بنجاح")
}
