package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courseweb/models"
)

func TestCanManageCourse(t *testing.T) {
	course := models.Course{ID: 1, Instructor: "سارة", InstructorID: 5}

	assert.False(t, CanManageCourse(nil, course))
	assert.False(t, CanManageCourse(&models.User{ID: 2, Role: models.RoleStudent}, course))
	assert.False(t, CanManageCourse(&models.User{ID: 2, Name: "خالد", Role: models.RoleTeacher}, course))

	assert.True(t, CanManageCourse(&models.User{ID: 5, Role: models.RoleTeacher}, course))
	assert.True(t, CanManageCourse(&models.User{ID: 9, Name: "سارة", Role: models.RoleTeacher}, course))
	assert.True(t, CanManageCourse(&models.User{ID: 2, Role: models.RoleAdmin}, course))
}

func TestNewCourseDetailLocksLessonsWithoutContent(t *testing.T) {
	course := models.Course{
		ID: 1,
		Lessons: []models.Lesson{
			{ID: 10, Title: "مقدمة", Type: models.LessonVideo, ContentURL: "https://cdn/a.mp4"},
			{ID: 11, Title: "قريباً", Type: models.LessonVideo},
		},
	}

	view := NewCourseDetail(course, nil, 0)

	require.Len(t, view.Lessons, 2)
	assert.False(t, view.Lessons[0].Locked)
	assert.True(t, view.Lessons[1].Locked)
	assert.Equal(t, 1, view.Lessons[0].Index)
	assert.Equal(t, 2, view.Lessons[1].Index)
	assert.Nil(t, view.Player)
}

func TestNewCourseDetailSelectsPlayableLesson(t *testing.T) {
	course := models.Course{
		ID: 1,
		Lessons: []models.Lesson{
			{ID: 10, Title: "مقدمة", Type: models.LessonVideo, ContentURL: "https://cdn/a.mp4"},
		},
	}

	view := NewCourseDetail(course, nil, 10)

	require.NotNil(t, view.Player)
	assert.Equal(t, PlayerVideo, view.Player.Mode)
	assert.Equal(t, "https://cdn/a.mp4", view.Player.ContentURL)
	assert.True(t, view.Lessons[0].Selected)
}

func TestNewCourseDetailIgnoresSelectionOfLockedLesson(t *testing.T) {
	course := models.Course{
		ID:      1,
		Lessons: []models.Lesson{{ID: 10, Title: "قريباً", Type: models.LessonVideo}},
	}

	view := NewCourseDetail(course, nil, 10)

	assert.Nil(t, view.Player)
	assert.True(t, view.Lessons[0].Selected)
	assert.True(t, view.Lessons[0].Locked)
}

func TestNewPlayerModes(t *testing.T) {
	video := NewPlayer(models.Lesson{Title: "v", Type: models.LessonVideo, ContentURL: "u"})
	assert.Equal(t, PlayerVideo, video.Mode)

	pdf := NewPlayer(models.Lesson{Title: "p", Type: models.LessonPDF, ContentURL: "u"})
	assert.Equal(t, PlayerPDF, pdf.Mode)

	text := NewPlayer(models.Lesson{Title: "t", Type: models.LessonText, TextContent: "نص الدرس"})
	assert.Equal(t, PlayerText, text.Mode)
	assert.Equal(t, "نص الدرس", text.TextContent)

	// Video lessons without a URL fall back to the text region
	fallback := NewPlayer(models.Lesson{Title: "f", Type: models.LessonVideo, TextContent: "بديل"})
	assert.Equal(t, PlayerText, fallback.Mode)
}

func TestNewCourseCards(t *testing.T) {
	cards := NewCourseCards([]models.Course{
		{ID: 1, Title: "Go", Price: 0, DurationMinutes: 90},
		{ID: 2, Title: "SQL", Price: 50000, DurationMinutes: 60},
	})

	require.Len(t, cards, 2)
	assert.True(t, cards[0].Price.Free)
	assert.Equal(t, "1 ساعة و 30 دقيقة", cards[0].Duration)
	assert.Equal(t, "50,000 ل.س", cards[1].Price.Amount)
}

func TestNewNotificationViews(t *testing.T) {
	rows := NewNotificationViews([]models.Notification{
		{ID: 1, Type: "new_payment", Title: "دفعة جديدة", IsRead: false},
		{ID: 2, Type: "receipt_uploaded", Title: "إيصال", IsRead: true},
	})

	require.Len(t, rows, 2)
	assert.Equal(t, "💳", rows[0].Icon)
	assert.True(t, rows[0].Unread)
	assert.Equal(t, "🧾", rows[1].Icon)
	assert.False(t, rows[1].Unread)
}
