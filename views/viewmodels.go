package views

import (
	"courseweb/models"
)

// CourseCardView feeds one course card on the home and list pages
type CourseCardView struct {
	ID           int
	Title        string
	Category     string
	Instructor   string
	ThumbnailURL string
	Price        PriceView
	Duration     string
}

// NewCourseCard builds a card view from a course record
func NewCourseCard(course models.Course) CourseCardView {
	return CourseCardView{
		ID:           course.ID,
		Title:        course.Title,
		Category:     course.Category,
		Instructor:   course.Instructor,
		ThumbnailURL: course.ThumbnailURL,
		Price:        FormatPrice(course.Price, course.OriginalPrice, course.DiscountPercentage),
		Duration:     FormatDuration(course.DurationMinutes),
	}
}

// NewCourseCards builds card views for a whole course list
func NewCourseCards(courses []models.Course) []CourseCardView {
	cards := make([]CourseCardView, 0, len(courses))
	for _, course := range courses {
		cards = append(cards, NewCourseCard(course))
	}
	return cards
}

// LessonRowView feeds one row of the course-detail lesson list.
// Locked rows have no playable content and are not clickable.
type LessonRowView struct {
	Index    int
	ID       int
	Title    string
	TypeIcon string
	TypeName string
	Duration string
	Locked   bool
	Selected bool
}

// Player region modes
const (
	PlayerVideo = "video"
	PlayerPDF   = "pdf"
	PlayerText  = "text"
)

// PlayerView feeds the single player region of the course page. Mode
// picks the markup: embedded player, link-out card, or inline text.
type PlayerView struct {
	Mode        string
	Title       string
	ContentURL  string
	TextContent string
}

// NewPlayer builds the player region for a selected lesson
func NewPlayer(lesson models.Lesson) PlayerView {
	view := PlayerView{Title: lesson.Title}
	switch {
	case lesson.Type == models.LessonVideo && lesson.ContentURL != "":
		view.Mode = PlayerVideo
		view.ContentURL = lesson.ContentURL
	case lesson.Type == models.LessonPDF && lesson.ContentURL != "":
		view.Mode = PlayerPDF
		view.ContentURL = lesson.ContentURL
	default:
		view.Mode = PlayerText
		view.TextContent = lesson.TextContent
	}
	return view
}

// CourseDetailView feeds the course page: header, lesson list, sidebar
// price card and the optional player region.
type CourseDetailView struct {
	Course      models.Course
	Price       PriceView
	Duration    string
	LessonCount int
	Lessons     []LessonRowView
	Player      *PlayerView
	CanManage   bool
}

// NewCourseDetail merges a course and its selected lesson into the
// page view. CanManage is the cosmetic instructor gate; the server
// still enforces authorization on every mutation.
func NewCourseDetail(course models.Course, user *models.User, selectedLessonID int) CourseDetailView {
	view := CourseDetailView{
		Course:      course,
		Price:       FormatPrice(course.Price, course.OriginalPrice, course.DiscountPercentage),
		Duration:    FormatDuration(course.DurationMinutes),
		LessonCount: len(course.Lessons),
		CanManage:   CanManageCourse(user, course),
	}

	for i, lesson := range course.Lessons {
		row := LessonRowView{
			Index:    i + 1,
			ID:       lesson.ID,
			Title:    lesson.Title,
			TypeIcon: LessonTypeIcon(lesson.Type),
			TypeName: LessonTypeName(lesson.Type),
			Duration: FormatLessonDuration(lesson.DurationSeconds),
			Locked:   !lesson.HasContent(),
			Selected: lesson.ID == selectedLessonID && selectedLessonID != 0,
		}
		view.Lessons = append(view.Lessons, row)

		if row.Selected && !row.Locked {
			player := NewPlayer(lesson)
			view.Player = &player
		}
	}

	return view
}

// CanManageCourse is a display-only gate for instructor controls. It
// hides buttons, nothing more: the API decides who may actually edit.
func CanManageCourse(user *models.User, course models.Course) bool {
	if user == nil {
		return false
	}
	if user.Role == models.RoleAdmin {
		return true
	}
	if user.Role != models.RoleTeacher {
		return false
	}
	return user.ID == course.InstructorID || user.Name == course.Instructor
}

// NotificationView feeds one row of the admin notification list
type NotificationView struct {
	ID      int
	Icon    string
	Title   string
	Message string
	Unread  bool
	TimeAgo string
}

// NewNotificationViews builds rows for the admin notification list
func NewNotificationViews(items []models.Notification) []NotificationView {
	rows := make([]NotificationView, 0, len(items))
	for _, item := range items {
		rows = append(rows, NotificationView{
			ID:      item.ID,
			Icon:    NotificationIcon(item.Type),
			Title:   item.Title,
			Message: item.Message,
			Unread:  !item.IsRead,
			TimeAgo: TimeAgo(item.CreatedAt),
		})
	}
	return rows
}
