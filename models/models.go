package models

// User roles as the API reports them
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
)

// Lesson types
const (
	LessonVideo = "video"
	LessonText  = "text"
	LessonPDF   = "pdf"
)

// Payment methods
const (
	PaymentCash         = "cash"
	PaymentBankTransfer = "bank_transfer"
	PaymentOnline       = "online"
)

// Payment statuses
const (
	PaymentPending   = "pending"
	PaymentConfirmed = "confirmed"
	PaymentRejected  = "rejected"
)

// Quiz question types
const (
	QuestionMultipleChoice = "multiple_choice"
	QuestionTrueFalse      = "true_false"
)

// User is the profile cached alongside the auth token
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role"`
}

// AuthResponse is returned by login and register
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Course mirrors the remote course record. Lessons is attached
// transiently when the detail page merges the lesson-list fetch.
type Course struct {
	ID                 int      `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Category           string   `json:"category"`
	Instructor         string   `json:"instructor"`
	InstructorID       int      `json:"instructor_id"`
	ThumbnailURL       string   `json:"thumbnail_url"`
	Price              float64  `json:"price"`
	OriginalPrice      float64  `json:"original_price"`
	DiscountPercentage float64  `json:"discount_percentage"`
	DurationMinutes    int      `json:"duration_minutes"`
	CanDownload        bool     `json:"can_download"`
	IsEnrolled         bool     `json:"is_enrolled"`
	Lessons            []Lesson `json:"lessons,omitempty"`
}

// IsFree reports whether the course costs nothing. A course is free only
// when both the price and any original (pre-discount) price are zero.
func (c Course) IsFree() bool {
	return c.Price == 0 && c.OriginalPrice == 0
}

// Lesson mirrors the remote lesson record
type Lesson struct {
	ID              int    `json:"id"`
	CourseID        int    `json:"course_id"`
	Title           string `json:"title"`
	Type            string `json:"type"`
	ContentURL      string `json:"content_url,omitempty"`
	TextContent     string `json:"text_content,omitempty"`
	DurationSeconds int    `json:"duration_seconds"`
	OrderNum        int    `json:"order_num"`
	IsFree          bool   `json:"is_free"`
}

// HasContent reports whether the lesson has anything playable. Lessons
// without content render locked.
func (l Lesson) HasContent() bool {
	return l.ContentURL != "" || l.TextContent != ""
}

// Payment mirrors the remote payment record
type Payment struct {
	ID         int     `json:"id"`
	CourseID   int     `json:"course_id"`
	UserID     int     `json:"user_id"`
	Method     string  `json:"method"`
	Amount     float64 `json:"amount"`
	Status     string  `json:"status"`
	Notes      string  `json:"notes,omitempty"`
	ReceiptURL string  `json:"receipt_url,omitempty"`
	CreatedAt  string  `json:"created_at,omitempty"`
}

// QuizAnswer is one option of a multiple-choice question
type QuizAnswer struct {
	ID         int    `json:"id,omitempty"`
	AnswerText string `json:"answer_text"`
	IsCorrect  bool   `json:"is_correct"`
}

// QuizQuestion mirrors the remote quiz record. CorrectAnswer is used for
// true/false questions, Answers for multiple choice.
type QuizQuestion struct {
	ID            int          `json:"id,omitempty"`
	LessonID      int          `json:"lesson_id"`
	QuestionText  string       `json:"question_text"`
	Type          string       `json:"type"`
	CorrectAnswer string       `json:"correct_answer,omitempty"`
	Answers       []QuizAnswer `json:"answers,omitempty"`
}

// Notification is surfaced in the admin area only
type Notification struct {
	ID        int    `json:"id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}
