package client

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"courseweb/models"
)

// LessonInput is the payload for creating or updating a lesson
type LessonInput struct {
	Title           string `json:"title"`
	Type            string `json:"type"`
	ContentURL      string `json:"content_url,omitempty"`
	TextContent     string `json:"text_content,omitempty"`
	DurationSeconds int    `json:"duration_seconds"`
	OrderNum        int    `json:"order_num"`
	IsFree          bool   `json:"is_free"`
}

func lessonInputFrom(l models.Lesson) LessonInput {
	return LessonInput{
		Title:           l.Title,
		Type:            l.Type,
		ContentURL:      l.ContentURL,
		TextContent:     l.TextContent,
		DurationSeconds: l.DurationSeconds,
		OrderNum:        l.OrderNum,
		IsFree:          l.IsFree,
	}
}

// CourseLessons fetches the lesson list of a course, ordered by the
// server
func (c *Client) CourseLessons(courseID int) ([]models.Lesson, error) {
	var out listEnvelope[models.Lesson]
	if err := c.do(http.MethodGet, fmt.Sprintf("/courses/%d/lessons", courseID), nil, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// CreateLesson adds a lesson to a course
func (c *Client) CreateLesson(courseID int, input LessonInput) (*models.Lesson, error) {
	var out models.Lesson
	if err := c.do(http.MethodPost, fmt.Sprintf("/courses/%d/lessons", courseID), input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateLesson updates a lesson
func (c *Client) UpdateLesson(lessonID int, input LessonInput) error {
	return c.do(http.MethodPut, fmt.Sprintf("/courses/lessons/%d", lessonID), input, nil)
}

// DeleteLesson deletes a lesson
func (c *Client) DeleteLesson(lessonID int) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/courses/lessons/%d", lessonID), nil, nil)
}

// SwapLessonOrder exchanges the order numbers of two lessons with two
// independent updates. When the second update fails a compensating
// write restores the first lesson's original position; if that write
// fails too the lessons are left with duplicate order numbers, which
// only the server can untangle.
func (c *Client) SwapLessonOrder(first, second models.Lesson) error {
	firstInput := lessonInputFrom(first)
	firstInput.OrderNum = second.OrderNum
	if err := c.UpdateLesson(first.ID, firstInput); err != nil {
		return err
	}

	secondInput := lessonInputFrom(second)
	secondInput.OrderNum = first.OrderNum
	if err := c.UpdateLesson(second.ID, secondInput); err != nil {
		rollback := lessonInputFrom(first)
		if rbErr := c.UpdateLesson(first.ID, rollback); rbErr != nil {
			log.Error().Err(rbErr).
				Int("lesson_id", first.ID).
				Msg("Reorder rollback failed, duplicate order numbers remain")
		}
		return err
	}

	return nil
}
