package client

import (
	"fmt"
	"net/http"

	"courseweb/models"
)

// LessonQuiz fetches the quiz questions attached to a lesson
func (c *Client) LessonQuiz(lessonID int) ([]models.QuizQuestion, error) {
	var out listEnvelope[models.QuizQuestion]
	if err := c.do(http.MethodGet, fmt.Sprintf("/lessons/%d/quiz", lessonID), nil, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// CreateQuizQuestion adds a question to a lesson's quiz
func (c *Client) CreateQuizQuestion(lessonID int, question models.QuizQuestion) (*models.QuizQuestion, error) {
	var out models.QuizQuestion
	if err := c.do(http.MethodPost, fmt.Sprintf("/lessons/%d/quiz", lessonID), question, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteQuizQuestion removes a quiz question
func (c *Client) DeleteQuizQuestion(questionID int) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/quizzes/%d", questionID), nil, nil)
}
