package client

import (
	"fmt"
	"net/http"

	"courseweb/models"
)

// CourseInput is the payload for creating or updating a course
type CourseInput struct {
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	Category           string  `json:"category"`
	Instructor         string  `json:"instructor"`
	ThumbnailURL       string  `json:"thumbnail_url"`
	Price              float64 `json:"price"`
	OriginalPrice      float64 `json:"original_price,omitempty"`
	DiscountPercentage float64 `json:"discount_percentage,omitempty"`
	DurationMinutes    int     `json:"duration_minutes"`
	CanDownload        bool    `json:"can_download"`
	Requirements       string  `json:"requirements,omitempty"`
	ExtraContent       string  `json:"extra_content,omitempty"`
}

// Courses fetches the full course list. Every call hits the server;
// there is no client-side cache.
func (c *Client) Courses() ([]models.Course, error) {
	var out listEnvelope[models.Course]
	if err := c.do(http.MethodGet, "/courses", nil, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// Course fetches one course by id
func (c *Client) Course(id int) (*models.Course, error) {
	var out models.Course
	if err := c.do(http.MethodGet, fmt.Sprintf("/courses/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Enroll enrolls the current user into a course
func (c *Client) Enroll(courseID int) error {
	return c.do(http.MethodPost, fmt.Sprintf("/courses/%d/enroll", courseID), nil, nil)
}

// CreateCourse creates a course (teacher/admin)
func (c *Client) CreateCourse(input CourseInput) (*models.Course, error) {
	var out models.Course
	if err := c.do(http.MethodPost, "/courses", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCourse updates a course (teacher/admin)
func (c *Client) UpdateCourse(id int, input CourseInput) error {
	return c.do(http.MethodPut, fmt.Sprintf("/courses/%d", id), input, nil)
}

// DeleteCourse deletes a course (teacher/admin)
func (c *Client) DeleteCourse(id int) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/courses/%d", id), nil, nil)
}
