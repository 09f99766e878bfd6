package client

import (
	"fmt"
	"net/http"

	"courseweb/models"
)

// Notifications fetches the newest notifications, limited server-side
func (c *Client) Notifications(limit int) ([]models.Notification, error) {
	var out listEnvelope[models.Notification]
	path := fmt.Sprintf("/notifications?limit=%d", limit)
	if err := c.do(http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// NotificationCount fetches the unread notification count
func (c *Client) NotificationCount() (int, error) {
	var out struct {
		Count int `json:"count"`
	}
	if err := c.do(http.MethodGet, "/notifications/count", nil, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

// MarkNotificationRead marks one notification as read
func (c *Client) MarkNotificationRead(id int) error {
	return c.do(http.MethodPost, fmt.Sprintf("/notifications/%d/read", id), nil, nil)
}

// MarkAllNotificationsRead marks every notification as read
func (c *Client) MarkAllNotificationsRead() error {
	return c.do(http.MethodPost, "/notifications/read-all", nil, nil)
}
