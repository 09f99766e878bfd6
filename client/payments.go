package client

import (
	"fmt"
	"net/http"

	"courseweb/models"
)

// PaymentInput is the payload for submitting a manual payment
type PaymentInput struct {
	CourseID int     `json:"course_id"`
	Method   string  `json:"method"`
	Amount   float64 `json:"amount"`
	Notes    string  `json:"notes,omitempty"`
}

// SubmitPayment creates a pending payment record for manual review
func (c *Client) SubmitPayment(input PaymentInput) (*models.Payment, error) {
	var out models.Payment
	if err := c.do(http.MethodPost, "/payments", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MyPayments lists the current user's payments
func (c *Client) MyPayments() ([]models.Payment, error) {
	var out listEnvelope[models.Payment]
	if err := c.do(http.MethodGet, "/payments/my", nil, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// Payment fetches one payment by id
func (c *Client) Payment(id int) (*models.Payment, error) {
	var out models.Payment
	if err := c.do(http.MethodGet, fmt.Sprintf("/payments/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Payments lists every payment (admin review queue)
func (c *Client) Payments() ([]models.Payment, error) {
	var out listEnvelope[models.Payment]
	if err := c.do(http.MethodGet, "/payments", nil, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// UpdatePaymentStatus confirms or rejects a payment (admin)
func (c *Client) UpdatePaymentStatus(id int, status string) error {
	payload := map[string]string{"status": status}
	return c.do(http.MethodPut, fmt.Sprintf("/payments/%d", id), payload, nil)
}

// AttachReceipt records an uploaded receipt image on a payment. The
// binary itself goes through the two-step upload path first.
func (c *Client) AttachReceipt(paymentID int, receiptURL string) error {
	payload := map[string]string{"receipt_url": receiptURL}
	return c.do(http.MethodPost, fmt.Sprintf("/payments/%d/receipt", paymentID), payload, nil)
}
