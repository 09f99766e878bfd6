package client

import (
	"net/http"

	"courseweb/models"
)

// Login authenticates against the API and, on success, persists the
// token and profile into the session store. This and Register are the
// only facade methods that mutate shared state.
func (c *Client) Login(email, password string) (*models.AuthResponse, error) {
	payload := map[string]string{
		"email":    email,
		"password": password,
	}

	var out models.AuthResponse
	if err := c.do(http.MethodPost, "/auth/login", payload, &out); err != nil {
		return nil, err
	}

	if out.Token != "" && c.session != nil {
		c.session.SetToken(out.Token)
		c.session.SetUser(&out.User)
	}

	return &out, nil
}

// Register creates an account and persists the returned credentials
// like Login does
func (c *Client) Register(name, email, password, phone string) (*models.AuthResponse, error) {
	payload := map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
		"phone":    phone,
	}

	var out models.AuthResponse
	if err := c.do(http.MethodPost, "/auth/register", payload, &out); err != nil {
		return nil, err
	}

	if out.Token != "" && c.session != nil {
		c.session.SetToken(out.Token)
		c.session.SetUser(&out.User)
	}

	return &out, nil
}

// Logout clears the session store. The API keeps no server-side token
// state, so no request is made; navigation is the caller's concern.
func (c *Client) Logout() {
	if c.session != nil {
		c.session.Clear()
	}
}

// Profile fetches the authenticated user's profile
func (c *Client) Profile() (*models.User, error) {
	var out models.User
	if err := c.do(http.MethodGet, "/auth/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
