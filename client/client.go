package client

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"courseweb/models"
)

// GenericErrorMessage is shown when the server gives no usable message
// or the request never reached it.
const GenericErrorMessage = "حدث خطأ ما"

// Session is the slice of the session store the client depends on: the
// token is read before every request, and login/register write the
// credentials back through it.
type Session interface {
	Token() (string, bool)
	SetToken(token string)
	SetUser(user *models.User)
	Clear()
}

// ApiError is the single error type every facade method fails with.
// Transport marks failures that never got a server verdict (network
// unreachable, unparseable response).
type ApiError struct {
	StatusCode int
	Message    string
	Transport  bool
}

func (e *ApiError) Error() string {
	return e.Message
}

// AsApiError unwraps err into an *ApiError when possible
func AsApiError(err error) (*ApiError, bool) {
	var apiErr *ApiError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// Client issues requests against the remote course API. The zero
// session means unauthenticated calls.
type Client struct {
	http    *resty.Client
	session Session
}

// Api is the shared client, initialised once in main
var Api *Client

// Init sets up the shared client
func Init(baseURL string, timeout time.Duration) {
	Api = New(baseURL, timeout)
}

// New creates a client for the given API base URL
func New(baseURL string, timeout time.Duration) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &Client{http: httpClient}
}

// WithSession binds the client to a request-scoped session store. The
// underlying transport is shared.
func (c *Client) WithSession(s Session) *Client {
	return &Client{http: c.http, session: s}
}

// listEnvelope wraps every list response of the API
type listEnvelope[T any] struct {
	Results []T `json:"results"`
}

// do issues one API call. Non-2xx responses become an ApiError carrying
// the server's message; transport failures become a generic ApiError.
// No retries, no caching.
func (c *Client) do(method, path string, body interface{}, out interface{}) error {
	req := c.http.R()

	if c.session != nil {
		if token, ok := c.session.Token(); ok {
			req.SetAuthToken(token)
		}
	}

	if body != nil {
		req.SetHeader("Content-Type", "application/json")
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		log.Error().Err(err).Str("method", method).Str("path", path).Msg("API request failed")
		return &ApiError{Message: GenericErrorMessage, Transport: true}
	}

	if resp.IsError() {
		message := GenericErrorMessage
		var envelope struct {
			Message string `json:"message"`
		}
		if jsonErr := json.Unmarshal(resp.Body(), &envelope); jsonErr == nil && envelope.Message != "" {
			message = envelope.Message
		}
		return &ApiError{StatusCode: resp.StatusCode(), Message: message}
	}

	if out != nil {
		if err := json.Unmarshal(resp.Body(), out); err != nil {
			log.Error().Err(err).Str("path", path).Msg("Failed to decode API response")
			return &ApiError{Message: GenericErrorMessage, Transport: true}
		}
	}

	return nil
}
