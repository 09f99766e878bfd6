package session

import (
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"courseweb/models"
)

// Storage keys, unchanged across sessions
const (
	tokenKey = "auth_token"
	userKey  = "user_data"
)

// backend is the slice of fiber's session API the store relies on.
// Kept as an interface so tests can substitute a map.
type backend interface {
	Get(key string) interface{}
	Set(key string, value interface{})
	Delete(key string)
	Save() error
}

// Store owns the persisted auth token and cached user profile. All
// reads and writes of session state go through it; it performs no
// validation of the token itself.
type Store struct {
	sess backend
}

// NewStore wraps a session backend
func NewStore(sess backend) *Store {
	return &Store{sess: sess}
}

// Token returns the stored auth token, if any
func (s *Store) Token() (string, bool) {
	value, ok := s.sess.Get(tokenKey).(string)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// SetToken stores the auth token
func (s *Store) SetToken(token string) {
	s.sess.Set(tokenKey, token)
}

// SetUser caches the user profile next to the token
func (s *Store) SetUser(user *models.User) {
	data, err := json.Marshal(user)
	if err != nil {
		return
	}
	s.sess.Set(userKey, string(data))
}

// CurrentUser returns the cached profile, or nil when it is missing or
// corrupt. It never panics; a broken cache reads as logged out.
func (s *Store) CurrentUser() *models.User {
	raw, ok := s.sess.Get(userKey).(string)
	if !ok || raw == "" {
		return nil
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil
	}
	return &user
}

// IsAuthenticated reports whether a token is present. It does not
// check the token against the server.
func (s *Store) IsAuthenticated() bool {
	_, ok := s.Token()
	return ok
}

// Clear drops both the token and the cached profile
func (s *Store) Clear() {
	s.sess.Delete(tokenKey)
	s.sess.Delete(userKey)
}

// Save flushes the session to its storage
func (s *Store) Save() error {
	return s.sess.Save()
}

// TokenExpired reports whether the stored token is a JWT whose exp
// claim has passed. Opaque or claim-less tokens read as not expired;
// the server stays the authority either way.
func (s *Store) TokenExpired() bool {
	token, ok := s.Token()
	if !ok {
		return false
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return false
	}

	return time.Now().Unix() > int64(exp)
}
