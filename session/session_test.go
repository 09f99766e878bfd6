package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courseweb/models"
)

// mapBackend substitutes fiber's session in tests
type mapBackend struct {
	data  map[string]interface{}
	saved bool
}

func newMapBackend() *mapBackend {
	return &mapBackend{data: map[string]interface{}{}}
}

func (m *mapBackend) Get(key string) interface{} { return m.data[key] }

func (m *mapBackend) Set(key string, value interface{}) { m.data[key] = value }

func (m *mapBackend) Delete(key string) { delete(m.data, key) }

func (m *mapBackend) Save() error {
	m.saved = true
	return nil
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestTokenRoundTrip(t *testing.T) {
	store := NewStore(newMapBackend())

	_, ok := store.Token()
	assert.False(t, ok)
	assert.False(t, store.IsAuthenticated())

	store.SetToken("jwt-abc")

	token, ok := store.Token()
	assert.True(t, ok)
	assert.Equal(t, "jwt-abc", token)
	assert.True(t, store.IsAuthenticated())
}

func TestCurrentUserRoundTrip(t *testing.T) {
	store := NewStore(newMapBackend())

	assert.Nil(t, store.CurrentUser())

	store.SetUser(&models.User{ID: 7, Name: "أحمد", Role: models.RoleAdmin})

	user := store.CurrentUser()
	require.NotNil(t, user)
	assert.Equal(t, 7, user.ID)
	assert.Equal(t, "أحمد", user.Name)
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestCurrentUserToleratesCorruptCache(t *testing.T) {
	backend := newMapBackend()
	backend.Set("user_data", "{not valid json")

	store := NewStore(backend)
	assert.Nil(t, store.CurrentUser())
}

func TestClearDropsTokenAndUser(t *testing.T) {
	store := NewStore(newMapBackend())
	store.SetToken("jwt-abc")
	store.SetUser(&models.User{ID: 1})

	store.Clear()

	assert.False(t, store.IsAuthenticated())
	assert.Nil(t, store.CurrentUser())
}

func TestSaveFlushesBackend(t *testing.T) {
	backend := newMapBackend()
	store := NewStore(backend)

	require.NoError(t, store.Save())
	assert.True(t, backend.saved)
}

func TestTokenExpired(t *testing.T) {
	t.Run("no token", func(t *testing.T) {
		store := NewStore(newMapBackend())
		assert.False(t, store.TokenExpired())
	})

	t.Run("opaque token", func(t *testing.T) {
		store := NewStore(newMapBackend())
		store.SetToken("not-a-jwt")
		assert.False(t, store.TokenExpired())
	})

	t.Run("valid jwt", func(t *testing.T) {
		store := NewStore(newMapBackend())
		store.SetToken(signedToken(t, time.Now().Add(time.Hour)))
		assert.False(t, store.TokenExpired())
	})

	t.Run("expired jwt", func(t *testing.T) {
		store := NewStore(newMapBackend())
		store.SetToken(signedToken(t, time.Now().Add(-time.Hour)))
		assert.True(t, store.TokenExpired())
	})
}
