package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	fibersession "github.com/gofiber/fiber/v2/middleware/session"
	"github.com/rs/zerolog/log"

	"courseweb/client"
	"courseweb/config"
	"courseweb/session"
)

var sessionStore *fibersession.Store

// InitSessionStore wires cookie sessions over the durable storage
func InitSessionStore(storage fiber.Storage) {
	sessionStore = fibersession.New(fibersession.Config{
		Storage:        storage,
		Expiration:     time.Duration(config.AppConfig.SessionTTLDays) * 24 * time.Hour,
		KeyLookup:      "cookie:" + config.AppConfig.CookieName,
		CookieHTTPOnly: true,
		CookieSecure:   config.AppConfig.CookieSecure,
		CookieSameSite: "Lax",
	})
}

// Session returns the request's session store. The store is cached on
// the request so every caller sees the same underlying session.
func Session(c *fiber.Ctx) *session.Store {
	if cached, ok := c.Locals("sessionStore").(*session.Store); ok {
		return cached
	}

	sess, err := sessionStore.Get(c)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load session")
		return session.NewStore(discardedSession{})
	}

	store := session.NewStore(sess)
	c.Locals("sessionStore", store)
	return store
}

// PageData decorates template data with the shared navigation state
func PageData(c *fiber.Ctx, data fiber.Map) fiber.Map {
	if data == nil {
		data = fiber.Map{}
	}

	sess := Session(c)
	data["LoggedIn"] = sess.IsAuthenticated()
	data["UserName"] = ""
	data["UserRole"] = ""
	if user := sess.CurrentUser(); user != nil {
		data["UserName"] = user.Name
		data["UserRole"] = user.Role
	}
	return data
}

// Api returns the API facade bound to the request's session
func Api(c *fiber.Ctx) *client.Client {
	return client.Api.WithSession(Session(c))
}

// discardedSession stands in when the session layer is unavailable so
// the request still renders as logged out instead of crashing
type discardedSession struct{}

func (discardedSession) Get(string) interface{}  { return nil }
func (discardedSession) Set(string, interface{}) {}
func (discardedSession) Delete(string)           {}
func (discardedSession) Save() error             { return nil }
