package middleware

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// RequireLogin redirects anonymous visitors to the login page, keeping
// the original URL as the post-login redirect target. A session whose
// cached JWT is past its exp claim is cleared and treated the same.
func RequireLogin(c *fiber.Ctx) error {
	sess := Session(c)

	if !sess.IsAuthenticated() {
		return redirectToLogin(c)
	}

	if sess.TokenExpired() {
		sess.Clear()
		if err := sess.Save(); err != nil {
			log.Error().Err(err).Msg("Failed to clear expired session")
		}
		return redirectToLogin(c)
	}

	// A token can outlive its cached profile (corrupt or missing user
	// data). Refetch it best-effort so role-gated navigation renders;
	// pages still work logged-in without it.
	if sess.CurrentUser() == nil {
		if user, err := Api(c).Profile(); err == nil {
			sess.SetUser(user)
			if err := sess.Save(); err != nil {
				log.Error().Err(err).Msg("Failed to persist refreshed profile")
			}
		}
	}

	return c.Next()
}

func redirectToLogin(c *fiber.Ctx) error {
	return c.Redirect("/login?redirect=" + url.QueryEscape(c.OriginalURL()))
}
