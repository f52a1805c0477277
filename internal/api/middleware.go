package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/nutriplate/internal/models"
)

const (
	sessionCookieName    = "nutriplate_session"
	languageCookieName   = "nutriplate_lang"
	sessionCookiePurpose = "session"
	contextSessionKey    = "plate_session"
	contextLanguageKey   = "current_language"
)

// PlateSession is the active profile resolved for the current request.
type PlateSession struct {
	Profile models.UserProfile
}

func currentPlateSession(c *fiber.Ctx) (*PlateSession, bool) {
	session, ok := c.Locals(contextSessionKey).(*PlateSession)
	return session, ok && session != nil
}

func currentLanguage(c *fiber.Ctx) string {
	language, _ := c.Locals(contextLanguageKey).(string)
	return language
}
