package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/nutriplate/internal/services"
)

// ProfileRequired resolves the session cookie into a PlateSession. Stale or tampered cookies are cleared.
func (handler *Handler) ProfileRequired(c *fiber.Ctx) error {
	profileID, err := handler.sessionProfileID(c)
	if err != nil {
		if c.Cookies(sessionCookieName) != "" {
			handler.clearSessionCookie(c)
		}
		return apiError(c, fiber.StatusUnauthorized, errNoActiveProfile.Error())
	}

	handler.ensureDependencies()
	profile, err := handler.profileService.GetProfile(profileID)
	if errors.Is(err, services.ErrProfileNotFound) {
		handler.clearSessionCookie(c)
		return apiError(c, fiber.StatusUnauthorized, errNoActiveProfile.Error())
	}
	if err != nil {
		log.Printf("load session profile %s: %v", profileID, err)
		return apiError(c, fiber.StatusInternalServerError, "failed to load profile")
	}

	c.Locals(contextSessionKey, &PlateSession{Profile: profile})
	return c.Next()
}
