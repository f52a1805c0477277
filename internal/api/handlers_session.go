package api

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type sessionPayload struct {
	ProfileID string `json:"profile_id"`
}

// StartSession makes the given profile the active one for this browser.
func (handler *Handler) StartSession(c *fiber.Ctx) error {
	handler.ensureDependencies()

	payload := sessionPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if strings.TrimSpace(payload.ProfileID) == "" {
		return apiError(c, fiber.StatusBadRequest, "profile_id is required")
	}

	profile, err := handler.profileService.GetProfile(payload.ProfileID)
	if err != nil {
		return handler.profileError(c, "load profile", err)
	}
	if err := handler.setSessionCookie(c, profile.ID); err != nil {
		log.Printf("set session cookie: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to start session")
	}
	return c.JSON(fiber.Map{"profile": handler.profileView(c, profile)})
}

func (handler *Handler) GetSession(c *fiber.Ctx) error {
	session, ok := currentPlateSession(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, errNoActiveProfile.Error())
	}
	return c.JSON(fiber.Map{"profile": handler.profileView(c, session.Profile)})
}

func (handler *Handler) EndSession(c *fiber.Ctx) error {
	handler.clearSessionCookie(c)
	return c.SendStatus(fiber.StatusNoContent)
}
