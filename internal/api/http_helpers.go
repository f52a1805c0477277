package api

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/nutriplate/internal/services"
)

var errInvalidDate = errors.New("invalid date")

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// parseDayQuery reads the optional "date" query value (YYYY-MM-DD) in the handler's location.
// A missing value means today.
func (handler *Handler) parseDayQuery(c *fiber.Ctx) (time.Time, error) {
	return handler.parseDay(c.Query("date"))
}

func (handler *Handler) parseDay(raw string) (time.Time, error) {
	day, err := services.ParseDay(raw, handler.now(), handler.location)
	if err != nil {
		return time.Time{}, errInvalidDate
	}
	return day, nil
}

func sanitizeRedirectPath(raw string, fallback string) string {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return fallback
	}
	if !strings.HasPrefix(candidate, "/") || strings.HasPrefix(candidate, "//") {
		return fallback
	}
	// Browsers treat "\" as "/", so "/\host" would leave the site.
	if strings.ContainsRune(candidate, '\\') {
		return fallback
	}
	parsed, err := url.Parse(candidate)
	if err != nil || parsed.IsAbs() {
		return fallback
	}
	return candidate
}
