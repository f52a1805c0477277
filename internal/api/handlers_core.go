package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// SetLanguage stores the language cookie. With a "next" query it redirects there, otherwise it answers with JSON.
func (handler *Handler) SetLanguage(c *fiber.Ctx) error {
	language := handler.i18n.NormalizeLanguage(c.Params("lang"))
	handler.setLanguageCookie(c, language)

	if next := c.Query("next"); next != "" {
		return c.Redirect(sanitizeRedirectPath(next, "/"), fiber.StatusSeeOther)
	}
	return c.JSON(fiber.Map{"language": language})
}
