package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)
	app.Get("/lang/:lang", handler.SetLanguage)

	api := app.Group("/api")

	foods := api.Group("/foods")
	foods.Get("", handler.ListFoods)
	foods.Get("/options", handler.FoodOptions)
	foods.Get("/:id", handler.GetFood)

	api.Get("/nutrients", handler.ListNutrients)

	profiles := api.Group("/profiles")
	profiles.Get("", handler.ListProfiles)
	profiles.Get("/defaults", handler.ProfileDefaults)
	profiles.Post("", handler.CreateProfile)
	profiles.Get("/:id", handler.GetProfile)
	profiles.Put("/:id", handler.UpdateProfile)
	profiles.Delete("/:id", handler.DeleteProfile)

	session := api.Group("/session")
	session.Post("", handler.StartSession)
	session.Get("", handler.ProfileRequired, handler.GetSession)
	session.Delete("", handler.EndSession)

	plate := api.Group("/plate", handler.ProfileRequired)
	plate.Get("", handler.GetPlate)
	plate.Get("/summary", handler.GetPlateSummary)
	plate.Get("/history", handler.GetPlateHistory)
	plate.Post("/foods", handler.AddPlateFood)
	plate.Delete("/foods/:foodID", handler.RemovePlateFood)
	plate.Delete("", handler.ClearPlate)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
