package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/nutriplate/internal/models"
	"github.com/terraincognita07/nutriplate/internal/services"
)

func (handler *Handler) ListFoods(c *fiber.Ctx) error {
	handler.ensureDependencies()

	foods, err := handler.catalogService.Query(services.CatalogQuery{
		Text:           c.Query("q"),
		Category:       c.Query("category"),
		Season:         c.Query("season"),
		HealthProperty: c.Query("health_property"),
	})
	if errors.Is(err, services.ErrInvalidCatalogQuery) {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	if err != nil {
		log.Printf("list foods: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to load foods")
	}
	return c.JSON(fiber.Map{"foods": handler.foodViews(c, foods)})
}

func (handler *Handler) FoodOptions(c *fiber.Ctx) error {
	handler.ensureDependencies()

	options := handler.catalogService.Options()
	return c.JSON(fiber.Map{
		"categories":        handler.labeledValues(c, "category", options.Categories),
		"seasons":           handler.labeledValues(c, "season", options.Seasons),
		"health_properties": handler.labeledValues(c, "health", options.HealthProperties),
	})
}

func (handler *Handler) GetFood(c *fiber.Ctx) error {
	handler.ensureDependencies()

	food, err := handler.catalogService.GetFood(c.Params("id"))
	if errors.Is(err, services.ErrFoodNotFound) {
		return apiError(c, fiber.StatusNotFound, err.Error())
	}
	if err != nil {
		log.Printf("get food %s: %v", c.Params("id"), err)
		return apiError(c, fiber.StatusInternalServerError, "failed to load food")
	}
	return c.JSON(handler.foodView(c, food))
}

func (handler *Handler) ListNutrients(c *fiber.Ctx) error {
	macro := make(map[models.NutrientKey]bool)
	for _, key := range services.MacroNutrients() {
		macro[key] = true
	}

	definitions := services.NutrientDefinitions()
	views := make([]nutrientView, 0, len(definitions))
	for _, definition := range definitions {
		group := services.NutrientGroupMicro
		if macro[definition.Key] {
			group = services.NutrientGroupMacro
		}
		views = append(views, nutrientView{
			Key:            definition.Key,
			Label:          handler.translate(c, definition.LabelKey),
			Unit:           definition.Unit,
			Recommendation: definition.Recommendation,
			Color:          definition.Color,
			Group:          group,
		})
	}
	return c.JSON(fiber.Map{"nutrients": views})
}
