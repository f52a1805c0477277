package api

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/nutriplate/internal/models"
	"github.com/terraincognita07/nutriplate/internal/services"
)

type plateFoodPayload struct {
	FoodID   string `json:"food_id"`
	Quantity string `json:"quantity"`
	Date     string `json:"date"`
}

// GetPlate returns the day's selections joined with their foods and the full nutrient summary.
func (handler *Handler) GetPlate(c *fiber.Ctx) error {
	session, day, handled, err := handler.plateRequest(c)
	if handled {
		return err
	}

	selections, err := handler.plateService.SelectionsForDate(session.Profile.ID, day, handler.location)
	if err != nil {
		return handler.plateError(c, "load plate", err)
	}
	foods, err := handler.plateService.FoodsForSelections(selections)
	if err != nil {
		return handler.plateError(c, "load plate foods", err)
	}

	byID := make(map[string]models.Food, len(foods))
	for _, food := range foods {
		byID[food.ID] = food
	}
	items := make([]plateItemView, 0, len(selections))
	for _, selection := range selections {
		food, ok := byID[selection.FoodID]
		if !ok {
			continue
		}
		items = append(items, handler.plateItemView(c, selection, &food))
	}

	keys, _ := services.NutrientsForGroup(services.NutrientGroupAll)
	summary := services.BuildPlateSummary(session.Profile, foods, keys, day, services.NutrientGroupAll)
	return c.JSON(fiber.Map{
		"date":       services.FormatDay(day),
		"profile_id": session.Profile.ID,
		"items":      items,
		"summary":    handler.plateSummaryView(c, summary),
	})
}

func (handler *Handler) GetPlateSummary(c *fiber.Ctx) error {
	session, day, handled, err := handler.plateRequest(c)
	if handled {
		return err
	}

	summary, err := handler.plateService.Summary(session.Profile, day, c.Query("group"), handler.location)
	if err != nil {
		return handler.plateError(c, "load plate summary", err)
	}
	return c.JSON(handler.plateSummaryView(c, summary))
}

func (handler *Handler) GetPlateHistory(c *fiber.Ctx) error {
	handler.ensureDependencies()
	session, ok := currentPlateSession(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, errNoActiveProfile.Error())
	}

	days, err := handler.plateService.History(session.Profile.ID)
	if err != nil {
		return handler.plateError(c, "load plate history", err)
	}

	type historyDay struct {
		Date      string `json:"date"`
		FoodCount int    `json:"food_count"`
	}
	result := make([]historyDay, 0, len(days))
	for _, day := range days {
		result = append(result, historyDay{Date: day.Date, FoodCount: day.FoodCount})
	}
	return c.JSON(fiber.Map{"days": result})
}

// AddPlateFood answers 201 when the food was added and 200 when it was already on the plate.
func (handler *Handler) AddPlateFood(c *fiber.Ctx) error {
	handler.ensureDependencies()
	session, ok := currentPlateSession(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, errNoActiveProfile.Error())
	}

	payload := plateFoodPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	day, err := handler.parseDay(payload.Date)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	selection, created, err := handler.plateService.AddFood(session.Profile.ID, payload.FoodID, day, payload.Quantity, handler.location)
	if err != nil {
		return handler.plateError(c, "add food to plate", err)
	}

	var food *models.Food
	if resolved, err := handler.catalogService.GetFood(selection.FoodID); err == nil {
		food = &resolved
	}
	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(handler.plateItemView(c, selection, food))
}

func (handler *Handler) RemovePlateFood(c *fiber.Ctx) error {
	session, day, handled, err := handler.plateRequest(c)
	if handled {
		return err
	}
	if err := handler.plateService.RemoveFood(session.Profile.ID, c.Params("foodID"), day, handler.location); err != nil {
		return handler.plateError(c, "remove food from plate", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) ClearPlate(c *fiber.Ctx) error {
	session, day, handled, err := handler.plateRequest(c)
	if handled {
		return err
	}
	if err := handler.plateService.ClearPlate(session.Profile.ID, day, handler.location); err != nil {
		return handler.plateError(c, "clear plate", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// plateRequest resolves the session and the "date" query. When handled is true the response
// has already been written and err is what the handler should return.
func (handler *Handler) plateRequest(c *fiber.Ctx) (session *PlateSession, day time.Time, handled bool, err error) {
	handler.ensureDependencies()
	session, ok := currentPlateSession(c)
	if !ok {
		return nil, time.Time{}, true, apiError(c, fiber.StatusUnauthorized, errNoActiveProfile.Error())
	}
	day, err = handler.parseDayQuery(c)
	if err != nil {
		return nil, time.Time{}, true, apiError(c, fiber.StatusBadRequest, err.Error())
	}
	return session, day, false, nil
}

func (handler *Handler) plateError(c *fiber.Ctx, operation string, err error) error {
	switch {
	case errors.Is(err, services.ErrFoodNotFound):
		return apiError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrQuantityInvalid), errors.Is(err, services.ErrNutrientGroupInvalid):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	default:
		log.Printf("%s: %v", operation, err)
		return apiError(c, fiber.StatusInternalServerError, "failed to "+operation)
	}
}
