package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/nutriplate/internal/models"
	"github.com/terraincognita07/nutriplate/internal/services"
)

type profilePayload struct {
	FirstName  string                         `json:"first_name"`
	Sex        string                         `json:"sex"`
	Weight     float64                        `json:"weight"`
	Objectives map[models.NutrientKey]float64 `json:"objectives"`
}

func (payload profilePayload) input() services.ProfileInput {
	return services.ProfileInput{
		FirstName:  payload.FirstName,
		Sex:        payload.Sex,
		Weight:     payload.Weight,
		Objectives: payload.Objectives,
	}
}

func (handler *Handler) ListProfiles(c *fiber.Ctx) error {
	handler.ensureDependencies()

	profiles, err := handler.profileService.ListProfiles()
	if err != nil {
		log.Printf("list profiles: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to load profiles")
	}
	views := make([]profileView, 0, len(profiles))
	for _, profile := range profiles {
		views = append(views, handler.profileView(c, profile))
	}
	return c.JSON(fiber.Map{"profiles": views})
}

func (handler *Handler) ProfileDefaults(c *fiber.Ctx) error {
	defaults := services.DefaultProfileInput()
	return c.JSON(fiber.Map{
		"first_name": defaults.FirstName,
		"sex":        defaults.Sex,
		"weight":     defaults.Weight,
		"objectives": defaults.Objectives,
		"sexes":      handler.labeledValues(c, "sex", models.Sexes()),
	})
}

func (handler *Handler) CreateProfile(c *fiber.Ctx) error {
	handler.ensureDependencies()

	payload := profilePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	profile, err := handler.profileService.CreateProfile(payload.input())
	if err != nil {
		return handler.profileError(c, "create profile", err)
	}
	return c.Status(fiber.StatusCreated).JSON(handler.profileView(c, profile))
}

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	handler.ensureDependencies()

	profile, err := handler.profileService.GetProfile(c.Params("id"))
	if err != nil {
		return handler.profileError(c, "get profile", err)
	}
	return c.JSON(handler.profileView(c, profile))
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	handler.ensureDependencies()

	payload := profilePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	profile, err := handler.profileService.UpdateProfile(c.Params("id"), payload.input())
	if err != nil {
		return handler.profileError(c, "update profile", err)
	}
	return c.JSON(handler.profileView(c, profile))
}

func (handler *Handler) DeleteProfile(c *fiber.Ctx) error {
	handler.ensureDependencies()

	profileID := c.Params("id")
	if err := handler.profileService.DeleteProfile(profileID); err != nil {
		return handler.profileError(c, "delete profile", err)
	}
	if activeID, err := handler.sessionProfileID(c); err == nil && activeID == profileID {
		handler.clearSessionCookie(c)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) profileError(c *fiber.Ctx, operation string, err error) error {
	switch {
	case errors.Is(err, services.ErrProfileNotFound):
		return apiError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrProfileFirstNameInvalid),
		errors.Is(err, services.ErrProfileSexInvalid),
		errors.Is(err, services.ErrProfileWeightInvalid),
		errors.Is(err, services.ErrProfileObjectiveInvalid),
		errors.Is(err, services.ErrProfileObjectiveUnknown):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	default:
		log.Printf("%s: %v", operation, err)
		return apiError(c, fiber.StatusInternalServerError, "failed to "+operation)
	}
}
