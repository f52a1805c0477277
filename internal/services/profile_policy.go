package services

import (
	"errors"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/terraincognita07/nutriplate/internal/models"
)

const MinFirstNameLength = 2

var (
	ErrProfileFirstNameInvalid = errors.New("first name must contain at least 2 characters")
	ErrProfileSexInvalid       = errors.New("invalid sex value")
	ErrProfileWeightInvalid    = errors.New("weight must be positive")
	ErrProfileObjectiveInvalid = errors.New("objective values must be zero or positive")
	ErrProfileObjectiveUnknown = errors.New("unknown objective nutrient")
)

type ProfileInput struct {
	FirstName  string
	Sex        string
	Weight     float64
	Objectives map[models.NutrientKey]float64
}

// DefaultProfileInput mirrors the pre-filled values of the profile creation form.
func DefaultProfileInput() ProfileInput {
	return ProfileInput{
		Sex:    models.SexMale,
		Weight: 70,
		Objectives: map[models.NutrientKey]float64{
			models.NutrientCarbohydrates: 250,
			models.NutrientProteins:      75,
			models.NutrientLipids:        60,
			models.NutrientFiber:         30,
			models.NutrientVitaminC:      90,
			models.NutrientVitaminD:      20,
			models.NutrientIron:          8,
			models.NutrientCalcium:       1000,
			models.NutrientMagnesium:     400,
			models.NutrientOmega3Total:   1.6,
			models.NutrientZinc:          11,
		},
	}
}

// NormalizeProfileInput trims text fields, canonicalises sex and validates every value.
func NormalizeProfileInput(input ProfileInput) (ProfileInput, error) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	if utf8.RuneCountInString(input.FirstName) < MinFirstNameLength {
		return ProfileInput{}, ErrProfileFirstNameInvalid
	}

	sex, ok := normalizeSex(input.Sex)
	if !ok {
		return ProfileInput{}, ErrProfileSexInvalid
	}
	input.Sex = sex

	if math.IsNaN(input.Weight) || math.IsInf(input.Weight, 0) || input.Weight <= 0 {
		return ProfileInput{}, ErrProfileWeightInvalid
	}

	objectives := make(map[models.NutrientKey]float64, len(input.Objectives))
	for key, value := range input.Objectives {
		if !models.IsTrackedNutrient(key) {
			return ProfileInput{}, ErrProfileObjectiveUnknown
		}
		if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
			return ProfileInput{}, ErrProfileObjectiveInvalid
		}
		objectives[key] = value
	}
	input.Objectives = objectives
	return input, nil
}

func normalizeSex(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	for _, sex := range models.Sexes() {
		if strings.EqualFold(trimmed, sex) {
			return sex, true
		}
	}
	return "", false
}

func applyProfileInput(profile *models.UserProfile, input ProfileInput) {
	profile.FirstName = input.FirstName
	profile.Sex = input.Sex
	profile.Weight = input.Weight
	profile.SetObjectives(input.Objectives)
}
