package services

import "github.com/terraincognita07/nutriplate/internal/models"

const (
	NutrientGroupMacro = "macro"
	NutrientGroupMicro = "micro"
	NutrientGroupAll   = "all"
)

type NutrientDefinition struct {
	Key            models.NutrientKey
	LabelKey       string
	Unit           string
	Recommendation float64
	Color          string
}

// General dietary guidelines. Displayed as reference markers, never enforced.
var nutrientDefinitions = []NutrientDefinition{
	{Key: models.NutrientCarbohydrates, LabelKey: "nutrient.carbohydrates", Unit: "g", Recommendation: 275, Color: "#3B82F6"},
	{Key: models.NutrientProteins, LabelKey: "nutrient.proteins", Unit: "g", Recommendation: 55, Color: "#EF4444"},
	{Key: models.NutrientLipids, LabelKey: "nutrient.lipids", Unit: "g", Recommendation: 78, Color: "#F59E0B"},
	{Key: models.NutrientFiber, LabelKey: "nutrient.fiber", Unit: "g", Recommendation: 25, Color: "#10B981"},
	{Key: models.NutrientOmega3Total, LabelKey: "nutrient.omega_3_total", Unit: "g", Recommendation: 1.6, Color: "#0EA5E9"},
	{Key: models.NutrientVitaminC, LabelKey: "nutrient.vitamin_c", Unit: "mg", Recommendation: 90, Color: "#F97316"},
	{Key: models.NutrientVitaminD, LabelKey: "nutrient.vitamin_d", Unit: "µg", Recommendation: 15, Color: "#FACC15"},
	{Key: models.NutrientIron, LabelKey: "nutrient.iron", Unit: "mg", Recommendation: 8, Color: "#DC2626"},
	{Key: models.NutrientCalcium, LabelKey: "nutrient.calcium", Unit: "mg", Recommendation: 1000, Color: "#9CA3AF"},
	{Key: models.NutrientMagnesium, LabelKey: "nutrient.magnesium", Unit: "mg", Recommendation: 400, Color: "#8B5CF6"},
	{Key: models.NutrientZinc, LabelKey: "nutrient.zinc", Unit: "mg", Recommendation: 11, Color: "#A855F7"},
}

func MacroNutrients() []models.NutrientKey {
	return []models.NutrientKey{
		models.NutrientCarbohydrates,
		models.NutrientProteins,
		models.NutrientLipids,
		models.NutrientFiber,
		models.NutrientOmega3Total,
	}
}

func MicroNutrients() []models.NutrientKey {
	return []models.NutrientKey{
		models.NutrientVitaminC,
		models.NutrientVitaminD,
		models.NutrientIron,
		models.NutrientCalcium,
		models.NutrientMagnesium,
		models.NutrientZinc,
	}
}

func NutrientDefinitions() []NutrientDefinition {
	result := make([]NutrientDefinition, len(nutrientDefinitions))
	copy(result, nutrientDefinitions)
	return result
}

// LookupNutrient returns the definition for key. Unknown keys get a gram-based placeholder.
func LookupNutrient(key models.NutrientKey) (NutrientDefinition, bool) {
	for _, definition := range nutrientDefinitions {
		if definition.Key == key {
			return definition, true
		}
	}
	return NutrientDefinition{Key: key, LabelKey: "nutrient." + string(key), Unit: "g", Color: "#9CA3AF"}, false
}

// NutrientsForGroup resolves a group name. ok is false for unrecognised groups.
func NutrientsForGroup(group string) ([]models.NutrientKey, bool) {
	switch group {
	case "", NutrientGroupAll:
		return append(MacroNutrients(), MicroNutrients()...), true
	case NutrientGroupMacro:
		return MacroNutrients(), true
	case NutrientGroupMicro:
		return MicroNutrients(), true
	default:
		return nil, false
	}
}
