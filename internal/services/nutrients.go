package services

import "github.com/terraincognita07/nutriplate/internal/models"

// NutrientValue reads a single nutrient amount from a food. Unknown keys read as zero.
func NutrientValue(food models.Food, key models.NutrientKey) float64 {
	if key == models.NutrientOmega3Total {
		return food.Omega3ALA + food.Omega3EPA + food.Omega3DHA
	}
	if field := food.NutrientField(key); field != nil {
		return *field
	}
	return 0
}

// SumNutrient totals a nutrient across foods. omega_3_total is the sum of ALA, EPA and DHA.
func SumNutrient(foods []models.Food, key models.NutrientKey) float64 {
	total := 0.0
	for _, food := range foods {
		total += NutrientValue(food, key)
	}
	return total
}

func SumNutrients(foods []models.Food, keys []models.NutrientKey) map[models.NutrientKey]float64 {
	totals := make(map[models.NutrientKey]float64, len(keys))
	for _, key := range keys {
		totals[key] = SumNutrient(foods, key)
	}
	return totals
}
