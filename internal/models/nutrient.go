package models

type NutrientKey string

const (
	NutrientCarbohydrates NutrientKey = "carbohydrates"
	NutrientProteins      NutrientKey = "proteins"
	NutrientLipids        NutrientKey = "lipids"
	NutrientFiber         NutrientKey = "fiber"
	NutrientVitaminC      NutrientKey = "vitamin_c"
	NutrientVitaminD      NutrientKey = "vitamin_d"
	NutrientIron          NutrientKey = "iron"
	NutrientCalcium       NutrientKey = "calcium"
	NutrientMagnesium     NutrientKey = "magnesium"
	NutrientOmega3Total   NutrientKey = "omega_3_total"
	NutrientZinc          NutrientKey = "zinc"

	// Catalog-only nutrients. Profiles carry no target for them.
	NutrientSaturatedFat       NutrientKey = "saturated_fat"
	NutrientMonounsaturatedFat NutrientKey = "monounsaturated_fat"
	NutrientPolyunsaturatedFat NutrientKey = "polyunsaturated_fat"
	NutrientOmega3EPA          NutrientKey = "omega_3_epa"
	NutrientOmega3DHA          NutrientKey = "omega_3_dha"
	NutrientOmega3ALA          NutrientKey = "omega_3_ala"
	NutrientOmega6             NutrientKey = "omega_6"
	NutrientOmega3Omega6Ratio  NutrientKey = "omega3_omega6_ratio"
	NutrientVitaminB6          NutrientKey = "vitamin_b6"
	NutrientVitaminB9          NutrientKey = "vitamin_b9"
	NutrientVitaminB12         NutrientKey = "vitamin_b12"
	NutrientSelenium           NutrientKey = "selenium"
)

// TrackedNutrients lists the nutrients a profile sets daily targets for.
func TrackedNutrients() []NutrientKey {
	return []NutrientKey{
		NutrientCarbohydrates,
		NutrientProteins,
		NutrientLipids,
		NutrientFiber,
		NutrientVitaminC,
		NutrientVitaminD,
		NutrientIron,
		NutrientCalcium,
		NutrientMagnesium,
		NutrientOmega3Total,
		NutrientZinc,
	}
}

func IsTrackedNutrient(key NutrientKey) bool {
	for _, tracked := range TrackedNutrients() {
		if tracked == key {
			return true
		}
	}
	return false
}
