package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CategoryFruit     = "Fruit"
	CategoryVegetable = "Vegetable"
	CategoryFish      = "Fish"
	CategoryMeat      = "Meat"
	CategoryNuts      = "Nuts"
	CategoryGrains    = "Grains"
	CategoryLegume    = "Legume"
	CategoryDairy     = "Dairy"
	CategoryOther     = "Other"
)

const (
	SeasonSpring  = "Spring"
	SeasonSummer  = "Summer"
	SeasonAutumn  = "Autumn"
	SeasonWinter  = "Winter"
	SeasonAllYear = "All year"
)

const (
	HealthAntioxidant      = "Antioxidant"
	HealthAntiInflammatory = "Anti-inflammatory"
	HealthGut              = "Gut health"
	HealthBrain            = "Brain health"
	HealthHeart            = "Heart health"
	HealthImmune           = "Immune system"
	HealthBone             = "Bone health"
	HealthEnergy           = "Energy"
	HealthDigestion        = "Digestion"
)

// Food is a catalog entry. Nutrient amounts are expressed per 100 g.
type Food struct {
	ID                 string   `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name               string   `gorm:"not null;index" json:"name"`
	Category           string   `gorm:"not null;index" json:"category"`
	ImageURL           string   `gorm:"not null;default:''" json:"image_url"`
	Seasons            []string `gorm:"serializer:json" json:"seasons"`
	HealthProperties   []string `gorm:"serializer:json" json:"health_properties"`
	BioactiveCompounds []string `gorm:"serializer:json" json:"bioactive_compounds"`
	Description        string   `json:"description,omitempty"`

	Carbohydrates      float64 `gorm:"not null;default:0" json:"carbohydrates"`
	Proteins           float64 `gorm:"not null;default:0" json:"proteins"`
	Lipids             float64 `gorm:"not null;default:0" json:"lipids"`
	SaturatedFat       float64 `gorm:"not null;default:0" json:"saturated_fat"`
	MonounsaturatedFat float64 `gorm:"not null;default:0" json:"monounsaturated_fat"`
	PolyunsaturatedFat float64 `gorm:"not null;default:0" json:"polyunsaturated_fat"`
	Omega3EPA          float64 `gorm:"column:omega_3_epa;not null;default:0" json:"omega_3_epa"`
	Omega3DHA          float64 `gorm:"column:omega_3_dha;not null;default:0" json:"omega_3_dha"`
	Omega3ALA          float64 `gorm:"column:omega_3_ala;not null;default:0" json:"omega_3_ala"`
	Omega6             float64 `gorm:"column:omega_6;not null;default:0" json:"omega_6"`
	Omega3Omega6Ratio  float64 `gorm:"column:omega3_omega6_ratio;not null;default:0" json:"omega3_omega6_ratio"`
	Fiber              float64 `gorm:"not null;default:0" json:"fiber"`
	VitaminC           float64 `gorm:"column:vitamin_c;not null;default:0" json:"vitamin_c"`
	VitaminB6          float64 `gorm:"column:vitamin_b6;not null;default:0" json:"vitamin_b6"`
	VitaminB9          float64 `gorm:"column:vitamin_b9;not null;default:0" json:"vitamin_b9"`
	VitaminB12         float64 `gorm:"column:vitamin_b12;not null;default:0" json:"vitamin_b12"`
	VitaminD           float64 `gorm:"column:vitamin_d;not null;default:0" json:"vitamin_d"`
	Iron               float64 `gorm:"not null;default:0" json:"iron"`
	Magnesium          float64 `gorm:"not null;default:0" json:"magnesium"`
	Zinc               float64 `gorm:"not null;default:0" json:"zinc"`
	Calcium            float64 `gorm:"not null;default:0" json:"calcium"`
	Selenium           float64 `gorm:"not null;default:0" json:"selenium"`
}

func (food *Food) BeforeCreate(*gorm.DB) error {
	if strings.TrimSpace(food.ID) == "" {
		food.ID = uuid.NewString()
	}
	return nil
}

func FoodCategories() []string {
	return []string{
		CategoryFruit,
		CategoryVegetable,
		CategoryFish,
		CategoryMeat,
		CategoryNuts,
		CategoryGrains,
		CategoryLegume,
		CategoryDairy,
		CategoryOther,
	}
}

func FoodSeasons() []string {
	return []string{SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter, SeasonAllYear}
}

func HealthProperties() []string {
	return []string{
		HealthAntioxidant,
		HealthAntiInflammatory,
		HealthGut,
		HealthBrain,
		HealthHeart,
		HealthImmune,
		HealthBone,
		HealthEnergy,
		HealthDigestion,
	}
}

func (food Food) HasSeason(season string) bool {
	return containsFold(food.Seasons, season)
}

func (food Food) HasHealthProperty(property string) bool {
	return containsFold(food.HealthProperties, property)
}

func containsFold(values []string, needle string) bool {
	trimmed := strings.TrimSpace(needle)
	for _, value := range values {
		if strings.EqualFold(strings.TrimSpace(value), trimmed) {
			return true
		}
	}
	return false
}

// NutrientField points at the stored amount for key. Composite and unknown keys yield nil.
func (food *Food) NutrientField(key NutrientKey) *float64 {
	switch key {
	case NutrientCarbohydrates:
		return &food.Carbohydrates
	case NutrientProteins:
		return &food.Proteins
	case NutrientLipids:
		return &food.Lipids
	case NutrientFiber:
		return &food.Fiber
	case NutrientVitaminC:
		return &food.VitaminC
	case NutrientVitaminD:
		return &food.VitaminD
	case NutrientIron:
		return &food.Iron
	case NutrientCalcium:
		return &food.Calcium
	case NutrientMagnesium:
		return &food.Magnesium
	case NutrientZinc:
		return &food.Zinc
	case NutrientSaturatedFat:
		return &food.SaturatedFat
	case NutrientMonounsaturatedFat:
		return &food.MonounsaturatedFat
	case NutrientPolyunsaturatedFat:
		return &food.PolyunsaturatedFat
	case NutrientOmega3EPA:
		return &food.Omega3EPA
	case NutrientOmega3DHA:
		return &food.Omega3DHA
	case NutrientOmega3ALA:
		return &food.Omega3ALA
	case NutrientOmega6:
		return &food.Omega6
	case NutrientOmega3Omega6Ratio:
		return &food.Omega3Omega6Ratio
	case NutrientVitaminB6:
		return &food.VitaminB6
	case NutrientVitaminB9:
		return &food.VitaminB9
	case NutrientVitaminB12:
		return &food.VitaminB12
	case NutrientSelenium:
		return &food.Selenium
	default:
		return nil
	}
}

// SetNutrientValue stores value under key and reports whether key is a stored nutrient.
func SetNutrientValue(food *Food, key NutrientKey, value float64) bool {
	field := food.NutrientField(key)
	if field == nil {
		return false
	}
	*field = value
	return true
}
