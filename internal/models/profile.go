package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SexMale   = "Male"
	SexFemale = "Female"
	SexOther  = "Other"
)

// UserProfile holds identity fields and one daily target column per tracked nutrient.
type UserProfile struct {
	ID            string    `gorm:"primaryKey;type:varchar(36)"`
	FirstName     string    `gorm:"not null"`
	Sex           string    `gorm:"not null"`
	Weight        float64   `gorm:"not null"`
	Carbohydrates float64   `gorm:"not null;default:0"`
	Proteins      float64   `gorm:"not null;default:0"`
	Lipids        float64   `gorm:"not null;default:0"`
	Fiber         float64   `gorm:"not null;default:0"`
	VitaminC      float64   `gorm:"column:vitamin_c;not null;default:0"`
	VitaminD      float64   `gorm:"column:vitamin_d;not null;default:0"`
	Iron          float64   `gorm:"not null;default:0"`
	Calcium       float64   `gorm:"not null;default:0"`
	Magnesium     float64   `gorm:"not null;default:0"`
	Omega3Total   float64   `gorm:"column:omega_3_total;not null;default:0"`
	Zinc          float64   `gorm:"not null;default:0"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time
}

func (UserProfile) TableName() string {
	return "profiles"
}

func (profile *UserProfile) BeforeCreate(*gorm.DB) error {
	if strings.TrimSpace(profile.ID) == "" {
		profile.ID = uuid.NewString()
	}
	return nil
}

func Sexes() []string {
	return []string{SexMale, SexFemale, SexOther}
}

// Objectives returns the daily targets keyed by nutrient.
func (profile UserProfile) Objectives() map[NutrientKey]float64 {
	return map[NutrientKey]float64{
		NutrientCarbohydrates: profile.Carbohydrates,
		NutrientProteins:      profile.Proteins,
		NutrientLipids:        profile.Lipids,
		NutrientFiber:         profile.Fiber,
		NutrientVitaminC:      profile.VitaminC,
		NutrientVitaminD:      profile.VitaminD,
		NutrientIron:          profile.Iron,
		NutrientCalcium:       profile.Calcium,
		NutrientMagnesium:     profile.Magnesium,
		NutrientOmega3Total:   profile.Omega3Total,
		NutrientZinc:          profile.Zinc,
	}
}

// SetObjectives overwrites every target. Keys absent from objectives are reset to zero.
func (profile *UserProfile) SetObjectives(objectives map[NutrientKey]float64) {
	profile.Carbohydrates = objectives[NutrientCarbohydrates]
	profile.Proteins = objectives[NutrientProteins]
	profile.Lipids = objectives[NutrientLipids]
	profile.Fiber = objectives[NutrientFiber]
	profile.VitaminC = objectives[NutrientVitaminC]
	profile.VitaminD = objectives[NutrientVitaminD]
	profile.Iron = objectives[NutrientIron]
	profile.Calcium = objectives[NutrientCalcium]
	profile.Magnesium = objectives[NutrientMagnesium]
	profile.Omega3Total = objectives[NutrientOmega3Total]
	profile.Zinc = objectives[NutrientZinc]
}

// Target returns the daily target for key, zero for untracked nutrients.
func (profile UserProfile) Target(key NutrientKey) float64 {
	return profile.Objectives()[key]
}
