package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultQuantity = "100g"

// SelectedFood records that a profile put a food on its plate for a calendar day.
// Date holds that day as midnight UTC, whatever the configured time zone.
type SelectedFood struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	ProfileID string    `gorm:"not null;index;uniqueIndex:uidx_selected_profile_food_date" json:"profile_id"`
	FoodID    string    `gorm:"not null;uniqueIndex:uidx_selected_profile_food_date" json:"food_id"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uidx_selected_profile_food_date" json:"date"`
	Quantity  string    `gorm:"not null;default:'100g'" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

func (selection *SelectedFood) BeforeCreate(*gorm.DB) error {
	if strings.TrimSpace(selection.ID) == "" {
		selection.ID = uuid.NewString()
	}
	if strings.TrimSpace(selection.Quantity) == "" {
		selection.Quantity = DefaultQuantity
	}
	return nil
}
