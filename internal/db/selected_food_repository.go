package db

import (
	"time"

	"github.com/terraincognita07/nutriplate/internal/models"
	"gorm.io/gorm"
)

type SelectedFoodRepository struct {
	database *gorm.DB
}

func NewSelectedFoodRepository(database *gorm.DB) *SelectedFoodRepository {
	return &SelectedFoodRepository{database: database}
}

func (repo *SelectedFoodRepository) ListByProfile(profileID string) ([]models.SelectedFood, error) {
	selections := make([]models.SelectedFood, 0)
	if err := repo.database.
		Where("profile_id = ?", profileID).
		Order("date DESC, created_at ASC, id ASC").
		Find(&selections).Error; err != nil {
		return nil, err
	}
	return selections, nil
}

func (repo *SelectedFoodRepository) ListByProfileDayRange(profileID string, dayStart time.Time, dayEnd time.Time) ([]models.SelectedFood, error) {
	selections := make([]models.SelectedFood, 0)
	if err := repo.database.
		Where("profile_id = ? AND date >= ? AND date < ?", profileID, dayStart, dayEnd).
		Order("created_at ASC, id ASC").
		Find(&selections).Error; err != nil {
		return nil, err
	}
	return selections, nil
}

func (repo *SelectedFoodRepository) FindByProfileFoodDayRange(profileID string, foodID string, dayStart time.Time, dayEnd time.Time) (models.SelectedFood, bool, error) {
	selection := models.SelectedFood{}
	result := repo.database.
		Where("profile_id = ? AND food_id = ? AND date >= ? AND date < ?", profileID, foodID, dayStart, dayEnd).
		Order("created_at ASC, id ASC").
		Limit(1).
		Find(&selection)
	if result.Error != nil {
		return models.SelectedFood{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.SelectedFood{}, false, nil
	}
	return selection, true, nil
}

func (repo *SelectedFoodRepository) Create(selection *models.SelectedFood) error {
	return repo.database.Create(selection).Error
}

func (repo *SelectedFoodRepository) DeleteByProfileFoodDayRange(profileID string, foodID string, dayStart time.Time, dayEnd time.Time) error {
	return repo.database.
		Where("profile_id = ? AND food_id = ? AND date >= ? AND date < ?", profileID, foodID, dayStart, dayEnd).
		Delete(&models.SelectedFood{}).Error
}

func (repo *SelectedFoodRepository) DeleteByProfileDayRange(profileID string, dayStart time.Time, dayEnd time.Time) error {
	return repo.database.
		Where("profile_id = ? AND date >= ? AND date < ?", profileID, dayStart, dayEnd).
		Delete(&models.SelectedFood{}).Error
}
