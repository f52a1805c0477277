package db

import (
	"github.com/terraincognita07/nutriplate/internal/models"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	database *gorm.DB
}

func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{database: database}
}

func (repo *ProfileRepository) List() ([]models.UserProfile, error) {
	profiles := make([]models.UserProfile, 0)
	if err := repo.database.Order("created_at ASC, id ASC").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (repo *ProfileRepository) FindByID(profileID string) (models.UserProfile, error) {
	var profile models.UserProfile
	if err := repo.database.Where("id = ?", profileID).First(&profile).Error; err != nil {
		return models.UserProfile{}, err
	}
	return profile, nil
}

func (repo *ProfileRepository) Create(profile *models.UserProfile) error {
	return repo.database.Create(profile).Error
}

func (repo *ProfileRepository) Save(profile *models.UserProfile) error {
	return repo.database.Save(profile).Error
}

// DeleteWithSelections removes the profile and its plate history in one transaction.
func (repo *ProfileRepository) DeleteWithSelections(profileID string) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("profile_id = ?", profileID).Delete(&models.SelectedFood{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", profileID).Delete(&models.UserProfile{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
