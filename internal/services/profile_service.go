package services

import (
	"errors"
	"strings"

	"github.com/terraincognita07/nutriplate/internal/models"
	"gorm.io/gorm"
)

var (
	ErrProfileNotFound     = errors.New("profile not found")
	ErrProfileLoadFailed   = errors.New("load profile failed")
	ErrProfileCreateFailed = errors.New("create profile failed")
	ErrProfileUpdateFailed = errors.New("update profile failed")
	ErrProfileDeleteFailed = errors.New("delete profile failed")
)

type ProfileRepository interface {
	List() ([]models.UserProfile, error)
	FindByID(profileID string) (models.UserProfile, error)
	Create(profile *models.UserProfile) error
	Save(profile *models.UserProfile) error
	DeleteWithSelections(profileID string) error
}

type ProfileService struct {
	profiles ProfileRepository
}

func NewProfileService(profiles ProfileRepository) *ProfileService {
	return &ProfileService{profiles: profiles}
}

func (service *ProfileService) ListProfiles() ([]models.UserProfile, error) {
	profiles, err := service.profiles.List()
	if err != nil {
		return nil, ErrProfileLoadFailed
	}
	return profiles, nil
}

func (service *ProfileService) GetProfile(profileID string) (models.UserProfile, error) {
	trimmed := strings.TrimSpace(profileID)
	if trimmed == "" {
		return models.UserProfile{}, ErrProfileNotFound
	}
	profile, err := service.profiles.FindByID(trimmed)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.UserProfile{}, ErrProfileNotFound
		}
		return models.UserProfile{}, ErrProfileLoadFailed
	}
	return profile, nil
}

func (service *ProfileService) CreateProfile(input ProfileInput) (models.UserProfile, error) {
	normalized, err := NormalizeProfileInput(input)
	if err != nil {
		return models.UserProfile{}, err
	}

	profile := models.UserProfile{}
	applyProfileInput(&profile, normalized)
	if err := service.profiles.Create(&profile); err != nil {
		return models.UserProfile{}, ErrProfileCreateFailed
	}
	return profile, nil
}

// UpdateProfile replaces every editable field of the profile. Objectives missing from input
// are reset to zero.
func (service *ProfileService) UpdateProfile(profileID string, input ProfileInput) (models.UserProfile, error) {
	normalized, err := NormalizeProfileInput(input)
	if err != nil {
		return models.UserProfile{}, err
	}

	profile, err := service.GetProfile(profileID)
	if err != nil {
		return models.UserProfile{}, err
	}

	applyProfileInput(&profile, normalized)
	if err := service.profiles.Save(&profile); err != nil {
		return models.UserProfile{}, ErrProfileUpdateFailed
	}
	return profile, nil
}

func (service *ProfileService) DeleteProfile(profileID string) error {
	if _, err := service.GetProfile(profileID); err != nil {
		return err
	}
	if err := service.profiles.DeleteWithSelections(strings.TrimSpace(profileID)); err != nil {
		return ErrProfileDeleteFailed
	}
	return nil
}
