package services

import (
	"sort"
	"strings"
	"time"

	"github.com/terraincognita07/nutriplate/internal/models"
	"gorm.io/gorm"
)

type foodRepositoryStub struct {
	foods   []models.Food
	listErr error
	findErr error
}

func (stub *foodRepositoryStub) List() ([]models.Food, error) {
	if stub.listErr != nil {
		return nil, stub.listErr
	}
	result := make([]models.Food, len(stub.foods))
	copy(result, stub.foods)
	return result, nil
}

func (stub *foodRepositoryStub) FindByID(foodID string) (models.Food, error) {
	if stub.findErr != nil {
		return models.Food{}, stub.findErr
	}
	for _, food := range stub.foods {
		if food.ID == foodID {
			return food, nil
		}
	}
	return models.Food{}, gorm.ErrRecordNotFound
}

func (stub *foodRepositoryStub) FindByIDs(foodIDs []string) ([]models.Food, error) {
	if stub.listErr != nil {
		return nil, stub.listErr
	}
	wanted := make(map[string]bool, len(foodIDs))
	for _, foodID := range foodIDs {
		wanted[foodID] = true
	}
	result := make([]models.Food, 0, len(foodIDs))
	for _, food := range stub.foods {
		if wanted[food.ID] {
			result = append(result, food)
		}
	}
	return result, nil
}

func (stub *foodRepositoryStub) Search(term string) ([]models.Food, error) {
	if stub.listErr != nil {
		return nil, stub.listErr
	}
	result := make([]models.Food, 0)
	for _, food := range stub.foods {
		if strings.Contains(strings.ToLower(food.Name), term) || strings.Contains(strings.ToLower(food.Category), term) {
			result = append(result, food)
		}
	}
	return result, nil
}

func (stub *foodRepositoryStub) ListByCategory(category string) ([]models.Food, error) {
	if stub.listErr != nil {
		return nil, stub.listErr
	}
	result := make([]models.Food, 0)
	for _, food := range stub.foods {
		if strings.EqualFold(food.Category, category) {
			result = append(result, food)
		}
	}
	return result, nil
}

type profileRepositoryStub struct {
	profiles  map[string]models.UserProfile
	nextID    int
	createErr error
	saveErr   error
	deleted   []string
}

func newProfileRepositoryStub() *profileRepositoryStub {
	return &profileRepositoryStub{profiles: make(map[string]models.UserProfile), nextID: 1}
}

func (stub *profileRepositoryStub) List() ([]models.UserProfile, error) {
	result := make([]models.UserProfile, 0, len(stub.profiles))
	for _, profile := range stub.profiles {
		result = append(result, profile)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (stub *profileRepositoryStub) FindByID(profileID string) (models.UserProfile, error) {
	profile, ok := stub.profiles[profileID]
	if !ok {
		return models.UserProfile{}, gorm.ErrRecordNotFound
	}
	return profile, nil
}

func (stub *profileRepositoryStub) Create(profile *models.UserProfile) error {
	if stub.createErr != nil {
		return stub.createErr
	}
	if profile.ID == "" {
		profile.ID = "profile-" + strings.Repeat("x", stub.nextID)
		stub.nextID++
	}
	stub.profiles[profile.ID] = *profile
	return nil
}

func (stub *profileRepositoryStub) Save(profile *models.UserProfile) error {
	if stub.saveErr != nil {
		return stub.saveErr
	}
	stub.profiles[profile.ID] = *profile
	return nil
}

func (stub *profileRepositoryStub) DeleteWithSelections(profileID string) error {
	delete(stub.profiles, profileID)
	stub.deleted = append(stub.deleted, profileID)
	return nil
}

type selectedFoodRepositoryStub struct {
	rows      []models.SelectedFood
	nextID    int
	createErr error
	listErr   error
	creates   int
}

func (stub *selectedFoodRepositoryStub) inRange(row models.SelectedFood, dayStart time.Time, dayEnd time.Time) bool {
	return !row.Date.Before(dayStart) && row.Date.Before(dayEnd)
}

func (stub *selectedFoodRepositoryStub) ListByProfile(profileID string) ([]models.SelectedFood, error) {
	if stub.listErr != nil {
		return nil, stub.listErr
	}
	result := make([]models.SelectedFood, 0)
	for _, row := range stub.rows {
		if row.ProfileID == profileID {
			result = append(result, row)
		}
	}
	return result, nil
}

func (stub *selectedFoodRepositoryStub) ListByProfileDayRange(profileID string, dayStart time.Time, dayEnd time.Time) ([]models.SelectedFood, error) {
	if stub.listErr != nil {
		return nil, stub.listErr
	}
	result := make([]models.SelectedFood, 0)
	for _, row := range stub.rows {
		if row.ProfileID == profileID && stub.inRange(row, dayStart, dayEnd) {
			result = append(result, row)
		}
	}
	return result, nil
}

func (stub *selectedFoodRepositoryStub) FindByProfileFoodDayRange(profileID string, foodID string, dayStart time.Time, dayEnd time.Time) (models.SelectedFood, bool, error) {
	for _, row := range stub.rows {
		if row.ProfileID == profileID && row.FoodID == foodID && stub.inRange(row, dayStart, dayEnd) {
			return row, true, nil
		}
	}
	return models.SelectedFood{}, false, nil
}

func (stub *selectedFoodRepositoryStub) Create(selection *models.SelectedFood) error {
	stub.creates++
	if stub.createErr != nil {
		return stub.createErr
	}
	stub.nextID++
	selection.ID = "selection-" + strings.Repeat("x", stub.nextID)
	if selection.Quantity == "" {
		selection.Quantity = models.DefaultQuantity
	}
	stub.rows = append(stub.rows, *selection)
	return nil
}

func (stub *selectedFoodRepositoryStub) DeleteByProfileFoodDayRange(profileID string, foodID string, dayStart time.Time, dayEnd time.Time) error {
	kept := stub.rows[:0]
	for _, row := range stub.rows {
		if row.ProfileID == profileID && row.FoodID == foodID && stub.inRange(row, dayStart, dayEnd) {
			continue
		}
		kept = append(kept, row)
	}
	stub.rows = kept
	return nil
}

func (stub *selectedFoodRepositoryStub) DeleteByProfileDayRange(profileID string, dayStart time.Time, dayEnd time.Time) error {
	kept := stub.rows[:0]
	for _, row := range stub.rows {
		if row.ProfileID == profileID && stub.inRange(row, dayStart, dayEnd) {
			continue
		}
		kept = append(kept, row)
	}
	stub.rows = kept
	return nil
}

func sampleCatalog() []models.Food {
	return []models.Food{
		{
			ID:               "blueberry",
			Name:             "Blueberry",
			Category:         models.CategoryFruit,
			Seasons:          []string{models.SeasonSummer},
			HealthProperties: []string{models.HealthAntioxidant, models.HealthBrain},
			Carbohydrates:    14.5,
			Proteins:         0.7,
			Omega3ALA:        0.09,
			VitaminC:         9.7,
		},
		{
			ID:               "salmon",
			Name:             "Salmon",
			Category:         models.CategoryFish,
			Seasons:          []string{models.SeasonAllYear},
			HealthProperties: []string{models.HealthHeart, models.HealthBrain},
			Proteins:         20,
			Lipids:           13,
			Omega3ALA:        0.1,
			Omega3EPA:        0.69,
			Omega3DHA:        0.82,
			VitaminD:         11,
		},
		{
			ID:               "lentils",
			Name:             "Lentils",
			Category:         models.CategoryLegume,
			Seasons:          []string{models.SeasonAutumn, models.SeasonWinter},
			HealthProperties: []string{models.HealthGut, models.HealthEnergy},
			Carbohydrates:    20,
			Proteins:         9,
			Fiber:            8,
			Iron:             3.3,
		},
	}
}
