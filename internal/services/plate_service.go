package services

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/terraincognita07/nutriplate/internal/models"
)

const MaxQuantityLength = 32

var (
	ErrPlateLoadFailed      = errors.New("load plate failed")
	ErrPlateAddFailed       = errors.New("add food to plate failed")
	ErrPlateRemoveFailed    = errors.New("remove food from plate failed")
	ErrPlateClearFailed     = errors.New("clear plate failed")
	ErrQuantityInvalid      = errors.New("invalid quantity")
	ErrNutrientGroupInvalid = errors.New("invalid nutrient group")
)

type SelectedFoodRepository interface {
	ListByProfile(profileID string) ([]models.SelectedFood, error)
	ListByProfileDayRange(profileID string, dayStart time.Time, dayEnd time.Time) ([]models.SelectedFood, error)
	FindByProfileFoodDayRange(profileID string, foodID string, dayStart time.Time, dayEnd time.Time) (models.SelectedFood, bool, error)
	Create(selection *models.SelectedFood) error
	DeleteByProfileFoodDayRange(profileID string, foodID string, dayStart time.Time, dayEnd time.Time) error
	DeleteByProfileDayRange(profileID string, dayStart time.Time, dayEnd time.Time) error
}

type PlateFoodLookup interface {
	GetFood(foodID string) (models.Food, error)
	FoodsByIDs(foodIDs []string) ([]models.Food, error)
}

type NutrientSummary struct {
	Key      models.NutrientKey
	LabelKey string
	Color    string
	Progress Progress
}

type PlateSummary struct {
	Date      time.Time
	Group     string
	FoodCount int
	Nutrients []NutrientSummary
}

type PlateHistoryDay struct {
	Date      string
	FoodCount int
}

type PlateService struct {
	selections SelectedFoodRepository
	foods      PlateFoodLookup
}

func NewPlateService(selections SelectedFoodRepository, foods PlateFoodLookup) *PlateService {
	return &PlateService{
		selections: selections,
		foods:      foods,
	}
}

func (service *PlateService) SelectionsForDate(profileID string, day time.Time, location *time.Location) ([]models.SelectedFood, error) {
	dayStart, dayEnd := StoredDayRange(day, location)
	selections, err := service.selections.ListByProfileDayRange(profileID, dayStart, dayEnd)
	if err != nil {
		return nil, ErrPlateLoadFailed
	}
	return selections, nil
}

// FoodsForDate resolves the plate's selections against the catalog, in selection order.
// Selections pointing at foods missing from the catalog are skipped.
func (service *PlateService) FoodsForDate(profileID string, day time.Time, location *time.Location) ([]models.Food, error) {
	selections, err := service.SelectionsForDate(profileID, day, location)
	if err != nil {
		return nil, err
	}
	return service.FoodsForSelections(selections)
}

// FoodsForSelections resolves already loaded selections without reading the plate again.
func (service *PlateService) FoodsForSelections(selections []models.SelectedFood) ([]models.Food, error) {
	foodIDs := make([]string, 0, len(selections))
	for _, selection := range selections {
		foodIDs = append(foodIDs, selection.FoodID)
	}
	foods, err := service.foods.FoodsByIDs(foodIDs)
	if err != nil {
		return nil, ErrPlateLoadFailed
	}
	return foods, nil
}

// AddFood puts a food on the plate. When the food is already there for that day the existing
// row is returned and created is false.
func (service *PlateService) AddFood(profileID string, foodID string, day time.Time, quantity string, location *time.Location) (models.SelectedFood, bool, error) {
	normalizedQuantity, err := NormalizeQuantity(quantity)
	if err != nil {
		return models.SelectedFood{}, false, err
	}

	food, err := service.foods.GetFood(foodID)
	if err != nil {
		return models.SelectedFood{}, false, err
	}

	dayStart, dayEnd := StoredDayRange(day, location)
	existing, found, err := service.selections.FindByProfileFoodDayRange(profileID, food.ID, dayStart, dayEnd)
	if err != nil {
		return models.SelectedFood{}, false, ErrPlateLoadFailed
	}
	if found {
		return existing, false, nil
	}

	selection := models.SelectedFood{
		ProfileID: profileID,
		FoodID:    food.ID,
		Date:      dayStart,
		Quantity:  normalizedQuantity,
	}
	if err := service.selections.Create(&selection); err != nil {
		// A concurrent writer may have inserted the same row between the check and the insert.
		existing, found, findErr := service.selections.FindByProfileFoodDayRange(profileID, food.ID, dayStart, dayEnd)
		if findErr == nil && found {
			return existing, false, nil
		}
		return models.SelectedFood{}, false, ErrPlateAddFailed
	}
	return selection, true, nil
}

func (service *PlateService) RemoveFood(profileID string, foodID string, day time.Time, location *time.Location) error {
	dayStart, dayEnd := StoredDayRange(day, location)
	if err := service.selections.DeleteByProfileFoodDayRange(profileID, strings.TrimSpace(foodID), dayStart, dayEnd); err != nil {
		return ErrPlateRemoveFailed
	}
	return nil
}

func (service *PlateService) ClearPlate(profileID string, day time.Time, location *time.Location) error {
	dayStart, dayEnd := StoredDayRange(day, location)
	if err := service.selections.DeleteByProfileDayRange(profileID, dayStart, dayEnd); err != nil {
		return ErrPlateClearFailed
	}
	return nil
}

// Summary computes progress for every nutrient of group against the profile's targets.
func (service *PlateService) Summary(profile models.UserProfile, day time.Time, group string, location *time.Location) (PlateSummary, error) {
	keys, ok := NutrientsForGroup(group)
	if !ok {
		return PlateSummary{}, ErrNutrientGroupInvalid
	}
	foods, err := service.FoodsForDate(profile.ID, day, location)
	if err != nil {
		return PlateSummary{}, err
	}
	if group == "" {
		group = NutrientGroupAll
	}
	return BuildPlateSummary(profile, foods, keys, DateAtLocation(day, location), group), nil
}

func BuildPlateSummary(profile models.UserProfile, foods []models.Food, keys []models.NutrientKey, day time.Time, group string) PlateSummary {
	summary := PlateSummary{
		Date:      day,
		Group:     group,
		FoodCount: len(foods),
		Nutrients: make([]NutrientSummary, 0, len(keys)),
	}
	for _, key := range keys {
		definition, _ := LookupNutrient(key)
		current := SumNutrient(foods, key)
		target := profile.Target(key)
		summary.Nutrients = append(summary.Nutrients, NutrientSummary{
			Key:      key,
			LabelKey: definition.LabelKey,
			Color:    definition.Color,
			Progress: BuildProgress(current, target, definition.Recommendation, definition.Unit),
		})
	}
	return summary
}

// History lists every day the profile logged food, newest first.
func (service *PlateService) History(profileID string) ([]PlateHistoryDay, error) {
	selections, err := service.selections.ListByProfile(profileID)
	if err != nil {
		return nil, ErrPlateLoadFailed
	}

	counts := make(map[string]int)
	for _, selection := range selections {
		counts[FormatStoredDay(selection.Date)]++
	}

	days := make([]PlateHistoryDay, 0, len(counts))
	for date, count := range counts {
		days = append(days, PlateHistoryDay{Date: date, FoodCount: count})
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date > days[j].Date
	})
	return days, nil
}

func NormalizeQuantity(raw string) (string, error) {
	quantity := strings.TrimSpace(raw)
	if quantity == "" {
		return models.DefaultQuantity, nil
	}
	if len(quantity) > MaxQuantityLength {
		return "", ErrQuantityInvalid
	}
	return quantity, nil
}
