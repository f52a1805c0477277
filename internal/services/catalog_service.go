package services

import (
	"errors"
	"strings"

	"github.com/terraincognita07/nutriplate/internal/models"
	"gorm.io/gorm"
)

// CategoryAll selects every category when filtering the catalog.
const CategoryAll = "all"

var (
	ErrFoodNotFound        = errors.New("food not found")
	ErrCatalogLoadFailed   = errors.New("load catalog failed")
	ErrInvalidCatalogQuery = errors.New("invalid catalog query")
)

type FoodRepository interface {
	List() ([]models.Food, error)
	FindByID(foodID string) (models.Food, error)
	FindByIDs(foodIDs []string) ([]models.Food, error)
	Search(term string) ([]models.Food, error)
	ListByCategory(category string) ([]models.Food, error)
}

type CatalogQuery struct {
	Text           string
	Category       string
	Season         string
	HealthProperty string
}

type CatalogOptions struct {
	Categories       []string
	Seasons          []string
	HealthProperties []string
}

type CatalogService struct {
	foods FoodRepository
}

func NewCatalogService(foods FoodRepository) *CatalogService {
	return &CatalogService{foods: foods}
}

func (service *CatalogService) ListFoods() ([]models.Food, error) {
	foods, err := service.foods.List()
	if err != nil {
		return nil, ErrCatalogLoadFailed
	}
	return foods, nil
}

func (service *CatalogService) GetFood(foodID string) (models.Food, error) {
	trimmed := strings.TrimSpace(foodID)
	if trimmed == "" {
		return models.Food{}, ErrFoodNotFound
	}
	food, err := service.foods.FindByID(trimmed)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Food{}, ErrFoodNotFound
		}
		return models.Food{}, ErrCatalogLoadFailed
	}
	return food, nil
}

// FoodsByIDs returns the catalog entries for ids, in the order of ids. Unknown ids are skipped.
func (service *CatalogService) FoodsByIDs(foodIDs []string) ([]models.Food, error) {
	if len(foodIDs) == 0 {
		return []models.Food{}, nil
	}
	found, err := service.foods.FindByIDs(foodIDs)
	if err != nil {
		return nil, ErrCatalogLoadFailed
	}
	byID := make(map[string]models.Food, len(found))
	for _, food := range found {
		byID[food.ID] = food
	}
	ordered := make([]models.Food, 0, len(foodIDs))
	for _, foodID := range foodIDs {
		if food, ok := byID[foodID]; ok {
			ordered = append(ordered, food)
		}
	}
	return ordered, nil
}

// Search matches the term against name and category, case-insensitively.
// A blank term returns the whole catalog.
func (service *CatalogService) Search(term string) ([]models.Food, error) {
	trimmed := strings.ToLower(strings.TrimSpace(term))
	if trimmed == "" {
		return service.ListFoods()
	}
	foods, err := service.foods.Search(trimmed)
	if err != nil {
		return nil, ErrCatalogLoadFailed
	}
	return foods, nil
}

func (service *CatalogService) FilterByCategory(category string) ([]models.Food, error) {
	trimmed := strings.TrimSpace(category)
	if trimmed == "" || strings.EqualFold(trimmed, CategoryAll) {
		return service.ListFoods()
	}
	foods, err := service.foods.ListByCategory(trimmed)
	if err != nil {
		return nil, ErrCatalogLoadFailed
	}
	return foods, nil
}

func (service *CatalogService) FilterBySeason(season string) ([]models.Food, error) {
	foods, err := service.ListFoods()
	if err != nil {
		return nil, err
	}
	return filterFoods(foods, func(food models.Food) bool {
		return food.HasSeason(season)
	}), nil
}

func (service *CatalogService) FilterByHealthProperty(property string) ([]models.Food, error) {
	foods, err := service.ListFoods()
	if err != nil {
		return nil, err
	}
	return filterFoods(foods, func(food models.Food) bool {
		return food.HasHealthProperty(property)
	}), nil
}

// Query combines text search with optional category, season and health-property filters.
func (service *CatalogService) Query(query CatalogQuery) ([]models.Food, error) {
	if err := ValidateCatalogQuery(query); err != nil {
		return nil, err
	}

	var (
		foods []models.Food
		err   error
	)
	if strings.TrimSpace(query.Text) != "" {
		foods, err = service.Search(query.Text)
		if err == nil {
			foods = filterFoods(foods, func(food models.Food) bool {
				return matchesCategory(food, query.Category)
			})
		}
	} else {
		foods, err = service.FilterByCategory(query.Category)
	}
	if err != nil {
		return nil, err
	}

	if season := strings.TrimSpace(query.Season); season != "" {
		foods = filterFoods(foods, func(food models.Food) bool {
			return food.HasSeason(season)
		})
	}
	if property := strings.TrimSpace(query.HealthProperty); property != "" {
		foods = filterFoods(foods, func(food models.Food) bool {
			return food.HasHealthProperty(property)
		})
	}
	return foods, nil
}

func (service *CatalogService) Options() CatalogOptions {
	return CatalogOptions{
		Categories:       models.FoodCategories(),
		Seasons:          models.FoodSeasons(),
		HealthProperties: models.HealthProperties(),
	}
}

// ValidateCatalogQuery rejects filter values outside the known vocabularies.
func ValidateCatalogQuery(query CatalogQuery) error {
	category := strings.TrimSpace(query.Category)
	if category != "" && !strings.EqualFold(category, CategoryAll) && !containsFold(models.FoodCategories(), category) {
		return ErrInvalidCatalogQuery
	}
	if season := strings.TrimSpace(query.Season); season != "" && !containsFold(models.FoodSeasons(), season) {
		return ErrInvalidCatalogQuery
	}
	if property := strings.TrimSpace(query.HealthProperty); property != "" && !containsFold(models.HealthProperties(), property) {
		return ErrInvalidCatalogQuery
	}
	return nil
}

func matchesCategory(food models.Food, category string) bool {
	trimmed := strings.TrimSpace(category)
	if trimmed == "" || strings.EqualFold(trimmed, CategoryAll) {
		return true
	}
	return strings.EqualFold(food.Category, trimmed)
}

func filterFoods(foods []models.Food, keep func(models.Food) bool) []models.Food {
	filtered := make([]models.Food, 0, len(foods))
	for _, food := range foods {
		if keep(food) {
			filtered = append(filtered, food)
		}
	}
	return filtered
}

func containsFold(values []string, needle string) bool {
	for _, value := range values {
		if strings.EqualFold(value, needle) {
			return true
		}
	}
	return false
}
