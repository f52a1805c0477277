package db

import (
	"strings"

	"github.com/terraincognita07/nutriplate/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FoodRepository struct {
	database *gorm.DB
}

func NewFoodRepository(database *gorm.DB) *FoodRepository {
	return &FoodRepository{database: database}
}

func (repo *FoodRepository) Count() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Food{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *FoodRepository) List() ([]models.Food, error) {
	foods := make([]models.Food, 0)
	if err := repo.database.Order("name ASC, id ASC").Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (repo *FoodRepository) FindByID(foodID string) (models.Food, error) {
	var food models.Food
	if err := repo.database.Where("id = ?", foodID).First(&food).Error; err != nil {
		return models.Food{}, err
	}
	return food, nil
}

func (repo *FoodRepository) FindByIDs(foodIDs []string) ([]models.Food, error) {
	foods := make([]models.Food, 0, len(foodIDs))
	if len(foodIDs) == 0 {
		return foods, nil
	}
	if err := repo.database.Where("id IN ?", foodIDs).Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

// Search expects an already lowercased term.
func (repo *FoodRepository) Search(term string) ([]models.Food, error) {
	pattern := "%" + escapeLike(term) + "%"
	foods := make([]models.Food, 0)
	if err := repo.database.
		Where(`lower(name) LIKE ? ESCAPE '\' OR lower(category) LIKE ? ESCAPE '\'`, pattern, pattern).
		Order("name ASC, id ASC").
		Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (repo *FoodRepository) ListByCategory(category string) ([]models.Food, error) {
	foods := make([]models.Food, 0)
	if err := repo.database.
		Where("lower(category) = lower(?)", category).
		Order("name ASC, id ASC").
		Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

// Upsert inserts foods, replacing rows that share an id.
func (repo *FoodRepository) Upsert(foods []models.Food) error {
	if len(foods) == 0 {
		return nil
	}
	return repo.database.Clauses(clause.OnConflict{UpdateAll: true}).CreateInBatches(&foods, 100).Error
}

func escapeLike(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(term)
}
