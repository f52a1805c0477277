package db

import (
	"fmt"

	"github.com/terraincognita07/nutriplate/internal/models"
)

// SeedCatalog loads foods only when the catalog table is empty and reports how many were inserted.
func SeedCatalog(repo *FoodRepository, foods []models.Food) (int, error) {
	count, err := repo.Count()
	if err != nil {
		return 0, fmt.Errorf("count foods: %w", err)
	}
	if count > 0 {
		return 0, nil
	}
	if err := repo.Upsert(foods); err != nil {
		return 0, fmt.Errorf("insert catalog: %w", err)
	}
	return len(foods), nil
}
