package db

import "gorm.io/gorm"

type Repositories struct {
	Foods         *FoodRepository
	Profiles      *ProfileRepository
	SelectedFoods *SelectedFoodRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Foods:         NewFoodRepository(database),
		Profiles:      NewProfileRepository(database),
		SelectedFoods: NewSelectedFoodRepository(database),
	}
}
