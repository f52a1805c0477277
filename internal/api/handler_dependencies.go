package api

import (
	"github.com/terraincognita07/nutriplate/internal/db"
	"github.com/terraincognita07/nutriplate/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.catalogService = services.NewCatalogService(handler.repositories.Foods)
	handler.profileService = services.NewProfileService(handler.repositories.Profiles)
	handler.plateService = services.NewPlateService(handler.repositories.SelectedFoods, handler.catalogService)
	return handler
}

func (handler *Handler) ensureDependencies() {
	if handler.repositories == nil {
		if handler.db == nil {
			return
		}
		handler.repositories = db.NewRepositories(handler.db)
	}
	if handler.catalogService == nil {
		handler.catalogService = services.NewCatalogService(handler.repositories.Foods)
	}
	if handler.profileService == nil {
		handler.profileService = services.NewProfileService(handler.repositories.Profiles)
	}
	if handler.plateService == nil {
		handler.plateService = services.NewPlateService(handler.repositories.SelectedFoods, handler.catalogService)
	}
}
