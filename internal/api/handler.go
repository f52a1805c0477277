package api

import (
	"errors"
	"fmt"
	"time"

	"github.com/terraincognita07/nutriplate/internal/db"
	"github.com/terraincognita07/nutriplate/internal/i18n"
	"github.com/terraincognita07/nutriplate/internal/security"
	"github.com/terraincognita07/nutriplate/internal/services"
	"gorm.io/gorm"
)

const (
	sessionTokenKeyPurpose = "nutriplate.session-token.v1"
	sessionTokenTTL        = 30 * 24 * time.Hour
)

type Handler struct {
	db             *gorm.DB
	tokenKey       []byte
	cookieCodec    *secureCookieCodec
	location       *time.Location
	cookieSecure   bool
	i18n           *i18n.Manager
	now            func() time.Time
	repositories   *db.Repositories
	catalogService *services.CatalogService
	profileService *services.ProfileService
	plateService   *services.PlateService
}

func NewHandler(database *gorm.DB, secret string, location *time.Location, i18nManager *i18n.Manager, cookieSecure bool) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if i18nManager == nil {
		return nil, errors.New("i18n manager is required")
	}
	if location == nil {
		location = time.Local
	}

	tokenKey, err := security.DeriveKey([]byte(secret), sessionTokenKeyPurpose, 32)
	if err != nil {
		return nil, fmt.Errorf("derive session token key: %w", err)
	}
	codec, err := newSecureCookieCodec([]byte(secret))
	if err != nil {
		return nil, err
	}

	handler := &Handler{
		db:           database,
		tokenKey:     tokenKey,
		cookieCodec:  codec,
		location:     location,
		cookieSecure: cookieSecure,
		i18n:         i18nManager,
		now:          time.Now,
	}
	return handler.withDependencies(database), nil
}
