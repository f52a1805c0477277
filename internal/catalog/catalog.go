// Package catalog decodes food catalog files and ships the default catalog.
package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/terraincognita07/nutriplate/internal/models"
	"gopkg.in/yaml.v3"
)

const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

var (
	ErrUnknownFormat  = errors.New("unknown catalog format")
	ErrEmptyCatalog   = errors.New("catalog has no foods")
	ErrInvalidCatalog = errors.New("invalid catalog")
)

//go:embed foods.yaml
var defaultCatalog []byte

type File struct {
	Foods []Entry `yaml:"foods" json:"foods"`
}

// Entry is the on-disk shape of a food. ID is required and nutrients are grouped under their own key.
type Entry struct {
	ID                 string             `yaml:"id" json:"id"`
	Name               string             `yaml:"name" json:"name"`
	Category           string             `yaml:"category" json:"category"`
	ImageURL           string             `yaml:"image_url" json:"image_url"`
	Seasons            []string           `yaml:"seasons" json:"seasons"`
	HealthProperties   []string           `yaml:"health_properties" json:"health_properties"`
	BioactiveCompounds []string           `yaml:"bioactive_compounds" json:"bioactive_compounds"`
	Description        string             `yaml:"description" json:"description"`
	Nutrients          map[string]float64 `yaml:"nutrients" json:"nutrients"`
}

// Default returns the embedded catalog.
func Default() ([]models.Food, error) {
	return Decode(bytes.NewReader(defaultCatalog), FormatYAML)
}

// FormatFromPath picks the decoder from the file extension.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, filepath.Ext(path))
	}
}

func Decode(reader io.Reader, format string) ([]models.Food, error) {
	var file File
	switch format {
	case FormatYAML:
		decoder := yaml.NewDecoder(reader)
		decoder.KnownFields(true)
		if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml catalog: %w", err)
		}
	case FormatJSON:
		decoder := json.NewDecoder(reader)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode json catalog: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}

	if len(file.Foods) == 0 {
		return nil, ErrEmptyCatalog
	}

	foods := make([]models.Food, 0, len(file.Foods))
	seen := make(map[string]int, len(file.Foods))
	for index, entry := range file.Foods {
		food, err := entry.toFood()
		if err != nil {
			return nil, fmt.Errorf("%w: food #%d: %v", ErrInvalidCatalog, index+1, err)
		}
		if previous, duplicate := seen[food.ID]; duplicate {
			return nil, fmt.Errorf("%w: food #%d reuses id %q of food #%d", ErrInvalidCatalog, index+1, food.ID, previous)
		}
		seen[food.ID] = index + 1
		foods = append(foods, food)
	}
	return foods, nil
}

func (entry Entry) toFood() (models.Food, error) {
	food := models.Food{
		ID:                 strings.TrimSpace(entry.ID),
		Name:               strings.TrimSpace(entry.Name),
		ImageURL:           strings.TrimSpace(entry.ImageURL),
		BioactiveCompounds: trimAll(entry.BioactiveCompounds),
		Description:        strings.TrimSpace(entry.Description),
	}
	if food.Name == "" {
		return models.Food{}, errors.New("name is required")
	}
	// Imports upsert by id, so every entry needs a stable one.
	if food.ID == "" {
		return models.Food{}, fmt.Errorf("%s: id is required", food.Name)
	}
	if len(food.ID) > 36 {
		return models.Food{}, fmt.Errorf("id %q is longer than 36 characters", food.ID)
	}

	category, ok := canonical(entry.Category, models.FoodCategories())
	if !ok {
		return models.Food{}, fmt.Errorf("%s: unknown category %q", food.Name, entry.Category)
	}
	food.Category = category

	seasons, err := canonicalAll(entry.Seasons, models.FoodSeasons(), "season")
	if err != nil {
		return models.Food{}, fmt.Errorf("%s: %w", food.Name, err)
	}
	food.Seasons = seasons

	properties, err := canonicalAll(entry.HealthProperties, models.HealthProperties(), "health property")
	if err != nil {
		return models.Food{}, fmt.Errorf("%s: %w", food.Name, err)
	}
	food.HealthProperties = properties

	for rawKey, value := range entry.Nutrients {
		if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
			return models.Food{}, fmt.Errorf("%s: nutrient %s must be a non-negative number", food.Name, rawKey)
		}
		if !models.SetNutrientValue(&food, models.NutrientKey(strings.TrimSpace(rawKey)), value) {
			return models.Food{}, fmt.Errorf("%s: unknown nutrient %q", food.Name, rawKey)
		}
	}
	return food, nil
}

func canonical(value string, allowed []string) (string, bool) {
	trimmed := strings.TrimSpace(value)
	for _, candidate := range allowed {
		if strings.EqualFold(candidate, trimmed) {
			return candidate, true
		}
	}
	return "", false
}

func canonicalAll(values []string, allowed []string, label string) ([]string, error) {
	result := make([]string, 0, len(values))
	for _, value := range values {
		matched, ok := canonical(value, allowed)
		if !ok {
			return nil, fmt.Errorf("unknown %s %q", label, value)
		}
		result = append(result, matched)
	}
	return result, nil
}

func trimAll(values []string) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
