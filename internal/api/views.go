package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/nutriplate/internal/i18n"
	"github.com/terraincognita07/nutriplate/internal/models"
	"github.com/terraincognita07/nutriplate/internal/services"
)

type labeledValue struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type foodView struct {
	models.Food
	CategoryLabel string `json:"category_label"`
}

type nutrientView struct {
	Key            models.NutrientKey `json:"key"`
	Label          string             `json:"label"`
	Unit           string             `json:"unit"`
	Recommendation float64            `json:"recommendation"`
	Color          string             `json:"color"`
	Group          string             `json:"group"`
}

type profileView struct {
	ID         string                         `json:"id"`
	FirstName  string                         `json:"first_name"`
	Sex        string                         `json:"sex"`
	SexLabel   string                         `json:"sex_label"`
	Weight     float64                        `json:"weight"`
	Objectives map[models.NutrientKey]float64 `json:"objectives"`
	CreatedAt  time.Time                      `json:"created_at"`
	UpdatedAt  time.Time                      `json:"updated_at"`
}

type plateItemView struct {
	ID       string    `json:"id"`
	FoodID   string    `json:"food_id"`
	Date     string    `json:"date"`
	Quantity string    `json:"quantity"`
	Food     *foodView `json:"food,omitempty"`
}

type nutrientProgressView struct {
	Key                  models.NutrientKey `json:"key"`
	Label                string             `json:"label"`
	Unit                 string             `json:"unit"`
	Color                string             `json:"color"`
	Current              float64            `json:"current"`
	Target               float64            `json:"target"`
	Recommendation       float64            `json:"recommendation"`
	Percentage           int                `json:"percentage"`
	RecommendationMarker float64            `json:"recommendation_marker"`
	CurrentLabel         string             `json:"current_label"`
	TargetLabel          string             `json:"target_label"`
	RecommendationLabel  string             `json:"recommendation_label"`
}

type plateSummaryView struct {
	Date       string                 `json:"date"`
	Group      string                 `json:"group"`
	GroupLabel string                 `json:"group_label"`
	FoodCount  int                    `json:"food_count"`
	Nutrients  []nutrientProgressView `json:"nutrients"`
}

func (handler *Handler) foodView(c *fiber.Ctx, food models.Food) foodView {
	return foodView{
		Food:          food,
		CategoryLabel: handler.translate(c, i18n.LabelKey("category", food.Category)),
	}
}

func (handler *Handler) foodViews(c *fiber.Ctx, foods []models.Food) []foodView {
	views := make([]foodView, 0, len(foods))
	for _, food := range foods {
		views = append(views, handler.foodView(c, food))
	}
	return views
}

func (handler *Handler) labeledValues(c *fiber.Ctx, prefix string, values []string) []labeledValue {
	result := make([]labeledValue, 0, len(values))
	for _, value := range values {
		result = append(result, labeledValue{Value: value, Label: handler.translate(c, i18n.LabelKey(prefix, value))})
	}
	return result
}

func (handler *Handler) profileView(c *fiber.Ctx, profile models.UserProfile) profileView {
	return profileView{
		ID:         profile.ID,
		FirstName:  profile.FirstName,
		Sex:        profile.Sex,
		SexLabel:   handler.translate(c, i18n.LabelKey("sex", profile.Sex)),
		Weight:     profile.Weight,
		Objectives: profile.Objectives(),
		CreatedAt:  profile.CreatedAt,
		UpdatedAt:  profile.UpdatedAt,
	}
}

func (handler *Handler) plateItemView(c *fiber.Ctx, selection models.SelectedFood, food *models.Food) plateItemView {
	view := plateItemView{
		ID:       selection.ID,
		FoodID:   selection.FoodID,
		Date:     services.FormatStoredDay(selection.Date),
		Quantity: selection.Quantity,
	}
	if food != nil {
		resolved := handler.foodView(c, *food)
		view.Food = &resolved
	}
	return view
}

func (handler *Handler) plateSummaryView(c *fiber.Ctx, summary services.PlateSummary) plateSummaryView {
	view := plateSummaryView{
		Date:       services.FormatDay(summary.Date),
		Group:      summary.Group,
		GroupLabel: handler.translate(c, "group."+summary.Group),
		FoodCount:  summary.FoodCount,
		Nutrients:  make([]nutrientProgressView, 0, len(summary.Nutrients)),
	}
	for _, nutrient := range summary.Nutrients {
		progress := nutrient.Progress
		view.Nutrients = append(view.Nutrients, nutrientProgressView{
			Key:                  nutrient.Key,
			Label:                handler.translate(c, nutrient.LabelKey),
			Unit:                 progress.Unit,
			Color:                nutrient.Color,
			Current:              progress.Current,
			Target:               progress.Target,
			Recommendation:       progress.Recommendation,
			Percentage:           progress.Percentage,
			RecommendationMarker: progress.RecommendationMarker,
			CurrentLabel:         progress.CurrentLabel,
			TargetLabel:          progress.TargetLabel,
			RecommendationLabel:  progress.RecommendationLabel,
		})
	}
	return view
}
