package api

import (
	"net/http"
	"testing"

	"github.com/terraincognita07/nutriplate/internal/models"
)

type plateResponse struct {
	Date      string           `json:"date"`
	ProfileID string           `json:"profile_id"`
	Items     []plateItemView  `json:"items"`
	Summary   plateSummaryView `json:"summary"`
}

func findProgress(t *testing.T, summary plateSummaryView, key models.NutrientKey) nutrientProgressView {
	t.Helper()
	for _, nutrient := range summary.Nutrients {
		if nutrient.Key == key {
			return nutrient
		}
	}
	t.Fatalf("nutrient %s missing from summary", key)
	return nutrientProgressView{}
}

func TestAddPlateFoodIsIdempotentPerDay(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	profile := createTestProfile(t, app, "Alice")
	cookie := startTestSession(t, app, profile.ID)

	payload := map[string]string{"food_id": "salmon", "date": "2026-03-01"}
	response, raw := doJSON(t, app, http.MethodPost, "/api/plate/foods", payload, cookie)
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", response.StatusCode, string(raw))
	}
	first := plateItemView{}
	decodeJSON(t, raw, &first)
	if first.Quantity != models.DefaultQuantity || first.Date != "2026-03-01" || first.Food == nil || first.Food.Name != "Salmon" {
		t.Fatalf("unexpected plate item: %#v", first)
	}

	payload["quantity"] = "250g"
	response, raw = doJSON(t, app, http.MethodPost, "/api/plate/foods", payload, cookie)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for existing selection, got %d: %s", response.StatusCode, string(raw))
	}
	second := plateItemView{}
	decodeJSON(t, raw, &second)
	if second.ID != first.ID || second.Quantity != models.DefaultQuantity {
		t.Fatalf("expected existing selection to be returned unchanged, got %#v", second)
	}

	response, raw = doJSON(t, app, http.MethodGet, "/api/plate?date=2026-03-01", nil, cookie)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}
	plate := plateResponse{}
	decodeJSON(t, raw, &plate)
	if plate.Date != "2026-03-01" || plate.ProfileID != profile.ID || len(plate.Items) != 1 {
		t.Fatalf("unexpected plate: %#v", plate)
	}
	if plate.Summary.FoodCount != 1 || plate.Summary.Group != "all" || len(plate.Summary.Nutrients) != 11 {
		t.Fatalf("unexpected plate summary: %#v", plate.Summary)
	}
}

func TestAddPlateFoodErrors(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	profile := createTestProfile(t, app, "Alice")
	cookie := startTestSession(t, app, profile.ID)

	tests := []struct {
		name    string
		payload map[string]string
		status  int
		message string
	}{
		{name: "unknown food", payload: map[string]string{"food_id": "chocolate"}, status: http.StatusNotFound, message: "food not found"},
		{name: "invalid date", payload: map[string]string{"food_id": "salmon", "date": "01/03/2026"}, status: http.StatusBadRequest, message: "invalid date"},
		{
			name:    "quantity too long",
			payload: map[string]string{"food_id": "salmon", "quantity": "a very long quantity description that no form would ever send"},
			status:  http.StatusBadRequest,
			message: "invalid quantity",
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			response, raw := doJSON(t, app, http.MethodPost, "/api/plate/foods", test.payload, cookie)
			if response.StatusCode != test.status {
				t.Fatalf("expected %d, got %d: %s", test.status, response.StatusCode, string(raw))
			}
			if got := readAPIError(t, raw); got != test.message {
				t.Fatalf("expected %q, got %q", test.message, got)
			}
		})
	}
}

func TestPlateSummaryCombinesOmega3Sources(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	profile := createTestProfile(t, app, "Alice")
	cookie := startTestSession(t, app, profile.ID)

	for _, foodID := range []string{"salmon", "broccoli"} {
		response, raw := doJSON(t, app, http.MethodPost, "/api/plate/foods", map[string]string{"food_id": foodID, "date": "2026-03-01"}, cookie)
		if response.StatusCode != http.StatusCreated {
			t.Fatalf("add %s expected 201, got %d: %s", foodID, response.StatusCode, string(raw))
		}
	}

	response, raw := doJSON(t, app, http.MethodGet, "/api/plate/summary?date=2026-03-01&group=macro", nil, cookie)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", response.StatusCode, string(raw))
	}
	summary := plateSummaryView{}
	decodeJSON(t, raw, &summary)
	if summary.Group != "macro" || summary.GroupLabel != "Macronutrients" || len(summary.Nutrients) != 5 {
		t.Fatalf("unexpected macro summary: %#v", summary)
	}

	omega := findProgress(t, summary, models.NutrientOmega3Total)
	if omega.Percentage != 100 || omega.CurrentLabel != "1.7" || omega.TargetLabel != "1.6" {
		t.Fatalf("unexpected omega-3 progress: %#v", omega)
	}

	proteins := findProgress(t, summary, models.NutrientProteins)
	if proteins.Percentage != 31 || proteins.CurrentLabel != "23" || proteins.TargetLabel != "75" {
		t.Fatalf("unexpected protein progress: %#v", proteins)
	}

	response, raw = doJSON(t, app, http.MethodGet, "/api/plate/summary?date=2026-03-01&group=vitamins", nil, cookie)
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown group, got %d", response.StatusCode)
	}
	if got := readAPIError(t, raw); got != "invalid nutrient group" {
		t.Fatalf("unexpected error %q", got)
	}
}

func TestRemoveAndClearPlate(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	profile := createTestProfile(t, app, "Alice")
	cookie := startTestSession(t, app, profile.ID)

	for _, foodID := range []string{"salmon", "spinach", "broccoli"} {
		response, _ := doJSON(t, app, http.MethodPost, "/api/plate/foods", map[string]string{"food_id": foodID, "date": "2026-03-01"}, cookie)
		if response.StatusCode != http.StatusCreated {
			t.Fatalf("add %s expected 201, got %d", foodID, response.StatusCode)
		}
	}
	response, _ := doJSON(t, app, http.MethodPost, "/api/plate/foods", map[string]string{"food_id": "avocado", "date": "2026-03-02"}, cookie)
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("add avocado expected 201, got %d", response.StatusCode)
	}

	response, _ = doJSON(t, app, http.MethodDelete, "/api/plate/foods/spinach?date=2026-03-01", nil, cookie)
	if response.StatusCode != http.StatusNoContent {
		t.Fatalf("remove expected 204, got %d", response.StatusCode)
	}

	_, raw := doJSON(t, app, http.MethodGet, "/api/plate?date=2026-03-01", nil, cookie)
	plate := plateResponse{}
	decodeJSON(t, raw, &plate)
	if len(plate.Items) != 2 {
		t.Fatalf("expected 2 items after remove, got %d", len(plate.Items))
	}
	for _, item := range plate.Items {
		if item.FoodID == "spinach" {
			t.Fatal("spinach should have been removed")
		}
	}

	response, _ = doJSON(t, app, http.MethodDelete, "/api/plate?date=2026-03-01", nil, cookie)
	if response.StatusCode != http.StatusNoContent {
		t.Fatalf("clear expected 204, got %d", response.StatusCode)
	}

	_, raw = doJSON(t, app, http.MethodGet, "/api/plate?date=2026-03-01", nil, cookie)
	plate = plateResponse{}
	decodeJSON(t, raw, &plate)
	if len(plate.Items) != 0 || plate.Summary.FoodCount != 0 {
		t.Fatalf("expected empty plate after clear, got %#v", plate)
	}

	_, raw = doJSON(t, app, http.MethodGet, "/api/plate?date=2026-03-02", nil, cookie)
	plate = plateResponse{}
	decodeJSON(t, raw, &plate)
	if len(plate.Items) != 1 || plate.Items[0].FoodID != "avocado" {
		t.Fatalf("clear must only affect its own day, got %#v", plate.Items)
	}
}

func TestPlateHistoryNewestFirst(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	profile := createTestProfile(t, app, "Alice")
	cookie := startTestSession(t, app, profile.ID)

	selections := []map[string]string{
		{"food_id": "salmon", "date": "2026-03-01"},
		{"food_id": "salmon", "date": "2026-03-02"},
		{"food_id": "broccoli", "date": "2026-03-02"},
	}
	for _, payload := range selections {
		response, _ := doJSON(t, app, http.MethodPost, "/api/plate/foods", payload, cookie)
		if response.StatusCode != http.StatusCreated {
			t.Fatalf("add %v expected 201, got %d", payload, response.StatusCode)
		}
	}

	response, raw := doJSON(t, app, http.MethodGet, "/api/plate/history", nil, cookie)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}
	history := struct {
		Days []struct {
			Date      string `json:"date"`
			FoodCount int    `json:"food_count"`
		} `json:"days"`
	}{}
	decodeJSON(t, raw, &history)
	if len(history.Days) != 2 {
		t.Fatalf("expected 2 days, got %#v", history.Days)
	}
	if history.Days[0].Date != "2026-03-02" || history.Days[0].FoodCount != 2 {
		t.Fatalf("unexpected newest day: %#v", history.Days[0])
	}
	if history.Days[1].Date != "2026-03-01" || history.Days[1].FoodCount != 1 {
		t.Fatalf("unexpected oldest day: %#v", history.Days[1])
	}
}

func TestPlatesAreScopedToActiveProfile(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	alice := createTestProfile(t, app, "Alice")
	bruno := createTestProfile(t, app, "Bruno")
	aliceCookie := startTestSession(t, app, alice.ID)
	brunoCookie := startTestSession(t, app, bruno.ID)

	response, _ := doJSON(t, app, http.MethodPost, "/api/plate/foods", map[string]string{"food_id": "salmon", "date": "2026-03-01"}, aliceCookie)
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", response.StatusCode)
	}

	_, raw := doJSON(t, app, http.MethodGet, "/api/plate?date=2026-03-01", nil, brunoCookie)
	plate := plateResponse{}
	decodeJSON(t, raw, &plate)
	if plate.ProfileID != bruno.ID || len(plate.Items) != 0 {
		t.Fatalf("expected an empty plate for the second profile, got %#v", plate)
	}
}
