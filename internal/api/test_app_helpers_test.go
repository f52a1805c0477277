package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/nutriplate/internal/catalog"
	"github.com/terraincognita07/nutriplate/internal/db"
	"github.com/terraincognita07/nutriplate/internal/i18n"
	"gorm.io/gorm"
)

const testSecretKey = "0123456789abcdef0123456789abcdef"

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	return newTestAppWithCookieSecure(t, false)
}

func newTestAppWithCookieSecure(t *testing.T, cookieSecure bool) (*fiber.App, *gorm.DB) {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "nutriplate-api-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	foods, err := catalog.Default()
	if err != nil {
		t.Fatalf("load default catalog: %v", err)
	}
	if _, err := db.SeedCatalog(db.NewFoodRepository(database), foods); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}

	i18nManager, err := i18n.NewManager(i18n.LangEN, "")
	if err != nil {
		t.Fatalf("init i18n: %v", err)
	}

	handler, err := NewHandler(database, testSecretKey, time.UTC, i18nManager, cookieSecure)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	app.Use(handler.LanguageMiddleware)
	RegisterRoutes(app, handler)
	return app, database
}

func doJSON(t *testing.T, app *fiber.App, method string, path string, payload any, cookie string) (*http.Response, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		request.Header.Set("Cookie", cookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("%s %s read body failed: %v", method, path, err)
	}
	return response, raw
}

func decodeJSON(t *testing.T, raw []byte, target any) {
	t.Helper()
	if err := json.Unmarshal(raw, target); err != nil {
		t.Fatalf("decode response %s: %v", string(raw), err)
	}
}

func readAPIError(t *testing.T, raw []byte) string {
	t.Helper()

	payload := map[string]string{}
	decodeJSON(t, raw, &payload)
	return payload["error"]
}

func responseCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func validProfilePayload(firstName string) map[string]any {
	return map[string]any{
		"first_name": firstName,
		"sex":        "Female",
		"weight":     62.5,
		"objectives": map[string]float64{
			"carbohydrates": 250,
			"proteins":      75,
			"lipids":        60,
			"fiber":         30,
			"vitamin_c":     90,
			"vitamin_d":     20,
			"iron":          8,
			"calcium":       1000,
			"magnesium":     400,
			"omega_3_total": 1.6,
			"zinc":          11,
		},
	}
}

func createTestProfile(t *testing.T, app *fiber.App, firstName string) profileView {
	t.Helper()

	response, raw := doJSON(t, app, http.MethodPost, "/api/profiles", validProfilePayload(firstName), "")
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("create profile expected 201, got %d: %s", response.StatusCode, string(raw))
	}
	profile := profileView{}
	decodeJSON(t, raw, &profile)
	return profile
}

// startTestSession activates profileID and returns a Cookie header value carrying the session.
func startTestSession(t *testing.T, app *fiber.App, profileID string) string {
	t.Helper()

	response, raw := doJSON(t, app, http.MethodPost, "/api/session", map[string]string{"profile_id": profileID}, "")
	if response.StatusCode != http.StatusOK {
		t.Fatalf("start session expected 200, got %d: %s", response.StatusCode, string(raw))
	}
	cookie := responseCookie(response.Cookies(), sessionCookieName)
	if cookie == nil || cookie.Value == "" {
		t.Fatal("expected session cookie")
	}
	return sessionCookieName + "=" + cookie.Value
}
