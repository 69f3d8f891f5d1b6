package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/asado/internal/db"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "asado-api-test.db")
	database, err := db.OpenSQLite(databasePath)
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

	app := fiber.New()
	RegisterRoutes(app, NewHandler(database))
	return app
}

func performJSON(t *testing.T, app *fiber.App, method string, path string, payload any) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("%s %s: encode payload: %v", method, path, err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("%s %s: read body: %v", method, path, err)
	}
	return response.StatusCode, raw
}

func decodeBody(t *testing.T, raw []byte, target any) {
	t.Helper()
	if err := json.Unmarshal(raw, target); err != nil {
		t.Fatalf("decode response %s: %v", string(raw), err)
	}
}

func createTestUser(t *testing.T, app *fiber.App, name string) uint {
	t.Helper()

	status, raw := performJSON(t, app, fiber.MethodPost, "/api/users", fiber.Map{"name": name})
	if status != fiber.StatusCreated {
		t.Fatalf("create user %s: status %d body %s", name, status, string(raw))
	}

	var created struct {
		ID uint `json:"id"`
	}
	decodeBody(t, raw, &created)
	if created.ID == 0 {
		t.Fatalf("create user %s: missing id in %s", name, string(raw))
	}
	return created.ID
}

func createTestDish(t *testing.T, app *fiber.App, payload fiber.Map) uint {
	t.Helper()

	status, raw := performJSON(t, app, fiber.MethodPost, "/api/dishes", payload)
	if status != fiber.StatusCreated {
		t.Fatalf("create dish: status %d body %s", status, string(raw))
	}

	var created struct {
		ID uint `json:"id"`
	}
	decodeBody(t, raw, &created)
	if created.ID == 0 {
		t.Fatalf("create dish: missing id in %s", string(raw))
	}
	return created.ID
}

type menuDishResponse struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	CookUserID   *uint   `json:"cook_user_id"`
	CookUserName *string `json:"cook_user_name"`
	Day          string  `json:"day"`
	Meal         string  `json:"meal"`
	CookingTime  *string `json:"cooking_time"`
	Ingredients  []struct {
		ID               uint    `json:"id"`
		Name             string  `json:"name"`
		Quantity         *string `json:"quantity"`
		AssignedUserName *string `json:"assigned_user_name"`
	} `json:"ingredients"`
	Helpers []struct {
		ID       uint   `json:"id"`
		UserID   uint   `json:"user_id"`
		Role     string `json:"role"`
		UserName string `json:"user_name"`
	} `json:"helpers"`
}

func fetchMenu(t *testing.T, app *fiber.App) []menuDishResponse {
	t.Helper()

	status, raw := performJSON(t, app, fiber.MethodGet, "/api/dishes", nil)
	if status != fiber.StatusOK {
		t.Fatalf("fetch dishes: status %d body %s", status, string(raw))
	}

	menu := make([]menuDishResponse, 0)
	decodeBody(t, raw, &menu)
	return menu
}
