package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app "github.com/healthplate/backend/internal/application"
	"github.com/healthplate/backend/internal/domain/entity"
	"github.com/healthplate/backend/internal/domain/repository"
	handlers "github.com/healthplate/backend/internal/interface/http"
	"github.com/healthplate/backend/internal/router/modules"
	"github.com/healthplate/backend/pkg/validation"
)

type fakeMealRepo struct {
	inserted []*entity.Meal
}

func (f *fakeMealRepo) Insert(_ context.Context, m *entity.Meal) (string, error) {
	m.ID = "meal-1"
	f.inserted = append(f.inserted, m)
	return m.ID, nil
}

var _ repository.MealRepository = (*fakeMealRepo)(nil)

func newMealAPI(t *testing.T) (*gin.Engine, *fakeUserRepo, *fakeMealRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	users := newFakeUserRepo()
	meals := &fakeMealRepo{}
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	svc := app.NewMealService(meals, users, logger)
	h := handlers.NewMealHandler(svc, logger)

	r := gin.New()
	modules.NewMealModule(h).Register(r.Group(""))
	return r, users, meals
}

func TestLogMealEndpoint(t *testing.T) {
	r, users, meals := newMealAPI(t)

	body := `{
		"email": "amy@example.com",
		"meal_type": "lunch",
		"source_type": "manual",
		"components": [
			{"dish_id": "d1", "dish_name": "Dal", "nutrition": {"calories_mean": 180, "protein_mean": 12}}
		],
		"nutrition": {"calories_mean": 180, "protein_mean": 12},
		"confidence_score": 0.92
	}`
	w := doJSON(r, http.MethodPost, "/users/meals", body, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Success bool `json:"success"`
		Meal    struct {
			ID         string `json:"id"`
			UserID     string `json:"user_id"`
			Date       string `json:"date"`
			OilLevel   string `json:"oil_level"`
			Components []struct {
				Quantity float64 `json:"quantity"`
				Unit     string  `json:"unit"`
			} `json:"components"`
		} `json:"meal"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "meal-1", resp.Meal.ID)
	assert.NotEmpty(t, resp.Meal.Date)
	assert.Equal(t, "medium", resp.Meal.OilLevel)
	require.Len(t, resp.Meal.Components, 1)
	assert.Equal(t, 1.0, resp.Meal.Components[0].Quantity)
	assert.Equal(t, "serving", resp.Meal.Components[0].Unit)

	// the unknown email got a stub user
	stub, err := users.FindByEmail(context.Background(), "amy@example.com")
	require.NoError(t, err)
	assert.Equal(t, stub.ID, resp.Meal.UserID)
	require.Len(t, meals.inserted, 1)
}

func TestLogMealValidation(t *testing.T) {
	r, _, meals := newMealAPI(t)

	w := doJSON(r, http.MethodPost, "/users/meals", `{"email":"amy@example.com"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, meals.inserted)
}
