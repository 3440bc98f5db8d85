package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app "github.com/healthplate/backend/internal/application"
	"github.com/healthplate/backend/internal/domain/entity"
	"github.com/healthplate/backend/internal/domain/repository"
	handlers "github.com/healthplate/backend/internal/interface/http"
	"github.com/healthplate/backend/internal/router/modules"
	"github.com/healthplate/backend/pkg/helpers"
	"github.com/healthplate/backend/pkg/validation"
)

type fakeUserRepo struct {
	byID   map[string]*entity.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[string]*entity.User{}}
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) Insert(_ context.Context, u *entity.User) (string, error) {
	for _, existing := range f.byID {
		if existing.Email == u.Email {
			return "", repository.ErrDuplicateEmail
		}
	}
	f.nextID++
	u.ID = fmt.Sprintf("user-%d", f.nextID)
	f.byID[u.ID] = u
	return u.ID, nil
}

func (f *fakeUserRepo) UpdateFields(_ context.Context, id string, fields map[string]any) (*entity.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "_id", "id", "password":
			return nil, repository.ErrImmutableField
		case "name":
			u.Name = v.(string)
		case "age":
			u.Age = v.(int)
		case "height":
			u.Height = v.(float64)
		case "weight":
			u.Weight = v.(float64)
		case "activity_level":
			u.ActivityLevel = v.(string)
		case "goal":
			u.Goal = v.(string)
		case "dietary_type":
			u.DietaryType = v.(string)
		case "food_preferences":
			u.FoodPreferences = v.([]string)
		case "allergies":
			u.Allergies = v.([]string)
		case "disliked_food":
			u.DislikedFood = v.([]string)
		case "cuisines":
			u.Cuisines = v.([]string)
		case "health_concerns":
			u.HealthConcerns = v.([]string)
		}
	}
	u.UpdatedAt = time.Now().UTC()
	return u, nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id string, passwordHash string) error {
	u, ok := f.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.Password = passwordHash
	return nil
}

func (f *fakeUserRepo) EnsureByEmail(ctx context.Context, email string) (string, error) {
	if u, err := f.FindByEmail(ctx, email); err == nil {
		return u.ID, nil
	}
	f.nextID++
	id := fmt.Sprintf("user-%d", f.nextID)
	f.byID[id] = &entity.User{ID: id, Email: email, CreatedAt: time.Now().UTC()}
	return id, nil
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

const testSecret = "test-secret"

func newTestAPI(t *testing.T) (*gin.Engine, *fakeUserRepo, *helpers.TokenManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	repo := newFakeUserRepo()
	tokens := helpers.NewTokenManager(testSecret, time.Hour)
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	svc := app.NewUserService(repo, tokens, logger)
	h := handlers.NewUserHandler(svc, logger)

	r := gin.New()
	modules.NewUserModule(h, repo, tokens).Register(r.Group(""))
	return r, repo, tokens
}

func doJSON(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const signupBody = `{
	"email": "amy@example.com",
	"password": "supersecret",
	"name": "Amy",
	"age": 25,
	"height": 175,
	"weight": 70,
	"activity_level": "sedentary",
	"goal": "maintain",
	"dietary_type": "vegetarian",
	"allergies": ["peanuts"]
}`

func TestSignupEndpoint(t *testing.T) {
	r, repo, tokens := newTestAPI(t)

	w := doJSON(r, http.MethodPost, "/users/signup", signupBody, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token   string `json:"token"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "Account created successfully", resp.Message)

	subject, err := tokens.Validate(resp.Token)
	require.NoError(t, err)
	u, err := repo.FindByID(context.Background(), subject)
	require.NoError(t, err)
	assert.Equal(t, "amy@example.com", u.Email)
	assert.Equal(t, 2009, u.Metrics.DailyCalories)
}

func TestSignupValidation(t *testing.T) {
	r, _, _ := newTestAPI(t)

	w := doJSON(r, http.MethodPost, "/users/signup", `{"email":"not-an-email"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "details")
}

func TestSignupDuplicateEmail(t *testing.T) {
	r, repo, _ := newTestAPI(t)

	w := doJSON(r, http.MethodPost, "/users/signup", signupBody, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodPost, "/users/signup", signupBody, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"user already exists"}`, w.Body.String())
	assert.Len(t, repo.byID, 1)
}

func TestLoginEndpoint(t *testing.T) {
	r, _, _ := newTestAPI(t)
	require.Equal(t, http.StatusOK, doJSON(r, http.MethodPost, "/users/signup", signupBody, "").Code)

	w := doJSON(r, http.MethodPost, "/users/login", `{"email":"amy@example.com","password":"supersecret"}`, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token    string `json:"token"`
		UserName string `json:"userName"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "Amy", resp.UserName)
}

func TestLoginFailuresAreUniform(t *testing.T) {
	r, _, _ := newTestAPI(t)
	require.Equal(t, http.StatusOK, doJSON(r, http.MethodPost, "/users/signup", signupBody, "").Code)

	wrongPwd := doJSON(r, http.MethodPost, "/users/login", `{"email":"amy@example.com","password":"badpassword"}`, "")
	unknown := doJSON(r, http.MethodPost, "/users/login", `{"email":"nobody@example.com","password":"supersecret"}`, "")

	assert.Equal(t, http.StatusUnauthorized, wrongPwd.Code)
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, wrongPwd.Body.String(), unknown.Body.String())
}

func TestGetProfile(t *testing.T) {
	r, repo, _ := newTestAPI(t)

	w := doJSON(r, http.MethodPost, "/users/signup", signupBody, "")
	require.Equal(t, http.StatusOK, w.Code)
	var signup struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &signup))

	w = doJSON(r, http.MethodGet, "/me", "", signup.Token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var profile map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))

	u, err := repo.FindByEmail(context.Background(), "amy@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, profile["id"])
	assert.Equal(t, "amy@example.com", profile["email"])
	assert.NotContains(t, profile, "password")

	metrics, ok := profile["metrics"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(2009), metrics["daily_calories"])
	assert.Equal(t, float64(105), metrics["protein_target"])
}

func TestGetProfileUnauthorizedShapesMatch(t *testing.T) {
	r, _, _ := newTestAPI(t)
	require.Equal(t, http.StatusOK, doJSON(r, http.MethodPost, "/users/signup", signupBody, "").Code)

	expired := helpers.NewTokenManager(testSecret, -time.Minute)
	expiredToken, _, err := expired.Issue("user-1")
	require.NoError(t, err)

	noToken := doJSON(r, http.MethodGet, "/me", "", "")
	malformed := doJSON(r, http.MethodGet, "/me", "", "garbage")
	expiredResp := doJSON(r, http.MethodGet, "/me", "", expiredToken)

	for _, w := range []*httptest.ResponseRecorder{noToken, malformed, expiredResp} {
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, noToken.Body.String(), w.Body.String())
	}
}

func TestUpdateProfile(t *testing.T) {
	r, repo, _ := newTestAPI(t)

	w := doJSON(r, http.MethodPost, "/users/signup", signupBody, "")
	require.Equal(t, http.StatusOK, w.Code)
	var signup struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &signup))

	u, err := repo.FindByEmail(context.Background(), "amy@example.com")
	require.NoError(t, err)
	originalID := u.ID
	originalHash := u.Password

	// id and password in the payload are ignored, the rest is applied
	body := `{"name":"Amelia","weight":72.5,"id":"forged","_id":"forged","password":"forged"}`
	w = doJSON(r, http.MethodPut, "/me", body, signup.Token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var profile map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, "Amelia", profile["name"])
	assert.Equal(t, 72.5, profile["weight"])
	assert.Equal(t, originalID, profile["id"])
	assert.NotContains(t, profile, "password")

	assert.Equal(t, originalHash, repo.byID[originalID].Password)

	// metrics stay as computed at signup
	metrics, ok := profile["metrics"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(2009), metrics["daily_calories"])
}

func TestUpdateProfileEmptyBody(t *testing.T) {
	r, _, _ := newTestAPI(t)

	w := doJSON(r, http.MethodPost, "/users/signup", signupBody, "")
	require.Equal(t, http.StatusOK, w.Code)
	var signup struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &signup))

	w = doJSON(r, http.MethodPut, "/me", `{}`, signup.Token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateProfileRequiresAuth(t *testing.T) {
	r, _, _ := newTestAPI(t)

	w := doJSON(r, http.MethodPut, "/me", `{"name":"X"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
