package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/healthplate/backend/internal/application"
	"github.com/healthplate/backend/internal/domain/entity"
	"github.com/healthplate/backend/internal/interface/middleware"
	"github.com/healthplate/backend/pkg/response"
	"github.com/healthplate/backend/pkg/validation"
)

type UserHandler struct {
	Svc    *userapp.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *userapp.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type signupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	Name     string `json:"name" binding:"required"`

	Age           int     `json:"age" binding:"required,gt=0"`
	Height        float64 `json:"height" binding:"required,gt=0"`
	Weight        float64 `json:"weight" binding:"required,gt=0"`
	ActivityLevel string  `json:"activity_level" binding:"required,oneof=sedentary light moderate high"`
	Goal          string  `json:"goal" binding:"required,oneof=maintain fat_loss muscle_gain energy"`
	DietaryType   string  `json:"dietary_type" binding:"required"`

	FoodPreferences []string `json:"food_preferences"`
	Allergies       []string `json:"allergies"`
	DislikedFood    []string `json:"disliked_food"`
	Cuisines        []string `json:"cuisines"`
	HealthConcerns  []string `json:"health_concerns"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// profileResponse is the wire shape of a user: every stored field except the
// password hash, with the identifier rendered as a string.
type profileResponse struct {
	ID            string  `json:"id"`
	Email         string  `json:"email"`
	Name          string  `json:"name"`
	Age           int     `json:"age"`
	Height        float64 `json:"height"`
	Weight        float64 `json:"weight"`
	ActivityLevel string  `json:"activity_level"`
	Goal          string  `json:"goal"`
	DietaryType   string  `json:"dietary_type"`

	FoodPreferences []string `json:"food_preferences"`
	Allergies       []string `json:"allergies"`
	DislikedFood    []string `json:"disliked_food"`
	Cuisines        []string `json:"cuisines"`
	HealthConcerns  []string `json:"health_concerns"`

	Metrics entity.Metrics `json:"metrics"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toProfile(u *entity.User) profileResponse {
	return profileResponse{
		ID:              u.ID,
		Email:           u.Email,
		Name:            u.Name,
		Age:             u.Age,
		Height:          u.Height,
		Weight:          u.Weight,
		ActivityLevel:   u.ActivityLevel,
		Goal:            u.Goal,
		DietaryType:     u.DietaryType,
		FoodPreferences: u.FoodPreferences,
		Allergies:       u.Allergies,
		DislikedFood:    u.DislikedFood,
		Cuisines:        u.Cuisines,
		HealthConcerns:  u.HealthConcerns,
		Metrics:         u.Metrics,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

// Signup POST /users/signup
func (h *UserHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	token, err := h.Svc.Signup(c.Request.Context(), userapp.SignupInput{
		Email:           req.Email,
		Password:        req.Password,
		Name:            req.Name,
		Age:             req.Age,
		Height:          req.Height,
		Weight:          req.Weight,
		ActivityLevel:   req.ActivityLevel,
		Goal:            req.Goal,
		DietaryType:     req.DietaryType,
		FoodPreferences: req.FoodPreferences,
		Allergies:       req.Allergies,
		DislikedFood:    req.DislikedFood,
		Cuisines:        req.Cuisines,
		HealthConcerns:  req.HealthConcerns,
	})
	if errors.Is(err, userapp.ErrEmailTaken) {
		response.Error(c, http.StatusBadRequest, "user already exists", nil)
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"message": "Account created successfully",
	})
}

// Login POST /users/login
func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	token, name, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, userapp.ErrInvalidCredentials) {
		response.Error(c, http.StatusUnauthorized, "invalid email or password", nil)
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"userName": name,
	})
}

// GetProfile GET /me (auth required)
func (h *UserHandler) GetProfile(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "could not validate credentials", nil)
		return
	}
	c.JSON(http.StatusOK, toProfile(u))
}

// updateProfileRequest is the whitelist of mutable profile fields. Anything
// outside it, notably id and password, is dropped at the JSON boundary.
type updateProfileRequest struct {
	Name          *string  `json:"name"`
	Age           *int     `json:"age" binding:"omitempty,gt=0"`
	Height        *float64 `json:"height" binding:"omitempty,gt=0"`
	Weight        *float64 `json:"weight" binding:"omitempty,gt=0"`
	ActivityLevel *string  `json:"activity_level" binding:"omitempty,oneof=sedentary light moderate high"`
	Goal          *string  `json:"goal" binding:"omitempty,oneof=maintain fat_loss muscle_gain energy"`
	DietaryType   *string  `json:"dietary_type"`

	FoodPreferences *[]string `json:"food_preferences"`
	Allergies       *[]string `json:"allergies"`
	DislikedFood    *[]string `json:"disliked_food"`
	Cuisines        *[]string `json:"cuisines"`
	HealthConcerns  *[]string `json:"health_concerns"`
}

func (r *updateProfileRequest) fields() map[string]any {
	out := map[string]any{}
	if r.Name != nil {
		out["name"] = *r.Name
	}
	if r.Age != nil {
		out["age"] = *r.Age
	}
	if r.Height != nil {
		out["height"] = *r.Height
	}
	if r.Weight != nil {
		out["weight"] = *r.Weight
	}
	if r.ActivityLevel != nil {
		out["activity_level"] = *r.ActivityLevel
	}
	if r.Goal != nil {
		out["goal"] = *r.Goal
	}
	if r.DietaryType != nil {
		out["dietary_type"] = *r.DietaryType
	}
	if r.FoodPreferences != nil {
		out["food_preferences"] = *r.FoodPreferences
	}
	if r.Allergies != nil {
		out["allergies"] = *r.Allergies
	}
	if r.DislikedFood != nil {
		out["disliked_food"] = *r.DislikedFood
	}
	if r.Cuisines != nil {
		out["cuisines"] = *r.Cuisines
	}
	if r.HealthConcerns != nil {
		out["health_concerns"] = *r.HealthConcerns
	}
	return out
}

// UpdateProfile PUT /me (auth required)
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "could not validate credentials", nil)
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	updated, err := h.Svc.UpdateProfile(c.Request.Context(), u.ID, req.fields())
	if errors.Is(err, userapp.ErrNoFieldsChanged) {
		response.Error(c, http.StatusBadRequest, "profile update failed", nil)
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, toProfile(updated))
}
