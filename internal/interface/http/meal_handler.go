package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	mealapp "github.com/healthplate/backend/internal/application"
	"github.com/healthplate/backend/internal/domain/entity"
	"github.com/healthplate/backend/pkg/response"
	"github.com/healthplate/backend/pkg/validation"
)

type MealHandler struct {
	Svc    *mealapp.MealService
	Logger *logrus.Logger
}

func NewMealHandler(svc *mealapp.MealService, logger *logrus.Logger) *MealHandler {
	return &MealHandler{Svc: svc, Logger: logger}
}

type mealComponentRequest struct {
	DishID    string                `json:"dish_id" binding:"required"`
	DishName  string                `json:"dish_name" binding:"required"`
	Quantity  float64               `json:"quantity"`
	Unit      string                `json:"unit"`
	Nutrition *entity.MealNutrition `json:"nutrition"`
}

type logMealRequest struct {
	Email           string                 `json:"email" binding:"required,email"`
	Date            string                 `json:"date" binding:"omitempty,datetime=2006-01-02"`
	MealType        string                 `json:"meal_type" binding:"required"`
	SourceType      string                 `json:"source_type" binding:"required"`
	OilLevel        string                 `json:"oil_level"`
	Components      []mealComponentRequest `json:"components"`
	Nutrition       *entity.MealNutrition  `json:"nutrition"`
	ConfidenceScore *float64               `json:"confidence_score"`
}

type mealResponse struct {
	ID              string                 `json:"id"`
	UserID          string                 `json:"user_id"`
	Email           string                 `json:"email"`
	Date            string                 `json:"date"`
	MealType        string                 `json:"meal_type"`
	SourceType      string                 `json:"source_type"`
	OilLevel        string                 `json:"oil_level"`
	Components      []entity.MealComponent `json:"components"`
	Nutrition       *entity.MealNutrition  `json:"nutrition"`
	ConfidenceScore *float64               `json:"confidence_score"`
	CreatedAt       time.Time              `json:"created_at"`
}

// LogMeal POST /users/meals
func (h *MealHandler) LogMeal(c *gin.Context) {
	var req logMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	components := make([]entity.MealComponent, 0, len(req.Components))
	for _, comp := range req.Components {
		if comp.Quantity == 0 {
			comp.Quantity = 1
		}
		if comp.Unit == "" {
			comp.Unit = "serving"
		}
		components = append(components, entity.MealComponent{
			DishID:    comp.DishID,
			DishName:  comp.DishName,
			Quantity:  comp.Quantity,
			Unit:      comp.Unit,
			Nutrition: comp.Nutrition,
		})
	}

	meal := &entity.Meal{
		Email:           req.Email,
		Date:            req.Date,
		MealType:        req.MealType,
		SourceType:      req.SourceType,
		OilLevel:        req.OilLevel,
		Components:      components,
		Nutrition:       req.Nutrition,
		ConfidenceScore: req.ConfidenceScore,
	}
	if err := h.Svc.LogMeal(c.Request.Context(), meal); err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to save meal", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"meal": mealResponse{
			ID:              meal.ID,
			UserID:          meal.UserID,
			Email:           meal.Email,
			Date:            meal.Date,
			MealType:        meal.MealType,
			SourceType:      meal.SourceType,
			OilLevel:        meal.OilLevel,
			Components:      meal.Components,
			Nutrition:       meal.Nutrition,
			ConfidenceScore: meal.ConfidenceScore,
			CreatedAt:       meal.CreatedAt,
		},
	})
}
