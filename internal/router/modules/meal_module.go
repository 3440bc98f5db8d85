package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/healthplate/backend/internal/interface/http"
)

// MealModule wires meal logging.
// POST /users/meals
type MealModule struct {
	Handler *handlers.MealHandler
}

func NewMealModule(h *handlers.MealHandler) *MealModule {
	return &MealModule{Handler: h}
}

func (m *MealModule) Register(rg *gin.RouterGroup) {
	rg.POST("/users/meals", m.Handler.LogMeal)
}
