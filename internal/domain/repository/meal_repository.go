package repository

import (
	"context"

	"github.com/healthplate/backend/internal/domain/entity"
)

// MealRepository persists logged meals.
type MealRepository interface {
	Insert(ctx context.Context, m *entity.Meal) (string, error)
}
