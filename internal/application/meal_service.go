package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/healthplate/backend/internal/domain/entity"
	"github.com/healthplate/backend/internal/domain/repository"
)

// MealService records logged meals. Meals are keyed by email; logging for an
// unknown email creates a stub user record on the fly.
type MealService struct {
	Meals  repository.MealRepository
	Users  repository.UserRepository
	Logger *logrus.Logger
}

func NewMealService(meals repository.MealRepository, users repository.UserRepository, logger *logrus.Logger) *MealService {
	return &MealService{Meals: meals, Users: users, Logger: logger}
}

// LogMeal fills defaults, resolves (or creates) the owning user and persists
// the meal. The meal's ID, UserID and CreatedAt are set on success.
func (s *MealService) LogMeal(ctx context.Context, m *entity.Meal) error {
	if m.Date == "" {
		m.Date = time.Now().UTC().Format("2006-01-02")
	}
	if m.OilLevel == "" {
		m.OilLevel = "medium"
	}

	userID, err := s.Users.EnsureByEmail(ctx, m.Email)
	if err != nil {
		s.Logger.WithError(err).WithField("email", m.Email).Error("meal: resolving user failed")
		return err
	}
	m.UserID = userID

	if _, err := s.Meals.Insert(ctx, m); err != nil {
		s.Logger.WithError(err).Error("meal: insert failed")
		return err
	}
	return nil
}
