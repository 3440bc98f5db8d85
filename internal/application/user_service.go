package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/healthplate/backend/internal/domain/entity"
	"github.com/healthplate/backend/internal/domain/repository"
	"github.com/healthplate/backend/pkg/helpers"
)

var (
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrNoFieldsChanged    = errors.New("profile update failed")
)

// UserService orchestrates the identity lifecycle: signup, login and
// profile access.
type UserService struct {
	Repo   repository.UserRepository
	Tokens *helpers.TokenManager
	Logger *logrus.Logger
}

func NewUserService(repo repository.UserRepository, tokens *helpers.TokenManager, logger *logrus.Logger) *UserService {
	return &UserService{Repo: repo, Tokens: tokens, Logger: logger}
}

// SignupInput carries the validated signup attributes.
type SignupInput struct {
	Email    string
	Password string
	Name     string

	Age           int
	Height        float64
	Weight        float64
	ActivityLevel string
	Goal          string
	DietaryType   string

	FoodPreferences []string
	Allergies       []string
	DislikedFood    []string
	Cuisines        []string
	HealthConcerns  []string
}

// Signup hashes the password, computes the nutrition targets, persists the
// user and issues a token for the new account. A duplicate email fails with
// ErrEmailTaken whether it is caught by the pre-check or by the store's
// unique index.
func (s *UserService) Signup(ctx context.Context, in SignupInput) (string, error) {
	if _, err := s.Repo.FindByEmail(ctx, in.Email); err == nil {
		return "", ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		s.Logger.WithError(err).Error("signup: email lookup failed")
		return "", err
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return "", err
	}

	u := &entity.User{
		Email:           in.Email,
		Password:        hash,
		Name:            in.Name,
		Age:             in.Age,
		Height:          in.Height,
		Weight:          in.Weight,
		ActivityLevel:   in.ActivityLevel,
		Goal:            in.Goal,
		DietaryType:     in.DietaryType,
		FoodPreferences: in.FoodPreferences,
		Allergies:       in.Allergies,
		DislikedFood:    in.DislikedFood,
		Cuisines:        in.Cuisines,
		HealthConcerns:  in.HealthConcerns,
		Metrics:         entity.ComputeMetrics(in.Weight, in.Height, in.Age, in.ActivityLevel, in.Goal),
		CreatedAt:       time.Now().UTC(),
	}

	id, err := s.Repo.Insert(ctx, u)
	if errors.Is(err, repository.ErrDuplicateEmail) {
		return "", ErrEmailTaken
	}
	if err != nil {
		s.Logger.WithError(err).Error("signup: insert failed")
		return "", err
	}

	token, _, err := s.Tokens.Issue(id)
	return token, err
}

// Login verifies the credentials and issues a token. Unknown email and wrong
// password collapse into the same error so callers cannot enumerate accounts.
func (s *UserService) Login(ctx context.Context, email, password string) (token, name string, err error) {
	u, err := s.Repo.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.Logger.WithError(err).Error("login: email lookup failed")
		}
		return "", "", ErrInvalidCredentials
	}
	if !helpers.CheckPassword(u.Password, password) {
		return "", "", ErrInvalidCredentials
	}
	token, _, err = s.Tokens.Issue(u.ID)
	if err != nil {
		return "", "", err
	}
	return token, u.Name, nil
}

func (s *UserService) GetProfile(ctx context.Context, id string) (*entity.User, error) {
	u, err := s.Repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return u, err
}

// UpdateProfile merges the given fields into the user record and returns the
// refreshed profile. Identifier and password fields are stripped before the
// store sees them. Metrics are intentionally left as computed at signup.
func (s *UserService) UpdateProfile(ctx context.Context, id string, fields map[string]any) (*entity.User, error) {
	delete(fields, "_id")
	delete(fields, "id")
	delete(fields, "password")
	if len(fields) == 0 {
		return nil, ErrNoFieldsChanged
	}

	u, err := s.Repo.UpdateFields(ctx, id, fields)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNoFieldsChanged
	}
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", id).Error("profile update failed")
		return nil, err
	}
	return u, nil
}
