package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/healthplate/backend/internal/domain/entity"
	"github.com/healthplate/backend/internal/domain/repository"
)

type mealDoc struct {
	ID              bson.ObjectID          `bson:"_id,omitempty"`
	UserID          bson.ObjectID          `bson:"user_id"`
	Email           string                 `bson:"email"`
	Date            string                 `bson:"date"`
	MealType        string                 `bson:"meal_type"`
	SourceType      string                 `bson:"source_type"`
	OilLevel        string                 `bson:"oil_level"`
	Components      []entity.MealComponent `bson:"components"`
	Nutrition       *entity.MealNutrition  `bson:"nutrition,omitempty"`
	ConfidenceScore *float64               `bson:"confidence_score,omitempty"`
	CreatedAt       time.Time              `bson:"created_at"`
}

type MealRepository struct {
	col *mongo.Collection
}

func NewMealRepository(db *mongo.Database) *MealRepository {
	return &MealRepository{col: db.Collection(mealsCollection)}
}

func (r *MealRepository) Insert(ctx context.Context, m *entity.Meal) (string, error) {
	userOID, err := bson.ObjectIDFromHex(m.UserID)
	if err != nil {
		return "", repository.ErrNotFound
	}
	doc := mealDoc{
		UserID:          userOID,
		Email:           m.Email,
		Date:            m.Date,
		MealType:        m.MealType,
		SourceType:      m.SourceType,
		OilLevel:        m.OilLevel,
		Components:      m.Components,
		Nutrition:       m.Nutrition,
		ConfidenceScore: m.ConfidenceScore,
		CreatedAt:       time.Now().UTC(),
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	oid, _ := res.InsertedID.(bson.ObjectID)
	m.ID = oid.Hex()
	m.CreatedAt = doc.CreatedAt
	return m.ID, nil
}

var _ repository.MealRepository = (*MealRepository)(nil)
