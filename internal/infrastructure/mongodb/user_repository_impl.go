package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/healthplate/backend/internal/domain/entity"
	"github.com/healthplate/backend/internal/domain/repository"
)

// userDoc is the stored shape of a user. Conversion to and from the domain
// entity happens here so the rest of the code never sees ObjectIDs.
type userDoc struct {
	ID              bson.ObjectID  `bson:"_id,omitempty"`
	Email           string         `bson:"email"`
	Password        string         `bson:"password,omitempty"`
	Name            string         `bson:"name,omitempty"`
	Age             int            `bson:"age,omitempty"`
	Height          float64        `bson:"height,omitempty"`
	Weight          float64        `bson:"weight,omitempty"`
	ActivityLevel   string         `bson:"activity_level,omitempty"`
	Goal            string         `bson:"goal,omitempty"`
	DietaryType     string         `bson:"dietary_type,omitempty"`
	FoodPreferences []string       `bson:"food_preferences,omitempty"`
	Allergies       []string       `bson:"allergies,omitempty"`
	DislikedFood    []string       `bson:"disliked_food,omitempty"`
	Cuisines        []string       `bson:"cuisines,omitempty"`
	HealthConcerns  []string       `bson:"health_concerns,omitempty"`
	Metrics         entity.Metrics `bson:"metrics"`
	CreatedAt       time.Time      `bson:"created_at"`
	UpdatedAt       time.Time      `bson:"updated_at,omitempty"`
}

func (d *userDoc) toEntity() *entity.User {
	return &entity.User{
		ID:              d.ID.Hex(),
		Email:           d.Email,
		Password:        d.Password,
		Name:            d.Name,
		Age:             d.Age,
		Height:          d.Height,
		Weight:          d.Weight,
		ActivityLevel:   d.ActivityLevel,
		Goal:            d.Goal,
		DietaryType:     d.DietaryType,
		FoodPreferences: d.FoodPreferences,
		Allergies:       d.Allergies,
		DislikedFood:    d.DislikedFood,
		Cuisines:        d.Cuisines,
		HealthConcerns:  d.HealthConcerns,
		Metrics:         d.Metrics,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

func fromEntity(u *entity.User) *userDoc {
	return &userDoc{
		Email:           u.Email,
		Password:        u.Password,
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

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(usersCollection)}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var doc userDoc
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc.toEntity(), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	var doc userDoc
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc.toEntity(), nil
}

func (r *UserRepository) Insert(ctx context.Context, u *entity.User) (string, error) {
	doc := fromEntity(u)
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}
	res, err := r.col.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return "", repository.ErrDuplicateEmail
	}
	if err != nil {
		return "", err
	}
	oid, _ := res.InsertedID.(bson.ObjectID)
	u.ID = oid.Hex()
	u.CreatedAt = doc.CreatedAt
	return u.ID, nil
}

func (r *UserRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) (*entity.User, error) {
	for key := range fields {
		switch key {
		case "_id", "id", "password":
			return nil, repository.ErrImmutableField
		}
	}
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	set := bson.M{"updated_at": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}
	res, err := r.col.UpdateByID(ctx, oid, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 && res.ModifiedCount == 0 {
		return nil, repository.ErrNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}
	res, err := r.col.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"password":   passwordHash,
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) EnsureByEmail(ctx context.Context, email string) (string, error) {
	u, err := r.FindByEmail(ctx, email)
	if err == nil {
		return u.ID, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return "", err
	}
	res, err := r.col.InsertOne(ctx, bson.M{
		"email":      email,
		"created_at": time.Now().UTC(),
	})
	if mongo.IsDuplicateKeyError(err) {
		// lost the race to a concurrent signup; the record exists now
		u, err := r.FindByEmail(ctx, email)
		if err != nil {
			return "", err
		}
		return u.ID, nil
	}
	if err != nil {
		return "", err
	}
	oid, _ := res.InsertedID.(bson.ObjectID)
	return oid.Hex(), nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
