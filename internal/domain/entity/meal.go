package entity

import "time"

// MealNutrition holds mean nutrient estimates for a dish or a whole meal.
type MealNutrition struct {
	CaloriesMean float64 `bson:"calories_mean" json:"calories_mean"`
	ProteinMean  float64 `bson:"protein_mean" json:"protein_mean"`
	CarbsMean    float64 `bson:"carbs_mean" json:"carbs_mean"`
	FatMean      float64 `bson:"fat_mean" json:"fat_mean"`
	FiberMean    float64 `bson:"fiber_mean" json:"fiber_mean"`
	SodiumMean   float64 `bson:"sodium_mean" json:"sodium_mean"`
	SatFatMean   float64 `bson:"sat_fat_mean" json:"sat_fat_mean"`
	SugarMean    float64 `bson:"sugar_mean" json:"sugar_mean"`
}

// MealComponent is one dish within a logged meal.
type MealComponent struct {
	DishID    string         `bson:"dish_id" json:"dish_id"`
	DishName  string         `bson:"dish_name" json:"dish_name"`
	Quantity  float64        `bson:"quantity" json:"quantity"`
	Unit      string         `bson:"unit" json:"unit"`
	Nutrition *MealNutrition `bson:"nutrition,omitempty" json:"nutrition,omitempty"`
}

// Meal is a logged meal document, keyed by the logging user's email.
type Meal struct {
	ID              string
	UserID          string
	Email           string
	Date            string // ISO date (2006-01-02)
	MealType        string
	SourceType      string
	OilLevel        string
	Components      []MealComponent
	Nutrition       *MealNutrition
	ConfidenceScore *float64
	CreatedAt       time.Time
}
