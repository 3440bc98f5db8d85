package entity

import "time"

// User is the aggregate root for the identity domain. Password holds a
// bcrypt hash and is never serialized to clients.
type User struct {
	ID       string
	Email    string
	Password string
	Name     string

	Age           int
	Height        float64 // cm
	Weight        float64 // kg
	ActivityLevel string  // sedentary, light, moderate, high
	Goal          string  // maintain, fat_loss, muscle_gain, energy
	DietaryType   string  // vegetarian, egg, vegan, non-veg

	FoodPreferences []string
	Allergies       []string
	DislikedFood    []string
	Cuisines        []string
	HealthConcerns  []string

	// Metrics is computed once at signup and stored with the record.
	Metrics Metrics

	CreatedAt time.Time
	UpdatedAt time.Time
}
