package entity

import (
	"math"
	"strings"
)

// Metrics are the daily nutrition targets derived from signup attributes.
type Metrics struct {
	DailyCalories int `bson:"daily_calories" json:"daily_calories"`
	ProteinTarget int `bson:"protein_target" json:"protein_target"`
	FiberTarget   int `bson:"fiber_target" json:"fiber_target"`
	SugarCap      int `bson:"sugar_cap" json:"sugar_cap"`
}

// Fixed daily targets independent of body composition.
const (
	fiberTargetGrams = 30
	sugarCapGrams    = 50
)

var activityMultipliers = map[string]float64{
	"sedentary": 1.2,
	"light":     1.375,
	"moderate":  1.55,
	"high":      1.725,
}

// ComputeMetrics derives daily nutrition targets using the Mifflin-St Jeor
// equation (sex-neutral constant form). Weight is kg, height cm. Unrecognized
// activity levels fall back to the sedentary multiplier; unrecognized goals
// keep the maintenance intake. Values are rounded half away from zero
// (math.Round), so a TDEE of 2008.5 yields 2009 daily calories.
func ComputeMetrics(weight, height float64, age int, activityLevel, goal string) Metrics {
	bmr := 10*weight + 6.25*height - 5*float64(age) + 5

	mult, ok := activityMultipliers[strings.ToLower(activityLevel)]
	if !ok {
		mult = activityMultipliers["sedentary"]
	}
	tdee := bmr * mult

	target := tdee
	switch goal {
	case "fat_loss":
		target = tdee - 500
	case "muscle_gain":
		target = tdee + 300
	}

	return Metrics{
		DailyCalories: int(math.Round(target)),
		ProteinTarget: int(math.Round(weight * 1.5)),
		FiberTarget:   fiberTargetGrams,
		SugarCap:      sugarCapGrams,
	}
}
