package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeMetrics(t *testing.T) {
	tests := []struct {
		name     string
		weight   float64
		height   float64
		age      int
		activity string
		goal     string
		want     Metrics
	}{
		{
			// bmr = 700 + 1093.75 - 125 + 5 = 1673.75; tdee = 2008.5
			name:     "sedentary maintain",
			weight:   70, height: 175, age: 25,
			activity: "sedentary", goal: "maintain",
			want: Metrics{DailyCalories: 2009, ProteinTarget: 105, FiberTarget: 30, SugarCap: 50},
		},
		{
			name:     "fat loss subtracts 500",
			weight:   70, height: 175, age: 25,
			activity: "sedentary", goal: "fat_loss",
			want: Metrics{DailyCalories: 1509, ProteinTarget: 105, FiberTarget: 30, SugarCap: 50},
		},
		{
			name:     "muscle gain adds 300",
			weight:   70, height: 175, age: 25,
			activity: "sedentary", goal: "muscle_gain",
			want: Metrics{DailyCalories: 2309, ProteinTarget: 105, FiberTarget: 30, SugarCap: 50},
		},
		{
			// tdee = 1673.75 * 1.725 = 2887.21875
			name:     "high activity",
			weight:   70, height: 175, age: 25,
			activity: "high", goal: "maintain",
			want: Metrics{DailyCalories: 2887, ProteinTarget: 105, FiberTarget: 30, SugarCap: 50},
		},
		{
			name:     "unrecognized activity falls back to sedentary",
			weight:   70, height: 175, age: 25,
			activity: "extreme", goal: "maintain",
			want: Metrics{DailyCalories: 2009, ProteinTarget: 105, FiberTarget: 30, SugarCap: 50},
		},
		{
			name:     "activity level is case insensitive",
			weight:   70, height: 175, age: 25,
			activity: "Sedentary", goal: "maintain",
			want: Metrics{DailyCalories: 2009, ProteinTarget: 105, FiberTarget: 30, SugarCap: 50},
		},
		{
			name:     "energy goal keeps maintenance intake",
			weight:   70, height: 175, age: 25,
			activity: "sedentary", goal: "energy",
			want: Metrics{DailyCalories: 2009, ProteinTarget: 105, FiberTarget: 30, SugarCap: 50},
		},
		{
			// bmr = 600 + 1000 - 150 + 5 = 1455; tdee = 1455 * 1.55 = 2255.25
			name:     "moderate activity rounds down",
			weight:   60, height: 160, age: 30,
			activity: "moderate", goal: "maintain",
			want: Metrics{DailyCalories: 2255, ProteinTarget: 90, FiberTarget: 30, SugarCap: 50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeMetrics(tt.weight, tt.height, tt.age, tt.activity, tt.goal)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeMetricsDeterministic(t *testing.T) {
	first := ComputeMetrics(82.4, 181.5, 41, "light", "fat_loss")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ComputeMetrics(82.4, 181.5, 41, "light", "fat_loss"))
	}
}
