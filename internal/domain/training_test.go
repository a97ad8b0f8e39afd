package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-9

func TestRunningFormulas(t *testing.T) {
	run := NewRunning(15000, 1, 75)

	require.InDelta(t, 9.75, run.Distance(), delta)
	require.InDelta(t, 9.75, run.MeanSpeed(), delta)

	expected := (18*9.75 + 1.79) * 75 / 1000 * 60
	require.InDelta(t, expected, run.SpentCalories(), delta)
	require.InDelta(t, 797.805, run.SpentCalories(), 1e-6)
}

func TestSportsWalkingFormulas(t *testing.T) {
	walk := NewSportsWalking(9000, 1, 75, 180)

	require.InDelta(t, 5.85, walk.Distance(), delta)
	require.InDelta(t, 5.85, walk.MeanSpeed(), delta)

	expected := (0.035*75 + math.Pow(5.85*0.278, 2)/(180.0/100)*0.029*75) * 60
	require.InDelta(t, expected, walk.SpentCalories(), delta)
}

func TestSwimmingFormulas(t *testing.T) {
	swim := NewSwimming(720, 1, 80, 25, 40)

	require.InDelta(t, 720*1.38/1000, swim.Distance(), delta)
	require.InDelta(t, 1.0, swim.MeanSpeed(), delta)
	require.InDelta(t, 336.0, swim.SpentCalories(), delta)
}

func TestSwimmingSpeedIgnoresStrokeDistance(t *testing.T) {
	few := NewSwimming(10, 2, 70, 50, 20)
	many := NewSwimming(5000, 2, 70, 50, 20)

	assert.NotEqual(t, few.Distance(), many.Distance())
	assert.Equal(t, few.MeanSpeed(), many.MeanSpeed())
	assert.InDelta(t, 0.5, few.MeanSpeed(), delta)
}

func TestSpeedScalesWithDuration(t *testing.T) {
	tests := []struct {
		name     string
		training Training
		expected float64
	}{
		{name: "running half hour", training: NewRunning(10000, 0.5, 70), expected: 13.0},
		{name: "walking two hours", training: NewSportsWalking(10000, 2, 70, 170), expected: 3.25},
		{name: "swimming quarter hour", training: NewSwimming(300, 0.25, 70, 25, 10), expected: 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.training.MeanSpeed(), delta)
		})
	}
}

func TestShowTrainingInfo(t *testing.T) {
	tests := []struct {
		name     string
		training Training
		label    string
	}{
		{name: "running", training: NewRunning(15000, 1, 75), label: "Running"},
		{name: "walking", training: NewSportsWalking(9000, 1, 75, 180), label: "SportsWalking"},
		{name: "swimming", training: NewSwimming(720, 1, 80, 25, 40), label: "Swimming"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := tt.training.ShowTrainingInfo()

			require.Equal(t, tt.label, info.TrainingType)
			require.Equal(t, 1.0, info.Duration)
			require.Equal(t, tt.training.Distance(), info.Distance)
			require.Equal(t, tt.training.MeanSpeed(), info.Speed)
			require.Equal(t, tt.training.SpentCalories(), info.Calories)

			require.Equal(t, info, tt.training.ShowTrainingInfo(), "summary must be stable across calls")
		})
	}
}
