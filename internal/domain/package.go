package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownActivity indicates the workout tag is not recognised.
	ErrUnknownActivity = errors.New("unknown activity type")
	// ErrArityMismatch is returned when the sensor data does not match the workout fields.
	ErrArityMismatch = errors.New("sensor data length mismatch")
)

// Workout tags emitted by the tracker sensors.
const (
	WorkoutRunning  = "RUN"
	WorkoutWalking  = "WLK"
	WorkoutSwimming = "SWM"
)

type builder struct {
	arity int
	build func(data []float64) Training
}

var builders = map[string]builder{
	WorkoutRunning: {arity: 3, build: func(d []float64) Training {
		return NewRunning(int(d[0]), d[1], d[2])
	}},
	WorkoutWalking: {arity: 4, build: func(d []float64) Training {
		return NewSportsWalking(int(d[0]), d[1], d[2], d[3])
	}},
	WorkoutSwimming: {arity: 5, build: func(d []float64) Training {
		return NewSwimming(int(d[0]), d[1], d[2], d[3], int(d[4]))
	}},
}

// Workouts lists the recognised workout tags.
func Workouts() []string {
	return []string{WorkoutRunning, WorkoutWalking, WorkoutSwimming}
}

// ReadPackage builds the training matching the workout tag, assigning data positionally.
func ReadPackage(tag string, data []float64) (Training, error) {
	b, ok := builders[tag]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownActivity, tag)
	}
	if len(data) != b.arity {
		return nil, fmt.Errorf("%w: %s expects %d values, got %d", ErrArityMismatch, tag, b.arity, len(data))
	}
	return b.build(data), nil
}
