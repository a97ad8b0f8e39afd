// Package domain defines the workout formulas and summaries for the fitness tracker.
package domain

import "math"

const (
	mInKm  = 1000
	minInH = 60
)

// Training is a single workout built from sensor data.
type Training interface {
	// Distance returns the covered distance in kilometres.
	Distance() float64
	// MeanSpeed returns the mean speed in km/h.
	MeanSpeed() float64
	// SpentCalories returns the burned energy in kcal.
	SpentCalories() float64
	// ShowTrainingInfo summarises the workout.
	ShowTrainingInfo() InfoMessage
}

// workout holds the readings shared by every training type.
// Duration must be positive.
type workout struct {
	Action   int
	Duration float64
	Weight   float64
}

func (w workout) distance(lenStep float64) float64 {
	return float64(w.Action) * lenStep / mInKm
}

func (w workout) minutes() float64 {
	return w.Duration * minInH
}

func summarize(trainingType string, duration float64, t Training) InfoMessage {
	return InfoMessage{
		TrainingType: trainingType,
		Duration:     duration,
		Distance:     t.Distance(),
		Speed:        t.MeanSpeed(),
		Calories:     t.SpentCalories(),
	}
}

const (
	runningLenStep = 0.65

	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 1.79
)

// Running is a run counted in steps.
type Running struct {
	workout
}

// NewRunning builds a Running workout.
func NewRunning(action int, duration, weight float64) Running {
	return Running{workout{Action: action, Duration: duration, Weight: weight}}
}

func (r Running) Distance() float64 {
	return r.distance(runningLenStep)
}

func (r Running) MeanSpeed() float64 {
	return r.Distance() / r.Duration
}

func (r Running) SpentCalories() float64 {
	return (runningCaloriesMeanSpeedMultiplier*r.MeanSpeed() + runningCaloriesMeanSpeedShift) *
		r.Weight / mInKm * r.minutes()
}

func (r Running) ShowTrainingInfo() InfoMessage {
	return summarize("Running", r.Duration, r)
}

const (
	walkingLenStep = 0.65

	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029
	kmhInMsec                       = 0.278
	cmInM                           = 100
)

// SportsWalking is a walk counted in steps. Height is in centimetres and must be positive.
type SportsWalking struct {
	workout
	Height float64
}

// NewSportsWalking builds a SportsWalking workout.
func NewSportsWalking(action int, duration, weight, height float64) SportsWalking {
	return SportsWalking{
		workout: workout{Action: action, Duration: duration, Weight: weight},
		Height:  height,
	}
}

func (s SportsWalking) Distance() float64 {
	return s.distance(walkingLenStep)
}

func (s SportsWalking) MeanSpeed() float64 {
	return s.Distance() / s.Duration
}

func (s SportsWalking) SpentCalories() float64 {
	speed := math.Pow(s.MeanSpeed()*kmhInMsec, 2)
	return (walkingCaloriesWeightMultiplier*s.Weight +
		speed/(s.Height/cmInM)*walkingSpeedHeightMultiplier*s.Weight) * s.minutes()
}

func (s SportsWalking) ShowTrainingInfo() InfoMessage {
	return summarize("SportsWalking", s.Duration, s)
}

const (
	swimmingLenStep = 1.38

	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

// Swimming is a pool swim counted in strokes. LengthPool is in metres.
type Swimming struct {
	workout
	LengthPool float64
	CountPool  int
}

// NewSwimming builds a Swimming workout.
func NewSwimming(action int, duration, weight, lengthPool float64, countPool int) Swimming {
	return Swimming{
		workout:    workout{Action: action, Duration: duration, Weight: weight},
		LengthPool: lengthPool,
		CountPool:  countPool,
	}
}

func (s Swimming) Distance() float64 {
	return s.distance(swimmingLenStep)
}

// MeanSpeed is derived from the pool laps, not from the stroke distance.
func (s Swimming) MeanSpeed() float64 {
	return s.LengthPool * float64(s.CountPool) / mInKm / s.Duration
}

func (s Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimmingCaloriesMeanSpeedShift) *
		swimmingCaloriesWeightMultiplier * s.Weight * s.Duration
}

func (s Swimming) ShowTrainingInfo() InfoMessage {
	return summarize("Swimming", s.Duration, s)
}
