package tracker

import (
	"context"
	"io"

	"github.com/google/uuid"
)

// Package is one batch of sensor readings for a single workout.
type Package struct {
	ID      string
	Workout string
	Data    []float64
}

// Source yields packages until it returns io.EOF.
type Source interface {
	Next(context.Context) (Package, error)
}

// SliceSource serves packages from memory in order.
type SliceSource struct {
	packages []Package
	index    int
}

// NewSliceSource copies pkgs and assigns an ID to packages that lack one.
func NewSliceSource(pkgs ...Package) *SliceSource {
	out := make([]Package, len(pkgs))
	for i, pkg := range pkgs {
		if pkg.ID == "" {
			pkg.ID = uuid.NewString()
		}
		out[i] = pkg
	}
	return &SliceSource{packages: out}
}

// Next returns the following package or io.EOF once exhausted.
func (s *SliceSource) Next(ctx context.Context) (Package, error) {
	if err := ctx.Err(); err != nil {
		return Package{}, err
	}
	if s.index >= len(s.packages) {
		return Package{}, io.EOF
	}
	pkg := s.packages[s.index]
	s.index++
	return pkg, nil
}
