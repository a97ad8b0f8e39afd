// Package tracker turns sensor packages into printed workout summaries.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"example.com/tracker/internal/domain"
	"example.com/tracker/internal/observability"
)

// Option configures optional behaviour for the Processor.
type Option func(*Processor)

// WithLogger overrides the logger used to report rejected packages.
func WithLogger(logger *log.Logger) Option {
	return func(p *Processor) {
		p.logger = logger
	}
}

// WithFailFast makes Run return on the first rejected package.
func WithFailFast(failFast bool) Option {
	return func(p *Processor) {
		p.failFast = failFast
	}
}

// Stats counts the outcome of a Run.
type Stats struct {
	Processed int
	Rejected  int
}

// Processor pulls packages from a Source and writes one summary line per workout.
type Processor struct {
	source   Source
	out      io.Writer
	logger   *log.Logger
	failFast bool
	now      func() time.Time
}

// NewProcessor constructs a Processor writing summaries to out.
func NewProcessor(source Source, out io.Writer, opts ...Option) *Processor {
	p := &Processor{
		source: source,
		out:    out,
		logger: log.New(log.Writer(), "[tracker] ", log.LstdFlags|log.Lshortfile),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process builds the training for pkg and summarises it.
func (p *Processor) Process(pkg Package) (domain.InfoMessage, error) {
	training, err := domain.ReadPackage(pkg.Workout, pkg.Data)
	if err != nil {
		return domain.InfoMessage{}, err
	}
	return training.ShowTrainingInfo(), nil
}

// Run drains the source. It returns nil once the source is exhausted.
func (p *Processor) Run(ctx context.Context) (Stats, error) {
	var stats Stats
	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		pkg, err := p.source.Next(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return stats, nil
			}
			return stats, err
		}

		info, err := p.Process(pkg)
		if err != nil {
			stats.Rejected++
			recordRejected(rejectReason(err))
			p.logger.Printf("rejected package (id=%s, workout=%q): %v", pkg.ID, pkg.Workout, err)
			if p.failFast {
				return stats, fmt.Errorf("package %s: %w", pkg.ID, err)
			}
			continue
		}

		if _, err := fmt.Fprintln(p.out, info.Message()); err != nil {
			stats.Rejected++
			recordRejected(reasonWrite)
			return stats, fmt.Errorf("write summary for package %s: %w", pkg.ID, err)
		}

		stats.Processed++
		recordRendered(info.TrainingType)
		observability.RecordReportRendered(p.now())
	}
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnknownActivity):
		return reasonUnknownActivity
	case errors.Is(err, domain.ErrArityMismatch):
		return reasonArityMismatch
	default:
		return "other"
	}
}
