// Package pipeline runs the post-payment booking workflow: a fixed,
// ordered sequence of validated steps over one domain.ServerSideBookingEvent,
// publishing lifecycle events through a notifier.Bus as it goes. It is
// adapted from a compensation-based saga into a validate/skip/abort
// machine: steps here are either already satisfied (skip), need to run
// (execute), or fail the whole run (abort) — there is no compensation,
// since a provider-side block or booking is not something this system
// can safely undo.
package pipeline

import (
	"context"
	"fmt"

	"github.com/hotelforge/aggregator/internal/domain"
	"github.com/hotelforge/aggregator/internal/notifier"
	"github.com/hotelforge/aggregator/internal/platform/logger"
)

// Step is one named unit of work in the pipeline. Validate decides whether
// Execute should run at all (idempotent re-entry is expressed by Validate
// returning skip=true); Execute performs the side effect and mutates event
// in place.
type Step interface {
	Name() string
	Validate(ctx context.Context, event *domain.ServerSideBookingEvent) (skip bool, err error)
	Execute(ctx context.Context, event *domain.ServerSideBookingEvent) error
}

// Engine drives one event through an ordered Step list.
type Engine struct {
	steps []Step
	bus   notifier.Bus
}

// New builds an Engine over steps, in the order they will run.
func New(bus notifier.Bus, steps ...Step) *Engine {
	return &Engine{steps: steps, bus: bus}
}

func (e *Engine) publish(ctx context.Context, event *domain.ServerSideBookingEvent, stepName string, eventType notifier.EventType) {
	e.bus.Publish(ctx, notifier.NewEvent(event.CorrelationID, event.OrderID, event.UserEmail, stepName, eventType))
}

// Run advances event through every step in order. A step that fails
// validation or execution aborts the whole run; a skipped step still
// publishes OnStepSkipped so observers can distinguish "already done"
// from "never ran".
func (e *Engine) Run(ctx context.Context, event *domain.ServerSideBookingEvent) error {
	e.publish(ctx, event, "", notifier.OnPipelineStart)

	for _, step := range e.steps {
		skip, err := step.Validate(ctx, event)
		if err != nil {
			logger.ErrorWithErr(err, fmt.Sprintf("pipeline: step %s validation failed", step.Name()))
			e.publish(ctx, event, step.Name(), notifier.OnPipelineAbort)
			return fmt.Errorf("step %s validation failed: %w", step.Name(), err)
		}
		if skip {
			e.publish(ctx, event, step.Name(), notifier.OnStepSkipped)
			continue
		}

		e.publish(ctx, event, step.Name(), notifier.OnStepStart)
		if err := step.Execute(ctx, event); err != nil {
			logger.ErrorWithErr(err, fmt.Sprintf("pipeline: step %s execution failed", step.Name()))
			e.publish(ctx, event, step.Name(), notifier.OnPipelineAbort)
			return fmt.Errorf("step %s failed: %w", step.Name(), err)
		}
		e.publish(ctx, event, step.Name(), notifier.OnStepCompleted)
	}

	e.publish(ctx, event, "", notifier.OnPipelineEnd)
	return nil
}
