package contact

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

// Deliverer hands a validated submission off to its destination.
// Implementations must honor context cancellation.
type Deliverer interface {
	Deliver(ctx context.Context, sub Submission) error
}

// DelivererFunc adapts a function to the Deliverer interface.
type DelivererFunc func(ctx context.Context, sub Submission) error

func (f DelivererFunc) Deliver(ctx context.Context, sub Submission) error {
	return f(ctx, sub)
}

const (
	// DefaultSimulatedDelay approximates a network round trip.
	DefaultSimulatedDelay = 1500 * time.Millisecond
	// DefaultSuccessRate is the probability of a simulated delivery succeeding.
	DefaultSuccessRate = 0.9
)

// SimulatedDeliverer fakes a delivery round trip: it waits a fixed delay and
// then succeeds with a configurable probability. It exists to exercise
// loading, success, and error flows without a real backend.
type SimulatedDeliverer struct {
	delay       time.Duration
	successRate float64
	outcome     func() float64
}

// SimulatedOption configures a SimulatedDeliverer.
type SimulatedOption func(*SimulatedDeliverer)

// WithDelay sets the simulated round-trip delay.
func WithDelay(delay time.Duration) SimulatedOption {
	return func(d *SimulatedDeliverer) {
		if delay >= 0 {
			d.delay = delay
		}
	}
}

// WithSuccessRate sets the probability of success in [0, 1].
func WithSuccessRate(rate float64) SimulatedOption {
	return func(d *SimulatedDeliverer) {
		if rate >= 0 && rate <= 1 {
			d.successRate = rate
		}
	}
}

// WithOutcomeProvider replaces the random source so tests can force
// deterministic outcomes. The provider must return values in [0, 1);
// values below the success rate succeed.
func WithOutcomeProvider(provider func() float64) SimulatedOption {
	return func(d *SimulatedDeliverer) {
		if provider != nil {
			d.outcome = provider
		}
	}
}

// NewSimulatedDeliverer creates a deliverer with a 1.5s delay and 90%
// success rate unless overridden.
func NewSimulatedDeliverer(opts ...SimulatedOption) *SimulatedDeliverer {
	d := &SimulatedDeliverer{
		delay:       DefaultSimulatedDelay,
		successRate: DefaultSuccessRate,
		outcome:     rand.Float64,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Deliver waits the configured delay, then resolves to success or
// ErrDeliveryFailed based on the outcome provider.
func (d *SimulatedDeliverer) Deliver(ctx context.Context, sub Submission) error {
	if d.delay > 0 {
		timer := time.NewTimer(d.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	if d.outcome() < d.successRate {
		return nil
	}
	return ErrDeliveryFailed
}

// MultiDeliverer fans a submission out to several deliverers in order.
// The primary outcome comes from the first deliverer; failures of the
// remaining ones are joined but tagged as delivery failures.
type MultiDeliverer []Deliverer

func (m MultiDeliverer) Deliver(ctx context.Context, sub Submission) error {
	var errs []error
	for _, d := range m {
		if err := d.Deliver(ctx, sub); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
