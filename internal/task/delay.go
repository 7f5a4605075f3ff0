package task

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

// ApologyMessage is stored as the result of every job that ends in failed.
const ApologyMessage = "I'm sorry, but I encountered an error while processing your request. Please try again."

// ErrInvalidDelayRange is returned when a DelayRange has a negative bound or Min > Max.
var ErrInvalidDelayRange = errors.New("invalid delay range")

// DelayRange is a half-open interval [Min, Max) for a simulated processing delay.
// The zero value means no wait at all.
type DelayRange struct {
	Min time.Duration
	Max time.Duration
}

// Validate checks that the range is usable.
func (d DelayRange) Validate() error {
	if d.Min < 0 || d.Max < 0 {
		return fmt.Errorf("%w: bounds must not be negative (min=%s, max=%s)", ErrInvalidDelayRange, d.Min, d.Max)
	}
	if d.Min > d.Max {
		return fmt.Errorf("%w: min %s is greater than max %s", ErrInvalidDelayRange, d.Min, d.Max)
	}
	return nil
}

// Pick returns a duration in [Min, Max) using int64n, which must return a
// value in [0, n). When Max <= Min the result is Min.
func (d DelayRange) Pick(int64n func(n int64) int64) time.Duration {
	span := int64(d.Max - d.Min)
	if span <= 0 {
		return d.Min
	}
	return d.Min + time.Duration(int64n(span))
}

// LifecycleConfig holds the delays of the lifecycle pipeline.
type LifecycleConfig struct {
	// Intake is the wait after a job enters processing.
	Intake DelayRange

	// Analysis is the wait after a job enters analyzing.
	Analysis DelayRange

	// Int64N is the random source for delays. Defaults to math/rand/v2.Int64N.
	Int64N func(n int64) int64
}

// DefaultLifecycleConfig returns the production delays: intake in [1s, 2s)
// and analysis in [2s, 4s).
func DefaultLifecycleConfig() LifecycleConfig {
	return LifecycleConfig{
		Intake:   DelayRange{Min: time.Second, Max: 2 * time.Second},
		Analysis: DelayRange{Min: 2 * time.Second, Max: 4 * time.Second},
	}
}

// Validate checks both delay ranges.
func (c LifecycleConfig) Validate() error {
	if err := c.Intake.Validate(); err != nil {
		return fmt.Errorf("intake: %w", err)
	}
	if err := c.Analysis.Validate(); err != nil {
		return fmt.Errorf("analysis: %w", err)
	}
	return nil
}

// wait blocks for a duration picked from r, or until ctx is done.
func (c LifecycleConfig) wait(ctx context.Context, r DelayRange) error {
	int64n := c.Int64N
	if int64n == nil {
		int64n = rand.Int64N
	}

	d := r.Pick(int64n)
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
