// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package weekflow

import (
	"context"
	"fmt"
	"log/slog"

	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
)

// Option represents an option for use with NewCalculator.
type Option func(*options)

type options struct {
	fallback    CalendarDate
	hasFallback bool
	logger      *slog.Logger
}

// WithFallback specifies a date whose week is to be returned, in place of
// an error, for invalid input. Every use of the fallback is logged at
// warning level. If date is itself invalid then invalid input results in
// an error that wraps ErrInvalidDate.
func WithFallback(date CalendarDate) Option {
	return func(o *options) {
		o.fallback = date
		o.hasFallback = true
	}
}

// WithLogger specifies the logger to use in place of any logger stored in
// the context passed to the Calculator's methods.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Calculator evaluates week numbers and ranges for string input with an
// explicit policy for invalid input. By default invalid input results in
// an error that wraps ErrInvalidDate. A Calculator is safe for concurrent
// use.
type Calculator struct {
	opts options
}

// NewCalculator returns a new Calculator configured with the supplied
// options.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{}
	for _, fn := range opts {
		fn(&c.opts)
	}
	return c
}

func (c *Calculator) context(ctx context.Context) context.Context {
	if c.opts.logger != nil {
		return ctxlog.Context(ctx, c.opts.logger)
	}
	return ctx
}

// Info returns the WeekInfo for input, or the week of the fallback date
// if one is configured and input is invalid.
func (c *Calculator) Info(ctx context.Context, input string) (WeekInfo, error) {
	cd, err := ParseCalendarDate(input)
	if err == nil {
		return infoFor(cd)
	}
	if !c.opts.hasFallback {
		return WeekInfo{}, err
	}
	if !c.opts.fallback.IsValid() {
		return WeekInfo{}, fmt.Errorf("invalid fallback %v: %w", c.opts.fallback, err)
	}
	ctxlog.Logger(c.context(ctx)).Warn("invalid date, using fallback", "input", input, "fallback", c.opts.fallback.String(), "error", err)
	return infoFor(c.opts.fallback)
}

// Number returns the week number for input.
func (c *Calculator) Number(ctx context.Context, input string) (int, error) {
	wi, err := c.Info(ctx, input)
	return wi.Number, err
}

// Range returns the WeekRange for input.
func (c *Calculator) Range(ctx context.Context, input string) (WeekRange, error) {
	wi, err := c.Info(ctx, input)
	return wi.Range, err
}

// InfoAll evaluates each of the inputs and returns one WeekInfo per input
// in the order given. The entry for an input that fails is the zero
// WeekInfo, whose Number is 0. All failures are returned as a single
// errors.M with each error annotated with the input that caused it.
func (c *Calculator) InfoAll(ctx context.Context, inputs ...string) ([]WeekInfo, error) {
	results := make([]WeekInfo, len(inputs))
	errs := &errors.M{}
	for i, input := range inputs {
		wi, err := c.Info(ctx, input)
		if err != nil {
			errs.Append(errors.Annotate(input, err))
			continue
		}
		results[i] = wi
	}
	return results, errs.Err()
}
