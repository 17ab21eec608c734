// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/weekflow"
	"gopkg.in/yaml.v3"
)

// Config represents the optional yaml configuration file. Values
// specified via flags take precedence over those in the file.
type Config struct {
	Format   string                `yaml:"format"`
	Fallback string                `yaml:"fallback"`
	Logging  cmdutil.LoggingConfig `yaml:"logging"`
}

type command struct {
	out io.Writer
	now func() time.Time
}

type settings struct {
	format   string
	fallback string
	logging  cmdutil.LoggingConfig
}

func loadSettings(lf cmdutil.LoggingFlags, format, fallback, configFile string) (settings, error) {
	var cfg Config
	if len(configFile) > 0 {
		if err := cmdutil.ParseYAMLConfigFile(configFile, &cfg); err != nil {
			return settings{}, err
		}
	}
	s := settings{
		format:   cfg.Format,
		fallback: cfg.Fallback,
		logging:  cfg.Logging,
	}
	if len(format) > 0 {
		s.format = format
	}
	if len(fallback) > 0 {
		s.fallback = fallback
	}
	if len(configFile) == 0 || lf.Level != 0 || len(lf.File) != 0 || lf.SourceCode {
		s.logging = lf.LoggingConfig()
	}
	switch s.format {
	case "":
		s.format = "text"
	case "text", "json", "yaml":
	default:
		return settings{}, fmt.Errorf("unsupported output format %q, use text, json or yaml", s.format)
	}
	return s, nil
}

// setup configures logging and returns a function that must be called
// to release the log file, if any.
func setup(ctx context.Context, s settings) (context.Context, func(), error) {
	logger, err := s.logging.NewLogger()
	if err != nil {
		return ctx, nil, err
	}
	return ctxlog.Context(ctx, logger.Logger), func() { logger.Close() }, nil
}

func (c *command) calculator(s settings) (*weekflow.Calculator, error) {
	switch strings.ToLower(s.fallback) {
	case "":
		return weekflow.NewCalculator(), nil
	case "today":
		return weekflow.NewCalculator(
			weekflow.WithFallback(weekflow.CalendarDateFromTime(c.now()))), nil
	}
	fallback, err := weekflow.ParseCalendarDate(s.fallback)
	if err != nil {
		return nil, fmt.Errorf("invalid fallback: %w", err)
	}
	return weekflow.NewCalculator(weekflow.WithFallback(fallback)), nil
}

type numberRecord struct {
	Input string `json:"input" yaml:"input"`
	Week  int    `json:"week" yaml:"week"`
}

type rangeRecord struct {
	Input              string `json:"input" yaml:"input"`
	weekflow.WeekRange `yaml:",inline"`
}

type infoRecord struct {
	Input             string `json:"input" yaml:"input"`
	weekflow.WeekInfo `yaml:",inline"`
}

func (c *command) number(ctx context.Context, values interface{}, args []string) error {
	return c.dates(ctx, values.(*dateFlags), args, func(inputs []string, infos []weekflow.WeekInfo) (any, func(io.Writer)) {
		records := []numberRecord{}
		for i, wi := range infos {
			if wi.Number > 0 {
				records = append(records, numberRecord{Input: inputs[i], Week: wi.Number})
			}
		}
		return records, func(w io.Writer) {
			for _, r := range records {
				fmt.Fprintf(w, "%s: %d\n", r.Input, r.Week)
			}
		}
	})
}

func (c *command) weekRange(ctx context.Context, values interface{}, args []string) error {
	return c.dates(ctx, values.(*dateFlags), args, func(inputs []string, infos []weekflow.WeekInfo) (any, func(io.Writer)) {
		records := []rangeRecord{}
		for i, wi := range infos {
			if wi.Number > 0 {
				records = append(records, rangeRecord{Input: inputs[i], WeekRange: wi.Range})
			}
		}
		return records, func(w io.Writer) {
			for _, r := range records {
				fmt.Fprintf(w, "%s: %s\n", r.Input, r.WeekRange)
			}
		}
	})
}

func (c *command) info(ctx context.Context, values interface{}, args []string) error {
	return c.dates(ctx, values.(*dateFlags), args, func(inputs []string, infos []weekflow.WeekInfo) (any, func(io.Writer)) {
		records := []infoRecord{}
		for i, wi := range infos {
			if wi.Number > 0 {
				records = append(records, infoRecord{Input: inputs[i], WeekInfo: wi})
			}
		}
		return records, func(w io.Writer) {
			for _, r := range records {
				fmt.Fprintf(w, "%s: %s\n", r.Input, r.WeekInfo)
			}
		}
	})
}

type formatter func(inputs []string, infos []weekflow.WeekInfo) (any, func(io.Writer))

func (c *command) dates(ctx context.Context, fv *dateFlags, args []string, fn formatter) error {
	s, err := loadSettings(fv.LoggingFlags, fv.Format, fv.Fallback, fv.Config)
	if err != nil {
		return err
	}
	ctx, cleanup, err := setup(ctx, s)
	if err != nil {
		return err
	}
	defer cleanup()
	calc, err := c.calculator(s)
	if err != nil {
		return err
	}
	infos, evalErr := calc.InfoAll(ctx, args...)
	records, text := fn(args, infos)
	if err := write(c.out, s.format, records, text); err != nil {
		return err
	}
	if evalErr != nil {
		ctxlog.Logger(ctx).Error("invalid input", "error", evalErr)
	}
	return evalErr
}

func (c *command) weeks(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*yearFlags)
	s, err := loadSettings(fv.LoggingFlags, fv.Format, "", fv.Config)
	if err != nil {
		return err
	}
	ctx, cleanup, err := setup(ctx, s)
	if err != nil {
		return err
	}
	defer cleanup()
	year, err := strconv.Atoi(args[0])
	if err != nil || year < 1 || year > 9999 {
		return fmt.Errorf("invalid year %q: %w", args[0], weekflow.ErrInvalidDate)
	}
	weeks := weekflow.Weeks(year)
	if len(fv.Month) > 0 {
		month, err := weekflow.ParseMonth(fv.Month)
		if err != nil {
			return err
		}
		weeks = weekflow.WeeksInMonth(year, month)
	}
	records := []weekflow.WeekInfo{}
	for week, wr := range weeks {
		records = append(records, weekflow.WeekInfo{Number: week, Year: year, Range: wr})
	}
	ctxlog.Logger(ctx).Info("weeks", "year", year, "month", fv.Month, "count", len(records))
	return write(c.out, s.format, records, func(w io.Writer) {
		for _, r := range records {
			fmt.Fprintln(w, r.String())
		}
	})
}

func write(out io.Writer, format string, records any, text func(io.Writer)) error {
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return err
		}
		return enc.Close()
	}
	text(out)
	return nil
}
