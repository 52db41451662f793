// Package settings persists user preferences in the settings_ key namespace
// of the same engine that holds the day logs.
package settings

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/julianstephens/healthlog/internal/constants"
	"github.com/julianstephens/healthlog/internal/logger"
	"github.com/julianstephens/healthlog/internal/models"
	"github.com/julianstephens/healthlog/internal/storage"
	"github.com/julianstephens/healthlog/internal/utils"
)

// Defaults returns the settings used for absent keys.
func Defaults() models.Settings {
	return models.Settings{
		WindowDays: constants.DefaultWindowDays,
		Timezone:   constants.DefaultTimezone,
	}
}

// Load reads the settings, falling back to defaults for absent keys. A
// stored window size that is not a number in range is logged and replaced
// by the default.
func Load(ctx context.Context, p storage.Provider) (models.Settings, error) {
	s, err := load(ctx, p)
	var bad *windowDaysError
	if errors.As(err, &bad) {
		logger.Warn("Ignoring stored window days", "value", bad.raw, "default", constants.DefaultWindowDays)
		return s, nil
	}
	return s, err
}

// Check reports stored settings that Load would have to replace or that
// fail Validate.
func Check(ctx context.Context, p storage.Provider) error {
	s, err := load(ctx, p)
	if err != nil {
		return err
	}
	return Validate(s)
}

type windowDaysError struct {
	raw string
}

func (e *windowDaysError) Error() string {
	return fmt.Sprintf("stored window days %q must be a number between %d and %d", e.raw, constants.MinWindowDays, constants.MaxWindowDays)
}

// load returns defaults for any field it rejects, alongside the error.
func load(ctx context.Context, p storage.Provider) (models.Settings, error) {
	s := Defaults()
	var windowErr error

	raw, ok, err := p.Get(ctx, constants.SettingWindowDays)
	if err != nil {
		return s, fmt.Errorf("failed to read window days: %w", err)
	}
	if ok {
		days, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || days < constants.MinWindowDays || days > constants.MaxWindowDays {
			windowErr = &windowDaysError{raw: raw}
		} else {
			s.WindowDays = days
		}
	}

	raw, ok, err = p.Get(ctx, constants.SettingTimezone)
	if err != nil {
		return s, fmt.Errorf("failed to read timezone: %w", err)
	}
	if ok && raw != "" {
		s.Timezone = raw
	}

	return s, windowErr
}

// Validate checks the window bounds and that the timezone loads.
func Validate(s models.Settings) error {
	if s.WindowDays < constants.MinWindowDays || s.WindowDays > constants.MaxWindowDays {
		return fmt.Errorf("window days must be between %d and %d, got %d", constants.MinWindowDays, constants.MaxWindowDays, s.WindowDays)
	}
	if !utils.ValidateTimezone(s.Timezone) {
		return fmt.Errorf("invalid timezone: %s", s.Timezone)
	}
	return nil
}

// Save validates and writes every setting.
func Save(ctx context.Context, p storage.Provider, s models.Settings) error {
	if err := Validate(s); err != nil {
		return err
	}
	if err := p.Set(ctx, constants.SettingWindowDays, strconv.Itoa(s.WindowDays)); err != nil {
		return fmt.Errorf("failed to save window days: %w", err)
	}
	if err := p.Set(ctx, constants.SettingTimezone, s.Timezone); err != nil {
		return fmt.Errorf("failed to save timezone: %w", err)
	}
	return nil
}
