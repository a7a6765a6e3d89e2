// Package preferences stores per-installation display preferences next to
// the complaint collection.
package preferences

import (
	"complaintbox/backend/internal/config"
	"complaintbox/backend/internal/storage"
	"context"

	"go.uber.org/zap"
)

// Theme is the colour scheme of the UI.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// DefaultTheme applies when nothing valid is stored.
const DefaultTheme = ThemeDark

// ThemeStore reads and writes the theme key.
type ThemeStore struct {
	kv     storage.KeyValue
	logger *zap.Logger
}

func NewThemeStore(kv storage.KeyValue, logger *zap.Logger) *ThemeStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ThemeStore{kv: kv, logger: logger}
}

// Get returns the stored theme. Anything other than "light" reads as dark,
// including read failures.
func (s *ThemeStore) Get(ctx context.Context) Theme {
	raw, found, err := s.kv.Get(ctx, config.ThemeKey)
	if err != nil {
		s.logger.Warn("Failed to read theme, using default", zap.Error(err))
		return DefaultTheme
	}
	if found && Theme(raw) == ThemeLight {
		return ThemeLight
	}
	return DefaultTheme
}

// Set persists theme.
func (s *ThemeStore) Set(ctx context.Context, theme Theme) error {
	return s.kv.Set(ctx, config.ThemeKey, string(theme))
}

// Toggle flips between light and dark and returns the new theme. A failed
// write is logged and the new theme is still returned.
func (s *ThemeStore) Toggle(ctx context.Context) Theme {
	next := ThemeLight
	if s.Get(ctx) == ThemeLight {
		next = ThemeDark
	}
	if err := s.Set(ctx, next); err != nil {
		s.logger.Error("Failed to persist theme", zap.String("theme", string(next)), zap.Error(err))
	}
	return next
}
