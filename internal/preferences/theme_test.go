package preferences_test

import (
	"complaintbox/backend/internal/config"
	"complaintbox/backend/internal/preferences"
	"complaintbox/backend/internal/storage"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestThemeStore_DefaultsToDark(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	s := preferences.NewThemeStore(kv, zap.NewNop())

	assert.Equal(t, preferences.ThemeDark, s.Get(ctx))

	require.NoError(t, kv.Set(ctx, config.ThemeKey, "solarized"))
	assert.Equal(t, preferences.ThemeDark, s.Get(ctx), "invalid values read as dark")
}

func TestThemeStore_Toggle(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	s := preferences.NewThemeStore(kv, zap.NewNop())

	assert.Equal(t, preferences.ThemeLight, s.Toggle(ctx))
	raw, _, _ := kv.Get(ctx, config.ThemeKey)
	assert.Equal(t, "light", raw)

	assert.Equal(t, preferences.ThemeDark, s.Toggle(ctx))
	assert.Equal(t, preferences.ThemeDark, s.Get(ctx))
}
