package storage_test

import (
	"complaintbox/backend/internal/config"
	"complaintbox/backend/internal/storage"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOpen_MemoryBackend(t *testing.T) {
	kv, closeKV, err := storage.Open(context.Background(), &config.Config{StorageBackend: config.BackendMemory}, zap.NewNop())
	require.NoError(t, err)
	defer closeKV()

	assert.IsType(t, &storage.MemoryKV{}, kv)
}

func TestOpen_RedisUnreachable(t *testing.T) {
	cfg := &config.Config{StorageBackend: config.BackendRedis, RedisAddr: "127.0.0.1:1"}

	_, _, err := storage.Open(context.Background(), cfg, zap.NewNop())

	assert.ErrorContains(t, err, "connect redis")
}
