package redis

import (
	"context"
	"io"
	"strconv"
	"testing"

	"payment-log/config"
	"payment-log/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func redisConfigFor(t *testing.T, s *miniredis.Miniredis) config.RedisConfig {
	t.Helper()
	port, err := strconv.Atoi(s.Port())
	require.NoError(t, err)
	return config.RedisConfig{Host: s.Host(), Port: port}
}

func TestNewClient_Connects(t *testing.T) {
	s := miniredis.RunT(t)
	cfg := redisConfigFor(t, s)

	client, err := NewClient(context.Background(), cfg, logger.NewWithWriter("error", io.Discard))
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, NewHealthCheck(client).Ping(context.Background()))
	assert.Equal(t, "redis", NewHealthCheck(client).Name())
}

func TestNewClient_Unreachable(t *testing.T) {
	s := miniredis.RunT(t)
	cfg := redisConfigFor(t, s)
	s.Close()

	_, err := NewClient(context.Background(), cfg, logger.NewWithWriter("error", io.Discard))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pinging redis")
}

func TestRedisAddr(t *testing.T) {
	cfg := config.RedisConfig{
		Host: "redis.example.com",
		Port: 6380,
	}

	assert.Equal(t, "redis.example.com:6380", cfg.Addr())
	assert.True(t, cfg.Enabled())
	assert.False(t, config.RedisConfig{}.Enabled())
}
