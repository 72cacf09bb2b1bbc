package testutils

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestRedisConfig holds connection settings for a test Redis instance
type TestRedisConfig struct {
	Addr string
	DB   int
}

// DefaultTestRedisConfig reads ROLLBONUS_TEST_REDIS_ADDR, falling back to localhost.
// DB 15 keeps tests apart from development data.
func DefaultTestRedisConfig() *TestRedisConfig {
	addr := os.Getenv("ROLLBONUS_TEST_REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	return &TestRedisConfig{Addr: addr, DB: 15}
}

// CreateTestRedisClient connects to cfg, skipping the test when nothing answers.
// The database is flushed before and after the test.
func CreateTestRedisClient(t *testing.T, cfg *TestRedisConfig) redis.UniversalClient {
	t.Helper()
	if cfg == nil {
		cfg = DefaultTestRedisConfig()
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.Addr, DB: cfg.DB})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		t.Skipf("Redis not available for testing: %v", err)
	}

	require.NoError(t, client.FlushDB(ctx).Err(), "Failed to flush test Redis database")

	t.Cleanup(func() {
		_ = client.FlushDB(context.Background()).Err()
		_ = client.Close()
	})

	return client
}

// CreateTestRedisClientOrSkip connects to the default test instance or skips
func CreateTestRedisClientOrSkip(t *testing.T) redis.UniversalClient {
	t.Helper()
	return CreateTestRedisClient(t, nil)
}

// StartRedisContainer runs redis in a throwaway container and returns a
// connected client. Tests are skipped when Docker is unavailable.
func StartRedisContainer(t *testing.T) redis.UniversalClient {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor: wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("starting redis container: %v", err)
	}
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	host, err := container.Host(ctx)
	require.NoError(t, err, "getting container host")
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err, "getting mapped port")

	addr := fmt.Sprintf("%s:%s", host, port.Port())
	require.NoError(t, WaitForRedis(addr, 10*time.Second))

	return CreateTestRedisClient(t, &TestRedisConfig{Addr: addr})
}

// WaitForRedis polls addr until it answers a ping or timeout elapses
func WaitForRedis(addr string, timeout time.Duration) error {
	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		err := client.Ping(ctx).Err()
		cancel()

		if err == nil {
			return nil
		}

		time.Sleep(100 * time.Millisecond)
	}

	return fmt.Errorf("redis not ready after %v", timeout)
}
