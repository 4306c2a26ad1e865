//go:build integration
// +build integration

package redis

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/csvshipper/csv-shipper/internal/core/domain"
)

func startRedis(ctx context.Context, t *testing.T) string {
	t.Helper()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		terminateCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		require.NoError(t, container.Terminate(terminateCtx))
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379/tcp")
	require.NoError(t, err)
	return fmt.Sprintf("%s:%s", host, port.Port())
}

func TestRedisIntegration(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, err := Connect(ctx, Config{Addr: startRedis(ctx, t)})
	require.NoError(t, err)
	defer client.Close()

	t.Run("reset tokens are single use", func(t *testing.T) {
		store := NewResetTokenStore(client)
		require.NoError(t, store.Save(ctx, "tok-1", "user-1", time.Minute))

		userID, err := store.Consume(ctx, "tok-1")
		require.NoError(t, err)
		require.Equal(t, "user-1", userID)

		_, err = store.Consume(ctx, "tok-1")
		require.True(t, errors.Is(err, domain.ErrInvalidResetToken))
	})

	t.Run("reset tokens expire", func(t *testing.T) {
		store := NewResetTokenStore(client)
		require.NoError(t, store.Save(ctx, "tok-2", "user-2", 50*time.Millisecond))
		time.Sleep(200 * time.Millisecond)

		_, err := store.Consume(ctx, "tok-2")
		require.True(t, errors.Is(err, domain.ErrInvalidResetToken))
	})

	t.Run("dedup marks notifications", func(t *testing.T) {
		dedup := NewDedupChecker(client)
		url := "https://api.shipengine.com/v1/tracking?tracking_number=1Z9"
		inTransit := map[string]any{"status_code": "IT"}
		delivered := map[string]any{"status_code": "DE"}

		dup, err := dedup.IsDuplicate(ctx, "API_TRACK", url, inTransit)
		require.NoError(t, err)
		require.False(t, dup)

		require.NoError(t, dedup.Mark(ctx, "API_TRACK", url, inTransit))

		dup, err = dedup.IsDuplicate(ctx, "API_TRACK", url, map[string]any{"status_code": "IT"})
		require.NoError(t, err)
		require.True(t, dup)

		dup, err = dedup.IsDuplicate(ctx, "API_TRACK", url, delivered)
		require.NoError(t, err)
		require.False(t, dup)
	})
}
