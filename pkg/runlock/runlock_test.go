package runlock

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping redis testcontainer in short mode")
	}
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("failed to start redis container: %v", err)
	}
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "6379")
	if err != nil {
		t.Fatalf("failed to get container port: %v", err)
	}

	client := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port())})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestNoop(t *testing.T) {
	var l Locker = Noop{}
	token, ok, err := l.TryLock(context.Background())
	if err != nil || !ok {
		t.Fatalf("TryLock() = %q, %v, %v", token, ok, err)
	}
	if err := l.Unlock(context.Background(), token); err != nil {
		t.Fatalf("Unlock() failed: %v", err)
	}
}

func TestRedisLocker_ExclusiveUntilReleased(t *testing.T) {
	client := setupRedis(t)
	ctx := context.Background()

	a := NewRedisLocker(client, "test:run", time.Minute)
	b := NewRedisLocker(client, "test:run", time.Minute)

	tokenA, ok, err := a.TryLock(ctx)
	if err != nil || !ok {
		t.Fatalf("first TryLock() = %v, %v", ok, err)
	}

	if _, ok, err := b.TryLock(ctx); err != nil || ok {
		t.Fatalf("second TryLock() should be refused, got ok=%v err=%v", ok, err)
	}

	// a foreign token must not release the lock
	if err := b.Unlock(ctx, "not-the-owner"); !errors.Is(err, ErrNotHeld) {
		t.Fatalf("expected ErrNotHeld, got %v", err)
	}

	if err := a.Unlock(ctx, tokenA); err != nil {
		t.Fatalf("Unlock() failed: %v", err)
	}

	if _, ok, err := b.TryLock(ctx); err != nil || !ok {
		t.Fatalf("TryLock() after release = %v, %v", ok, err)
	}
}

func TestRedisLocker_Expires(t *testing.T) {
	client := setupRedis(t)
	ctx := context.Background()

	l := NewRedisLocker(client, "test:ttl", 200*time.Millisecond)
	token, ok, err := l.TryLock(ctx)
	if err != nil || !ok {
		t.Fatalf("TryLock() = %v, %v", ok, err)
	}

	time.Sleep(400 * time.Millisecond)

	if _, ok, err := l.TryLock(ctx); err != nil || !ok {
		t.Fatalf("expected expired lock to be re-acquirable, got ok=%v err=%v", ok, err)
	}
	if err := l.Unlock(ctx, token); !errors.Is(err, ErrNotHeld) {
		t.Fatalf("expected stale token Unlock to return ErrNotHeld, got %v", err)
	}
}
