package redis

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestConnect_RequiresAddress(t *testing.T) {
	if _, err := Connect(context.Background(), Config{}); err == nil {
		t.Fatalf("expected error for empty address")
	}
}

func TestConnect_UnreachableFailsWithinTimeout(t *testing.T) {
	start := time.Now()
	_, err := Connect(context.Background(), Config{Addr: "127.0.0.1:1", Timeout: 200 * time.Millisecond})
	if err == nil {
		t.Fatalf("expected ping error")
	}
	if !strings.Contains(err.Error(), "redis ping 127.0.0.1:1") {
		t.Fatalf("unexpected error: %v", err)
	}
	if time.Since(start) > 3*time.Second {
		t.Fatalf("connect ignored the timeout")
	}
}
