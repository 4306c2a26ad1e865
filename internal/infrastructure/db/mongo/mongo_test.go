package mongo

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestConnect_RequiresURI(t *testing.T) {
	if _, _, err := Connect(context.Background(), Config{}); err == nil {
		t.Fatalf("expected error for empty URI")
	}
}

func TestConnect_UnreachableFailsWithinTimeout(t *testing.T) {
	start := time.Now()
	_, _, err := Connect(context.Background(), Config{
		URI:     "mongodb://127.0.0.1:1/?directConnection=true",
		Timeout: 300 * time.Millisecond,
	})
	if err == nil {
		t.Fatalf("expected ping error")
	}
	if !strings.Contains(err.Error(), "mongo ping csv_shipper") {
		t.Fatalf("unexpected error: %v", err)
	}
	if time.Since(start) > 5*time.Second {
		t.Fatalf("connect ignored the timeout")
	}
}
