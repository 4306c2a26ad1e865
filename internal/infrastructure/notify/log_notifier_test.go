package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"

	"github.com/csvshipper/csv-shipper/internal/core/domain"
)

func TestLogNotifier_WritesResetLink(t *testing.T) {
	var buf bytes.Buffer
	n := NewLogNotifier(zerolog.New(&buf))

	err := n.NotifyPasswordReset(context.Background(),
		&domain.User{ID: "u1", Email: "kasey@example.com"},
		"http://localhost:8080/auth/password-reset/abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("log line is not json: %v (%s)", err, buf.String())
	}
	if line["reset_url"] != "http://localhost:8080/auth/password-reset/abc" {
		t.Errorf("missing reset_url: %v", line)
	}
	if line["email"] != "kasey@example.com" || line["component"] != "notifier" {
		t.Errorf("unexpected fields: %v", line)
	}
}
