// Package notify delivers user-facing notifications.
package notify

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/csvshipper/csv-shipper/internal/core/domain"
	"github.com/csvshipper/csv-shipper/internal/core/ports"
)

// LogNotifier writes reset links to the structured log instead of sending
// mail. It is the only notifier shipped; operators forward the log line.
type LogNotifier struct {
	log zerolog.Logger
}

var _ ports.ResetNotifier = (*LogNotifier)(nil)

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log.With().Str("component", "notifier").Logger()}
}

func (n *LogNotifier) NotifyPasswordReset(_ context.Context, user *domain.User, resetURL string) error {
	n.log.Info().
		Str("user_id", user.ID).
		Str("email", user.Email).
		Str("reset_url", resetURL).
		Msg("password reset requested")
	return nil
}
