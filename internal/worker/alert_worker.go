package worker

import (
	"context"
	"fmt"

	"shopstock/internal/config"
	"shopstock/internal/infra"
)

// NewLowStockAlertHandler returns the handler that mails a low-stock warning
// to the configured alert address. With no address configured the handler
// drops jobs silently.
func NewLowStockAlertHandler(mailer *infra.Mailer, cfg *config.Config) func(ctx context.Context, payload LowStockAlertPayload) error {
	return func(ctx context.Context, payload LowStockAlertPayload) error {
		if cfg.AlertEmail == "" {
			return nil
		}
		subject := fmt.Sprintf("Low stock: %s", payload.Name)
		body := fmt.Sprintf(
			"Product %q is low on stock.\n\nCurrent stock: %d\nThreshold: %d\nProduct ID: %s\n",
			payload.Name, payload.Stock, payload.Limit, payload.ProductID,
		)
		if err := mailer.Send(cfg.AlertEmail, subject, body); err != nil {
			return fmt.Errorf("send alert mail: %w", err)
		}
		return nil
	}
}
