// Package dispatch delivers placed-order notifications to the outside
// world. The HTTP layer is fire-and-forget: a dispatch failure never
// fails the checkout itself.
package dispatch

import (
	"context"

	"go.uber.org/zap"

	"github.com/CimeM/shellLeatherStore/internal/app/store/checkout"
)

// Dispatcher sends an order summary to a notification channel.
type Dispatcher interface {
	Dispatch(ctx context.Context, summary *checkout.OrderSummary, mailtoLink string) error
}

// LogDispatcher writes order notifications to the application log.
// Used when no message broker is configured.
type LogDispatcher struct {
	logger *zap.Logger
}

// NewLogDispatcher creates a log-only dispatcher.
func NewLogDispatcher(logger *zap.Logger) *LogDispatcher {
	return &LogDispatcher{logger: logger}
}

// Dispatch logs the order instead of delivering it anywhere.
func (d *LogDispatcher) Dispatch(_ context.Context, summary *checkout.OrderSummary, mailtoLink string) error {
	d.logger.Info("order placed",
		zap.String("customer", summary.Customer.FullName),
		zap.String("email", summary.Customer.Email),
		zap.Int("lines", len(summary.Lines)),
		zap.String("total", summary.Total.String()),
		zap.String("mailto", mailtoLink),
	)
	return nil
}
