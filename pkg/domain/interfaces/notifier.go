package interfaces

import (
	"context"

	"github.com/m-mizutani/relwatch/pkg/domain/model"
)

// Notifier delivers a notification to a recipient. Delivery is at-least-once
// from the caller's point of view; a returned error means this attempt did
// not succeed.
type Notifier interface {
	Deliver(ctx context.Context, recipient string, msg *model.Notification) error
}
