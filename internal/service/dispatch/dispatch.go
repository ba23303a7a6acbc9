package dispatch

import (
	"context"

	"premiumpay-service/internal/domain/notification"

	"go.uber.org/zap"
)

// Transport is the outbound messaging collaborator. The production
// implementation is the Telegram Bot API client.
type Transport interface {
	SendText(ctx context.Context, chatID int64, text string) error
	SendPhoto(ctx context.Context, chatID int64, photo []byte, filename string) error
}

// Delivery is one recipient's composed message, with an optional photo
// attachment sent ahead of the text.
type Delivery struct {
	Role      notification.RecipientRole
	ChatID    int64
	Text      string
	Photo     []byte
	PhotoName string
}

type Dispatcher struct {
	transport Transport
	logger    *zap.Logger
}

func NewDispatcher(transport Transport, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		transport: transport,
		logger:    logger,
	}
}

// Dispatch delivers each message in order, one outcome per delivery. Every
// delivery is guarded independently: a transport failure is logged and
// recorded, and never blocks the remaining recipients. A failed photo upload
// does not cancel the text that follows it.
func (d *Dispatcher) Dispatch(ctx context.Context, deliveries []Delivery) []notification.Outcome {
	outcomes := make([]notification.Outcome, 0, len(deliveries))
	for _, del := range deliveries {
		outcomes = append(outcomes, d.deliver(ctx, del))
	}
	return outcomes
}

func (d *Dispatcher) deliver(ctx context.Context, del Delivery) notification.Outcome {
	outcome := notification.Outcome{Role: del.Role}

	if len(del.Photo) > 0 {
		if err := d.transport.SendPhoto(ctx, del.ChatID, del.Photo, del.PhotoName); err != nil {
			d.logger.Warn("photo delivery failed",
				zap.String("role", string(del.Role)),
				zap.Int64("chat_id", del.ChatID),
				zap.Error(err),
			)
			outcome.ErrorDetail = "photo: " + err.Error()
		}
	}

	if err := d.transport.SendText(ctx, del.ChatID, del.Text); err != nil {
		d.logger.Warn("text delivery failed",
			zap.String("role", string(del.Role)),
			zap.Int64("chat_id", del.ChatID),
			zap.Error(err),
		)
		if outcome.ErrorDetail != "" {
			outcome.ErrorDetail += "; "
		}
		outcome.ErrorDetail += err.Error()
		return outcome
	}

	outcome.Delivered = true
	return outcome
}
