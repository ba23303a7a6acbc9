package submission

import (
	"context"

	"premiumpay-service/internal/config"
	"premiumpay-service/internal/domain/notification"
	pricingdomain "premiumpay-service/internal/domain/pricing"
	domain "premiumpay-service/internal/domain/submission"
	"premiumpay-service/internal/service/compose"
	"premiumpay-service/internal/service/dispatch"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// Pricer resolves a plan code into full per-submission pricing.
type Pricer interface {
	Resolve(ctx context.Context, code pricingdomain.PlanCode) pricingdomain.Resolved
}

// Sender fans a set of composed deliveries out to their recipients.
type Sender interface {
	Dispatch(ctx context.Context, deliveries []dispatch.Delivery) []notification.Outcome
}

type Service struct {
	pricer     Pricer
	dispatcher Sender
	cfg        config.AppConfig
	logger     *zap.Logger
}

func NewService(pricer Pricer, dispatcher Sender, cfg config.AppConfig, logger *zap.Logger) *Service {
	return &Service{
		pricer:     pricer,
		dispatcher: dispatcher,
		cfg:        cfg,
		logger:     logger,
	}
}

// Result is the aggregated outcome of one submission. Only OK-ness reaches
// the client; the per-recipient outcomes feed the logs.
type Result struct {
	Ref      string
	Outcomes []notification.Outcome
}

// Submit runs the full pipeline: validate, price, compose, dispatch.
// Validation failure stops everything before any outbound call. Once
// dispatch starts the submission is accepted: delivery failures are recorded
// and logged but never surfaced.
func (s *Service) Submit(ctx context.Context, req *domain.SubmitRequest) (*Result, error) {
	sub, err := validate(req, s.cfg.PromoAllowList)
	if err != nil {
		return nil, err
	}
	sub.Ref = ulid.Make().String()

	priced := s.pricer.Resolve(ctx, sub.Plan)
	bundle := compose.Render(sub, priced, s.cfg.ModeratorContact)

	deliveries := []dispatch.Delivery{
		{
			Role:      notification.RoleAdmin,
			ChatID:    s.cfg.AdminChatID,
			Text:      bundle.AdminText,
			Photo:     bundle.Proof,
			PhotoName: bundle.ProofName,
		},
		{
			Role:   notification.RoleBuyer,
			ChatID: sub.Buyer.ID,
			Text:   bundle.BuyerText,
		},
		{
			Role:   notification.RolePromoOwner,
			ChatID: sub.PromoChatID,
			Text:   bundle.PromoText,
		},
	}

	// A client disconnect must not abort in-flight deliveries.
	outcomes := s.dispatcher.Dispatch(context.WithoutCancel(ctx), deliveries)

	s.logger.Info("payment submission relayed",
		zap.String("ref", sub.Ref),
		zap.Int64("buyer_id", sub.Buyer.ID),
		zap.String("plan", string(sub.Plan)),
		zap.String("promo_id", sub.PromoID),
		zap.Bool("rate_fallback", priced.RateFallback),
		zap.Bool("all_delivered", notification.Delivered(outcomes)),
	)

	return &Result{Ref: sub.Ref, Outcomes: outcomes}, nil
}

// VerifyPromo applies the same server-side promo rule the submission path
// uses, for the form's verification step.
func (s *Service) VerifyPromo(promoID string) error {
	_, err := validatePromo(promoID, s.cfg.PromoAllowList)
	return err
}
