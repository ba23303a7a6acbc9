package pricing

import (
	"context"

	domain "premiumpay-service/internal/domain/pricing"
	"premiumpay-service/internal/rates"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// RateSource provides the NGN→USD conversion rate.
type RateSource interface {
	USDRate(ctx context.Context) (float64, error)
}

type Service struct {
	rateSource RateSource
	logger     *zap.Logger
}

func NewService(rateSource RateSource, logger *zap.Logger) *Service {
	return &Service{
		rateSource: rateSource,
		logger:     logger,
	}
}

// Resolve derives the full pricing for one submission. The table lookup is
// total (unknown codes price to zero) and the rate lookup is attempted
// exactly once, degrading to the fixed fallback on any failure, so Resolve
// never fails.
func (s *Service) Resolve(ctx context.Context, code domain.PlanCode) domain.Resolved {
	entry := domain.Lookup(code)
	rate, fallback := s.CurrentRate(ctx)

	return domain.Resolved{
		PlanLabel:    code.Label(),
		PriceNGN:     entry.PriceNGN,
		EarnNGN:      entry.EarnNGN,
		PriceUSD:     ConvertNGN(entry.PriceNGN, rate),
		EarnUSD:      ConvertNGN(entry.EarnNGN, rate),
		Rate:         rate,
		RateFallback: fallback,
	}
}

// CurrentRate returns the live NGN→USD rate, or the fixed fallback when the
// provider is unreachable, slow or returns garbage.
func (s *Service) CurrentRate(ctx context.Context) (rate float64, fallback bool) {
	rate, err := s.rateSource.USDRate(ctx)
	if err != nil {
		s.logger.Warn("exchange rate lookup failed, using fallback",
			zap.Float64("fallback_rate", rates.FallbackUSDRate),
			zap.Error(err),
		)
		return rates.FallbackUSDRate, true
	}
	return rate, false
}

// PlanQuote pairs a plan code with its resolved pricing for list views.
type PlanQuote struct {
	Code    domain.PlanCode
	Pricing domain.Resolved
}

// Plans lists every plan with its NGN amounts and USD conversions at the
// current rate, for the form's price display. One rate lookup covers all
// three plans.
func (s *Service) Plans(ctx context.Context) []PlanQuote {
	rate, fallback := s.CurrentRate(ctx)

	codes := []domain.PlanCode{domain.PlanWeek, domain.PlanTwoWeeks, domain.PlanForever}
	out := make([]PlanQuote, 0, len(codes))
	for _, code := range codes {
		entry := domain.Lookup(code)
		out = append(out, PlanQuote{
			Code: code,
			Pricing: domain.Resolved{
				PlanLabel:    code.Label(),
				PriceNGN:     entry.PriceNGN,
				EarnNGN:      entry.EarnNGN,
				PriceUSD:     ConvertNGN(entry.PriceNGN, rate),
				EarnUSD:      ConvertNGN(entry.EarnNGN, rate),
				Rate:         rate,
				RateFallback: fallback,
			},
		})
	}
	return out
}

// ConvertNGN renders amountNGN * rate with two decimals, rounding half away
// from zero.
func ConvertNGN(amountNGN int64, rate float64) string {
	return decimal.NewFromInt(amountNGN).
		Mul(decimal.NewFromFloat(rate)).
		StringFixed(2)
}
