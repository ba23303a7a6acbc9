// internal/handlers/pricing/pricing_handler.go
package pricing

import (
	"premiumpay-service/internal/pkg/response"
	service "premiumpay-service/internal/service/pricing"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	pricingService *service.Service
}

func NewPricingHandler(pricingService *service.Service) *PricingHandler {
	return &PricingHandler{
		pricingService: pricingService,
	}
}

type planView struct {
	Code     string `json:"code"`
	Label    string `json:"label"`
	PriceNGN int64  `json:"price_ngn"`
	PriceUSD string `json:"price_usd"`
	EarnNGN  int64  `json:"earn_ngn"`
	EarnUSD  string `json:"earn_usd"`
}

// ListPlans returns the three plans priced at the current (or fallback)
// rate so the form can show "Price: ₦3500 ≈ $8.75".
func (h *PricingHandler) ListPlans(c *gin.Context) {
	quotes := h.pricingService.Plans(c.Request.Context())

	plans := make([]planView, 0, len(quotes))
	for _, q := range quotes {
		plans = append(plans, planView{
			Code:     string(q.Code),
			Label:    q.Pricing.PlanLabel,
			PriceNGN: q.Pricing.PriceNGN,
			PriceUSD: q.Pricing.PriceUSD,
			EarnNGN:  q.Pricing.EarnNGN,
			EarnUSD:  q.Pricing.EarnUSD,
		})
	}

	response.OK(c, gin.H{"plans": plans})
}

// GetRate returns the rate the next submission would convert at, flagging
// when the fixed fallback is in effect.
func (h *PricingHandler) GetRate(c *gin.Context) {
	rate, fallback := h.pricingService.CurrentRate(c.Request.Context())
	response.OK(c, gin.H{"rate": rate, "fallback": fallback})
}
