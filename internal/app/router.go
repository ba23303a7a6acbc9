// internal/app/router.go
package app

import (
	"premiumpay-service/internal/config"
	pricingHandler "premiumpay-service/internal/handlers/pricing"
	promoHandler "premiumpay-service/internal/handlers/promo"
	submissionHandler "premiumpay-service/internal/handlers/submission"
	"premiumpay-service/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	SubmissionHandler *submissionHandler.SubmissionHandler
	PromoHandler      *promoHandler.PromoHandler
	PricingHandler    *pricingHandler.PricingHandler
}

func SetupRouter(r *gin.Engine, cfg config.AppConfig, h *Handlers) {
	// ==================== Health Check ====================
	r.GET("/health", submissionHandler.Health)

	// ==================== Payment Submission ====================
	r.POST("/send",
		middleware.BodySizeLimit(cfg.MaxBodyBytes),
		h.SubmissionHandler.Submit,
	)

	// ==================== Promo Verification ====================
	r.POST("/promo/verify", h.PromoHandler.Verify)

	// ==================== Pricing ====================
	r.GET("/plans", h.PricingHandler.ListPlans)
	r.GET("/rates", h.PricingHandler.GetRate)
}
