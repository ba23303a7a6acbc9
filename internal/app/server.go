// internal/app/server.go
package app

import (
	"fmt"
	"log"
	"time"

	"premiumpay-service/internal/config"
	pricingHandler "premiumpay-service/internal/handlers/pricing"
	promoHandler "premiumpay-service/internal/handlers/promo"
	submissionHandler "premiumpay-service/internal/handlers/submission"
	"premiumpay-service/internal/middleware"
	"premiumpay-service/internal/rates"
	"premiumpay-service/internal/service/dispatch"
	pricingUsecase "premiumpay-service/internal/service/pricing"
	submissionUsecase "premiumpay-service/internal/service/submission"
	"premiumpay-service/internal/telegram"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
}

func NewServer(cfg config.AppConfig) *Server {
	engine := gin.New()
	return &Server{cfg: cfg, engine: engine}
}

func (s *Server) Start() error {
	// ----- Logger -----
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()
	s.logger = logger

	// ----- Outbound collaborators -----
	transport := telegram.NewClient(s.cfg.TelegramToken, s.cfg.TelegramAPIBase, 30*time.Second)
	rateClient := rates.NewClient(s.cfg.RateURL, s.cfg.RateTimeout)

	// ----- Services (Usecases) -----
	pricingService := pricingUsecase.NewService(rateClient, logger)
	dispatcher := dispatch.NewDispatcher(transport, logger)
	submissionService := submissionUsecase.NewService(pricingService, dispatcher, s.cfg, logger)

	// ----- Handlers -----
	submissionHandlerInst := submissionHandler.NewSubmissionHandler(submissionService, logger)
	promoHandlerInst := promoHandler.NewPromoHandler(submissionService)
	pricingHandlerInst := pricingHandler.NewPricingHandler(pricingService)

	// ----- Middlewares -----
	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
		middleware.CORSMiddleware(),
	)

	// ----- Router -----
	handlers := &Handlers{
		SubmissionHandler: submissionHandlerInst,
		PromoHandler:      promoHandlerInst,
		PricingHandler:    pricingHandlerInst,
	}
	SetupRouter(s.engine, s.cfg, handlers)

	// ----- Start HTTP -----
	log.Printf("🚀 Server running on %s", s.cfg.HTTPAddr)
	return s.engine.Run(s.cfg.HTTPAddr)
}
