// internal/handlers/submission/submission_handler.go
package submission

import (
	"errors"
	"net/http"

	domain "premiumpay-service/internal/domain/submission"
	xerrors "premiumpay-service/internal/pkg/errors"
	"premiumpay-service/internal/pkg/response"
	service "premiumpay-service/internal/service/submission"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SubmissionHandler struct {
	submissionService *service.Service
	logger            *zap.Logger
}

func NewSubmissionHandler(submissionService *service.Service, logger *zap.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: submissionService,
		logger:            logger,
	}
}

// Submit accepts a payment claim from the form and relays the notifications.
// The client only ever learns ok/error; which recipient deliveries succeeded
// stays server-side.
func (h *SubmissionHandler) Submit(c *gin.Context) {
	var req domain.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	result, err := h.submissionService.Submit(c.Request.Context(), &req)
	if err != nil {
		var ve *xerrors.ValidationError
		if errors.As(err, &ve) {
			h.logger.Info("submission rejected",
				zap.String("field", ve.Field),
				zap.String("reason", ve.Message),
			)
			response.ValidationError(c, ve.Message)
			return
		}

		h.logger.Error("submission failed", zap.Error(err))
		response.ServerError(c)
		return
	}

	h.logger.Debug("submission accepted", zap.String("ref", result.Ref))
	response.OK(c)
}

// Health is the liveness probe.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": "1.0.0"})
}
