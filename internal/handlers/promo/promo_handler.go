// internal/handlers/promo/promo_handler.go
package promo

import (
	"errors"

	domain "premiumpay-service/internal/domain/submission"
	xerrors "premiumpay-service/internal/pkg/errors"
	"premiumpay-service/internal/pkg/response"
	service "premiumpay-service/internal/service/submission"

	"github.com/gin-gonic/gin"
)

type PromoHandler struct {
	submissionService *service.Service
}

func NewPromoHandler(submissionService *service.Service) *PromoHandler {
	return &PromoHandler{
		submissionService: submissionService,
	}
}

// Verify checks a promo id against the server-side rule. The form calls this
// before letting the buyer continue; the submission path re-checks anyway.
func (h *PromoHandler) Verify(c *gin.Context) {
	var req domain.VerifyPromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	if err := h.submissionService.VerifyPromo(req.PromoID); err != nil {
		var ve *xerrors.ValidationError
		if errors.As(err, &ve) {
			response.ValidationError(c, ve.Message)
			return
		}
		response.ServerError(c)
		return
	}

	response.OK(c)
}
