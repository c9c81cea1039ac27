package api

import (
	"errors"
	"net/http"

	reqdto "venue-pricing/internal/handler/dto/request"
	resdto "venue-pricing/internal/handler/dto/response"
	"venue-pricing/internal/handler/httperr"
	"venue-pricing/internal/usecase"

	"github.com/gin-gonic/gin"
)

type EstimateHandler struct {
	estimateUseCase usecase.EstimateUseCase
}

func NewEstimateHandler(estimateUseCase usecase.EstimateUseCase) *EstimateHandler {
	return &EstimateHandler{
		estimateUseCase: estimateUseCase,
	}
}

// PriceBatch prices every booking of the request and returns the
// itemized batch. Per-booking failures come back as error-carrying
// estimates inside a 200 response; only a batch-level failure (catalog
// unavailable, malformed body) maps to an error status.
func (h *EstimateHandler) PriceBatch(c *gin.Context) {
	var req reqdto.PriceBatchRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	view, err := h.estimateUseCase.PriceBatch(c.Request.Context(), req.ToDomain())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBatchView(view))
}

func (h *EstimateHandler) ListRooms(c *gin.Context) {
	views, err := h.estimateUseCase.ListRooms(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomRulesViews(views))
}

func abortWithUseCaseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrCatalogUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Rate catalog is unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
