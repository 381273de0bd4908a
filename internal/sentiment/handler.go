package sentiment

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sentiment-api/internal/shared/server/middleware"
	"sentiment-api/internal/shared/server/respond"
)

// Handler exposes sentiment analysis over HTTP.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes mounts the analysis endpoints on the given group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze", h.analyze)
	rg.POST("/analyze-batch", h.analyzeBatch)
}

func (h *Handler) analyze(c *gin.Context) {
	// A body that cannot be decoded is treated the same as a missing one;
	// the service reports the field-level validation error.
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		body = nil
	}

	ctx := WithRequestID(c.Request.Context(), middleware.RequestIDFromContext(c))
	result, err := h.Svc.Analyze(ctx, body)
	if err != nil {
		respondError(c, err)
		return
	}
	respond.OK(c, result)
}

func (h *Handler) analyzeBatch(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		body = nil
	}

	ctx := WithRequestID(c.Request.Context(), middleware.RequestIDFromContext(c))
	items, err := h.Svc.AnalyzeBatch(ctx, body)
	if err != nil {
		respondError(c, err)
		return
	}
	respond.OK(c, gin.H{"results": items})
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNoText),
		errors.Is(err, ErrEmptyText),
		errors.Is(err, ErrNoTexts),
		errors.Is(err, ErrTextsType),
		errors.Is(err, ErrEmptyTexts):
		respond.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	var infErr *InferenceError
	if errors.As(err, &infErr) {
		respond.Error(c, http.StatusInternalServerError, infErr.Error())
		return
	}
	respond.Error(c, http.StatusInternalServerError, "Unexpected server error")
}
