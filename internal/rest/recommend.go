package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/ashlia0420/Laptop-Recommendation/domain"
	"github.com/ashlia0420/Laptop-Recommendation/pkg/logger"
	"github.com/ashlia0420/Laptop-Recommendation/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	// RecommenderService is the pipeline surface the handler depends on.
	RecommenderService interface {
		Recommend(ctx context.Context, constraints domain.HardConstraints, prefs domain.SoftPreferences) ([]domain.Recommendation, error)
		Size() int
	}

	RecommendHandler struct {
		validate *validator.Validate
		service  RecommenderService
		timeout  time.Duration
	}

	RecommendRequest struct {
		HardConstraints domain.HardConstraints `json:"hard_constraints"`
		SoftPreferences domain.SoftPreferences `json:"soft_preferences"`
	}

	RecommendResponse struct {
		Results []domain.Recommendation `json:"results"`
	}

	ResponseError struct {
		Message string `json:"message"`
	}
)

func NewRecommendHandler(service RecommenderService) *RecommendHandler {
	return &RecommendHandler{
		validate: validator.New(),
		service:  service,
		timeout:  10 * time.Second,
	}
}

// Recommend handles POST /api/v1/recommend. A valid positive budget is a
// request-layer contract: the pipeline itself tolerates its absence, so
// the gate lives here, before the pipeline is invoked.
func (h *RecommendHandler) Recommend(c echo.Context) error {
	start := time.Now()

	var req RecommendRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if h.service.Size() == 0 {
		return c.JSON(http.StatusServiceUnavailable, ResponseError{Message: "dataset not available"})
	}

	if req.HardConstraints.Number("budget") <= 0 {
		return c.JSON(http.StatusUnprocessableEntity, ResponseError{Message: "a valid budget is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	results, err := h.service.Recommend(ctx, req.HardConstraints, req.SoftPreferences)
	if err != nil {
		logger.Error("Recommendation pipeline failed", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	metrics.RecommendDuration.Observe(time.Since(start).Seconds())
	metrics.RecommendTotal.Inc()
	metrics.RecommendResults.Observe(float64(len(results)))
	if len(results) == 0 {
		metrics.RecommendEmptyTotal.Inc()
	}

	logger.Info("Recommendations served",
		"request_id", c.Get("request_id"),
		"results", len(results),
	)

	return c.JSON(http.StatusOK, fres.Response.StatusOK(RecommendResponse{Results: results}))
}
