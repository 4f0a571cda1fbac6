package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/demobank/banking-api/internal/core/domain"
	"github.com/demobank/banking-api/internal/core/ports"
)

type trafficResponse struct {
	Reads  int64             `json:"reads"`
	Writes int64             `json:"writes"`
	Total  int64             `json:"total"`
	Recent []domain.LogEntry `json:"recent"`
}

// TrafficHandler serves the read/write traffic dashboard.
type TrafficHandler struct {
	service ports.TrafficService
}

func NewTrafficHandler(service ports.TrafficService) *TrafficHandler {
	return &TrafficHandler{service: service}
}

// Overview handles GET /traffic/stats.
func (h *TrafficHandler) Overview(c echo.Context) error {
	result, err := h.service.Overview(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, trafficResponse{
		Reads:  result.Stats.Reads,
		Writes: result.Stats.Writes,
		Total:  result.Stats.Total,
		Recent: result.Recent,
	})
}
