package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"eventsapi/internal/delivery/http/hal"
	"eventsapi/internal/delivery/http/helpers"
)

// HealthCheck probes one dependency.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// HealthResponse is the body of GET /health.
// swagger:model HealthResponse
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

type IndexController struct {
	Logger  *slog.Logger
	BaseURL string
	Checks  []HealthCheck
	// Timeout bounds all checks of one health request.
	Timeout time.Duration
}

func NewIndexController(logger *slog.Logger, baseURL string, timeout time.Duration, checks ...HealthCheck) *IndexController {
	return &IndexController{
		Logger:  logger,
		BaseURL: baseURL,
		Checks:  checks,
		Timeout: timeout,
	}
}

// Index godoc
// @Summary API entry point
// @Description Returns links to the resources of the API.
// @ID index
// @Tags index
// @Produce application/hal+json
// @Success 200 {object} hal.IndexResource "links to the event collection"
// @Router /api [get]
func (c *IndexController) Index(w http.ResponseWriter, r *http.Request) {
	helpers.WriteHAL(w, http.StatusOK, hal.NewIndexResource(helpers.BaseURL(r, c.BaseURL)))
}

// Health godoc
// @Summary Health check
// @Description Pings the database and, when configured, the cache.
// @ID health
// @Tags index
// @Produce json
// @Success 200 {object} controllers.HealthResponse "status ok"
// @Failure 503 {object} controllers.HealthResponse "status unavailable with the failing checks"
// @Router /health [get]
func (c *IndexController) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}
	resp := HealthResponse{Status: "ok"}
	for _, hc := range c.Checks {
		if err := hc.Check(ctx); err != nil {
			c.Logger.WarnContext(r.Context(), "health check failed", "check", hc.Name, "err", err)
			if resp.Checks == nil {
				resp.Checks = map[string]string{}
			}
			resp.Checks[hc.Name] = err.Error()
			resp.Status = "unavailable"
		}
	}
	if resp.Status != "ok" {
		helpers.WriteJSON(w, http.StatusServiceUnavailable, resp)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, resp)
}
