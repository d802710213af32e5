package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/allisson/mailinglist/internal/httputil"
)

// SubscriberHandler exposes the registration Controller over gin.
type SubscriberHandler struct {
	controller *Controller
	logger     *slog.Logger
}

// NewSubscriberHandler creates a new subscriber handler.
func NewSubscriberHandler(controller *Controller, logger *slog.Logger) *SubscriberHandler {
	return &SubscriberHandler{
		controller: controller,
		logger:     logger,
	}
}

// RegisterHandler registers a person on the mailing list.
// POST /api/register and POST /v1/subscribers.
// An empty body is treated as {}; a body that is not a JSON object is a 400.
func (h *SubscriberHandler) RegisterHandler(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("failed to read request body: %w", err), h.logger)
		return
	}

	var body map[string]any
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &body); err != nil {
			httputil.HandleBadRequestGin(c, fmt.Errorf("body must be a JSON object: %w", err), h.logger)
			return
		}
	}

	resp := h.controller.Handle(c.Request.Context(), Request{Body: body})
	c.JSON(resp.StatusCode, resp.Body)
}
