package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	healthStatusOK   = "ok"
	healthStatusDown = "down"

	healthPingTimeout = 2 * time.Second
)

type healthResponse struct {
	Status string    `json:"status"`
	Store  string    `json:"store"`
	Time   time.Time `json:"time"`
}

// HandleHealth reports 503 while the store is unreachable.
func (h *handlerImpl) HandleHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
	defer cancel()

	response := healthResponse{
		Status: healthStatusOK,
		Store:  healthStatusOK,
		Time:   time.Now().UTC(),
	}

	err := h.store.Ping(ctx)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("store is unreachable")
		response.Status = healthStatusDown
		response.Store = healthStatusDown
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handlerImpl) HandleNoRoute(c *gin.Context) {
	h.abort(c, newAPIError(http.StatusNotFound, kindNotFound, "routeNotFound"))
}
