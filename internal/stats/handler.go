package stats

import (
	"net/http"
	"strconv"

	"coinwheel/internal/api"
	"coinwheel/internal/logger"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	tracker *Tracker
	board   *Leaderboard // nil when redis is not configured
}

func NewHandler(tracker *Tracker, board *Leaderboard) *Handler {
	return &Handler{
		tracker: tracker,
		board:   board,
	}
}

// SessionResults returns the per-player results of the current process run.
func (h *Handler) SessionResults(c *gin.Context) {
	c.JSON(http.StatusOK, h.tracker.Results())
}

func (h *Handler) Leaderboard(c *gin.Context) {
	if h.board == nil {
		c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Error: "leaderboard requires redis"})
		return
	}

	n, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	entries, err := h.board.Top(c.Request.Context(), n)
	if err != nil {
		logger.Error("failed to load leaderboard", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load leaderboard"})
		return
	}

	c.JSON(http.StatusOK, entries)
}
