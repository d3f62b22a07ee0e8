package ledger

import (
	"errors"
	"net/http"
	"strconv"

	"coinwheel/internal/api"
	"coinwheel/internal/logger"
	"coinwheel/internal/metrics"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	ledger *Ledger
	repo   *Repository // nil when running memory-only
}

func NewHandler(l *Ledger, repo *Repository) *Handler {
	return &Handler{
		ledger: l,
		repo:   repo,
	}
}

type TopUpRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Amount int64  `json:"amount" binding:"required"`
}

func (h *Handler) TopUp(c *gin.Context) {
	var req TopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "amount must be positive"})
		return
	}

	balance, err := h.ledger.TopUp(c.Request.Context(), req.UserID, req.Amount)
	if err != nil {
		if errors.Is(err, ErrInvalidAmount) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("failed to top up", "user_id", req.UserID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to top up"})
		return
	}

	metrics.RecordTopUp()
	metrics.SetAccountBalance(req.UserID, balance)

	c.JSON(http.StatusOK, gin.H{
		"message": "balance recharged",
		"user_id": req.UserID,
		"balance": balance,
	})
}

func (h *Handler) ListTransactions(c *gin.Context) {
	if h.repo == nil {
		c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Error: "transaction history requires persistence"})
		return
	}

	userID := c.Param("userID")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	txs, err := h.repo.Transactions(c.Request.Context(), userID, limit, offset)
	if err != nil {
		logger.Error("failed to load transactions", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load transactions"})
		return
	}

	c.JSON(http.StatusOK, txs)
}
