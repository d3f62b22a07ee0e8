package roulette

import (
	"errors"
	"net/http"

	"coinwheel/internal/api"
	"coinwheel/internal/ledger"
	"coinwheel/internal/logger"
	"coinwheel/internal/metrics"
	"coinwheel/internal/stats"

	"github.com/gin-gonic/gin"
)

// Limiter bounds how fast a single user may place bets. Satisfied by
// server.RateLimiter.
type Limiter interface {
	Allow(key string) bool
}

type Handler struct {
	service Service
	tracker *stats.Tracker
	board   *stats.Leaderboard // nil when redis is not configured
	limiter Limiter            // nil disables the per-user bound
}

func NewHandler(service Service, tracker *stats.Tracker, board *stats.Leaderboard, limiter Limiter) *Handler {
	return &Handler{
		service: service,
		tracker: tracker,
		board:   board,
		limiter: limiter,
	}
}

type PlaceBetRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Kind   string `json:"kind" validate:"required,oneof=number color"`
	Number int    `json:"number" validate:"gte=0,lte=36"`
	Color  string `json:"color"`
	Stake  int64  `json:"stake" validate:"required,gt=0"`
}

func (h *Handler) PlaceBet(c *gin.Context) {
	var req PlaceBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		return
	}

	if errs := api.ValidateStruct(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": errs})
		return
	}

	if h.limiter != nil && !h.limiter.Allow(req.UserID) {
		c.JSON(http.StatusTooManyRequests, api.ErrorResponse{Error: "too many bets, try again"})
		return
	}

	result, err := h.service.PlaceBet(c.Request.Context(), BetRequest{
		UserID: req.UserID,
		Kind:   BetKind(req.Kind),
		Number: req.Number,
		Color:  Color(req.Color),
		Stake:  req.Stake,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidBet):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ledger.ErrInsufficientFunds):
			metrics.RecordInsufficientFunds()
			c.JSON(http.StatusPaymentRequired, api.ErrorResponse{Error: err.Error()})
		default:
			logger.Error("failed to resolve bet", "user_id", req.UserID, "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to resolve bet"})
		}
		return
	}

	h.record(c, req.UserID, result)

	c.JSON(http.StatusOK, result)
}

func (h *Handler) record(c *gin.Context, userID string, result *BetResult) {
	outcome := "lose"
	if result.Won() {
		outcome = "win"
	}
	metrics.RecordBet(string(result.Kind), outcome, result.Stake, result.Payout)
	metrics.RecordSpin(string(result.SlotColor))
	metrics.SetAccountBalance(userID, result.NewBalance)

	h.tracker.Record(userID, result.Payout, result.NewBalance)

	if h.board != nil {
		if err := h.board.Record(c.Request.Context(), userID, result.Payout-result.Stake); err != nil {
			logger.Error("failed to record leaderboard entry", "user_id", userID, "error", err)
		}
	}

	logger.Info("bet resolved",
		"user_id", userID,
		"kind", result.Kind,
		"slot", result.Slot,
		"slot_color", result.SlotColor,
		"stake", result.Stake,
		"payout", result.Payout,
		"new_balance", result.NewBalance,
	)
}

func (h *Handler) GetBalance(c *gin.Context) {
	userID := c.Param("userID")

	balance, err := h.service.GetBalance(c.Request.Context(), userID)
	if err != nil {
		logger.Error("failed to load balance", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load balance"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user_id": userID, "balance": balance})
}
