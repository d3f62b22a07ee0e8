package server

import (
	"context"
	"net/http"
	"time"

	"coinwheel/internal/config"
	"coinwheel/internal/ledger"
	"coinwheel/internal/roulette"
	"coinwheel/internal/stats"

	"github.com/gin-gonic/gin"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
}

func New(cfg *config.Config, betService roulette.Service, led *ledger.Ledger, repo *ledger.Repository, tracker *stats.Tracker, board *stats.Leaderboard) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())

	betLimiter := NewRateLimiter(cfg.BetRateRPS, cfg.BetRateBurst, 3*time.Minute)

	betHandler := roulette.NewHandler(betService, tracker, board, betLimiter)
	ledgerHandler := ledger.NewHandler(led, repo)
	statsHandler := stats.NewHandler(tracker, board)

	router.GET("/balance/:userID", betHandler.GetBalance)
	router.POST("/bets", betHandler.PlaceBet)
	router.POST("/topup", ledgerHandler.TopUp)
	router.GET("/transactions/:userID", ledgerHandler.ListTransactions)
	router.GET("/results", statsHandler.SessionResults)
	router.GET("/leaderboard", statsHandler.Leaderboard)

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())

	return &Server{router: router}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// Router exposes the underlying engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
