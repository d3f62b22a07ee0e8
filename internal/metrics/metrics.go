package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coinwheel_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "coinwheel_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BetsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coinwheel_bets_total",
			Help: "Total number of resolved bets",
		},
		[]string{"kind", "outcome"},
	)

	CoinsStakedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "coinwheel_coins_staked_total",
			Help: "Total coins staked across all bets",
		},
	)

	CoinsPaidOutTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "coinwheel_coins_paid_out_total",
			Help: "Total coins paid out across all bets",
		},
	)

	InsufficientFundsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "coinwheel_insufficient_funds_total",
			Help: "Total number of bets rejected for insufficient funds",
		},
	)

	SpinsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coinwheel_spins_total",
			Help: "Total number of wheel spins by winning color",
		},
		[]string{"color"},
	)

	TopUpsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "coinwheel_topups_total",
			Help: "Total number of balance top-ups",
		},
	)

	AccountBalance = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "coinwheel_account_balance_coins",
			Help: "Current account balance in coins",
		},
		[]string{"user_id"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBet(kind, outcome string, stake, payout int64) {
	BetsTotal.WithLabelValues(kind, outcome).Inc()
	CoinsStakedTotal.Add(float64(stake))
	CoinsPaidOutTotal.Add(float64(payout))
}

func RecordSpin(color string) {
	SpinsTotal.WithLabelValues(color).Inc()
}

func RecordInsufficientFunds() {
	InsufficientFundsTotal.Inc()
}

func RecordTopUp() {
	TopUpsTotal.Inc()
}

func SetAccountBalance(userID string, balance int64) {
	AccountBalance.WithLabelValues(userID).Set(float64(balance))
}
