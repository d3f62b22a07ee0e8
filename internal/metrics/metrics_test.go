package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	HTTPRequestsTotal.Reset()
	HTTPRequestDuration.Reset()

	RecordHTTPRequest("POST", "/bets", "200", 0.02)

	count := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/bets", "200"))
	assert.Equal(t, float64(1), count)
}

func TestRecordHTTPRequestMultiple(t *testing.T) {
	HTTPRequestsTotal.Reset()

	RecordHTTPRequest("POST", "/bets", "200", 0.1)
	RecordHTTPRequest("POST", "/bets", "200", 0.2)
	RecordHTTPRequest("POST", "/bets", "402", 0.05)

	successCount := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/bets", "200"))
	rejectedCount := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/bets", "402"))

	assert.Equal(t, float64(2), successCount)
	assert.Equal(t, float64(1), rejectedCount)
}

func TestRecordBet(t *testing.T) {
	BetsTotal.Reset()

	RecordBet("number", "win", 10, 360)

	count := testutil.ToFloat64(BetsTotal.WithLabelValues("number", "win"))
	assert.Equal(t, float64(1), count)
}

func TestRecordBetMultipleOutcomes(t *testing.T) {
	BetsTotal.Reset()

	RecordBet("number", "win", 10, 360)
	RecordBet("number", "lose", 10, 0)
	RecordBet("color", "lose", 20, 0)

	numberWins := testutil.ToFloat64(BetsTotal.WithLabelValues("number", "win"))
	numberLosses := testutil.ToFloat64(BetsTotal.WithLabelValues("number", "lose"))
	colorLosses := testutil.ToFloat64(BetsTotal.WithLabelValues("color", "lose"))

	assert.Equal(t, float64(1), numberWins)
	assert.Equal(t, float64(1), numberLosses)
	assert.Equal(t, float64(1), colorLosses)
}

func TestRecordSpin(t *testing.T) {
	SpinsTotal.Reset()

	RecordSpin("red")
	RecordSpin("red")
	RecordSpin("green")

	redCount := testutil.ToFloat64(SpinsTotal.WithLabelValues("red"))
	greenCount := testutil.ToFloat64(SpinsTotal.WithLabelValues("green"))

	assert.Equal(t, float64(2), redCount)
	assert.Equal(t, float64(1), greenCount)
}

func TestRecordInsufficientFunds(t *testing.T) {
	testCounter := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "coinwheel_insufficient_funds_total_test",
			Help: "Total number of bets rejected for insufficient funds",
		},
	)

	oldCounter := InsufficientFundsTotal
	InsufficientFundsTotal = testCounter
	defer func() { InsufficientFundsTotal = oldCounter }()

	RecordInsufficientFunds()
	RecordInsufficientFunds()

	count := testutil.ToFloat64(testCounter)
	assert.Equal(t, float64(2), count)
}

func TestRecordTopUp(t *testing.T) {
	testCounter := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "coinwheel_topups_total_test",
			Help: "Total number of balance top-ups",
		},
	)

	oldCounter := TopUpsTotal
	TopUpsTotal = testCounter
	defer func() { TopUpsTotal = oldCounter }()

	RecordTopUp()

	count := testutil.ToFloat64(testCounter)
	assert.Equal(t, float64(1), count)
}

func TestSetAccountBalance(t *testing.T) {
	AccountBalance.Reset()

	SetAccountBalance("u1", 100)

	balance := testutil.ToFloat64(AccountBalance.WithLabelValues("u1"))
	assert.Equal(t, float64(100), balance)

	SetAccountBalance("u1", 450)
	balance = testutil.ToFloat64(AccountBalance.WithLabelValues("u1"))
	assert.Equal(t, float64(450), balance)
}

func TestSetAccountBalanceMultipleUsers(t *testing.T) {
	AccountBalance.Reset()

	SetAccountBalance("u1", 100)
	SetAccountBalance("u2", 80)

	balance1 := testutil.ToFloat64(AccountBalance.WithLabelValues("u1"))
	balance2 := testutil.ToFloat64(AccountBalance.WithLabelValues("u2"))

	assert.Equal(t, float64(100), balance1)
	assert.Equal(t, float64(80), balance2)
}
