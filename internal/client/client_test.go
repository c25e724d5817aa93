package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/simonvc/minibank/internal/bank"
	"github.com/simonvc/minibank/internal/client"
	"github.com/simonvc/minibank/internal/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, id string, balance float64) *client.Client {
	t.Helper()
	srv := server.New(bank.NewLocked(bank.NewAccount(id, balance)), "")
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return client.New(ts.URL)
}

func TestPing(t *testing.T) {
	c := newClient(t, "ping", 0)
	assert.NoError(t, c.Ping(context.Background()))
}

func TestPingUnreachable(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	assert.Error(t, client.New(url).Ping(context.Background()))
}

func TestScenario(t *testing.T) {
	ctx := context.Background()
	c := newClient(t, "123456", 1000)

	snap, err := c.Deposit(ctx, 500)
	require.NoError(t, err)
	assert.Equal(t, 1500.0, snap.Balance)

	snap, err = c.Withdraw(ctx, 200)
	require.NoError(t, err)
	assert.Equal(t, 1300.0, snap.Balance)

	_, err = c.Withdraw(ctx, 2000)
	assert.ErrorIs(t, err, bank.ErrInsufficientFunds)
	assert.Contains(t, err.Error(), "422")

	_, err = c.Deposit(ctx, -50)
	assert.ErrorIs(t, err, bank.ErrNegativeAmount)

	snap, err = c.Close(ctx)
	require.NoError(t, err)
	assert.Equal(t, bank.StatusClosed, snap.Status)

	_, err = c.Withdraw(ctx, 100)
	assert.ErrorIs(t, err, bank.ErrInvalidOperation)

	got, err := c.GetAccount(ctx)
	require.NoError(t, err)
	want := &bank.Snapshot{ID: "123456", Balance: 1300, Status: bank.StatusClosed}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("account mismatch (-want +got):\n%s", diff)
	}
}

func TestGetBalance(t *testing.T) {
	c := newClient(t, "bal", 12.5)

	bal, err := c.GetBalance(context.Background())
	require.NoError(t, err)
	want := &client.BalanceResponse{AccountID: "bal", Balance: 12.5, Formatted: "12.50"}
	if diff := cmp.Diff(want, bal); diff != "" {
		t.Errorf("balance mismatch (-want +got):\n%s", diff)
	}
}

func TestServerErrorWithoutKind(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"boom"}`))
	}))
	defer ts.Close()

	_, err := client.New(ts.URL).GetAccount(context.Background())
	require.Error(t, err)
	assert.Equal(t, "server error (500): boom", err.Error())
	assert.Equal(t, bank.Kind(""), bank.KindOf(err))
}

func TestDepositOverflowRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newClient(t, "big", 1e308)

	_, err := c.Deposit(ctx, 1e308)
	assert.ErrorIs(t, err, bank.ErrAmountOutOfRange)

	acct, err := c.GetAccount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1e308, acct.Balance)
}
