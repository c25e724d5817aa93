package cmd

import (
	"bytes"
	"context"
	"math"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/simonvc/minibank/internal/bank"
	"github.com/simonvc/minibank/internal/client"
	"github.com/simonvc/minibank/internal/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRunDemo(t *testing.T) {
	var out, errOut bytes.Buffer
	acct := bank.NewAccount("123456", 1000)

	runDemo(&out, &errOut, acct)

	assert.Equal(t, strings.Join([]string{
		"Initial Balance: 1000.00",
		"Balance after deposit: 1500.00",
		"Balance after withdrawal: 1300.00",
		"Final Balance: 1300.00 (closed)",
		"",
	}, "\n"), out.String())

	lines := strings.Split(strings.TrimSpace(errOut.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Exception: insufficient funds for withdrawal")
	assert.Contains(t, lines[1], "Exception: amount cannot be negative")
	assert.Contains(t, lines[2], "Exception: operation not allowed on a closed account")

	assert.Equal(t, 1300.0, acct.Balance())
	assert.Equal(t, bank.StatusClosed, acct.Status())
}

func TestDemoCommand(t *testing.T) {
	out, _, err := execute(t, "demo", "--id", "abc", "--balance", "1000")
	require.NoError(t, err)
	assert.Contains(t, out, "Initial Balance: 1000.00")
	assert.Contains(t, out, "Final Balance: 1300.00 (closed)")
}

func TestNewServedAccountGeneratesID(t *testing.T) {
	a, err := newServedAccount("", 5)
	require.NoError(t, err)
	b, err := newServedAccount("", 5)
	require.NoError(t, err)

	assert.Len(t, a.Snapshot().ID, 36)
	assert.NotEqual(t, a.Snapshot().ID, b.Snapshot().ID)
	assert.Equal(t, 5.0, a.Snapshot().Balance)

	fixed, err := newServedAccount("fixed", 0)
	require.NoError(t, err)
	assert.Equal(t, "fixed", fixed.Snapshot().ID)
}

func TestNonFiniteBalanceFlagRejected(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := newServedAccount("x", v)
		assert.ErrorIs(t, err, bank.ErrAmountOutOfRange, "balance %v", v)
	}

	t.Cleanup(func() { demoBalance = 1000 })
	out, _, err := execute(t, "demo", "--balance", "NaN")
	assert.ErrorIs(t, err, bank.ErrAmountOutOfRange)
	assert.NotContains(t, out, "Initial Balance")

	t.Cleanup(func() { serveBalance = 0 })
	_, _, err = execute(t, "serve", "--addr", "127.0.0.1:0", "--balance", "NaN")
	assert.ErrorIs(t, err, bank.ErrAmountOutOfRange)
}

func TestStartEmbeddedServer(t *testing.T) {
	urlA, stopA, err := startEmbeddedServer("first", 10)
	require.NoError(t, err)
	defer stopA()
	urlB, stopB, err := startEmbeddedServer("second", 20)
	require.NoError(t, err)
	defer stopB()

	assert.NotEqual(t, urlA, urlB)
	assert.True(t, strings.HasPrefix(urlA, "http://127.0.0.1:"))

	acct, err := client.New(urlA).GetAccount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "first", acct.ID)
	assert.Equal(t, 10.0, acct.Balance)

	acct, err = client.New(urlB).GetAccount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "second", acct.ID)

	_, _, err = startEmbeddedServer("bad", math.Inf(1))
	assert.ErrorIs(t, err, bank.ErrAmountOutOfRange)
}

func TestAccountCommands(t *testing.T) {
	srv := server.New(bank.NewLocked(bank.NewAccount("123456", 1000)), "")
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	out, _, err := execute(t, "--server", ts.URL, "account", "deposit", "500")
	require.NoError(t, err)
	assert.Contains(t, out, "Balance:  1500.00")

	out, _, err = execute(t, "--server", ts.URL, "account", "withdraw", "200")
	require.NoError(t, err)
	assert.Contains(t, out, "Balance:  1300.00")

	_, _, err = execute(t, "--server", ts.URL, "account", "withdraw", "2000")
	assert.ErrorIs(t, err, bank.ErrInsufficientFunds)

	_, _, err = execute(t, "--server", ts.URL, "account", "deposit", "--", "-50")
	assert.ErrorIs(t, err, bank.ErrNegativeAmount)

	_, _, err = execute(t, "--server", ts.URL, "account", "deposit", "lots")
	assert.Error(t, err)

	out, _, err = execute(t, "--server", ts.URL, "account", "close")
	require.NoError(t, err)
	assert.Contains(t, out, "Status:   closed")

	_, _, err = execute(t, "--server", ts.URL, "account", "withdraw", "100")
	assert.ErrorIs(t, err, bank.ErrInvalidOperation)

	out, _, err = execute(t, "--server", ts.URL, "account", "balance")
	require.NoError(t, err)
	assert.Equal(t, "Account: 123456\nBalance: 1300.00\n", out)

	out, _, err = execute(t, "--server", ts.URL, "account", "show")
	require.NoError(t, err)
	assert.Equal(t, "ID:       123456\nStatus:   closed\nBalance:  1300.00\n", out)
}
