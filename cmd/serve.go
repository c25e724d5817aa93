package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/simonvc/minibank/internal/bank"
	"github.com/simonvc/minibank/internal/server"
	"github.com/spf13/cobra"
)

var (
	serveAddr    string
	serveID      string
	serveBalance float64
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server for a single in-memory account",
	RunE: func(cmd *cobra.Command, args []string) error {
		acct, err := newServedAccount(serveID, serveBalance)
		if err != nil {
			return err
		}
		srv := server.New(acct, serveAddr, server.WithRequestLog())
		return srv.ListenAndServe()
	},
}

// newServedAccount builds the account a server exposes. An empty id gets a random UUID.
func newServedAccount(id string, balance float64) (*bank.Locked, error) {
	if err := bank.CheckFinite(balance); err != nil {
		return nil, fmt.Errorf("--balance: %w", err)
	}
	if id == "" {
		id = uuid.New().String()
	}
	return bank.NewLocked(bank.NewAccount(id, balance)), nil
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8888", "Listen address")
	serveCmd.Flags().StringVar(&serveID, "id", "", "Account identifier (random UUID if empty)")
	serveCmd.Flags().Float64Var(&serveBalance, "balance", 0, "Starting balance")
	rootCmd.AddCommand(serveCmd)
}
