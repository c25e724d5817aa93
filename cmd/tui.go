package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"time"

	"github.com/simonvc/minibank/internal/client"
	"github.com/simonvc/minibank/internal/server"
	"github.com/simonvc/minibank/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	tuiID      string
	tuiBalance float64
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	RunE: func(cmd *cobra.Command, args []string) error {
		serverAddr := flagServer

		if !cmd.Flags().Changed("server") {
			addr, stop, err := startEmbeddedServer(tuiID, tuiBalance)
			if err != nil {
				return err
			}
			defer stop()
			serverAddr = addr
		}

		c := client.New(serverAddr)
		app := tui.NewApp(c)
		p := tea.NewProgram(app, tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

// startEmbeddedServer serves a fresh account on a random loopback port and
// waits until it answers. It returns the base URL and a func that stops it.
func startEmbeddedServer(id string, balance float64) (string, func(), error) {
	acct, err := newServedAccount(id, balance)
	if err != nil {
		return "", nil, err
	}

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", nil, fmt.Errorf("listen for embedded server: %w", err)
	}

	srv := server.New(acct, ln.Addr().String())
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, net.ErrClosed) {
			log.Printf("embedded server error: %v", err)
		}
	}()
	stop := func() { ln.Close() }
	baseURL := "http://" + ln.Addr().String()

	// Wait for server to be ready
	c := client.New(baseURL)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for {
		if err := c.Ping(ctx); err == nil {
			break
		}
		if ctx.Err() != nil {
			stop()
			return "", nil, fmt.Errorf("timeout waiting for embedded server")
		}
		time.Sleep(50 * time.Millisecond)
	}

	return baseURL, stop, nil
}

func init() {
	tuiCmd.Flags().StringVar(&tuiID, "id", "", "Embedded account identifier (random UUID if empty)")
	tuiCmd.Flags().Float64Var(&tuiBalance, "balance", 0, "Embedded account starting balance")
	rootCmd.AddCommand(tuiCmd)
}
