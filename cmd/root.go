package cmd

import (
	"github.com/spf13/cobra"
)

var flagServer string

var rootCmd = &cobra.Command{
	Use:   "minibank",
	Short: "Single in-memory bank account with deposit, withdraw and close",
	Long:  "A single in-memory bank account that can be exercised directly (demo), served over HTTP (serve), or driven from the CLI and a terminal UI.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagServer, "server", "http://localhost:8888", "Server address")
}

func Execute() error {
	return rootCmd.Execute()
}
