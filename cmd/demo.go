package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/simonvc/minibank/internal/bank"
	"github.com/spf13/cobra"
)

var (
	demoID      string
	demoBalance float64
)

var exceptionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the deposit/withdraw/close walkthrough against a local account",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bank.CheckFinite(demoBalance); err != nil {
			return fmt.Errorf("--balance: %w", err)
		}
		runDemo(cmd.OutOrStdout(), cmd.ErrOrStderr(), bank.NewAccount(demoID, demoBalance))
		return nil
	},
}

// runDemo walks acct through a deposit, a withdrawal, and each of the three
// rejection kinds. Rejections are reported on errOut and never abort the run.
func runDemo(out, errOut io.Writer, acct *bank.Account) {
	report := func(err error) {
		if err != nil {
			fmt.Fprintln(errOut, exceptionStyle.Render("Exception: "+err.Error()))
		}
	}

	report(func() error {
		fmt.Fprintf(out, "Initial Balance: %s\n", bank.FormatAmount(acct.Balance()))
		if err := acct.Deposit(500); err != nil {
			return err
		}
		fmt.Fprintf(out, "Balance after deposit: %s\n", bank.FormatAmount(acct.Balance()))
		if err := acct.Withdraw(200); err != nil {
			return err
		}
		fmt.Fprintf(out, "Balance after withdrawal: %s\n", bank.FormatAmount(acct.Balance()))
		return acct.Withdraw(2000)
	}())

	report(acct.Deposit(-50))

	acct.Close()
	report(acct.Withdraw(100))

	fmt.Fprintf(out, "Final Balance: %s (%s)\n", bank.FormatAmount(acct.Balance()), acct.Status())
}

func init() {
	demoCmd.Flags().StringVar(&demoID, "id", "123456", "Account identifier")
	demoCmd.Flags().Float64Var(&demoBalance, "balance", 1000, "Starting balance")
	rootCmd.AddCommand(demoCmd)
}
