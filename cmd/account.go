package cmd

import (
	"context"
	"fmt"

	"github.com/simonvc/minibank/internal/bank"
	"github.com/simonvc/minibank/internal/client"
	"github.com/spf13/cobra"
)

var accountCmd = &cobra.Command{
	Use:     "account",
	Aliases: []string{"acct"},
	Short:   "Operate on the served account",
}

// account show
var accountShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show account details",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer)

		acct, err := c.GetAccount(context.Background())
		if err != nil {
			return err
		}

		printAccount(cmd, acct)
		return nil
	},
}

// account balance
var accountBalanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Get account balance",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer)

		bal, err := c.GetBalance(context.Background())
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Account: %s\n", bal.AccountID)
		fmt.Fprintf(cmd.OutOrStdout(), "Balance: %s\n", bal.Formatted)
		return nil
	},
}

// account deposit
var accountDepositCmd = &cobra.Command{
	Use:   "deposit [amount]",
	Short: "Deposit funds",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := bank.ParseAmount(args[0])
		if err != nil {
			return err
		}

		acct, err := client.New(flagServer).Deposit(context.Background(), amount)
		if err != nil {
			return fmt.Errorf("deposit %s: %w", bank.FormatAmount(amount), err)
		}

		printAccount(cmd, acct)
		return nil
	},
}

// account withdraw
var accountWithdrawCmd = &cobra.Command{
	Use:   "withdraw [amount]",
	Short: "Withdraw funds",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := bank.ParseAmount(args[0])
		if err != nil {
			return err
		}

		acct, err := client.New(flagServer).Withdraw(context.Background(), amount)
		if err != nil {
			return fmt.Errorf("withdraw %s: %w", bank.FormatAmount(amount), err)
		}

		printAccount(cmd, acct)
		return nil
	},
}

// account close
var accountCloseCmd = &cobra.Command{
	Use:   "close",
	Short: "Close the account; deposits and withdrawals are refused afterwards",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		acct, err := client.New(flagServer).Close(context.Background())
		if err != nil {
			return err
		}

		printAccount(cmd, acct)
		return nil
	},
}

func printAccount(cmd *cobra.Command, acct *bank.Snapshot) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ID:       %s\n", acct.ID)
	fmt.Fprintf(out, "Status:   %s\n", acct.Status)
	fmt.Fprintf(out, "Balance:  %s\n", bank.FormatAmount(acct.Balance))
}

func init() {
	accountCmd.AddCommand(accountShowCmd)
	accountCmd.AddCommand(accountBalanceCmd)
	accountCmd.AddCommand(accountDepositCmd)
	accountCmd.AddCommand(accountWithdrawCmd)
	accountCmd.AddCommand(accountCloseCmd)

	rootCmd.AddCommand(accountCmd)
}
