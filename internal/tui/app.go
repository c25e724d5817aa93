package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/simonvc/minibank/internal/bank"
	"github.com/simonvc/minibank/internal/client"
)

type mode int

const (
	modeView mode = iota
	modeAmount
	modeConfirmClose
)

type operation int

const (
	opDeposit operation = iota
	opWithdraw
)

func (o operation) label() string {
	if o == opWithdraw {
		return "Withdraw"
	}
	return "Deposit"
}

type accountLoadedMsg struct {
	account *bank.Snapshot
	err     error
}

// accountUpdatedMsg is sent after the server processes a deposit, withdrawal or close.
type accountUpdatedMsg struct {
	account *bank.Snapshot
	action  string
	err     error
}

type App struct {
	client        *client.Client
	mode          mode
	op            operation
	input         textinput.Model
	account       *bank.Snapshot
	loading       bool
	width, height int
	err           error
	statusMsg     string
}

func NewApp(c *client.Client) *App {
	ti := textinput.New()
	ti.Placeholder = "0.00"
	ti.CharLimit = 32
	ti.Width = 20

	return &App{
		client: c,
		mode:   modeView,
		input:  ti,
	}
}

func (a *App) Init() tea.Cmd {
	return a.load()
}

func (a *App) load() tea.Cmd {
	a.loading = true
	c := a.client
	return func() tea.Msg {
		acct, err := c.GetAccount(context.Background())
		return accountLoadedMsg{account: acct, err: err}
	}
}

func (a *App) submit(op operation, amount float64) tea.Cmd {
	c := a.client
	return func() tea.Msg {
		var (
			acct *bank.Snapshot
			err  error
		)
		switch op {
		case opWithdraw:
			acct, err = c.Withdraw(context.Background(), amount)
		default:
			acct, err = c.Deposit(context.Background(), amount)
		}
		action := fmt.Sprintf("%s of %s", strings.ToLower(op.label()), bank.FormatAmount(amount))
		return accountUpdatedMsg{account: acct, action: action, err: err}
	}
}

func (a *App) closeAccount() tea.Cmd {
	c := a.client
	return func() tea.Msg {
		acct, err := c.Close(context.Background())
		return accountUpdatedMsg{account: acct, action: "close", err: err}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case accountLoadedMsg:
		a.loading = false
		a.err = msg.err
		if msg.err == nil {
			a.account = msg.account
		}
		return a, nil

	case accountUpdatedMsg:
		if msg.err != nil {
			a.err = msg.err
			a.statusMsg = ""
			return a, nil
		}
		a.err = nil
		a.account = msg.account
		a.statusMsg = "Completed " + msg.action
		return a, nil

	case tea.KeyMsg:
		switch a.mode {
		case modeAmount:
			return a.updateAmount(msg)
		case modeConfirmClose:
			a.mode = modeView
			switch msg.String() {
			case "ctrl+c":
				return a, tea.Quit
			case "y", "Y":
				return a, a.closeAccount()
			default:
				a.statusMsg = "Close cancelled"
				return a, nil
			}
		}

		switch {
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Deposit):
			return a, a.startAmount(opDeposit)
		case key.Matches(msg, keys.Withdraw):
			return a, a.startAmount(opWithdraw)
		case key.Matches(msg, keys.Close):
			a.mode = modeConfirmClose
			a.err = nil
			a.statusMsg = ""
		case key.Matches(msg, keys.Refresh):
			return a, a.load()
		}
	}
	return a, nil
}

func (a *App) startAmount(op operation) tea.Cmd {
	a.mode = modeAmount
	a.op = op
	a.err = nil
	a.statusMsg = ""
	a.input.Reset()
	return a.input.Focus()
}

func (a *App) updateAmount(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return a, tea.Quit
	case key.Matches(msg, keys.Escape):
		a.mode = modeView
		a.input.Blur()
		a.statusMsg = a.op.label() + " cancelled"
		return a, nil
	case key.Matches(msg, keys.Enter):
		amount, err := bank.ParseAmount(a.input.Value())
		if err != nil {
			a.err = err
			return a, nil
		}
		a.mode = modeView
		a.input.Blur()
		a.err = nil
		return a, a.submit(a.op, amount)
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("minibank"))
	b.WriteString("\n")

	switch {
	case a.loading && a.account == nil:
		b.WriteString("Loading account...")
	case a.account == nil:
		b.WriteString(dimStyle.Render("No account loaded. Press r to retry."))
	default:
		b.WriteString(boxStyle.Render(a.accountView()))
	}
	b.WriteString("\n")

	switch a.mode {
	case modeAmount:
		b.WriteString(hintBoxStyle.Render(a.op.label() + " amount: " + a.input.View()))
		b.WriteString("\n")
	case modeConfirmClose:
		b.WriteString(errorStyle.Render("  Close this account? This cannot be undone. (y/n)"))
		b.WriteString("\n")
	}

	if a.err != nil {
		b.WriteString(errorStyle.Render("Error: " + a.err.Error()))
		b.WriteString("\n")
	} else if a.statusMsg != "" {
		b.WriteString(successStyle.Render(a.statusMsg))
		b.WriteString("\n")
	}

	var help string
	if a.mode == modeAmount {
		help = helpLine(keys.Enter, keys.Escape)
	} else {
		help = helpLine(keys.Deposit, keys.Withdraw, keys.Close, keys.Refresh, keys.Quit)
	}
	b.WriteString(statusBarStyle.Render(help))

	return b.String()
}

func (a *App) accountView() string {
	status := successStyle.Render(string(a.account.Status))
	if a.account.Status == bank.StatusClosed {
		status = errorStyle.Render(string(a.account.Status))
	}

	lines := []string{
		labelStyle.Render("Account") + a.account.ID,
		labelStyle.Render("Status") + status,
		labelStyle.Render("Balance") + bank.FormatAmount(a.account.Balance),
	}
	return strings.Join(lines, "\n")
}
