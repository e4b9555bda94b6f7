package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/trebuchet-org/forkcfg/internal/usecase"
)

// AccountsRenderer renders the monitor network accounts
type AccountsRenderer struct {
	out   io.Writer
	color bool
}

// NewAccountsRenderer creates a new accounts renderer
func NewAccountsRenderer(out io.Writer, color bool) *AccountsRenderer {
	return &AccountsRenderer{
		out:   out,
		color: color,
	}
}

// Render renders the account list
func (r *AccountsRenderer) Render(result *usecase.ListAccountsResult) error {
	if len(result.Accounts) == 0 {
		fmt.Fprintln(r.out, "No accounts configured for the monitor network")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	if r.color {
		t.Style().Color.Header = text.Colors{text.FgCyan, text.Bold}
	}

	t.AppendHeader(table.Row{"Name", "Address"})
	for _, acct := range result.Accounts {
		address := acct.Address
		if acct.Err != nil {
			address = errorStyle.Sprintf("invalid: %v", acct.Err)
		}
		t.AppendRow(table.Row{acct.Name, address})
	}
	t.Render()

	return nil
}

// Ensure the renderer implements the interface
var _ Renderer[*usecase.ListAccountsResult] = (*AccountsRenderer)(nil)
