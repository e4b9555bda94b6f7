package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/trebuchet-org/forkcfg/internal/usecase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCase = cases.Title(language.English)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out   io.Writer
	color bool
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer, color bool) *NetworksRenderer {
	return &NetworksRenderer{
		out:   out,
		color: color,
	}
}

// RenderNetworksList renders the networks of the assembled record as a table
func (r *NetworksRenderer) RenderNetworksList(result *usecase.ListNetworksResult) error {
	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured")
		return nil
	}

	fmt.Fprintln(r.out, "🌐 Available Networks:")
	fmt.Fprintln(r.out)

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	if r.color {
		t.Style().Color.Header = text.Colors{text.FgCyan, text.Bold}
	}

	t.AppendHeader(table.Row{"Network", "Kind", "Endpoint", "Chain ID", "Accounts"})
	for _, n := range result.Networks {
		t.AppendRow(table.Row{
			n.Name,
			titleCase.String(string(n.Kind)),
			endpointCell(n.Endpoint),
			chainIDCell(n.ChainID),
			n.Accounts,
		})
	}
	t.Render()

	if !result.SecretsFound {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, FormatWarning("secrets file missing, values come from the process environment only"))
	}

	return nil
}

// RenderNetwork renders a single network descriptor
func (r *NetworksRenderer) RenderNetwork(result *usecase.ShowNetworkResult) error {
	headerStyle.Fprintf(r.out, "Network: %s\n", result.Name)
	fmt.Fprintf(r.out, "  Kind:      %s\n", titleCase.String(string(result.Summary.Kind)))
	if result.Network.URL != "" {
		fmt.Fprintf(r.out, "  URL:       %s\n", MaskURL(result.Network.URL))
	} else if !result.Network.IsFork() {
		fmt.Fprintf(r.out, "  URL:       %s\n", faintStyle.Sprint("(not set)"))
	}
	if result.Network.IsFork() {
		fmt.Fprintf(r.out, "  Fork from: %s\n", MaskURL(result.Network.Forking.URL))
	}
	if result.Network.ChainID != nil {
		fmt.Fprintf(r.out, "  Chain ID:  %d\n", *result.Network.ChainID)
	}
	if len(result.Network.Accounts) > 0 {
		fmt.Fprintf(r.out, "  Accounts:  %d\n", len(result.Network.Accounts))
		for _, acct := range result.Network.Accounts {
			fmt.Fprintf(r.out, "    - %s\n", MaskValue(acct))
		}
	}
	return nil
}

func endpointCell(endpoint string) string {
	if endpoint == "" {
		return "-"
	}
	return MaskURL(endpoint)
}

func chainIDCell(chainID *uint64) string {
	if chainID == nil {
		return "-"
	}
	return strconv.FormatUint(*chainID, 10)
}
