package cli

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Colours for terminal output.
var (
	colourPrimary = lipgloss.Color("#7C3AED")
	colourMuted   = lipgloss.Color("#6C7086")
	colourBorder  = lipgloss.Color("#45475A")
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colourPrimary).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	nullStyle   = cellStyle.Foreground(colourMuted)
)

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// renderTable writes rows as a bordered table on a terminal, and as
// tab-separated lines with a header row otherwise.
func renderTable(cmd *cobra.Command, headers []string, rows [][]string) {
	out := cmd.OutOrStdout()
	if !isTerminal(out) {
		writeTSV(out, headers, rows)
		return
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colourBorder)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row >= 0 && row < len(rows) && col < len(rows[row]) && rows[row][col] == "" {
				return nullStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)

	cmd.Println(t.String())
}

func writeTSV(w io.Writer, headers []string, rows [][]string) {
	if len(headers) > 0 {
		io.WriteString(w, strings.Join(headers, "\t")+"\n") //nolint:errcheck
	}
	for _, row := range rows {
		io.WriteString(w, strings.Join(row, "\t")+"\n") //nolint:errcheck
	}
}
