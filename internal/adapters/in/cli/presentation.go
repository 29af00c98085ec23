package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"
)

// Terminal palette.
var (
	colorPrimary = lipgloss.Color("#00ff88")
	colorMuted   = lipgloss.Color("#737373")
	colorWarning = lipgloss.Color("#fbbf24")
	colorInfo    = lipgloss.Color("#00ccff")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning)
	infoStyle    = lipgloss.NewStyle().Foreground(colorInfo)
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)

	successMark = color.New(color.FgGreen, color.Bold).Sprint("✓")
	failureMark = color.New(color.FgRed, color.Bold).Sprint("✗")
)

var cliWriteLine = func(w io.Writer, msg string) error {
	_, err := fmt.Fprintln(w, msg)
	return err
}

var cliWritef = func(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func cliRenderTitle(msg string) string {
	return titleStyle.Render(msg)
}

func cliRenderMuted(msg string) string {
	return mutedStyle.Render(msg)
}

func cliRenderWarning(msg string) string {
	return warningStyle.Render("! " + msg)
}

func cliRenderInfo(msg string) string {
	return infoStyle.Render(msg)
}

func cliRenderSuccess(msg string) string {
	return successMark + " " + msg
}

func cliRenderFailure(msg string) string {
	return failureMark + " " + msg
}

// cliRenderTable renders rows under headers with a rounded border.
func cliRenderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		String()
}
