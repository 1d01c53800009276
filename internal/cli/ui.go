package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/slidegraph/pkg/errors"
)

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("203")
	colorBlue   = lipgloss.Color("75")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

var (
	// StyleTitle for section headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	styleValue       = lipgloss.NewStyle().Foreground(colorWhite)
	styleKey         = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
	styleCommand     = lipgloss.NewStyle().Foreground(colorBlue)
)

const iconArrow = "→"

// marker is a one-glyph status prefix.
type marker struct {
	icon  string
	style lipgloss.Style
	body  lipgloss.Style // applied to the message, zero value leaves it plain
}

var (
	markSuccess = marker{icon: "✓", style: lipgloss.NewStyle().Foreground(colorGreen)}
	markWarning = marker{icon: "!", style: lipgloss.NewStyle().Foreground(colorYellow), body: lipgloss.NewStyle().Foreground(colorYellow)}
	markInfo    = marker{icon: "›", style: lipgloss.NewStyle().Foreground(colorGray)}
	markError   = marker{icon: "✗", style: lipgloss.NewStyle().Foreground(colorRed).Bold(true)}
)

func (m marker) line(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, m.style.Render(m.icon)+" "+m.body.Render(fmt.Sprintf(format, args...)))
}

func printSuccess(format string, args ...any) { markSuccess.line(os.Stdout, format, args...) }
func printWarning(format string, args ...any) { markWarning.line(os.Stdout, format, args...) }
func printInfo(format string, args ...any)    { markInfo.line(os.Stdout, format, args...) }

// PrintError reports err on w without its error code prefix.
func PrintError(w io.Writer, err error) {
	markError.line(w, "%s", errors.UserMessage(err))
}

func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + styleValue.Render(path))
}

func printKeyValue(key, value string) {
	fmt.Println(styleKey.Render(key) + " " + styleValue.Render(value))
}

// printStats prints node and edge counts and whether the layout came from
// the cache, separated by dots.
func printStats(nodeCount, edgeCount int, cached bool) {
	var parts []string
	if nodeCount > 0 {
		parts = append(parts, fmt.Sprintf("%d nodes", nodeCount))
	}
	if edgeCount > 0 {
		parts = append(parts, fmt.Sprintf("%d edges", edgeCount))
	}
	status := lipgloss.NewStyle().Foreground(colorGray).Render("fresh")
	if cached {
		status = lipgloss.NewStyle().Foreground(colorGreen).Render("cached")
	}
	for i, p := range parts {
		parts[i] = StyleDim.Render(p)
	}
	parts = append(parts, status)
	fmt.Println("  " + strings.Join(parts, StyleDim.Render(" · ")))
}

// renderTable renders rows under a dim rounded border. The first column is
// highlighted.
func renderTable(headers []string, rows [][]string) string {
	cell := lipgloss.NewStyle().Padding(0, 1)
	header := cell.Foreground(colorGray).Bold(true)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return header
			case col == 0:
				return cell.Foreground(colorCyan)
			}
			return cell
		}).
		Render()
}

func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

func printNewline() { fmt.Println() }
