package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bricker/internal/core"
)

// palette maps arena colors to 256-color terminal indexes.
var palette = map[core.Color]lipgloss.Color{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// cellStyles holds one foreground style per palette entry.
var cellStyles = func() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style, len(palette)+1)
	styles[core.ColorDefault] = lipgloss.NewStyle()
	for c, fg := range palette {
		styles[c] = lipgloss.NewStyle().Foreground(fg)
	}
	return styles
}()

var (
	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 4).
			Align(lipgloss.Center)

	dialogTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(palette[core.ColorBrightWhite])

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func paint(c core.Color, text string) string {
	style, ok := cellStyles[c]
	if !ok {
		style = cellStyles[core.ColorDefault]
	}
	return style.Render(text)
}

// RenderScreen turns the arena's cell buffer into styled terminal rows.
func RenderScreen(s *core.Screen) string {
	rows := make([]string, s.Height())
	for y := range rows {
		rows[y] = renderRow(s, y)
	}
	return strings.Join(rows, "\n")
}

// renderRow emits one styled segment per run of equally colored cells.
func renderRow(s *core.Screen, y int) string {
	var sb strings.Builder
	run := make([]rune, 0, s.Width())
	color := core.ColorDefault

	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if cell.Color != color && len(run) > 0 {
			sb.WriteString(paint(color, string(run)))
			run = run[:0]
		}
		color = cell.Color
		run = append(run, cell.Rune)
	}
	if len(run) > 0 {
		sb.WriteString(paint(color, string(run)))
	}
	return sb.String()
}

// RenderDialog draws the end-of-game question as a centered box.
func RenderDialog(message, help string, width, height int) string {
	box := dialogStyle.Render(dialogTitleStyle.Render(message) + "\n\n" + help)
	if width <= 0 || height <= 0 {
		return box
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
