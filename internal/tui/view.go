package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/jaskboard/internal/engine"
	"github.com/jask/jaskboard/internal/source"
)

// styles
var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	faintStyle   = lipgloss.NewStyle().Faint(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(44)
	cardActiveStyle = cardStyle.
			BorderForeground(lipgloss.Color("62"))
	cardDraggedStyle = cardStyle.
				BorderForeground(lipgloss.Color("205")).
				Faint(true)
)

func (a *App) View() string {
	if a.mode == modePicker {
		return a.picker.View()
	}

	title := titleStyle.Render("JaskBoard")
	var cards []string
	for i, w := range a.widgets {
		cards = append(cards, a.renderCard(i, w))
	}
	body := "(no widgets - press a to add one)"
	if len(cards) > 0 {
		body = lipgloss.JoinVertical(lipgloss.Left, cards...)
	}

	footer := "[a] Add  [x] Remove  [r] Refresh  [m] Move  [q] Quit"
	if a.mode == modeMove {
		footer = "[j/k] Choose position  [enter] Drop  [esc] Cancel"
	}
	out := fmt.Sprintf("%s\n%s\n%s", title, body, faintStyle.Render(footer))
	if a.status != "" {
		out += "\n" + a.status
	}
	return out
}

func (a *App) renderCard(i int, w engine.Widget) string {
	marker := " "
	style := cardStyle
	switch {
	case a.mode == modeMove && i == a.drag.Dragged():
		marker = "◆"
		style = cardDraggedStyle
	case a.mode == modeMove && i == a.moveTarget:
		marker = "▶"
		style = cardActiveStyle
	case a.mode != modeMove && i == a.cursor:
		marker = "▶"
		style = cardActiveStyle
	}

	header := fmt.Sprintf("%s %s", marker, a.catalog.Title(w.Type))
	var line string
	switch {
	case w.Loading:
		line = a.spin.View() + " loading..."
	case w.Err != "":
		line = errorStyle.Render(w.Err)
	case w.Data != nil:
		line = renderPayload(w.Data)
	default:
		line = faintStyle.Render("no data yet")
	}
	return style.Render(header + "\n" + line)
}

func renderPayload(data any) string {
	switch d := data.(type) {
	case source.WeatherData:
		return fmt.Sprintf("%s: %s, %d°C", d.City, d.Condition, d.TempC)
	case source.ClockData:
		return fmt.Sprintf("%s  %s", d.Zone, d.Now.Format("15:04:05 Mon 02 Jan"))
	case source.QuoteData:
		return fmt.Sprintf("%q\n  - %s", d.Text, d.Author)
	case source.CryptoData:
		arrow := "+"
		if d.Change24h < 0 {
			arrow = ""
		}
		return fmt.Sprintf("%s $%.0f (%s%.2f%% 24h)", d.Symbol, d.PriceUSD, arrow, d.Change24h)
	case source.ActivityData:
		var parts []string
		for _, kc := range d.Counts {
			parts = append(parts, fmt.Sprintf("%s %d", kc.Kind, kc.Count))
		}
		if len(parts) == 0 {
			return fmt.Sprintf("no events in the last %s", formatWindow(d.Window))
		}
		return fmt.Sprintf("last %s: %s", formatWindow(d.Window), strings.Join(parts, "  "))
	default:
		return fmt.Sprint(d)
	}
}

func formatWindow(w time.Duration) string {
	if w%(24*time.Hour) == 0 {
		return fmt.Sprintf("%dd", w/(24*time.Hour))
	}
	if w%time.Hour == 0 {
		return fmt.Sprintf("%dh", w/time.Hour)
	}
	return w.String()
}
