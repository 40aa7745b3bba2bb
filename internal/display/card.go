package display

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"countdown/internal/models"
)

const cardWidth = 44

var (
	indexStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	dateStyle  = lipgloss.NewStyle().Italic(true)
)

// RenderCard draws one event as a colored block for the terminal.
func RenderCard(index int, e models.Event, now time.Time, lang string, full bool) string {
	bg := e.Color()
	style := lipgloss.NewStyle().
		Background(lipgloss.Color(bg.Hex())).
		Foreground(lipgloss.Color(bg.Foreground().Hex())).
		Padding(1, 2).
		Width(cardWidth)

	remaining := FormatRemaining(now, e.Date, lang)
	if full {
		remaining = FormatRemainingFull(now, e.Date, lang)
	}

	layout := "2006-01-02 15:04"
	if e.IsAllDay() {
		layout = "2006-01-02"
	}

	lines := []string{
		lipgloss.NewStyle().Bold(true).Render(e.Title),
		dateStyle.Render(e.Date.Format(layout)),
		"",
		remaining,
	}
	if url, ok := e.Image.URL(); ok {
		lines = append(lines, "", url)
	}

	return indexStyle.Render(fmt.Sprintf("[%d]", index)) + "\n" + style.Render(strings.Join(lines, "\n"))
}

// RenderCards joins the cards of all events, one blank line apart.
func RenderCards(events []models.Event, now time.Time, lang string, full bool) string {
	cards := make([]string, 0, len(events))
	for i, e := range events {
		cards = append(cards, RenderCard(i, e, now, lang, full))
	}
	return strings.Join(cards, "\n\n")
}
