package display

import (
	"time"

	"countdown/internal/models"
)

// View prepares the event at position index for display at now.
func View(index int, e models.Event, now time.Time, lang string) models.EventView {
	v := models.EventView{
		Index:           index,
		ID:              e.ID,
		Title:           e.Title,
		Date:            e.Date,
		AllDay:          e.IsAllDay(),
		BackgroundColor: e.Color().Hex(),
		ForegroundColor: e.Color().Foreground().Hex(),
		CreatedAt:       e.CreatedAt,
		Remaining:       FormatRemaining(now, e.Date, lang),
		RemainingFull:   FormatRemainingFull(now, e.Date, lang),
		Due:             !e.Date.After(now),
	}
	if name, ok := e.Image.Filename(); ok {
		v.ImageFilename = name
	}
	if url, ok := e.Image.URL(); ok {
		v.RemoteImageURL = url
	}
	return v
}

func Views(events []models.Event, now time.Time, lang string) []models.EventView {
	views := make([]models.EventView, 0, len(events))
	for i, e := range events {
		views = append(views, View(i, e, now, lang))
	}
	return views
}
