package models

import (
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Event is one countdown target.
type Event struct {
	ID              string
	Title           string
	Date            time.Time
	BackgroundColor string
	Image           ImageSource
	CreatedAt       time.Time
}

// eventRecord is the persisted shape of an Event.
type eventRecord struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Date            time.Time `json:"date"`
	BackgroundColor string    `json:"backgroundColor"`
	ImageFilename   *string   `json:"imageFilename,omitempty"`
	RemoteImageURL  *string   `json:"remoteImageURL,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// NewEvent assigns a fresh id and the creation time. Monotonic clock
// readings are stripped so the event compares equal after a reload.
func NewEvent(title string, date time.Time, color Color, image ImageSource, now time.Time) Event {
	return Event{
		ID:              uuid.NewString(),
		Title:           title,
		Date:            date.Round(0),
		BackgroundColor: color.Hex(),
		Image:           image,
		CreatedAt:       now.Round(0),
	}
}

// NormalizeDate moves date-only targets to midnight in t's location.
func NormalizeDate(t time.Time, allDay bool) time.Time {
	if !allDay {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// IsAllDay reports whether the target sits exactly on midnight.
func (e Event) IsAllDay() bool {
	return NormalizeDate(e.Date, true).Equal(e.Date)
}

func (e Event) Color() Color {
	return ParseHex(e.BackgroundColor)
}

// Equal compares field by field, using instant equality for timestamps.
func (e Event) Equal(o Event) bool {
	return e.ID == o.ID &&
		e.Title == o.Title &&
		e.Date.Equal(o.Date) &&
		e.BackgroundColor == o.BackgroundColor &&
		e.Image == o.Image &&
		e.CreatedAt.Equal(o.CreatedAt)
}

func (e Event) MarshalJSON() ([]byte, error) {
	rec := eventRecord{
		ID:              e.ID,
		Title:           e.Title,
		Date:            e.Date,
		BackgroundColor: e.BackgroundColor,
		CreatedAt:       e.CreatedAt,
	}
	if name, ok := e.Image.Filename(); ok {
		rec.ImageFilename = &name
	}
	if url, ok := e.Image.URL(); ok {
		rec.RemoteImageURL = &url
	}
	return json.Marshal(rec)
}

// UnmarshalJSON accepts records carrying both image fields; the local file
// takes precedence since its lifecycle belongs to the event.
func (e *Event) UnmarshalJSON(data []byte) error {
	var rec eventRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	*e = Event{
		ID:              rec.ID,
		Title:           rec.Title,
		Date:            rec.Date,
		BackgroundColor: rec.BackgroundColor,
		CreatedAt:       rec.CreatedAt,
	}
	switch {
	case rec.ImageFilename != nil && *rec.ImageFilename != "":
		e.Image = LocalImage(*rec.ImageFilename)
	case rec.RemoteImageURL != nil && *rec.RemoteImageURL != "":
		e.Image = RemoteImage(*rec.RemoteImageURL)
	}
	return nil
}
