package export

import (
	"io"
	"time"

	ics "github.com/arran4/golang-ical"

	"countdown/internal/models"
)

const productID = "-//countdown//events//EN"

// propertyColor is the RFC 7986 COLOR property.
const propertyColor = ics.ComponentProperty("COLOR")

// Calendar builds one VEVENT per event, in list order.
func Calendar(events []models.Event, now time.Time) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)

	for _, e := range events {
		ve := cal.AddEvent(e.ID)
		ve.SetDtStampTime(now)
		ve.SetCreatedTime(e.CreatedAt)
		ve.SetSummary(e.Title)
		if e.IsAllDay() {
			ve.SetAllDayStartAt(e.Date)
		} else {
			ve.SetStartAt(e.Date)
		}
		ve.SetProperty(propertyColor, e.Color().Hex())
		if url, ok := e.Image.URL(); ok {
			ve.SetURL(url)
		}
	}
	return cal
}

func WriteICS(w io.Writer, events []models.Event, now time.Time) error {
	_, err := io.WriteString(w, Calendar(events, now).Serialize())
	return err
}
