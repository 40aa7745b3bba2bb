package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"countdown/internal/models"
)

var testNow = time.Date(2026, time.October, 15, 12, 30, 0, 0, time.UTC)

func TestWriteICS(t *testing.T) {
	timed := models.NewEvent("Launch", time.Date(2026, time.November, 1, 9, 15, 0, 0, time.UTC),
		models.ParseHex("#2a9d8f"), models.RemoteImage("https://images.example/l.jpg"), testNow)
	allDay := models.NewEvent("Christmas", time.Date(2026, time.December, 24, 0, 0, 0, 0, time.UTC),
		models.ParseHex("#E76F51"), models.LocalImage("img_1.jpg"), testNow)

	var buf bytes.Buffer
	require.NoError(t, WriteICS(&buf, []models.Event{timed, allDay}, testNow))

	cal, err := ical.ParseCalendar(strings.NewReader(buf.String()))
	require.NoError(t, err)
	events := cal.Events()
	require.Len(t, events, 2)

	first := events[0]
	assert.Equal(t, timed.ID, first.Id())
	assert.Equal(t, "Launch", first.GetProperty(ical.ComponentPropertySummary).Value)
	assert.Equal(t, "20261101T091500Z", first.GetProperty(ical.ComponentPropertyDtStart).Value)
	assert.Equal(t, "#2A9D8F", first.GetProperty(ical.ComponentProperty("COLOR")).Value)
	assert.Equal(t, "https://images.example/l.jpg", first.GetProperty(ical.ComponentPropertyUrl).Value)

	second := events[1]
	assert.Equal(t, allDay.ID, second.Id())
	assert.Equal(t, "20261224", second.GetProperty(ical.ComponentPropertyDtStart).Value)
	assert.Nil(t, second.GetProperty(ical.ComponentPropertyUrl))
}

func TestWriteICS_Empty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteICS(&buf, nil, testNow))

	out := buf.String()
	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, productID)
	assert.NotContains(t, out, "BEGIN:VEVENT")
}
