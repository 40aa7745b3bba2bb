package services

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"countdown/internal/models"
)

func orangePNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 0xFF, G: 0xA5, A: 0xFF})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newTestFactory(t *testing.T) (*EventFactory, *storeFixture) {
	t.Helper()
	f := newStoreFixture(t)
	factory := NewEventFactory(f.store, f.images, f.logger)
	factory.now = func() time.Time { return testNow }
	return factory, f
}

func TestEventFactory_Create(t *testing.T) {
	factory, f := newTestFactory(t)
	date := testNow.Add(86400 * time.Second)

	e, err := factory.Create(models.CreateEventRequest{
		Title:           "  Birthday ",
		Date:            date,
		BackgroundColor: "#ffa500",
	})

	require.NoError(t, err)
	assert.Equal(t, "Birthday", e.Title)
	assert.Equal(t, date, e.Date)
	assert.Equal(t, "#FFA500", e.BackgroundColor)
	assert.Equal(t, testNow, e.CreatedAt)
	assert.Equal(t, models.ImageNone, e.Image.Kind())
	assert.Equal(t, []models.Event{e}, f.store.Events())
	assert.Equal(t, 1, f.files.SaveCount())
}

func TestEventFactory_Create_RequiresTitleAndDate(t *testing.T) {
	factory, f := newTestFactory(t)

	_, err := factory.Create(models.CreateEventRequest{Title: " \t", Date: testNow})
	assert.ErrorIs(t, err, ErrTitleRequired)

	_, err = factory.Create(models.CreateEventRequest{Title: "x"})
	assert.ErrorIs(t, err, ErrDateRequired)

	assert.Equal(t, 0, f.store.Len())
	assert.Equal(t, 0, f.files.SaveCount())
}

func TestEventFactory_Create_AllDayIsMidnight(t *testing.T) {
	factory, _ := newTestFactory(t)

	e, err := factory.Create(models.CreateEventRequest{
		Title:  "Christmas",
		Date:   time.Date(2026, time.December, 24, 15, 4, 5, 0, time.UTC),
		AllDay: true,
	})

	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.December, 24, 0, 0, 0, 0, time.UTC), e.Date)
	assert.True(t, e.IsAllDay())
}

func TestEventFactory_Create_DefaultColor(t *testing.T) {
	factory, _ := newTestFactory(t)

	e, err := factory.Create(models.CreateEventRequest{Title: "x", Date: testNow})

	require.NoError(t, err)
	assert.Equal(t, models.DefaultBackground, e.BackgroundColor)
}

func TestEventFactory_Create_StoresImage(t *testing.T) {
	factory, f := newTestFactory(t)
	data := orangePNG(t)

	e, err := factory.Create(models.CreateEventRequest{
		Title:          "x",
		Date:           testNow,
		Image:          data,
		RemoteImageURL: "https://images.example/ignored.jpg",
	})

	require.NoError(t, err)
	name, ok := e.Image.Filename()
	require.True(t, ok)
	assert.Equal(t, data, f.images.Files[name])
	assert.Equal(t, models.DefaultBackground, e.BackgroundColor)
}

func TestEventFactory_Create_SuggestColor(t *testing.T) {
	factory, _ := newTestFactory(t)

	e, err := factory.Create(models.CreateEventRequest{
		Title:           "x",
		Date:            testNow,
		BackgroundColor: "#000000",
		Image:           orangePNG(t),
		SuggestColor:    true,
	})

	require.NoError(t, err)
	assert.Equal(t, "#FFA500", e.BackgroundColor)
}

func TestEventFactory_Create_ImageFailureAddsNothing(t *testing.T) {
	factory, f := newTestFactory(t)
	f.images.StoreErr = errors.New("disk full")

	_, err := factory.Create(models.CreateEventRequest{Title: "x", Date: testNow, Image: []byte{1}})

	assert.ErrorContains(t, err, "disk full")
	assert.Equal(t, 0, f.store.Len())
	assert.Equal(t, 0, f.files.SaveCount())
}

func TestEventFactory_Create_RemoteImage(t *testing.T) {
	factory, _ := newTestFactory(t)

	e, err := factory.Create(models.CreateEventRequest{Title: "x", Date: testNow, RemoteImageURL: " https://images.example/a.jpg "})

	require.NoError(t, err)
	url, ok := e.Image.URL()
	require.True(t, ok)
	assert.Equal(t, "https://images.example/a.jpg", url)
}
