package controllers

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"countdown/internal/models"
	"countdown/internal/services"
	"countdown/internal/structures"
	"countdown/internal/testutil"
)

var testNow = time.Date(2026, time.October, 15, 12, 30, 0, 0, time.UTC)

type fixture struct {
	files   *testutil.MockFileManager
	images  *testutil.MockImageStorage
	logger  *testutil.MockLogger
	store   *services.EventStore
	events  *EventController
	health  *HealthController
	factory *services.EventFactory
}

func newFixture(t *testing.T, document ...models.Event) *fixture {
	t.Helper()
	f := &fixture{
		files:  &testutil.MockFileManager{Document: document},
		images: testutil.NewMockImageStorage(),
		logger: &testutil.MockLogger{},
	}
	f.store = services.NewEventStore(f.files, f.images, testutil.NewMockMetrics(), f.logger)
	f.factory = services.NewEventFactory(f.store, f.images, f.logger)
	f.events = NewEventController(f.logger, f.store, f.factory, structures.DefaultConfig())
	f.events.now = func() time.Time { return testNow }
	f.health = NewHealthController(f.store)
	return f
}

func sample(title string, date time.Time) models.Event {
	return models.NewEvent(title, date, models.ParseHex("#264653"), models.NoImage(), testNow)
}

func do(h http.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 3, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 0x2A, G: 0x9D, B: 0x8F, A: 0xFF})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// fakePhotos is a canned PhotoServiceInterface.
type fakePhotos struct {
	suggestion models.PhotoSuggestion
	err        error
	queries    []string
}

func (f *fakePhotos) Suggest(_ context.Context, query string) (models.PhotoSuggestion, error) {
	f.queries = append(f.queries, query)
	return f.suggestion, f.err
}

func (f *fakePhotos) Fetch(ctx context.Context, query string) (models.PhotoSuggestion, []byte, error) {
	s, err := f.Suggest(ctx, query)
	return s, nil, err
}
