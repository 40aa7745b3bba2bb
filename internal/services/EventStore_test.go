package services

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"countdown/internal/models"
	"countdown/internal/storage"
	"countdown/internal/structures"
	"countdown/internal/testutil"
)

var testNow = time.Date(2026, time.October, 15, 12, 30, 0, 0, time.UTC)

type storeFixture struct {
	store   *EventStore
	files   *testutil.MockFileManager
	images  *testutil.MockImageStorage
	metrics *testutil.MockMetrics
	logger  *testutil.MockLogger
}

func newStoreFixture(t *testing.T, document ...models.Event) *storeFixture {
	t.Helper()
	f := &storeFixture{
		files:   &testutil.MockFileManager{Document: document},
		images:  testutil.NewMockImageStorage(),
		metrics: testutil.NewMockMetrics(),
		logger:  &testutil.MockLogger{},
	}
	f.store = NewEventStore(f.files, f.images, f.metrics, f.logger)
	return f
}

func event(title string) models.Event {
	return models.NewEvent(title, testNow.Add(time.Hour), models.ParseHex("#2A9D8F"), models.NoImage(), testNow)
}

func titles(events []models.Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.Title)
	}
	return out
}

func seeded(t *testing.T, names ...string) *storeFixture {
	t.Helper()
	events := make([]models.Event, 0, len(names))
	for _, n := range names {
		events = append(events, event(n))
	}
	return newStoreFixture(t, events...)
}

func TestNewEventStore_LoadsDocument(t *testing.T) {
	f := seeded(t, "a", "b")

	assert.Equal(t, []string{"a", "b"}, titles(f.store.Events()))
	assert.Equal(t, 2, f.metrics.EventsTotal)
	assert.Equal(t, 0, f.files.SaveCount())
}

func TestEventStore_Load_MissingDocument(t *testing.T) {
	f := newStoreFixture(t)

	assert.Equal(t, 0, f.store.Len())
	assert.NotNil(t, f.store.Events())
	assert.Equal(t, 0, f.logger.Count("error"))
}

func TestEventStore_Load_CorruptDocument(t *testing.T) {
	files := &testutil.MockFileManager{LoadErr: fmt.Errorf("%w: bad json", storage.ErrCorruptDocument)}
	logger := &testutil.MockLogger{}

	store := NewEventStore(files, testutil.NewMockImageStorage(), testutil.NewMockMetrics(), logger)

	assert.Equal(t, 0, store.Len())
	assert.Equal(t, 1, logger.Count("error"))
}

func TestEventStore_Load_ReplacesMemory(t *testing.T) {
	f := seeded(t, "a")
	f.store.Add(event("b"))
	f.files.Document = []models.Event{event("x")}

	f.store.Load()

	assert.Equal(t, []string{"x"}, titles(f.store.Events()))
}

func TestEventStore_Add_MostRecentFirst(t *testing.T) {
	f := newStoreFixture(t)
	e1, e2 := event("e1"), event("e2")

	f.store.Add(e1)
	f.store.Add(e2)

	assert.Equal(t, []models.Event{e2, e1}, f.store.Events())
	require.Equal(t, 2, f.files.SaveCount())
	assert.Equal(t, []models.Event{e2, e1}, f.files.Saved[1])
}

func TestEventStore_SavesOncePerMutation(t *testing.T) {
	f := seeded(t, "a", "b", "c")

	f.store.Add(event("d"))
	assert.Equal(t, 1, f.files.SaveCount())

	f.store.Remove([]int{0})
	assert.Equal(t, 2, f.files.SaveCount())

	f.store.Move([]int{0}, 3)
	assert.Equal(t, 3, f.files.SaveCount())

	f.store.Save()
	assert.Equal(t, 4, f.files.SaveCount())

	_ = f.store.Events()
	_ = f.store.Len()
	_ = f.store.IndexOf("none")
	assert.Equal(t, 4, f.files.SaveCount())
	assert.Equal(t, 4+1, f.metrics.PersistenceObserved)
}

func TestEventStore_Remove_OrderIndependent(t *testing.T) {
	a := seeded(t, "a", "b", "c", "d", "e")
	b := newStoreFixture(t, a.store.Events()...)

	a.store.Remove([]int{3, 1})
	b.store.Remove([]int{1, 3})

	assert.Equal(t, []string{"a", "c", "e"}, titles(a.store.Events()))
	assert.Equal(t, a.store.Events(), b.store.Events())
}

func TestEventStore_Remove_NormalisesIndices(t *testing.T) {
	f := seeded(t, "a", "b", "c")

	f.store.Remove([]int{1, 1, 9, -1})

	assert.Equal(t, []string{"a", "c"}, titles(f.store.Events()))
	assert.Equal(t, 2, f.logger.Count("warn"))
	assert.Equal(t, 1, f.files.SaveCount())
}

func TestEventStore_Remove_DeletesOwnedImagesOnly(t *testing.T) {
	local := models.NewEvent("local", testNow, models.Black, models.LocalImage("img_1.jpg"), testNow)
	remote := models.NewEvent("remote", testNow, models.Black, models.RemoteImage("https://images.example/r.jpg"), testNow)
	plain := models.NewEvent("plain", testNow, models.Black, models.NoImage(), testNow)
	f := newStoreFixture(t, local, remote, plain)
	f.images.Files["img_1.jpg"] = []byte("jpeg")

	f.store.Remove([]int{1, 2})
	assert.Empty(t, f.images.Deleted)

	f.store.Remove([]int{0})
	assert.Equal(t, []string{"img_1.jpg"}, f.images.Deleted)
	assert.NotContains(t, f.images.Files, "img_1.jpg")
	assert.Equal(t, 0, f.store.Len())
}

func TestEventStore_Remove_ImageDeleteFailureIsSwallowed(t *testing.T) {
	local := models.NewEvent("local", testNow, models.Black, models.LocalImage("img_1.jpg"), testNow)
	f := newStoreFixture(t, local)
	f.images.DeleteErr = errors.New("read-only")

	f.store.Remove([]int{0})

	assert.Equal(t, 0, f.store.Len())
	assert.Equal(t, 1, f.logger.Count("warn"))
	assert.Equal(t, 1, f.files.SaveCount())
}

func TestEventStore_Move(t *testing.T) {
	cases := []struct {
		name string
		from []int
		to   int
		want []string
	}{
		{"subset forward", []int{0, 2}, 3, []string{"b", "a", "c", "d"}},
		{"unsorted subset", []int{2, 0}, 3, []string{"b", "a", "c", "d"}},
		{"to end", []int{0}, 4, []string{"b", "c", "d", "a"}},
		{"to head", []int{3}, 0, []string{"d", "a", "b", "c"}},
		{"onto itself", []int{1, 2}, 2, []string{"a", "b", "c", "d"}},
		{"past end clamps", []int{1}, 99, []string{"a", "c", "d", "b"}},
		{"negative clamps", []int{2}, -5, []string{"c", "a", "b", "d"}},
		{"out of range ignored", []int{7}, 0, []string{"a", "b", "c", "d"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := seeded(t, "a", "b", "c", "d")

			f.store.Move(tc.from, tc.to)

			assert.Equal(t, tc.want, titles(f.store.Events()))
			assert.Equal(t, 1, f.files.SaveCount())
		})
	}
}

func TestEventStore_Move_PreservesRelativeOrder(t *testing.T) {
	f := seeded(t, "a", "b", "c", "d", "e", "f")

	f.store.Move([]int{4, 1, 2}, 6)

	got := titles(f.store.Events())
	assert.Equal(t, []string{"a", "d", "f", "b", "c", "e"}, got)
}

func TestEventStore_Replace(t *testing.T) {
	f := seeded(t, "a", "b")
	owned := models.NewEvent("c", testNow.Add(time.Hour), models.Black, models.LocalImage("img_c.jpg"), testNow)
	recovered := []models.Event{owned, event("d")}

	f.store.Replace(recovered)
	recovered[0].Title = "changed"

	assert.Equal(t, []string{"c", "d"}, titles(f.store.Events()))
	assert.Equal(t, 1, f.files.SaveCount())
	assert.Equal(t, 2, f.metrics.EventsTotal)
	assert.Empty(t, f.images.Deleted)
}

func TestEventStore_Replace_Empty(t *testing.T) {
	f := seeded(t, "a")

	f.store.Replace(nil)

	assert.NotNil(t, f.store.Events())
	assert.Equal(t, 0, f.store.Len())
	assert.Equal(t, 1, f.files.SaveCount())
}

func TestEventStore_SaveFailureKeepsMemory(t *testing.T) {
	f := newStoreFixture(t)
	f.files.SaveErr = errors.New("disk full")

	f.store.Add(event("a"))

	assert.Equal(t, 1, f.store.Len())
	assert.Equal(t, 1, f.metrics.SaveFailures)
	assert.Equal(t, 1, f.logger.Count("error"))
	assert.Empty(t, f.files.Document)
}

func TestEventStore_EventsIsCopy(t *testing.T) {
	f := seeded(t, "a")

	events := f.store.Events()
	events[0].Title = "changed"

	assert.Equal(t, "a", f.store.Events()[0].Title)
}

func TestEventStore_IndexOf(t *testing.T) {
	f := seeded(t, "a", "b")
	events := f.store.Events()

	assert.Equal(t, 1, f.store.IndexOf(events[1].ID))
	assert.Equal(t, -1, f.store.IndexOf("missing"))
}

func TestEventStore_ConcurrentAddsSaveInOrder(t *testing.T) {
	f := newStoreFixture(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			f.store.Add(event(fmt.Sprintf("e%d", i)))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, f.store.Len())
	require.Equal(t, 50, f.files.SaveCount())
	for i, snapshot := range f.files.Saved {
		assert.Len(t, snapshot, i+1)
	}
}

func TestEventStore_ReloadFromDocument(t *testing.T) {
	conf := structures.DefaultConfig()
	conf.Persistence.Dir = t.TempDir()
	logger := &testutil.MockLogger{}
	comp := &testutil.MockCompressor{}
	images := storage.NewImageStorage(conf, logger)

	store := NewEventStore(storage.NewFileManager(conf, comp, logger), images, testutil.NewMockMetrics(), logger)
	require.Equal(t, 0, store.Len())

	store.Add(models.NewEvent("Birthday", testNow.Add(86400*time.Second), models.ParseHex("#FFA500"), models.NoImage(), testNow))
	require.Equal(t, 1, store.Len())
	assert.Equal(t, "Birthday", store.Events()[0].Title)

	reloaded := NewEventStore(storage.NewFileManager(conf, comp, logger), images, testutil.NewMockMetrics(), logger)

	assert.Equal(t, store.Events(), reloaded.Events())
	assert.Equal(t, "#FFA500", reloaded.Events()[0].BackgroundColor)
}
