package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"countdown/internal/display"
	"countdown/internal/models"
	"countdown/internal/providers"
	"countdown/internal/storage/interfaces"
)

var (
	ErrTitleRequired = errors.New("title is required")
	ErrDateRequired  = errors.New("date is required")
)

type EventFactoryInterface interface {
	Create(req models.CreateEventRequest) (models.Event, error)
}

// EventFactory turns a creation request into a stored event.
type EventFactory struct {
	store  EventStoreInterface
	images interfaces.ImageStorageInterface
	logger providers.Logger
	now    func() time.Time
}

func NewEventFactory(store EventStoreInterface, images interfaces.ImageStorageInterface, logger providers.Logger) *EventFactory {
	return &EventFactory{store: store, images: images, logger: logger, now: time.Now}
}

// Create validates req, keeps the uploaded image, and adds the event at the
// head of the store. Nothing is added when the image cannot be stored.
func (f *EventFactory) Create(req models.CreateEventRequest) (models.Event, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return models.Event{}, ErrTitleRequired
	}
	if req.Date.IsZero() {
		return models.Event{}, ErrDateRequired
	}

	hex := req.BackgroundColor
	if strings.TrimSpace(hex) == "" {
		hex = models.DefaultBackground
	}
	color := models.ParseHex(hex)

	image := models.RemoteImage(strings.TrimSpace(req.RemoteImageURL))
	if len(req.Image) > 0 {
		name, err := f.images.Store(req.Image)
		if err != nil {
			return models.Event{}, fmt.Errorf("store image: %w", err)
		}
		image = models.LocalImage(name)

		if req.SuggestColor {
			if avg, err := display.AverageColorBytes(req.Image); err == nil {
				color = avg
			}
		}
	}

	event := models.NewEvent(title, models.NormalizeDate(req.Date, req.AllDay), color, image, f.now())
	f.store.Add(event)
	f.logger.Infof(providers.TypeStore, "Created event %s %q for %s", event.ID, event.Title, event.Date.Format(time.RFC3339))
	return event, nil
}
