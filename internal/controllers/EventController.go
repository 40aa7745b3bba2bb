package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gookit/validate"

	"countdown/internal/display"
	"countdown/internal/export"
	"countdown/internal/models"
	"countdown/internal/providers"
	"countdown/internal/services"
	"countdown/internal/storage"
	"countdown/internal/structures"
)

type EventController struct {
	logger   providers.Logger
	store    services.EventStoreInterface
	factory  services.EventFactoryInterface
	language string
	now      func() time.Time
}

func NewEventController(logger providers.Logger, store services.EventStoreInterface, factory services.EventFactoryInterface, conf *structures.Config) *EventController {
	return &EventController{
		logger:   logger,
		store:    store,
		factory:  factory,
		language: conf.Display.Language,
		now:      time.Now,
	}
}

func (ec *EventController) lang(r *http.Request) string {
	if l := r.URL.Query().Get("lang"); l != "" {
		return l
	}
	return ec.language
}

func (ec *EventController) writeList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, display.Views(ec.store.Events(), ec.now(), ec.lang(r)))
}

func (ec *EventController) List(w http.ResponseWriter, r *http.Request) {
	ec.writeList(w, r)
}

func (ec *EventController) Add(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEventRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if v := validate.Struct(&req); !v.Validate() {
		writeError(w, http.StatusBadRequest, "invalid_request", v.Errors.One())
		return
	}

	event, err := ec.factory.Create(req)
	switch {
	case errors.Is(err, services.ErrTitleRequired), errors.Is(err, services.ErrDateRequired):
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	case errors.Is(err, storage.ErrUnsupportedImage):
		writeError(w, http.StatusUnsupportedMediaType, "unsupported_image", err.Error())
		return
	case err != nil:
		ec.logger.Errorf(providers.TypePost, "Create event %q: %v", req.Title, err)
		writeError(w, http.StatusInternalServerError, "image_save_failed", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, display.View(ec.store.IndexOf(event.ID), event, ec.now(), ec.lang(r)))
}

func (ec *EventController) Remove(w http.ResponseWriter, r *http.Request) {
	var req models.RemoveRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if v := validate.Struct(&req); !v.Validate() {
		writeError(w, http.StatusBadRequest, "invalid_request", v.Errors.One())
		return
	}
	ec.store.Remove(req.Indices)
	ec.writeList(w, r)
}

func (ec *EventController) Move(w http.ResponseWriter, r *http.Request) {
	var req models.MoveRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if v := validate.Struct(&req); !v.Validate() {
		writeError(w, http.StatusBadRequest, "invalid_request", v.Errors.One())
		return
	}
	ec.store.Move(req.From, req.To)
	ec.writeList(w, r)
}

// Calendar exports every event as an iCalendar feed.
func (ec *EventController) Calendar(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="countdown.ics"`)
	if err := export.WriteICS(w, ec.store.Events(), ec.now()); err != nil {
		ec.logger.Errorf(providers.TypeGet, "Write calendar: %v", err)
	}
}

func (ec *EventController) Colors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.Presets)
}
