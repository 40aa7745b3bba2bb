package models

import "time"

type CreateEventRequest struct {
	Title           string    `json:"title" validate:"required"`
	Date            time.Time `json:"date"`
	AllDay          bool      `json:"allDay"`
	BackgroundColor string    `json:"backgroundColor"`
	Image           []byte    `json:"image,omitempty"`
	RemoteImageURL  string    `json:"remoteImageURL,omitempty"`
	SuggestColor    bool      `json:"suggestColor"`
}

type RemoveRequest struct {
	Indices []int `json:"indices" validate:"required"`
}

type MoveRequest struct {
	From []int `json:"from" validate:"required"`
	To   int   `json:"to"`
}

// EventView is an Event prepared for display at a given instant.
type EventView struct {
	Index           int       `json:"index"`
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Date            time.Time `json:"date"`
	AllDay          bool      `json:"allDay"`
	BackgroundColor string    `json:"backgroundColor"`
	ForegroundColor string    `json:"foregroundColor"`
	ImageFilename   string    `json:"imageFilename,omitempty"`
	RemoteImageURL  string    `json:"remoteImageURL,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	Remaining       string    `json:"remaining"`
	RemainingFull   string    `json:"remainingFull"`
	Due             bool      `json:"due"`
}

type PhotoSuggestion struct {
	URL             string `json:"url"`
	BackgroundColor string `json:"backgroundColor"`
	ForegroundColor string `json:"foregroundColor"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
