package controllers

import (
	"errors"
	"net/http"

	"countdown/internal/providers"
	"countdown/internal/services"
	"countdown/internal/storage"
	"countdown/internal/storage/interfaces"
	"countdown/internal/unsplash"
)

// MediaController serves stored event images and remote photo suggestions.
type MediaController struct {
	logger providers.Logger
	images interfaces.ImageStorageInterface
	photos services.PhotoServiceInterface
}

func NewMediaController(logger providers.Logger, images interfaces.ImageStorageInterface, photos services.PhotoServiceInterface) *MediaController {
	return &MediaController{logger: logger, images: images, photos: photos}
}

func (mc *MediaController) Image(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("f")
	data, ok, err := mc.images.Load(name)
	switch {
	case errors.Is(err, storage.ErrInvalidFilename):
		writeError(w, http.StatusBadRequest, "invalid_filename", err.Error())
		return
	case err != nil:
		mc.logger.Errorf(providers.TypeGet, "Load image %s: %v", name, err)
		writeError(w, http.StatusInternalServerError, "image_read_failed", err.Error())
		return
	case !ok:
		writeError(w, http.StatusNotFound, "not_found", "no such image")
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "private, max-age=86400")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (mc *MediaController) SearchPhoto(w http.ResponseWriter, r *http.Request) {
	suggestion, err := mc.photos.Suggest(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		status, code := photoErrorStatus(err)
		writeError(w, status, code, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, suggestion)
}

func photoErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, unsplash.ErrNoCredential):
		return http.StatusServiceUnavailable, "no_credential"
	case errors.Is(err, unsplash.ErrNoResults):
		return http.StatusNotFound, "no_results"
	case errors.Is(err, unsplash.ErrNetworkFailure):
		return http.StatusBadGateway, "network_failure"
	default:
		return http.StatusBadGateway, "bad_response"
	}
}
