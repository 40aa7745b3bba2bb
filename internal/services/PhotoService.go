package services

import (
	"context"
	"fmt"
	"strings"

	"countdown/internal/display"
	"countdown/internal/models"
	"countdown/internal/providers"
)

// DefaultPhotoQuery is searched when no title is given yet.
const DefaultPhotoQuery = "nature"

// PhotoProvider finds and fetches a remote picture for a free-text query.
type PhotoProvider interface {
	Search(ctx context.Context, query string) (string, error)
	Download(ctx context.Context, url string) ([]byte, error)
}

type PhotoServiceInterface interface {
	Suggest(ctx context.Context, query string) (models.PhotoSuggestion, error)
	Fetch(ctx context.Context, query string) (models.PhotoSuggestion, []byte, error)
}

type PhotoService struct {
	provider PhotoProvider
	logger   providers.Logger
}

func NewPhotoService(provider PhotoProvider, logger providers.Logger) *PhotoService {
	return &PhotoService{provider: provider, logger: logger}
}

func (p *PhotoService) Suggest(ctx context.Context, query string) (models.PhotoSuggestion, error) {
	suggestion, _, err := p.Fetch(ctx, query)
	return suggestion, err
}

// Fetch searches, downloads the best match and derives a theme color from
// it. The downloaded bytes are returned so callers can keep a local copy.
func (p *PhotoService) Fetch(ctx context.Context, query string) (models.PhotoSuggestion, []byte, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		query = DefaultPhotoQuery
	}

	url, err := p.provider.Search(ctx, query)
	if err != nil {
		p.logger.Warnf(providers.TypePhoto, "Search %q failed: %v", query, err)
		return models.PhotoSuggestion{}, nil, err
	}

	data, err := p.provider.Download(ctx, url)
	if err != nil {
		p.logger.Warnf(providers.TypePhoto, "Download %s failed: %v", url, err)
		return models.PhotoSuggestion{}, nil, err
	}

	avg, err := display.AverageColorBytes(data)
	if err != nil {
		return models.PhotoSuggestion{}, nil, fmt.Errorf("average color of %s: %w", url, err)
	}

	p.logger.Debugf(providers.TypePhoto, "Photo for %q: %s (%s)", query, url, avg.Hex())
	return models.PhotoSuggestion{
		URL:             url,
		BackgroundColor: avg.Hex(),
		ForegroundColor: avg.Foreground().Hex(),
	}, data, nil
}
