package interfaces

import "countdown/internal/models"

type CompressorInterface interface {
	Compress(val []byte) ([]byte, error)
	Decompress(val []byte) ([]byte, error)
	Close()
}

// FileManagerInterface reads and writes the event document.
type FileManagerInterface interface {
	LoadEvents() ([]models.Event, error)
	SaveEvents(events []models.Event) error
	Path() string
}

// ImageStorageInterface keeps event images as bare filenames inside the
// document area.
type ImageStorageInterface interface {
	Store(data []byte) (string, error)
	Load(filename string) ([]byte, bool, error)
	Delete(filename string) error
}
