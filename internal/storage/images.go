package storage

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"countdown/internal/providers"
	"countdown/internal/structures"
)

type ImageStorage struct {
	dir     string
	quality int
	logger  providers.Logger
}

func NewImageStorage(conf *structures.Config, logger providers.Logger) *ImageStorage {
	quality := conf.Images.Quality
	if quality <= 0 || quality > 100 {
		quality = jpeg.DefaultQuality
	}
	return &ImageStorage{
		dir:     resolve(conf.Persistence.Dir, conf.Images.Dir),
		quality: quality,
		logger:  logger,
	}
}

func (s *ImageStorage) Dir() string {
	return s.dir
}

// Store re-encodes data as JPEG under a fresh name and returns that name.
func (s *ImageStorage) Store(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty input", ErrUnsupportedImage)
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}
	if img.Bounds().Empty() {
		return "", fmt.Errorf("%w: zero-size %s image", ErrUnsupportedImage, format)
	}

	var buf bytes.Buffer
	if err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: s.quality}); err != nil {
		return "", fmt.Errorf("encode jpeg: %w", err)
	}

	if err = os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}
	name := "img_" + uuid.NewString() + ".jpg"
	if err = writeFileAtomic(filepath.Join(s.dir, name), buf.Bytes(), 0o644); err != nil {
		return "", err
	}

	s.logger.Debugf(providers.TypeStore, "Stored %s image as %s (%d bytes)", format, name, buf.Len())
	return name, nil
}

func (s *ImageStorage) Load(filename string) ([]byte, bool, error) {
	if err := checkFilename(filename); err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(filepath.Join(s.dir, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

// Delete is a no-op for files that are already gone.
func (s *ImageStorage) Delete(filename string) error {
	if err := checkFilename(filename); err != nil {
		return err
	}
	err := os.Remove(filepath.Join(s.dir, filename))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func checkFilename(name string) error {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return fmt.Errorf("%w: %q", ErrInvalidFilename, name)
	}
	return nil
}
