package storage

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	json "github.com/goccy/go-json"

	"countdown/internal/models"
	"countdown/internal/providers"
	"countdown/internal/storage/interfaces"
	"countdown/internal/structures"
)

type FileManager struct {
	path       string
	compressor interfaces.CompressorInterface
	logger     providers.Logger
	now        func() time.Time
}

func NewFileManager(conf *structures.Config, compressor interfaces.CompressorInterface, logger providers.Logger) *FileManager {
	return &FileManager{
		path:       resolve(conf.Persistence.Dir, conf.Persistence.EventsFile),
		compressor: compressor,
		logger:     logger,
		now:        time.Now,
	}
}

func resolve(base, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(base, name)
}

func (f *FileManager) Path() string {
	return f.path
}

// SaveEvents writes the whole list as one JSON array.
func (f *FileManager) SaveEvents(events []models.Event) error {
	if events == nil {
		events = []models.Event{}
	}
	data, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("encode events: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}
	return writeFileAtomic(f.path, data, 0o644)
}

// LoadEvents returns nil without error when no document exists yet.
func (f *FileManager) LoadEvents() ([]models.Event, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var events []models.Event
	if err = json.Unmarshal(data, &events); err != nil {
		f.quarantine(data)
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptDocument, f.path, err)
	}
	return events, nil
}

// quarantine keeps a compressed copy of an unreadable document so the next
// save does not destroy it.
func (f *FileManager) quarantine(data []byte) {
	target := fmt.Sprintf("%s.corrupt-%d.zst", f.path, f.now().Unix())

	packed, err := f.compressor.Compress(data)
	if err != nil {
		f.logger.Errorf(providers.TypeStore, "Cannot compress corrupt document %s: %v", f.path, err)
		return
	}
	if err = writeFileAtomic(target, packed, 0o600); err != nil {
		f.logger.Errorf(providers.TypeStore, "Cannot quarantine corrupt document %s: %v", f.path, err)
		return
	}
	f.logger.Warnf(providers.TypeStore, "Corrupt document %s copied to %s", f.path, target)
}

// zstdMagic opens every zstd frame.
var zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

// Restore reads a quarantined copy back. Files without a zstd frame header
// are taken as plain JSON, so a hand-repaired copy can be fed back too.
func (f *FileManager) Restore(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !bytes.HasPrefix(data, zstdMagic) {
		return data, nil
	}
	return f.compressor.Decompress(data)
}

// RestoreEvents decodes the document held in a quarantined or repaired copy.
func (f *FileManager) RestoreEvents(path string) ([]models.Event, error) {
	data, err := f.Restore(path)
	if err != nil {
		return nil, err
	}
	var events []models.Event
	if err = json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptDocument, path, err)
	}
	if events == nil {
		events = []models.Event{}
	}
	return events, nil
}

func (f *FileManager) Close() {
	f.compressor.Close()
}
