package testutil

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"countdown/internal/models"
	"countdown/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// Count returns how many entries were logged at level.
func (m *MockLogger) Count(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, l := range m.Logs {
		if l.Level == level {
			n++
		}
	}
	return n
}

// MockMetrics implements providers.MetricsProviderInterface.
type MockMetrics struct {
	mu                  sync.Mutex
	Requests            map[string]int
	PersistenceObserved int
	SaveFailures        int
	EventsTotal         int
	PhotoRequests       map[string]int // key: "op:outcome"
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{Requests: make(map[string]int), PhotoRequests: make(map[string]int)}
}

func (m *MockMetrics) IncRequestsTotal(endpoint string, status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests[endpoint]++
}

func (m *MockMetrics) ObserveRequestDuration(string, time.Duration) {}

func (m *MockMetrics) ObservePersistenceDuration(time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PersistenceObserved++
}

func (m *MockMetrics) IncSaveFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveFailures++
}

func (m *MockMetrics) SetEventsTotal(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EventsTotal = count
}

func (m *MockMetrics) IncPhotoRequests(op, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PhotoRequests[op+":"+outcome]++
}

// MockFileManager implements interfaces.FileManagerInterface in memory.
type MockFileManager struct {
	mu       sync.Mutex
	Document []models.Event
	LoadErr  error
	SaveErr  error
	Saved    [][]models.Event
}

func (m *MockFileManager) LoadEvents() ([]models.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return append([]models.Event(nil), m.Document...), nil
}

func (m *MockFileManager) SaveEvents(events []models.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	snapshot := append([]models.Event(nil), events...)
	m.Saved = append(m.Saved, snapshot)
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Document = snapshot
	return nil
}

func (m *MockFileManager) Path() string {
	return "memory://events.json"
}

func (m *MockFileManager) SaveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Saved)
}

// MockImageStorage implements interfaces.ImageStorageInterface in memory.
type MockImageStorage struct {
	mu        sync.Mutex
	Files     map[string][]byte
	StoreErr  error
	DeleteErr error
	Deleted   []string
	next      int
}

func NewMockImageStorage() *MockImageStorage {
	return &MockImageStorage{Files: make(map[string][]byte)}
}

func (m *MockImageStorage) Store(data []byte) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.StoreErr != nil {
		return "", m.StoreErr
	}
	m.next++
	name := fmt.Sprintf("img_mock_%d.jpg", m.next)
	m.Files[name] = append([]byte(nil), data...)
	return name, nil
}

func (m *MockImageStorage) Load(filename string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.Files[filename]
	return data, ok, nil
}

func (m *MockImageStorage) Delete(filename string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Deleted = append(m.Deleted, filename)
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	delete(m.Files, filename)
	return nil
}

// MockPhotoProvider implements the remote image provider contract.
type MockPhotoProvider struct {
	mu          sync.Mutex
	URL         string
	Image       []byte
	SearchErr   error
	DownloadErr error
	Queries     []string
}

func (m *MockPhotoProvider) Search(_ context.Context, query string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Queries = append(m.Queries, query)
	if m.SearchErr != nil {
		return "", m.SearchErr
	}
	return m.URL, nil
}

func (m *MockPhotoProvider) Download(_ context.Context, url string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DownloadErr != nil {
		return nil, m.DownloadErr
	}
	if url != m.URL {
		return nil, errors.New("unexpected url " + url)
	}
	return m.Image, nil
}

// MockCompressor implements interfaces.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
	Closed       bool
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	// identity
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Close() {
	m.Closed = true
}
