package di

import (
	"countdown/internal/providers"
	"countdown/internal/services"
	"countdown/internal/storage"
	"countdown/internal/structures"
)

// Runtime bundles what the command line needs without the HTTP server.
type Runtime struct {
	Conf    *structures.Config
	Logger  providers.Logger
	Store   services.EventStoreInterface
	Factory services.EventFactoryInterface
	Photos  services.PhotoServiceInterface
	files   *storage.FileManager
}

func NewRuntime(conf *structures.Config, logger providers.Logger, store services.EventStoreInterface, factory services.EventFactoryInterface, photos services.PhotoServiceInterface, files *storage.FileManager) *Runtime {
	return &Runtime{
		Conf:    conf,
		Logger:  logger,
		Store:   store,
		Factory: factory,
		Photos:  photos,
		files:   files,
	}
}

// Recover replaces the list with the events held in a quarantined or
// repaired copy of the document and returns how many were restored.
func (r *Runtime) Recover(path string) (int, error) {
	events, err := r.files.RestoreEvents(path)
	if err != nil {
		return 0, err
	}
	r.Store.Replace(events)
	return len(events), nil
}

// Unpack returns the raw document held in a quarantined copy.
func (r *Runtime) Unpack(path string) ([]byte, error) {
	return r.files.Restore(path)
}

func (r *Runtime) Close() {
	r.files.Close()
	r.Logger.Close()
}
