//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"countdown/internal"
	"countdown/internal/controllers"
	"countdown/internal/providers"
	"countdown/internal/services"
	"countdown/internal/storage"
	"countdown/internal/storage/interfaces"
	"countdown/internal/structures"
	"countdown/internal/unsplash"
)

var coreSet = wire.NewSet(
	providers.NewConfigProvider,
	providers.NewLogProvider,
	providers.NewMetricsProvider,

	storage.NewZstdCompressor,
	storage.NewFileManager,
	wire.Bind(new(interfaces.FileManagerInterface), new(*storage.FileManager)),
	storage.NewImageStorage,
	wire.Bind(new(interfaces.ImageStorageInterface), new(*storage.ImageStorage)),

	services.NewEventStore,
	wire.Bind(new(services.EventStoreInterface), new(*services.EventStore)),
	services.NewEventFactory,
	wire.Bind(new(services.EventFactoryInterface), new(*services.EventFactory)),
	unsplash.NewClient,
	wire.Bind(new(services.PhotoProvider), new(*unsplash.Client)),
	services.NewPhotoService,
	wire.Bind(new(services.PhotoServiceInterface), new(*services.PhotoService)),
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		coreSet,
		controllers.NewEventController,
		controllers.NewMediaController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}

func InitRuntime(cfg *structures.CliFlags) (*Runtime, error) {

	wire.Build(
		coreSet,
		NewRuntime,
	)

	return nil, nil
}
