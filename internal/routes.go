package internal

import (
	"net/http"

	"countdown/internal/controllers"
	"countdown/internal/providers"
)

func InitRoutes(eventController *controllers.EventController, mediaController *controllers.MediaController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/events", http.HandlerFunc(eventController.List))
	routers.Post("/events/add", http.HandlerFunc(eventController.Add))
	routers.Post("/events/remove", http.HandlerFunc(eventController.Remove))
	routers.Post("/events/move", http.HandlerFunc(eventController.Move))
	routers.Get("/events.ics", http.HandlerFunc(eventController.Calendar))
	routers.Get("/colors", http.HandlerFunc(eventController.Colors))
	routers.Get("/image", http.HandlerFunc(mediaController.Image))
	routers.Get("/photos/search", http.HandlerFunc(mediaController.SearchPhoto))
	return routers
}
