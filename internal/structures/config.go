package structures

import (
	"net/http"
	"time"
)

type CliFlags struct {
	ConfigPath string
	DebugMode  bool
}

type Route struct {
	Url     string
	Handler http.Handler
}

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

// Persistence describes the document area: the events document and the
// images directory are both resolved relative to Dir.
type Persistence struct {
	Dir        string `yaml:"dir" validate:"required"`
	EventsFile string `yaml:"eventsFile" validate:"required"`
}

type ImagesConfig struct {
	Dir     string `yaml:"dir" validate:"required"`
	Quality int    `yaml:"quality" validate:"required|int|min:1|max:100"`
}

type UnsplashConfig struct {
	AccessKey string        `yaml:"accessKey"`
	BaseURL   string        `yaml:"baseURL" validate:"required|fullUrl"`
	PerPage   int           `yaml:"perPage" validate:"required|int|min:1|max:30"`
	Timeout   time.Duration `yaml:"timeout" validate:"required"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required"`
}

type DisplayConfig struct {
	Language string `yaml:"language" validate:"in:en,de"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName     string         `yaml:"-"`
	Debug       bool           `yaml:"-"`
	Path        string         `yaml:"-"`
	WebServer   Server         `yaml:"webServer"`
	Persistence Persistence    `yaml:"persistence"`
	Images      ImagesConfig   `yaml:"images"`
	Unsplash    UnsplashConfig `yaml:"unsplash"`
	Logger      LoggerConfig   `yaml:"logger"`
	Display     DisplayConfig  `yaml:"display"`
	Metrics     MetricsConfig  `yaml:"metrics"`
}

func DefaultConfig() *Config {
	return &Config{
		WebServer: Server{
			Host: "127.0.0.1",
			Port: 8090,
		},
		Persistence: Persistence{
			Dir:        "./var/documents",
			EventsFile: "events.json",
		},
		Images: ImagesConfig{
			Dir:     "images",
			Quality: 85,
		},
		Unsplash: UnsplashConfig{
			BaseURL: "https://api.unsplash.com",
			PerPage: 10,
			Timeout: 15 * time.Second,
		},
		Logger: LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   "./var/log",
		},
		Display: DisplayConfig{
			Language: "en",
		},
	}
}
