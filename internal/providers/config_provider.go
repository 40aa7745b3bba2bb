package providers

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"countdown/internal/structures"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const appName = "Countdown"

var envBindings = map[string]string{
	"logger.level":       "COUNTDOWN_LOG_LEVEL",
	"logger.dir":         "COUNTDOWN_LOG_DIR",
	"persistence.dir":    "COUNTDOWN_DOCUMENT_DIR",
	"unsplash.accessKey": "COUNTDOWN_UNSPLASH_ACCESS_KEY",
	"metrics.enabled":    "COUNTDOWN_METRICS_ENABLED",
	"webServer.port":     "COUNTDOWN_LISTEN_PORT",
}

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	if err := ensureConfigFile(flags.ConfigPath); err != nil {
		return nil, fmt.Errorf("unable to create default config: %w", err)
	}

	v := viper.New()
	filename := filepath.Base(flags.ConfigPath)
	v.AddConfigPath(filepath.Dir(flags.ConfigPath))
	v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	v.SetConfigType("yaml")

	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = v.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = appName
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	for _, dir := range []string{conf.Logger.Dir, conf.Persistence.Dir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("unable to create %s: %w", dir, err)
		}
	}

	return &conf, nil
}

// ensureConfigFile writes the default configuration on first run. An existing
// file is never touched.
func ensureConfigFile(path string) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(structures.DefaultConfig())
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".countdown-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
