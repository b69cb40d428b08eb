package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

const fileName = "tsweep.yaml"

// DefaultDir is the per-user config directory, or the working directory
// when the platform has none.
func DefaultDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "tsweep")
	}
	return "."
}

func DefaultPath() string {
	return filepath.Join(DefaultDir(), fileName)
}

// Store reads and writes the config file. Failures are logged and never
// returned, so play continues with in-memory values.
type Store struct {
	path string
	log  *logrus.Entry
}

func NewStore(path string, log *logrus.Entry) *Store {
	if path == "" {
		path = DefaultPath()
	}
	return &Store{path: path, log: log.WithField("path", path)}
}

func (store *Store) Path() string {
	return store.path
}

// LoadOrCreate reads the config file, writing one with defaults when it is
// missing. An unreadable or invalid file yields defaults.
func (store *Store) LoadOrCreate() *Config {
	config, err := store.load()
	if err == nil {
		return config
	}

	if os.IsNotExist(errors.Cause(err)) {
		store.log.Info("Creating config file with defaults")
		config = Default()
		store.Save(config)
		return config
	}

	store.log.WithError(err).Warn("Using default config")
	return Default()
}

func (store *Store) load() (*Config, error) {
	data, err := os.ReadFile(store.path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	config.sanitize()
	return config, nil
}

func (store *Store) Save(config *Config) {
	if err := store.save(config); err != nil {
		store.log.WithError(err).Warn("Could not save config")
	}
}

func (store *Store) save(config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "marshal config")
	}
	if err := os.MkdirAll(filepath.Dir(store.path), 0o755); err != nil {
		return errors.Wrap(err, "create config directory")
	}
	if err := os.WriteFile(store.path, data, 0o644); err != nil {
		return errors.Wrap(err, "write config")
	}
	return nil
}
