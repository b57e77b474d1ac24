package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const envPrefix = "DOCKYARD"

// envOverrides lists keys whose variable does not follow DOCKYARD_<KEY>.
var envOverrides = map[string]string{
	"logging.level":  "DOCKYARD_LOG_LEVEL",
	"logging.format": "DOCKYARD_LOG_FORMAT",
}

// EnvVar returns the environment variable overriding a dotted config key.
func EnvVar(key string) string {
	if env, ok := envOverrides[key]; ok {
		return env
	}
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// DefaultSettings returns every known key with its default value, flattened
// with dots like Manager.AllSettings.
func DefaultSettings() map[string]any {
	m := &Manager{viper: viper.New()}
	m.setDefaults()
	return m.AllSettings()
}

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
	logger    zerolog.Logger
}

// NewManager creates a configuration manager. An empty configFile searches
// config.toml in the XDG config directory and the working directory.
func NewManager(configFile string) (*Manager, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")

		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w", err)
		}
		v.AddConfigPath(configDir)
		v.AddConfigPath(".")
	}

	// DOCKYARD_WORKSPACE_RESIZE_STEP_PERCENT, DOCKYARD_DOCKS_LEFT_OPEN, ...
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, env := range envOverrides {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
		logger:    zerolog.Nop(),
	}, nil
}

// SetLogger sets the logger used for reload diagnostics.
func (m *Manager) SetLogger(logger zerolog.Logger) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger = logger.With().Str("component", "config").Logger()
}

// Load loads the configuration from file and environment variables.
// A missing config file is not an error: defaults apply.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file %s: %w", m.configFileName(), err)
		}
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}

// Get returns the current configuration, or the defaults before Load.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	return m.config
}

// ConfigFileUsed returns the path of the file that was read, if any.
func (m *Manager) ConfigFileUsed() string {
	return m.viper.ConfigFileUsed()
}

// AllSettings returns every known key, flattened with dots, with its
// effective value.
func (m *Manager) AllSettings() map[string]any {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]any)
	for _, key := range m.viper.AllKeys() {
		out[key] = m.viper.Get(key)
	}
	return out
}

// Watch starts watching the config file for changes and reloads automatically.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil // Already watching
	}
	if m.viper.ConfigFileUsed() == "" {
		return fmt.Errorf("no config file to watch")
	}

	m.viper.OnConfigChange(m.handleConfigChange)
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

func (m *Manager) handleConfigChange(e fsnotify.Event) {
	m.mu.Lock()
	log := m.logger
	log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config change detected")

	if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
		m.mu.Unlock()
		return
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		log.Warn().Err(err).Msg("failed to reload config")
		m.mu.Unlock()
		return
	}
	m.config = config
	m.notifyCallbacksLocked()
}

// notifyCallbacksLocked copies callbacks and config, releases lock, then notifies.
// Must be called with m.mu held for write. Releases the lock before calling callbacks.
func (m *Manager) notifyCallbacksLocked() {
	config := m.config
	callbacks := make([]func(*Config), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, callback := range callbacks {
		callback(config)
	}
}

// OnConfigChange registers a callback function to be called when config changes.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", m.configFileName(), err)
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

func (m *Manager) configFileName() string {
	if f := m.viper.ConfigFileUsed(); f != "" {
		return f
	}
	dir, _ := GetConfigDir()
	return filepath.Join(dir, "config.toml")
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.file", defaults.Logging.File)

	m.viper.SetDefault("workspace.resize_step_percent", defaults.Workspace.ResizeStepPercent)
	m.viper.SetDefault("workspace.min_pane_percent", defaults.Workspace.MinPanePercent)
	m.viper.SetDefault("workspace.empty_state_text", defaults.Workspace.EmptyStateText)

	m.viper.SetDefault("docks.left.size", defaults.Docks.Left.Size)
	m.viper.SetDefault("docks.left.open", defaults.Docks.Left.Open)
	m.viper.SetDefault("docks.bottom.size", defaults.Docks.Bottom.Size)
	m.viper.SetDefault("docks.bottom.open", defaults.Docks.Bottom.Open)
	m.viper.SetDefault("docks.right.size", defaults.Docks.Right.Size)
	m.viper.SetDefault("docks.right.open", defaults.Docks.Right.Open)

	m.viper.SetDefault("appearance.text_color", defaults.Appearance.TextColor)
	m.viper.SetDefault("appearance.muted_color", defaults.Appearance.MutedColor)
	m.viper.SetDefault("appearance.border_color", defaults.Appearance.BorderColor)
	m.viper.SetDefault("appearance.active_border_color", defaults.Appearance.ActiveBorderColor)
}
