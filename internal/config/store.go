package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	appName    = "cardform"
	configFile = "config.yaml"

	// EnvPrefix is prepended to environment overrides, e.g. CARDFORM_TOAST_SECONDS.
	EnvPrefix = "CARDFORM"
)

// Mutex for thread-safe file operations
var fileMutex sync.Mutex

// GetConfigDir returns the OS-appropriate configuration directory for the application.
// This follows platform conventions:
//   - Linux: $XDG_CONFIG_HOME/cardform or $HOME/.config/cardform
//   - macOS: $HOME/.config/cardform
//   - Windows: %LOCALAPPDATA%\cardform
func GetConfigDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			return filepath.Join(localAppData, appName), nil
		}
		userProfile := os.Getenv("USERPROFILE")
		if userProfile == "" {
			return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
		}
		return filepath.Join(userProfile, "AppData", "Local", appName), nil

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".config", appName), nil

	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".config", appName), nil
	}
}

// GetConfigPath returns the full path to the configuration file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFile), nil
}

// Load reads preferences from path, or from GetConfigPath when path is empty.
// A missing file is not an error: defaults apply. Environment variables with
// the CARDFORM_ prefix override file values.
func Load(path string) (*Preferences, error) {
	if path == "" {
		p, err := GetConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	defaults := NewPreferences()
	v.SetDefault("version", defaults.Version)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("log_file", defaults.LogFile)
	v.SetDefault("toast_seconds", defaults.ToastSeconds)
	v.SetDefault("alt_screen", defaults.AltScreen)
	v.SetDefault("holder_placeholder", defaults.HolderPlaceholder)

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	prefs := &Preferences{}
	if err := v.Unmarshal(prefs); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := prefs.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return prefs, nil
}

// Save writes preferences to path, or to GetConfigPath when path is empty.
// Performs an atomic write to prevent corruption on crash.
func (p *Preferences) Save(path string) error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	if path == "" {
		cp, err := GetConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
		path = cp
	}

	// User-only permissions (0700)
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := p.Marshal()
	if err != nil {
		return err
	}

	header := []byte(`# cardform configuration file
# Display and logging preferences only. Card details are never stored.
#
# Location: ` + path + `

`)
	data = append(header, data...)

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	return nil
}

// Marshal renders preferences as YAML.
func (p *Preferences) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// CreateDefaultConfig writes a default configuration file to path unless one
// already exists there. It reports whether a file was written.
func CreateDefaultConfig(path string) (bool, error) {
	if path == "" {
		cp, err := GetConfigPath()
		if err != nil {
			return false, fmt.Errorf("failed to get config path: %w", err)
		}
		path = cp
	}
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	if err := NewPreferences().Save(path); err != nil {
		return false, err
	}
	return true, nil
}
