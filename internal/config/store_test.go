package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestGetConfigDir(t *testing.T) {
	if runtime.GOOS != "windows" && runtime.GOOS != "darwin" {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	}

	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}
	if !strings.Contains(configDir, "cardform") {
		t.Errorf("GetConfigDir() = %v, should contain 'cardform'", configDir)
	}
	if runtime.GOOS == "linux" && configDir != filepath.Join("/tmp/xdg", "cardform") {
		t.Errorf("GetConfigDir() = %v, want XDG path", configDir)
	}
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}
	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "config.yaml")

	prefs, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *prefs != *NewPreferences() {
		t.Errorf("Load() = %+v, want defaults %+v", prefs, NewPreferences())
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cardform", "config.yaml")

	prefs := NewPreferences()
	prefs.LogLevel = "debug"
	prefs.LogFile = "/tmp/cardform.log"
	prefs.ToastSeconds = 5
	prefs.AltScreen = false
	prefs.HolderPlaceholder = "JANE DOE"

	if err := prefs.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file left behind")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.HasPrefix(string(data), "# cardform configuration file") {
		t.Error("saved file is missing header comment")
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *loaded != *prefs {
		t.Errorf("Load() = %+v, want %+v", loaded, prefs)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := NewPreferences().Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	t.Setenv("CARDFORM_TOAST_SECONDS", "7")

	prefs, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if prefs.ToastSeconds != 7 {
		t.Errorf("ToastSeconds = %d, want 7", prefs.ToastSeconds)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		check   func(error) bool
	}{
		{
			name:    "unknown version",
			content: "version: 9\n",
			check: func(err error) bool {
				var ve *VersionError
				return errors.As(err, &ve) && ve.Got == 9
			},
		},
		{
			name:    "negative toast",
			content: "version: 1\ntoast_seconds: -1\n",
			check: func(err error) bool {
				var fe *FieldError
				return errors.As(err, &fe) && fe.Key == "toast_seconds"
			},
		},
		{
			name:    "bad log level",
			content: "version: 1\nlog_level: loud\n",
			check: func(err error) bool {
				var fe *FieldError
				return errors.As(err, &fe) && fe.Key == "log_level"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil || !tt.check(err) {
				t.Errorf("Load() error = %v", err)
			}
		})
	}
}

func TestCreateDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	created, err := CreateDefaultConfig(path)
	if err != nil || !created {
		t.Fatalf("CreateDefaultConfig() = %v, %v", created, err)
	}

	created, err = CreateDefaultConfig(path)
	if err != nil || created {
		t.Errorf("second CreateDefaultConfig() = %v, %v; want false, nil", created, err)
	}
}
