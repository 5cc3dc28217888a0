// Package config provides user preference management for cardform.
//
// Preferences live in a YAML file at a platform-appropriate location:
//   - Linux: $XDG_CONFIG_HOME/cardform/config.yaml or $HOME/.config/cardform/config.yaml
//   - macOS: $HOME/.config/cardform/config.yaml
//   - Windows: %LOCALAPPDATA%\cardform\config.yaml
//
// Load reads the file with viper, so any key can be overridden from the
// environment using the CARDFORM_ prefix (CARDFORM_TOAST_SECONDS=5). A
// missing file yields defaults. Save writes YAML atomically through a
// temporary file.
//
// # Security
//
// This package NEVER stores card numbers, holder names, expiry dates or
// security codes. Only display and logging preferences are persisted.
package config
