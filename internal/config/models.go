package config

// CurrentVersion is the schema version written to new config files.
const CurrentVersion = 1

// Defaults for Preferences.
const (
	DefaultToastSeconds      = 3
	DefaultAltScreen         = true
	DefaultHolderPlaceholder = "WISE ENESI"
)

// Preferences represents application-wide user preferences.
// Card data is never part of this struct.
type Preferences struct {
	Version           int    `yaml:"version" mapstructure:"version"`
	LogLevel          string `yaml:"log_level,omitempty" mapstructure:"log_level"`          // debug, info, warn, error; empty is silent
	LogFile           string `yaml:"log_file,omitempty" mapstructure:"log_file"`            // Log destination while the form is running
	ToastSeconds      int    `yaml:"toast_seconds" mapstructure:"toast_seconds"`           // How long the submit toast stays up
	AltScreen         bool   `yaml:"alt_screen" mapstructure:"alt_screen"`                 // Run the form in the alternate screen buffer
	HolderPlaceholder string `yaml:"holder_placeholder" mapstructure:"holder_placeholder"` // Preview text for an empty holder name
}

// NewPreferences creates Preferences with default values.
func NewPreferences() *Preferences {
	return &Preferences{
		Version:           CurrentVersion,
		ToastSeconds:      DefaultToastSeconds,
		AltScreen:         DefaultAltScreen,
		HolderPlaceholder: DefaultHolderPlaceholder,
	}
}

// Validate checks that loaded values are usable.
func (p *Preferences) Validate() error {
	if p.Version != CurrentVersion {
		return &VersionError{Got: p.Version}
	}
	if p.ToastSeconds < 0 {
		return &FieldError{Key: "toast_seconds", Reason: "must not be negative"}
	}
	switch p.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return &FieldError{Key: "log_level", Reason: "must be one of debug, info, warn, error"}
	}
	return nil
}
