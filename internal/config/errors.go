package config

import "fmt"

// VersionError is returned when the config file declares an unknown schema version.
type VersionError struct {
	Got int
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("unsupported config version: %d (expected %d)", e.Got, CurrentVersion)
}

// FieldError is returned when a single preference has an unusable value.
type FieldError struct {
	Key    string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Key, e.Reason)
}
