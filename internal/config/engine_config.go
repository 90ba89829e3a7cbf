package config

// EngineConfig holds the host-facing extraction settings. These decide
// whether and how callers invoke the engine; the engine's own input-size
// and output-count ceilings are fixed constants in the dispatcher and are
// independent of this configuration.
type EngineConfig struct {
	// SafetyEnabled gates extraction entirely; hosts check it before
	// calling the engine.
	SafetyEnabled bool `json:"safety_enabled" yaml:"safety_enabled"`
	// SizeWarningBytes is the document size above which hosts warn the
	// user before scanning. Zero disables the warning.
	SizeWarningBytes int `json:"size_warning_bytes,omitempty" yaml:"size_warning_bytes,omitempty" validate:"omitempty,min=0"`
	// DefaultFormat is used when the host cannot determine a document's
	// format tag.
	DefaultFormat string `json:"default_format,omitempty" yaml:"default_format,omitempty"`
}

// NewDefaultEngineConfig creates default engine configuration.
func NewDefaultEngineConfig() EngineConfig {
	return EngineConfig{
		SafetyEnabled:    true,
		SizeWarningBytes: DefaultSizeWarningBytes,
		DefaultFormat:    DefaultFormatTag,
	}
}
