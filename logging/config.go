package logging

// Profile names a logging output shape, used only to pick sane sink
// defaults; there is no profile-gated feature set to validate.
type Profile string

const (
	ProfileSimple     Profile = "SIMPLE"
	ProfileStructured Profile = "STRUCTURED"
)

// Config holds logger configuration: a default severity, the service name
// stamped onto every record, and the output sinks to write to.
type Config struct {
	Profile      Profile        `json:"profile"`
	DefaultLevel string         `json:"defaultLevel"`
	Service      string         `json:"service"`
	Environment  string         `json:"environment,omitempty"`
	Sinks        []SinkConfig   `json:"sinks"`
	StaticFields map[string]any `json:"staticFields,omitempty"`
}

// SinkConfig defines one log output destination.
type SinkConfig struct {
	Type   string          `json:"type"` // "console" or "file"
	Level  string          `json:"level,omitempty"`
	Format string          `json:"format"` // "json" or "console"
	File   *FileSinkConfig `json:"file,omitempty"`
}

// FileSinkConfig configures a rotated file sink, backed by lumberjack.
type FileSinkConfig struct {
	Path       string `json:"path"`
	MaxSize    int    `json:"maxSize"` // MB
	MaxAge     int    `json:"maxAge"`  // days
	MaxBackups int    `json:"maxBackups"`
	Compress   bool   `json:"compress"`
}

// DefaultConfig returns a console-only SIMPLE-profile configuration for
// service, logging at INFO to stderr.
func DefaultConfig(service string) *Config {
	return &Config{
		Profile:      ProfileSimple,
		DefaultLevel: "INFO",
		Service:      service,
		Sinks: []SinkConfig{
			{Type: "console", Format: "console"},
		},
	}
}
