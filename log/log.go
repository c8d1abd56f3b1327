// Package log holds the logger configuration shared by the service
// entrypoints.
package log

// Config controls the slog JSON handler of the process.
type Config struct {
	Level     int  `mapstructure:"level"`
	AddSource bool `mapstructure:"add_source"`
}
