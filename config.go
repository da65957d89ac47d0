package lovelog

import (
	"os"

	"github.com/lovelog/lovelog/formatter"
)

// DefaultFilterEnv is the environment variable consulted for the
// minimum level when no custom name is given, and the prefix for the
// per-flag override variables.
const DefaultFilterEnv = "GO_LOG"

// Environment-variable suffixes appended to the primary variable name
// to override individual Config flags.
const (
	suffixShortLevels        = "_SHORT_LEVELS"
	suffixWithFileName       = "_WITH_FILE_NAME"
	suffixWithLineNumber     = "_WITH_LINE_NUMBER"
	suffixWithPadding        = "_WITH_PADDING"
	suffixWithTimestamps     = "_WITH_TIMESTAMPS"
	suffixWithRelativeStamps = "_WITH_RELATIVE_TIMESTAMPS"
)

// Config controls how the pretty formatter renders log lines. A Config
// is resolved once at initialization (caller default merged with
// environment overrides) and is immutable afterwards.
type Config struct {
	// ShortLevels renders 3-character level labels instead of 5-character ones.
	ShortLevels bool
	// WithFileName appends the call site's file name after the target.
	WithFileName bool
	// WithLineNumber appends the call site's line number after the target
	// (after the file name when both are set).
	WithLineNumber bool
	// WithPadding aligns the target+location column across lines.
	WithPadding bool
	// WithTimestamps prefixes each line with an absolute timestamp.
	WithTimestamps bool
	// WithRelativeTimestamps prefixes each line with the elapsed time
	// since the previous line. Ignored when WithTimestamps is also set.
	WithRelativeTimestamps bool
	// ForceColors emits ANSI codes even when stderr is not a terminal.
	ForceColors bool
	// DisableColors strips all ANSI styling.
	DisableColors bool
}

// DefaultConfig returns a Config with everything off: long level
// labels, no call-site info, no padding, no timestamps.
func DefaultConfig() Config {
	return Config{}
}

// TimedConfig returns a Config with absolute timestamps enabled.
func TimedConfig() Config {
	return Config{WithTimestamps: true}
}

// RelativeTimedConfig returns a Config with relative timestamps enabled.
func RelativeTimedConfig() Config {
	return Config{WithRelativeTimestamps: true}
}

// FromEnvOr returns def with each flag overridden by the environment
// variable <envName><suffix> when that variable is set to exactly "1".
// Any other value, including absence, keeps the caller's default; a
// malformed value is never an error. The environment is only read,
// never mutated, so resolving twice yields identical results.
func FromEnvOr(def Config, envName string) Config {
	def.ShortLevels = envBool(envName+suffixShortLevels, def.ShortLevels)
	def.WithFileName = envBool(envName+suffixWithFileName, def.WithFileName)
	def.WithLineNumber = envBool(envName+suffixWithLineNumber, def.WithLineNumber)
	def.WithPadding = envBool(envName+suffixWithPadding, def.WithPadding)
	def.WithTimestamps = envBool(envName+suffixWithTimestamps, def.WithTimestamps)
	def.WithRelativeTimestamps = envBool(envName+suffixWithRelativeStamps, def.WithRelativeTimestamps)
	return def
}

// envBool returns true when the variable is set to exactly "1",
// otherwise the default.
func envBool(name string, def bool) bool {
	if os.Getenv(name) == "1" {
		return true
	}
	return def
}

// TimestampMode collapses the two timestamp flags into the formatter's
// three-way mode. Absolute wins deterministically when both are set.
func (c Config) TimestampMode() formatter.TimestampMode {
	switch {
	case c.WithTimestamps:
		return formatter.TimestampAbsolute
	case c.WithRelativeTimestamps:
		return formatter.TimestampRelative
	default:
		return formatter.TimestampNone
	}
}
