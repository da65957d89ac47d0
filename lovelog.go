// Package lovelog installs a logger configured via environment
// variables which writes to standard error with nice colored output
// for log levels.
//
// Typical use is one call early in main:
//
//	lovelog.InitDefault()
//
//	log := logger.Named("app")
//	log.Info("such information")
//	log.Warn("o_O")
//
// Run the program with GO_LOG=trace (or debug, info, warn, error) to
// pick the minimum level. Individual rendering flags can be flipped
// per process with GO_LOG_SHORT_LEVELS=1, GO_LOG_WITH_PADDING=1,
// GO_LOG_WITH_TIMESTAMPS=1 and friends; see Config.
//
// The global logger may only be installed once. The Init functions
// panic on a second attempt, the TryInit functions return an error.
package lovelog

import (
	"os"

	colorable "github.com/mattn/go-colorable"
	isatty "github.com/mattn/go-isatty"

	"github.com/lovelog/lovelog/formatter"
	"github.com/lovelog/lovelog/handler"
	"github.com/lovelog/lovelog/logger"
)

// Init merges cfg with environment overrides and installs the global
// logger. It panics if a global logger has already been installed.
func Init(cfg Config) {
	if err := TryInit(cfg); err != nil {
		panic(err)
	}
}

// InitDefault installs the global logger with default settings. It
// panics if a global logger has already been installed.
func InitDefault() {
	if err := TryInitDefault(); err != nil {
		panic(err)
	}
}

// InitCustomEnv is like Init but reads the minimum level and the flag
// overrides from variables named after envName instead of
// DefaultFilterEnv. It panics if a global logger has already been
// installed.
func InitCustomEnv(cfg Config, envName string) {
	if err := TryInitCustomEnv(cfg, envName); err != nil {
		panic(err)
	}
}

// TryInit merges cfg with environment overrides and installs the
// global logger, reporting logger.ErrGlobalAlreadySet if one has
// already been installed.
func TryInit(cfg Config) error {
	return TryInitCustomEnv(cfg, DefaultFilterEnv)
}

// TryInitDefault installs the global logger with default settings,
// reporting logger.ErrGlobalAlreadySet if one has already been
// installed.
func TryInitDefault() error {
	return TryInit(DefaultConfig())
}

// TryInitCustomEnv resolves cfg against the environment (see
// FromEnvOr), builds the pretty logger, applies the minimum level from
// the primary variable if present, and installs the result as the
// process-wide logger. A second call reports
// logger.ErrGlobalAlreadySet.
func TryInitCustomEnv(cfg Config, envName string) error {
	b := NewBuilderCustomEnv(cfg, envName)
	return logger.SetGlobal(b.Build())
}

// NewBuilder returns a logger.Builder preconfigured with the pretty
// formatter for cfg, for callers who want to customize (handler,
// target, level) before installing or using the logger themselves.
// Environment overrides for DefaultFilterEnv are applied.
func NewBuilder(cfg Config) *logger.Builder {
	return NewBuilderCustomEnv(cfg, DefaultFilterEnv)
}

// NewBuilderCustomEnv is NewBuilder with a custom primary variable name.
func NewBuilderCustomEnv(cfg Config, envName string) *logger.Builder {
	resolved := FromEnvOr(cfg, envName)

	h := handler.NewStreamHandler(handler.StreamConfig{
		Writer:    colorable.NewColorableStderr(),
		Formatter: NewFormatter(resolved),
	})

	b := logger.NewBuilder().
		WithHandler(h).
		WithCaller(resolved.WithFileName || resolved.WithLineNumber)

	if v := os.Getenv(envName); v != "" {
		b.WithLevel(logger.ParseLevel(v))
	}

	return b
}

// NewFormatter builds the pretty formatter for an already-resolved
// Config. Colors are enabled only when stderr is a terminal, unless
// the config forces them one way or the other. NO_COLOR always wins
// over detection (but not over ForceColors).
func NewFormatter(cfg Config) *formatter.PrettyFormatter {
	tty := stderrIsTerminal()
	return formatter.NewPrettyFormatter(formatter.PrettyConfig{
		ShortLevels:   cfg.ShortLevels,
		IncludeFile:   cfg.WithFileName,
		IncludeLine:   cfg.WithLineNumber,
		Padding:       cfg.WithPadding,
		Timestamps:    cfg.TimestampMode(),
		ForceColors:   cfg.ForceColors || (!cfg.DisableColors && tty),
		DisableColors: cfg.DisableColors || (!cfg.ForceColors && !tty),
	})
}

// stderrIsTerminal reports whether colorized output should go to
// stderr: the fd is a terminal (including Cygwin/MSYS ptys) and
// NO_COLOR is not set. fatih/color keys its global NoColor switch off
// stdout, which is the wrong stream here, so detection is explicit.
func stderrIsTerminal() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
