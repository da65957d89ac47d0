package lovelog

import (
	"testing"

	"github.com/lovelog/lovelog/formatter"
)

func TestFromEnvOr_OverridesWin(t *testing.T) {
	t.Setenv("MYAPP_LOG_SHORT_LEVELS", "1")
	t.Setenv("MYAPP_LOG_WITH_PADDING", "1")

	cfg := FromEnvOr(DefaultConfig(), "MYAPP_LOG")
	if !cfg.ShortLevels {
		t.Error("MYAPP_LOG_SHORT_LEVELS=1 did not enable ShortLevels")
	}
	if !cfg.WithPadding {
		t.Error("MYAPP_LOG_WITH_PADDING=1 did not enable WithPadding")
	}
	if cfg.WithFileName || cfg.WithLineNumber || cfg.WithTimestamps || cfg.WithRelativeTimestamps {
		t.Errorf("untouched flags changed: %+v", cfg)
	}
}

func TestFromEnvOr_OnlyOneEnables(t *testing.T) {
	// Anything but exactly "1" silently keeps the default.
	for _, v := range []string{"0", "yes", "true", "TRUE", " 1", ""} {
		t.Setenv("MYAPP_LOG_WITH_TIMESTAMPS", v)
		cfg := FromEnvOr(DefaultConfig(), "MYAPP_LOG")
		if cfg.WithTimestamps {
			t.Errorf("value %q enabled the flag", v)
		}
	}
}

func TestFromEnvOr_DefaultSurvivesNonsense(t *testing.T) {
	// A true default is not switched off by a non-"1" value.
	t.Setenv("MYAPP_LOG_WITH_TIMESTAMPS", "0")
	cfg := FromEnvOr(TimedConfig(), "MYAPP_LOG")
	if !cfg.WithTimestamps {
		t.Error("default true was dropped by a malformed override")
	}
}

func TestFromEnvOr_AllSuffixes(t *testing.T) {
	t.Setenv("L_SHORT_LEVELS", "1")
	t.Setenv("L_WITH_FILE_NAME", "1")
	t.Setenv("L_WITH_LINE_NUMBER", "1")
	t.Setenv("L_WITH_PADDING", "1")
	t.Setenv("L_WITH_TIMESTAMPS", "1")
	t.Setenv("L_WITH_RELATIVE_TIMESTAMPS", "1")

	cfg := FromEnvOr(DefaultConfig(), "L")
	want := Config{
		ShortLevels:            true,
		WithFileName:           true,
		WithLineNumber:         true,
		WithPadding:            true,
		WithTimestamps:         true,
		WithRelativeTimestamps: true,
	}
	if cfg != want {
		t.Errorf("FromEnvOr() = %+v, want %+v", cfg, want)
	}
}

func TestFromEnvOr_Idempotent(t *testing.T) {
	t.Setenv("MYAPP_LOG_SHORT_LEVELS", "1")
	t.Setenv("MYAPP_LOG_WITH_FILE_NAME", "0")

	def := TimedConfig()
	first := FromEnvOr(def, "MYAPP_LOG")
	second := FromEnvOr(def, "MYAPP_LOG")
	if first != second {
		t.Errorf("resolution is not idempotent: %+v vs %+v", first, second)
	}
}

func TestConfig_TimestampMode(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want formatter.TimestampMode
	}{
		{"none", DefaultConfig(), formatter.TimestampNone},
		{"absolute", TimedConfig(), formatter.TimestampAbsolute},
		{"relative", RelativeTimedConfig(), formatter.TimestampRelative},
		// Both requested: absolute wins, deterministically.
		{"both", Config{WithTimestamps: true, WithRelativeTimestamps: true}, formatter.TimestampAbsolute},
	}

	for _, tt := range tests {
		if got := tt.cfg.TimestampMode(); got != tt.want {
			t.Errorf("%s: TimestampMode() = %v, want %v", tt.name, got, tt.want)
		}
	}
}
