package core

import (
	"strings"
	"testing"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{TraceLevel, "TRACE"},
		{DebugLevel, "DEBUG"},
		{InfoLevel, "INFO"},
		{WarnLevel, "WARN"},
		{ErrorLevel, "ERROR"},
		{Level(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestLevel_Ordering(t *testing.T) {
	if !(TraceLevel < DebugLevel && DebugLevel < InfoLevel &&
		InfoLevel < WarnLevel && WarnLevel < ErrorLevel) {
		t.Error("levels are not ordered by increasing severity")
	}
}

func TestEntryPool_Reset(t *testing.T) {
	e := GetEntry()
	e.Level = ErrorLevel
	e.Target = "app::net"
	e.Message = "boom"
	e.Caller = CallerInfo{File: "/x/y.go", ShortFile: "y.go", Line: 7, Defined: true}
	PutEntry(e)

	e2 := GetEntry()
	if e2.Target != "" {
		t.Errorf("recycled entry kept target %q", e2.Target)
	}
	if e2.Caller.Defined {
		t.Error("recycled entry kept caller info")
	}
	if e2.Time.IsZero() {
		t.Error("GetEntry did not stamp the entry time")
	}
	PutEntry(e2)
}

func TestPutEntry_Nil(t *testing.T) {
	PutEntry(nil) // must not panic
}

func TestGetCaller(t *testing.T) {
	info := GetCaller(1)
	if !info.Defined {
		t.Fatal("expected caller info to be defined")
	}
	if !strings.HasSuffix(info.ShortFile, "entry_test.go") {
		t.Errorf("expected entry_test.go, got %q", info.ShortFile)
	}
	if info.Line <= 0 {
		t.Errorf("expected positive line number, got %d", info.Line)
	}
}

func TestGetCaller_TooDeep(t *testing.T) {
	info := GetCaller(10_000)
	if info.Defined {
		t.Error("expected undefined caller info for an absurd skip")
	}
}
