package core

import (
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

// Level represents the severity level of a log entry
type Level int8

const (
	// TraceLevel for very fine-grained tracing output
	TraceLevel Level = iota
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages (default)
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "TRACE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Entry represents a single log record with all its metadata
type Entry struct {
	Time    time.Time
	Level   Level
	Target  string
	Message string
	Caller  CallerInfo
}

// CallerInfo contains information about the call site
type CallerInfo struct {
	File      string
	ShortFile string
	Line      int
	Defined   bool
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{}
	},
}

// GetEntry retrieves an Entry from the pool
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	e.Time = time.Now()
	e.Target = ""
	e.Caller = CallerInfo{}
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	e.Target = ""
	e.Message = ""
	e.Caller = CallerInfo{}
	entryPool.Put(e)
}

// GetCaller retrieves caller information
func GetCaller(skip int) CallerInfo {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return CallerInfo{}
	}

	return CallerInfo{
		File:      file,
		ShortFile: filepath.Base(file),
		Line:      line,
		Defined:   true,
	}
}
