// Package formatter defines how log entries are serialized into bytes.
//
// It exposes two interfaces: Formatter, which returns a []byte, and
// WriterFormatter, which writes directly to an io.Writer. Handlers
// check for WriterFormatter at construction time and prefer it when
// available, eliminating the intermediate byte slice allocation on
// the write path.
//
// PrettyFormatter is the built-in implementation: it colorizes the
// level label (trace magenta, debug blue, info green, warn yellow,
// error red), renders the target in bold, optionally appends the call
// site as ":file:line", optionally right-pads the target+location
// column to the widest value seen so far in the process, and
// optionally prefixes an absolute or relative timestamp. It uses a
// pooled bytes.Buffer internally and relies on Go's Append-style
// functions (time.AppendFormat, strconv.AppendInt) to keep per-call
// allocations low.
//
// Column alignment is a cross-call concern, so the widest-width state
// lives in an explicit WidthTracker rather than a package global; each
// formatter owns one by default and tests construct their own.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter
