package formatter

import (
	"bytes"
	"io"
	"strconv"
	"time"

	"github.com/mowl-logging/mowl/core"
)

// TextFormatter renders log entries as single colorized lines of the
// form "[timestamp] [module] [LEVEL] message".
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	return &TextFormatter{Config: cfg}
}

// pre-formatted level strings to avoid multiple WriteString calls
var levelBrackets = [...]string{
	core.TraceLevel: "[TRACE] ",
	core.DebugLevel: "[DEBUG] ",
	core.InfoLevel:  "[INFO] ",
	core.WarnLevel:  "[WARN] ",
	core.ErrorLevel: "[ERROR] ",
}

// same, wrapped in the per-level pen
var coloredLevelBrackets [len(levelBrackets)]string

func init() {
	for i, bracket := range levelBrackets {
		label := bracket[:len(bracket)-1]
		coloredLevelBrackets[i] = string(levelPens[i]) + label + resetSeq + " "
	}
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(entry, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats an entry and writes it directly to the writer
func (f *TextFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(entry, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// formatToBuffer writes the formatted entry into the given buffer
func (f *TextFormatter) formatToBuffer(entry *core.Entry, buf *bytes.Buffer) {
	colors := !f.DisableColors

	// Timestamp - use AppendFormat to avoid string allocation
	if colors {
		timePen.use(buf)
	}
	buf.WriteByte('[')
	buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
	buf.WriteByte(']')
	if colors {
		timePen.drop(buf)
	}
	buf.WriteByte(' ')

	// Originating module, "?" when the caller could not be resolved
	module := entry.Module
	if module == "" {
		module = "?"
	}
	if colors {
		modulePen.use(buf)
	}
	buf.WriteByte('[')
	buf.WriteString(module)
	buf.WriteByte(']')
	if colors {
		modulePen.drop(buf)
	}
	buf.WriteByte(' ')

	// Level - use pre-formatted string
	if idx := int(entry.Level); idx >= 0 && idx < len(levelBrackets) {
		if colors {
			buf.WriteString(coloredLevelBrackets[idx])
		} else {
			buf.WriteString(levelBrackets[idx])
		}
	} else {
		buf.WriteString("[UNKNOWN] ")
	}

	// Caller info if enabled
	if f.IncludeCaller && entry.Caller.Defined {
		buf.WriteByte('[')
		buf.WriteString(entry.Caller.ShortFile)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(entry.Caller.Line))
		buf.WriteString("] ")
	}

	// Message
	buf.WriteString(entry.Message)
	buf.WriteByte('\n')
}
