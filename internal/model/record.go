package model

import "time"

// TimestampLayout is the date-time layout inside the leading brackets of a log line.
const TimestampLayout = "2006-01-02 15:04:05"

// LogRecord represents a single parsed log line.
type LogRecord struct {
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"`   // severity token, verbatim (INFO, WARNING, ...)
	Message   string    `json:"message"` // text after the level marker
	Source    string    `json:"source"`  // originating file path
	Line      int       `json:"line"`    // 1-based line number within the file
}

// FailReason classifies why a line could not be parsed.
type FailReason string

const (
	ReasonMissingTimestamp FailReason = "missing timestamp"
	ReasonMissingLevel     FailReason = "missing level"
	ReasonMalformed        FailReason = "malformed line"
)

// ParseFailure describes one line that did not match the expected shape.
// Failures are counted, never fatal: a bad line must not stop the run.
type ParseFailure struct {
	Source string     `json:"source"`
	Line   int        `json:"line"`
	Raw    string     `json:"raw"`
	Reason FailReason `json:"reason"`
}

// RawLine is one line of input text tagged with its origin.
type RawLine struct {
	Source string
	Number int
	Text   string
}
