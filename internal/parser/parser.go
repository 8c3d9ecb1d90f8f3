package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/sumantkashyav/Log-Analysis-Script/internal/model"
)

// LineParser converts a raw log line into a LogRecord or a ParseFailure.
// Expected shape: [YYYY-MM-DD HH:MM:SS] LEVEL: free-text message
type LineParser struct {
	tsRe    *regexp.Regexp
	levelRe *regexp.Regexp
}

func New() *LineParser {
	return &LineParser{
		tsRe:    regexp.MustCompile(`^\[(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2})\]`),
		levelRe: regexp.MustCompile(`^\s*(\w+):`),
	}
}

// Parse is a pure function of its input: exactly one of the returned values is
// meaningful. Malformed lines come back as a ParseFailure, never as a panic or
// an error that would abort the run.
func (p *LineParser) Parse(raw string, source string, line int) (model.LogRecord, *model.ParseFailure) {
	if strings.TrimSpace(raw) == "" {
		return model.LogRecord{}, p.failure(raw, source, line, model.ReasonMalformed)
	}

	tsMatch := p.tsRe.FindStringSubmatch(raw)
	if tsMatch == nil {
		return model.LogRecord{}, p.failure(raw, source, line, model.ReasonMissingTimestamp)
	}

	// The bracketed text must be a real date-time, not just digits in the
	// right places.
	ts, err := time.Parse(model.TimestampLayout, tsMatch[1])
	if err != nil {
		return model.LogRecord{}, p.failure(raw, source, line, model.ReasonMissingTimestamp)
	}

	rest := raw[len(tsMatch[0]):]
	lvlMatch := p.levelRe.FindStringSubmatch(rest)
	if lvlMatch == nil {
		return model.LogRecord{}, p.failure(raw, source, line, model.ReasonMissingLevel)
	}

	// Level and message are kept verbatim so reports reproduce the input
	// substrings exactly.
	msg := strings.TrimLeft(rest[len(lvlMatch[0]):], " \t")

	return model.LogRecord{
		Timestamp: ts,
		Level:     lvlMatch[1],
		Message:   msg,
		Source:    source,
		Line:      line,
	}, nil
}

func (p *LineParser) failure(raw, source string, line int, reason model.FailReason) *model.ParseFailure {
	return &model.ParseFailure{
		Source: source,
		Line:   line,
		Raw:    raw,
		Reason: reason,
	}
}
