package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/sumantkashyav/Log-Analysis-Script/internal/model"
)

// Format selects the on-disk report layout.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatText Format = "text"
)

// ParseFormat validates a format name from configuration.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV, FormatText:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unsupported report format %q (want csv or text)", s)
	}
}

// Writer serializes a Summary into report files under a destination
// directory. File names are fixed and every map is emitted sorted by key, so
// identical input produces byte-identical output.
type Writer struct {
	dir    string
	format Format
}

func NewWriter(dir string, format Format) *Writer {
	return &Writer{dir: dir, format: format}
}

// Write creates the destination directory if needed and writes the summary
// report, plus an entities report when entity extraction ran. Each file is
// written to a temp path and renamed into place, so a failed run never leaves
// a half-written report behind.
func (w *Writer) Write(s model.Summary) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("create output directory %s: %w", w.dir, err)
	}

	ext := ".txt"
	if w.format == FormatCSV {
		ext = ".csv"
	}

	if err := w.writeFile("summary"+ext, w.renderSummary(s)); err != nil {
		return err
	}

	if s.Entities != nil {
		if err := w.writeFile("entities"+ext, w.renderEntities(s)); err != nil {
			return err
		}
	}

	return nil
}

func (w *Writer) renderSummary(s model.Summary) []byte {
	if w.format == FormatCSV {
		var buf bytes.Buffer
		cw := csv.NewWriter(&buf)
		cw.Write([]string{"level", "count"})
		for _, level := range sortedKeys(s.Levels) {
			cw.Write([]string{level, strconv.FormatInt(s.Levels[level], 10)})
		}
		cw.Flush()
		return buf.Bytes()
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Files read: %d\n", s.Files)
	fmt.Fprintf(&buf, "Total records: %d\n", s.Total)
	fmt.Fprintf(&buf, "Parse failures: %d\n", s.Failures)
	fmt.Fprintf(&buf, "Skipped lines: %d\n", s.Skipped)
	buf.WriteByte('\n')
	for _, level := range sortedKeys(s.Levels) {
		fmt.Fprintf(&buf, "%s: %d\n", level, s.Levels[level])
	}
	return buf.Bytes()
}

func (w *Writer) renderEntities(s model.Summary) []byte {
	if w.format == FormatCSV {
		var buf bytes.Buffer
		cw := csv.NewWriter(&buf)
		cw.Write([]string{"entity", "value", "count"})
		for _, key := range sortedEntityKeys(s.Entities) {
			counts := s.Entities[key]
			for _, value := range sortedKeys(counts) {
				cw.Write([]string{key, value, strconv.FormatInt(counts[value], 10)})
			}
		}
		if len(s.Suspicious) > 0 {
			cw.Write([]string{})
			cw.Write([]string{"suspicious_entity", "value", "error_count"})
			for _, key := range sortedEntityKeys(s.Suspicious) {
				counts := s.Suspicious[key]
				for _, value := range sortedKeys(counts) {
					cw.Write([]string{key, value, strconv.FormatInt(counts[value], 10)})
				}
			}
		}
		cw.Flush()
		return buf.Bytes()
	}

	var buf bytes.Buffer
	for _, key := range sortedEntityKeys(s.Entities) {
		counts := s.Entities[key]
		fmt.Fprintf(&buf, "%s:\n", key)
		for _, value := range sortedKeys(counts) {
			fmt.Fprintf(&buf, "  %s: %d\n", value, counts[value])
		}
	}
	if len(s.Suspicious) > 0 {
		buf.WriteString("\nSuspicious activity (errors above threshold):\n")
		for _, key := range sortedEntityKeys(s.Suspicious) {
			counts := s.Suspicious[key]
			for _, value := range sortedKeys(counts) {
				fmt.Fprintf(&buf, "  %s %s: %d\n", key, value, counts[value])
			}
		}
	}
	return buf.Bytes()
}

// writeFile writes atomically: temp file in the same directory, then rename.
func (w *Writer) writeFile(name string, data []byte) error {
	path := filepath.Join(w.dir, name)
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}

func sortedKeys(m map[string]int64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedEntityKeys(m map[string]map[string]int64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
