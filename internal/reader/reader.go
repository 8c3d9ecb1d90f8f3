package reader

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/sumantkashyav/Log-Analysis-Script/internal/model"
)

// ErrPathNotFound means the input path does not exist. It aborts the run
// before any output is produced.
var ErrPathNotFound = errors.New("input path not found")

// logExtensions are the file suffixes treated as log input.
var logExtensions = []string{".log", ".txt"}

// Reader enumerates log files under an input path and streams their lines.
// Enumeration is deterministic: files are visited in lexicographic order, so
// repeated runs over the same input produce identical line sequences.
type Reader struct {
	root      string
	recursive bool
}

func New(root string, recursive bool) *Reader {
	return &Reader{root: root, recursive: recursive}
}

// Files returns the matching input files in sorted order. A root that is a
// plain file is returned as-is regardless of extension. A root directory with
// no matching files is not an error; the caller sees an empty slice.
func (r *Reader) Files() ([]string, error) {
	info, err := os.Stat(r.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, r.root)
		}
		return nil, fmt.Errorf("stat %s: %w", r.root, err)
	}

	if !info.IsDir() {
		return []string{r.root}, nil
	}

	var files []string
	for _, ext := range logExtensions {
		pattern := filepath.Join(r.root, "*"+ext)
		if r.recursive {
			pattern = filepath.Join(r.root, "**", "*"+ext)
		}
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob %s: %w", pattern, err)
		}
		files = append(files, matches...)
	}

	sort.Strings(files)
	return files, nil
}

// Lines streams every line of every matching file, in file order, to visit.
// Each line is tagged with its source file and 1-based line number. The
// sequence is lazy (one bufio scan per file), finite, and restartable: each
// call re-enumerates from scratch. A non-nil error from visit stops the walk.
func (r *Reader) Lines(visit func(model.RawLine) error) error {
	files, err := r.Files()
	if err != nil {
		return err
	}

	for _, path := range files {
		if err := r.readFile(path, visit); err != nil {
			return err
		}
	}
	return nil
}

// readFile scans one file and releases its handle before the next is opened.
func (r *Reader) readFile(path string, visit func(model.RawLine) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	// Allow long lines; default 64K token limit is easy to hit in app logs.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	n := 0
	for scanner.Scan() {
		n++
		if err := visit(model.RawLine{Source: path, Number: n, Text: scanner.Text()}); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}
