package aggregator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sumantkashyav/Log-Analysis-Script/internal/model"
)

// Aggregator consumes parse results in a single pass and produces a Summary.
// Counts are independent of input order; only the report layer imposes an
// ordering (sorted by key).
type Aggregator struct {
	files    int
	total    int64
	failures int64
	skipped  int64

	levels  map[string]int64
	reasons map[string]int64

	// entity extraction, enabled by configuring one or more keys
	entityRes map[string]*regexp.Regexp
	entities  map[string]map[string]int64

	// ERROR-record count per entity key and value, for threshold flagging
	threshold   int
	errorCounts map[string]map[string]int64
}

// New creates an Aggregator. entityKeys names message fields to extract and
// count (a `Key: value` pattern, e.g. UserID). threshold > 0 additionally
// flags, per entity key, values with more than threshold ERROR records.
func New(entityKeys []string, threshold int) *Aggregator {
	a := &Aggregator{
		levels:    make(map[string]int64),
		reasons:   make(map[string]int64),
		threshold: threshold,
	}

	if len(entityKeys) > 0 {
		a.entityRes = make(map[string]*regexp.Regexp)
		a.entities = make(map[string]map[string]int64)
		a.errorCounts = make(map[string]map[string]int64)
		for _, key := range entityKeys {
			a.entityRes[key] = regexp.MustCompile(`\b` + regexp.QuoteMeta(key) + `:\s*(\S+)`)
			a.entities[key] = make(map[string]int64)
			a.errorCounts[key] = make(map[string]int64)
		}
	}

	return a
}

// SetFiles records how many input files fed this run.
func (a *Aggregator) SetFiles(n int) {
	a.files = n
}

// Add counts one successfully parsed record.
func (a *Aggregator) Add(rec model.LogRecord) {
	a.total++
	a.levels[rec.Level]++

	isError := strings.EqualFold(rec.Level, "ERROR")

	for key, re := range a.entityRes {
		m := re.FindStringSubmatch(rec.Message)
		if m == nil {
			continue
		}
		a.entities[key][m[1]]++
		if isError {
			a.errorCounts[key][m[1]]++
		}
	}
}

// AddFailure counts one unparsable line. Blank lines are tallied as skipped
// and excluded from the failure count.
func (a *Aggregator) AddFailure(f *model.ParseFailure) {
	if f.Reason == model.ReasonMalformed && strings.TrimSpace(f.Raw) == "" {
		a.skipped++
		return
	}
	a.failures++
	a.reasons[string(f.Reason)]++
}

// Summary produces the aggregate for the run seen so far. The returned value
// owns copies of all maps; further Add calls do not affect it.
func (a *Aggregator) Summary() model.Summary {
	s := model.Summary{
		Files:          a.files,
		Total:          a.total,
		Failures:       a.failures,
		Skipped:        a.skipped,
		Levels:         copyCounts(a.levels),
		FailureReasons: copyCounts(a.reasons),
	}

	if a.entities != nil {
		s.Entities = make(map[string]map[string]int64, len(a.entities))
		for key, counts := range a.entities {
			s.Entities[key] = copyCounts(counts)
		}
	}

	if a.threshold > 0 {
		for key, counts := range a.errorCounts {
			for value, n := range counts {
				if n > int64(a.threshold) {
					if s.Suspicious == nil {
						s.Suspicious = make(map[string]map[string]int64)
					}
					if s.Suspicious[key] == nil {
						s.Suspicious[key] = make(map[string]int64)
					}
					s.Suspicious[key][value] = n
				}
			}
		}
	}

	return s
}

// ValidateKeys rejects entity keys that are not plain identifiers, before any
// input is read.
func ValidateKeys(keys []string) error {
	ident := regexp.MustCompile(`^\w+$`)
	for _, k := range keys {
		if !ident.MatchString(k) {
			return fmt.Errorf("invalid entity key %q: must be a plain identifier", k)
		}
	}
	return nil
}

func copyCounts(src map[string]int64) map[string]int64 {
	dst := make(map[string]int64, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
