package model

// Summary holds the aggregate statistics computed over one run.
// Counts are order-independent; presentation order is fixed by the report layer.
type Summary struct {
	Files    int   `json:"files"`
	Total    int64 `json:"total"`    // records parsed successfully
	Failures int64 `json:"failures"` // lines that failed to parse (blank lines excluded)
	Skipped  int64 `json:"skipped"`  // blank or whitespace-only lines

	Levels         map[string]int64 `json:"level_counts"`
	FailureReasons map[string]int64 `json:"failure_reasons"`

	// Entities maps a configured key (e.g. "UserID") to per-value occurrence counts.
	// Nil when entity extraction is disabled.
	Entities map[string]map[string]int64 `json:"entities,omitempty"`

	// Suspicious mirrors Entities: per entity key, the values whose
	// ERROR-record count exceeded the configured threshold. Counts under
	// different keys never pool, even for identical values.
	Suspicious map[string]map[string]int64 `json:"suspicious,omitempty"`
}
