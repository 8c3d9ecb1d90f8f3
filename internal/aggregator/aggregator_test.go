package aggregator

import (
	"testing"

	"github.com/sumantkashyav/Log-Analysis-Script/internal/model"
)

func rec(level, message string) model.LogRecord {
	return model.LogRecord{Level: level, Message: message}
}

func TestLevelCounts(t *testing.T) {
	agg := New(nil, 0)

	agg.Add(rec("INFO", "a"))
	agg.Add(rec("INFO", "b"))
	agg.Add(rec("ERROR", "c"))
	agg.Add(rec("WARNING", "d"))
	agg.Add(rec("ERROR", "e"))

	s := agg.Summary()
	if s.Total != 5 {
		t.Errorf("expected 5 total, got %d", s.Total)
	}
	if s.Levels["INFO"] != 2 {
		t.Errorf("expected 2 INFO, got %d", s.Levels["INFO"])
	}
	if s.Levels["ERROR"] != 2 {
		t.Errorf("expected 2 ERROR, got %d", s.Levels["ERROR"])
	}
	if s.Levels["WARNING"] != 1 {
		t.Errorf("expected 1 WARNING, got %d", s.Levels["WARNING"])
	}
}

func TestFailureCounts(t *testing.T) {
	agg := New(nil, 0)

	agg.Add(rec("INFO", "ok"))
	agg.AddFailure(&model.ParseFailure{Raw: "garbage", Reason: model.ReasonMissingTimestamp})
	agg.AddFailure(&model.ParseFailure{Raw: "[2024-12-03 10:00:00] no marker", Reason: model.ReasonMissingLevel})
	agg.AddFailure(&model.ParseFailure{Raw: "   ", Reason: model.ReasonMalformed})

	s := agg.Summary()
	if s.Total != 1 {
		t.Errorf("expected 1 record, got %d", s.Total)
	}
	if s.Failures != 2 {
		t.Errorf("expected 2 failures, got %d", s.Failures)
	}
	if s.Skipped != 1 {
		t.Errorf("expected 1 skipped blank line, got %d", s.Skipped)
	}
	if s.FailureReasons[string(model.ReasonMissingTimestamp)] != 1 {
		t.Errorf("expected 1 missing-timestamp failure, got %d", s.FailureReasons[string(model.ReasonMissingTimestamp)])
	}
}

func TestEntityExtraction(t *testing.T) {
	agg := New([]string{"UserID"}, 0)

	agg.Add(rec("INFO", "User logged in - UserID: 12345"))
	agg.Add(rec("INFO", "User logged in - UserID: 12345"))
	agg.Add(rec("INFO", "User logged in - UserID: 67890"))
	agg.Add(rec("INFO", "no entity here"))

	s := agg.Summary()
	users := s.Entities["UserID"]
	if users["12345"] != 2 {
		t.Errorf("expected 2 for 12345, got %d", users["12345"])
	}
	if users["67890"] != 1 {
		t.Errorf("expected 1 for 67890, got %d", users["67890"])
	}
	if len(users) != 2 {
		t.Errorf("expected 2 distinct values, got %d", len(users))
	}
}

func TestEntityExtractionDisabled(t *testing.T) {
	agg := New(nil, 0)
	agg.Add(rec("INFO", "UserID: 12345"))

	if s := agg.Summary(); s.Entities != nil {
		t.Errorf("expected nil entities when disabled, got %v", s.Entities)
	}
}

func TestSuspiciousThreshold(t *testing.T) {
	agg := New([]string{"UserID"}, 2)

	// Three failed logins for 666, one for 777.
	for i := 0; i < 3; i++ {
		agg.Add(rec("ERROR", "Failed login attempt - UserID: 666"))
	}
	agg.Add(rec("ERROR", "Failed login attempt - UserID: 777"))
	agg.Add(rec("INFO", "User logged in - UserID: 666"))

	s := agg.Summary()
	if s.Suspicious["UserID"]["666"] != 3 {
		t.Errorf("expected 666 flagged with 3, got %v", s.Suspicious)
	}
	if _, ok := s.Suspicious["UserID"]["777"]; ok {
		t.Errorf("777 is below the threshold: %v", s.Suspicious)
	}
}

func TestSuspiciousCountsDoNotPoolAcrossKeys(t *testing.T) {
	agg := New([]string{"UserID", "OrderID"}, 2)

	// The value 42 appears under both keys; neither side alone crosses the
	// threshold, so neither may be flagged.
	agg.Add(rec("ERROR", "lookup failed - UserID: 42"))
	agg.Add(rec("ERROR", "lookup failed - UserID: 42"))
	agg.Add(rec("ERROR", "charge failed - OrderID: 42"))

	s := agg.Summary()
	if len(s.Suspicious) != 0 {
		t.Errorf("expected no flags with per-key counts of 2 and 1, got %v", s.Suspicious)
	}

	// A third UserID error tips only UserID over.
	agg.Add(rec("ERROR", "lookup failed - UserID: 42"))

	s = agg.Summary()
	if s.Suspicious["UserID"]["42"] != 3 {
		t.Errorf("expected UserID 42 flagged with 3, got %v", s.Suspicious)
	}
	if _, ok := s.Suspicious["OrderID"]; ok {
		t.Errorf("OrderID must not be flagged: %v", s.Suspicious)
	}
}

func TestSummaryIsASnapshot(t *testing.T) {
	agg := New(nil, 0)
	agg.Add(rec("INFO", "a"))

	s := agg.Summary()
	agg.Add(rec("INFO", "b"))

	if s.Total != 1 || s.Levels["INFO"] != 1 {
		t.Errorf("summary mutated by later Add: %+v", s)
	}
}

func TestValidateKeys(t *testing.T) {
	if err := ValidateKeys([]string{"UserID", "RequestID"}); err != nil {
		t.Errorf("unexpected error for valid keys: %v", err)
	}
	if err := ValidateKeys([]string{"User ID"}); err == nil {
		t.Error("expected error for key with space")
	}
	if err := ValidateKeys([]string{""}); err == nil {
		t.Error("expected error for empty key")
	}
}
