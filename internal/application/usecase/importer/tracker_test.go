package importer

import (
	"testing"
	"time"
)

func TestInMemoryImportTracker_Processing(t *testing.T) {
	tracker := NewInMemoryImportTracker()

	t.Run("initially idle", func(t *testing.T) {
		if tracker.IsProcessing() {
			t.Error("expected new tracker to be idle")
		}
	})

	t.Run("SetProcessing marks run in flight", func(t *testing.T) {
		tracker.SetProcessing("job-1")
		if !tracker.IsProcessing() {
			t.Error("expected IsProcessing true after SetProcessing")
		}
		if tracker.GetJobID() != "job-1" {
			t.Errorf("expected job-1, got %s", tracker.GetJobID())
		}
	})

	t.Run("ClearProcessing keeps job ID", func(t *testing.T) {
		tracker.ClearProcessing()
		if tracker.IsProcessing() {
			t.Error("expected idle after ClearProcessing")
		}
		if tracker.GetJobID() != "job-1" {
			t.Errorf("expected last job ID retained, got %s", tracker.GetJobID())
		}
	})
}

func TestInMemoryImportTracker_Errors(t *testing.T) {
	t.Run("error visible before TTL", func(t *testing.T) {
		tracker := NewInMemoryImportTracker()
		tracker.SetError(&ProcessingError{Code: "IMP-020001", Message: "boom", Timestamp: time.Now()})

		got := tracker.GetError()
		if got == nil {
			t.Fatal("expected error before TTL")
		}
		if got.Code != "IMP-020001" {
			t.Errorf("expected code IMP-020001, got %s", got.Code)
		}
	})

	t.Run("error auto-clears after TTL", func(t *testing.T) {
		tracker := NewInMemoryImportTrackerWithTTL(10 * time.Millisecond)
		tracker.SetError(&ProcessingError{Code: "IMP-020001", Message: "boom", Timestamp: time.Now()})

		time.Sleep(20 * time.Millisecond)
		if tracker.GetError() != nil {
			t.Error("expected error to auto-clear after TTL")
		}
	})

	t.Run("ClearError discards immediately", func(t *testing.T) {
		tracker := NewInMemoryImportTracker()
		tracker.SetError(&ProcessingError{Code: "x", Message: "boom", Timestamp: time.Now()})
		tracker.ClearError()
		if tracker.GetError() != nil {
			t.Error("expected nil after ClearError")
		}
	})
}

func TestInMemoryImportTracker_Result(t *testing.T) {
	tracker := NewInMemoryImportTracker()

	if tracker.GetResult() != nil {
		t.Error("expected no result on new tracker")
	}

	tracker.SetResult(&ImportResult{JobID: "job-9", Imported: 12, FinishedAt: time.Now()})

	got := tracker.GetResult()
	if got == nil {
		t.Fatal("expected result after SetResult")
	}
	if got.Imported != 12 || got.JobID != "job-9" {
		t.Errorf("unexpected result %+v", got)
	}
}
