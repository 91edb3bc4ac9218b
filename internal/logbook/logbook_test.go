package logbook

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestTailReturnsRecentLinesAndTotal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logs", "journey.log")
	book, err := New(path)
	if err != nil {
		t.Fatalf("new logbook: %v", err)
	}
	for i := 0; i < 5; i++ {
		book.Info("Site %d scored %d", i, i*20)
	}
	lines, total := book.Tail(3)
	if total != 5 {
		t.Fatalf("total lines = %d, want 5", total)
	}
	if len(lines) != 3 {
		t.Fatalf("len(lines) = %d, want 3", len(lines))
	}
	for idx, want := range []string{"Site 2", "Site 3", "Site 4"} {
		if !strings.Contains(lines[idx], want) {
			t.Fatalf("line %d = %q, missing %s", idx, lines[idx], want)
		}
	}
}

func TestAppendStampsAndFoldsEntries(t *testing.T) {
	stamp := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	book, err := New(filepath.Join(t.TempDir(), "journey.log"), WithClock(func() time.Time { return stamp }))
	if err != nil {
		t.Fatalf("new logbook: %v", err)
	}
	book.Warn("Time is up\non site %d", 2)
	book.Error("boom")
	lines, total := book.Tail(10)
	if total != 2 {
		t.Fatalf("total = %d, want 2 (multi-line message must fold)", total)
	}
	if want := "2025-03-01T09:30:00Z WARN  Time is up on site 2"; lines[0] != want {
		t.Fatalf("line = %q, want %q", lines[0], want)
	}
	if !strings.Contains(lines[1], "ERROR boom") {
		t.Fatalf("line = %q", lines[1])
	}
}

func TestTailOnMissingFileAndNilBook(t *testing.T) {
	book, err := New(filepath.Join(t.TempDir(), "journey.log"))
	if err != nil {
		t.Fatalf("new logbook: %v", err)
	}
	if lines, total := book.Tail(5); lines != nil || total != 0 {
		t.Fatalf("empty journal tail = %v, %d", lines, total)
	}
	var nilBook *Logbook
	nilBook.Info("ignored")
	if lines, total := nilBook.Tail(5); lines != nil || total != 0 {
		t.Fatalf("nil journal tail = %v, %d", lines, total)
	}
	if nilBook.Path() != "" {
		t.Fatalf("nil journal path should be empty")
	}
}

func TestRecordKeepsEntryTimestamp(t *testing.T) {
	book, err := New(filepath.Join(t.TempDir(), "journey.log"))
	if err != nil {
		t.Fatalf("new logbook: %v", err)
	}
	at := time.Date(2025, 3, 1, 11, 0, 0, 0, time.FixedZone("CET", 3600))
	book.Record(Entry{At: at, Level: LevelInfo, Message: "Session  started"})
	lines, _ := book.Tail(1)
	if want := "2025-03-01T10:00:00Z INFO  Session started"; len(lines) != 1 || lines[0] != want {
		t.Fatalf("lines = %q, want %q", lines, want)
	}
}
