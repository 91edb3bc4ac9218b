// Package logbook keeps the player-facing play journal: a plain text file of
// timestamped milestones that the terminal UI tails in a side panel.
package logbook

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Level is the severity tag printed on each journal line.
type Level string

const (
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// Entry is one journal line before formatting.
type Entry struct {
	At      time.Time
	Level   Level
	Message string
}

// String renders the entry as "<RFC3339 UTC> <LEVEL> <message>". The message
// is folded onto a single line so one entry is always one line on disk.
func (e Entry) String() string {
	msg := strings.Join(strings.Fields(e.Message), " ")
	return fmt.Sprintf("%s %-5s %s", e.At.UTC().Format(time.RFC3339), e.Level, msg)
}

// Logbook appends journal entries to a text file. A nil *Logbook is a valid
// no-op journal.
type Logbook struct {
	mu    sync.Mutex
	path  string
	clock func() time.Time
}

// Option customizes a Logbook.
type Option func(*Logbook)

// WithClock stamps entries with clock instead of time.Now.
func WithClock(clock func() time.Time) Option {
	return func(l *Logbook) {
		if clock != nil {
			l.clock = clock
		}
	}
}

// New returns a logbook backed by path. The parent directory is created; the
// file itself appears with the first entry.
func New(path string, opts ...Option) (*Logbook, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("logbook: ensure dir: %w", err)
	}
	book := &Logbook{path: path, clock: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(book)
		}
	}
	return book, nil
}

// Path returns the file backing this logbook.
func (l *Logbook) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Append stamps message with the logbook clock and records it.
func (l *Logbook) Append(level Level, message string) {
	if l == nil {
		return
	}
	l.Record(Entry{At: l.clock(), Level: level, Message: message})
}

// Record writes e as one line. Write failures are dropped: the journal is a
// convenience for the player and must never interrupt play.
func (l *Logbook) Record(e Entry) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return
	}
	_, _ = fmt.Fprintln(f, e.String())
	_ = f.Close()
}

// Tail returns the newest n lines, oldest first, and the number of lines in
// the whole journal. Only n lines are held in memory while scanning.
func (l *Logbook) Tail(n int) ([]string, int) {
	if l == nil {
		return nil, 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	f, err := os.Open(l.path)
	if err != nil {
		return nil, 0
	}
	defer f.Close()

	var (
		ring  []string
		total int
	)
	if n > 0 {
		ring = make([]string, n)
	}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if n > 0 {
			ring[total%n] = sc.Text()
		}
		total++
	}
	if n <= 0 || total == 0 {
		return nil, total
	}
	count := min(n, total)
	out := make([]string, 0, count)
	for i := total - count; i < total; i++ {
		out = append(out, ring[i%n])
	}
	return out, total
}

func (l *Logbook) Info(format string, args ...any)  { l.Append(LevelInfo, fmt.Sprintf(format, args...)) }
func (l *Logbook) Warn(format string, args ...any)  { l.Append(LevelWarn, fmt.Sprintf(format, args...)) }
func (l *Logbook) Error(format string, args ...any) { l.Append(LevelError, fmt.Sprintf(format, args...)) }
