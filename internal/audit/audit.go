// Package audit records account lifecycle events as newline-delimited JSON
// in an append-only file, by default <home>/audit.log.
package audit

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"time"
)

// Action describes what happened to an account.
type Action string

const (
	ActionActivated   Action = "activated"
	ActionDeactivated Action = "deactivated"
	ActionUserUpdated Action = "user_updated"
	ActionDeleted     Action = "deleted"
)

// Entry is a single audit log record.
type Entry struct {
	Timestamp time.Time `json:"ts"`
	Action    Action    `json:"action"`
	Account   string    `json:"account"`
	Store     string    `json:"store,omitempty"`
	Reason    string    `json:"reason,omitempty"` // activation reason
}

// Logger writes audit entries to an append-only file.
type Logger struct {
	mu   sync.Mutex
	file *os.File
	now  func() time.Time
}

// NewLogger creates or opens an audit log file for appending.
func NewLogger(path string) (*Logger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening audit log: %w", err)
	}
	return &Logger{file: f, now: time.Now}, nil
}

// Log writes an audit entry, stamping it when Timestamp is zero.
func (l *Logger) Log(entry Entry) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = l.now().UTC()
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshaling audit entry: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := l.file.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("writing audit entry: %w", err)
	}
	return nil
}

// Close closes the audit log file.
func (l *Logger) Close() error {
	return l.file.Close()
}

// Read returns the entries in path, oldest first. A missing file yields no
// entries. Lines that do not parse are skipped.
func Read(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening audit log: %w", err)
	}
	defer f.Close()

	var entries []Entry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var e Entry
		if json.Unmarshal(sc.Bytes(), &e) != nil {
			continue
		}
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading audit log: %w", err)
	}
	return entries, nil
}
