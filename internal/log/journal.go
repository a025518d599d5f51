package log

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// Journal is an append-only audit trail of rename and undo operations,
// one timestamped line per entry. It is write-only: nothing in the
// application reads it back.
type Journal struct {
	mu sync.Mutex
	f  *os.File
}

// OpenJournal opens (or creates) the journal file in append mode.
func OpenJournal(path string) (*Journal, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal %s: %w", path, err)
	}
	return &Journal{f: f}, nil
}

// Record appends one formatted entry. A nil journal discards the entry,
// so callers don't have to guard every call site.
func (j *Journal) Record(format string, args ...interface{}) {
	if j == nil {
		return
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	fmt.Fprintf(j.f, "[%s] %s\n", timestamp, fmt.Sprintf(format, args...))
}

// Close flushes and closes the underlying file.
func (j *Journal) Close() error {
	if j == nil {
		return nil
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.f.Close()
}
