package errors

import (
	"sync"
	"time"
)

// ErrorRecord captures the context of a single failed mutation.
type ErrorRecord struct {
	Err     error
	Op      string
	Context map[string]any
	At      time.Time
}

// LastError is a single-slot record of the most recent failure. Each new
// failure overwrites the previous one; concurrent failures race and only
// the latest is retrievable. It is a diagnostic aid, not a correctness
// mechanism — callers that need per-call detail must use returned errors.
type LastError struct {
	mu  sync.Mutex
	rec *ErrorRecord
}

func NewLastError() *LastError {
	return &LastError{}
}

func (l *LastError) Record(op string, err error, ctx map[string]any) {
	if l == nil || err == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rec = &ErrorRecord{
		Err:     err,
		Op:      op,
		Context: ctx,
		At:      time.Now(),
	}
}

// Last returns a copy of the most recent record, or nil if none.
func (l *LastError) Last() *ErrorRecord {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.rec == nil {
		return nil
	}
	cp := *l.rec
	return &cp
}

func (l *LastError) Clear() {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rec = nil
}
