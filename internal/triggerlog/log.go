// Package triggerlog records which compatibility rules fire, for frequency
// analytics. Entries hold a rule id and a timestamp and never any PII.
package triggerlog

import (
	"context"
	"sync"
	"time"

	"github.com/furfindr/internal/domain"
)

// Recorder is the sink the rule engine writes triggers to.
type Recorder interface {
	// Record appends one trigger for ruleID.
	Record(ruleID string)

	// Stats summarises every trigger recorded since the last Reset.
	Stats() domain.TriggerStats

	// Reset discards all recorded triggers.
	Reset()
}

// BatchRecorder is implemented by recorders that can append several
// triggers in one operation.
type BatchRecorder interface {
	RecordBatch(ruleIDs []string)
}

// StatsReader is implemented by recorders whose storage can fail. Stats on
// those recorders hides the failure; StatsContext reports it.
type StatsReader interface {
	StatsContext(ctx context.Context) (domain.TriggerStats, error)
}

// RecordAll appends ruleIDs to r in order, in one operation when r supports
// it.
func RecordAll(r Recorder, ruleIDs []string) {
	if len(ruleIDs) == 0 {
		return
	}
	if b, ok := r.(BatchRecorder); ok {
		b.RecordBatch(ruleIDs)
		return
	}
	for _, id := range ruleIDs {
		r.Record(id)
	}
}

// ReadStats summarises r, returning storage errors when r can report them.
func ReadStats(ctx context.Context, r Recorder) (domain.TriggerStats, error) {
	if sr, ok := r.(StatsReader); ok {
		return sr.StatsContext(ctx)
	}
	return r.Stats(), nil
}

// Log is an append-only, mutex-guarded in-memory Recorder. It grows without
// bound until Reset is called.
type Log struct {
	mu      sync.Mutex
	entries []domain.TriggerEntry
	now     func() time.Time
}

// New creates an empty Log.
func New() *Log {
	return &Log{now: time.Now}
}

// NewWithClock creates an empty Log that timestamps entries with now.
func NewWithClock(now func() time.Time) *Log {
	return &Log{now: now}
}

var (
	defaultOnce sync.Once
	defaultLog  *Log
)

// Default returns the process-wide Log. It starts empty when first used and
// is only cleared by an explicit Reset.
func Default() *Log {
	defaultOnce.Do(func() {
		defaultLog = New()
	})
	return defaultLog
}

// Record implements Recorder.
func (l *Log) Record(ruleID string) {
	l.RecordBatch([]string{ruleID})
}

// RecordBatch implements BatchRecorder. All entries share one timestamp.
func (l *Log) RecordBatch(ruleIDs []string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ts := l.now()
	for _, id := range ruleIDs {
		l.entries = append(l.entries, domain.TriggerEntry{RuleID: id, Timestamp: ts})
	}
}

// Entries returns a copy of the recorded entries in append order.
func (l *Log) Entries() []domain.TriggerEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]domain.TriggerEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of recorded entries.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Stats implements Recorder. Ties for most-triggered go to the tied rule
// that appears earliest in the log.
func (l *Log) Stats() domain.TriggerStats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return summarize(l.entries)
}

func summarize(entries []domain.TriggerEntry) domain.TriggerStats {
	freq := make(map[string]int)
	top := 0
	for _, e := range entries {
		freq[e.RuleID]++
		top = max(top, freq[e.RuleID])
	}

	var most *domain.RuleFrequency
	for _, e := range entries {
		if freq[e.RuleID] == top {
			most = &domain.RuleFrequency{RuleID: e.RuleID, Count: top}
			break
		}
	}

	return domain.TriggerStats{
		TotalTriggers: len(entries),
		UniqueRules:   len(freq),
		RuleFrequency: freq,
		MostTriggered: most,
	}
}

// Reset implements Recorder.
func (l *Log) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
}

// Discard is a Recorder that drops every trigger.
type Discard struct{}

func (Discard) Record(string) {}

func (Discard) Stats() domain.TriggerStats {
	return domain.TriggerStats{RuleFrequency: map[string]int{}}
}

func (Discard) Reset() {}
