// Package audit provides a JSONL event stream for recording well
// classification decisions during a build. Every classified (well, kit)
// pair is recorded with the rule that decided it, making a build
// reviewable after the fact without re-running it.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// Event kinds identify the type of audit event.
const (
	KindWellClassified = "well_classified"
	KindBuildStart     = "build_start"
	KindBuildDone      = "build_done"
)

// Event represents a single audit record. Each event carries a
// timestamp, a kind tag, and optional context along with structured
// data.
type Event struct {
	Timestamp time.Time `json:"ts"`
	Kind      string    `json:"kind"`
	Kit       string    `json:"kit,omitempty"`
	Well      string    `json:"well,omitempty"`
	Data      any       `json:"data,omitempty"`
}

// Classification is the data payload for a well_classified event.
type Classification struct {
	Category string `json:"category"`
	Rule     string `json:"rule"`
	EC       string `json:"ec,omitempty"`
	Label    string `json:"label,omitempty"`
}

// Emitter writes audit events to a JSONL file. It is safe for
// concurrent use by multiple goroutines. A nil *Emitter is a valid
// no-op emitter.
type Emitter struct {
	file *os.File
	enc  *json.Encoder
	mu   sync.Mutex
}

// NewEmitter creates a new Emitter that writes JSONL events to the file
// at path. The file is created if it does not exist, or appended to if
// it does.
func NewEmitter(path string) (*Emitter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("audit: open %s: %w", path, err)
	}
	return &Emitter{
		file: f,
		enc:  json.NewEncoder(f),
	}, nil
}

// Emit writes a single event to the JSONL file. It is safe for
// concurrent use. Calling Emit on a nil Emitter is a no-op.
func (e *Emitter) Emit(evt Event) error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.enc.Encode(evt); err != nil {
		return fmt.Errorf("audit: encode event: %w", err)
	}
	return nil
}

// Classified records a well_classified event. Calling it on a nil
// Emitter is a no-op.
func (e *Emitter) Classified(well, kit string, c Classification) error {
	return e.Emit(Event{
		Timestamp: time.Now().UTC(),
		Kind:      KindWellClassified,
		Kit:       kit,
		Well:      well,
		Data:      c,
	})
}

// Close flushes and closes the underlying file. Calling Close on a nil
// Emitter is a no-op.
func (e *Emitter) Close() error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.file.Close(); err != nil {
		return fmt.Errorf("audit: close: %w", err)
	}
	return nil
}
