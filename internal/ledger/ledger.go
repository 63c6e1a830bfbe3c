// Package ledger accumulates per-file validation outcomes for a run and
// persists them as a flat JSON mapping that survives across invocations.
package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"rtscheck/internal/validate"
)

const (
	StatusPass = "pass"
	StatusFail = "fail"
)

// Summary partitions the distinct recorded identifiers exactly:
// Passed + Failed == Total always holds.
type Summary struct {
	Total  int
	Passed int
	Failed int
}

// Ledger maps file names (not paths, to stay portable across re-runs from
// different working directories) to pass/fail status.
type Ledger struct {
	entries map[string]string
}

func New() *Ledger {
	return &Ledger{entries: make(map[string]string)}
}

// Record stores the outcome for name. Last write wins for a repeated name.
func (l *Ledger) Record(name string, outcome validate.Outcome) {
	status := StatusFail
	if outcome.Passed {
		status = StatusPass
	}
	l.entries[name] = status
}

func (l *Ledger) Summary() Summary {
	s := Summary{Total: len(l.entries)}
	for _, status := range l.entries {
		if status == StatusPass {
			s.Passed++
		} else {
			s.Failed++
		}
	}
	return s
}

// Entries returns a copy of the current mapping.
func (l *Ledger) Entries() map[string]string {
	out := make(map[string]string, len(l.entries))
	for name, status := range l.entries {
		out[name] = status
	}
	return out
}

// Persist writes the full mapping to path as pretty-printed JSON, replacing
// any prior contents. Callers treat failures as warnings: persistence is
// best-effort telemetry, not correctness-critical.
func (l *Ledger) Persist(path string) error {
	data, err := json.MarshalIndent(l.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write ledger %s: %w", path, err)
	}
	return nil
}

// LoadPrior reads a previously persisted ledger. A missing file is a normal
// first run and yields an empty mapping with no error; an unreadable or
// corrupt file yields an empty mapping plus the error for the caller to log.
// The prior ledger is informational only and never skips re-validation.
func LoadPrior(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return map[string]string{}, fmt.Errorf("read prior ledger %s: %w", path, err)
	}

	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return map[string]string{}, fmt.Errorf("decode prior ledger %s: %w", path, err)
	}
	if entries == nil {
		entries = map[string]string{}
	}
	return entries, nil
}
