package cliapp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"rtscheck/internal/history"
)

func TestRenderHistoryEmpty(t *testing.T) {
	assert.Contains(t, renderHistory(nil), "No recorded runs")
}

func TestRenderHistoryRows(t *testing.T) {
	out := renderHistory([]history.Run{
		{
			Timestamp: time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC),
			Total:     4,
			Passed:    3,
			Failed:    1,
		},
	})

	assert.Contains(t, out, "2026-08-30T09:00:00Z")
	assert.Contains(t, out, "total=4 passed=3 failed=1 (75.0%)")
}

func TestDivider(t *testing.T) {
	assert.Len(t, divider('='), dividerWidth)
}
