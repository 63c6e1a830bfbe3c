package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rtscheck/internal/ledger"
)

func TestRenderPercentages(t *testing.T) {
	out := Render(ledger.Summary{Total: 3, Passed: 2, Failed: 1})

	assert.Contains(t, out, "Total files: 3")
	assert.Contains(t, out, "Successful: 2 (66.7%)")
	assert.Contains(t, out, "Failed: 1 (33.3%)")
}

func TestRenderAllPass(t *testing.T) {
	out := Render(ledger.Summary{Total: 4, Passed: 4})

	assert.Contains(t, out, "Successful: 4 (100.0%)")
	assert.Contains(t, out, "Failed: 0 (0.0%)")
}

func TestChanges(t *testing.T) {
	prior := map[string]string{
		"fixed.rts":   ledger.StatusFail,
		"broke.rts":   ledger.StatusPass,
		"steady.rts":  ledger.StatusPass,
		"deleted.rts": ledger.StatusFail,
	}
	current := map[string]string{
		"fixed.rts":  ledger.StatusPass,
		"broke.rts":  ledger.StatusFail,
		"steady.rts": ledger.StatusPass,
		"new.rts":    ledger.StatusFail,
	}

	fixed, regressed := Changes(prior, current)
	assert.Equal(t, []string{"fixed.rts"}, fixed)
	assert.Equal(t, []string{"broke.rts"}, regressed)
}

func TestChangesNoPrior(t *testing.T) {
	fixed, regressed := Changes(map[string]string{}, map[string]string{"a.rts": ledger.StatusPass})
	assert.Empty(t, fixed)
	assert.Empty(t, regressed)
}
