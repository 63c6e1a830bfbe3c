// Package report renders summary statistics from a completed ledger.
package report

import (
	"fmt"
	"sort"
	"strings"

	"rtscheck/internal/ledger"
)

// Render formats total/pass/fail counts with one-decimal percentages.
// Callers never pass a zero total; the empty-corpus check upstream
// guarantees at least one validated file.
func Render(s ledger.Summary) string {
	pct := func(count int) float64 {
		return 100.0 * float64(count) / float64(s.Total)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Total files: %d\n", s.Total)
	fmt.Fprintf(&b, "Successful: %d (%.1f%%)\n", s.Passed, pct(s.Passed))
	fmt.Fprintf(&b, "Failed: %d (%.1f%%)\n", s.Failed, pct(s.Failed))
	return b.String()
}

// Changes compares the current run against a prior persisted ledger and
// returns the file names that started passing and those that stopped.
// Display-only continuity for grammar iteration; files absent from either
// side are ignored.
func Changes(prior, current map[string]string) (fixed, regressed []string) {
	for name, status := range current {
		before, ok := prior[name]
		if !ok {
			continue
		}
		switch {
		case before == ledger.StatusFail && status == ledger.StatusPass:
			fixed = append(fixed, name)
		case before == ledger.StatusPass && status == ledger.StatusFail:
			regressed = append(regressed, name)
		}
	}
	sort.Strings(fixed)
	sort.Strings(regressed)
	return fixed, regressed
}
