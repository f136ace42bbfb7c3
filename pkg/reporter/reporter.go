// Package reporter renders structured overlap results for the
// terminal. It takes only the engine's outputs as input so the
// detection logic stays free of presentation concerns.
package reporter

import (
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/routeclash/pkg/overlap"
)

// Reporter writes human readable results via gologger.
type Reporter struct {
	aurora aurora.Aurora
}

// NewReporter creates a reporter, colorized unless noColor is set.
func NewReporter(noColor bool) *Reporter {
	return &Reporter{aurora: aurora.NewAurora(!noColor)}
}

// Match reports the outcome of a single candidate check.
func (r *Reporter) Match(candidatePath, candidateMethod, matchedPath string, ok bool) {
	candidate := candidatePath
	if candidateMethod != "" {
		candidate = fmt.Sprintf("%s %s", candidateMethod, candidatePath)
	}
	if !ok {
		gologger.Info().Msgf("No conflict: %s is free to register", r.aurora.Green(candidate))
		return
	}
	gologger.Info().Msgf("Conflict: %s clashes with declared route %s", r.aurora.Red(candidate), r.aurora.Yellow(matchedPath))
}

// Conflicts reports the outcome of a full specification scan.
func (r *Reporter) Conflicts(records []overlap.Record) {
	if len(records) == 0 {
		gologger.Info().Msgf("No overlapping routes found")
		return
	}
	gologger.Info().Msgf("Found %d overlapping route pair(s)", len(records))
	for _, record := range records {
		gologger.Silent().Msgf("%s <-> %s", r.aurora.Yellow(record.Path1), r.aurora.Red(record.Path2))
	}
}
