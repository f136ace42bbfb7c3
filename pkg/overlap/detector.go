package overlap

import (
	"strings"

	sliceutil "github.com/projectdiscovery/utils/slice"
)

// Record is a pair of indexed path templates judged overlapping by a
// full scan. Path1 always precedes Path2 in index insertion order.
type Record struct {
	Path1 string `json:"path1" yaml:"path1"`
	Path2 string `json:"path2" yaml:"path2"`
}

// Detector answers overlap queries against a built Index. The zero
// value implements the default policy: asymmetric parameter matching
// and a method-agnostic full scan.
type Detector struct {
	// Symmetric makes path parameters on either side act as wildcards
	// instead of only the registered route's side.
	Symmetric bool
	// MethodAware restricts CheckAll to pairs whose declared method
	// token sets intersect. The default scan reports shape overlap
	// regardless of methods.
	MethodAware bool
}

// CheckSingle reports the first indexed route that the candidate route
// would clash with, or ok=false when the candidate is safe to register.
//
// The candidate path is normalized and the candidate method lower-cased
// before comparison; stored method tokens are matched by exact string
// membership. An empty method matches any entry. The scan walks the
// index in insertion order and stops at the first entry satisfying both
// the path and the method condition, with no notion of a more specific
// match later in the index.
func (d *Detector) CheckSingle(candidatePath, candidateMethod string, index *Index) (string, bool) {
	candidatePath = NormalizePath(candidatePath)
	candidateMethod = strings.ToLower(candidateMethod)
	for _, entry := range index.Entries() {
		if candidatePath != entry.Path && !d.overlap(candidatePath, entry.Path) {
			continue
		}
		if candidateMethod != "" && !sliceutil.Contains(entry.Methods, candidateMethod) {
			continue
		}
		return entry.Path, true
	}
	return "", false
}

// CheckAll scans every pair of distinct indexed routes and returns the
// overlapping ones. For each pair the earlier-declared template plays
// the registered role, so its path parameters absorb the later
// template's literals. Output order is deterministic: outer index
// ascending, inner index ascending, both by insertion order.
func (d *Detector) CheckAll(index *Index) []Record {
	entries := index.Entries()
	var records []Record
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			if !d.overlap(entries[j].Path, entries[i].Path) {
				continue
			}
			if d.MethodAware && !intersects(entries[i].Methods, entries[j].Methods) {
				continue
			}
			records = append(records, Record{Path1: entries[i].Path, Path2: entries[j].Path})
		}
	}
	return records
}

func (d *Detector) overlap(candidate, existing string) bool {
	if d.Symmetric {
		return SegmentsOverlapSymmetric(candidate, existing)
	}
	return SegmentsOverlap(candidate, existing)
}

func intersects(a, b []string) bool {
	for _, item := range a {
		if sliceutil.Contains(b, item) {
			return true
		}
	}
	return false
}
