package overlap

import "strings"

// SegmentsOverlap reports whether two normalized path templates could
// route the same concrete request. Both paths are split on "/" and
// compared position by position: segments match when they are textually
// identical, or when the existing side's segment is a path parameter
// (starts with "{") and therefore absorbs any literal value.
//
// The rule is asymmetric on purpose: only the existing (already
// registered) template's parameters act as wildcards, the candidate is
// always taken literally. Templates with a different number of segments
// never overlap, there is no multi-segment or trailing wildcard support.
func SegmentsOverlap(candidate, existing string) bool {
	candidateSegments := strings.Split(candidate, "/")
	existingSegments := strings.Split(existing, "/")
	if len(candidateSegments) != len(existingSegments) {
		return false
	}
	for i, existingSegment := range existingSegments {
		if isPathParam(existingSegment) {
			continue
		}
		if candidateSegments[i] != existingSegment {
			return false
		}
	}
	return true
}

// SegmentsOverlapSymmetric is the symmetric variant of SegmentsOverlap:
// a path parameter on either side matches the other side's segment.
func SegmentsOverlapSymmetric(a, b string) bool {
	aSegments := strings.Split(a, "/")
	bSegments := strings.Split(b, "/")
	if len(aSegments) != len(bSegments) {
		return false
	}
	for i := range aSegments {
		if isPathParam(aSegments[i]) || isPathParam(bSegments[i]) {
			continue
		}
		if aSegments[i] != bSegments[i] {
			return false
		}
	}
	return true
}

func isPathParam(segment string) bool {
	return strings.HasPrefix(segment, "{")
}
