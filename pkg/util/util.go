package util

import (
	"github.com/projectdiscovery/routeclash/pkg/overlap"
)

// ConflictToMap converts an overlap record to a dsl variable map
func ConflictToMap(record overlap.Record) map[string]interface{} {
	return map[string]interface{}{
		"path1": record.Path1,
		"path2": record.Path2,
	}
}

// MatchToMap converts a single check result to a dsl variable map
func MatchToMap(candidatePath, candidateMethod, matchedPath string) map[string]interface{} {
	return map[string]interface{}{
		"path":    candidatePath,
		"method":  candidateMethod,
		"matched": matchedPath,
	}
}

// EvalBoolSlice folds the results of multiple dsl expressions: every
// expression has to hold for the overall result to hold
func EvalBoolSlice(slice []bool) bool {
	for _, value := range slice {
		if !value {
			return false
		}
	}
	return len(slice) > 0
}
