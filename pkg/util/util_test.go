package util

import (
	"testing"

	"github.com/projectdiscovery/routeclash/pkg/overlap"
)

func TestEvalBoolSlice(t *testing.T) {
	testcases := []struct {
		Slice    []bool
		Expected bool
	}{
		{[]bool{true}, true},
		{[]bool{true, true}, true},
		{[]bool{true, false}, false},
		{[]bool{false}, false},
		{nil, false},
	}
	for _, v := range testcases {
		if got := EvalBoolSlice(v.Slice); got != v.Expected {
			t.Errorf("EvalBoolSlice(%v) = %v, expected %v", v.Slice, got, v.Expected)
		}
	}
}

func TestConflictToMap(t *testing.T) {
	m := ConflictToMap(overlap.Record{Path1: "/a/{id}", Path2: "/a/b"})
	if m["path1"] != "/a/{id}" || m["path2"] != "/a/b" {
		t.Errorf("unexpected dsl map %v", m)
	}
}
