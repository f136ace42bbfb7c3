package overlap

import (
	"reflect"
	"testing"

	"github.com/projectdiscovery/routeclash/pkg/openapi"
)

func testIndex(items ...openapi.PathItem) *Index {
	return BuildIndex(&openapi.Document{Paths: items})
}

func TestCheckSingle(t *testing.T) {
	index := testIndex(
		openapi.PathItem{Path: "/a/{id}", Methods: []string{"get", "post"}},
		openapi.PathItem{Path: "/b", Methods: []string{"get"}},
	)

	testcases := []struct {
		Path     string
		Method   string
		Expected string
		Ok       bool
	}{
		// literal absorbed by the registered parameter
		{"/a/b", "get", "/a/{id}", true},
		// method is lower-cased before membership check
		{"/a/b", "GET", "/a/{id}", true},
		// method absent from the declared set
		{"/a/b", "delete", "", false},
		// empty method matches any entry
		{"/a/b", "", "/a/{id}", true},
		// exact key match
		{"/b", "get", "/b", true},
		// trailing slash normalized before lookup
		{"/b/", "get", "/b", true},
		{"/c", "get", "", false},
	}

	detector := &Detector{}
	for _, v := range testcases {
		got, ok := detector.CheckSingle(v.Path, v.Method, index)
		if got != v.Expected || ok != v.Ok {
			t.Errorf("CheckSingle(%q, %q) = (%q, %v), expected (%q, %v)", v.Path, v.Method, got, ok, v.Expected, v.Ok)
		}
	}
}

func TestCheckSingleInsertionOrderTieBreak(t *testing.T) {
	// both templates can absorb the candidate, the first declared wins
	index := testIndex(
		openapi.PathItem{Path: "/x/{id}", Methods: []string{"get"}},
		openapi.PathItem{Path: "/x/{name}", Methods: []string{"get"}},
	)
	detector := &Detector{}
	got, ok := detector.CheckSingle("/x/1", "get", index)
	if !ok || got != "/x/{id}" {
		t.Errorf("expected first declared template to win, got (%q, %v)", got, ok)
	}
}

func TestCheckSingleMethodMismatchKeepsScanning(t *testing.T) {
	// the first shape match lacks the method, a later entry has it
	index := testIndex(
		openapi.PathItem{Path: "/x/{id}", Methods: []string{"get"}},
		openapi.PathItem{Path: "/x/{name}", Methods: []string{"delete"}},
	)
	detector := &Detector{}
	got, ok := detector.CheckSingle("/x/1", "delete", index)
	if !ok || got != "/x/{name}" {
		t.Errorf("expected scan to continue past method mismatch, got (%q, %v)", got, ok)
	}
}

func TestCheckAll(t *testing.T) {
	index := testIndex(
		openapi.PathItem{Path: "/a/{id}", Methods: []string{"get"}},
		openapi.PathItem{Path: "/a/b", Methods: []string{"post"}},
		openapi.PathItem{Path: "/c", Methods: []string{"get"}},
	)
	detector := &Detector{}

	records := detector.CheckAll(index)
	expected := []Record{{Path1: "/a/{id}", Path2: "/a/b"}}
	if !reflect.DeepEqual(records, expected) {
		t.Fatalf("CheckAll = %v, expected %v", records, expected)
	}

	// deterministic: a second scan yields identical ordered output
	if again := detector.CheckAll(index); !reflect.DeepEqual(again, records) {
		t.Errorf("CheckAll not deterministic: %v != %v", again, records)
	}
}

func TestCheckAllOrdering(t *testing.T) {
	// declaration order of the source document drives pair ordering
	index := testIndex(
		openapi.PathItem{Path: "/p/{a}", Methods: []string{"get"}},
		openapi.PathItem{Path: "/p/x", Methods: []string{"get"}},
		openapi.PathItem{Path: "/p/y", Methods: []string{"get"}},
	)
	detector := &Detector{}

	records := detector.CheckAll(index)
	expected := []Record{
		{Path1: "/p/{a}", Path2: "/p/x"},
		{Path1: "/p/{a}", Path2: "/p/y"},
	}
	if !reflect.DeepEqual(records, expected) {
		t.Errorf("CheckAll = %v, expected %v", records, expected)
	}
}

func TestCheckAllMethodAgnostic(t *testing.T) {
	// disjoint method sets are still reported by the default policy
	index := testIndex(
		openapi.PathItem{Path: "/a/{id}", Methods: []string{"get"}},
		openapi.PathItem{Path: "/a/b", Methods: []string{"delete"}},
	)

	records := (&Detector{}).CheckAll(index)
	if len(records) != 1 {
		t.Fatalf("expected default scan to ignore methods, got %v", records)
	}

	// the method aware policy drops the disjoint pair
	records = (&Detector{MethodAware: true}).CheckAll(index)
	if len(records) != 0 {
		t.Errorf("expected method aware scan to drop disjoint pair, got %v", records)
	}
}

func TestCheckAllSymmetric(t *testing.T) {
	// the later declared template carries the parameter: only the
	// symmetric policy reports the pair
	index := testIndex(
		openapi.PathItem{Path: "/a/b", Methods: []string{"get"}},
		openapi.PathItem{Path: "/a/{id}", Methods: []string{"get"}},
	)

	if records := (&Detector{}).CheckAll(index); len(records) != 0 {
		t.Errorf("expected asymmetric scan to skip pair, got %v", records)
	}

	records := (&Detector{Symmetric: true}).CheckAll(index)
	expected := []Record{{Path1: "/a/b", Path2: "/a/{id}"}}
	if !reflect.DeepEqual(records, expected) {
		t.Errorf("expected symmetric scan to report pair, got %v", records)
	}
}
