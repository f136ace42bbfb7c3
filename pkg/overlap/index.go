package overlap

import (
	"github.com/projectdiscovery/routeclash/pkg/openapi"
	sliceutil "github.com/projectdiscovery/utils/slice"
)

// Entry is a single indexed route: a normalized path template and the
// method tokens declared for it, verbatim from the source document.
type Entry struct {
	Path    string
	Methods []string
}

// Index is an insertion-ordered mapping from normalized path template
// to declared method tokens. Order matters: CheckSingle's tie-break and
// CheckAll's report order both follow the order in which paths first
// appeared in the specification, so the index keeps an entry slice next
// to the position lookup instead of relying on map iteration.
//
// An Index is built once per document and is read-only afterwards.
type Index struct {
	entries   []Entry
	positions map[string]int
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{positions: make(map[string]int)}
}

// BuildIndex creates an index from a parsed specification document.
// Path keys are normalized before insertion; a duplicate key (after
// normalization) overwrites the earlier entry's methods but keeps its
// original position. Method tokens are deduplicated preserving order
// and are never case folded here.
func BuildIndex(document *openapi.Document) *Index {
	index := NewIndex()
	for _, item := range document.Paths {
		index.add(NormalizePath(item.Path), sliceutil.Dedupe(item.Methods))
	}
	return index
}

func (i *Index) add(path string, methods []string) {
	if position, ok := i.positions[path]; ok {
		// last write wins, first seen position is kept
		i.entries[position].Methods = methods
		return
	}
	i.positions[path] = len(i.entries)
	i.entries = append(i.entries, Entry{Path: path, Methods: methods})
}

// Len returns the number of distinct indexed paths.
func (i *Index) Len() int {
	return len(i.entries)
}

// Entries returns the indexed routes in insertion order. The returned
// slice is shared with the index and must not be modified.
func (i *Index) Entries() []Entry {
	return i.entries
}

// Methods returns the method tokens declared for path, if indexed.
func (i *Index) Methods(path string) ([]string, bool) {
	position, ok := i.positions[path]
	if !ok {
		return nil, false
	}
	return i.entries[position].Methods, true
}
