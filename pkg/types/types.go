package types

type Verbosity int

const (
	VerbositySilent Verbosity = iota
	VerbosityDefault
	VerbosityVerbose
)

// FindingType distinguishes the two kinds of results a run produces.
type FindingType string

const (
	// FindingConflict is a pair of declared routes whose templates
	// overlap, produced by a full scan.
	FindingConflict FindingType = "conflict"
	// FindingMatch is a candidate route that clashed with a declared
	// route, produced by a single check.
	FindingMatch FindingType = "match"
)

// Finding is one structured result, in the shape handed to export
// stores and file writers.
type Finding struct {
	Type   FindingType `json:"type" yaml:"type"`
	Source string      `json:"source,omitempty" yaml:"source,omitempty"`
	// single check fields
	Path    string `json:"path,omitempty" yaml:"path,omitempty"`
	Method  string `json:"method,omitempty" yaml:"method,omitempty"`
	Matched string `json:"matched,omitempty" yaml:"matched,omitempty"`
	// scan fields
	Path1 string `json:"path1,omitempty" yaml:"path1,omitempty"`
	Path2 string `json:"path2,omitempty" yaml:"path2,omitempty"`
}

// RouteRecord is one indexed route in the serialized index snapshot:
// a path template and its declared method tokens.
type RouteRecord struct {
	Path    string   `json:"path" yaml:"path"`
	Methods []string `json:"methods" yaml:"methods"`
}
