// Package openapi models the subset of an OpenAPI specification that
// route overlap checking needs: the declared paths and the method keys
// beneath them, in declaration order.
package openapi

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrNoPaths is returned when a specification document carries no
// "paths" mapping at all. A present but empty mapping is valid.
var ErrNoPaths = errors.New("specification has no paths object")

// PathItem is one declared path and its method keys, verbatim and in
// declaration order. Values beneath the method keys are not inspected.
type PathItem struct {
	Path    string
	Methods []string
}

// Document is a parsed specification. Paths preserves the order in
// which path keys appear in the source document because overlap report
// ordering depends on it; a native map would lose it.
type Document struct {
	Paths []PathItem
	// Raw holds the bytes the document was parsed from, kept around
	// for optional dumping next to scan results.
	Raw []byte
}

// Parse decodes a specification document from raw JSON or YAML bytes.
// YAML is a superset of JSON, so a single yaml.v3 node decode covers
// both and keeps mapping key order intact. Parse fails with ErrNoPaths
// when the document has no paths mapping and never returns a partial
// document.
func Parse(data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.Wrap(err, "could not decode specification")
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, ErrNoPaths
	}
	pathsNode := mappingValue(root.Content[0], "paths")
	if pathsNode == nil || pathsNode.Kind != yaml.MappingNode {
		return nil, ErrNoPaths
	}

	document := &Document{Raw: data}
	// mapping node content alternates key, value
	for i := 0; i+1 < len(pathsNode.Content); i += 2 {
		keyNode, valueNode := pathsNode.Content[i], pathsNode.Content[i+1]
		item := PathItem{Path: keyNode.Value}
		if valueNode.Kind == yaml.MappingNode {
			for j := 0; j+1 < len(valueNode.Content); j += 2 {
				item.Methods = append(item.Methods, valueNode.Content[j].Value)
			}
		}
		document.Paths = append(document.Paths, item)
	}
	return document, nil
}

func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}
