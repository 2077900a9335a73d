package querydoc

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/anumalla/azure-documentdb-odata-sql/internal/odata"
)

// Load reads a query document from path. Files ending in .cue are
// evaluated as CUE; anything else is parsed as YAML (which includes JSON).
func Load(path string) (*odata.Query, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read query file: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".cue") {
		data, err = evalCUE(path, data)
		if err != nil {
			return nil, err
		}
	}

	q, err := Parse(data)
	if err != nil {
		return nil, withPath(err, path)
	}
	return q, nil
}

// Parse decodes a YAML or JSON query document.
func Parse(data []byte) (*odata.Query, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &DocumentError{Message: fmt.Sprintf("failed to parse YAML: %v", err)}
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		// Empty document: the empty query.
		return &odata.Query{}, nil
	}
	return Decode(root.Content[0])
}

// Decode converts an already parsed YAML node into a validated query. It is
// used for queries embedded in larger documents, such as sample suites.
func Decode(n *yaml.Node) (*odata.Query, error) {
	q, err := decodeQuery(resolve(n))
	if err != nil {
		return nil, err
	}
	if err := odata.Validate(q).Err(); err != nil {
		return nil, &DocumentError{Line: n.Line, Column: n.Column, Message: err.Error()}
	}
	return q, nil
}

// evalCUE evaluates a CUE document and exports it as JSON.
func evalCUE(path string, data []byte) ([]byte, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(path))
	if err := v.Err(); err != nil {
		return nil, cueError(path, err)
	}
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, cueError(path, err)
	}
	out, err := v.MarshalJSON()
	if err != nil {
		return nil, cueError(path, err)
	}
	return out, nil
}

func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

func decodeQuery(n *yaml.Node) (*odata.Query, error) {
	q := &odata.Query{}
	if n.Kind == yaml.ScalarNode && n.Tag == "!!null" {
		return q, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, nodeError(n, "query must be a mapping")
	}

	seen := make(map[string]bool)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i], resolve(n.Content[i+1])
		if seen[key.Value] {
			return nil, nodeError(key, "duplicate key %q", key.Value)
		}
		seen[key.Value] = true

		var err error
		switch key.Value {
		case "select":
			q.Select, err = decodeSelect(value)
		case "filter":
			if !isNull(value) {
				q.Filter, err = decodeExpr(value)
			}
		case "orderby":
			q.OrderBy, err = decodeOrderBy(value)
		case "top":
			q.Top, err = decodeTop(value)
		default:
			err = nodeError(key, "unknown key %q: must be one of select, filter, orderby, top", key.Value)
		}
		if err != nil {
			return nil, err
		}
	}
	return q, nil
}

// decodeSelect accepts a list of paths or a comma-separated string. "*"
// selects every field.
func decodeSelect(n *yaml.Node) ([]odata.PropertyPath, error) {
	var items []*yaml.Node
	switch {
	case isNull(n):
		return nil, nil
	case n.Kind == yaml.ScalarNode:
		for _, part := range strings.Split(n.Value, ",") {
			items = append(items, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: strings.TrimSpace(part), Line: n.Line, Column: n.Column})
		}
	case n.Kind == yaml.SequenceNode:
		items = n.Content
	default:
		return nil, nodeError(n, "select must be a list of property paths")
	}

	var paths []odata.PropertyPath
	for _, item := range items {
		item = resolve(item)
		if item.Kind != yaml.ScalarNode || item.Value == "" {
			return nil, nodeError(item, "select entries must be non-empty property paths")
		}
		if item.Value == "*" {
			return nil, nil
		}
		paths = append(paths, odata.Property(item.Value))
	}
	return paths, nil
}

func decodeOrderBy(n *yaml.Node) ([]odata.OrderByItem, error) {
	var items []*yaml.Node
	switch {
	case isNull(n):
		return nil, nil
	case n.Kind == yaml.ScalarNode:
		for _, part := range strings.Split(n.Value, ",") {
			items = append(items, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: strings.TrimSpace(part), Line: n.Line, Column: n.Column})
		}
	case n.Kind == yaml.SequenceNode:
		items = n.Content
	default:
		return nil, nodeError(n, "orderby must be a list")
	}

	order := make([]odata.OrderByItem, 0, len(items))
	for _, item := range items {
		parsed, err := decodeOrderByItem(resolve(item))
		if err != nil {
			return nil, err
		}
		order = append(order, parsed)
	}
	return order, nil
}

// decodeOrderByItem accepts "path [asc|desc]" or {property, direction}.
func decodeOrderByItem(n *yaml.Node) (odata.OrderByItem, error) {
	var property, direction string
	switch n.Kind {
	case yaml.ScalarNode:
		fields := strings.Fields(n.Value)
		if len(fields) == 0 || len(fields) > 2 {
			return odata.OrderByItem{}, nodeError(n, "orderby entry %q must be \"path [asc|desc]\"", n.Value)
		}
		property = fields[0]
		if len(fields) == 2 {
			direction = fields[1]
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, value := n.Content[i], resolve(n.Content[i+1])
			if value.Kind != yaml.ScalarNode {
				return odata.OrderByItem{}, nodeError(value, "%s must be a string", key.Value)
			}
			switch key.Value {
			case "property":
				property = value.Value
			case "direction":
				direction = value.Value
			default:
				return odata.OrderByItem{}, nodeError(key, "unknown orderby key %q: must be property or direction", key.Value)
			}
		}
		if property == "" {
			return odata.OrderByItem{}, nodeError(n, "orderby entry is missing property")
		}
	default:
		return odata.OrderByItem{}, nodeError(n, "orderby entry must be a string or mapping")
	}

	item := odata.OrderByItem{Property: odata.Property(property)}
	switch strings.ToLower(direction) {
	case "", "asc":
		item.Direction = odata.Asc
	case "desc":
		item.Direction = odata.Desc
	default:
		return odata.OrderByItem{}, nodeError(n, "unknown direction %q: must be asc or desc", direction)
	}
	return item, nil
}

func decodeTop(n *yaml.Node) (*int, error) {
	if isNull(n) {
		return nil, nil
	}
	var top int
	if n.Kind != yaml.ScalarNode || n.Tag != "!!int" {
		return nil, nodeError(n, "top must be an integer")
	}
	if err := n.Decode(&top); err != nil {
		return nil, nodeError(n, "top: %v", err)
	}
	return &top, nil
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Tag == "!!null"
}
