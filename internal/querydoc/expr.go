package querydoc

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/anumalla/azure-documentdb-odata-sql/internal/odata"
)

var comparisonKeys = map[string]odata.ComparisonOperator{
	"eq": odata.OpEq,
	"ne": odata.OpNe,
	"lt": odata.OpLt,
	"le": odata.OpLe,
	"gt": odata.OpGt,
	"ge": odata.OpGe,
}

// decodeExpr converts one expression node.
func decodeExpr(n *yaml.Node) (odata.Expression, error) {
	n = resolve(n)
	switch n.Kind {
	case yaml.ScalarNode:
		return decodeScalar(n)
	case yaml.MappingNode:
		return decodeMapping(n)
	default:
		return nil, nodeError(n, "expression must be a scalar or a mapping")
	}
}

// decodeScalar maps bare scalars: strings are property paths, everything
// else is a literal of the matching kind.
func decodeScalar(n *yaml.Node) (odata.Expression, error) {
	switch n.Tag {
	case "!!str":
		if n.Value == "" {
			return nil, nodeError(n, "property path is empty")
		}
		return odata.Property(n.Value), nil
	case "!!int", "!!float":
		return odata.Number(n.Value), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, nodeError(n, "invalid boolean %q", n.Value)
		}
		return odata.Bool(b), nil
	case "!!null":
		return odata.Null(), nil
	default:
		return nil, nodeError(n, "unsupported scalar %s", n.Tag)
	}
}

func decodeMapping(n *yaml.Node) (odata.Expression, error) {
	if len(n.Content) == 0 {
		return nil, nodeError(n, "empty expression")
	}
	for i := 0; i < len(n.Content); i += 2 {
		if n.Content[i].Value == "fn" {
			return decodeCall(n)
		}
	}
	if len(n.Content) != 2 {
		return nil, nodeError(n, "expression must have exactly one key, got %d", len(n.Content)/2)
	}

	key, value := n.Content[0], resolve(n.Content[1])
	if op, ok := comparisonKeys[key.Value]; ok {
		operands, err := decodeOperands(key, value, 2, 2)
		if err != nil {
			return nil, err
		}
		return odata.Comparison{Operator: op, Left: operands[0], Right: operands[1]}, nil
	}

	switch key.Value {
	case "and", "or":
		operands, err := decodeOperands(key, value, 2, -1)
		if err != nil {
			return nil, err
		}
		if key.Value == "and" {
			return odata.And(operands[0], operands[1:]...), nil
		}
		return odata.Or(operands[0], operands[1:]...), nil
	case "not":
		operand, err := decodeExpr(value)
		if err != nil {
			return nil, err
		}
		return odata.Not(operand), nil
	case "prop":
		if value.Kind != yaml.ScalarNode || value.Value == "" {
			return nil, nodeError(value, "prop must be a non-empty property path")
		}
		return odata.Property(value.Value), nil
	case "str":
		if value.Kind != yaml.ScalarNode || value.Tag == "!!null" {
			return nil, nodeError(value, "str must be a scalar")
		}
		return odata.String(value.Value), nil
	case "num":
		if value.Kind != yaml.ScalarNode {
			return nil, nodeError(value, "num must be a number")
		}
		if _, err := strconv.ParseFloat(value.Value, 64); err != nil {
			return nil, nodeError(value, "num %q is not a number", value.Value)
		}
		return odata.Number(value.Value), nil
	case "bool":
		var b bool
		if value.Kind != yaml.ScalarNode || value.Tag != "!!bool" || value.Decode(&b) != nil {
			return nil, nodeError(value, "bool must be true or false")
		}
		return odata.Bool(b), nil
	case "null":
		return odata.Null(), nil
	case "enum":
		return decodeEnum(value)
	default:
		return nil, nodeError(key, "unknown expression %q", key.Value)
	}
}

// decodeOperands decodes a sequence operand list. maxCount < 0 means
// unbounded.
func decodeOperands(key, value *yaml.Node, minCount, maxCount int) ([]odata.Expression, error) {
	if value.Kind != yaml.SequenceNode {
		return nil, nodeError(value, "%s takes a list of operands", key.Value)
	}
	count := len(value.Content)
	if count < minCount || (maxCount >= 0 && count > maxCount) {
		if minCount == maxCount {
			return nil, nodeError(value, "%s takes %d operands, got %d", key.Value, minCount, count)
		}
		return nil, nodeError(value, "%s takes at least %d operands, got %d", key.Value, minCount, count)
	}

	operands := make([]odata.Expression, count)
	for i, item := range value.Content {
		expr, err := decodeExpr(item)
		if err != nil {
			return nil, err
		}
		operands[i] = expr
	}
	return operands, nil
}

// decodeCall decodes {fn: name, args: [...]}. Argument counts are not
// checked here; the translator reports them against its function table.
func decodeCall(n *yaml.Node) (odata.Expression, error) {
	var call odata.FunctionCall
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i], resolve(n.Content[i+1])
		switch key.Value {
		case "fn":
			if value.Kind != yaml.ScalarNode || value.Value == "" {
				return nil, nodeError(value, "fn must be a function name")
			}
			call.Name = value.Value
		case "args":
			if isNull(value) {
				continue
			}
			if value.Kind != yaml.SequenceNode {
				return nil, nodeError(value, "args must be a list")
			}
			for _, item := range value.Content {
				arg, err := decodeExpr(item)
				if err != nil {
					return nil, err
				}
				call.Args = append(call.Args, arg)
			}
		default:
			return nil, nodeError(key, "unknown function key %q: must be fn or args", key.Value)
		}
	}
	return call, nil
}

// decodeEnum accepts the OData literal form Namespace.Type'Member' or a
// {type, member} mapping.
func decodeEnum(n *yaml.Node) (odata.Expression, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		typeName, rest, ok := strings.Cut(n.Value, "'")
		if !ok || !strings.HasSuffix(rest, "'") || len(rest) < 2 {
			return nil, nodeError(n, "enum %q must be written as Type'Member'", n.Value)
		}
		return odata.Enum(typeName, strings.TrimSuffix(rest, "'")), nil
	case yaml.MappingNode:
		var typeName, member string
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, value := n.Content[i], resolve(n.Content[i+1])
			if value.Kind != yaml.ScalarNode {
				return nil, nodeError(value, "enum %s must be a string", key.Value)
			}
			switch key.Value {
			case "type":
				typeName = value.Value
			case "member":
				member = value.Value
			default:
				return nil, nodeError(key, "unknown enum key %q: must be type or member", key.Value)
			}
		}
		if member == "" {
			return nil, nodeError(n, "enum is missing member")
		}
		return odata.Enum(typeName, member), nil
	default:
		return nil, nodeError(n, "enum must be a string or mapping")
	}
}
