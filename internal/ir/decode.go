package ir

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownOperation is returned when a document names an operation
	// kind the decoder does not know.
	ErrUnknownOperation = errors.New("unknown operation kind")
	// ErrInvalidExpression is returned for expression nodes of an
	// unrecognized shape.
	ErrInvalidExpression = errors.New("invalid expression")
	// ErrEmptyProgram is returned when a document has no root block.
	ErrEmptyProgram = errors.New("program has no block")
)

// DecodeError reports a malformed IR document with its position.
type DecodeError struct {
	Err    error
	Source string
	Line   int
	Column int
}

func (e *DecodeError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("ir: %s:%d:%d: %v", e.Source, e.Line, e.Column, e.Err)
	}

	return fmt.Sprintf("ir: %d:%d: %v", e.Line, e.Column, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func nodeError(node *yaml.Node, err error) error {
	return &DecodeError{Err: err, Line: node.Line, Column: node.Column}
}

// Decode parses one IR program document. source names the document in
// error messages.
func Decode(data []byte, source string) (*Program, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var prog Program
	if err := dec.Decode(&prog); err != nil {
		var de *DecodeError
		if errors.As(err, &de) {
			de.Source = source

			return nil, de
		}

		return nil, fmt.Errorf("ir: %s: %w", source, err)
	}

	if prog.Block == nil {
		return nil, &DecodeError{Err: ErrEmptyProgram, Source: source}
	}

	prog.Source = source

	return &prog, nil
}

func locOf(node *yaml.Node) *Loc {
	return &Loc{Line: node.Line, Column: node.Column}
}

// UnmarshalYAML decodes the operation list, choosing the variant by the
// `kind` field of every entry.
func (l *OperationList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return nodeError(node, errors.New("operations must be a sequence"))
	}

	ops := make(OperationList, 0, len(node.Content))

	for _, item := range node.Content {
		op, err := decodeOperation(item)
		if err != nil {
			return err
		}

		ops = append(ops, op)
	}

	*l = ops

	return nil
}

func decodeOperation(node *yaml.Node) (Operation, error) {
	if node.Kind != yaml.MappingNode {
		return nil, nodeError(node, errors.New("operation must be a mapping"))
	}

	kind := ""
	body := &yaml.Node{Kind: yaml.MappingNode, Tag: node.Tag, Line: node.Line, Column: node.Column}

	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == "kind" {
			kind = node.Content[i+1].Value

			continue
		}

		body.Content = append(body.Content, node.Content[i], node.Content[i+1])
	}

	op := newOperation(OperationKind(kind))
	if op == nil {
		return nil, nodeError(node, fmt.Errorf("%w: %q", ErrUnknownOperation, kind))
	}

	if err := body.Decode(op); err != nil {
		return nil, err
	}

	return op, nil
}

func newOperation(kind OperationKind) Operation {
	switch kind {
	case KindSetProp:
		return &SetProp{}
	case KindSetDynamicProps:
		return &SetDynamicProps{}
	case KindSetText:
		return &SetText{}
	case KindCreateTextNode:
		return &CreateTextNode{}
	case KindInsertNode:
		return &InsertNode{}
	case KindPrependNode:
		return &PrependNode{}
	case KindIf:
		return &If{}
	case KindFor:
		return &For{}
	case KindCreateComponent:
		return &CreateComponent{}
	case KindDeclareOldRef:
		return &DeclareOldRef{}
	case KindSlotOutlet:
		return &SlotOutlet{}
	case KindSetInheritAttrs:
		return &SetInheritAttrs{}
	case KindSetEvent:
		return &SetEvent{}
	case KindSetDynamicEvents:
		return &SetDynamicEvents{}
	case KindSetHTML:
		return &SetHTML{}
	case KindSetTemplateRef:
		return &SetTemplateRef{}
	case KindSetModelValue:
		return &SetModelValue{}
	}

	return nil
}

// UnmarshalYAML decodes an expression. Plain scalars go through
// ParseShorthand, single-quoted scalars are static strings and mappings
// name the node type with their only key.
func (e *Expression) UnmarshalYAML(node *yaml.Node) error {
	expr, err := decodeExpr(node)
	if err != nil {
		return err
	}

	e.Node = expr

	return nil
}

func decodeExpr(node *yaml.Node) (Expr, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Style&yaml.SingleQuotedStyle != 0 {
			return &String{Value: node.Value, Loc: locOf(node)}, nil
		}

		return ParseShorthand(node.Value, locOf(node)), nil
	case yaml.MappingNode:
		if len(node.Content) != 2 {
			return nil, nodeError(node, fmt.Errorf("%w: expected exactly one key", ErrInvalidExpression))
		}

		return decodeTagged(node.Content[0].Value, node.Content[1], locOf(node))
	case yaml.AliasNode:
		return decodeExpr(node.Alias)
	}

	return nil, nodeError(node, ErrInvalidExpression)
}

func decodeExprs(node *yaml.Node) ([]Expr, error) {
	if node.Kind != yaml.SequenceNode {
		return nil, nodeError(node, fmt.Errorf("%w: expected a sequence", ErrInvalidExpression))
	}

	out := make([]Expr, 0, len(node.Content))

	for _, item := range node.Content {
		expr, err := decodeExpr(item)
		if err != nil {
			return nil, err
		}

		out = append(out, expr)
	}

	return out, nil
}

// fields reads a mapping into name -> value node.
func fields(node *yaml.Node) (map[string]*yaml.Node, error) {
	if node.Kind != yaml.MappingNode {
		return nil, nodeError(node, fmt.Errorf("%w: expected a mapping", ErrInvalidExpression))
	}

	out := make(map[string]*yaml.Node, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		out[node.Content[i].Value] = node.Content[i+1]
	}

	return out, nil
}

func field(node *yaml.Node, f map[string]*yaml.Node, name string) (Expr, error) {
	v, ok := f[name]
	if !ok {
		return nil, nodeError(node, fmt.Errorf("%w: missing %q", ErrInvalidExpression, name))
	}

	return decodeExpr(v)
}

//nolint:cyclop,funlen
func decodeTagged(tag string, value *yaml.Node, loc *Loc) (Expr, error) {
	switch tag {
	case "ident":
		if !IsSimpleIdentifier(value.Value) {
			return nil, nodeError(value, fmt.Errorf("%w: %q is not an identifier", ErrInvalidExpression, value.Value))
		}

		return &Ident{Name: value.Value, Loc: loc}, nil
	case "path":
		if !IsMemberPath(value.Value) {
			return nil, nodeError(value, fmt.Errorf("%w: %q is not a member path", ErrInvalidExpression, value.Value))
		}

		return ParseShorthand(value.Value, loc), nil
	case "string":
		return &String{Value: value.Value, Loc: loc}, nil
	case "literal":
		return &Literal{Raw: value.Value, Loc: loc}, nil
	case "raw":
		return &Raw{Code: value.Value, Loc: loc}, nil
	case "member":
		f, err := fields(value)
		if err != nil {
			return nil, err
		}

		obj, err := field(value, f, "object")
		if err != nil {
			return nil, err
		}

		prop, ok := f["property"]
		if !ok {
			return nil, nodeError(value, fmt.Errorf("%w: missing %q", ErrInvalidExpression, "property"))
		}

		return &Member{Object: obj, Property: prop.Value, Loc: loc}, nil
	case "unary":
		f, err := fields(value)
		if err != nil {
			return nil, err
		}

		x, err := field(value, f, "x")
		if err != nil {
			return nil, err
		}

		op, ok := f["op"]
		if !ok {
			return nil, nodeError(value, fmt.Errorf("%w: missing %q", ErrInvalidExpression, "op"))
		}

		return &Unary{Op: op.Value, X: x, Loc: loc}, nil
	case "binary":
		f, err := fields(value)
		if err != nil {
			return nil, err
		}

		left, err := field(value, f, "left")
		if err != nil {
			return nil, err
		}

		right, err := field(value, f, "right")
		if err != nil {
			return nil, err
		}

		op, ok := f["op"]
		if !ok {
			return nil, nodeError(value, fmt.Errorf("%w: missing %q", ErrInvalidExpression, "op"))
		}

		return &Binary{Op: op.Value, Left: left, Right: right, Loc: loc}, nil
	case "conditional":
		f, err := fields(value)
		if err != nil {
			return nil, err
		}

		test, err := field(value, f, "test")
		if err != nil {
			return nil, err
		}

		cons, err := field(value, f, "then")
		if err != nil {
			return nil, err
		}

		alt, err := field(value, f, "else")
		if err != nil {
			return nil, err
		}

		return &Conditional{Test: test, Consequent: cons, Alternate: alt, Loc: loc}, nil
	case "call":
		f, err := fields(value)
		if err != nil {
			return nil, err
		}

		callee, err := field(value, f, "callee")
		if err != nil {
			return nil, err
		}

		var args []Expr
		if a, ok := f["args"]; ok {
			if args, err = decodeExprs(a); err != nil {
				return nil, err
			}
		}

		return &Call{Callee: callee, Args: args, Loc: loc}, nil
	case "array":
		elems, err := decodeExprs(value)
		if err != nil {
			return nil, err
		}

		return &Array{Elements: elems, Loc: loc}, nil
	case "object":
		if value.Kind != yaml.MappingNode {
			return nil, nodeError(value, fmt.Errorf("%w: object must be a mapping", ErrInvalidExpression))
		}

		obj := &Object{Loc: loc}

		for i := 0; i+1 < len(value.Content); i += 2 {
			v, err := decodeExpr(value.Content[i+1])
			if err != nil {
				return nil, err
			}

			obj.Properties = append(obj.Properties, Property{Key: value.Content[i].Value, Value: v})
		}

		return obj, nil
	}

	return nil, nodeError(value, fmt.Errorf("%w: unknown node type %q", ErrInvalidExpression, tag))
}
