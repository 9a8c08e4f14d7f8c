package ir

import (
	"regexp"
	"strings"
)

// Loc is a source position inside the IR document.
type Loc struct {
	Line   int `yaml:"line"`
	Column int `yaml:"column"`
}

// Expr is one node of a dynamic value expression.
type Expr interface {
	Pos() *Loc
}

// Ident reads a name. Names not declared by an enclosing routine resolve
// against the component context.
type Ident struct {
	Name string
	Loc  *Loc
}

// Member is a static property read (`object.property`).
type Member struct {
	Object   Expr
	Property string
	Loc      *Loc
}

// Literal is a constant emitted verbatim (numbers, booleans, null, undefined).
type Literal struct {
	Raw string
	Loc *Loc
}

// String is a static string, emitted JSON-quoted.
type String struct {
	Value string
	Loc   *Loc
}

// Unary is a prefix operator application.
type Unary struct {
	Op  string
	X   Expr
	Loc *Loc
}

// Binary is an infix operator application.
type Binary struct {
	Op    string
	Left  Expr
	Right Expr
	Loc   *Loc
}

// Conditional is `test ? consequent : alternate`.
type Conditional struct {
	Test       Expr
	Consequent Expr
	Alternate  Expr
	Loc        *Loc
}

// Call is a function call.
type Call struct {
	Callee Expr
	Args   []Expr
	Loc    *Loc
}

// Array is an array literal.
type Array struct {
	Elements []Expr
	Loc      *Loc
}

// Property is one entry of an object literal.
type Property struct {
	Key   string
	Value Expr
}

// Object is an object literal.
type Object struct {
	Properties []Property
	Loc        *Loc
}

// Raw is opaque code emitted as is. It is never considered trackable.
type Raw struct {
	Code string
	Loc  *Loc
}

func (e *Ident) Pos() *Loc       { return e.Loc }
func (e *Member) Pos() *Loc      { return e.Loc }
func (e *Literal) Pos() *Loc     { return e.Loc }
func (e *String) Pos() *Loc      { return e.Loc }
func (e *Unary) Pos() *Loc       { return e.Loc }
func (e *Binary) Pos() *Loc      { return e.Loc }
func (e *Conditional) Pos() *Loc { return e.Loc }
func (e *Call) Pos() *Loc        { return e.Loc }
func (e *Array) Pos() *Loc       { return e.Loc }
func (e *Object) Pos() *Loc      { return e.Loc }
func (e *Raw) Pos() *Loc         { return e.Loc }

// Expression wraps an Expr so it can be decoded from YAML and passed around
// as a field value. A nil *Expression means "absent".
type Expression struct {
	Node Expr
}

// NewExpression wraps node.
func NewExpression(node Expr) *Expression {
	return &Expression{Node: node}
}

// IsStatic reports whether the expression is a static string.
func (e *Expression) IsStatic() bool {
	if e == nil {
		return false
	}

	_, ok := e.Node.(*String)

	return ok
}

// Content returns the source-level text of a static string or identifier,
// or the empty string for anything else.
func (e *Expression) Content() string {
	if e == nil {
		return ""
	}

	switch n := e.Node.(type) {
	case *String:
		return n.Value
	case *Ident:
		return n.Name
	case *Literal:
		return n.Raw
	case *Raw:
		return n.Code
	}

	if path, ok := MemberPath(e.Node); ok {
		return path
	}

	return ""
}

// IsEmpty reports whether the expression is absent or renders nothing.
func (e *Expression) IsEmpty() bool {
	if e == nil || e.Node == nil {
		return true
	}

	if raw, ok := e.Node.(*Raw); ok {
		return strings.TrimSpace(raw.Code) == ""
	}

	return false
}

// MemberPath returns the dotted path of an identifier or a static member
// chain rooted at an identifier (e.g. "user.name").
func MemberPath(e Expr) (string, bool) {
	switch n := e.(type) {
	case *Ident:
		return n.Name, true
	case *Member:
		root, ok := MemberPath(n.Object)
		if !ok {
			return "", false
		}

		return root + "." + n.Property, true
	}

	return "", false
}

// RootIdent returns the identifier at the root of a member chain.
func RootIdent(e Expr) (*Ident, bool) {
	switch n := e.(type) {
	case *Ident:
		return n, true
	case *Member:
		return RootIdent(n.Object)
	}

	return nil, false
}

var (
	simpleIdentifierRe = regexp.MustCompile(`^[A-Za-z_$][\w$]*$`)
	memberPathRe       = regexp.MustCompile(`^[A-Za-z_$][\w$]*(\.[A-Za-z_$][\w$]*)*$`)
	numberLiteralRe    = regexp.MustCompile(`^-?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
)

// IsSimpleIdentifier reports whether name can be used as a bare JS identifier
// or object key.
func IsSimpleIdentifier(name string) bool {
	return simpleIdentifierRe.MatchString(name)
}

// IsMemberPath reports whether code is an identifier or a dotted path.
func IsMemberPath(code string) bool {
	return memberPathRe.MatchString(strings.TrimSpace(code))
}

// ParseShorthand turns a scalar written in an IR document into an Expr:
// dotted paths become identifier reads, numbers and keywords become literals
// and everything else is kept as raw code.
func ParseShorthand(code string, loc *Loc) Expr {
	trimmed := strings.TrimSpace(code)

	switch trimmed {
	case "true", "false", "null", "undefined":
		return &Literal{Raw: trimmed, Loc: loc}
	}

	if numberLiteralRe.MatchString(trimmed) {
		return &Literal{Raw: trimmed, Loc: loc}
	}

	if memberPathRe.MatchString(trimmed) {
		parts := strings.Split(trimmed, ".")

		var expr Expr = &Ident{Name: parts[0], Loc: loc}
		for _, part := range parts[1:] {
			expr = &Member{Object: expr, Property: part, Loc: loc}
		}

		return expr
	}

	return &Raw{Code: code, Loc: loc}
}
