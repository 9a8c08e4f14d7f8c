package dom

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"vapor.dev/pkg/vapor/internal/shared"
)

// Property assignment errors.
var (
	ErrReadOnly  = errors.New("property is read-only")
	ErrIndexSize = errors.New("value is out of range")
)

// PropertyError is a failed property assignment.
type PropertyError struct {
	Tag  string
	Name string
	Err  error
}

func (e *PropertyError) Error() string {
	return fmt.Sprintf("cannot set %s.%s: %v", e.Tag, e.Name, e.Err)
}

func (e *PropertyError) Unwrap() error {
	return e.Err
}

// PropertyType returns the native type of a property, or false when
// the element has no such property in its schema.
func PropertyType(el Element, name string) (PropType, bool) {
	switch name {
	case "textContent", "innerHTML":
		return PropString, true
	}

	spec, ok := lookupProp(el.Namespace(), el.TagName(), name)

	return spec.typ, ok
}

func (e *element) HasProperty(name string) bool {
	if _, ok := PropertyType(e, name); ok {
		return true
	}

	_, ok := e.expandos[name]

	return ok
}

func (e *element) Property(name string) any {
	switch name {
	case "textContent":
		return e.TextContent()
	case "innerHTML":
		return e.InnerHTML()
	case "tagName":
		return e.TagName()
	}

	spec, ok := lookupProp(e.Namespace(), e.TagName(), name)
	if !ok {
		return e.expandos[name]
	}

	if v, ok := e.props[name]; ok {
		return v
	}

	if spec.attr != "" {
		return e.reflected(name, spec)
	}

	return e.defaultProp(name, spec)
}

func (e *element) reflected(name string, spec propSpec) any {
	raw, has := e.GetAttribute(spec.attr)

	switch spec.typ {
	case PropBool:
		return has
	case PropNumber:
		if f, err := strconv.ParseFloat(raw, 64); has && err == nil {
			return f
		}

		if name == "tabIndex" {
			return float64(-1)
		}

		return float64(0)
	case PropObject:
		return nil
	}

	if !has && name == "value" && e.TagName() == "OPTION" {
		return e.TextContent()
	}

	return raw
}

func (e *element) defaultProp(name string, spec propSpec) any {
	switch spec.typ {
	case PropBool:
		if name == "checked" {
			return e.HasAttribute("checked")
		}

		if name == "selected" {
			return e.HasAttribute("selected")
		}

		return false
	case PropNumber:
		if name == "selectedIndex" {
			return float64(-1)
		}

		return float64(0)
	case PropObject:
		return nil
	}

	switch {
	case name == "value" && e.TagName() == "TEXTAREA":
		return e.TextContent()
	case name == "value":
		v, _ := e.GetAttribute("value")

		return v
	case name == "text":
		return e.TextContent()
	case name == "type":
		return e.LocalName()
	}

	return ""
}

func (e *element) SetProperty(name string, value any) error {
	switch name {
	case "textContent":
		e.SetTextContent(nullableString(value))

		return nil
	case "innerHTML":
		return e.SetInnerHTML(nullableString(value))
	}

	spec, ok := lookupProp(e.Namespace(), e.TagName(), name)
	if !ok {
		e.SetExpando(name, value)

		return nil
	}

	if spec.readonly {
		return &PropertyError{Tag: e.TagName(), Name: name, Err: ErrReadOnly}
	}

	switch spec.typ {
	case PropBool:
		return e.assign(name, spec, shared.Truthy(value))
	case PropNumber:
		f := shared.ToNumber(value)
		if math.IsNaN(f) {
			f = 0
		}

		if (name == "maxLength" || name == "minLength") && f < 0 {
			return &PropertyError{Tag: e.TagName(), Name: name, Err: ErrIndexSize}
		}

		return e.assign(name, spec, f)
	case PropObject:
		return e.assign(name, spec, value)
	}

	if name == "value" {
		return e.assign(name, spec, nullableString(value))
	}

	return e.assign(name, spec, shared.ToString(value))
}

func (e *element) assign(name string, spec propSpec, value any) error {
	if spec.attr == "" {
		if e.props == nil {
			e.props = make(map[string]any)
		}

		e.props[name] = value

		return nil
	}

	switch v := value.(type) {
	case bool:
		if v {
			e.SetAttribute(spec.attr, "")
		} else {
			e.RemoveAttribute(spec.attr)
		}
	case float64:
		e.SetAttribute(spec.attr, shared.FormatNumber(v))
	case string:
		e.SetAttribute(spec.attr, v)
	}

	return nil
}

// nullableString is the coercion of value-like properties, where null
// means empty.
func nullableString(v any) string {
	if v == nil {
		return ""
	}

	return shared.ToString(v)
}
