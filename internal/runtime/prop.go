// Package runtime applies compiled writes to dom nodes. Every primitive
// compares against the node's metadata first and skips writes of an
// identical value.
package runtime

import (
	"strings"

	"go.uber.org/zap"

	"vapor.dev/pkg/vapor/internal/classify"
	"vapor.dev/pkg/vapor/internal/dom"
	"vapor.dev/pkg/vapor/internal/shared"
)

// Special metadata keys.
const (
	keyClass       = "class"
	keyStyle       = "style"
	keyValue       = "value"
	keyTextContent = "textContent"
	keyInnerHTML   = "innerHTML"
)

// SetClass normalizes value and writes it as the class attribute. On a
// component's single root the fall-through class is merged in first.
func SetClass(el dom.Element, value any, root *Instance) {
	if root != nil {
		value = MergeInheritAttr(root, keyClass, value)
	}

	next := NormalizeClass(value)
	meta := el.Meta()

	prev, _ := meta.Get(dom.MetaSpecial, keyClass)
	if identical(next, prev) || (next == "" && prev == nil) {
		return
	}

	el.SetAttribute("class", next)
	traceWrite("setClass", keyClass, next)
	meta.Record(dom.MetaSpecial, keyClass, next)
}

// SetStyle normalizes value and writes its cssText. On a component's
// single root the fall-through style is merged in first.
func SetStyle(el dom.Element, value any, root *Instance) {
	if root != nil {
		value = MergeInheritAttr(root, keyStyle, value)
	}

	css := StringifyStyle(NormalizeStyle(value))
	meta := el.Meta()

	prev, _ := meta.Get(dom.MetaSpecial, keyStyle)
	if identical(css, prev) || (css == "" && prev == nil) {
		return
	}

	if css == "" {
		el.RemoveAttribute("style")
	} else {
		el.SetAttribute("style", css)
	}

	traceWrite("setStyle", keyStyle, css)
	meta.Record(dom.MetaSpecial, keyStyle, css)
}

// SetAttr sets an attribute, or removes it when value is nil.
func SetAttr(el dom.Element, key string, value any) {
	meta := el.Meta()

	if prev, ok := meta.Get(dom.MetaAttr, key); ok && identical(value, prev) {
		return
	}

	if value == nil {
		el.RemoveAttribute(key)
	} else {
		el.SetAttribute(key, shared.ToString(value))
	}

	traceWrite("setAttr", key, value)
	meta.Record(dom.MetaAttr, key, value)
}

// SetValue writes the value property and keeps the raw value in the
// _value expando. Options compare against their value attribute, since
// their value property falls back to the text.
func SetValue(el dom.Element, value any) {
	meta := el.Meta()

	if prev, ok := meta.Get(dom.MetaSpecial, keyValue); ok && identical(value, prev) {
		return
	}

	el.SetExpando("_value", value)

	var current any
	if el.TagName() == "OPTION" {
		if v, ok := el.GetAttribute("value"); ok {
			current = v
		}
	} else {
		current = el.Property("value")
	}

	next := value
	if next == nil {
		next = ""
	}

	if !identical(current, next) {
		if err := el.SetProperty("value", next); err != nil {
			warnProp(el, keyValue, next, err)

			return
		}

		traceWrite("setValue", keyValue, next)
	}

	if value == nil {
		el.RemoveAttribute("value")
	}

	meta.Record(dom.MetaSpecial, keyValue, value)
}

// SetDOMProp assigns a DOM property. Empty and nil values are coerced to
// the property's type first; coerced string and number properties also
// drop their attribute. Failed assignments are logged and not recorded.
func SetDOMProp(el dom.Element, key string, value any) {
	meta := el.Meta()

	if prev, ok := meta.Get(dom.MetaProp, key); ok && identical(value, prev) {
		return
	}

	recorded := value
	needRemove := false

	if value == "" || value == nil {
		typ, ok := dom.PropertyType(el, key)

		switch {
		case ok && typ == dom.PropBool:
			// <select multiple> binds multiple: ""
			value = value != nil
		case ok && typ == dom.PropString && value == nil:
			value = ""
			needRemove = true
		case ok && typ == dom.PropNumber:
			value = 0
			needRemove = true
		}
	}

	if err := el.SetProperty(key, value); err != nil {
		if !needRemove {
			warnProp(el, key, value, err)
		}
	} else {
		traceWrite("setDOMProp", key, value)
		meta.Record(dom.MetaProp, key, recorded)
	}

	if needRemove {
		el.RemoveAttribute(key)
	}
}

func warnProp(el dom.Element, key string, value any, err error) {
	Logger().Warn("failed setting prop",
		zap.String("key", key),
		zap.String("tag", strings.ToLower(el.TagName())),
		zap.Any("value", value),
		zap.Error(err),
	)
}

// SetText writes the concatenated display strings of values as the
// node's text and returns it.
func SetText(node dom.Node, values ...any) string {
	var b strings.Builder
	for _, v := range values {
		b.WriteString(ToDisplayString(v))
	}

	text := b.String()
	meta := node.Meta()

	if prev, ok := meta.Get(dom.MetaSpecial, keyTextContent); ok && prev == text {
		return text
	}

	node.SetTextContent(text)
	traceWrite("setText", keyTextContent, text)
	meta.Record(dom.MetaSpecial, keyTextContent, text)

	return text
}

// SetHTML replaces the element's children with parsed markup.
func SetHTML(el dom.Element, value any) {
	meta := el.Meta()

	prev, ok := meta.Get(dom.MetaSpecial, keyInnerHTML)
	if ok && identical(value, prev) {
		return
	}

	markup := ""
	if value != nil {
		markup = shared.ToString(value)
	}

	if err := el.SetInnerHTML(markup); err != nil {
		warnProp(el, keyInnerHTML, value, err)

		return
	}

	traceWrite("setHtml", keyInnerHTML, markup)
	meta.Record(dom.MetaSpecial, keyInnerHTML, value)
}

// SetEvent binds a handler prop such as onClick; nil unbinds it.
func SetEvent(el dom.Element, key string, value any) {
	meta := el.Meta()

	if prev, ok := meta.Get(dom.MetaEvent, key); ok && identical(value, prev) {
		return
	}

	event := strings.ToLower(key[2:3]) + key[3:]
	el.SetListener(event, value)
	traceWrite("on", event, value)
	meta.Record(dom.MetaEvent, key, value)
}

// SetDynamicProp writes a key only known at run time, choosing the
// primitive with the same rules the compiler applies to static keys.
// A leading "." forces a property write and "^" an attribute write.
func SetDynamicProp(el dom.Element, key string, value any) {
	switch {
	case key == "":
		return
	case key == keyClass:
		SetClass(el, value, nil)

		return
	case key == keyStyle:
		SetStyle(el, value, nil)

		return
	case shared.IsOn(key):
		SetEvent(el, key, value)

		return
	}

	var asProp bool

	switch key[0] {
	case '.':
		key, asProp = key[1:], true
	case '^':
		key, asProp = key[1:], false
	default:
		asProp = shouldSetAsProp(el, key, value, el.Namespace() == dom.NamespaceSVG)
	}

	if !asProp {
		SetAttr(el, key, value)

		return
	}

	switch {
	case key == keyInnerHTML:
		SetHTML(el, value)
	case key == keyTextContent:
		SetText(el, value)
	case key == keyValue && classify.CanSetValueDirectly(el.TagName()):
		SetValue(el, value)
	default:
		SetDOMProp(el, key, value)
	}
}

// SetDynamicProps merges prop sources and applies the result. Keys
// applied before and missing now are cleared, except the text and html
// keys. On a component's single root the fall-through attrs come first.
func SetDynamicProps(el dom.Element, args []Data, root *Instance) {
	if root != nil {
		args = append([]Data{root.Attrs}, args...)
	}

	var props Data

	switch len(args) {
	case 0:
		props = Data{}
	case 1:
		props = args[0]
	default:
		props = MergeProps(args...)
	}

	meta := el.Meta()

	for _, key := range meta.Keys(dom.MetaAttr, dom.MetaProp, dom.MetaSpecial, dom.MetaEvent) {
		if key == keyTextContent || key == keyInnerHTML {
			continue
		}

		if lastValue(meta, key) != nil && !hasProp(props, key) {
			SetDynamicProp(el, clearKey(meta, key), nil)
		}
	}

	for _, key := range sortedKeys(props) {
		SetDynamicProp(el, key, props[key])
	}
}

func hasProp(props Data, key string) bool {
	for _, k := range []string{key, "." + key, "^" + key} {
		if _, ok := props[k]; ok {
			return true
		}
	}

	return false
}

// clearKey forces the clearing write down the path key was last applied
// through, so a property stays a property and an attribute an attribute.
func clearKey(meta *dom.Metadata, key string) string {
	if v, ok := meta.Get(dom.MetaProp, key); ok && v != nil {
		return "." + key
	}

	if v, ok := meta.Get(dom.MetaAttr, key); ok && v != nil {
		return "^" + key
	}

	return key
}

func lastValue(meta *dom.Metadata, key string) any {
	for _, kind := range []dom.MetaKind{dom.MetaAttr, dom.MetaProp, dom.MetaSpecial, dom.MetaEvent} {
		if v, ok := meta.Get(kind, key); ok && v != nil {
			return v
		}
	}

	return nil
}

// MergeProp combines two values of one key: classes concatenate, styles
// merge, handlers accumulate into a list. Otherwise incoming wins.
func MergeProp(key string, existing, incoming any) any {
	switch {
	case key == keyClass:
		if !identical(existing, incoming) {
			return NormalizeClass([]any{existing, incoming})
		}
	case key == keyStyle:
		return NormalizeStyle([]any{existing, incoming})
	case shared.IsOn(key):
		if shared.Truthy(incoming) && !identical(existing, incoming) && !containsHandler(existing, incoming) {
			if !shared.Truthy(existing) {
				return incoming
			}

			if list, ok := existing.([]any); ok {
				return append(append([]any(nil), list...), incoming)
			}

			return []any{existing, incoming}
		}
	}

	return incoming
}

func containsHandler(existing, incoming any) bool {
	list, ok := existing.([]any)
	if !ok {
		return false
	}

	for _, h := range list {
		if identical(h, incoming) {
			return true
		}
	}

	return false
}

// MergeProps merges sources left to right with MergeProp. The empty key
// is ignored.
func MergeProps(args ...Data) Data {
	ret := Data{}

	for _, toMerge := range args {
		for _, key := range sortedKeys(toMerge) {
			if key != "" {
				ret[key] = MergeProp(key, ret[key], toMerge[key])
			}
		}
	}

	return ret
}

// shouldSetAsProp decides between property and attribute for a dynamic
// key. SVG takes attributes except for content keys and native handler
// functions.
func shouldSetAsProp(el dom.Element, key string, value any, isSVG bool) bool {
	if isSVG {
		if key == keyInnerHTML || key == keyTextContent {
			return true
		}

		return el.HasProperty(key) && shared.IsNativeOn(key) && isFunction(value)
	}

	if classify.AttributeCache.ShouldSetAsAttr(el.TagName(), key) {
		return false
	}

	if _, ok := value.(string); ok && shared.IsNativeOn(key) {
		return false
	}

	return el.HasProperty(key)
}
