// Package classify decides which runtime write primitive a static
// (tag, key) binding compiles to.
package classify

import (
	"strings"
	"sync"
)

// Helper names a runtime write primitive.
type Helper string

// Runtime write primitives.
const (
	SetClass       Helper = "setClass"
	SetStyle       Helper = "setStyle"
	SetHTML        Helper = "setHtml"
	SetText        Helper = "setText"
	SetValue       Helper = "setValue"
	SetAttr        Helper = "setAttr"
	SetDOMProp     Helper = "setDOMProp"
	SetDynamicProp Helper = "setDynamicProp"
)

// Result is a classification decision. OmitKey means the helper takes no
// key argument.
type Result struct {
	Helper  Helper
	OmitKey bool
}

// Modifier prefixes forcing property (.) or attribute (^) semantics.
const (
	PropModifier = "."
	AttrModifier = "^"
)

var specialHelpers = map[string]Result{
	"class":       {Helper: SetClass, OmitKey: true},
	"style":       {Helper: SetStyle, OmitKey: true},
	"innerHTML":   {Helper: SetHTML, OmitKey: true},
	"textContent": {Helper: SetText, OmitKey: true},
}

// SpecialHelper returns the dedicated setter for key on the upper-case
// tag, if there is one.
func SpecialHelper(key, tagName string) (Result, bool) {
	if key == "value" && CanSetValueDirectly(tagName) {
		return Result{Helper: SetValue, OmitKey: true}, true
	}

	r, ok := specialHelpers[key]

	return r, ok
}

// Memo caches ShouldSetAsAttr answers keyed by "TAG_key". Entries are
// never removed. It is safe for concurrent use.
type Memo struct {
	entries sync.Map
}

// AttributeCache is the process-wide memo shared by the compiler and the
// runtime.
var AttributeCache = &Memo{}

// ShouldSetAsAttr answers ShouldSetAsAttr(tagName, key), computing it at
// most once per pair.
func (m *Memo) ShouldSetAsAttr(tagName, key string) bool {
	cacheKey := tagName + "_" + key
	if v, ok := m.entries.Load(cacheKey); ok {
		return v.(bool)
	}

	v, _ := m.entries.LoadOrStore(cacheKey, ShouldSetAsAttr(tagName, key))

	return v.(bool)
}

// Len returns the number of memoized pairs.
func (m *Memo) Len() int {
	n := 0
	m.entries.Range(func(_, _ any) bool {
		n++

		return true
	})

	return n
}

// Table classifies bindings against a memo.
type Table struct {
	memo *Memo
}

// NewTable creates a table backed by memo. A nil memo uses AttributeCache.
func NewTable(memo *Memo) *Table {
	if memo == nil {
		memo = AttributeCache
	}

	return &Table{memo: memo}
}

// Classify picks the helper for a static key on tag. Rules, first match
// wins: explicit modifier, special setter, memoized attribute rule,
// namespace global attribute, generic dynamic prop.
func (t *Table) Classify(tag, key, modifier string) Result {
	tagName := strings.ToUpper(tag)

	switch modifier {
	case PropModifier:
		if r, ok := SpecialHelper(key, tagName); ok {
			return r
		}

		return Result{Helper: SetDOMProp}
	case AttrModifier:
		return Result{Helper: SetAttr}
	}

	if r, ok := SpecialHelper(key, tagName); ok {
		return r
	}

	if t.memo.ShouldSetAsAttr(tagName, key) {
		return Result{Helper: SetAttr}
	}

	if (IsHTMLTag(tag) && IsHTMLGlobalAttr(key)) ||
		(IsSVGTag(tag) && IsSVGGlobalAttr(key)) ||
		(IsMathMLTag(tag) && IsMathMLGlobalAttr(key)) {
		return Result{Helper: SetDOMProp}
	}

	return Result{Helper: SetDynamicProp}
}

// Classify classifies against the shared AttributeCache.
func Classify(tag, key, modifier string) Result {
	return NewTable(nil).Classify(tag, key, modifier)
}
