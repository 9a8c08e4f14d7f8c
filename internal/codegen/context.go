package codegen

import (
	"fmt"
	"sort"
	"strings"

	"vapor.dev/pkg/vapor/internal/classify"
)

// DefaultRuntimeModule is the module generated code imports helpers from.
const DefaultRuntimeModule = "vue/vapor"

// Options configure a generation run.
type Options struct {
	// RuntimeModule is the import source of runtime helpers.
	RuntimeModule string
	// Table classifies static props. Nil uses the shared table.
	Table *classify.Table
}

// Context is the state of one program generation.
type Context struct {
	opts      Options
	table     *classify.Table
	helpers   map[string]bool
	delegates map[string]bool
	routine   *routine
}

// NewContext creates a generation context.
func NewContext(opts Options) *Context {
	if opts.RuntimeModule == "" {
		opts.RuntimeModule = DefaultRuntimeModule
	}

	table := opts.Table
	if table == nil {
		table = classify.NewTable(nil)
	}

	ctx := &Context{
		opts:      opts,
		table:     table,
		helpers:   make(map[string]bool),
		delegates: make(map[string]bool),
	}
	ctx.routine = newRoutine(nil, nil)

	return ctx
}

// Helper records a runtime helper as used and returns its local name.
func (c *Context) Helper(name string) string {
	c.helpers[name] = true

	return "_" + name
}

// Helpers returns the used helper names, sorted.
func (c *Context) Helpers() []string {
	return sortedKeys(c.helpers)
}

// Delegates returns the delegated event names, sorted.
func (c *Context) Delegates() []string {
	return sortedKeys(c.delegates)
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}

	sort.Strings(out)

	return out
}

// isLocal reports whether name is declared by the current routine or one
// of its enclosing routines.
func (c *Context) isLocal(name string) bool {
	for r := c.routine; r != nil; r = r.parent {
		if r.locals[name] {
			return true
		}
	}

	return false
}

// withRoutine runs fn inside a fresh routine declaring locals.
func (c *Context) withRoutine(locals []string, fn func(*routine) error) error {
	prev := c.routine
	c.routine = newRoutine(prev, locals)

	defer func() { c.routine = prev }()

	return fn(c.routine)
}

// withLocals runs fn with extra locals visible, without opening a routine.
func (c *Context) withLocals(locals []string, fn func()) {
	r := c.routine
	added := make([]string, 0, len(locals))

	for _, name := range locals {
		if name != "" && !r.locals[name] {
			r.locals[name] = true
			added = append(added, name)
		}
	}

	fn()

	for _, name := range added {
		delete(r.locals, name)
	}
}

// routine is one generated function body: it owns the shadow variable
// declarations and the hoisted component resolutions.
type routine struct {
	parent  *routine
	locals  map[string]bool
	shadows []string
	taken   map[string]bool
	hoists  []string
	hoisted map[string]bool
}

func newRoutine(parent *routine, locals []string) *routine {
	r := &routine{
		parent:  parent,
		locals:  make(map[string]bool),
		taken:   make(map[string]bool),
		hoisted: make(map[string]bool),
	}

	for _, name := range locals {
		if name != "" {
			r.locals[name] = true
		}
	}

	return r
}

// runtimeHelpers lists every helper generated code can import. Their
// underscored local names are never used for shadows.
var runtimeHelpers = map[string]bool{
	"camelize": true, "child": true, "createComponent": true, "createFor": true,
	"createIf": true, "createSlot": true, "createTextNode": true, "delegate": true,
	"delegateEvents": true, "insert": true, "on": true, "prepend": true,
	"renderEffect": true, "resolveComponent": true, "setAttr": true, "setClass": true,
	"setDOMProp": true, "setDynamicEvents": true, "setDynamicProp": true,
	"setDynamicProps": true, "setHtml": true, "setInheritAttrs": true, "setStyle": true,
	"setTemplateRef": true, "setText": true, "setValue": true, "template": true,
	"toHandlerKey": true, "withKeys": true, "withModifiers": true,
}

// reservedName reports names owned by the module scaffolding: the render
// parameter, helper imports and hoisted component resolutions.
func reservedName(name string) bool {
	return name == ctxName ||
		runtimeHelpers[strings.TrimPrefix(name, "_")] ||
		strings.HasPrefix(name, "_component_")
}

// reserveShadow allocates a shadow variable name for key, unique within
// the routine and not hiding any enclosing local or reserved name.
func (r *routine) reserveShadow(key string) string {
	base := "_" + strings.ReplaceAll(key, ".", "_")
	name := base

	for i := 1; !r.available(name); i++ {
		name = fmt.Sprintf("%s%d", base, i)
	}

	r.taken[name] = true
	r.shadows = append(r.shadows, name)

	return name
}

func (r *routine) available(name string) bool {
	if r.taken[name] || reservedName(name) {
		return false
	}

	for p := r; p != nil; p = p.parent {
		if p.locals[name] {
			return false
		}
	}

	return true
}

// hoist records a routine-level declaration, once.
func (r *routine) hoist(decl string) {
	if r.hoisted[decl] {
		return
	}

	r.hoisted[decl] = true
	r.hoists = append(r.hoists, decl)
}
