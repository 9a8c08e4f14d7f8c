package codegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vapor.dev/pkg/vapor/internal/classify"
	"vapor.dev/pkg/vapor/internal/ir"
)

func newTestContext() *Context {
	return NewContext(Options{Table: classify.NewTable(&classify.Memo{})})
}

// flat joins fragments, turning every Newline into a line break and
// ignoring indentation.
func flat(frags Fragments) string {
	var b strings.Builder

	for _, frag := range frags {
		switch f := frag.(type) {
		case Text:
			b.WriteString(string(f))
		case *Ident:
			b.WriteString(f.Render())
		case Marker:
			if f == Newline {
				b.WriteByte('\n')
			}
		}
	}

	return b.String()
}

func expr(code string) *ir.Expression {
	return ir.NewExpression(ir.ParseShorthand(code, nil))
}

func str(s string) *ir.Expression {
	return ir.NewExpression(&ir.String{Value: s})
}

func raw(code string) *ir.Expression {
	return ir.NewExpression(&ir.Raw{Code: code})
}

func intPtr(v int) *int {
	return &v
}

func setProp(el int, tag, key string, value *ir.Expression) *ir.SetProp {
	return &ir.SetProp{Element: el, Tag: tag, Prop: ir.Prop{Key: str(key), Values: []*ir.Expression{value}}}
}

func TestGenOperations_StaticProps(t *testing.T) {
	ops := []ir.Operation{
		setProp(0, "div", "id", str("app")),
		&ir.SetProp{Element: 0, Tag: "div", Root: true, Prop: ir.Prop{Key: str("class"), Values: []*ir.Expression{str("a")}}},
		setProp(1, "input", "value", str("x")),
		setProp(2, "img", "width", str("100")),
		&ir.SetProp{Element: 0, Tag: "div", Prop: ir.Prop{Key: str("foo"), Values: []*ir.Expression{expr("1")}, Modifier: ir.ModifierProp}},
		setProp(3, "my-el", "bar", expr("1")),
	}

	frags, err := genOperations(ops, newTestContext(), nil)
	require.NoError(t, err)

	assert.Equal(t, len(ops), frags.CountNewlines())

	lines := strings.Split(strings.TrimPrefix(flat(frags), "\n"), "\n")
	assert.Equal(t, []string{
		`_setDOMProp(n0, "id", "app")`,
		`_setClass(n0, "a", true)`,
		`_setValue(n1, "x")`,
		`_setAttr(n2, "width", "100")`,
		`_setDOMProp(n0, "foo", 1)`,
		`_setDynamicProp(n3, "bar", 1)`,
	}, lines)

	// every call starts right after its newline marker
	for i, frag := range frags {
		if frag == Newline {
			require.Less(t, i+1, len(frags))
			assert.IsType(t, Text(""), frags[i+1])
		}
	}
}

func TestGenOperation_Unsupported(t *testing.T) {
	tests := []struct {
		name string
		op   ir.Operation
	}{
		{"unknown kind", fakeOp{}},
		{"nil operation", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frags, err := genOperation(tt.op, newTestContext(), nil)
			require.Error(t, err)
			assert.Nil(t, frags)
			assert.ErrorIs(t, err, ErrUnsupportedOperation)

			var unsupported *UnsupportedOperationError
			require.ErrorAs(t, err, &unsupported)
			assert.Equal(t, tt.op, unsupported.Op)
		})
	}
}

type fakeOp struct{}

func (fakeOp) Kind() ir.OperationKind { return "fake" }

func TestGenOperation(t *testing.T) {
	tests := []struct {
		name string
		op   ir.Operation
		want string
	}{
		{
			name: "dynamic props",
			op: &ir.SetDynamicProps{Element: 0, Root: true, Props: []ir.PropsSource{
				{Kind: ir.PropsStatic, Props: []ir.Prop{
					{Key: str("id"), Values: []*ir.Expression{expr("foo")}},
					{Key: expr("name"), Values: []*ir.Expression{expr("bar")}, Modifier: ir.ModifierProp},
					{Key: str("click"), Values: []*ir.Expression{expr("fn")}, Handler: true},
					{Key: str("data-id"), Values: []*ir.Expression{expr("1")}},
				}},
				{Kind: ir.PropsAttribute, Props: []ir.Prop{
					{Key: expr("k"), Values: []*ir.Expression{expr("v")}, RuntimeCamelize: true},
				}},
				{Kind: ir.PropsExpression, Value: expr("obj")},
			}},
			want: `_setDynamicProps(n0, [{ id: _ctx.foo, ["." + _ctx.name]: _ctx.bar, onClick: _ctx.fn, "data-id": 1 }, { [_camelize(_ctx.k)]: _ctx.v }, _ctx.obj], true)`,
		},
		{
			name: "set text",
			op:   &ir.SetText{Element: 1, Values: []*ir.Expression{expr("msg"), str(" ")}},
			want: `_setText(n1, _ctx.msg, " ")`,
		},
		{
			name: "create text node",
			op:   &ir.CreateTextNode{ID: 3, Values: []*ir.Expression{expr("a"), str("b")}},
			want: `const n3 = _createTextNode([_ctx.a, "b"])`,
		},
		{
			name: "create effect text node",
			op:   &ir.CreateTextNode{ID: 3, Values: []*ir.Expression{expr("a")}, Effect: true},
			want: `const n3 = _createTextNode(() => [_ctx.a])`,
		},
		{
			name: "insert one",
			op:   &ir.InsertNode{Elements: []int{1}, Parent: 0},
			want: `_insert(n1, n0)`,
		},
		{
			name: "insert many with anchor",
			op:   &ir.InsertNode{Elements: []int{1, 2}, Parent: 0, Anchor: intPtr(3)},
			want: `_insert([n1, n2], n0, n3)`,
		},
		{
			name: "prepend",
			op:   &ir.PrependNode{Elements: []int{1, 2}, Parent: 0},
			want: `_prepend(n0, n1, n2)`,
		},
		{
			name: "declare old ref",
			op:   &ir.DeclareOldRef{ID: 0},
			want: `let r0`,
		},
		{
			name: "template ref in effect",
			op:   &ir.SetTemplateRef{Element: 0, Value: str("foo"), Effect: true},
			want: `r0 = _setTemplateRef(n0, "foo", r0)`,
		},
		{
			name: "template ref in v-for",
			op:   &ir.SetTemplateRef{Element: 0, Value: str("foo"), RefFor: true},
			want: `_setTemplateRef(n0, "foo", void 0, true)`,
		},
		{
			name: "template ref",
			op:   &ir.SetTemplateRef{Element: 0, Value: str("foo")},
			want: `_setTemplateRef(n0, "foo")`,
		},
		{
			name: "inherit all dynamic",
			op:   &ir.SetInheritAttrs{AllDynamic: true, DynamicProps: []string{"id"}},
			want: `_setInheritAttrs(true)`,
		},
		{
			name: "inherit some dynamic",
			op:   &ir.SetInheritAttrs{DynamicProps: []string{"id", "title"}},
			want: `_setInheritAttrs(["id", "title"])`,
		},
		{
			name: "inherit static",
			op:   &ir.SetInheritAttrs{StaticProps: true},
			want: `_setInheritAttrs(false)`,
		},
		{
			name: "event",
			op:   &ir.SetEvent{Element: 0, Key: str("click"), Value: expr("handler")},
			want: `_on(n0, "click", () => _ctx.handler)`,
		},
		{
			name: "event with modifiers",
			op: &ir.SetEvent{
				Element: 0, Key: str("keyup"), Value: expr("onKey"), Delegate: true, Effect: true,
				Modifiers: ir.EventModifiers{NonKeys: []string{"stop"}, Keys: []string{"enter"}, Options: []string{"capture"}},
			},
			want: `_delegate(n0, "keyup", () => _withKeys(_withModifiers(_ctx.onKey, ["stop"]), ["enter"]), { effect: true, capture: true })`,
		},
		{
			name: "inline statement handler",
			op:   &ir.SetEvent{Element: 0, Key: str("click"), Value: raw("count++")},
			want: `_on(n0, "click", () => $event => (count++))`,
		},
		{
			name: "multi statement handler",
			op:   &ir.SetEvent{Element: 0, Key: str("click"), Value: raw("a++; b++")},
			want: `_on(n0, "click", () => $event => {a++; b++})`,
		},
		{
			name: "function handler",
			op:   &ir.SetEvent{Element: 0, Key: str("click"), Value: raw("() => go()")},
			want: `_on(n0, "click", () => () => go())`,
		},
		{
			name: "empty handler",
			op:   &ir.SetEvent{Element: 0, Key: str("click")},
			want: `_on(n0, "click", () => () => {})`,
		},
		{
			name: "event key override",
			op: &ir.SetEvent{
				Element: 0, Key: expr("evt"), Value: expr("h"),
				KeyOverride: &ir.KeyOverride{From: "click", To: "dblclick"},
			},
			want: `_on(n0, ((_ctx.evt) === "click" ? "dblclick" : (_ctx.evt)), () => _ctx.h)`,
		},
		{
			name: "dynamic events",
			op:   &ir.SetDynamicEvents{Element: 0, Event: expr("handlers")},
			want: `_setDynamicEvents(n0, _ctx.handlers)`,
		},
		{
			name: "html",
			op:   &ir.SetHTML{Element: 0, Value: expr("html")},
			want: `_setHtml(n0, _ctx.html)`,
		},
		{
			name: "model value",
			op:   &ir.SetModelValue{Element: 0, Key: str("model-value"), Value: expr("foo")},
			want: `_delegate(n0, "update:modelValue", () => $event => (_ctx.foo = $event))`,
		},
		{
			name: "dynamic model value",
			op:   &ir.SetModelValue{Element: 0, Key: expr("arg"), Value: expr("foo.bar")},
			want: "_delegate(n0, `update:${_ctx.arg}`, () => $event => (_ctx.foo.bar = $event))",
		},
		{
			name: "static slot outlet",
			op:   &ir.SlotOutlet{ID: 7, Name: str("header"), Props: []ir.PropsSource{{Kind: ir.PropsExpression, Value: expr("obj")}}},
			want: `const n7 = _createSlot("header", [() => (_ctx.obj)])`,
		},
		{
			name: "dynamic slot outlet",
			op:   &ir.SlotOutlet{ID: 7, Name: expr("slotName")},
			want: `const n7 = _createSlot(() => (_ctx.slotName))`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frags, err := genOperation(tt.op, newTestContext(), nil)
			require.NoError(t, err)
			require.NotEmpty(t, frags)
			assert.Equal(t, Newline, frags[0])
			assert.Equal(t, tt.want, strings.TrimPrefix(flat(frags), "\n"))
		})
	}
}

func TestGenSetInheritAttrs_Nothing(t *testing.T) {
	frags, err := genOperation(&ir.SetInheritAttrs{}, newTestContext(), nil)
	require.NoError(t, err)
	assert.Empty(t, frags)
}

func TestGenSetEvent_Delegates(t *testing.T) {
	ctx := newTestContext()

	for _, name := range []string{"input", "click", "input"} {
		_, err := genOperation(&ir.SetEvent{Element: 0, Key: str(name), Value: expr("h"), Delegate: true}, ctx, nil)
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"click", "input"}, ctx.Delegates())
	assert.Contains(t, ctx.Helpers(), "delegate")
}

func TestGenIf(t *testing.T) {
	op := &ir.If{
		ID:        2,
		Condition: expr("ok"),
		Positive:  &ir.Block{Nodes: []ir.DynamicNode{{ID: 3, Template: intPtr(1)}}, Returns: []int{3}},
	}

	frags, err := genOperation(op, newTestContext(), nil)
	require.NoError(t, err)
	assert.Equal(t, "\nconst n2 = _createIf(() => (_ctx.ok), () => {\nconst n3 = t1()\nreturn n3\n})", flat(frags))

	chained := &ir.If{
		ID:         2,
		Condition:  expr("a"),
		Positive:   &ir.Block{},
		NegativeIf: &ir.If{ID: 4, Condition: expr("b"), Positive: &ir.Block{}, Negative: &ir.Block{}},
		Once:       true,
	}

	frags, err = genOperation(chained, newTestContext(), nil)
	require.NoError(t, err)
	assert.Equal(t,
		"\nconst n2 = _createIf(() => (_ctx.a), () => {\nreturn null\n}, () => _createIf(() => (_ctx.b), () => {\nreturn null\n}, () => {\nreturn null\n}), true)",
		flat(frags))
}

func TestGenIf_OnceWithoutNegative(t *testing.T) {
	op := &ir.If{ID: 1, Condition: expr("ok"), Positive: &ir.Block{}, Once: true}

	frags, err := genOperation(op, newTestContext(), nil)
	require.NoError(t, err)
	assert.Equal(t, "\nconst n1 = _createIf(() => (_ctx.ok), () => {\nreturn null\n}, null, true)", flat(frags))
}

func TestGenFor(t *testing.T) {
	op := &ir.For{
		ID:      4,
		Source:  expr("list"),
		Value:   "item",
		Index:   "i",
		KeyProp: expr("item.id"),
		Render: &ir.Block{
			Nodes:   []ir.DynamicNode{{ID: 5, Template: intPtr(0)}},
			Effects: []*ir.Effect{{Operations: ir.OperationList{&ir.SetText{Element: 5, Values: []*ir.Expression{expr("item.name")}}}}},
			Returns: []int{5},
		},
	}

	frags, err := genOperation(op, newTestContext(), nil)
	require.NoError(t, err)
	assert.Equal(t,
		"\nconst n4 = _createFor(() => (_ctx.list), (item, __, i) => {\nconst n5 = t0()\n_renderEffect(() => _setText(n5, item.name))\nreturn n5\n}, (item, __, i) => (item.id))",
		flat(frags))
}

func TestForParams(t *testing.T) {
	assert.Equal(t, []string{"item"}, forParams("item", "", ""))
	assert.Equal(t, []string{"_", "key"}, forParams("", "key", ""))
	assert.Empty(t, forParams("", "", ""))
}

func TestGenCreateComponent(t *testing.T) {
	block := &ir.Block{
		Operations: ir.OperationList{&ir.CreateComponent{
			ID:    6,
			Tag:   "my-comp",
			Asset: true,
			Root:  true,
			Props: []ir.PropsSource{{Kind: ir.PropsStatic, Props: []ir.Prop{{Key: str("title"), Values: []*ir.Expression{expr("msg")}}}}},
			Slots: []ir.Slot{{Name: "default", Block: &ir.Block{}}},
		}},
		Returns: []int{6},
	}

	ctx := newTestContext()

	var frags Fragments

	err := ctx.withRoutine(nil, func(*routine) error {
		var err error
		frags, err = genBlockContent(block, ctx)

		return err
	})
	require.NoError(t, err)

	assert.Equal(t,
		"\nconst _component_my_comp = _resolveComponent(\"my-comp\")"+
			"\nconst n6 = _createComponent(_component_my_comp, { title: () => (_ctx.msg) }, {\ndefault: () => {\nreturn null\n}\n}, true)"+
			"\nreturn n6",
		flat(frags))
}

func TestGenCreateComponent_SetupBindingAndSlotProps(t *testing.T) {
	op := &ir.CreateComponent{
		ID:  1,
		Tag: "Comp",
		Props: []ir.PropsSource{
			{Kind: ir.PropsStatic, Props: []ir.Prop{{Key: str("a"), Values: []*ir.Expression{str("x")}}}},
			{Kind: ir.PropsExpression, Value: expr("rest")},
		},
		Slots: []ir.Slot{{
			Name:  "item",
			Props: []string{"row"},
			Block: &ir.Block{
				Nodes:   []ir.DynamicNode{{ID: 2, Template: intPtr(0)}},
				Effects: []*ir.Effect{{Operations: ir.OperationList{&ir.SetText{Element: 2, Values: []*ir.Expression{expr("row.label")}}}}},
				Returns: []int{2},
			},
		}},
		Once: true,
	}

	frags, err := genOperation(op, newTestContext(), nil)
	require.NoError(t, err)
	assert.Equal(t,
		"\nconst n1 = _createComponent(_ctx.Comp, [{ a: () => (\"x\") }, () => (_ctx.rest)], {"+
			"\nitem: ({ row }) => {\nconst n2 = t0()\n_renderEffect(() => _setText(n2, row.label))\nreturn n2\n}"+
			"\n}, null, true)",
		flat(frags))
}

func TestAssetID(t *testing.T) {
	assert.Equal(t, "_component_my_comp", assetID("my-comp"))
	assert.Equal(t, "_component_Foo", assetID("Foo"))
	assert.Equal(t, "_component_a46b", assetID("a.b"))
}
