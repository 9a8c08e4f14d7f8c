package codegen

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vapor.dev/pkg/vapor/internal/ir"
)

func text1(el int, value *ir.Expression) *ir.SetText {
	return &ir.SetText{Element: el, Values: []*ir.Expression{value}}
}

func effectOf(ops ...ir.Operation) *ir.Effect {
	return &ir.Effect{Operations: ops}
}

// genRoutine renders a block body the way a nested routine would.
func genRoutine(t *testing.T, block *ir.Block) string {
	t.Helper()

	ctx := newTestContext()

	var frags Fragments

	err := ctx.withRoutine(nil, func(*routine) error {
		var err error
		frags, err = genBlockContent(block, ctx)

		return err
	})
	require.NoError(t, err)

	return flat(frags)
}

func TestGenEffect_SingleStatement(t *testing.T) {
	tests := []struct {
		name   string
		effect *ir.Effect
		want   string
	}{
		{
			name:   "one dependency",
			effect: effectOf(text1(0, expr("msg"))),
			want:   "\nlet _msg\n_renderEffect(() => _msg !== _ctx.msg && _setText(n0, (_msg = _ctx.msg)))\nreturn null",
		},
		{
			name:   "two dependencies are parenthesized",
			effect: effectOf(&ir.SetText{Element: 0, Values: []*ir.Expression{expr("foo"), expr("bar")}}),
			want: "\nlet _foo, _bar" +
				"\n_renderEffect(() => (_foo !== _ctx.foo || _bar !== _ctx.bar) && _setText(n0, (_foo = _ctx.foo), (_bar = _ctx.bar)))" +
				"\nreturn null",
		},
		{
			name:   "member path dependency",
			effect: effectOf(text1(0, expr("user.name"))),
			want:   "\nlet _user_name\n_renderEffect(() => _user_name !== _ctx.user.name && _setText(n0, (_user_name = _ctx.user.name)))\nreturn null",
		},
		{
			name:   "constants only",
			effect: effectOf(text1(0, str("hi"))),
			want:   "\n_renderEffect(() => _setText(n0, \"hi\"))\nreturn null",
		},
		{
			name: "call is untrackable",
			effect: effectOf(text1(0, ir.NewExpression(&ir.Call{
				Callee: &ir.Ident{Name: "format"},
				Args:   []ir.Expr{&ir.Ident{Name: "count"}},
			}))),
			want: "\n_renderEffect(() => _setText(n0, _ctx.format(_ctx.count)))\nreturn null",
		},
		{
			name:   "raw is untrackable",
			effect: effectOf(text1(0, raw("a + b"))),
			want:   "\n_renderEffect(() => _setText(n0, a + b))\nreturn null",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := genRoutine(t, &ir.Block{Effects: []*ir.Effect{tt.effect}})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenEffect_MultiStatement(t *testing.T) {
	block := &ir.Block{Effects: []*ir.Effect{effectOf(
		text1(0, expr("msg")),
		setProp(1, "div", "id", expr("foo")),
	)}}

	want := "\nlet _msg, _foo" +
		"\n_renderEffect(() => {" +
		"\nif (_msg !== _ctx.msg || _foo !== _ctx.foo) {" +
		"\n_setText(n0, (_msg = _ctx.msg))" +
		"\n_setDOMProp(n1, \"id\", (_foo = _ctx.foo))" +
		"\n}" +
		"\n})" +
		"\nreturn null"

	assert.Equal(t, want, genRoutine(t, block))
}

func TestGenEffect_MultiStatementWithoutGuard(t *testing.T) {
	block := &ir.Block{Effects: []*ir.Effect{effectOf(
		text1(0, str("a")),
		text1(1, str("b")),
	)}}

	assert.Equal(t,
		"\n_renderEffect(() => {\n_setText(n0, \"a\")\n_setText(n1, \"b\")\n})\nreturn null",
		genRoutine(t, block))
}

func TestGenEffect_FirstReadIsRewritten(t *testing.T) {
	block := &ir.Block{Effects: []*ir.Effect{effectOf(
		text1(0, expr("foo")),
		setProp(1, "div", "id", expr("foo")),
	)}}

	want := "\nlet _foo" +
		"\n_renderEffect(() => {" +
		"\nif (_foo !== _ctx.foo) {" +
		"\n_setText(n0, (_foo = _ctx.foo))" +
		"\n_setDOMProp(n1, \"id\", _ctx.foo)" +
		"\n}" +
		"\n})" +
		"\nreturn null"

	assert.Equal(t, want, genRoutine(t, block))
}

func TestGenEffect_UntrackableRevertsRewrites(t *testing.T) {
	block := &ir.Block{Effects: []*ir.Effect{effectOf(
		text1(0, expr("foo")),
		text1(1, raw("bar()")),
	)}}

	assert.Equal(t,
		"\n_renderEffect(() => {\n_setText(n0, _ctx.foo)\n_setText(n1, bar())\n})\nreturn null",
		genRoutine(t, block))
}

func TestGenEffect_NonTrackableOperation(t *testing.T) {
	block := &ir.Block{Effects: []*ir.Effect{effectOf(
		text1(0, expr("foo")),
		&ir.SetEvent{Element: 0, Key: str("click"), Value: expr("h"), Effect: true},
	)}}

	got := genRoutine(t, block)
	assert.NotContains(t, got, "let ")
	assert.NotContains(t, got, "!==")
}

func TestGenEffect_ShadowNamesAreUniquePerRoutine(t *testing.T) {
	block := &ir.Block{Effects: []*ir.Effect{
		effectOf(text1(0, expr("foo"))),
		effectOf(text1(1, expr("foo"))),
	}}

	want := "\nlet _foo, _foo1" +
		"\n_renderEffect(() => _foo !== _ctx.foo && _setText(n0, (_foo = _ctx.foo)))" +
		"\n_renderEffect(() => _foo1 !== _ctx.foo && _setText(n1, (_foo1 = _ctx.foo)))" +
		"\nreturn null"

	assert.Equal(t, want, genRoutine(t, block))
}

func TestGenEffect_NestedRoutinesDeclareTheirOwnShadows(t *testing.T) {
	block := &ir.Block{
		Operations: ir.OperationList{&ir.If{
			ID:        1,
			Condition: expr("ok"),
			Positive:  &ir.Block{Effects: []*ir.Effect{effectOf(text1(2, expr("foo")))}},
		}},
		Effects: []*ir.Effect{effectOf(text1(0, expr("foo")))},
	}

	want := "\nlet _foo" +
		"\nconst n1 = _createIf(() => (_ctx.ok), () => {" +
		"\nlet _foo" +
		"\n_renderEffect(() => _foo !== _ctx.foo && _setText(n2, (_foo = _ctx.foo)))" +
		"\nreturn null" +
		"\n})" +
		"\n_renderEffect(() => _foo !== _ctx.foo && _setText(n0, (_foo = _ctx.foo)))" +
		"\nreturn null"

	assert.Equal(t, want, genRoutine(t, block))
}

func TestGenEffect_ShadowsKeepScaffoldingNamesVisible(t *testing.T) {
	block := &ir.Block{
		Operations: ir.OperationList{&ir.If{
			ID:        1,
			Condition: expr("ok"),
			Positive:  &ir.Block{Effects: []*ir.Effect{effectOf(text1(2, expr("ctx")))}},
		}},
		Effects: []*ir.Effect{effectOf(text1(0, expr("setText")))},
	}

	want := "\nlet _setText1" +
		"\nconst n1 = _createIf(() => (_ctx.ok), () => {" +
		"\nlet _ctx1" +
		"\n_renderEffect(() => _ctx1 !== _ctx.ctx && _setText(n2, (_ctx1 = _ctx.ctx)))" +
		"\nreturn null" +
		"\n})" +
		"\n_renderEffect(() => _setText1 !== _ctx.setText && _setText(n0, (_setText1 = _ctx.setText)))" +
		"\nreturn null"

	assert.Equal(t, want, genRoutine(t, block))
}

func TestReserveShadow(t *testing.T) {
	outer := newRoutine(nil, []string{"_item"})
	inner := newRoutine(outer, nil)

	tests := []struct {
		key  string
		want string
	}{
		{"foo", "_foo"},
		{"foo", "_foo1"},
		{"item", "_item1"},
		{"ctx", "_ctx1"},
		{"renderEffect", "_renderEffect1"},
		{"component_Foo", "_component_Foo1"},
		{"user.name", "_user_name"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, inner.reserveShadow(tt.key), tt.key)
	}
}

func TestGenEffects_None(t *testing.T) {
	ctx := newTestContext()

	frags, err := genEffects(nil, ctx)
	require.NoError(t, err)
	assert.Empty(t, frags)

	frags, err = genEffects([]*ir.Effect{{}}, ctx)
	require.NoError(t, err)
	assert.Empty(t, frags)
	assert.NotContains(t, ctx.Helpers(), "renderEffect")
}

func TestGenEffect_PropagatesUnsupported(t *testing.T) {
	_, err := genEffect(effectOf(fakeOp{}), newTestContext())
	assert.ErrorIs(t, err, ErrUnsupportedOperation)
}

func TestGenEffect_Structure(t *testing.T) {
	ctx := newTestContext()

	frags, err := genEffect(effectOf(text1(0, expr("a")), text1(1, expr("b"))), ctx)
	require.NoError(t, err)

	want := Fragments{
		Newline, Text("_renderEffect(() => "), Text("{"), IndentStart,
		Newline, Text("if ("),
		Text("_a !== "), &Ident{Text: "_ctx.a"}, Text(" || "), Text("_b !== "), &Ident{Text: "_ctx.b"},
		Text(") {"), IndentStart,
		Newline, Text("_setText"), Text("("), Text("n0"), Text(", "), &Ident{Text: "_ctx.a", Key: "a", Shadow: "_a"}, Text(")"),
		Newline, Text("_setText"), Text("("), Text("n1"), Text(", "), &Ident{Text: "_ctx.b", Key: "b", Shadow: "_b"}, Text(")"),
		IndentEnd, Newline, Text("}"),
		IndentEnd, Newline, Text("})"),
	}

	if diff := cmp.Diff(want, frags); diff != "" {
		t.Errorf("genEffect() mismatch (-want +got):\n%s", diff)
	}
}

func TestTracker(t *testing.T) {
	t.Run("nil tracker is a no-op", func(t *testing.T) {
		var tr *tracker

		assert.NotPanics(t, func() {
			tr.track(Fragments{&Ident{Text: "_ctx.a", Key: "a"}})
			tr.invalidate()
		})
	})

	t.Run("deps and shadows stay in step", func(t *testing.T) {
		tr := newTracker()
		tr.track(Fragments{&Ident{Text: "_ctx.a", Key: "a"}})
		tr.track(Fragments{Text("1")})
		tr.track(Fragments{&Ident{Text: "_ctx.b", Key: "b"}})
		tr.track(Fragments{&Ident{Text: "_ctx.a", Key: "a"}})

		r := newRoutine(nil, nil)
		tr.commit(r)

		assert.Equal(t, []string{"a", "b"}, tr.deps())
		assert.Equal(t, []string{"_a", "_b"}, r.shadows)
		assert.Len(t, tr.guards, len(tr.deps()))
	})

	t.Run("untrackable effect has no deps", func(t *testing.T) {
		read := &Ident{Text: "_ctx.a", Key: "a"}

		tr := newTracker()
		tr.track(Fragments{read})
		tr.track(Fragments{&Ident{Text: "item"}})

		r := newRoutine(nil, nil)
		tr.commit(r)

		assert.Empty(t, tr.deps())
		assert.Empty(t, r.shadows)
		assert.Empty(t, read.Shadow)
		assert.Empty(t, tr.genGuard())
	})
}
