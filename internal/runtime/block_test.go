package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vapor.dev/pkg/vapor/internal/dom"
)

func TestNormalizeBlock(t *testing.T) {
	doc := dom.NewDocument()
	a, b, c := doc.CreateElement("a"), doc.CreateTextNode("b"), doc.CreateElement("i")
	anchor := doc.CreateComment("for")

	block := BlockList{
		NodeBlock{a},
		&Fragment{Nodes: Nodes(b), Anchor: anchor},
		&Instance{Block: NodeBlock{c}},
	}

	assert.Equal(t, []dom.Node{a, b, anchor, c}, NormalizeBlock(block))
	assert.Equal(t, NormalizeBlock(block), NormalizeBlock(block))
	assert.Empty(t, NormalizeBlock(&Instance{}))
}

func TestGetFirstNode(t *testing.T) {
	doc := dom.NewDocument()
	a, b := doc.CreateElement("div"), doc.CreateElement("span")

	tests := []struct {
		name  string
		block Block
		want  dom.Node
	}{
		{"node", NodeBlock{a}, a},
		{"fragment with one node", &Fragment{Nodes: Nodes(a)}, a},
		{"fragment with two nodes", &Fragment{Nodes: Nodes(a, b)}, nil},
		{"nested single lists", BlockList{BlockList{NodeBlock{b}}}, b},
		{"component", &Instance{Block: NodeBlock{a}}, nil},
		{"nil", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetFirstNode(tt.block))
		})
	}
}

func TestIsValidBlock(t *testing.T) {
	doc := dom.NewDocument()
	c1, c2 := doc.CreateComment("if"), doc.CreateComment("for")

	assert.False(t, IsValidBlock(Nodes(c1, c2)))
	assert.False(t, IsValidBlock(BlockList{}))
	assert.True(t, IsValidBlock(Nodes(c1, doc.CreateTextNode(""))))
	assert.True(t, IsValidBlock(&Fragment{Nodes: Nodes(doc.CreateElement("p")), Anchor: c1}))
}

func TestFindFirstRootElement(t *testing.T) {
	doc := dom.NewDocument()
	el := doc.CreateElement("div")

	assert.Same(t, el, FindFirstRootElement(&Instance{Block: NodeBlock{el}}))
	assert.Nil(t, FindFirstRootElement(&Instance{Block: NodeBlock{doc.CreateTextNode("x")}}))
	assert.Nil(t, FindFirstRootElement(&Instance{}))
}

func TestInsertPrependRemove(t *testing.T) {
	doc := dom.NewDocument()
	parent := doc.CreateElement("div")
	anchor := doc.CreateComment("")
	parent.Append(anchor)

	a, b, c := doc.CreateElement("a"), doc.CreateElement("b"), doc.CreateElement("i")

	Insert(Nodes(a, b), parent, anchor)
	Prepend(parent, NodeBlock{c})
	assert.Equal(t, "<div><i></i><a></a><b></b><!----></div>", parent.OuterHTML())

	Remove(&Fragment{Nodes: Nodes(a, b)})
	assert.Equal(t, "<div><i></i><!----></div>", parent.OuterHTML())
}

func TestCreateTextNode(t *testing.T) {
	doc := dom.NewDocument()

	assert.Equal(t, "a1", CreateTextNode(doc, "a", 1).TextContent())
	assert.Empty(t, CreateTextNode(doc).TextContent())

	scope := &EffectScope{}
	count := 1
	node := CreateDynamicTextNode(doc, scope, func() []any { return []any{"n=", count} })
	assert.Equal(t, "n=1", node.TextContent())

	count = 2
	scope.Run()
	assert.Equal(t, "n=2", node.TextContent())
}

func TestTemplateAndChild(t *testing.T) {
	doc := dom.NewDocument()

	t0, err := Template(doc, "<div><span></span>text</div>")
	require.NoError(t, err)

	n0, n1 := t0(), t0()
	assert.NotSame(t, n0, n1)

	span := Child(n0, 0)
	require.NotNil(t, span)
	SetText(span, "hi")

	assert.Equal(t, "<div><span>hi</span>text</div>", n0.(dom.Element).OuterHTML())
	assert.Equal(t, "<div><span></span>text</div>", n1.(dom.Element).OuterHTML())
	assert.Nil(t, Child(n0, 5))
}

func TestEffectScope(t *testing.T) {
	scope := &EffectScope{}
	runs := 0

	RenderEffect(scope, func() { runs++ })
	assert.Equal(t, 1, runs)
	assert.Equal(t, 1, scope.Len())

	scope.Run()
	assert.Equal(t, 2, runs)

	scope.Stop()
	scope.Run()
	scope.RenderEffect(func() { runs++ })
	assert.Equal(t, 2, runs)

	RenderEffect(nil, func() { runs++ })
	assert.Equal(t, 3, runs)
}

func TestFallbackComponent(t *testing.T) {
	doc := dom.NewDocument()
	scope := &EffectScope{}

	title := "first"
	inst := &Instance{
		Type:      &ComponentType{Name: "MyWidget", ScopeID: "data-v-type"},
		Attrs:     Data{"class": "from-parent", "style": "color: red"},
		ScopeIDs:  []string{"data-v-a", "data-v-b"},
		Scheduler: scope,
	}

	raw := &RawProps{
		Static: Data{
			"class": "own",
			"title": func() any { return title },
		},
		Dynamic: []func() Data{
			func() Data { return Data{"style": map[string]any{"margin": "0"}} },
		},
	}

	slots := []Slots{{
		"default": func() Block { return Nodes(doc.CreateTextNode("child")) },
	}}

	el := FallbackComponent(doc, "my-widget", raw, slots, inst, true)

	assert.Equal(t, 1, scope.Len())
	assert.True(t, inst.DynamicAttrs)
	assert.Equal(t,
		`<my-widget title="first" class="from-parent own" style="color: red; margin: 0;" data-v-a="" data-v-b="" data-v-type="">child</my-widget>`,
		el.OuterHTML())

	title = "second"
	scope.Run()
	v, _ := el.GetAttribute("title")
	assert.Equal(t, "second", v)
}

func TestFallbackComponent_NoProps(t *testing.T) {
	doc := dom.NewDocument()
	scope := &EffectScope{}
	inst := &Instance{Scheduler: scope}

	el := FallbackComponent(doc, "x-empty", nil, nil, inst, false)

	assert.Zero(t, scope.Len())
	assert.False(t, inst.DynamicAttrs)
	assert.Equal(t, "<x-empty></x-empty>", el.OuterHTML())
}
