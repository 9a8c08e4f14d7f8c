package ir

// OperationKind identifies an operation variant.
type OperationKind string

// Operation variants.
const (
	KindSetProp          OperationKind = "set_prop"
	KindSetDynamicProps  OperationKind = "set_dynamic_props"
	KindSetText          OperationKind = "set_text"
	KindCreateTextNode   OperationKind = "create_text_node"
	KindInsertNode       OperationKind = "insert_node"
	KindPrependNode      OperationKind = "prepend_node"
	KindIf               OperationKind = "if"
	KindFor              OperationKind = "for"
	KindCreateComponent  OperationKind = "create_component"
	KindDeclareOldRef    OperationKind = "declare_old_ref"
	KindSlotOutlet       OperationKind = "slot_outlet"
	KindSetInheritAttrs  OperationKind = "set_inherit_attrs"
	KindSetEvent         OperationKind = "set_event"
	KindSetDynamicEvents OperationKind = "set_dynamic_events"
	KindSetHTML          OperationKind = "set_html"
	KindSetTemplateRef   OperationKind = "set_template_ref"
	KindSetModelValue    OperationKind = "set_model_value"
)

// Operation is one instruction a render routine performs.
type Operation interface {
	Kind() OperationKind
}

// Modifier forces a binding to attribute (^) or DOM property (.) semantics.
type Modifier string

// Binding modifiers.
const (
	ModifierNone Modifier = ""
	ModifierProp Modifier = "."
	ModifierAttr Modifier = "^"
)

// Prop is one key/value binding.
type Prop struct {
	Key             *Expression   `yaml:"key"`
	Values          []*Expression `yaml:"values"`
	Modifier        Modifier      `yaml:"modifier"`
	RuntimeCamelize bool          `yaml:"camelize"`
	Handler         bool          `yaml:"handler"`
}

// PropsSourceKind tells how a SetDynamicProps source is written.
type PropsSourceKind string

// Dynamic props source kinds.
const (
	// PropsStatic is a list of props with static or dynamic keys.
	PropsStatic PropsSourceKind = "static"
	// PropsAttribute is a single prop with a dynamic key.
	PropsAttribute PropsSourceKind = "attribute"
	// PropsExpression is an object-valued expression (v-bind="obj").
	PropsExpression PropsSourceKind = "expression"
)

// PropsSource is one argument merged by setDynamicProps.
type PropsSource struct {
	Kind  PropsSourceKind `yaml:"kind"`
	Props []Prop          `yaml:"props"`
	Value *Expression     `yaml:"value"`
}

// SetProp writes one static-key prop.
type SetProp struct {
	Element int    `yaml:"element"`
	Tag     string `yaml:"tag"`
	Prop    Prop   `yaml:"prop"`
	Root    bool   `yaml:"root"`
}

// SetDynamicProps writes merged prop sources with runtime diffing.
type SetDynamicProps struct {
	Element int           `yaml:"element"`
	Props   []PropsSource `yaml:"props"`
	Root    bool          `yaml:"root"`
}

// SetText writes the concatenated display string of values.
type SetText struct {
	Element int           `yaml:"element"`
	Values  []*Expression `yaml:"values"`
}

// CreateTextNode creates a text node.
type CreateTextNode struct {
	ID     int           `yaml:"id"`
	Values []*Expression `yaml:"values"`
	Effect bool          `yaml:"effect"`
}

// InsertNode inserts elements into parent before anchor.
type InsertNode struct {
	Elements []int `yaml:"elements"`
	Parent   int   `yaml:"parent"`
	Anchor   *int  `yaml:"anchor"`
}

// PrependNode prepends elements into parent.
type PrependNode struct {
	Elements []int `yaml:"elements"`
	Parent   int   `yaml:"parent"`
}

// If is a conditional branch. Negative is either a block or a nested If.
type If struct {
	ID         int         `yaml:"id"`
	Condition  *Expression `yaml:"condition"`
	Positive   *Block      `yaml:"positive"`
	Negative   *Block      `yaml:"negative"`
	NegativeIf *If         `yaml:"negative_if"`
	Once       bool        `yaml:"once"`
}

// For is a list iteration.
type For struct {
	ID      int         `yaml:"id"`
	Source  *Expression `yaml:"source"`
	Value   string      `yaml:"value"`
	Key     string      `yaml:"key"`
	Index   string      `yaml:"index"`
	KeyProp *Expression `yaml:"key_prop"`
	Render  *Block      `yaml:"render"`
	Once    bool        `yaml:"once"`
}

// Slot is one static slot passed to a component.
type Slot struct {
	Name  string   `yaml:"name"`
	Block *Block   `yaml:"block"`
	Props []string `yaml:"props"`
}

// CreateComponent instantiates a component.
type CreateComponent struct {
	ID    int           `yaml:"id"`
	Tag   string        `yaml:"tag"`
	Props []PropsSource `yaml:"props"`
	Slots []Slot        `yaml:"slots"`
	Asset bool          `yaml:"asset"`
	Root  bool          `yaml:"root"`
	Once  bool          `yaml:"once"`
}

// DeclareOldRef declares the variable holding a previous template ref.
type DeclareOldRef struct {
	ID int `yaml:"id"`
}

// SlotOutlet renders a slot passed by the parent.
type SlotOutlet struct {
	ID       int           `yaml:"id"`
	Name     *Expression   `yaml:"name"`
	Props    []PropsSource `yaml:"props"`
	Fallback *Block        `yaml:"fallback"`
}

// SetInheritAttrs controls fall-through attributes for the component root.
// AllDynamic wins over DynamicProps; when neither is set and StaticProps is
// false there is nothing to inherit.
type SetInheritAttrs struct {
	StaticProps  bool     `yaml:"static_props"`
	AllDynamic   bool     `yaml:"all_dynamic"`
	DynamicProps []string `yaml:"dynamic_props"`
}

// EventModifiers are the modifiers of an event binding.
type EventModifiers struct {
	Keys    []string `yaml:"keys"`
	NonKeys []string `yaml:"non_keys"`
	Options []string `yaml:"options"`
}

// KeyOverride renames an event at runtime: (key === From ? To : key).
type KeyOverride struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// SetEvent binds an event handler.
type SetEvent struct {
	Element     int            `yaml:"element"`
	Key         *Expression    `yaml:"key"`
	KeyOverride *KeyOverride   `yaml:"key_override"`
	Value       *Expression    `yaml:"value"`
	Modifiers   EventModifiers `yaml:"modifiers"`
	Delegate    bool           `yaml:"delegate"`
	Effect      bool           `yaml:"effect"`
}

// SetDynamicEvents binds an object of handlers.
type SetDynamicEvents struct {
	Element int         `yaml:"element"`
	Event   *Expression `yaml:"event"`
}

// SetHTML writes innerHTML.
type SetHTML struct {
	Element int         `yaml:"element"`
	Value   *Expression `yaml:"value"`
}

// SetTemplateRef assigns a template ref.
type SetTemplateRef struct {
	Element int         `yaml:"element"`
	Value   *Expression `yaml:"value"`
	RefFor  bool        `yaml:"ref_for"`
	Effect  bool        `yaml:"effect"`
}

// SetModelValue wires a two-way binding update handler.
type SetModelValue struct {
	Element     int         `yaml:"element"`
	Key         *Expression `yaml:"key"`
	Value       *Expression `yaml:"value"`
	IsComponent bool        `yaml:"is_component"`
}

func (*SetProp) Kind() OperationKind          { return KindSetProp }
func (*SetDynamicProps) Kind() OperationKind  { return KindSetDynamicProps }
func (*SetText) Kind() OperationKind          { return KindSetText }
func (*CreateTextNode) Kind() OperationKind   { return KindCreateTextNode }
func (*InsertNode) Kind() OperationKind       { return KindInsertNode }
func (*PrependNode) Kind() OperationKind      { return KindPrependNode }
func (*If) Kind() OperationKind               { return KindIf }
func (*For) Kind() OperationKind              { return KindFor }
func (*CreateComponent) Kind() OperationKind  { return KindCreateComponent }
func (*DeclareOldRef) Kind() OperationKind    { return KindDeclareOldRef }
func (*SlotOutlet) Kind() OperationKind       { return KindSlotOutlet }
func (*SetInheritAttrs) Kind() OperationKind  { return KindSetInheritAttrs }
func (*SetEvent) Kind() OperationKind         { return KindSetEvent }
func (*SetDynamicEvents) Kind() OperationKind { return KindSetDynamicEvents }
func (*SetHTML) Kind() OperationKind          { return KindSetHTML }
func (*SetTemplateRef) Kind() OperationKind   { return KindSetTemplateRef }
func (*SetModelValue) Kind() OperationKind    { return KindSetModelValue }
