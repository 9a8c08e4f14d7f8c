// Package ir holds the intermediate representation consumed by the code
// generator: a program of render blocks, each made of dynamic node
// lookups, one-shot operations and reactive effects.
package ir

// Program is one compiled component template.
type Program struct {
	Component string   `yaml:"component"`
	Templates []string `yaml:"templates"`
	Block     *Block   `yaml:"block"`
	// Source is the document the program was decoded from, if any.
	Source string `yaml:"-"`
}

// DynamicNode is a template node the block needs a handle to. Either
// Template is set (a fresh clone of template N) or Parent/Index locate
// the node as a child of an earlier dynamic node.
type DynamicNode struct {
	ID       int  `yaml:"id"`
	Template *int `yaml:"template"`
	Parent   *int `yaml:"parent"`
	Index    int  `yaml:"index"`
}

// Block is one render routine: the root render function, an if branch,
// a for item or a slot body.
type Block struct {
	Nodes      []DynamicNode `yaml:"nodes"`
	Operations OperationList `yaml:"operations"`
	Effects    []*Effect     `yaml:"effects"`
	Returns    []int         `yaml:"returns"`
}

// Effect is a group of operations re-run together under one reactive
// trigger.
type Effect struct {
	Operations OperationList `yaml:"operations"`
}

// OperationList is an ordered list of operations decoded by kind.
type OperationList []Operation
