package runtime

// ComponentType is the static description of a component.
type ComponentType struct {
	Name    string
	ScopeID string
}

// Instance is a mounted component.
type Instance struct {
	Type *ComponentType
	// Attrs are the fall-through attributes passed by the parent.
	Attrs Data
	Block Block
	// ScopeIDs are inherited style scope ids.
	ScopeIDs []string
	// DynamicAttrs is set once the root element applies Attrs itself.
	DynamicAttrs bool
	Scheduler    Scheduler
}

// MergeInheritAttr merges value with the fall-through attribute key.
func MergeInheritAttr(inst *Instance, key string, value any) any {
	return MergeProp(key, inst.Attrs[key], value)
}
