package runtime

import "vapor.dev/pkg/vapor/internal/dom"

// RawProps are the props a parent passes to a component. Static values
// may be func() any getters; Dynamic sources are getters for whole prop
// objects.
type RawProps struct {
	Static  Data
	Dynamic []func() Data
}

// Slots maps slot names to render functions.
type Slots map[string]func() Block

// walkProps visits every key of the fall-through attrs and the raw props
// in source order, keys sorted within a source, resolving getters.
func walkProps(attrs Data, raw *RawProps, fn func(key string, value any)) {
	for _, key := range sortedKeys(attrs) {
		fn(key, attrs[key])
	}

	if raw == nil {
		return
	}

	for _, key := range sortedKeys(raw.Static) {
		v := raw.Static[key]
		if getter, ok := v.(func() any); ok {
			v = getter()
		}

		fn(key, v)
	}

	for _, source := range raw.Dynamic {
		obj := source()
		for _, key := range sortedKeys(obj) {
			fn(key, obj[key])
		}
	}
}

// FallbackComponent renders an unresolved component as a plain element
// named tag. Props and fall-through attrs are applied in one effect with
// class and style merged across sources; the default slot becomes its
// children. As the single root it takes the instance's scope ids.
func FallbackComponent(doc *dom.Document, tag string, rawProps *RawProps, slots []Slots, inst *Instance, singleRoot bool) dom.Element {
	el := doc.CreateElement(tag)

	if rawProps != nil || len(inst.Attrs) > 0 {
		RenderEffect(inst.Scheduler, func() {
			var classes, styles []any

			walkProps(inst.Attrs, rawProps, func(key string, value any) {
				switch key {
				case keyClass:
					classes = append(classes, value)
				case keyStyle:
					styles = append(styles, value)
				default:
					SetDynamicProp(el, key, value)
				}
			})

			if classes != nil {
				SetClass(el, classes, nil)
			}

			if styles != nil {
				SetStyle(el, styles, nil)
			}
		})
	}

	for _, slot := range slots {
		if render := slot["default"]; render != nil {
			if block := render(); block != nil {
				el.Append(NormalizeBlock(block)...)
			}
		}
	}

	if singleRoot {
		inst.DynamicAttrs = true

		for _, id := range inst.ScopeIDs {
			el.SetAttribute(id, "")
		}
	}

	if inst.Type != nil && inst.Type.ScopeID != "" {
		el.SetAttribute(inst.Type.ScopeID, "")
	}

	return el
}
