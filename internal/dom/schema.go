package dom

import "strings"

// PropType is the native type of a DOM property.
type PropType int

// Property types.
const (
	PropString PropType = iota
	PropBool
	PropNumber
	PropObject
)

func (t PropType) String() string {
	switch t {
	case PropString:
		return "string"
	case PropBool:
		return "boolean"
	case PropNumber:
		return "number"
	}

	return "object"
}

type propSpec struct {
	typ      PropType
	attr     string // reflected attribute, if any
	readonly bool
}

// Schema entries are "name" followed by optional "=attr". Prefixes:
// '!' boolean, '#' number, '%' object, none string. A '~' after the
// prefix marks the property read-only.
var (
	htmlElementSchema = []string{
		"id=id", "className=class", "title=title", "lang=lang", "dir=dir",
		"!hidden=hidden", "#tabIndex=tabindex", "accessKey=accesskey",
		"!draggable", "!spellcheck", "!translate", "!inert=inert", "!autofocus=autofocus",
		"contentEditable", "nonce", "slot=slot", "%style",
		"%onclick", "%oninput", "%onchange", "%onsubmit", "%onkeydown", "%onkeyup",
		"%onfocus", "%onblur", "%onmouseenter", "%onmouseleave",
	}

	svgElementSchema = []string{
		"id=id", "#tabIndex=tabindex", "lang=lang", "~%className", "%style",
		"%onclick", "%onfocus", "%onblur",
	}

	tagSchemas = map[string][]string{
		"INPUT": {
			"value", "!checked", "!defaultChecked=checked", "!disabled=disabled", "type=type",
			"name=name", "placeholder=placeholder", "!readOnly=readonly", "!required=required",
			"!multiple=multiple", "#maxLength=maxlength", "#minLength=minlength", "min=min", "max=max",
			"step=step", "#width=width", "#height=height", "~%list", "~%form", "!indeterminate",
			"autocomplete=autocomplete", "#size=size", "~!willValidate",
		},
		"TEXTAREA": {
			"value", "!disabled=disabled", "name=name", "placeholder=placeholder",
			"!readOnly=readonly", "!required=required", "#rows=rows", "#cols=cols",
			"#maxLength=maxlength", "~%form", "~type", "~!willValidate",
		},
		"SELECT": {
			"value", "!disabled=disabled", "!multiple=multiple", "name=name", "!required=required",
			"#size=size", "#selectedIndex", "~type", "~%form", "~!willValidate",
		},
		"OPTION": {
			"value=value", "!selected", "!defaultSelected=selected", "!disabled=disabled", "label=label", "text",
		},
		"BUTTON": {
			"!disabled=disabled", "type=type", "name=name", "value=value", "~%form", "~!willValidate",
		},
		"IMG":      {"src=src", "alt=alt", "#width=width", "#height=height", "loading=loading"},
		"A":        {"href=href", "target=target", "rel=rel", "download=download"},
		"PROGRESS": {"#value=value", "#max=max"},
		"METER":    {"#value=value", "#min=min", "#max=max"},
		"VIDEO": {
			"src=src", "!autoplay=autoplay", "!controls=controls", "!loop=loop", "!muted",
			"#width=width", "#height=height", "poster=poster",
		},
		"AUDIO":    {"src=src", "!autoplay=autoplay", "!controls=controls", "!loop=loop", "!muted"},
		"CANVAS":   {"#width=width", "#height=height"},
		"SOURCE":   {"src=src", "type=type", "#width=width", "#height=height"},
		"LABEL":    {"htmlFor=for", "~%form"},
		"FORM":     {"action=action", "method=method", "!noValidate=novalidate", "name=name"},
		"TD":       {"#colSpan=colspan", "#rowSpan=rowspan"},
		"TH":       {"#colSpan=colspan", "#rowSpan=rowspan"},
		"IFRAME":   {"src=src", "srcdoc=srcdoc", "width=width", "height=height"},
		"DETAILS":  {"!open=open"},
		"DIALOG":   {"!open=open"},
		"FIELDSET": {"!disabled=disabled", "name=name", "~%form"},
	}

	htmlGlobal = parseSchema(htmlElementSchema)
	svgGlobal  = parseSchema(svgElementSchema)
	tagProps   = func() map[string]map[string]propSpec {
		out := make(map[string]map[string]propSpec, len(tagSchemas))
		for tag, entries := range tagSchemas {
			out[tag] = parseSchema(entries)
		}

		return out
	}()
)

func parseSchema(entries []string) map[string]propSpec {
	out := make(map[string]propSpec, len(entries))

	for _, entry := range entries {
		var spec propSpec

		if strings.HasPrefix(entry, "~") {
			spec.readonly = true
			entry = entry[1:]
		}

		switch entry[0] {
		case '!':
			spec.typ = PropBool
			entry = entry[1:]
		case '#':
			spec.typ = PropNumber
			entry = entry[1:]
		case '%':
			spec.typ = PropObject
			entry = entry[1:]
		}

		name, attr, _ := strings.Cut(entry, "=")
		spec.attr = attr
		out[name] = spec
	}

	return out
}

// lookupProp finds the schema entry for a property of an element.
func lookupProp(ns Namespace, tagName, name string) (propSpec, bool) {
	if ns == NamespaceSVG {
		spec, ok := svgGlobal[name]

		return spec, ok
	}

	if ns == NamespaceMathML {
		spec, ok := svgGlobal[name]

		return spec, ok && name != "className"
	}

	if spec, ok := tagProps[tagName][name]; ok {
		return spec, true
	}

	spec, ok := htmlGlobal[name]

	return spec, ok
}
