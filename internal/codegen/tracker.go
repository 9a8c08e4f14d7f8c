package codegen

// tracker accumulates the dependencies of one effect. It is passed to
// every generator that emits values inside the effect; generators outside
// an effect receive nil.
type tracker struct {
	keys        []string
	reads       map[string]*Ident
	untrackable bool
	committed   bool
	// guards pairs each key with its shadow, filled by commit
	guards []guard
}

type guard struct {
	shadow string
	fresh  *Ident
}

func newTracker() *tracker {
	return &tracker{reads: make(map[string]*Ident)}
}

// track inspects one emitted value. A single reactive read becomes a
// dependency, a value without references is a constant and anything else
// makes the whole effect untrackable.
func (t *tracker) track(value Fragments) {
	if t == nil || t.untrackable {
		return
	}

	var (
		read  *Ident
		parts int
	)

	for _, frag := range value {
		switch f := frag.(type) {
		case Marker:
			continue
		case Text:
			parts++
		case *Ident:
			parts++

			if f.Key == "" {
				t.invalidate()

				return
			}

			read = f
		}
	}

	switch {
	case read == nil:
		return
	case parts != 1:
		t.invalidate()

		return
	}

	if _, seen := t.reads[read.Key]; seen {
		return
	}

	t.reads[read.Key] = read
	t.keys = append(t.keys, read.Key)
}

// invalidate marks the effect as not guardable.
func (t *tracker) invalidate() {
	if t == nil {
		return
	}

	t.untrackable = true
}

// commit assigns shadow variables in r for every dependency and rewrites
// the first read of each. Untrackable effects get no guards.
func (t *tracker) commit(r *routine) {
	if t.committed {
		return
	}

	t.committed = true

	if t.untrackable {
		for _, id := range t.reads {
			id.Shadow = ""
		}

		return
	}

	for _, key := range t.keys {
		read := t.reads[key]
		shadow := r.reserveShadow(key)
		read.Shadow = shadow
		t.guards = append(t.guards, guard{
			shadow: shadow,
			fresh:  &Ident{Text: read.Text, Loc: read.Loc},
		})
	}
}

// deps returns the dependency keys in discovery order.
func (t *tracker) deps() []string {
	if t.untrackable {
		return nil
	}

	return t.keys
}

// genGuard renders `s1 !== f1 || s2 !== f2`.
func (t *tracker) genGuard() Fragments {
	var out Fragments

	for i, g := range t.guards {
		if i > 0 {
			out.Push(Text(" || "))
		}

		out.Push(Text(g.shadow+" !== "), g.fresh)
	}

	return out
}
