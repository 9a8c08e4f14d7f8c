package runtime

// Scheduler registers render effects. The reactive system behind it
// decides when a registered effect runs again.
type Scheduler interface {
	RenderEffect(fn func())
}

// EffectScope is a minimal synchronous Scheduler: effects run once when
// registered and again on every Run until the scope stops.
type EffectScope struct {
	effects []func()
	stopped bool
}

// RenderEffect registers fn and runs it immediately.
func (s *EffectScope) RenderEffect(fn func()) {
	if s.stopped {
		return
	}

	s.effects = append(s.effects, fn)
	fn()
}

// Run re-runs every registered effect in registration order.
func (s *EffectScope) Run() {
	if s.stopped {
		return
	}

	for _, fn := range s.effects {
		fn()
	}
}

// Len returns the number of registered effects.
func (s *EffectScope) Len() int {
	return len(s.effects)
}

// Stop drops all effects. A stopped scope ignores new registrations.
func (s *EffectScope) Stop() {
	s.stopped = true
	s.effects = nil
}

// RenderEffect registers fn with s, or runs it once when there is no
// scheduler.
func RenderEffect(s Scheduler, fn func()) {
	if s == nil {
		fn()

		return
	}

	s.RenderEffect(fn)
}
