package nondet

// SearchPosition describes one processed frontier entry.
type SearchPosition interface {
	Path() Path
	Outcome() OutcomeKind
}

// Tracer observes the search as paths are replayed.
type Tracer interface {
	Trace(p SearchPosition)
}

// DefaultTracer is a no-op Tracer.
type DefaultTracer struct{}

func (DefaultTracer) Trace(_ SearchPosition) {}
