package nondet

// OutcomeKind classifies the result of replaying one candidate path.
type OutcomeKind int

const (
	// OutcomeCompleted means the computation returned a value normally.
	OutcomeCompleted OutcomeKind = iota
	// OutcomePruned means the computation abandoned the branch.
	OutcomePruned
	// OutcomeSuspended means the computation requested a choice beyond
	// the recorded prefix; the path is a branch point.
	OutcomeSuspended
	// OutcomeGuarded means the computation opened an IfAny block beyond
	// the recorded prefix.
	OutcomeGuarded
	// OutcomeFailed means the computation terminated abnormally; the
	// whole search stops.
	OutcomeFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeCompleted:
		return "completed"
	case OutcomePruned:
		return "pruned"
	case OutcomeSuspended:
		return "suspended"
	case OutcomeGuarded:
		return "guarded"
	case OutcomeFailed:
		return "failed"
	}
	return "unknown"
}
