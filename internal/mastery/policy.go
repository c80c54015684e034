package mastery

// Boundary holds the asymmetric score thresholds for one state
// boundary. A skill upgrades when its score reaches Upgrade and
// downgrades only when it falls below Downgrade; the gap between the
// two keeps a learner hovering near a boundary from flapping states.
type Boundary struct {
	Upgrade   float64
	Downgrade float64
}

// Policy tunes the mastery state machine.
type Policy struct {
	// PriorWeight is the pseudo-count of neutral (0.5) observations
	// blended into raw accuracy, so low-sample skills are dampened.
	PriorWeight float64

	// MaxStepPerEvent bounds how far the score can move on one answer.
	MaxStepPerEvent float64

	// Boundaries are indexed by the rank of the lower state:
	// [0] new/learning, [1] learning/consolidated,
	// [2] consolidated/mastered.
	Boundaries [3]Boundary
}

// DefaultPolicy returns the tuned production thresholds.
func DefaultPolicy() Policy {
	return Policy{
		PriorWeight:     4,
		MaxStepPerEvent: 20,
		Boundaries: [3]Boundary{
			{Upgrade: 40, Downgrade: 30},
			{Upgrade: 70, Downgrade: 60},
			{Upgrade: 88, Downgrade: 74},
		},
	}
}
