package mastery

// MasteryState represents a skill's position in the mastery lifecycle.
type MasteryState string

const (
	StateNew          MasteryState = "new"
	StateLearning     MasteryState = "learning"
	StateConsolidated MasteryState = "consolidated"
	StateMastered     MasteryState = "mastered"
)

var stateRank = map[MasteryState]int{
	StateNew:          0,
	StateLearning:     1,
	StateConsolidated: 2,
	StateMastered:     3,
}

var stateByRank = []MasteryState{StateNew, StateLearning, StateConsolidated, StateMastered}

// Rank returns the state's position in the new < learning <
// consolidated < mastered order. Unknown states rank as new.
func (s MasteryState) Rank() int {
	return stateRank[s]
}

// StateTransition records a mastery state change for event logging
// and celebration display.
type StateTransition struct {
	SkillTag string
	From     MasteryState
	To       MasteryState
	Trigger  string // "upgrade", "downgrade"
	Score    float64
}
