package mastery

// UpdateInput is a skill's record as it stands before applying the
// latest answer. Attempts and Correct already include that answer.
type UpdateInput struct {
	PreviousScore float64
	PreviousState MasteryState
	Attempts      int
	Correct       int
}

// UpdateResult is the recomputed record after one answer.
type UpdateResult struct {
	Score            float64
	State            MasteryState
	SmoothedAccuracy float64
}

// ComputeUpdate recomputes score and state for a skill after an answer.
// Accuracy is smoothed toward a neutral 0.5 prior so a lucky first
// answer cannot claim 100%, the score steps toward smoothed*100 with a
// bounded move, and state transitions apply the hysteresis thresholds.
// A downgrade never drops more than one tier per event.
func ComputeUpdate(in UpdateInput, policy Policy) UpdateResult {
	smoothed := smoothedAccuracy(in.Attempts, in.Correct, policy.PriorWeight)

	target := smoothed * 100
	score := stepToward(in.PreviousScore, target, policy.MaxStepPerEvent)

	return UpdateResult{
		Score:            score,
		State:            nextState(in.PreviousState, score, policy),
		SmoothedAccuracy: smoothed,
	}
}

func smoothedAccuracy(attempts, correct int, priorWeight float64) float64 {
	if attempts < 0 {
		attempts = 0
	}
	if correct < 0 {
		correct = 0
	}
	if correct > attempts {
		correct = attempts
	}
	return (float64(correct) + priorWeight*0.5) / (float64(attempts) + priorWeight)
}

func stepToward(score, target, maxStep float64) float64 {
	delta := target - score
	if delta > maxStep {
		delta = maxStep
	} else if delta < -maxStep {
		delta = -maxStep
	}
	next := score + delta
	if next < 0 {
		return 0
	}
	if next > 100 {
		return 100
	}
	return next
}

func nextState(prev MasteryState, score float64, policy Policy) MasteryState {
	rank := prev.Rank()

	for rank < len(stateByRank)-1 && score >= policy.Boundaries[rank].Upgrade {
		rank++
	}
	if rank > prev.Rank() {
		return stateByRank[rank]
	}

	if rank > 0 && score < policy.Boundaries[rank-1].Downgrade {
		rank--
	}
	return stateByRank[rank]
}
