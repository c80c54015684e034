package srs

import (
	"math"
	"time"
)

// Learning-step delays. A failed or hesitant card comes back within
// minutes, never days: a rating of again must always pull the due date
// to "now or very soon" regardless of prior stability, so a lapse can
// never inherit a runaway interval.
const (
	againDelay = 1 * time.Minute
	hardDelay  = 5 * time.Minute
	goodDelay  = 10 * time.Minute
)

// Review applies a rating to a card and returns the updated card.
// The input card is not modified. now is injected so scheduling is
// deterministic under test.
func Review(card *Card, rating Rating, p Params, now time.Time) *Card {
	next := *card
	next.Reps++

	elapsed := 0.0
	if card.LastReview != nil {
		elapsed = now.Sub(*card.LastReview).Hours() / 24.0
		if elapsed < 0 {
			elapsed = 0
		}
	}
	next.ElapsedDays = elapsed

	if rating == RatingAgain && card.State != StateNew {
		next.Lapses++
	}

	switch card.State {
	case StateNew:
		reviewNew(&next, rating, p, now)
	case StateLearning, StateRelearning:
		reviewLearning(&next, rating, p, now)
	case StateReview:
		reviewSettled(&next, rating, p, elapsed, now)
	}

	t := now
	next.LastReview = &t
	return &next
}

// reviewNew handles the first-ever review of a card.
func reviewNew(c *Card, rating Rating, p Params, now time.Time) {
	c.Difficulty = initDifficulty(rating, p)
	c.Stability = initStability(rating, p)

	if rating == RatingEasy {
		c.State = StateReview
		scheduleByStability(c, p, now)
		return
	}

	c.State = StateLearning
	c.ScheduledDays = 0
	switch rating {
	case RatingAgain:
		c.Due = now.Add(againDelay)
	case RatingHard:
		c.Due = now.Add(hardDelay)
	default:
		c.Due = now.Add(goodDelay)
	}
}

// reviewLearning handles cards in the short-interval learning or
// relearning phase. Good or easy graduates the card to Review.
func reviewLearning(c *Card, rating Rating, p Params, now time.Time) {
	switch rating {
	case RatingAgain:
		c.ScheduledDays = 0
		c.Due = now.Add(againDelay)
	case RatingHard:
		c.ScheduledDays = 0
		c.Due = now.Add(hardDelay)
	default:
		if c.Stability <= 0 {
			c.Stability = initStability(rating, p)
		}
		c.State = StateReview
		scheduleByStability(c, p, now)
	}
}

// reviewSettled handles cards in the Review state.
func reviewSettled(c *Card, rating Rating, p Params, elapsed float64, now time.Time) {
	retr := forgettingCurve(elapsed, c.Stability)

	if rating == RatingAgain {
		c.Stability = forgetStability(c.Difficulty, c.Stability, retr, p)
		c.Difficulty = nextDifficulty(c.Difficulty, rating, p)
		c.State = StateRelearning
		c.ScheduledDays = 0
		c.Due = now.Add(hardDelay)
		return
	}

	c.Stability = recallStability(c.Difficulty, c.Stability, retr, rating, p)
	c.Difficulty = nextDifficulty(c.Difficulty, rating, p)
	c.State = StateReview
	scheduleByStability(c, p, now)
}

// scheduleByStability derives the next interval from stability and the
// retention target, then sets scheduled_days and due.
func scheduleByStability(c *Card, p Params, now time.Time) {
	days := nextIntervalDays(c.Stability, p)
	c.ScheduledDays = float64(days)
	c.Due = now.AddDate(0, 0, days)
}

// forgettingCurve returns retrievability after elapsedDays at stability s.
func forgettingCurve(elapsedDays, s float64) float64 {
	if s <= 0 {
		return 0
	}
	return math.Pow(1+factor*elapsedDays/s, decay)
}

// nextIntervalDays solves the forgetting curve for the request retention.
func nextIntervalDays(s float64, p Params) int {
	interval := s / factor * (math.Pow(p.RequestRetention, 1/decay) - 1)
	days := int(math.Round(interval))
	if days < 1 {
		days = 1
	}
	if p.MaximumIntervalDays > 0 && days > p.MaximumIntervalDays {
		days = p.MaximumIntervalDays
	}
	return days
}

func initStability(rating Rating, p Params) float64 {
	return math.Max(p.Weights[rating-1], 0.1)
}

func initDifficulty(rating Rating, p Params) float64 {
	return clampDifficulty(p.Weights[4] - p.Weights[5]*float64(rating-3))
}

// recallStability grows stability multiplicatively on success. Lower
// difficulty, lower retrievability at review time, and an easy rating
// all increase the growth factor; hard shrinks it.
func recallStability(d, s, retr float64, rating Rating, p Params) float64 {
	hardPenalty := 1.0
	if rating == RatingHard {
		hardPenalty = p.Weights[15]
	}
	easyBonus := 1.0
	if rating == RatingEasy {
		easyBonus = p.Weights[16]
	}

	return s * (1 + math.Exp(p.Weights[8])*
		(11-d)*
		math.Pow(s, -p.Weights[9])*
		(math.Exp(p.Weights[10]*(1-retr))-1)*
		hardPenalty*
		easyBonus)
}

// forgetStability computes post-lapse stability, never above the prior.
func forgetStability(d, s, retr float64, p Params) float64 {
	ns := p.Weights[11] *
		math.Pow(d, -p.Weights[12]) *
		(math.Pow(s+1, p.Weights[13]) - 1) *
		math.Exp(p.Weights[14]*(1-retr))
	return math.Min(ns, s)
}

// nextDifficulty nudges difficulty toward the rating-dependent target
// with mean reversion damping toward the easy-start difficulty.
func nextDifficulty(d float64, rating Rating, p Params) float64 {
	nd := d - p.Weights[6]*float64(rating-3)
	target := p.Weights[4] - p.Weights[5] // initial difficulty for easy
	nd = p.Weights[7]*target + (1-p.Weights[7])*nd
	return clampDifficulty(nd)
}

func clampDifficulty(d float64) float64 {
	if d < 1 {
		return 1
	}
	if d > 10 {
		return 10
	}
	return d
}
