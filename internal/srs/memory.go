package srs

import "time"

// MemoryBucket is a human-readable recall classification.
type MemoryBucket string

const (
	BucketFresh  MemoryBucket = "fresh"
	BucketSteady MemoryBucket = "steady"
	BucketAtRisk MemoryBucket = "at_risk"
	BucketDue    MemoryBucket = "due"
)

// MemoryStatus describes the estimated recall state of a card at now.
type MemoryStatus struct {
	Retrievability float64
	Bucket         MemoryBucket
}

// Retrievability estimates the probability of successful recall at now.
// It decreases monotonically with elapsed time and increases with
// stability. A card that was never reviewed has no memory to estimate.
func Retrievability(card *Card, now time.Time) float64 {
	if card.LastReview == nil || card.Stability <= 0 {
		return 0
	}
	elapsed := now.Sub(*card.LastReview).Hours() / 24.0
	if elapsed < 0 {
		elapsed = 0
	}
	return forgettingCurve(elapsed, card.Stability)
}

// GetMemoryStatus derives retrievability and a display bucket.
func GetMemoryStatus(card *Card, now time.Time) MemoryStatus {
	r := Retrievability(card, now)

	bucket := BucketAtRisk
	switch {
	case card.IsDue(now):
		bucket = BucketDue
	case r >= 0.9:
		bucket = BucketFresh
	case r >= 0.75:
		bucket = BucketSteady
	}

	return MemoryStatus{Retrievability: r, Bucket: bucket}
}
