package srs

import (
	"testing"
	"time"
)

func TestRetrievabilityUnreviewedCard(t *testing.T) {
	card := NewCard("hash-1", nil, testNow)
	if r := Retrievability(card, testNow); r != 0 {
		t.Errorf("retrievability of unreviewed card = %.3f, want 0", r)
	}
}

func TestRetrievabilityDecreasesMonotonically(t *testing.T) {
	card := &Card{
		QuestionHash: "hash-1",
		State:        StateReview,
		Stability:    10,
		LastReview:   timePtr(testNow),
	}

	prev := 1.1
	for days := 0; days <= 60; days += 5 {
		r := Retrievability(card, testNow.AddDate(0, 0, days))
		if r >= prev {
			t.Fatalf("retrievability at day %d = %.4f, not below previous %.4f", days, r, prev)
		}
		if r < 0 || r > 1 {
			t.Fatalf("retrievability %.4f outside [0,1]", r)
		}
		prev = r
	}
}

func TestRetrievabilityAtStabilityIsNinety(t *testing.T) {
	card := &Card{
		QuestionHash: "hash-1",
		State:        StateReview,
		Stability:    20,
		LastReview:   timePtr(testNow),
	}

	r := Retrievability(card, testNow.AddDate(0, 0, 20))
	if r < 0.899 || r > 0.901 {
		t.Errorf("retrievability at elapsed=stability = %.4f, want ~0.90", r)
	}
}

func TestRetrievabilityHigherStabilityDecaysSlower(t *testing.T) {
	weak := &Card{Stability: 2, LastReview: timePtr(testNow)}
	strong := &Card{Stability: 50, LastReview: timePtr(testNow)}

	later := testNow.AddDate(0, 0, 10)
	if Retrievability(strong, later) <= Retrievability(weak, later) {
		t.Error("stronger card should retain more than weaker card")
	}
}

func TestGetMemoryStatusBuckets(t *testing.T) {
	future := testNow.AddDate(0, 0, 30)

	cases := []struct {
		name    string
		card    *Card
		at      time.Time
		bucket  MemoryBucket
	}{
		{
			name:   "due wins over everything",
			card:   &Card{Stability: 100, Due: testNow, LastReview: timePtr(testNow.AddDate(0, 0, -1))},
			at:     testNow,
			bucket: BucketDue,
		},
		{
			name:   "fresh right after review",
			card:   &Card{Stability: 100, Due: future, LastReview: timePtr(testNow)},
			at:     testNow,
			bucket: BucketFresh,
		},
		{
			name:   "steady partway through",
			card:   &Card{Stability: 10, Due: future, LastReview: timePtr(testNow.AddDate(0, 0, -16))},
			at:     testNow,
			bucket: BucketSteady,
		},
		{
			name:   "at risk when decayed but not yet due",
			card:   &Card{Stability: 2, Due: future, LastReview: timePtr(testNow.AddDate(0, 0, -20))},
			at:     testNow,
			bucket: BucketAtRisk,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := GetMemoryStatus(tc.card, tc.at)
			if got.Bucket != tc.bucket {
				t.Errorf("bucket = %s, want %s (r=%.3f)", got.Bucket, tc.bucket, got.Retrievability)
			}
		})
	}
}
