package srs

import (
	"context"
	"testing"
	"time"

	"github.com/tmaru/lexiquest/internal/store"
)

type fakeCardRepo struct {
	cards map[string]*store.CardData
}

func newFakeCardRepo() *fakeCardRepo {
	return &fakeCardRepo{cards: make(map[string]*store.CardData)}
}

func (f *fakeCardRepo) Get(_ context.Context, questionHash string) (*store.CardData, error) {
	c, ok := f.cards[questionHash]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCardRepo) Save(_ context.Context, card *store.CardData) error {
	cp := *card
	f.cards[card.QuestionHash] = &cp
	return nil
}

func (f *fakeCardRepo) Due(_ context.Context, now time.Time, limit int) ([]store.CardData, error) {
	var out []store.CardData
	for _, c := range f.cards {
		if !c.Due.After(now) {
			out = append(out, *c)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeCardRepo) All(_ context.Context) ([]store.CardData, error) {
	var out []store.CardData
	for _, c := range f.cards {
		out = append(out, *c)
	}
	return out, nil
}

type fakeMasteryRepo struct {
	records []store.SkillMasteryData
}

func (f *fakeMasteryRepo) Get(_ context.Context, skillTag string) (*store.SkillMasteryData, error) {
	for i := range f.records {
		if f.records[i].SkillTag == skillTag {
			cp := f.records[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeMasteryRepo) Save(_ context.Context, rec *store.SkillMasteryData) error {
	for i := range f.records {
		if f.records[i].SkillTag == rec.SkillTag {
			f.records[i] = *rec
			return nil
		}
	}
	f.records = append(f.records, *rec)
	return nil
}

func (f *fakeMasteryRepo) All(_ context.Context) ([]store.SkillMasteryData, error) {
	return append([]store.SkillMasteryData(nil), f.records...), nil
}

func TestReviewCardCreatesOnFirstReview(t *testing.T) {
	ctx := context.Background()
	repo := newFakeCardRepo()
	svc := NewService(repo, nil, nil, DefaultParams())

	card, err := svc.ReviewCard(ctx, "hash-1", RatingGood, map[string]any{"skillTag": "plurals"}, testNow)
	if err != nil {
		t.Fatalf("ReviewCard: %v", err)
	}
	if card.State != StateLearning {
		t.Errorf("state = %s, want learning", card.State)
	}
	if card.Reps != 1 {
		t.Errorf("reps = %d, want 1", card.Reps)
	}

	saved, _ := repo.Get(ctx, "hash-1")
	if saved == nil {
		t.Fatal("card was not persisted")
	}
	if saved.Reps != 1 {
		t.Errorf("persisted reps = %d, want 1", saved.Reps)
	}
}

func TestReviewCardAdvancesExistingCard(t *testing.T) {
	ctx := context.Background()
	repo := newFakeCardRepo()
	svc := NewService(repo, nil, nil, DefaultParams())

	if _, err := svc.ReviewCard(ctx, "hash-1", RatingGood, nil, testNow); err != nil {
		t.Fatalf("first review: %v", err)
	}
	card, err := svc.ReviewCard(ctx, "hash-1", RatingGood, nil, testNow.Add(10*time.Minute))
	if err != nil {
		t.Fatalf("second review: %v", err)
	}
	if card.Reps != 2 {
		t.Errorf("reps = %d, want 2", card.Reps)
	}
	if card.State != StateReview {
		t.Errorf("state = %s, want review after graduation", card.State)
	}
}

func TestGetCardMissingReturnsNil(t *testing.T) {
	svc := NewService(newFakeCardRepo(), nil, nil, DefaultParams())
	card, err := svc.GetCard(context.Background(), "nope")
	if err != nil {
		t.Fatalf("GetCard: %v", err)
	}
	if card != nil {
		t.Errorf("card = %+v, want nil for unknown hash", card)
	}
}

func TestDueCardsWithPriorityRanksWeakSkillsFirst(t *testing.T) {
	ctx := context.Background()
	repo := newFakeCardRepo()
	last := testNow.AddDate(0, 0, -5)

	repo.cards["weak"] = &store.CardData{
		QuestionHash: "weak",
		Due:          testNow.AddDate(0, 0, -2),
		Stability:    3,
		Difficulty:   7,
		State:        string(StateReview),
		LastReview:   &last,
		Payload:      map[string]any{"skillTag": "irregular_verbs", "difficulty": "hard"},
	}
	repo.cards["strong"] = &store.CardData{
		QuestionHash: "strong",
		Due:          testNow.AddDate(0, 0, -1),
		Stability:    90,
		Difficulty:   3,
		State:        string(StateReview),
		LastReview:   &last,
		Payload:      map[string]any{"skillTag": "greetings", "difficulty": "easy"},
	}
	repo.cards["future"] = &store.CardData{
		QuestionHash: "future",
		Due:          testNow.AddDate(0, 0, 3),
		Stability:    10,
		State:        string(StateReview),
		LastReview:   &last,
	}

	mastery := &fakeMasteryRepo{records: []store.SkillMasteryData{
		{SkillTag: "irregular_verbs", State: "learning", Attempts: 10, Correct: 4},
		{SkillTag: "greetings", State: "mastered", Attempts: 20, Correct: 19},
	}}

	svc := NewService(repo, mastery, nil, DefaultParams())
	cards, err := svc.DueCardsWithPriority(ctx, 10, testNow)
	if err != nil {
		t.Fatalf("DueCardsWithPriority: %v", err)
	}

	if len(cards) != 2 {
		t.Fatalf("got %d cards, want 2 (future card excluded)", len(cards))
	}
	if cards[0].QuestionHash != "weak" {
		t.Errorf("first card = %s, want weak skill first", cards[0].QuestionHash)
	}
}

func TestDueCardsWithPriorityHonorsLimit(t *testing.T) {
	ctx := context.Background()
	repo := newFakeCardRepo()
	for _, hash := range []string{"a", "b", "c"} {
		repo.cards[hash] = &store.CardData{
			QuestionHash: hash,
			Due:          testNow.AddDate(0, 0, -1),
			Stability:    5,
			State:        string(StateReview),
		}
	}

	svc := NewService(repo, nil, nil, DefaultParams())
	cards, err := svc.DueCardsWithPriority(ctx, 2, testNow)
	if err != nil {
		t.Fatalf("DueCardsWithPriority: %v", err)
	}
	if len(cards) != 2 {
		t.Errorf("got %d cards, want limit of 2", len(cards))
	}
}

func TestGetStatsCounts(t *testing.T) {
	ctx := context.Background()
	repo := newFakeCardRepo()
	last := testNow.AddDate(0, 0, -1)

	repo.cards["a"] = &store.CardData{
		QuestionHash: "a", Due: testNow.AddDate(0, 0, -1),
		Stability: 10, State: string(StateReview), LastReview: &last,
	}
	repo.cards["b"] = &store.CardData{
		QuestionHash: "b", Due: testNow.AddDate(0, 0, 5),
		Stability: 20, State: string(StateReview), LastReview: &last,
	}
	repo.cards["c"] = &store.CardData{
		QuestionHash: "c", Due: testNow.Add(time.Minute),
		State: string(StateLearning), LastReview: &last,
	}

	svc := NewService(repo, nil, nil, DefaultParams())
	stats, err := svc.GetStats(ctx, testNow)
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}

	if stats.TotalCards != 3 {
		t.Errorf("total = %d, want 3", stats.TotalCards)
	}
	if stats.ByState[StateReview] != 2 || stats.ByState[StateLearning] != 1 {
		t.Errorf("by-state counts wrong: %+v", stats.ByState)
	}
	if stats.DueNow != 1 {
		t.Errorf("due now = %d, want 1", stats.DueNow)
	}
	if stats.AvgRetrievable <= 0 || stats.AvgRetrievable > 1 {
		t.Errorf("avg retrievability %.3f outside (0,1]", stats.AvgRetrievable)
	}
}
