package srs

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/tmaru/lexiquest/internal/priority"
	"github.com/tmaru/lexiquest/internal/store"
)

// recentMistakeWindowDays bounds the wrong-answer lookback feeding the
// priority ranker.
const recentMistakeWindowDays = 7

// Service manages spaced repetition scheduling on top of the card store.
type Service struct {
	cards   store.CardRepo
	mastery store.MasteryRepo
	events  store.EventRepo
	params  Params
}

// NewService creates a scheduler service. mastery and events may be nil;
// due-card ranking then runs on review risk alone.
func NewService(cards store.CardRepo, mastery store.MasteryRepo, events store.EventRepo, params Params) *Service {
	return &Service{
		cards:   cards,
		mastery: mastery,
		events:  events,
		params:  params,
	}
}

// ReviewCard applies a rating to the card for questionHash, creating the
// card on first review. The read-modify-write is atomic per call under
// the single-writer assumption.
func (s *Service) ReviewCard(ctx context.Context, questionHash string, rating Rating, payload map[string]any, now time.Time) (*Card, error) {
	data, err := s.cards.Get(ctx, questionHash)
	if err != nil {
		return nil, fmt.Errorf("load card: %w", err)
	}

	var card *Card
	if data == nil {
		card = NewCard(questionHash, payload, now)
	} else {
		card = FromStoreData(data)
		if payload != nil {
			card.Payload = payload
		}
	}

	updated := Review(card, rating, s.params, now)

	if err := s.cards.Save(ctx, updated.ToStoreData()); err != nil {
		return nil, fmt.Errorf("save card: %w", err)
	}
	return updated, nil
}

// GetCard returns the card for a hash, or nil if never reviewed.
func (s *Service) GetCard(ctx context.Context, questionHash string) (*Card, error) {
	data, err := s.cards.Get(ctx, questionHash)
	if err != nil {
		return nil, fmt.Errorf("load card: %w", err)
	}
	if data == nil {
		return nil, nil
	}
	return FromStoreData(data), nil
}

// DueCardsWithPriority returns due cards ordered by skill priority,
// most urgent first. Cards tied on priority stay in overdue order.
func (s *Service) DueCardsWithPriority(ctx context.Context, limit int, now time.Time) ([]*Card, error) {
	// Over-fetch so ranking sees the full due set before the cut.
	data, err := s.cards.Due(ctx, now, 0)
	if err != nil {
		return nil, fmt.Errorf("load due cards: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	cards := make([]*Card, len(data))
	for i := range data {
		cards[i] = FromStoreData(&data[i])
	}

	in, err := s.rankerInputs(ctx, cards, now)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(cards, func(i, j int) bool {
		return priority.Score(questionInfo(cards[i]), in) > priority.Score(questionInfo(cards[j]), in)
	})

	if limit > 0 && len(cards) > limit {
		cards = cards[:limit]
	}
	return cards, nil
}

// rankerInputs assembles the per-skill signal maps for priority scoring.
// Review risk per skill is the worst (lowest) retrievability among that
// skill's cards, rescaled so a fully forgotten card scores at the cap.
func (s *Service) rankerInputs(ctx context.Context, cards []*Card, now time.Time) (priority.Inputs, error) {
	in := priority.Inputs{
		Stats:          make(map[string]priority.SkillStats),
		Mastery:        make(map[string]priority.MasteryState),
		ReviewRisk:     make(map[string]float64),
		RecentMistakes: make(map[string]float64),
	}

	for _, c := range cards {
		tag := c.SkillTag()
		if tag == "" {
			continue
		}
		risk := (1 - Retrievability(c, now)) * 3
		if risk > in.ReviewRisk[tag] {
			in.ReviewRisk[tag] = risk
		}
	}

	if s.mastery != nil {
		records, err := s.mastery.All(ctx)
		if err != nil {
			return in, fmt.Errorf("load mastery records: %w", err)
		}
		for _, rec := range records {
			in.Mastery[rec.SkillTag] = priority.MasteryState(rec.State)
			in.Stats[rec.SkillTag] = priority.SkillStats{
				Attempts: rec.Attempts,
				Correct:  rec.Correct,
			}
		}
	}

	if s.events != nil {
		since := now.AddDate(0, 0, -recentMistakeWindowDays)
		wrong, err := s.events.RecentWrongBySkill(ctx, since)
		if err != nil {
			return in, fmt.Errorf("load recent mistakes: %w", err)
		}
		for tag, n := range wrong {
			in.RecentMistakes[tag] = float64(n)
		}
	}

	return in, nil
}

func questionInfo(c *Card) priority.QuestionInfo {
	difficulty := ""
	if c.Payload != nil {
		if d, ok := c.Payload["difficulty"].(string); ok {
			difficulty = d
		}
	}
	return priority.QuestionInfo{
		SkillTag:   c.SkillTag(),
		Difficulty: difficulty,
	}
}

// Stats summarizes the card collection for display.
type Stats struct {
	TotalCards     int
	ByState        map[State]int
	DueNow         int
	AvgRetrievable float64
}

// GetStats folds the full card set into display counters.
func (s *Service) GetStats(ctx context.Context, now time.Time) (*Stats, error) {
	data, err := s.cards.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load cards: %w", err)
	}

	stats := &Stats{ByState: make(map[State]int)}
	sum := 0.0
	reviewed := 0

	for i := range data {
		c := FromStoreData(&data[i])
		stats.TotalCards++
		stats.ByState[c.State]++
		if c.IsDue(now) {
			stats.DueNow++
		}
		if c.LastReview != nil {
			sum += Retrievability(c, now)
			reviewed++
		}
	}

	if reviewed > 0 {
		stats.AvgRetrievable = sum / float64(reviewed)
	}
	return stats, nil
}
