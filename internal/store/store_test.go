package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAppendAndQueryLearningEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	base := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	// Append out of order; reads must come back timestamp-ordered.
	events := []LearningEventData{
		{EventType: EventAnswer, Source: SourceBattle, Result: ResultCorrect, SkillTag: "past_tense", Timestamp: base.Add(2 * time.Hour)},
		{EventType: EventAnswer, Source: SourceSRS, Result: ResultWrong, SkillTag: "plurals", Timestamp: base},
		{EventType: EventSessionComplete, Source: SourceDaily, Timestamp: base.Add(time.Hour)},
	}
	for i, e := range events {
		if err := repo.AppendLearningEvent(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	rows, err := repo.LearningEventsBetween(ctx, base, base.Add(3*time.Hour))
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].Timestamp.Before(rows[i-1].Timestamp) {
			t.Errorf("rows not timestamp-ordered at %d", i)
		}
	}
	if rows[0].SkillTag != "plurals" {
		t.Errorf("first row skill = %q, want plurals", rows[0].SkillTag)
	}
}

func TestLearningEventWindowExcludesOutside(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	base := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	for _, offset := range []time.Duration{-time.Hour, time.Hour, 25 * time.Hour} {
		err := repo.AppendLearningEvent(ctx, LearningEventData{
			EventType: EventAnswer,
			Source:    SourceBattle,
			Result:    ResultCorrect,
			Timestamp: base.Add(offset),
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	rows, err := repo.LearningEventsBetween(ctx, base, base.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("rows = %d, want 1", len(rows))
	}
}

func TestCorrectAnswerAndSessionCounts(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := []LearningEventData{
		{EventType: EventAnswer, Source: SourceBattle, Result: ResultCorrect},
		{EventType: EventAnswer, Source: SourceSRS, Result: ResultCorrect},
		{EventType: EventAnswer, Source: SourceSRS, Result: ResultWrong},
		{EventType: EventSessionComplete, Source: SourceDaily},
	}
	for i, e := range data {
		if err := repo.AppendLearningEvent(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	correct, err := repo.CorrectAnswerCount(ctx)
	if err != nil {
		t.Fatalf("correct count: %v", err)
	}
	if correct != 2 {
		t.Errorf("correct = %d, want 2", correct)
	}

	sessions, err := repo.SessionCompleteCount(ctx)
	if err != nil {
		t.Fatalf("session count: %v", err)
	}
	if sessions != 1 {
		t.Errorf("sessions = %d, want 1", sessions)
	}
}

func TestRecentWrongBySkill(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	now := time.Now().UTC()
	data := []LearningEventData{
		{EventType: EventAnswer, Source: SourceBattle, Result: ResultWrong, SkillTag: "plurals", Timestamp: now.Add(-time.Hour)},
		{EventType: EventAnswer, Source: SourceBattle, Result: ResultWrong, SkillTag: "plurals", Timestamp: now.Add(-2 * time.Hour)},
		{EventType: EventAnswer, Source: SourceSRS, Result: ResultWrong, SkillTag: "past_tense", Timestamp: now.Add(-time.Hour)},
		// Outside window.
		{EventType: EventAnswer, Source: SourceSRS, Result: ResultWrong, SkillTag: "plurals", Timestamp: now.AddDate(0, 0, -10)},
		// Untagged wrong answers don't count.
		{EventType: EventAnswer, Source: SourceBattle, Result: ResultWrong, Timestamp: now.Add(-time.Hour)},
	}
	for i, e := range data {
		if err := repo.AppendLearningEvent(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	counts, err := repo.RecentWrongBySkill(ctx, now.AddDate(0, 0, -7))
	if err != nil {
		t.Fatalf("recent wrong: %v", err)
	}
	if counts["plurals"] != 2 {
		t.Errorf("plurals = %d, want 2", counts["plurals"])
	}
	if counts["past_tense"] != 1 {
		t.Errorf("past_tense = %d, want 1", counts["past_tense"])
	}
}

func TestCardSaveRoundtrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.CardRepo()
	ctx := context.Background()

	missing, err := repo.Get(ctx, "nope")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for missing card")
	}

	now := time.Now().UTC().Truncate(time.Second)
	card := &CardData{
		QuestionHash: "abc123",
		Due:          now.AddDate(0, 0, 3),
		Stability:    4.2,
		Difficulty:   5.1,
		Reps:         1,
		State:        "learning",
		LastReview:   &now,
		Payload:      map[string]any{"question": "What is the plural of 'mouse'?"},
	}
	if err := repo.Save(ctx, card); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Get(ctx, "abc123")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected card")
	}
	if got.Stability != 4.2 || got.State != "learning" {
		t.Errorf("got %+v", got)
	}

	// Save again updates in place.
	card.Reps = 2
	card.State = "review"
	if err := repo.Save(ctx, card); err != nil {
		t.Fatalf("resave: %v", err)
	}
	got, err = repo.Get(ctx, "abc123")
	if err != nil {
		t.Fatalf("get after resave: %v", err)
	}
	if got.Reps != 2 || got.State != "review" {
		t.Errorf("after resave got %+v", got)
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("all = %d cards, want 1", len(all))
	}
}

func TestCardDueOrdering(t *testing.T) {
	s := openTestStore(t)
	repo := s.CardRepo()
	ctx := context.Background()

	now := time.Now().UTC()
	cards := []*CardData{
		{QuestionHash: "h1", Due: now.AddDate(0, 0, -1), State: "review"},
		{QuestionHash: "h2", Due: now.AddDate(0, 0, -5), State: "review"},
		{QuestionHash: "h3", Due: now.AddDate(0, 0, 3), State: "review"},
	}
	for _, c := range cards {
		if err := repo.Save(ctx, c); err != nil {
			t.Fatalf("save %s: %v", c.QuestionHash, err)
		}
	}

	due, err := repo.Due(ctx, now, 0)
	if err != nil {
		t.Fatalf("due: %v", err)
	}
	if len(due) != 2 {
		t.Fatalf("due = %d, want 2", len(due))
	}
	if due[0].QuestionHash != "h2" {
		t.Errorf("most overdue = %s, want h2", due[0].QuestionHash)
	}
}

func TestProfileApply(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	p, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("get empty: %v", err)
	}
	if p.WordsLearned != 0 {
		t.Errorf("empty words = %d, want 0", p.WordsLearned)
	}

	if err := repo.Apply(ctx, ProfileDelta{WordsLearned: 3, XP: 50, Streak: 2}); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if err := repo.Apply(ctx, ProfileDelta{WordsLearned: 2, LessonsCompleted: 1, XP: 20, Streak: 3}); err != nil {
		t.Fatalf("apply 2: %v", err)
	}

	p, err = repo.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.WordsLearned != 5 {
		t.Errorf("words = %d, want 5", p.WordsLearned)
	}
	if p.LessonsCompleted != 1 {
		t.Errorf("lessons = %d, want 1", p.LessonsCompleted)
	}
	if p.TotalXP != 70 {
		t.Errorf("xp = %d, want 70", p.TotalXP)
	}
	if p.CurrentStreak != 3 || p.BestStreak != 3 {
		t.Errorf("streak = %d/%d, want 3/3", p.CurrentStreak, p.BestStreak)
	}

	// Streak reset keeps the best.
	if err := repo.Apply(ctx, ProfileDelta{Streak: 0}); err != nil {
		t.Fatalf("apply reset: %v", err)
	}
	p, _ = repo.Get(ctx)
	if p.CurrentStreak != 0 || p.BestStreak != 3 {
		t.Errorf("after reset streak = %d/%d, want 0/3", p.CurrentStreak, p.BestStreak)
	}
}

func TestMistakeLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.MistakeRepo()
	ctx := context.Background()

	data := MistakeData{
		MistakeID:     "m-1",
		SkillTag:      "past_tense",
		QuestionText:  "Yesterday I ___ to school.",
		CorrectAnswer: "went",
		LearnerAnswer: "goed",
	}
	if err := repo.Create(ctx, data); err != nil {
		t.Fatalf("create: %v", err)
	}

	err := repo.Enrich(ctx, "m-1", "tense_confusion", "Applied the regular -ed rule to an irregular verb.", map[string]any{"question": "Last week she ___ home early."})
	if err != nil {
		t.Fatalf("enrich: %v", err)
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("all = %d, want 1", len(all))
	}
	if all[0].CauseTag != "tense_confusion" {
		t.Errorf("cause = %q", all[0].CauseTag)
	}
	if all[0].RevengeQuestion == nil {
		t.Error("expected revenge question")
	}

	if err := repo.Delete(ctx, "m-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	all, _ = repo.All(ctx)
	if len(all) != 0 {
		t.Errorf("after delete = %d, want 0", len(all))
	}

	// Enriching a deleted mistake is a no-op, not an error.
	if err := repo.Enrich(ctx, "m-1", "x", "y", nil); err != nil {
		t.Errorf("enrich deleted: %v", err)
	}
}

func TestTaskSavePreservesKey(t *testing.T) {
	s := openTestStore(t)
	repo := s.TaskRepo()
	ctx := context.Background()

	period := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	completed := period.Add(36 * time.Hour)

	task := TaskData{
		TaskID:      "daily_challenge",
		PeriodStart: period,
		Progress:    5,
		Goal:        5,
		Status:      "completed",
		CompletedAt: &completed,
	}
	if err := repo.Save(ctx, task); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Second save for the same (task, period) updates the row.
	task.Progress = 6
	if err := repo.Save(ctx, task); err != nil {
		t.Fatalf("resave: %v", err)
	}

	rows, err := repo.ForPeriod(ctx, period)
	if err != nil {
		t.Fatalf("for period: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].Progress != 6 {
		t.Errorf("progress = %d, want 6", rows[0].Progress)
	}
	if rows[0].CompletedAt == nil || !rows[0].CompletedAt.Equal(completed) {
		t.Errorf("completedAt = %v, want %v", rows[0].CompletedAt, completed)
	}
}
