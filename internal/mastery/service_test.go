package mastery

import (
	"context"
	"testing"
	"time"

	"github.com/tmaru/lexiquest/internal/store"
)

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

type fakeMasteryRepo struct {
	records map[string]*store.SkillMasteryData
}

func newFakeMasteryRepo() *fakeMasteryRepo {
	return &fakeMasteryRepo{records: make(map[string]*store.SkillMasteryData)}
}

func (f *fakeMasteryRepo) Get(_ context.Context, skillTag string) (*store.SkillMasteryData, error) {
	rec, ok := f.records[skillTag]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeMasteryRepo) Save(_ context.Context, rec *store.SkillMasteryData) error {
	cp := *rec
	f.records[rec.SkillTag] = &cp
	return nil
}

func (f *fakeMasteryRepo) All(_ context.Context) ([]store.SkillMasteryData, error) {
	var out []store.SkillMasteryData
	for _, rec := range f.records {
		out = append(out, *rec)
	}
	return out, nil
}

// fakeEventRepo records mastery transitions; the embedded interface
// covers the methods this package never calls.
type fakeEventRepo struct {
	store.EventRepo
	appended []store.MasteryEventData
	rows     []store.MasteryEventRow
}

func (f *fakeEventRepo) AppendMasteryEvent(_ context.Context, data store.MasteryEventData) error {
	f.appended = append(f.appended, data)
	return nil
}

func (f *fakeEventRepo) MasteryEventsBetween(_ context.Context, from, to time.Time) ([]store.MasteryEventRow, error) {
	var out []store.MasteryEventRow
	for _, row := range f.rows {
		if !row.Timestamp.Before(from) && row.Timestamp.Before(to) {
			out = append(out, row)
		}
	}
	return out, nil
}

func TestRecordAnswerCreatesRecord(t *testing.T) {
	ctx := context.Background()
	repo := newFakeMasteryRepo()
	svc := NewService(repo, nil, DefaultPolicy())

	transition, err := svc.RecordAnswer(ctx, "past_tense", true, "sess-1", testNow)
	if err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}
	if transition != nil {
		t.Errorf("one answer caused transition %s -> %s, want none", transition.From, transition.To)
	}

	rec := repo.records["past_tense"]
	if rec == nil {
		t.Fatal("record was not persisted")
	}
	if rec.Attempts != 1 || rec.Correct != 1 {
		t.Errorf("counters = %d/%d, want 1/1", rec.Correct, rec.Attempts)
	}
	if rec.State != string(StateNew) {
		t.Errorf("state = %s, want new", rec.State)
	}
	if rec.LastReviewedAt == nil || !rec.LastReviewedAt.Equal(testNow) {
		t.Error("lastReviewedAt not set to now")
	}
}

func TestRecordAnswerLogsTransition(t *testing.T) {
	ctx := context.Background()
	repo := newFakeMasteryRepo()
	events := &fakeEventRepo{}
	svc := NewService(repo, events, DefaultPolicy())

	// Repeated correct answers walk the score up past the first
	// upgrade threshold.
	var transition *StateTransition
	for i := 0; i < 6; i++ {
		tr, err := svc.RecordAnswer(ctx, "plurals", true, "sess-1", testNow.Add(time.Duration(i)*time.Minute))
		if err != nil {
			t.Fatalf("RecordAnswer #%d: %v", i, err)
		}
		if tr != nil && transition == nil {
			transition = tr
		}
	}

	if transition == nil {
		t.Fatal("sustained correct answers never upgraded the skill")
	}
	if transition.From != StateNew || transition.To != StateLearning {
		t.Errorf("first transition %s -> %s, want new -> learning", transition.From, transition.To)
	}
	if transition.Trigger != "upgrade" {
		t.Errorf("trigger = %s, want upgrade", transition.Trigger)
	}

	if len(events.appended) == 0 {
		t.Fatal("no mastery event was logged")
	}
	first := events.appended[0]
	if first.SkillTag != "plurals" || first.ToState != string(StateLearning) {
		t.Errorf("logged event = %+v", first)
	}
	if first.SessionID != "sess-1" {
		t.Errorf("session id = %s, want sess-1", first.SessionID)
	}
}

func TestRecordAnswerDowngradeTrigger(t *testing.T) {
	ctx := context.Background()
	repo := newFakeMasteryRepo()
	events := &fakeEventRepo{}
	repo.records["idioms"] = &store.SkillMasteryData{
		SkillTag: "idioms",
		Score:    90,
		State:    string(StateMastered),
		Attempts: 11,
		Correct:  8,
	}
	svc := NewService(repo, events, DefaultPolicy())

	transition, err := svc.RecordAnswer(ctx, "idioms", false, "", testNow)
	if err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}
	if transition == nil {
		t.Fatal("hard miss from mastered caused no transition")
	}
	if transition.To != StateConsolidated {
		t.Errorf("downgraded to %s, want consolidated", transition.To)
	}
	if transition.Trigger != "downgrade" {
		t.Errorf("trigger = %s, want downgrade", transition.Trigger)
	}
}

func TestGetUnknownSkillDefaultsToNew(t *testing.T) {
	svc := NewService(newFakeMasteryRepo(), nil, DefaultPolicy())
	rec, err := svc.Get(context.Background(), "unknown")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec.State != string(StateNew) || rec.Attempts != 0 {
		t.Errorf("default record = %+v, want fresh new state", rec)
	}
}

func TestAggregateSnapshotCountsAndDelta(t *testing.T) {
	ctx := context.Background()
	repo := newFakeMasteryRepo()
	repo.records["a"] = &store.SkillMasteryData{SkillTag: "a", State: string(StateMastered)}
	repo.records["b"] = &store.SkillMasteryData{SkillTag: "b", State: string(StateLearning)}
	repo.records["c"] = &store.SkillMasteryData{SkillTag: "c", State: string(StateLearning)}

	events := &fakeEventRepo{rows: []store.MasteryEventRow{
		{Timestamp: testNow.AddDate(0, 0, -2), FromState: string(StateConsolidated), ToState: string(StateMastered)},
		{Timestamp: testNow.AddDate(0, 0, -3), FromState: string(StateNew), ToState: string(StateLearning)},
		{Timestamp: testNow.AddDate(0, 0, -10), FromState: string(StateConsolidated), ToState: string(StateMastered)},
		{Timestamp: testNow.AddDate(0, 0, -12), FromState: string(StateConsolidated), ToState: string(StateMastered)},
	}}

	svc := NewService(repo, events, DefaultPolicy())
	snap, err := svc.AggregateSnapshot(ctx, 7, testNow)
	if err != nil {
		t.Fatalf("AggregateSnapshot: %v", err)
	}

	if snap.Total != 3 {
		t.Errorf("total = %d, want 3", snap.Total)
	}
	if snap.ByState[StateLearning] != 2 || snap.ByState[StateMastered] != 1 {
		t.Errorf("by-state counts wrong: %+v", snap.ByState)
	}
	if snap.NewlyMastered != 1 {
		t.Errorf("newly mastered = %d, want 1", snap.NewlyMastered)
	}
	if snap.MasteredDelta != -1 {
		t.Errorf("mastered delta = %d, want -1 (1 this window vs 2 before)", snap.MasteredDelta)
	}
}
