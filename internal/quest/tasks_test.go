package quest

import (
	"testing"
	"time"

	"github.com/tmaru/lexiquest/internal/store"
)

// Tuesday of an arbitrary week.
var testNow = time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

func TestPeriodStartAnchorsOnMonday(t *testing.T) {
	monday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		now  time.Time
	}{
		{"monday midnight", monday},
		{"tuesday afternoon", testNow},
		{"sunday night", time.Date(2026, 3, 15, 23, 59, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PeriodStart(tc.now); !got.Equal(monday) {
				t.Errorf("PeriodStart(%v) = %v, want %v", tc.now, got, monday)
			}
		})
	}

	nextMonday := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	if got := PeriodStart(nextMonday.Add(time.Hour)); !got.Equal(nextMonday) {
		t.Errorf("next week anchored at %v, want %v", got, nextMonday)
	}
}

func answerEvent(ts time.Time, source store.Source, result store.Result) store.LearningEventRow {
	return store.LearningEventRow{
		Timestamp: ts,
		EventType: store.EventAnswer,
		Source:    source,
		Result:    result,
	}
}

func dailyComplete(ts time.Time) store.LearningEventRow {
	return store.LearningEventRow{
		Timestamp: ts,
		EventType: store.EventSessionComplete,
		Source:    store.SourceDaily,
	}
}

func taskByID(t *testing.T, tasks []store.TaskData, id string) store.TaskData {
	t.Helper()
	for _, task := range tasks {
		if task.TaskID == id {
			return task
		}
	}
	t.Fatalf("no task %s in %v", id, tasks)
	return store.TaskData{}
}

func TestBuildWeeklyTasksCountsProgress(t *testing.T) {
	period := PeriodStart(testNow)
	var events []store.LearningEventRow
	for i := 0; i < 3; i++ {
		events = append(events, dailyComplete(period.Add(time.Duration(i)*time.Hour)))
	}
	for i := 0; i < 7; i++ {
		events = append(events, answerEvent(period.Add(time.Duration(i)*time.Minute), store.SourceSRS, store.ResultCorrect))
	}
	// Wrong battle answers do not count toward precision.
	events = append(events,
		answerEvent(period.Add(time.Hour), store.SourceBattle, store.ResultCorrect),
		answerEvent(period.Add(2*time.Hour), store.SourceBattle, store.ResultWrong),
	)
	// Events from before the period are excluded.
	events = append(events, dailyComplete(period.Add(-time.Hour)))

	tasks := BuildWeeklyTasks(events, testNow, nil)

	if len(tasks) != 3 {
		t.Fatalf("got %d tasks, want 3", len(tasks))
	}
	daily := taskByID(t, tasks, "daily_challenge")
	if daily.Progress != 3 || daily.Status != "active" || daily.CompletedAt != nil {
		t.Errorf("daily_challenge = %+v, want progress 3, active", daily)
	}
	srs := taskByID(t, tasks, "srs_reviews")
	if srs.Progress != 7 || srs.Goal != 20 {
		t.Errorf("srs_reviews = %+v, want progress 7 of 20", srs)
	}
	battle := taskByID(t, tasks, "battle_precision")
	if battle.Progress != 1 {
		t.Errorf("battle_precision progress = %d, want 1 (wrong answers excluded)", battle.Progress)
	}
}

func TestBuildWeeklyTasksCompletesAtGoalEvent(t *testing.T) {
	period := PeriodStart(testNow)
	var events []store.LearningEventRow
	for i := 0; i < 6; i++ {
		events = append(events, dailyComplete(period.Add(time.Duration(i)*time.Hour)))
	}

	tasks := BuildWeeklyTasks(events, testNow, nil)
	daily := taskByID(t, tasks, "daily_challenge")

	if daily.Status != "completed" {
		t.Fatalf("status = %s, want completed", daily.Status)
	}
	if daily.CompletedAt == nil {
		t.Fatal("completedAt not set")
	}
	// The fifth matching event reached the goal of 5.
	want := period.Add(4 * time.Hour)
	if !daily.CompletedAt.Equal(want) {
		t.Errorf("completedAt = %v, want %v", daily.CompletedAt, want)
	}
}

func TestBuildWeeklyTasksPreservesCompletedAt(t *testing.T) {
	period := PeriodStart(testNow)
	var events []store.LearningEventRow
	for i := 0; i < 5; i++ {
		events = append(events, dailyComplete(period.Add(time.Duration(i)*time.Hour)))
	}

	recorded := period.Add(30 * time.Minute)
	existing := []store.TaskData{{
		TaskID:      "daily_challenge",
		PeriodStart: period,
		Progress:    5,
		Goal:        5,
		Status:      "completed",
		CompletedAt: &recorded,
	}}

	// Rebuild later, with more events landed since.
	events = append(events, dailyComplete(period.Add(26*time.Hour)))
	tasks := BuildWeeklyTasks(events, testNow.AddDate(0, 0, 2), existing)

	daily := taskByID(t, tasks, "daily_challenge")
	if daily.Status != "completed" {
		t.Errorf("status = %s, want completed", daily.Status)
	}
	if daily.CompletedAt == nil || !daily.CompletedAt.Equal(recorded) {
		t.Errorf("completedAt = %v, want preserved %v", daily.CompletedAt, recorded)
	}
	if daily.Progress != 6 {
		t.Errorf("progress = %d, want refreshed 6", daily.Progress)
	}
}

func TestBuildWeeklyTasksIgnoresOtherPeriodRows(t *testing.T) {
	period := PeriodStart(testNow)
	lastWeek := period.AddDate(0, 0, -7)
	stale := lastWeek.Add(time.Hour)

	existing := []store.TaskData{{
		TaskID:      "daily_challenge",
		PeriodStart: lastWeek,
		Status:      "completed",
		CompletedAt: &stale,
	}}

	tasks := BuildWeeklyTasks(nil, testNow, existing)
	daily := taskByID(t, tasks, "daily_challenge")
	if daily.Status != "active" || daily.CompletedAt != nil {
		t.Errorf("last week's completion leaked into this period: %+v", daily)
	}
}

func TestBuildWeeklyTasksEvidenceCapsAtFiveMostRecentFirst(t *testing.T) {
	period := PeriodStart(testNow)
	var events []store.LearningEventRow
	for i := 0; i < 8; i++ {
		e := answerEvent(period.Add(time.Duration(i)*time.Hour), store.SourceSRS, store.ResultCorrect)
		e.SkillTag = "plurals"
		events = append(events, e)
	}

	tasks := BuildWeeklyTasks(events, testNow, nil)
	srs := taskByID(t, tasks, "srs_reviews")

	if len(srs.Evidence) != 5 {
		t.Fatalf("evidence length = %d, want 5", len(srs.Evidence))
	}
	if !srs.Evidence[0].Timestamp.Equal(period.Add(7 * time.Hour)) {
		t.Errorf("first evidence = %v, want most recent event", srs.Evidence[0].Timestamp)
	}
	for i := 1; i < len(srs.Evidence); i++ {
		if srs.Evidence[i].Timestamp.After(srs.Evidence[i-1].Timestamp) {
			t.Fatalf("evidence not in most-recent-first order at %d", i)
		}
	}
	if srs.Evidence[0].SkillTag != "plurals" || srs.Evidence[0].Source != "srs" {
		t.Errorf("evidence fields not copied: %+v", srs.Evidence[0])
	}
}
