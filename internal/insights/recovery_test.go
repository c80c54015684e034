package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tmaru/lexiquest/internal/store"
)

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func recoveryRows(attempts, successes, failures int) []store.RecoveryEventRow {
	var rows []store.RecoveryEventRow
	add := func(action string, n int) {
		for i := 0; i < n; i++ {
			rows = append(rows, store.RecoveryEventRow{
				Timestamp: testNow.AddDate(0, 0, -1),
				SessionID: "sess",
				Action:    action,
			})
		}
	}
	add("attempt", attempts)
	add("success", successes)
	add("failure", failures)
	return rows
}

func TestSessionRecoveryBands(t *testing.T) {
	policy := DefaultRecoveryPolicy()

	cases := []struct {
		name      string
		attempts  int
		successes int
		status    Status
		rate      float64
	}{
		{"all recovered", 4, 4, StatusHealthy, 1.0},
		{"three of four", 4, 3, StatusWarning, 0.75},
		{"one of four", 4, 1, StatusCritical, 0.25},
		{"exactly healthy bar", 20, 17, StatusHealthy, 0.85},
		{"exactly warning bar", 20, 12, StatusWarning, 0.6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			snap := ComputeSessionRecoverySnapshot(recoveryRows(tc.attempts, tc.successes, tc.attempts-tc.successes), testNow, policy)
			assert.Equal(t, tc.status, snap.Status)
			assert.InDelta(t, tc.rate, snap.SuccessRate, 0.001)
			assert.Equal(t, tc.attempts, snap.Attempts)
		})
	}
}

func TestSessionRecoveryInsufficientBelowFloor(t *testing.T) {
	snap := ComputeSessionRecoverySnapshot(recoveryRows(2, 0, 2), testNow, DefaultRecoveryPolicy())
	assert.Equal(t, StatusInsufficient, snap.Status)
	assert.Zero(t, snap.SuccessRate)
}

func TestSessionRecoverySkipsOutOfWindowAndMalformedRows(t *testing.T) {
	rows := recoveryRows(4, 4, 0)
	rows = append(rows,
		store.RecoveryEventRow{Timestamp: testNow.AddDate(0, 0, -90), Action: "failure"},
		store.RecoveryEventRow{Action: "failure"}, // zero timestamp
		store.RecoveryEventRow{Timestamp: testNow.AddDate(0, 0, -1), Action: "unknown"},
	)

	snap := ComputeSessionRecoverySnapshot(rows, testNow, DefaultRecoveryPolicy())
	assert.Equal(t, StatusHealthy, snap.Status)
	assert.Equal(t, 0, snap.Failures)
}
