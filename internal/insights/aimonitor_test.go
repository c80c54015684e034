package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmaru/lexiquest/internal/store"
)

func llmRow(tier string, success, rateLimited bool) store.LLMRequestRow {
	return store.LLMRequestRow{
		Timestamp:   testNow.AddDate(0, 0, -1),
		Provider:    "anthropic",
		Model:       "claude",
		Tier:        tier,
		Success:     success,
		RateLimited: rateLimited,
	}
}

func tierByName(t *testing.T, snap AIRequestMonitorSnapshot, tier string) TierHealth {
	t.Helper()
	for _, th := range snap.Tiers {
		if th.Tier == tier {
			return th
		}
	}
	t.Fatalf("no tier %s in %v", tier, snap.Tiers)
	return TierHealth{}
}

func TestAIMonitorHealthyAtTargets(t *testing.T) {
	// Nine successes plus one rate-limited error: success 0.9 and
	// non-rate-limited 0.9 both sit at target.
	var rows []store.LLMRequestRow
	for i := 0; i < 9; i++ {
		rows = append(rows, llmRow("free", true, false))
	}
	rows = append(rows, llmRow("free", false, true))

	snap := ComputeAIRequestMonitorSnapshot(rows, testNow, DefaultAIMonitorPolicy())
	free := tierByName(t, snap, "free")

	assert.Equal(t, StatusHealthy, free.Status)
	assert.Equal(t, StatusMet, free.SuccessStatus)
	assert.Equal(t, StatusMet, free.RateLimitStatus)
	assert.InDelta(t, 0.9, free.SuccessRate, 0.001)
}

func TestAIMonitorCriticalOnlyWhenBothFail(t *testing.T) {
	// Four of five calls failing, every failure rate-limited: both
	// sub-metrics miss target together.
	rows := []store.LLMRequestRow{llmRow("paid", true, false)}
	for i := 0; i < 4; i++ {
		rows = append(rows, llmRow("paid", false, true))
	}

	snap := ComputeAIRequestMonitorSnapshot(rows, testNow, DefaultAIMonitorPolicy())
	paid := tierByName(t, snap, "paid")

	assert.Equal(t, StatusCritical, paid.Status)
	assert.Equal(t, StatusNotMet, paid.SuccessStatus)
	assert.Equal(t, StatusNotMet, paid.RateLimitStatus)
}

func TestAIMonitorSingleDegradedMetricIsWarning(t *testing.T) {
	// Failures without rate limiting: success misses, rate-limit
	// metric still holds, so the tier warns rather than trips.
	var rows []store.LLMRequestRow
	for i := 0; i < 5; i++ {
		rows = append(rows, llmRow("free", i < 2, false))
	}

	snap := ComputeAIRequestMonitorSnapshot(rows, testNow, DefaultAIMonitorPolicy())
	free := tierByName(t, snap, "free")

	assert.Equal(t, StatusWarning, free.Status)
	assert.Equal(t, StatusNotMet, free.SuccessStatus)
	assert.Equal(t, StatusMet, free.RateLimitStatus)
}

func TestAIMonitorInsufficientBelowCallFloor(t *testing.T) {
	rows := []store.LLMRequestRow{
		llmRow("free", false, true),
		llmRow("free", false, true),
	}

	snap := ComputeAIRequestMonitorSnapshot(rows, testNow, DefaultAIMonitorPolicy())
	free := tierByName(t, snap, "free")
	assert.Equal(t, StatusInsufficient, free.Status)
}

func TestAIMonitorSplitsTiers(t *testing.T) {
	var rows []store.LLMRequestRow
	for i := 0; i < 5; i++ {
		rows = append(rows, llmRow("free", true, false))
		rows = append(rows, llmRow("paid", false, false))
	}

	snap := ComputeAIRequestMonitorSnapshot(rows, testNow, DefaultAIMonitorPolicy())
	require.Len(t, snap.Tiers, 2)
	assert.Equal(t, StatusHealthy, tierByName(t, snap, "free").Status)
	assert.Equal(t, StatusWarning, tierByName(t, snap, "paid").Status)
}
