package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/tmaru/lexiquest/internal/insights"
	"github.com/tmaru/lexiquest/internal/ui/theme"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show the guardian dashboard (engagement, causes, recovery, AI health)",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		now := time.Now().UTC()
		svc := insights.NewService(st.EventRepo(), st.MistakeRepo(), st.HistoryRepo(), st.ProfileRepo(), st.TaskRepo())

		var sections []string

		if snap, err := svc.GetEngagementSnapshot(ctx, now); err == nil {
			sections = append(sections, renderEngagement(snap))
		} else {
			sections = append(sections, sectionError("Engagement", err))
		}

		if trends, err := svc.GetRepeatedCauseTrends(ctx, now); err == nil {
			sections = append(sections, renderCauseTrends(trends))
		} else {
			sections = append(sections, sectionError("Repeated Causes", err))
		}

		if snap, err := svc.GetSessionRecoverySnapshot(ctx, now); err == nil {
			sections = append(sections, renderRecovery(snap))
		} else {
			sections = append(sections, sectionError("Session Recovery", err))
		}

		if snap, err := svc.GetAIRequestMonitorSnapshot(ctx, now); err == nil {
			sections = append(sections, renderAIMonitor(snap))
		} else {
			sections = append(sections, sectionError("AI Requests", err))
		}

		if snap, err := svc.GetGuardianAcceptanceSnapshot(ctx, now); err == nil {
			sections = append(sections, renderAcceptance(snap))
		} else {
			sections = append(sections, sectionError("Weekly Acceptance", err))
		}

		if snap, err := svc.GetDataConsistencyAudit(ctx); err == nil {
			sections = append(sections, renderAudit(snap))
		} else {
			sections = append(sections, sectionError("Data Consistency", err))
		}

		fmt.Println(theme.Title.Render("LexiQuest Guardian Report"))
		fmt.Println(theme.Hint.Render(now.Format("2006-01-02 15:04 UTC")))
		for _, s := range sections {
			fmt.Println(theme.Card.Render(s))
		}
		return nil
	},
}

func sectionError(name string, err error) string {
	return fmt.Sprintf("%s\n%s", theme.Section.Render(name),
		theme.Bad.Render(fmt.Sprintf("unavailable: %v", err)))
}

func statusBadge(s insights.Status) string {
	switch s {
	case insights.StatusMet, insights.StatusPassed, insights.StatusHealthy:
		return theme.Good.Render(string(s))
	case insights.StatusWarning:
		return theme.Warn.Render(string(s))
	case insights.StatusNotMet, insights.StatusCritical:
		return theme.Bad.Render(string(s))
	default:
		return theme.Neutral.Render(string(s))
	}
}

func renderMetric(name string, m insights.Metric) string {
	return fmt.Sprintf("%-28s %5.0f%%  (was %3.0f%%)  %s",
		name, m.CurrentRate*100, m.PreviousRate*100, statusBadge(m.Status))
}

func renderEngagement(snap *insights.EngagementSnapshot) string {
	var b strings.Builder
	b.WriteString(theme.Section.Render("Engagement (7 days)"))
	b.WriteString("\n")
	b.WriteString(renderMetric("Daily challenge days", snap.DailyChallengeParticipation))
	b.WriteString("\n")
	b.WriteString(renderMetric("Weekly task completion", snap.WeeklyTaskCompletion))
	b.WriteString("\n")
	b.WriteString(renderMetric("Next-day retention", snap.NextDayRetention))
	return b.String()
}

func renderCauseTrends(trends []insights.RepeatedCauseTrend) string {
	var b strings.Builder
	b.WriteString(theme.Section.Render("Repeated Mistake Causes"))
	for _, tr := range trends {
		b.WriteString(fmt.Sprintf("\n%2dd window: %4.0f%% repeat rate (was %3.0f%%)  %s",
			tr.WindowDays, tr.Current.RepeatRate*100, tr.Previous.RepeatRate*100, statusBadge(tr.Status)))
	}
	if len(trends) > 0 && len(trends[len(trends)-1].Current.TopCauses) > 0 {
		b.WriteString("\n" + theme.Label.Render("Top causes:"))
		for _, c := range trends[len(trends)-1].Current.TopCauses {
			b.WriteString(fmt.Sprintf(" %s(%d)", c.CauseTag, c.Count))
		}
	}
	return b.String()
}

func renderRecovery(snap *insights.SessionRecoverySnapshot) string {
	var b strings.Builder
	b.WriteString(theme.Section.Render("Session Recovery (30 days)"))
	b.WriteString(fmt.Sprintf("\n%d resume attempts, %d recovered, %d lost",
		snap.Attempts, snap.Successes, snap.Failures))
	b.WriteString(fmt.Sprintf("\nRecovery rate %.0f%%  %s", snap.SuccessRate*100, statusBadge(snap.Status)))
	return b.String()
}

func renderAIMonitor(snap *insights.AIRequestMonitorSnapshot) string {
	var b strings.Builder
	b.WriteString(theme.Section.Render("AI Requests (7 days)"))
	if len(snap.Tiers) == 0 {
		b.WriteString("\n" + theme.Neutral.Render("no LLM traffic"))
		return b.String()
	}
	for _, tier := range snap.Tiers {
		b.WriteString(fmt.Sprintf("\n%-5s tier: %3d calls, %3.0f%% success, %3.0f%% unthrottled  %s",
			tier.Tier, tier.Calls, tier.SuccessRate*100, tier.NonRateLimitedRate*100, statusBadge(tier.Status)))
	}
	return b.String()
}

func renderAcceptance(snap *insights.GuardianAcceptanceSnapshot) string {
	var b strings.Builder
	b.WriteString(theme.Section.Render("Weekly Acceptance"))
	b.WriteString(fmt.Sprintf("\nActive days %d/7 (was %d/7)", snap.CurrentActiveDays, snap.PreviousActiveDays))
	if snap.Status != insights.StatusInsufficient {
		b.WriteString(fmt.Sprintf(", lift %+.0f%%", snap.Lift*100))
	}
	b.WriteString("  " + statusBadge(snap.Status))
	return b.String()
}

func renderAudit(snap *insights.DataConsistencyAuditSnapshot) string {
	var b strings.Builder
	b.WriteString(theme.Section.Render("Data Consistency"))
	for _, check := range snap.Checks {
		b.WriteString(fmt.Sprintf("\n%-20s expected %6d, actual %6d  %s",
			check.Name, check.Expected, check.Actual, statusBadge(check.Status)))
	}
	b.WriteString("\nOverall " + statusBadge(snap.Status))
	return b.String()
}
