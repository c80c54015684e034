package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/tmaru/lexiquest/internal/mastery"
	"github.com/tmaru/lexiquest/internal/srs"
	"github.com/tmaru/lexiquest/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show review queue and skill mastery statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		now := time.Now().UTC()

		scheduler := srs.NewService(st.CardRepo(), st.MasteryRepo(), st.EventRepo(), srs.DefaultParams())
		cardStats, err := scheduler.GetStats(ctx, now)
		if err != nil {
			return fmt.Errorf("card stats: %w", err)
		}

		masterySvc := mastery.NewService(st.MasteryRepo(), st.EventRepo(), mastery.DefaultPolicy())
		agg, err := masterySvc.AggregateSnapshot(ctx, 30, now)
		if err != nil {
			return fmt.Errorf("mastery snapshot: %w", err)
		}

		fmt.Println(theme.Title.Render("Review Queue"))
		fmt.Printf("%s %d\n", theme.Label.Render("Total cards:"), cardStats.TotalCards)
		fmt.Printf("%s %d\n", theme.Label.Render("Due now:"), cardStats.DueNow)
		for _, state := range []srs.State{srs.StateNew, srs.StateLearning, srs.StateReview, srs.StateRelearning} {
			if n := cardStats.ByState[state]; n > 0 {
				fmt.Printf("  %-12s %d\n", state, n)
			}
		}
		fmt.Printf("%s %.0f%%\n", theme.Label.Render("Avg recall:"), cardStats.AvgRetrievable*100)

		fmt.Println()
		fmt.Println(theme.Title.Render("Skill Mastery"))
		fmt.Printf("%s %d\n", theme.Label.Render("Skills tracked:"), agg.Total)
		for _, state := range []mastery.MasteryState{
			mastery.StateNew, mastery.StateLearning, mastery.StateConsolidated, mastery.StateMastered,
		} {
			if n := agg.ByState[state]; n > 0 {
				fmt.Printf("  %-14s %d\n", state, n)
			}
		}
		fmt.Printf("%s %d in last %d days", theme.Label.Render("Newly mastered:"), agg.NewlyMastered, agg.WindowDays)
		switch {
		case agg.MasteredDelta > 0:
			fmt.Printf(" (%s)\n", theme.Good.Render(fmt.Sprintf("+%d vs prior", agg.MasteredDelta)))
		case agg.MasteredDelta < 0:
			fmt.Printf(" (%s)\n", theme.Bad.Render(fmt.Sprintf("%d vs prior", agg.MasteredDelta)))
		default:
			fmt.Println()
		}
		return nil
	},
}
