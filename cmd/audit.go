package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tmaru/lexiquest/internal/insights"
	"github.com/tmaru/lexiquest/internal/ui/theme"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Cross-check profile counters against the event log",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		svc := insights.NewService(st.EventRepo(), st.MistakeRepo(), st.HistoryRepo(), st.ProfileRepo(), st.TaskRepo())
		snap, err := svc.GetDataConsistencyAudit(cmd.Context())
		if err != nil {
			return fmt.Errorf("run audit: %w", err)
		}

		fmt.Println(theme.Title.Render("Data Consistency Audit"))
		for _, check := range snap.Checks {
			fmt.Printf("%-20s expected %6d  actual %6d  %s\n",
				check.Name, check.Expected, check.Actual, statusBadge(check.Status))
		}
		fmt.Println("Overall:", statusBadge(snap.Status))
		return nil
	},
}
