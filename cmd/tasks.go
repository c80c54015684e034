package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/tmaru/lexiquest/internal/quest"
	"github.com/tmaru/lexiquest/internal/ui/theme"
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Show this week's quest progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		now := time.Now().UTC()
		svc := quest.NewService(st.EventRepo(), st.TaskRepo())
		tasks, err := svc.WeeklyTasks(cmd.Context(), now)
		if err != nil {
			return fmt.Errorf("build weekly tasks: %w", err)
		}

		period := quest.PeriodStart(now)
		fmt.Println(theme.Title.Render("Weekly Quests"))
		fmt.Println(theme.Hint.Render(fmt.Sprintf("week of %s", period.Format("2006-01-02"))))

		for _, task := range tasks {
			bar := progressBar(task.Progress, task.Goal, 20)
			line := fmt.Sprintf("%-18s %s %3d/%d", task.TaskID, bar, task.Progress, task.Goal)
			if task.CompletedAt != nil {
				line += "  " + theme.Good.Render("done "+task.CompletedAt.Format("Mon 15:04"))
			}
			fmt.Println(line)
		}
		return nil
	},
}

func progressBar(progress, goal, width int) string {
	if goal <= 0 {
		goal = 1
	}
	filled := progress * width / goal
	if filled > width {
		filled = width
	}
	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	return bar
}
