package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tmaru/lexiquest/internal/llm"
	"github.com/tmaru/lexiquest/internal/mentor"
	"github.com/tmaru/lexiquest/internal/ui/theme"
)

var mentorCmd = &cobra.Command{
	Use:   "mentor",
	Short: "Analyze untagged mistakes with the configured LLM",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		cfg := llm.ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			discovered, ok := llm.DiscoverConfig()
			if !ok {
				return fmt.Errorf("no usable LLM configuration: %w", err)
			}
			cfg = discovered
		}
		provider, err := llm.NewProvider(cmd.Context(), cfg, st.EventRepo())
		if err != nil {
			return fmt.Errorf("build provider: %w", err)
		}

		mistakes := st.MistakeRepo()
		all, err := mistakes.All(cmd.Context())
		if err != nil {
			return fmt.Errorf("load mistakes: %w", err)
		}

		analyzer := mentor.NewAnalyzer(provider, mentor.DefaultAnalyzerConfig())
		candidates := mentor.AllCauses()

		analyzed := 0
		for _, m := range all {
			if m.CauseTag != "" && m.CauseTag != string(mentor.CauseUnclassified) {
				continue
			}
			if analyzed >= limit {
				break
			}

			result, err := analyzer.Analyze(cmd.Context(), &mentor.AnalysisRequest{
				SkillTag:      m.SkillTag,
				QuestionText:  m.QuestionText,
				CorrectAnswer: m.CorrectAnswer,
				LearnerAnswer: m.LearnerAnswer,
				Candidates:    candidates,
			})
			if err != nil {
				fmt.Printf("%-36s %s\n", m.MistakeID, theme.Bad.Render(fmt.Sprintf("failed: %v", err)))
				continue
			}

			if err := mistakes.Enrich(cmd.Context(), m.MistakeID,
				string(result.CauseTag), result.Analysis, result.RevengeQuestion); err != nil {
				return fmt.Errorf("save analysis for %s: %w", m.MistakeID, err)
			}
			analyzed++
			fmt.Printf("%-36s %s\n", m.MistakeID, theme.Good.Render(string(result.CauseTag)))
		}

		if analyzed == 0 {
			fmt.Println("No untagged mistakes to analyze.")
		} else {
			fmt.Printf("\nAnalyzed %d mistake(s).\n", analyzed)
		}
		return nil
	},
}

func init() {
	mentorCmd.Flags().IntP("limit", "n", 10, "Maximum mistakes to analyze")
	rootCmd.AddCommand(mentorCmd)
}
