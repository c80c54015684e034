package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/tmaru/lexiquest/internal/llm"
	"github.com/tmaru/lexiquest/internal/ui/theme"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect LLM configuration and request history",
}

var llmProbeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Resolve and verify the LLM provider configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := llm.ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			discovered, ok := llm.DiscoverConfig()
			if !ok {
				return fmt.Errorf("no usable configuration: %w", err)
			}
			cfg = discovered
			fmt.Println(theme.Hint.Render("using discovered API key"))
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		provider, err := llm.NewProvider(cmd.Context(), cfg, st.EventRepo())
		if err != nil {
			return fmt.Errorf("build provider: %w", err)
		}

		fmt.Printf("%s %s\n", theme.Label.Render("Provider:"), cfg.Provider)
		fmt.Printf("%s %s\n", theme.Label.Render("Tier:"), provider.Tier())
		fmt.Printf("%s %s\n", theme.Label.Render("Model:"), provider.ModelID())
		return nil
	},
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM request events",
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _ := cmd.Flags().GetInt("days")
		purpose, _ := cmd.Flags().GetString("purpose")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		now := time.Now().UTC()
		rows, err := st.EventRepo().LLMRequestsBetween(cmd.Context(), now.AddDate(0, 0, -days), now)
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		if len(rows) == 0 {
			fmt.Println("No LLM events found.")
			return nil
		}

		fmt.Printf("%-19s  %-16s  %-24s  %-4s  %6s  %6s  %7s  %s\n",
			"Timestamp", "Purpose", "Model", "Tier", "In", "Out", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 100))

		for _, e := range rows {
			if purpose != "" && e.Purpose != purpose {
				continue
			}
			ok := "✓"
			switch {
			case e.RateLimited:
				ok = "⏳"
			case !e.Success:
				ok = "✗"
			}
			model := e.Model
			if len(model) > 24 {
				model = model[:24]
			}
			fmt.Printf("%-19s  %-16s  %-24s  %-4s  %6d  %6d  %7d  %s\n",
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Purpose,
				model,
				e.Tier,
				e.InputTokens,
				e.OutputTokens,
				e.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

func init() {
	llmListCmd.Flags().IntP("days", "d", 7, "How many days back to list")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (e.g. mistake-analysis)")

	llmCmd.AddCommand(llmProbeCmd)
	llmCmd.AddCommand(llmListCmd)
}
