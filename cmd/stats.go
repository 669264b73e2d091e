package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/mathtravel/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lifetime play statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		events := st.EventRepo()

		total, correct, err := events.AnswerTotals(ctx)
		if err != nil {
			return fmt.Errorf("answer totals: %w", err)
		}
		tickets, err := events.TicketTotal(ctx)
		if err != nil {
			return fmt.Errorf("ticket total: %w", err)
		}
		sessions, err := events.QuerySessionSummaries(ctx, store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("session summaries: %w", err)
		}

		fmt.Println("Lifetime stats")
		fmt.Println(strings.Repeat("─", 40))
		fmt.Printf("%-22s %d\n", "Questions answered", total)
		fmt.Printf("%-22s %d\n", "Correct", correct)
		if total > 0 {
			fmt.Printf("%-22s %.0f%%\n", "Accuracy", float64(correct)/float64(total)*100)
		}
		fmt.Printf("%-22s %d\n", "Tickets", tickets)
		fmt.Printf("%-22s %d\n", "Sessions played", len(sessions))

		byType, err := events.AccuracyByMathType(ctx)
		if err != nil {
			return fmt.Errorf("accuracy by type: %w", err)
		}
		if len(byType) > 0 {
			fmt.Println()
			fmt.Println("By math type")
			fmt.Println(strings.Repeat("─", 40))
			for _, name := range []string{"addition", "subtraction", "multiplication", "division", "fractions"} {
				stat, ok := byType[name]
				if !ok || stat.Total == 0 {
					continue
				}
				fmt.Printf("%-22s %d/%d (%.0f%%)\n", name, stat.Correct, stat.Total,
					float64(stat.Correct)/float64(stat.Total)*100)
			}
		}

		if len(sessions) > 0 {
			fmt.Println()
			fmt.Println("Recent sessions")
			fmt.Println(strings.Repeat("─", 40))
			limit := 5
			if len(sessions) < limit {
				limit = len(sessions)
			}
			for _, s := range sessions[:limit] {
				fmt.Printf("%s  %2d answered, %2d correct, 🎟 %d\n",
					s.Timestamp.Format("2006-01-02 15:04"),
					s.QuestionsAnswered, s.CorrectAnswers, s.TicketsEarned)
			}
		}
		return nil
	},
}
