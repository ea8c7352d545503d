package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/recall/internal/mastery"
	"github.com/abhisek/recall/internal/plan"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <plan-id>",
	Short: "Show mastery statistics and history for a plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		unitID, _ := cmd.Flags().GetString("unit")
		limit, _ := cmd.Flags().GetInt("limit")

		st, pol, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		planID := args[0]

		masterySvc := mastery.NewService(st.MasteryRepo(), pol.Delta)
		svc := plan.NewService(st.PlanRepo(), st.SessionRepo(), nil, masterySvc)

		sum, err := svc.Summarize(ctx, planID, pol.MasteredThreshold)
		if err != nil {
			return err
		}

		fmt.Printf("Plan %s\n", planID)
		fmt.Printf("Units: %d (%d retired)   Mastered: %d   Average mastery: %.0f%%\n",
			sum.UnitCount, sum.RetiredCount, sum.MasteredCount, sum.AverageMastery*100)
		fmt.Printf("Sessions: %d (%d incomplete)\n", sum.SessionCount, len(sum.Incomplete))
		for _, sp := range sum.Incomplete {
			fmt.Printf("  %s  started %s  %d/%d assessed\n",
				sp.SessionID,
				sp.CreatedAt.Local().Format("2006-01-02 15:04"),
				sp.Assessed, sp.Total)
		}

		history, err := st.EventRepo().MasteryHistory(ctx, planID, unitID)
		if err != nil {
			return fmt.Errorf("load mastery history: %w", err)
		}
		if len(history) == 0 {
			fmt.Println("\nNo mastery changes recorded yet.")
			return nil
		}

		fmt.Println()
		fmt.Println("Mastery history")
		fmt.Println(strings.Repeat("─", 92))
		fmt.Printf("%-19s  %-36s  %5s  %5s  %s\n", "Timestamp", "Unit", "From", "To", "Trigger")
		fmt.Println(strings.Repeat("─", 92))

		start := 0
		if limit > 0 && len(history) > limit {
			start = len(history) - limit
		}
		for _, e := range history[start:] {
			fmt.Printf("%-19s  %-36s  %4.0f%%  %4.0f%%  %s\n",
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.UnitID,
				e.FromLevel*100,
				e.ToLevel*100,
				e.Trigger,
			)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().StringP("unit", "u", "", "Filter history to one unit")
	statsCmd.Flags().IntP("limit", "n", 50, "Number of history entries to show")
}
