package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/abhisek/recall/internal/knowledge"
	"github.com/abhisek/recall/internal/llm"
	"github.com/abhisek/recall/internal/mastery"
	"github.com/abhisek/recall/internal/plan"
	"github.com/abhisek/recall/internal/policy"
	"github.com/abhisek/recall/internal/store"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Manage learning plans",
}

var planCreateCmd = &cobra.Command{
	Use:   "create <file>...",
	Short: "Create a learning plan from one or more documents",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, pol, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider required for extraction: %w", err)
		}

		docs := make([]knowledge.SourceDocument, 0, len(args))
		for _, path := range args {
			content, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			docs = append(docs, knowledge.SourceDocument{
				Title:   title,
				Content: string(content),
			})
		}

		masterySvc := mastery.NewService(st.MasteryRepo(), pol.Delta)
		extractor := knowledge.New(provider, knowledge.DefaultConfig())
		svc := plan.NewService(st.PlanRepo(), st.SessionRepo(), extractor, masterySvc)

		fmt.Printf("Extracting knowledge units from %d document(s)...\n", len(docs))
		p, err := svc.CreateFromDocuments(ctx, docs)
		if err != nil {
			var none *plan.NoUnitsExtractedError
			if errors.As(err, &none) {
				return fmt.Errorf("nothing to study: %w", err)
			}
			return err
		}

		units, err := svc.Units(ctx, p.ID)
		if err != nil {
			return err
		}

		fmt.Printf("Created plan %s with %d units.\n", p.ID, len(units))
		fmt.Println("Run `recall` to start studying.")
		return nil
	},
}

var planListCmd = &cobra.Command{
	Use:   "list",
	Short: "List learning plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, pol, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		masterySvc := mastery.NewService(st.MasteryRepo(), pol.Delta)
		svc := plan.NewService(st.PlanRepo(), st.SessionRepo(), nil, masterySvc)

		plans, err := svc.List(ctx)
		if err != nil {
			return err
		}
		if len(plans) == 0 {
			fmt.Println("No plans yet. Create one with: recall plan create <files>")
			return nil
		}

		fmt.Printf("%-36s  %-12s  %5s  %8s  %6s  %s\n",
			"ID", "Created", "Units", "Mastered", "Avg", "Status")
		fmt.Println(strings.Repeat("─", 90))

		for _, p := range plans {
			sum, err := svc.Summarize(ctx, p.ID, pol.MasteredThreshold)
			if err != nil {
				return err
			}
			status := "active"
			if p.CompletedAt != nil {
				status = "completed"
			}
			fmt.Printf("%-36s  %-12s  %5d  %8d  %5.0f%%  %s\n",
				p.ID,
				p.CreatedAt.Local().Format("Jan 02, 2006"),
				sum.UnitCount-sum.RetiredCount,
				sum.MasteredCount,
				sum.AverageMastery*100,
				status,
			)
		}
		return nil
	},
}

var planShowCmd = &cobra.Command{
	Use:   "show <plan-id>",
	Short: "Show a plan's knowledge units and mastery levels",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, pol, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		masterySvc := mastery.NewService(st.MasteryRepo(), pol.Delta)
		svc := plan.NewService(st.PlanRepo(), st.SessionRepo(), nil, masterySvc)

		planID := args[0]
		sum, err := svc.Summarize(ctx, planID, pol.MasteredThreshold)
		if err != nil {
			return err
		}
		units, err := svc.Units(ctx, planID)
		if err != nil {
			return err
		}
		levels, err := masterySvc.Levels(ctx, planID)
		if err != nil {
			return err
		}

		fmt.Printf("Plan:     %s\n", planID)
		fmt.Printf("Created:  %s\n", sum.Plan.CreatedAt.Local().Format("Jan 02, 2006 15:04"))
		if sum.Plan.CompletedAt != nil {
			fmt.Printf("Completed: %s\n", sum.Plan.CompletedAt.Local().Format("Jan 02, 2006 15:04"))
		}
		fmt.Printf("Units:    %d (%d retired)   Mastered: %d   Average: %.0f%%\n",
			sum.UnitCount, sum.RetiredCount, sum.MasteredCount, sum.AverageMastery*100)
		fmt.Println()

		fmt.Printf("%-36s  %-5s  %5s  %s\n", "Unit", "Kind", "Level", "Text")
		fmt.Println(strings.Repeat("─", 100))
		for _, u := range units {
			text := u.Text
			if len(text) > 48 {
				text = text[:48] + "..."
			}
			if u.Retired {
				text += "  [retired]"
			}
			fmt.Printf("%-36s  %-5s  %4.0f%%  %s\n", u.ID, u.Kind, levels[u.ID]*100, text)
		}
		return nil
	},
}

var planCompleteCmd = &cobra.Command{
	Use:   "complete <plan-id>",
	Short: "Mark a plan as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, pol, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		masterySvc := mastery.NewService(st.MasteryRepo(), pol.Delta)
		svc := plan.NewService(st.PlanRepo(), st.SessionRepo(), nil, masterySvc)

		if err := svc.Complete(context.Background(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Plan %s marked completed.\n", args[0])
		return nil
	},
}

var planRetireCmd = &cobra.Command{
	Use:   "retire <plan-id> <unit-id>",
	Short: "Retire a knowledge unit from future sessions",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, pol, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		masterySvc := mastery.NewService(st.MasteryRepo(), pol.Delta)
		svc := plan.NewService(st.PlanRepo(), st.SessionRepo(), nil, masterySvc)

		if err := svc.RetireUnit(context.Background(), args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("Unit %s retired.\n", args[1])
		return nil
	},
}

// openStore resolves the DB path, opens the store, and loads policy.
func openStore(cmd *cobra.Command) (*store.Store, policy.Config, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, policy.Config{}, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, policy.Config{}, fmt.Errorf("open database: %w", err)
	}
	pol, err := policy.Load()
	if err != nil {
		st.Close()
		return nil, policy.Config{}, fmt.Errorf("load policy: %w", err)
	}
	return st, pol, nil
}

func init() {
	planCmd.AddCommand(planCreateCmd)
	planCmd.AddCommand(planListCmd)
	planCmd.AddCommand(planShowCmd)
	planCmd.AddCommand(planCompleteCmd)
	planCmd.AddCommand(planRetireCmd)
}
