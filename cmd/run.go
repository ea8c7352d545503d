package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/recall/internal/app"
	"github.com/abhisek/recall/internal/assess"
	"github.com/abhisek/recall/internal/grading"
	"github.com/abhisek/recall/internal/knowledge"
	"github.com/abhisek/recall/internal/llm"
	"github.com/abhisek/recall/internal/mastery"
	"github.com/abhisek/recall/internal/plan"
	"github.com/abhisek/recall/internal/policy"
	"github.com/abhisek/recall/internal/questiongen"
	"github.com/abhisek/recall/internal/store"
	"github.com/abhisek/recall/internal/study"
	"github.com/spf13/cobra"
)

// buildAppOptions opens the store and wires the services the TUI needs.
// The caller owns closing the returned store.
func buildAppOptions(cmd *cobra.Command) (*store.Store, app.Options, error) {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, app.Options{}, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, app.Options{}, fmt.Errorf("open store: %w", err)
	}

	pol, err := policy.Load()
	if err != nil {
		st.Close()
		return nil, app.Options{}, fmt.Errorf("load policy: %w", err)
	}

	eventRepo := st.EventRepo()
	masterySvc := mastery.NewService(st.MasteryRepo(), pol.Delta)

	opts := app.Options{
		Events:            eventRepo,
		MasteredThreshold: pol.MasteredThreshold,
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Study features will be unavailable.")
	} else {
		extractor := knowledge.New(provider, knowledge.DefaultConfig())
		generator := questiongen.New(provider, questiongen.DefaultConfig())
		grader := grading.New(provider, grading.DefaultConfig())

		opts.Generator = generator
		opts.Plans = plan.NewService(st.PlanRepo(), st.SessionRepo(), extractor, masterySvc)
		opts.Study = study.NewService(st.PlanRepo(), st.SessionRepo(), masterySvc, generator, eventRepo, study.Config{
			MasteredThreshold:   pol.MasteredThreshold,
			DefaultMaxQuestions: pol.DefaultMaxQuestions,
		})
		opts.Assess = assess.NewService(st.PlanRepo(), st.SessionRepo(), st.FeedbackRepo(), masterySvc, grader, eventRepo)
	}

	return st, opts, nil
}

// runApp launches the TUI on the home screen.
func runApp(cmd *cobra.Command) error {
	st, opts, err := buildAppOptions(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	return app.Run(opts)
}
