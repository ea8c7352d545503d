package cmd

import (
	"fmt"

	"github.com/abhisek/recall/internal/app"
	"github.com/spf13/cobra"
)

var studyCmd = &cobra.Command{
	Use:   "study [plan-id]",
	Short: "Start or resume a study session",
	Long:  "Opens the TUI directly in a study session. Without a plan id, the most recently created plan is used.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, opts, err := buildAppOptions(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if opts.Plans == nil {
			return fmt.Errorf("study requires a configured LLM provider")
		}

		planID := ""
		if len(args) == 1 {
			planID = args[0]
		} else {
			plans, err := opts.Plans.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(plans) == 0 {
				return fmt.Errorf("no plans yet; create one with: recall plan create <files>")
			}
			planID = plans[0].ID
		}

		opts.InitialPlanID = planID
		return app.Run(opts)
	},
}
