package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset <learner>",
	Short: "Wipe a learner's schedules, streaks, achievements and sessions",
	Long: `Removes all scheduling progress for the learner. Attempt history is
kept for auditing and the learner stays registered. Requires --force.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			return fmt.Errorf("refusing to reset %s without --force", args[0])
		}

		eng, closeFn, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		if err := eng.Store().ResetLearner(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("progress for %s reset\n", args[0])
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Confirm the reset")
}
