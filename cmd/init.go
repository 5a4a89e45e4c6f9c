package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init <learner> <item>",
	Short: "Put an item on a learner's review schedule",
	Long: `Creates a fresh schedule entry (ease 2.5, due immediately) for the
given learner/item pair. If the pair already has a schedule it is left
untouched, so init is safe to run repeatedly.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, closeFn, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		state, err := eng.InitializeSchedule(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("%s scheduled for %s (ease %.2f, next review %s)\n",
			args[1], args[0], state.EaseFactor, state.NextReview.Format("2006-01-02"))
		return nil
	},
}
