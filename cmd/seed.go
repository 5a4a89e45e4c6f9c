package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Register learners and items in the catalog",
}

var seedLearnerCmd = &cobra.Command{
	Use:   "learner <id> [display-name]",
	Short: "Register a learner",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, closeFn, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		name := args[0]
		if len(args) > 1 {
			name = args[1]
		}
		if err := eng.Store().Catalog().RegisterLearner(cmd.Context(), args[0], name); err != nil {
			return err
		}
		fmt.Printf("learner %s registered\n", args[0])
		return nil
	},
}

var seedItemCmd = &cobra.Command{
	Use:   "item <id>",
	Short: "Register a study item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, closeFn, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		setID, _ := cmd.Flags().GetString("set")
		prompt, _ := cmd.Flags().GetString("prompt")
		choices, _ := cmd.Flags().GetStringSlice("choices")
		answer, _ := cmd.Flags().GetInt("answer")

		if err := eng.Store().Catalog().RegisterItem(cmd.Context(), args[0], setID, prompt, choices, answer); err != nil {
			return err
		}
		fmt.Printf("item %s registered in set %s\n", args[0], setID)
		return nil
	},
}

func init() {
	seedCmd.AddCommand(seedLearnerCmd, seedItemCmd)

	seedItemCmd.Flags().String("set", "default", "Item set the item belongs to")
	seedItemCmd.Flags().String("prompt", "", "Question text")
	seedItemCmd.Flags().StringSlice("choices", nil, "Answer choices in order")
	seedItemCmd.Flags().Int("answer", 0, "Index of the correct choice")
}
