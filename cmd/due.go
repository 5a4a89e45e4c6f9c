package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var dueCmd = &cobra.Command{
	Use:   "due <learner>",
	Short: "List items due for review, most overdue first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, closeFn, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		items, err := eng.GetDueItems(cmd.Context(), args[0], time.Now())
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Println("nothing due")
			return nil
		}
		for _, id := range items {
			fmt.Println(id)
		}
		return nil
	},
}
