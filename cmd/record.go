package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lexora/srs/internal/review"
)

var recordCmd = &cobra.Command{
	Use:   "record <learner> <item> <answer-index>",
	Short: "Record an answer and reschedule the item",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, closeFn, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		index, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("answer index must be an integer: %w", err)
		}
		timeMs, _ := cmd.Flags().GetInt("time-ms")

		res, err := eng.RecordAttempt(cmd.Context(), review.AttemptRequest{
			LearnerID:      args[0],
			ItemID:         args[1],
			SelectedIndex:  index,
			ResponseTimeMs: timeMs,
			HasTiming:      timeMs > 0,
		})
		if err != nil {
			return err
		}

		verdict := "wrong"
		if res.Correct {
			verdict = "correct"
		}
		fmt.Printf("%s (quality %d)\n", verdict, res.Quality)
		fmt.Printf("ease %.2f, interval %dd, next review %s\n",
			res.Schedule.EaseFactor,
			res.Schedule.IntervalDays,
			res.Schedule.NextReview.Format("2006-01-02"))
		for _, id := range res.Unlocked {
			fmt.Printf("achievement unlocked: %s\n", id)
		}
		if res.Degraded {
			fmt.Println("note: streak update failed; the review itself is saved")
		}
		return nil
	},
}

func init() {
	recordCmd.Flags().Int("time-ms", 0, "Response latency in milliseconds (0 = not captured)")
}
