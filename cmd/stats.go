package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lexora/srs/internal/sm2"
)

var statsCmd = &cobra.Command{
	Use:   "stats <learner>",
	Short: "Show a learner's streak, progress and achievements",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, closeFn, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		ctx := cmd.Context()
		learner := args[0]

		info, err := eng.GetStreak(ctx, learner)
		if err != nil {
			return err
		}
		counts, err := eng.ClassificationCounts(ctx, learner)
		if err != nil {
			return err
		}
		accuracy, attempts, err := eng.Store().Attempts().Accuracy(ctx, learner)
		if err != nil {
			return err
		}

		fmt.Printf("streak: %d days (longest %d)\n", info.Streak.CurrentDays, info.Streak.LongestDays)
		fmt.Printf("learned: %d  mastered: %d\n", info.Streak.TotalLearned, info.Streak.TotalMastered)
		fmt.Printf("items: %d mastered / %d learning / %d struggling\n",
			counts[sm2.ClassMastered], counts[sm2.ClassLearning], counts[sm2.ClassStruggling])
		fmt.Printf("attempts: %d (%.0f%% correct)\n", attempts, accuracy*100)

		if len(info.Achievements) > 0 {
			fmt.Println("achievements:")
			for _, a := range info.Achievements {
				fmt.Printf("  %s  %s\n", a.AwardedAt.Format("2006-01-02"), a.AchievementID)
			}
		}
		return nil
	},
}
