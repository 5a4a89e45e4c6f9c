package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lexora/srs/internal/plan"
	"github.com/lexora/srs/internal/store"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Create and inspect study plans",
}

var planCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Save a study-plan template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, closeFn, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		sets, _ := cmd.Flags().GetStringSlice("sets")
		if len(sets) == 0 {
			return fmt.Errorf("at least one --sets value is required")
		}
		targetStr, _ := cmd.Flags().GetString("target")
		target, err := time.ParseInLocation("2006-01-02", targetStr, time.Local)
		if err != nil {
			return fmt.Errorf("parse target date: %w", err)
		}
		strategy, _ := cmd.Flags().GetString("strategy")
		createdBy, _ := cmd.Flags().GetString("by")

		id, err := eng.Store().Plans().Create(cmd.Context(), store.PlanTemplate{
			Name:       args[0],
			SetIDs:     sets,
			TargetDate: target,
			Strategy:   plan.Strategy(strategy),
			CreatedBy:  createdBy,
		})
		if err != nil {
			return err
		}
		fmt.Printf("plan %s created\n", id)
		return nil
	},
}

var planShowCmd = &cobra.Command{
	Use:   "show <plan-id> <learner>",
	Short: "Project a saved plan onto a learner's current progress",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, closeFn, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		p, err := eng.PlanFromTemplate(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		printPlan(p)
		return nil
	},
}

var planBuildCmd = &cobra.Command{
	Use:   "build <learner>",
	Short: "Build a one-off plan without saving a template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, closeFn, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		sets, _ := cmd.Flags().GetStringSlice("sets")
		if len(sets) == 0 {
			return fmt.Errorf("at least one --sets value is required")
		}
		targetStr, _ := cmd.Flags().GetString("target")
		target, err := time.ParseInLocation("2006-01-02", targetStr, time.Local)
		if err != nil {
			return fmt.Errorf("parse target date: %w", err)
		}
		strategy, _ := cmd.Flags().GetString("strategy")

		p, err := eng.PlanStudySchedule(cmd.Context(), sets, target, plan.Strategy(strategy), args[0])
		if err != nil {
			return err
		}
		printPlan(p)
		return nil
	},
}

func printPlan(p *plan.Plan) {
	fmt.Printf("%d items remaining over %d days (%d new/day)\n",
		p.RemainingItems, p.DaysRemaining, p.DailyNewTarget)
	if !p.Achievable() {
		fmt.Println("warning: target date already reached with items outstanding")
	}
	for _, d := range p.Schedule {
		fmt.Printf("day %2d: %2d new + %2d reviews = %2d  [%s]\n",
			d.Day, d.NewCards, d.EstReviews, d.TotalLoad, strings.Join(d.Sets, ", "))
	}
}

func init() {
	planCmd.AddCommand(planCreateCmd, planShowCmd, planBuildCmd)

	for _, c := range []*cobra.Command{planCreateCmd, planBuildCmd} {
		c.Flags().StringSlice("sets", nil, "Item set IDs covered by the plan")
		c.Flags().String("target", "", "Target completion date (YYYY-MM-DD)")
		c.Flags().String("strategy", "balanced", "Pacing strategy: balanced or sequential")
	}
	planCreateCmd.Flags().String("by", "", "Learner or author the plan belongs to")
}
