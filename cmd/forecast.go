package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var forecastCmd = &cobra.Command{
	Use:   "forecast <learner>",
	Short: "Show upcoming review load per day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, closeFn, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		days, _ := cmd.Flags().GetInt("days")
		buckets, err := eng.GetForecast(cmd.Context(), args[0], days)
		if err != nil {
			return err
		}
		for _, b := range buckets {
			bar := strings.Repeat("#", b.Count)
			fmt.Printf("%s  %3d  %s\n", b.Date.Format("2006-01-02"), b.Count, bar)
		}
		return nil
	},
}

func init() {
	forecastCmd.Flags().Int("days", 7, "Forecast horizon in days")
}
