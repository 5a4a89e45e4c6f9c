package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lexora/srs/internal/engine"
	"github.com/lexora/srs/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "srs",
	Short: "Lexora spaced-repetition scheduling engine",
	Long: "srs schedules reviews, tracks streaks and achievements, and forecasts\n" +
		"study plans for the Lexora learning platform.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SRS_DB env var)")

	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(dueCmd)
	rootCmd.AddCommand(forecastCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(digestCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SRS_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openEngine opens the store and builds the engine. The returned closer must
// be deferred.
func openEngine(cmd *cobra.Command) (*engine.Engine, func(), error) {
	path, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, err
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return engine.New(st), func() { st.Close() }, nil
}
