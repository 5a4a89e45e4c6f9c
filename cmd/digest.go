package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lexora/srs/internal/digest"
)

var digestCmd = &cobra.Command{
	Use:   "digest",
	Short: "Run the daily due-item digest",
	Long: `Scans every learner once a day and prints how many items each has
waiting for review. With --once the scan runs immediately and the command
exits; otherwise it stays resident until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, closeFn, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		sink := func(learnerID string, due int) {
			fmt.Printf("%s: %d item(s) due\n", learnerID, due)
		}
		d := digest.New(eng, eng, sink)

		once, _ := cmd.Flags().GetBool("once")
		if once {
			d.Scan()
			return nil
		}

		at, _ := cmd.Flags().GetString("at")
		if err := d.Start(at); err != nil {
			return err
		}
		defer d.Stop()

		fmt.Printf("digest scheduled daily at %s, ctrl-c to stop\n", at)
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		return nil
	},
}

func init() {
	digestCmd.Flags().String("at", "08:00", "Time of day to run the scan (HH:MM)")
	digestCmd.Flags().Bool("once", false, "Scan immediately and exit")
}
