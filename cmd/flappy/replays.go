package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/replay"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var flagListOnly bool

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "Browse recorded sessions",
	Long: `Open the replay browser. Select a recording and press enter to watch
it in the terminal, or d to delete it.

Only seeds, settings and inputs are recorded; everything else is
re-simulated on playback.

Examples:
  flappy replays
  flappy replays --list
  flappy replays show 3f2a9c1e-...
  flappy replays rm 3f2a9c1e-...`,
	Args: cobra.NoArgs,
	RunE: runReplays,
}

var replaysShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Re-simulate a recording and print a summary",
	Args:  cobra.ExactArgs(1),
	RunE:  runReplaysShow,
}

var replaysRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a recording",
	Args:  cobra.ExactArgs(1),
	RunE:  runReplaysRm,
}

func init() {
	replaysCmd.Flags().BoolVar(&flagListOnly, "list", false, "Print the list instead of opening the browser")
	replaysCmd.AddCommand(replaysShowCmd)
	replaysCmd.AddCommand(replaysRmCmd)
}

func openStore() (*storage.Store, error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, fmt.Errorf("opening replay journal: %w", err)
	}
	return store, nil
}

func runReplays(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if !flagListOnly {
		width, height := terminalSize()
		return tui.RunReplayBrowser(store, width, height)
	}

	infos, err := store.RecentReplays(50)
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Println("No replays recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSEED\tFRAMES\tLENGTH\tDATE")
	for _, info := range infos {
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\n",
			info.ID,
			info.Seed,
			info.Frames,
			info.Duration.Round(time.Second),
			info.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	return w.Flush()
}

func runReplaysShow(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	rec, err := store.Replay(args[0])
	if err != nil {
		return err
	}
	summary, err := replay.Simulate(rec)
	if err != nil {
		return fmt.Errorf("replay %s: %w", rec.ID, err)
	}

	fmt.Printf("Replay %s\n", rec.ID)
	fmt.Printf("  Recorded:     %s\n", rec.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("  Seed:         %d\n", rec.Seed)
	fmt.Printf("  Fingerprint:  %016x\n", rec.Fingerprint)
	fmt.Printf("  Length:       %s\n", rec.Duration().Round(time.Millisecond))
	fmt.Printf("  Frames:       %d\n", summary.Frames)
	fmt.Printf("  Ticks:        %d\n", summary.Ticks)
	fmt.Printf("  Resets:       %d\n", summary.Resets)
	fmt.Printf("  Pipes passed: %d\n", summary.PipesScored)
	fmt.Printf("  Best run:     %d\n", summary.Best)
	return nil
}

func runReplaysRm(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.DeleteReplay(args[0]); err != nil {
		return err
	}
	logger.Info("replay deleted", "id", args[0])
	return nil
}
