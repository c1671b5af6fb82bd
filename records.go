package main

import (
	"fmt"

	"github.com/mlinden4/cs181g-unit3/config"
	"github.com/mlinden4/cs181g-unit3/shared/progress"
	"github.com/mlinden4/cs181g-unit3/storage"
	"github.com/spf13/cobra"
)

var recordsCmd = &cobra.Command{
	Use:   "records [minigame]",
	Short: "Show minigame records",
	Long: `Without an argument, show wins, losses and the best time for every
minigame, followed by the latest attempts. With a minigame name
(simon-says, connect-wires, mining), show its fastest wins.

Examples:
  escape records
  escape records mining`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRecords,
}

func runRecords(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(config.Records.Path)
	if err != nil {
		return fmt.Errorf("opening records database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	limit := config.Records.Limit

	if len(args) == 1 {
		kind := args[0]
		if !isMinigame(kind) {
			return fmt.Errorf("unknown minigame %q", kind)
		}
		best, err := store.BestTimes(kind, limit)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "Fastest wins - %s\n\n", kind)
		if len(best) == 0 {
			fmt.Fprintln(out, "No wins recorded yet.")
			return nil
		}
		fmt.Fprintf(out, "  %-4s  %-8s  %-7s  %s\n", "Rank", "Time", "Stage", "Date")
		fmt.Fprintf(out, "  %-4s  %-8s  %-7s  %s\n", "----", "----", "-----", "----")
		for i, r := range best {
			fmt.Fprintf(out, "  %-4d  %-8s  %-7s  %s\n", i+1, seconds(r.Ticks), r.Stage, r.CreatedAt.Format("2006-01-02 15:04"))
		}
		return nil
	}

	sums, err := store.Summaries()
	if err != nil {
		return err
	}
	if len(sums) == 0 {
		fmt.Fprintln(out, "No minigames played yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-14s  %-4s  %-6s  %s\n", "Minigame", "Wins", "Losses", "Best")
	fmt.Fprintf(out, "  %-14s  %-4s  %-6s  %s\n", "--------", "----", "------", "----")
	for _, s := range sums {
		best := "-"
		if s.BestTicks > 0 {
			best = seconds(s.BestTicks)
		}
		fmt.Fprintf(out, "  %-14s  %-4d  %-6d  %s\n", s.Kind, s.Wins, s.Losses, best)
	}

	recent, err := store.Recent(limit)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Latest attempts")
	for _, r := range recent {
		result := "quit"
		if r.Won {
			result = "won"
		}
		fmt.Fprintf(out, "  %s  %-14s  %-4s  %s\n", r.CreatedAt.Format("2006-01-02 15:04"), r.Kind, result, seconds(r.Ticks))
	}
	return nil
}

func isMinigame(kind string) bool {
	for _, m := range []progress.Mode{progress.ModeSimonSays, progress.ModeConnectWires, progress.ModeMining} {
		if m.String() == kind {
			return true
		}
	}
	return false
}

func seconds(ticks int) string {
	return fmt.Sprintf("%.1fs", float64(ticks)/float64(config.C.TPS))
}
