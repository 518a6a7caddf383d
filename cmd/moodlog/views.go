package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/unowned-ai/moodlog/pkg/records"
	"github.com/unowned-ai/moodlog/pkg/refresh"
	"github.com/unowned-ai/moodlog/pkg/wellness"
)

var (
	viewsStartFlag string
	viewsEndFlag   string
	viewsJSONFlag  bool
	viewsWatchFlag bool
)

var viewsCmd = &cobra.Command{
	Use:   "views",
	Short: "Show the mood distribution, balance, daily trend and insights",
	Long: `Compute every wellness view over the optional date window [--start, --end].
Both bounds are inclusive calendar dates (YYYY-MM-DD); either may be omitted.

With --watch the views are recomputed every refresh_interval until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		window, err := wellness.ParseWindow(viewsStartFlag, viewsEndFlag)
		if err != nil {
			return err
		}

		dbConn, err := openDB()
		if err != nil {
			return err
		}
		defer closeDB(dbConn)

		out := cmd.OutOrStdout()
		r := &refresh.Refresher{
			Interval: cfg.RefreshInterval,
			Clock:    refresh.RealClock(),
			Load: func(ctx context.Context) (wellness.Snapshot, error) {
				return records.LoadSnapshot(ctx, dbConn, cfg.User)
			},
			Log: log,
		}
		r.SetQuery(wellness.Query{Window: window, Location: location()})

		if !viewsWatchFlag {
			res, err := r.Refresh(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to compute views: %w", err)
			}
			return printViews(out, res)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		r.Publish = func(res refresh.Result) {
			if err := printViews(out, res); err != nil {
				log.Warn("Failed to print views", "error", err)
			}
		}
		return r.Run(ctx)
	},
}

func printViews(w io.Writer, res refresh.Result) error {
	if viewsJSONFlag {
		return printJSON(w, res)
	}

	v := res.Views
	fmt.Fprintf(w, "Window %s, computed %s\n\n", res.Window, res.ComputedAt.In(location()).Format("2006-01-02 15:04:05"))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tCOUNT\tSHARE")
	for _, c := range wellness.Categories {
		fmt.Fprintf(tw, "%s\t%d\t%.1f%%\n", c, v.Balance.Count(c), v.Percentage.Share(c))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nDaily trend:")
	if len(v.Trend) == 0 {
		fmt.Fprintln(w, "  (no moods)")
	}
	for _, p := range v.Trend {
		fmt.Fprintf(w, "  %s  %s\n", p.Date, p.AverageScore.StringFixed(2))
	}

	fmt.Fprintln(w, "\nInsights:")
	if len(v.Insights) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, i := range v.Insights {
		fmt.Fprintf(w, "  %s  %s\n", i.WeekStart, strings.ReplaceAll(i.Summary, "\n", " "))
	}
	fmt.Fprintln(w)
	return nil
}

func initViewsCmd() {
	viewsCmd.Flags().StringVar(&viewsStartFlag, "start", "", "First day of the window (YYYY-MM-DD)")
	viewsCmd.Flags().StringVar(&viewsEndFlag, "end", "", "Last day of the window (YYYY-MM-DD)")
	viewsCmd.Flags().BoolVar(&viewsJSONFlag, "json", false, "Print JSON")
	viewsCmd.Flags().BoolVarP(&viewsWatchFlag, "watch", "w", false, "Keep recomputing on the refresh interval")
}
