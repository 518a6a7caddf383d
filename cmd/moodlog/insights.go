package main

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/unowned-ai/moodlog/pkg/records"
	"github.com/unowned-ai/moodlog/pkg/wellness"
)

var (
	insightWeekFlag    string
	insightSummaryFlag string
	insightJSONFlag    bool
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Manage weekly reflections",
	Long:  `Write, list, inspect and delete weekly reflections.`,
}

var createInsightCmd = &cobra.Command{
	Use:   "create",
	Short: "Write a weekly reflection",
	RunE: func(cmd *cobra.Command, args []string) error {
		var weekStart civil.Date
		if strings.TrimSpace(insightWeekFlag) != "" {
			d, err := wellness.ParseDate(insightWeekFlag)
			if err != nil {
				return err
			}
			weekStart = d
		}

		dbConn, err := openDB()
		if err != nil {
			return err
		}
		defer closeDB(dbConn)

		insight, err := records.CreateInsight(cmd.Context(), dbConn, cfg.User, weekStart, insightSummaryFlag)
		if err != nil {
			return fmt.Errorf("failed to create insight: %w", err)
		}
		return printInsight(cmd, insight)
	},
}

var listInsightsCmd = &cobra.Command{
	Use:   "list",
	Short: "List every weekly reflection",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbConn, err := openDB()
		if err != nil {
			return err
		}
		defer closeDB(dbConn)

		insights, err := records.ListInsights(cmd.Context(), dbConn, cfg.User)
		if err != nil {
			return fmt.Errorf("failed to list insights: %w", err)
		}
		if insightJSONFlag {
			return printJSON(cmd.OutOrStdout(), insights)
		}
		if len(insights) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No reflections yet.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tWEEK\tSUMMARY")
		for _, i := range insights {
			fmt.Fprintf(w, "%s\t%s\t%s\n", i.ID, i.WeekStart, i.Summary)
		}
		return w.Flush()
	},
}

var getInsightCmd = &cobra.Command{
	Use:   "get [insight-id]",
	Short: "Get a weekly reflection by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		insightID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid insight ID: %w", err)
		}

		dbConn, err := openDB()
		if err != nil {
			return err
		}
		defer closeDB(dbConn)

		insight, err := records.GetInsight(cmd.Context(), dbConn, cfg.User, insightID)
		if errors.Is(err, records.ErrInsightNotFound) {
			return fmt.Errorf("insight not found: %s", args[0])
		}
		if err != nil {
			return fmt.Errorf("failed to get insight: %w", err)
		}
		return printInsight(cmd, insight)
	},
}

var deleteInsightCmd = &cobra.Command{
	Use:   "delete [insight-id]",
	Short: "Delete a weekly reflection by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		insightID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid insight ID: %w", err)
		}

		dbConn, err := openDB()
		if err != nil {
			return err
		}
		defer closeDB(dbConn)

		if err := records.DeleteInsight(cmd.Context(), dbConn, cfg.User, insightID); err != nil {
			if errors.Is(err, records.ErrInsightNotFound) {
				return fmt.Errorf("insight not found: %s", args[0])
			}
			return fmt.Errorf("failed to delete insight: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Insight %s deleted.\n", insightID)
		return nil
	},
}

func printInsight(cmd *cobra.Command, insight wellness.Insight) error {
	if insightJSONFlag {
		return printJSON(cmd.OutOrStdout(), insight)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Insight Details:")
	fmt.Fprintf(out, "ID:          %s\n", insight.ID)
	fmt.Fprintf(out, "Week start:  %s\n", insight.WeekStart)
	fmt.Fprintf(out, "Created At:  %s\n", insight.CreatedAt.In(location()).Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(out, "Summary:\n%s\n", insight.Summary)
	return nil
}

func initInsightsCmd() {
	createInsightCmd.Flags().StringVarP(&insightWeekFlag, "week-start", "w", "", "First day of the week (YYYY-MM-DD)")
	createInsightCmd.Flags().StringVarP(&insightSummaryFlag, "summary", "s", "", "Reflection text")
	createInsightCmd.MarkFlagRequired("week-start")
	createInsightCmd.MarkFlagRequired("summary")

	insightsCmd.PersistentFlags().BoolVar(&insightJSONFlag, "json", false, "Print JSON")

	insightsCmd.AddCommand(createInsightCmd, listInsightsCmd, getInsightCmd, deleteInsightCmd)
}
