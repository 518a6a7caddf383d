package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/unowned-ai/moodlog/pkg/quotes"
	"github.com/unowned-ai/moodlog/pkg/records"
	"github.com/unowned-ai/moodlog/pkg/wellness"
)

var (
	moodCategoryFlag string
	moodAtFlag       string
	moodNoteFlag     string
	moodJSONFlag     bool
)

var moodsCmd = &cobra.Command{
	Use:   "moods",
	Short: "Log and manage moods",
	Long:  `Log a mood (happy, neutral, sad, anxious, stressed), list, inspect and delete logged moods.`,
}

var logMoodCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a mood",
	RunE: func(cmd *cobra.Command, args []string) error {
		at, err := parseTimestamp(moodAtFlag, location())
		if err != nil {
			return err
		}

		dbConn, err := openDB()
		if err != nil {
			return err
		}
		defer closeDB(dbConn)

		mood, err := records.LogMood(cmd.Context(), dbConn, cfg.User, moodCategoryFlag, at, moodNoteFlag)
		if err != nil {
			return fmt.Errorf("failed to log mood: %w", err)
		}
		log.Debug("Mood logged", "id", mood.ID.String(), "category", string(mood.Category))
		if err := printMood(cmd, mood); err != nil {
			return err
		}
		if !moodJSONFlag {
			fmt.Fprintln(cmd.OutOrStdout())
			printQuote(cmd, quotes.Random(mood.Category))
		}
		return nil
	},
}

var listMoodsCmd = &cobra.Command{
	Use:   "list",
	Short: "List logged moods, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbConn, err := openDB()
		if err != nil {
			return err
		}
		defer closeDB(dbConn)

		moods, err := records.ListMoods(cmd.Context(), dbConn, cfg.User)
		if err != nil {
			return fmt.Errorf("failed to list moods: %w", err)
		}
		if moodJSONFlag {
			return printJSON(cmd.OutOrStdout(), moods)
		}
		if len(moods) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No moods logged yet.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tWHEN\tCATEGORY\tNOTE")
		for _, m := range moods {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.ID, m.OccurredAt.In(location()).Format("2006-01-02 15:04"), m.Category, m.Note)
		}
		return w.Flush()
	},
}

var getMoodCmd = &cobra.Command{
	Use:   "get [mood-id]",
	Short: "Get a mood by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		moodID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid mood ID: %w", err)
		}

		dbConn, err := openDB()
		if err != nil {
			return err
		}
		defer closeDB(dbConn)

		mood, err := records.GetMood(cmd.Context(), dbConn, cfg.User, moodID)
		if errors.Is(err, records.ErrMoodNotFound) {
			return fmt.Errorf("mood not found: %s", args[0])
		}
		if err != nil {
			return fmt.Errorf("failed to get mood: %w", err)
		}
		return printMood(cmd, mood)
	},
}

var deleteMoodCmd = &cobra.Command{
	Use:   "delete [mood-id]",
	Short: "Delete a mood by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		moodID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid mood ID: %w", err)
		}

		dbConn, err := openDB()
		if err != nil {
			return err
		}
		defer closeDB(dbConn)

		if err := records.DeleteMood(cmd.Context(), dbConn, cfg.User, moodID); err != nil {
			if errors.Is(err, records.ErrMoodNotFound) {
				return fmt.Errorf("mood not found: %s", args[0])
			}
			return fmt.Errorf("failed to delete mood: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Mood %s deleted.\n", moodID)
		return nil
	},
}

func printMood(cmd *cobra.Command, mood wellness.MoodRecord) error {
	if moodJSONFlag {
		return printJSON(cmd.OutOrStdout(), mood)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Mood Details:")
	fmt.Fprintf(out, "ID:        %s\n", mood.ID)
	fmt.Fprintf(out, "Category:  %s\n", mood.Category)
	fmt.Fprintf(out, "When:      %s\n", mood.OccurredAt.In(location()).Format("2006-01-02 15:04:05 MST"))
	if mood.Note != "" {
		fmt.Fprintf(out, "Note:      %s\n", mood.Note)
	}
	return nil
}

func initMoodsCmd() {
	logMoodCmd.Flags().StringVarP(&moodCategoryFlag, "category", "c", "", "Mood category: happy, neutral, sad, anxious, stressed")
	logMoodCmd.Flags().StringVar(&moodAtFlag, "at", "", "When it happened (RFC 3339 or YYYY-MM-DD[ HH:MM]); defaults to now")
	logMoodCmd.Flags().StringVarP(&moodNoteFlag, "note", "n", "", "Optional note")
	logMoodCmd.MarkFlagRequired("category")
	logMoodCmd.RegisterFlagCompletionFunc("category", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, 0, len(wellness.Categories))
		for _, c := range wellness.Categories {
			names = append(names, string(c))
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	moodsCmd.PersistentFlags().BoolVar(&moodJSONFlag, "json", false, "Print JSON")

	moodsCmd.AddCommand(logMoodCmd, listMoodsCmd, getMoodCmd, deleteMoodCmd)
}
