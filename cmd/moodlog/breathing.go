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
	breathingMinutesFlag int
	breathingKindFlag    string
	breathingAtFlag      string
	breathingJSONFlag    bool
	quoteJSONFlag        bool
)

var breathingCmd = &cobra.Command{
	Use:   "breathing",
	Short: "Log and manage breathing sessions",
}

var logBreathingCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a finished breathing session",
	RunE: func(cmd *cobra.Command, args []string) error {
		at, err := parseTimestamp(breathingAtFlag, location())
		if err != nil {
			return err
		}

		dbConn, err := openDB()
		if err != nil {
			return err
		}
		defer closeDB(dbConn)

		session, err := records.LogBreathingSession(cmd.Context(), dbConn, cfg.User, breathingMinutesFlag, breathingKindFlag, at)
		if err != nil {
			return fmt.Errorf("failed to log breathing session: %w", err)
		}
		log.Debug("Breathing session logged", "id", session.ID.String(), "minutes", session.Minutes)
		if breathingJSONFlag {
			return printJSON(cmd.OutOrStdout(), session)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Logged %d minute %s session %s.\n", session.Minutes, session.Kind, session.ID)
		return nil
	},
}

var listBreathingCmd = &cobra.Command{
	Use:   "list",
	Short: "List breathing sessions, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbConn, err := openDB()
		if err != nil {
			return err
		}
		defer closeDB(dbConn)

		sessions, err := records.ListBreathingSessions(cmd.Context(), dbConn, cfg.User)
		if err != nil {
			return fmt.Errorf("failed to list breathing sessions: %w", err)
		}
		if breathingJSONFlag {
			return printJSON(cmd.OutOrStdout(), sessions)
		}
		if len(sessions) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No breathing sessions logged yet.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tWHEN\tMINUTES\tTYPE")
		for _, s := range sessions {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", s.ID, s.SessionAt.In(location()).Format("2006-01-02 15:04"), s.Minutes, s.Kind)
		}
		return w.Flush()
	},
}

var deleteBreathingCmd = &cobra.Command{
	Use:   "delete [session-id]",
	Short: "Delete a breathing session by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid session ID: %w", err)
		}

		dbConn, err := openDB()
		if err != nil {
			return err
		}
		defer closeDB(dbConn)

		if err := records.DeleteBreathingSession(cmd.Context(), dbConn, cfg.User, sessionID); err != nil {
			if errors.Is(err, records.ErrBreathingSessionNotFound) {
				return fmt.Errorf("breathing session not found: %s", args[0])
			}
			return fmt.Errorf("failed to delete breathing session: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Breathing session %s deleted.\n", sessionID)
		return nil
	},
}

var quoteCmd = &cobra.Command{
	Use:   "quote [mood]",
	Short: "Show a motivational quote and exercise for a mood",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var category wellness.Category
		if len(args) == 1 {
			category, _ = wellness.ParseCategory(args[0])
		}
		q := quotes.Random(category)
		if quoteJSONFlag {
			return printJSON(cmd.OutOrStdout(), q)
		}
		printQuote(cmd, q)
		return nil
	},
}

func printQuote(cmd *cobra.Command, q quotes.Quote) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\"%s\"\n  - %s\n", q.Text, q.Author)
	fmt.Fprintf(out, "Try this: %s\n", q.Exercise)
}

func initBreathingCmd() {
	logBreathingCmd.Flags().IntVarP(&breathingMinutesFlag, "minutes", "m", 0, fmt.Sprintf("Session length in minutes (1-%d)", records.MaxBreathingMinutes))
	logBreathingCmd.Flags().StringVarP(&breathingKindFlag, "type", "t", records.DefaultBreathingKind, "Exercise type, e.g. box or 4-7-8")
	logBreathingCmd.Flags().StringVar(&breathingAtFlag, "at", "", "When it happened (RFC 3339 or YYYY-MM-DD[ HH:MM]); defaults to now")
	logBreathingCmd.MarkFlagRequired("minutes")

	breathingCmd.PersistentFlags().BoolVar(&breathingJSONFlag, "json", false, "Print JSON")
	breathingCmd.AddCommand(logBreathingCmd, listBreathingCmd, deleteBreathingCmd)

	quoteCmd.Flags().BoolVar(&quoteJSONFlag, "json", false, "Print JSON")
}
