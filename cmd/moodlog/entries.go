package main

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/unowned-ai/moodlog/pkg/records"
)

var (
	entryTitleFlag     string
	entryContentFlag   string
	entryQueryFlag     string
	includeDeletedFlag bool
	entryJSONFlag      bool
)

var entriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "Manage free-text journal entries",
	Long:  `Create, list, search, update, and delete journal entries. Entries sit beside moods and never change the wellness views.`,
}

var createEntryCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		if entryTitleFlag == "" {
			return errors.New("entry title is required")
		}
		if entryContentFlag == "" {
			return errors.New("entry content is required")
		}

		dbConn, err := openDB()
		if err != nil {
			return err
		}
		defer closeDB(dbConn)

		entry, err := records.CreateEntry(cmd.Context(), dbConn, cfg.User, entryTitleFlag, entryContentFlag)
		if err != nil {
			return fmt.Errorf("failed to create entry: %w", err)
		}
		return printEntry(cmd, entry)
	},
}

var listEntriesCmd = &cobra.Command{
	Use:   "list",
	Short: "List entries, most recently updated first",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbConn, err := openDB()
		if err != nil {
			return err
		}
		defer closeDB(dbConn)

		var entries []records.Entry
		if entryQueryFlag != "" {
			entries, err = records.SearchEntries(cmd.Context(), dbConn, cfg.User, entryQueryFlag)
		} else {
			entries, err = records.ListEntries(cmd.Context(), dbConn, cfg.User, includeDeletedFlag)
		}
		if err != nil {
			return fmt.Errorf("failed to list entries: %w", err)
		}
		if entryJSONFlag {
			return printJSON(cmd.OutOrStdout(), entries)
		}

		out := cmd.OutOrStdout()
		if len(entries) == 0 {
			fmt.Fprintln(out, "No entries found.")
			return nil
		}
		for _, e := range entries {
			status := ""
			if e.Deleted {
				status = " [DELETED]"
			}
			fmt.Fprintf(out, "%s  %s  %s%s\n", e.ID, formatTimestamp(e.UpdatedAt), e.Title, status)
		}
		return nil
	},
}

var getEntryCmd = &cobra.Command{
	Use:   "get [entry-id]",
	Short: "Get an entry by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entryID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid entry ID: %w", err)
		}

		dbConn, err := openDB()
		if err != nil {
			return err
		}
		defer closeDB(dbConn)

		entry, err := records.GetEntry(cmd.Context(), dbConn, cfg.User, entryID)
		if errors.Is(err, records.ErrEntryNotFound) {
			return fmt.Errorf("entry not found: %s", args[0])
		}
		if err != nil {
			return fmt.Errorf("failed to get entry: %w", err)
		}
		return printEntry(cmd, entry)
	},
}

var updateEntryCmd = &cobra.Command{
	Use:   "update [entry-id]",
	Short: "Update an entry's title or content",
	Long:  `Update an entry. Flags that are left out keep their current value.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entryID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid entry ID: %w", err)
		}
		if entryTitleFlag == "" && entryContentFlag == "" {
			return errors.New("nothing to update: pass --title and/or --content")
		}

		dbConn, err := openDB()
		if err != nil {
			return err
		}
		defer closeDB(dbConn)

		entry, err := records.UpdateEntry(cmd.Context(), dbConn, cfg.User, entryID, entryTitleFlag, entryContentFlag)
		if errors.Is(err, records.ErrEntryNotFound) {
			return fmt.Errorf("entry not found: %s", args[0])
		}
		if err != nil {
			return fmt.Errorf("failed to update entry: %w", err)
		}
		return printEntry(cmd, entry)
	},
}

var deleteEntryCmd = &cobra.Command{
	Use:   "delete [entry-id]",
	Short: "Soft-delete an entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entryID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid entry ID: %w", err)
		}

		dbConn, err := openDB()
		if err != nil {
			return err
		}
		defer closeDB(dbConn)

		if err := records.DeleteEntry(cmd.Context(), dbConn, cfg.User, entryID); err != nil {
			if errors.Is(err, records.ErrEntryNotFound) {
				return fmt.Errorf("entry not found or already deleted: %s", args[0])
			}
			return fmt.Errorf("failed to delete entry: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Entry %s marked as deleted.\n", entryID)
		return nil
	},
}

var cleanEntriesCmd = &cobra.Command{
	Use:   "clean",
	Short: "Permanently remove soft-deleted entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbConn, err := openDB()
		if err != nil {
			return err
		}
		defer closeDB(dbConn)

		n, err := records.CleanDeletedEntries(cmd.Context(), dbConn, cfg.User)
		if err != nil {
			return fmt.Errorf("failed to clean entries: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d deleted entries.\n", n)
		return nil
	},
}

func printEntry(cmd *cobra.Command, entry records.Entry) error {
	if entryJSONFlag {
		return printJSON(cmd.OutOrStdout(), entry)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Entry Details:")
	fmt.Fprintf(out, "ID:          %s\n", entry.ID)
	fmt.Fprintf(out, "Title:       %s\n", entry.Title)
	fmt.Fprintf(out, "Deleted:     %t\n", entry.Deleted)
	fmt.Fprintf(out, "Created At:  %s\n", formatTimestamp(entry.CreatedAt))
	fmt.Fprintf(out, "Updated At:  %s\n", formatTimestamp(entry.UpdatedAt))
	fmt.Fprintf(out, "Content:\n%s\n", entry.Content)
	return nil
}

func initEntriesCmd() {
	createEntryCmd.Flags().StringVarP(&entryTitleFlag, "title", "t", "", "Entry title")
	createEntryCmd.Flags().StringVarP(&entryContentFlag, "content", "c", "", "Entry content")
	createEntryCmd.MarkFlagRequired("title")
	createEntryCmd.MarkFlagRequired("content")

	updateEntryCmd.Flags().StringVarP(&entryTitleFlag, "title", "t", "", "New title")
	updateEntryCmd.Flags().StringVarP(&entryContentFlag, "content", "c", "", "New content")

	listEntriesCmd.Flags().BoolVar(&includeDeletedFlag, "deleted", false, "Include soft-deleted entries")
	listEntriesCmd.Flags().StringVarP(&entryQueryFlag, "query", "q", "", "Only entries whose title or content contains this text")

	entriesCmd.PersistentFlags().BoolVar(&entryJSONFlag, "json", false, "Print JSON")

	entriesCmd.AddCommand(createEntryCmd, listEntriesCmd, getEntryCmd, updateEntryCmd, deleteEntryCmd, cleanEntriesCmd)
}
