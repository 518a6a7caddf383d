//go:build tui

package main

import (
	"github.com/spf13/cobra"

	"github.com/unowned-ai/moodlog/pkg/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Show terminal UI",
	Long:  `Display an interactive dashboard of the wellness views that refreshes on the configured interval.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dbConn, err := openDB()
		if err != nil {
			return err
		}
		defer closeDB(dbConn)

		return tui.ShowTUI(dbConn, tui.Options{
			User:            cfg.User,
			Location:        location(),
			RefreshInterval: cfg.RefreshInterval,
		})
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
