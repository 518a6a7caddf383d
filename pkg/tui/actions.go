package tui

import (
	"context"
	"database/sql"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/unowned-ai/moodlog/pkg/records"
	"github.com/unowned-ai/moodlog/pkg/refresh"
	"github.com/unowned-ai/moodlog/pkg/wellness"
)

// viewsMsg carries the sequence number of the load that produced it.
type viewsMsg struct {
	seq    uint64
	result refresh.Result
}

type refreshTickMsg time.Time

// Load one snapshot and compute its views for q
func loadViews(db *sql.DB, user string, q wellness.Query, seq uint64) tea.Cmd {
	return func() tea.Msg {
		snap, err := records.LoadSnapshot(context.Background(), db, user)
		if err != nil {
			return err
		}
		return viewsMsg{seq: seq, result: refresh.Result{
			Views:      snap.Views(q),
			Window:     q.Window.String(),
			TakenAt:    snap.TakenAt,
			ComputedAt: time.Now(),
		}}
	}
}

func scheduleRefresh(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return refreshTickMsg(t)
	})
}

// Get database name and file path
func getDbPragmaList(db *sql.DB) (string, string) {
	var name, file string
	err := db.QueryRow(`PRAGMA database_list`).Scan(new(int), &name, &file)
	if err != nil {
		return name, file
	}
	return name, file
}
