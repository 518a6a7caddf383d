package tui

import (
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/unowned-ai/moodlog/pkg/db"
	"github.com/unowned-ai/moodlog/pkg/records"
	"github.com/unowned-ai/moodlog/pkg/refresh"
	"github.com/unowned-ai/moodlog/pkg/wellness"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := db.OpenDBConnection(":memory:", true, "NORMAL")
	if err != nil {
		t.Fatalf("Failed to open in-memory database: %v", err)
	}
	if err := db.InitializeSchema(testDB, db.TargetSchemaVersion); err != nil {
		t.Fatalf("Failed to initialize schema: %v", err)
	}
	t.Cleanup(func() { testDB.Close() })
	return testDB
}

func sized(m model) model {
	next, _ := m.Update(tea.WindowSizeMsg{Width: 160, Height: 40})
	return next.(model)
}

func TestViewRendersLoadedViews(t *testing.T) {
	testDB := setupTestDB(t)
	day1 := time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)
	for i, c := range []string{"happy", "happy", "sad"} {
		if _, err := records.LogMood(t.Context(), testDB, "me", c, day1.Add(time.Duration(i/2)*24*time.Hour), ""); err != nil {
			t.Fatalf("LogMood failed: %v", err)
		}
	}

	m := sized(initModel(testDB, Options{User: "me"}))
	msg := m.reload()()
	if err, ok := msg.(error); ok {
		t.Fatalf("loadViews failed: %v", err)
	}
	next, _ := m.Update(msg)
	m = next.(model)

	view := m.View()
	for _, want := range []string{"2024-01-01 5.00", "2024-01-02 2.00", "happy", "stressed", "No reflections in this window."} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected view to contain %q", want)
		}
	}
}

func TestEnterAppliesWindow(t *testing.T) {
	m := sized(initModel(setupTestDB(t), Options{User: "me"}))
	m.startInput.SetValue("2024-02-01")
	m.endInput.SetValue("2024-01-01")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(model)
	if m.windowError != "" {
		t.Fatalf("Unexpected window error: %s", m.windowError)
	}
	if m.window.Start.String() != "2024-02-01" || m.window.End.String() != "2024-01-01" {
		t.Errorf("Expected the inverted window to be accepted, got %s", m.window)
	}
	if cmd == nil {
		t.Errorf("Expected a reload command after applying the window")
	}

	m.startInput.SetValue("02/01/2024")
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(model)
	if m.windowError == "" {
		t.Errorf("Expected a window error for a malformed date")
	}
}

func TestLoadErrorKeepsPreviousViews(t *testing.T) {
	m := sized(initModel(setupTestDB(t), Options{User: "me"}))
	next, _ := m.Update(viewsMsg{result: refresh.Result{Views: wellness.ComputeViews(nil, nil, wellness.Query{})}})
	m = next.(model)

	next, _ = m.Update(errors.New("database is locked"))
	m = next.(model)
	if !m.hasResult {
		t.Errorf("Expected previous views to stay")
	}
	if !strings.Contains(m.View(), "database is locked") {
		t.Errorf("Expected the error to be shown")
	}
}

func TestOutOfOrderLoadDoesNotReplaceNewerWindow(t *testing.T) {
	testDB := setupTestDB(t)
	for _, at := range []time.Time{
		time.Date(2024, time.January, 10, 9, 0, 0, 0, time.UTC),
		time.Date(2024, time.February, 10, 9, 0, 0, 0, time.UTC),
	} {
		if _, err := records.LogMood(t.Context(), testDB, "me", "happy", at, ""); err != nil {
			t.Fatalf("LogMood failed: %v", err)
		}
	}

	m := sized(initModel(testDB, Options{User: "me"}))

	// A tick reload starts with the all-time window.
	tickLoad := m.reload()

	m.startInput.SetValue("2024-02-01")
	m.endInput.SetValue("2024-02-28")
	next, enterLoad := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(model)
	if enterLoad == nil {
		t.Fatalf("Expected a reload command after applying the window")
	}

	next, _ = m.Update(enterLoad())
	m = next.(model)
	next, _ = m.Update(tickLoad())
	m = next.(model)

	if got, want := m.result.Window, m.window.String(); got != want {
		t.Errorf("Expected displayed window %s, got %s", want, got)
	}
	if got := m.result.Views.Frequency.Count(wellness.Happy); got != 1 {
		t.Errorf("Expected 1 happy mood in February, got %d", got)
	}
}

func TestInitialLoadIsDroppedAfterNewerLoad(t *testing.T) {
	m := sized(initModel(setupTestDB(t), Options{User: "me"}))

	newer := viewsMsg{seq: 1, result: refresh.Result{Window: "newer"}}
	initial := viewsMsg{seq: 0, result: refresh.Result{Window: "initial"}}

	next, _ := m.Update(newer)
	m = next.(model)
	next, _ = m.Update(initial)
	m = next.(model)

	if m.result.Window != "newer" {
		t.Errorf("Expected the newer result to stay, got %q", m.result.Window)
	}
}
