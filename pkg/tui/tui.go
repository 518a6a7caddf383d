// Package tui renders the wellness views as a terminal dashboard that reloads
// on an interval and lets the user change the date window.
package tui

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	textinput "github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/unowned-ai/moodlog/pkg/refresh"
	"github.com/unowned-ai/moodlog/pkg/wellness"
)

type Options struct {
	User            string
	Location        *time.Location
	RefreshInterval time.Duration
}

type model struct {
	result    refresh.Result
	hasResult bool

	// Loads are numbered; a result older than the applied one is dropped.
	loadSeq    uint64
	appliedSeq uint64

	width  int
	height int
	err    error

	db         *sql.DB
	dbFilename string
	user       string
	location   *time.Location
	interval   time.Duration

	quitting bool

	inputFocus  int // 0 = start date, 1 = end date
	startInput  textinput.Model
	endInput    textinput.Model
	window      wellness.Window
	windowError string
}

// Initialize TUI model
func initModel(db *sql.DB, opts Options) model {
	_, file := getDbPragmaList(db)

	start := textinput.New()
	start.Placeholder = "YYYY-MM-DD"
	start.Focus()
	start.CharLimit = 10

	end := textinput.New()
	end.Placeholder = "YYYY-MM-DD"
	end.CharLimit = 10

	interval := opts.RefreshInterval
	if interval <= 0 {
		interval = 30 * time.Second
	}
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}

	return model{
		db:         db,
		dbFilename: filepath.Base(file),
		user:       opts.User,
		location:   loc,
		interval:   interval,
		startInput: start,
		endInput:   end,
	}
}

func (m model) query() wellness.Query {
	return wellness.Query{Window: m.window, Location: m.location}
}

// reload starts a new numbered load for the current window.
func (m *model) reload() tea.Cmd {
	m.loadSeq++
	return loadViews(m.db, m.user, m.query(), m.loadSeq)
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		loadViews(m.db, m.user, m.query(), m.loadSeq),
		scheduleRefresh(m.interval),
	)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case error:
		// Keep showing the last good views.
		m.err = msg
		return m, nil

	case viewsMsg:
		if msg.seq < m.appliedSeq {
			return m, nil
		}
		m.result = msg.result
		m.appliedSeq = msg.seq
		m.hasResult = true
		m.err = nil
		return m, nil

	case refreshTickMsg:
		cmd := m.reload()
		return m, tea.Batch(cmd, scheduleRefresh(m.interval))

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyTab, tea.KeyShiftTab, tea.KeyUp, tea.KeyDown:
			m.inputFocus = 1 - m.inputFocus
			if m.inputFocus == 0 {
				m.startInput.Focus()
				m.endInput.Blur()
			} else {
				m.endInput.Focus()
				m.startInput.Blur()
			}
			return m, nil
		case tea.KeyEnter:
			w, err := wellness.ParseWindow(m.startInput.Value(), m.endInput.Value())
			if err != nil {
				m.windowError = err.Error()
				return m, nil
			}
			m.window = w
			m.windowError = ""
			cmd := m.reload()
			return m, cmd
		case tea.KeyCtrlR:
			cmd := m.reload()
			return m, cmd
		case tea.KeyCtrlL:
			m.startInput.SetValue("")
			m.endInput.SetValue("")
			m.window = wellness.Window{}
			m.windowError = ""
			cmd := m.reload()
			return m, cmd
		}

		var cmd tea.Cmd
		if m.inputFocus == 0 {
			m.startInput, cmd = m.startInput.Update(msg)
		} else {
			m.endInput, cmd = m.endInput.Update(msg)
		}
		return m, cmd
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return "Closing moodlog dashboard.\n"
	}

	titleBar := titleStyle.Width(m.width).Render("Moodlog - wellness insights")
	leftWidth, middleWidth, rightWidth := m.columnWidths()
	panelHeight := m.height - 3

	leftPanel := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(lipgloss.Color(colorGray)).
		Padding(0, 2).Width(leftWidth).Height(panelHeight).
		Render(m.renderWindowPanel(leftWidth - bordersAndPaddingWidth))

	middlePanel := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(lipgloss.Color(colorGray)).
		Padding(0, 2).Width(middleWidth).Height(panelHeight).
		Render(m.renderDistributionPanel(middleWidth - bordersAndPaddingWidth))

	rightPanel := lipgloss.NewStyle().Padding(0, 2).Width(rightWidth).Height(panelHeight).
		Render(m.renderTrendPanel(rightWidth - bordersAndPaddingWidth))

	columns := lipgloss.JoinHorizontal(lipgloss.Top, leftPanel, middlePanel, rightPanel)

	footerText := "\ntab to switch field • enter to apply window • ctrl+l to clear • ctrl+r to reload • esc to quit"
	footerBar := footerStyle.Width(m.width).Render(footerText)

	return titleBar + "\n\n" + columns + footerBar
}

func (m model) renderWindowPanel(width int) string {
	var b strings.Builder
	b.WriteString(subtitleStyle.Width(width).Render("Window"))
	b.WriteString("\n\n")

	m.startInput.Width = width - 8
	m.endInput.Width = width - 8
	b.WriteString(generateLinePointer(m.inputFocus == 0, 2) + "Start " + m.startInput.View() + "\n")
	b.WriteString(generateLinePointer(m.inputFocus == 1, 2) + "End   " + m.endInput.View() + "\n\n")
	b.WriteString(labelStyle.Render("Applied: ") + textStyle.Render(m.window.String()) + "\n")
	if m.windowError != "" {
		b.WriteString("\n" + textRedStyle.Render(m.windowError) + "\n")
	}

	var dbStatus, refreshStatus int
	if m.dbFilename != "" {
		dbStatus = 1
	}
	lastRefresh := "never"
	if m.hasResult {
		refreshStatus = 1
		lastRefresh = m.result.ComputedAt.In(m.location).Format("15:04:05")
	}
	if m.err != nil {
		refreshStatus = 2
	}
	b.WriteString(fmt.Sprintf("\n\nDatabase file: %v\nUser: %v\nLast refresh: %v\n",
		TextStatusColorize(m.dbFilename, dbStatus),
		textStyle.Render(m.user),
		TextStatusColorize(lastRefresh, refreshStatus)))
	if m.err != nil {
		b.WriteString(textRedStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n")
	}
	return b.String()
}

func (m model) renderDistributionPanel(width int) string {
	var b strings.Builder
	b.WriteString(subtitleStyle.Width(width).Render("Mood balance"))
	b.WriteString("\n\n")

	if !m.hasResult {
		b.WriteString("Loading...\n")
		return b.String()
	}

	views := m.result.Views
	maxCount := 0
	for _, n := range views.Balance {
		if n > maxCount {
			maxCount = n
		}
	}
	if maxCount == 0 {
		b.WriteString("No moods in this window.\n")
		return b.String()
	}

	barWidth := width - 22
	for i, c := range wellness.Categories {
		count := views.Balance[i]
		label := fmt.Sprintf("%-9s %3d %5.1f%% ", c, count, views.Percentage.Share(c))
		b.WriteString(inactiveStyle.Render(label) + bar(float64(count), float64(maxCount), barWidth, categoryColor(c)) + "\n")
	}
	b.WriteString(fmt.Sprintf("\n%s %d\n", labelStyle.Render("Total:"), views.Frequency.Total()))
	return b.String()
}

func (m model) renderTrendPanel(width int) string {
	var b strings.Builder
	b.WriteString(subtitleStyle.Width(width).Render("Daily trend"))
	b.WriteString("\n\n")

	if !m.hasResult {
		b.WriteString("Loading...\n")
		return b.String()
	}

	views := m.result.Views
	if len(views.Trend) == 0 {
		b.WriteString("No days with data.\n")
	}
	barWidth := width - 18
	for _, p := range views.Trend {
		score, _ := p.AverageScore.Float64()
		b.WriteString(fmt.Sprintf("%s %s ", p.Date, p.AverageScore.StringFixed(2)))
		b.WriteString(bar(score, wellness.MaxScore, barWidth, colorGreen) + "\n")
	}

	b.WriteString("\n" + subtitleStyle.Render("Weekly reflections") + "\n\n")
	if len(views.Insights) == 0 {
		b.WriteString("No reflections in this window.\n")
	}
	for _, insight := range views.Insights {
		summary := insight.Summary
		if avail := width - 12; avail > 3 && len(summary) > avail {
			summary = summary[:avail-2] + ".."
		}
		b.WriteString(labelStyle.Render(insight.WeekStart.String()) + " " + textStyle.Render(summary) + "\n")
	}
	return b.String()
}

// Create and start the Bubble Tea TUI
func ShowTUI(db *sql.DB, opts Options) error {
	p := tea.NewProgram(initModel(db, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
