package mcp

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/unowned-ai/moodlog/pkg/db"
	"github.com/unowned-ai/moodlog/pkg/quotes"
	"github.com/unowned-ai/moodlog/pkg/records"
	"github.com/unowned-ai/moodlog/pkg/wellness"
)

const testUser = "me"

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

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if res == nil || len(res.Content) == 0 {
		t.Fatalf("Expected tool result content, got %+v", res)
	}
	switch c := res.Content[0].(type) {
	case mcp.TextContent:
		return c.Text
	case *mcp.TextContent:
		return c.Text
	default:
		t.Fatalf("Expected text content, got %T", res.Content[0])
		return ""
	}
}

func TestPingHandler(t *testing.T) {
	res, err := pingHandler(context.Background(), callRequest("ping", nil))
	if err != nil {
		t.Fatalf("ping failed: %v", err)
	}
	if got := resultText(t, res); got != "pong_moodlog" {
		t.Errorf("Expected pong_moodlog, got %s", got)
	}
}

func TestLogMoodHandler(t *testing.T) {
	testDB := setupTestDB(t)
	handler := logMoodHandler(testDB, testUser)
	ctx := context.Background()

	res, err := handler(ctx, callRequest("log_mood", map[string]any{
		"category":    "anxious",
		"occurred_at": "2024-05-06T10:00:00Z",
	}))
	if err != nil {
		t.Fatalf("log_mood failed: %v", err)
	}
	if res.IsError {
		t.Fatalf("Unexpected tool error: %s", resultText(t, res))
	}
	var mood wellness.MoodRecord
	if err := json.Unmarshal([]byte(resultText(t, res)), &mood); err != nil {
		t.Fatalf("Failed to decode mood: %v", err)
	}
	if mood.Category != wellness.Anxious {
		t.Errorf("Expected anxious, got %s", mood.Category)
	}

	for _, args := range []map[string]any{
		{},
		{"category": "ecstatic"},
		{"category": "happy", "occurred_at": "yesterday"},
	} {
		res, err := handler(ctx, callRequest("log_mood", args))
		if err != nil {
			t.Fatalf("log_mood returned a protocol error: %v", err)
		}
		if !res.IsError {
			t.Errorf("Expected a tool error for %v", args)
		}
	}
}

func TestCreateInsightHandlerRejectsBlankSummary(t *testing.T) {
	testDB := setupTestDB(t)
	handler := createInsightHandler(testDB, testUser)
	ctx := context.Background()

	res, err := handler(ctx, callRequest("create_insight", map[string]any{"week_start": "2024-01-01", "summary": "  "}))
	if err != nil {
		t.Fatalf("create_insight failed: %v", err)
	}
	if !res.IsError {
		t.Errorf("Expected a tool error for a blank summary")
	}

	insights, err := records.ListInsights(ctx, testDB, testUser)
	if err != nil {
		t.Fatalf("ListInsights failed: %v", err)
	}
	if len(insights) != 0 {
		t.Errorf("Expected ledger to stay empty, got %d", len(insights))
	}
}

func TestDeleteInsightHandlerUnknownID(t *testing.T) {
	testDB := setupTestDB(t)
	handler := deleteInsightHandler(testDB, testUser)

	res, err := handler(context.Background(), callRequest("delete_insight", map[string]any{"id": "00000000-0000-0000-0000-000000000001"}))
	if err != nil {
		t.Fatalf("delete_insight failed: %v", err)
	}
	if !res.IsError || !strings.Contains(resultText(t, res), "not found") {
		t.Errorf("Expected a not found tool error, got %+v", res)
	}

	res, _ = handler(context.Background(), callRequest("delete_insight", map[string]any{"id": "nope"}))
	if !res.IsError {
		t.Errorf("Expected a tool error for a malformed id")
	}
}

func TestDeleteHandlersReportMissingAsToolError(t *testing.T) {
	testDB := setupTestDB(t)
	ctx := context.Background()

	mood, err := records.LogMood(ctx, testDB, "someone-else", "happy", time.Time{}, "")
	if err != nil {
		t.Fatalf("LogMood failed: %v", err)
	}
	insight, err := records.CreateInsight(ctx, testDB, "someone-else", civil.Date{Year: 2024, Month: time.January, Day: 1}, "their week")
	if err != nil {
		t.Fatalf("CreateInsight failed: %v", err)
	}

	tests := []struct {
		name    string
		handler server.ToolHandlerFunc
		id      string
	}{
		{"delete_mood unknown", deleteMoodHandler(testDB, testUser), "00000000-0000-0000-0000-000000000001"},
		{"delete_mood other user", deleteMoodHandler(testDB, testUser), mood.ID.String()},
		{"delete_insight other user", deleteInsightHandler(testDB, testUser), insight.ID.String()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := tt.handler(ctx, callRequest("delete", map[string]any{"id": tt.id}))
			if err != nil {
				t.Fatalf("Handler returned a protocol error: %v", err)
			}
			if !res.IsError || !strings.Contains(resultText(t, res), "not found") {
				t.Errorf("Expected a not found tool error, got %+v", res)
			}
		})
	}

	if _, err := records.GetMood(ctx, testDB, "someone-else", mood.ID); err != nil {
		t.Errorf("Expected the other user's mood to survive, got %v", err)
	}
	if _, err := records.GetInsight(ctx, testDB, "someone-else", insight.ID); err != nil {
		t.Errorf("Expected the other user's insight to survive, got %v", err)
	}
}

func TestWellnessViewsHandler(t *testing.T) {
	testDB := setupTestDB(t)
	ctx := context.Background()
	day1 := time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)
	for i, c := range []string{"happy", "happy", "sad"} {
		at := day1.Add(time.Duration(i/2) * 24 * time.Hour)
		if _, err := records.LogMood(ctx, testDB, testUser, c, at, ""); err != nil {
			t.Fatalf("LogMood failed: %v", err)
		}
	}

	handler := wellnessViewsHandler(testDB, testUser, time.UTC)
	res, err := handler(ctx, callRequest("get_wellness_views", nil))
	if err != nil {
		t.Fatalf("get_wellness_views failed: %v", err)
	}
	var views struct {
		Frequency map[string]int `json:"frequency"`
		Trend     []struct {
			AverageScore float64 `json:"average_score"`
		} `json:"trend"`
	}
	if err := json.Unmarshal([]byte(resultText(t, res)), &views); err != nil {
		t.Fatalf("Failed to decode views: %v", err)
	}
	if views.Frequency["happy"] != 2 || views.Frequency["sad"] != 1 {
		t.Errorf("Unexpected frequency: %v", views.Frequency)
	}
	if len(views.Trend) != 2 || views.Trend[0].AverageScore != 5 || views.Trend[1].AverageScore != 2 {
		t.Errorf("Unexpected trend: %+v", views.Trend)
	}

	res, _ = handler(ctx, callRequest("get_wellness_views", map[string]any{"start": "Jan 1"}))
	if !res.IsError {
		t.Errorf("Expected a tool error for a malformed start date")
	}
}

func TestBreathingSessionHandlers(t *testing.T) {
	testDB := setupTestDB(t)
	ctx := context.Background()
	logHandler := logBreathingSessionHandler(testDB, testUser)

	res, err := logHandler(ctx, callRequest("log_breathing_session", map[string]any{
		"duration_minutes": float64(4),
		"type":             "4-7-8",
		"session_at":       "2024-05-06T10:00:00Z",
	}))
	if err != nil {
		t.Fatalf("log_breathing_session failed: %v", err)
	}
	if res.IsError {
		t.Fatalf("Unexpected tool error: %s", resultText(t, res))
	}
	var session records.BreathingSession
	if err := json.Unmarshal([]byte(resultText(t, res)), &session); err != nil {
		t.Fatalf("Failed to decode session: %v", err)
	}
	if session.Minutes != 4 || session.Kind != "4-7-8" {
		t.Errorf("Unexpected session: %+v", session)
	}

	for _, args := range []map[string]any{
		{},
		{"duration_minutes": float64(2.5)},
		{"duration_minutes": float64(0)},
		{"duration_minutes": float64(5), "session_at": "this morning"},
	} {
		res, err := logHandler(ctx, callRequest("log_breathing_session", args))
		if err != nil {
			t.Fatalf("log_breathing_session returned a protocol error: %v", err)
		}
		if !res.IsError {
			t.Errorf("Expected a tool error for %v", args)
		}
	}

	deleteHandler := deleteBreathingSessionHandler(testDB, testUser)
	args := map[string]any{"id": session.ID.String()}
	res, _ = deleteHandler(ctx, callRequest("delete_breathing_session", args))
	if res.IsError {
		t.Fatalf("Unexpected tool error: %s", resultText(t, res))
	}
	res, _ = deleteHandler(ctx, callRequest("delete_breathing_session", args))
	if !res.IsError || !strings.Contains(resultText(t, res), "not found") {
		t.Errorf("Expected a not found tool error on second delete, got %+v", res)
	}
}

func TestMoodQuoteHandler(t *testing.T) {
	res, err := moodQuoteHandler(context.Background(), callRequest("get_mood_quote", map[string]any{"mood": "Stressed"}))
	if err != nil {
		t.Fatalf("get_mood_quote failed: %v", err)
	}
	var q quotes.Quote
	if err := json.Unmarshal([]byte(resultText(t, res)), &q); err != nil {
		t.Fatalf("Failed to decode quote: %v", err)
	}
	if q.Mood != wellness.Stressed || q.Text == "" || q.Exercise == "" {
		t.Errorf("Unexpected quote: %+v", q)
	}
}

func TestNewMoodlogMCPServer(t *testing.T) {
	s := NewMoodlogMCPServer(setupTestDB(t), Options{User: testUser})
	if s.MCPRawServer() == nil {
		t.Fatalf("Expected a raw MCP server")
	}
}
