package mcp

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/unowned-ai/moodlog/pkg/quotes"
	"github.com/unowned-ai/moodlog/pkg/records"
	"github.com/unowned-ai/moodlog/pkg/wellness"
)

// RegisterPingTool registers the simple ping tool.
func RegisterPingTool(s *server.MCPServer) {
	pingTool := mcp.NewTool("ping",
		mcp.WithDescription("Responds with 'pong' to check if the Moodlog MCP server is alive."),
	)
	s.AddTool(pingTool, pingHandler)
}

func pingHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText("pong_moodlog"), nil
}

// RegisterLogMoodTool registers the log_mood tool.
func RegisterLogMoodTool(s *server.MCPServer, db *sql.DB, user string) {
	tool := mcp.NewTool("log_mood",
		mcp.WithDescription("Logs a mood. Category is one of happy, neutral, sad, anxious, stressed."),
		mcp.WithString("category", mcp.Required(), mcp.Description("Mood category.")),
		mcp.WithString("occurred_at", mcp.Description("Optional RFC 3339 timestamp. Defaults to now.")),
		mcp.WithString("note", mcp.Description("Optional free-text note.")),
	)
	s.AddTool(tool, logMoodHandler(db, user))
}

func logMoodHandler(db *sql.DB, user string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		category := stringArg(request, "category")
		if category == "" {
			return mcp.NewToolResultError("'category' parameter is required."), nil
		}

		var occurredAt time.Time
		if raw := stringArg(request, "occurred_at"); raw != "" {
			t, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("'occurred_at' must be RFC 3339, got %q.", raw)), nil
			}
			occurredAt = t
		}

		mood, err := records.LogMood(ctx, db, user, category, occurredAt, stringArg(request, "note"))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to log mood: %v", err)), nil
		}
		return jsonResult("mood", mood)
	}
}

// RegisterListMoodsTool registers the list_moods tool.
func RegisterListMoodsTool(s *server.MCPServer, db *sql.DB, user string) {
	tool := mcp.NewTool("list_moods",
		mcp.WithDescription("Lists every logged mood, newest first."),
	)
	s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		moods, err := records.ListMoods(ctx, db, user)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list moods: %v", err)), nil
		}
		return jsonResult("moods", moods)
	})
}

// RegisterDeleteMoodTool registers the delete_mood tool.
func RegisterDeleteMoodTool(s *server.MCPServer, db *sql.DB, user string) {
	tool := mcp.NewTool("delete_mood",
		mcp.WithDescription("Deletes a mood by id."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Mood id.")),
	)
	s.AddTool(tool, deleteMoodHandler(db, user))
}

func deleteMoodHandler(db *sql.DB, user string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, bad := idArg(request)
		if bad != nil {
			return bad, nil
		}
		if err := records.DeleteMood(ctx, db, user, id); err != nil {
			if errors.Is(err, records.ErrMoodNotFound) {
				return mcp.NewToolResultError(fmt.Sprintf("Mood '%s' not found.", id)), nil
			}
			return mcp.NewToolResultError(fmt.Sprintf("Failed to delete mood '%s': %v", id, err)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("Mood '%s' deleted successfully.", id)), nil
	}
}

// RegisterCreateInsightTool registers the create_insight tool.
func RegisterCreateInsightTool(s *server.MCPServer, db *sql.DB, user string) {
	tool := mcp.NewTool("create_insight",
		mcp.WithDescription("Records a weekly reflection."),
		mcp.WithString("week_start", mcp.Required(), mcp.Description("First day of the week, YYYY-MM-DD.")),
		mcp.WithString("summary", mcp.Required(), mcp.Description("Reflection text.")),
	)
	s.AddTool(tool, createInsightHandler(db, user))
}

func createInsightHandler(db *sql.DB, user string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		raw := stringArg(request, "week_start")
		if raw == "" {
			return mcp.NewToolResultError("'week_start' parameter is required."), nil
		}
		weekStart, err := wellness.ParseDate(raw)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		insight, err := records.CreateInsight(ctx, db, user, weekStart, stringArg(request, "summary"))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create insight: %v", err)), nil
		}
		return jsonResult("insight", insight)
	}
}

// RegisterListInsightsTool registers the list_insights tool.
func RegisterListInsightsTool(s *server.MCPServer, db *sql.DB, user string) {
	tool := mcp.NewTool("list_insights",
		mcp.WithDescription("Lists every weekly reflection."),
	)
	s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		insights, err := records.ListInsights(ctx, db, user)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list insights: %v", err)), nil
		}
		return jsonResult("insights", insights)
	})
}

// RegisterDeleteInsightTool registers the delete_insight tool.
func RegisterDeleteInsightTool(s *server.MCPServer, db *sql.DB, user string) {
	tool := mcp.NewTool("delete_insight",
		mcp.WithDescription("Deletes a weekly reflection by id."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Insight id.")),
	)
	s.AddTool(tool, deleteInsightHandler(db, user))
}

func deleteInsightHandler(db *sql.DB, user string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, bad := idArg(request)
		if bad != nil {
			return bad, nil
		}
		if err := records.DeleteInsight(ctx, db, user, id); err != nil {
			if errors.Is(err, records.ErrInsightNotFound) {
				return mcp.NewToolResultError(fmt.Sprintf("Insight '%s' not found.", id)), nil
			}
			return mcp.NewToolResultError(fmt.Sprintf("Failed to delete insight '%s': %v", id, err)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("Insight '%s' deleted successfully.", id)), nil
	}
}

// RegisterCreateEntryTool registers the create_entry tool.
func RegisterCreateEntryTool(s *server.MCPServer, db *sql.DB, user string) {
	tool := mcp.NewTool("create_entry",
		mcp.WithDescription("Creates a journal entry."),
		mcp.WithString("entry_title", mcp.Required(), mcp.Description("Title for the new entry.")),
		mcp.WithString("content", mcp.Required(), mcp.Description("Content for the new entry.")),
	)
	s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		title := stringArg(request, "entry_title")
		if title == "" {
			return mcp.NewToolResultError("'entry_title' parameter is required."), nil
		}
		content, _ := arguments(request)["content"].(string)

		entry, err := records.CreateEntry(ctx, db, user, title, content)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create entry '%s': %v", title, err)), nil
		}
		return jsonResult("entry", entry)
	})
}

// RegisterListEntriesTool registers the list_entries tool.
func RegisterListEntriesTool(s *server.MCPServer, db *sql.DB, user string) {
	tool := mcp.NewTool("list_entries",
		mcp.WithDescription("Lists journal entries, optionally filtered by a text query."),
		mcp.WithString("query", mcp.Description("Optional text to search in titles and contents.")),
		mcp.WithBoolean("include_deleted", mcp.Description("Include soft-deleted entries when no query is given.")),
	)
	s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var (
			entries []records.Entry
			err     error
		)
		if q := stringArg(request, "query"); q != "" {
			entries, err = records.SearchEntries(ctx, db, user, q)
		} else {
			entries, err = records.ListEntries(ctx, db, user, boolArg(request, "include_deleted"))
		}
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list entries: %v", err)), nil
		}
		return jsonResult("entries", entries)
	})
}

// RegisterDeleteEntryTool registers the delete_entry tool.
func RegisterDeleteEntryTool(s *server.MCPServer, db *sql.DB, user string) {
	tool := mcp.NewTool("delete_entry",
		mcp.WithDescription("Soft-deletes a journal entry by id."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Entry id.")),
	)
	s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, bad := idArg(request)
		if bad != nil {
			return bad, nil
		}
		if err := records.DeleteEntry(ctx, db, user, id); err != nil {
			if errors.Is(err, records.ErrEntryNotFound) {
				return mcp.NewToolResultError(fmt.Sprintf("Entry '%s' not found or already deleted.", id)), nil
			}
			return mcp.NewToolResultError(fmt.Sprintf("Failed to delete entry '%s': %v", id, err)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("Entry '%s' deleted successfully.", id)), nil
	})
}

// RegisterGetWellnessViewsTool registers the get_wellness_views tool.
func RegisterGetWellnessViewsTool(s *server.MCPServer, db *sql.DB, user string, loc *time.Location) {
	tool := mcp.NewTool("get_wellness_views",
		mcp.WithDescription("Computes mood frequency, percentage split, balance profile, daily trend and the weekly reflections within an optional date window."),
		mcp.WithString("start", mcp.Description("Optional inclusive start date, YYYY-MM-DD.")),
		mcp.WithString("end", mcp.Description("Optional inclusive end date, YYYY-MM-DD.")),
	)
	s.AddTool(tool, wellnessViewsHandler(db, user, loc))
}

func wellnessViewsHandler(db *sql.DB, user string, loc *time.Location) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		window, err := wellness.ParseWindow(stringArg(request, "start"), stringArg(request, "end"))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		snap, err := records.LoadSnapshot(ctx, db, user)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to load records: %v", err)), nil
		}
		return jsonResult("views", snap.Views(wellness.Query{Window: window, Location: loc}))
	}
}

// RegisterLogBreathingSessionTool registers the log_breathing_session tool.
func RegisterLogBreathingSessionTool(s *server.MCPServer, db *sql.DB, user string) {
	tool := mcp.NewTool("log_breathing_session",
		mcp.WithDescription("Logs a finished breathing exercise."),
		mcp.WithNumber("duration_minutes", mcp.Required(), mcp.Description("Length of the session in whole minutes, 1 to 120.")),
		mcp.WithString("type", mcp.Description("Optional exercise type, e.g. box or 4-7-8. Defaults to guided.")),
		mcp.WithString("session_at", mcp.Description("Optional RFC 3339 timestamp. Defaults to now.")),
	)
	s.AddTool(tool, logBreathingSessionHandler(db, user))
}

func logBreathingSessionHandler(db *sql.DB, user string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		minutes, ok := intArg(request, "duration_minutes")
		if !ok {
			return mcp.NewToolResultError("'duration_minutes' must be a whole number."), nil
		}

		var sessionAt time.Time
		if raw := stringArg(request, "session_at"); raw != "" {
			t, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("'session_at' must be RFC 3339, got %q.", raw)), nil
			}
			sessionAt = t
		}

		session, err := records.LogBreathingSession(ctx, db, user, minutes, stringArg(request, "type"), sessionAt)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to log breathing session: %v", err)), nil
		}
		return jsonResult("breathing session", session)
	}
}

// RegisterListBreathingSessionsTool registers the list_breathing_sessions tool.
func RegisterListBreathingSessionsTool(s *server.MCPServer, db *sql.DB, user string) {
	tool := mcp.NewTool("list_breathing_sessions",
		mcp.WithDescription("Lists breathing sessions, newest first."),
	)
	s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		sessions, err := records.ListBreathingSessions(ctx, db, user)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list breathing sessions: %v", err)), nil
		}
		return jsonResult("breathing sessions", sessions)
	})
}

// RegisterDeleteBreathingSessionTool registers the delete_breathing_session tool.
func RegisterDeleteBreathingSessionTool(s *server.MCPServer, db *sql.DB, user string) {
	tool := mcp.NewTool("delete_breathing_session",
		mcp.WithDescription("Deletes a breathing session by id."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Breathing session id.")),
	)
	s.AddTool(tool, deleteBreathingSessionHandler(db, user))
}

func deleteBreathingSessionHandler(db *sql.DB, user string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, bad := idArg(request)
		if bad != nil {
			return bad, nil
		}
		if err := records.DeleteBreathingSession(ctx, db, user, id); err != nil {
			if errors.Is(err, records.ErrBreathingSessionNotFound) {
				return mcp.NewToolResultError(fmt.Sprintf("Breathing session '%s' not found.", id)), nil
			}
			return mcp.NewToolResultError(fmt.Sprintf("Failed to delete breathing session '%s': %v", id, err)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("Breathing session '%s' deleted successfully.", id)), nil
	}
}

// RegisterGetMoodQuoteTool registers the get_mood_quote tool.
func RegisterGetMoodQuoteTool(s *server.MCPServer) {
	tool := mcp.NewTool("get_mood_quote",
		mcp.WithDescription("Returns a motivational quote and a suggested exercise for a mood category. Unrecognized moods get a neutral quote."),
		mcp.WithString("mood", mcp.Description("Mood category.")),
	)
	s.AddTool(tool, moodQuoteHandler)
}

func moodQuoteHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category, _ := wellness.ParseCategory(stringArg(request, "mood"))
	return jsonResult("quote", quotes.Random(category))
}
