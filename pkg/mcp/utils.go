package mcp

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
)

func arguments(request mcp.CallToolRequest) map[string]any {
	args, _ := any(request.Params.Arguments).(map[string]any)
	return args
}

// stringArg returns a trimmed string argument, "" when absent or not a string.
func stringArg(request mcp.CallToolRequest, name string) string {
	s, _ := arguments(request)[name].(string)
	return strings.TrimSpace(s)
}

func boolArg(request mcp.CallToolRequest, name string) bool {
	b, _ := arguments(request)[name].(bool)
	return b
}

// intArg returns a whole-number argument. JSON numbers arrive as float64.
func intArg(request mcp.CallToolRequest, name string) (int, bool) {
	f, ok := arguments(request)[name].(float64)
	if !ok || f != float64(int(f)) {
		return 0, false
	}
	return int(f), true
}

func idArg(request mcp.CallToolRequest) (uuid.UUID, *mcp.CallToolResult) {
	raw := stringArg(request, "id")
	if raw == "" {
		return uuid.Nil, mcp.NewToolResultError("'id' parameter is required.")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, mcp.NewToolResultError(fmt.Sprintf("'id' must be a UUID, got %q.", raw))
	}
	return id, nil
}

func jsonResult(what string, v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to serialize %s to JSON: %v", what, err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
