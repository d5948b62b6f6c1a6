package mcptools

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/devoto-app/devoto/internal/entry"
	"github.com/devoto-app/devoto/internal/store"
)

// resolveStore maps tool input names onto a concrete store. Habit requests
// must name the habit kind.
func resolveStore(reg *store.Registry, trackerName, habitName string) (*store.Store, error) {
	tracker, err := entry.ParseTracker(trackerName)
	if err != nil {
		return nil, err
	}
	return reg.Resolve(tracker, entry.Category(habitName))
}

// NewInMemoryServer creates an in-memory MCP server exposing the tracking
// tools. Returns the server and a client transport for connecting to it.
func NewInMemoryServer(reg *store.Registry, weekStart time.Weekday) (*mcp.Server, mcp.Transport) {
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	server := CreateMCPServer(reg, "", weekStart)

	go func() {
		_, _ = server.Connect(context.Background(), serverTransport, nil)
	}()

	return server, clientTransport
}

// CreateMCPServer creates an MCP server with registered tracking tools.
// dataDir is used for cache invalidation after write operations; pass "" to skip.
func CreateMCPServer(reg *store.Registry, dataDir string, weekStart time.Weekday) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "devoto",
		Version: "1.0.0",
	}, nil)

	// Read tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_entries",
		Description: "Search and filter entries in one tracker",
	}, SearchHandler(reg))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_streak",
		Description: "Current and longest consecutive-day streak for a tracker",
	}, StreakHandler(reg))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_summary",
		Description: "Weekly or monthly item totals and category distribution",
	}, SummaryHandler(reg, weekStart))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_trend",
		Description: "Mood trend over a recent window of check-ins",
	}, TrendHandler(reg))

	// Write tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_entry",
		Description: "Log a new entry into a tracker",
	}, CreateEntryHandler(reg, dataDir))

	return server
}
