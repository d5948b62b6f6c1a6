package mcptools

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/devoto-app/devoto/internal/entry"
	"github.com/devoto-app/devoto/internal/shell"
	"github.com/devoto-app/devoto/internal/store"
)

// CreateEntryHandler returns the handler function for the create_entry MCP tool.
func CreateEntryHandler(reg *store.Registry, dataDir string) func(ctx context.Context, req *mcp.CallToolRequest, input CreateEntryInput) (*mcp.CallToolResult, CreateEntryOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input CreateEntryInput) (*mcp.CallToolResult, CreateEntryOutput, error) {
		s, err := resolveStore(reg, input.Tracker, input.Habit)
		if err != nil {
			return nil, CreateEntryOutput{}, err
		}

		date := time.Now()
		if input.Date != "" {
			date, err = parseDate(input.Date)
			if err != nil {
				return nil, CreateEntryOutput{}, err
			}
		}

		e := entry.Entry{
			Tracker:  s.Tracker(),
			Date:     date,
			Category: entry.Category(input.Category),
			Note:     input.Note,
			Verse:    input.Verse,
			Favorite: input.Favorite,
		}
		for _, item := range input.Items {
			e.Items = append(e.Items, entry.Item{
				Text:     item.Text,
				Category: entry.Category(item.Category),
			})
		}

		id, err := s.Insert(e)
		if err != nil {
			return nil, CreateEntryOutput{}, err
		}
		created, err := s.Get(id)
		if err != nil {
			return nil, CreateEntryOutput{}, err
		}

		// Invalidate shell prompt cache (best-effort)
		if dataDir != "" {
			_ = shell.InvalidateCache(dataDir)
		}

		return nil, CreateEntryOutput{
			ID:      created.ID,
			Date:    entry.DayKey(created.Date),
			Preview: created.Preview(200),
		}, nil
	}
}
