package mcptools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/devoto-app/devoto/internal/entry"
	"github.com/devoto-app/devoto/internal/query"
	"github.com/devoto-app/devoto/internal/store"
)

// SearchHandler returns the handler function for the search_entries MCP tool.
func SearchHandler(reg *store.Registry) func(ctx context.Context, req *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, SearchOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, SearchOutput, error) {
		s, err := resolveStore(reg, input.Tracker, input.Habit)
		if err != nil {
			return nil, SearchOutput{}, err
		}

		limit := input.Limit
		if limit <= 0 {
			limit = 10
		}

		desc := query.Descriptor{
			Text:          input.Query,
			Category:      entry.Category(input.Category),
			FavoritesOnly: input.FavoritesOnly,
			WithVerse:     input.WithVerse,
			Sort:          query.ParseOrder(input.Sort),
		}
		if input.StartDate != "" {
			start, err := parseDate(input.StartDate)
			if err != nil {
				return nil, SearchOutput{}, err
			}
			desc.Start = &start
		}
		if input.EndDate != "" {
			end, err := parseDate(input.EndDate)
			if err != nil {
				return nil, SearchOutput{}, err
			}
			desc.End = &end
		}

		entries, err := query.Evaluate(s, desc)
		if err != nil {
			return nil, SearchOutput{}, err
		}

		results := make([]EntryResult, 0, limit)
		for _, e := range entries {
			results = append(results, toResult(e))
			if len(results) >= limit {
				break
			}
		}
		return nil, SearchOutput{Entries: results}, nil
	}
}

func toResult(e entry.Entry) EntryResult {
	return EntryResult{
		ID:       e.ID,
		Tracker:  string(e.Tracker),
		Date:     entry.DayKey(e.Date),
		Category: string(e.Category),
		Preview:  e.Preview(100),
		Favorite: e.Favorite,
		Verse:    e.Verse,
	}
}
