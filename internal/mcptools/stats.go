package mcptools

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/devoto-app/devoto/internal/entry"
	"github.com/devoto-app/devoto/internal/store"
	"github.com/devoto-app/devoto/internal/streak"
	"github.com/devoto-app/devoto/internal/summary"
	"github.com/devoto-app/devoto/internal/trend"
)

// StreakHandler returns the handler function for the get_streak MCP tool.
func StreakHandler(reg *store.Registry) func(ctx context.Context, req *mcp.CallToolRequest, input StreakInput) (*mcp.CallToolResult, StreakOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input StreakInput) (*mcp.CallToolResult, StreakOutput, error) {
		s, err := resolveStore(reg, input.Tracker, input.Habit)
		if err != nil {
			return nil, StreakOutput{}, err
		}

		result := streak.ForStore(s, streak.Qualification(s.Tracker()), time.Now())
		return nil, StreakOutput{
			Current:   result.Current,
			Longest:   result.Longest,
			TotalDays: result.TotalQualifyingDays,
		}, nil
	}
}

// SummaryHandler returns the handler function for the get_summary MCP tool.
func SummaryHandler(reg *store.Registry, weekStart time.Weekday) func(ctx context.Context, req *mcp.CallToolRequest, input SummaryInput) (*mcp.CallToolResult, SummaryOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SummaryInput) (*mcp.CallToolResult, SummaryOutput, error) {
		s, err := resolveStore(reg, input.Tracker, input.Habit)
		if err != nil {
			return nil, SummaryOutput{}, err
		}

		complete := summary.Completeness(s.Tracker())
		var sum summary.Summary
		switch input.Period {
		case "", "week":
			sum, err = summary.ComputeWeek(s, time.Now(), input.Offset, weekStart, complete)
		case "month":
			sum, err = summary.ComputeMonth(s, time.Now(), input.Offset, complete)
		default:
			return nil, SummaryOutput{}, errUnknownPeriod(input.Period)
		}
		if err != nil {
			return nil, SummaryOutput{}, err
		}

		out := SummaryOutput{
			Range:           sum.RangeLabel,
			TotalItems:      sum.TotalItems,
			DaysWithEntries: sum.DaysWithEntries,
			CompleteDays:    sum.CompleteDays,
		}
		for _, cc := range sum.Distribution {
			out.Distribution = append(out.Distribution, CategoryCountResult{
				Category: string(cc.Category),
				Count:    cc.Count,
			})
		}
		return nil, out, nil
	}
}

// TrendHandler returns the handler function for the get_trend MCP tool.
func TrendHandler(reg *store.Registry) func(ctx context.Context, req *mcp.CallToolRequest, input TrendInput) (*mcp.CallToolResult, TrendOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input TrendInput) (*mcp.CallToolResult, TrendOutput, error) {
		s, err := reg.Tracker(entry.TrackerMood)
		if err != nil {
			return nil, TrendOutput{}, err
		}

		days := input.Days
		if days <= 0 {
			days = 30
		}
		today := entry.NormalizeDate(time.Now())
		entries, err := s.EntriesInRange(today.AddDate(0, 0, -(days-1)), today)
		if err != nil {
			return nil, TrendOutput{}, err
		}

		report := trend.Classify(entries)
		return nil, TrendOutput{
			DominantMood:   string(report.DominantMood),
			PositivityRate: report.PositivityRate,
			Trend:          string(report.Trend),
			LowConfidence:  report.LowConfidence,
			Entries:        report.Entries,
		}, nil
	}
}
