package mcptools

// SearchInput is the input schema for the search_entries MCP tool.
type SearchInput struct {
	Tracker       string `json:"tracker" jsonschema-description:"Tracker to search: journal, gratitude, habit, or mood"`
	Habit         string `json:"habit,omitempty" jsonschema-description:"Habit kind, required when tracker is habit"`
	Query         string `json:"query,omitempty" jsonschema-description:"Text to match against items, notes, verses, and category names"`
	Category      string `json:"category,omitempty" jsonschema-description:"Keep only entries tagged with this category"`
	FavoritesOnly bool   `json:"favorites_only,omitempty" jsonschema-description:"Keep only favorited entries"`
	WithVerse     bool   `json:"with_verse,omitempty" jsonschema-description:"Keep only entries with a linked verse"`
	StartDate     string `json:"start_date,omitempty" jsonschema-description:"ISO date lower bound (inclusive)"`
	EndDate       string `json:"end_date,omitempty" jsonschema-description:"ISO date upper bound (inclusive)"`
	Sort          string `json:"sort,omitempty" jsonschema-description:"Sort order: newest, oldest, or most-items"`
	Limit         int    `json:"limit,omitempty" jsonschema-description:"Maximum number of results"`
}

// SearchOutput is the output schema for the search_entries MCP tool.
type SearchOutput struct {
	Entries []EntryResult `json:"entries"`
}

// EntryResult is the common output format for entry-related MCP tools.
type EntryResult struct {
	ID       string `json:"id"`
	Tracker  string `json:"tracker"`
	Date     string `json:"date"`
	Category string `json:"category,omitempty"`
	Preview  string `json:"preview"`
	Favorite bool   `json:"favorite,omitempty"`
	Verse    string `json:"verse,omitempty"`
}

// ItemInput is one logged item within a create_entry call.
type ItemInput struct {
	Text     string `json:"text" jsonschema-description:"Item text"`
	Category string `json:"category,omitempty" jsonschema-description:"Category tag for this item"`
}

// CreateEntryInput is the input schema for the create_entry MCP tool.
type CreateEntryInput struct {
	Tracker  string      `json:"tracker" jsonschema-description:"Tracker to log into: journal, gratitude, habit, or mood"`
	Habit    string      `json:"habit,omitempty" jsonschema-description:"Habit kind, required when tracker is habit"`
	Date     string      `json:"date,omitempty" jsonschema-description:"ISO date of the entry; defaults to today"`
	Category string      `json:"category,omitempty" jsonschema-description:"Entry-level category (required for habit and mood)"`
	Items    []ItemInput `json:"items,omitempty" jsonschema-description:"Logged items"`
	Note     string      `json:"note,omitempty" jsonschema-description:"Free-form note body"`
	Verse    string      `json:"verse,omitempty" jsonschema-description:"Linked verse reference"`
	Favorite bool        `json:"favorite,omitempty" jsonschema-description:"Mark the entry as a favorite"`
}

// CreateEntryOutput is the output schema for the create_entry MCP tool.
type CreateEntryOutput struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Preview string `json:"preview"`
}

// StreakInput is the input schema for the get_streak MCP tool.
type StreakInput struct {
	Tracker string `json:"tracker" jsonschema-description:"Tracker to compute the streak for"`
	Habit   string `json:"habit,omitempty" jsonschema-description:"Habit kind, required when tracker is habit"`
}

// StreakOutput is the output schema for the get_streak MCP tool.
type StreakOutput struct {
	Current   int `json:"current"`
	Longest   int `json:"longest"`
	TotalDays int `json:"total_days"`
}

// SummaryInput is the input schema for the get_summary MCP tool.
type SummaryInput struct {
	Tracker string `json:"tracker" jsonschema-description:"Tracker to summarize"`
	Habit   string `json:"habit,omitempty" jsonschema-description:"Habit kind, required when tracker is habit"`
	Period  string `json:"period,omitempty" jsonschema-description:"Aggregation period: week or month (default week)"`
	Offset  int    `json:"offset,omitempty" jsonschema-description:"Periods back from the current one (0 = current, -1 = previous)"`
}

// CategoryCountResult is one bucket of a summary distribution.
type CategoryCountResult struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// SummaryOutput is the output schema for the get_summary MCP tool.
type SummaryOutput struct {
	Range           string                `json:"range"`
	TotalItems      int                   `json:"total_items"`
	DaysWithEntries int                   `json:"days_with_entries"`
	CompleteDays    *int                  `json:"complete_days,omitempty"`
	Distribution    []CategoryCountResult `json:"distribution"`
}

// TrendInput is the input schema for the get_trend MCP tool.
type TrendInput struct {
	Days int `json:"days,omitempty" jsonschema-description:"Window length in days ending today (default 30)"`
}

// TrendOutput is the output schema for the get_trend MCP tool.
type TrendOutput struct {
	DominantMood   string  `json:"dominant_mood,omitempty"`
	PositivityRate float64 `json:"positivity_rate"`
	Trend          string  `json:"trend"`
	LowConfidence  bool    `json:"low_confidence,omitempty"`
	Entries        int     `json:"entries"`
}
