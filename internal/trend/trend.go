// Package trend classifies mood direction over a window of check-ins. The
// classification compares positivity between the earlier and later halves of
// the window, split by entry count so sparse logging does not skew the split.
package trend

import (
	"sort"

	"github.com/devoto-app/devoto/internal/entry"
)

const (
	// MinEntriesForSplit is the smallest window worth halving; anything
	// smaller reports stable with low confidence.
	MinEntriesForSplit = 4

	// DefaultThreshold is the positivity-rate delta, in fractional
	// points, that separates stable from improving/declining.
	DefaultThreshold = 0.10

	// epsilon absorbs float noise so a delta of exactly the threshold
	// classifies as stable.
	epsilon = 1e-9
)

// Direction is the trend classification.
type Direction string

const (
	Improving Direction = "improving"
	Stable    Direction = "stable"
	Declining Direction = "declining"
)

// Report is the derived mood trend for a window of check-ins.
type Report struct {
	DominantMood   entry.Category `json:"dominant_mood,omitempty"`
	PositivityRate float64        `json:"positivity_rate"`
	Trend          Direction      `json:"trend"`

	// LowConfidence marks windows too small to split meaningfully.
	LowConfidence bool `json:"low_confidence,omitempty"`

	Entries int `json:"entries"`
}

// Classify derives the trend report for a window of mood entries, using the
// default threshold.
func Classify(entries []entry.Entry) Report {
	return ClassifyWithThreshold(entries, DefaultThreshold)
}

// ClassifyWithThreshold derives the trend report with an explicit
// stable-band threshold.
func ClassifyWithThreshold(entries []entry.Entry, threshold float64) Report {
	ordered := make([]entry.Entry, len(entries))
	copy(ordered, entries)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].Date.Equal(ordered[j].Date) {
			return ordered[i].Date.Before(ordered[j].Date)
		}
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})

	report := Report{
		Trend:   Stable,
		Entries: len(ordered),
	}
	if len(ordered) == 0 {
		report.LowConfidence = true
		return report
	}

	report.DominantMood = dominantMood(ordered)
	report.PositivityRate = positivityRate(ordered)

	if len(ordered) < MinEntriesForSplit {
		report.LowConfidence = true
		return report
	}

	// Split by entry count, not days.
	half := len(ordered) / 2
	earlier := positivityRate(ordered[:half])
	later := positivityRate(ordered[half:])
	delta := later - earlier

	switch {
	case delta > threshold+epsilon:
		report.Trend = Improving
	case delta < -threshold-epsilon:
		report.Trend = Declining
	}
	return report
}

// dominantMood returns the mode of the mood category; ties break toward the
// mood seen most recently among the tied values.
func dominantMood(ordered []entry.Entry) entry.Category {
	counts := make(map[entry.Category]int)
	lastSeen := make(map[entry.Category]int)
	for i, e := range ordered {
		counts[e.Category]++
		lastSeen[e.Category] = i
	}

	var best entry.Category
	bestCount, bestSeen := -1, -1
	for mood, count := range counts {
		if count > bestCount || (count == bestCount && lastSeen[mood] > bestSeen) {
			best = mood
			bestCount = count
			bestSeen = lastSeen[mood]
		}
	}
	return best
}

// positivityRate is the fraction of entries whose mood carries positive
// valence in the fixed mood taxonomy.
func positivityRate(entries []entry.Entry) float64 {
	if len(entries) == 0 {
		return 0
	}
	positive := 0
	for _, e := range entries {
		if entry.MoodValence(e.Category) == entry.ValencePositive {
			positive++
		}
	}
	return float64(positive) / float64(len(entries))
}
