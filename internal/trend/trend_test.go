package trend

import (
	"math"
	"testing"
	"time"

	"github.com/devoto-app/devoto/internal/entry"
)

func moodWindow(levels ...entry.Category) []entry.Entry {
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local)
	entries := make([]entry.Entry, len(levels))
	for i, level := range levels {
		entries[i] = entry.Entry{
			Tracker:   entry.TrackerMood,
			Date:      base.AddDate(0, 0, i),
			Category:  level,
			CreatedAt: base.AddDate(0, 0, i),
		}
	}
	return entries
}

func TestEmptyWindow(t *testing.T) {
	got := Classify(nil)
	if got.Trend != Stable || !got.LowConfidence {
		t.Errorf("empty window = %+v, want stable/low-confidence", got)
	}
}

func TestSmallWindowLowConfidence(t *testing.T) {
	got := Classify(moodWindow(entry.MoodGreat, entry.MoodStruggling, entry.MoodStruggling))
	if got.Trend != Stable {
		t.Errorf("trend = %s, want stable for windows under %d entries", got.Trend, MinEntriesForSplit)
	}
	if !got.LowConfidence {
		t.Error("small window must report low confidence")
	}
}

func TestScenarioDeclining(t *testing.T) {
	// [positive, positive, negative, negative, negative, positive]:
	// earlier half 2/3 positive, later half 1/3, delta -33 points.
	got := Classify(moodWindow(
		entry.MoodGood, entry.MoodGreat, entry.MoodLow,
		entry.MoodStruggling, entry.MoodLow, entry.MoodGood,
	))
	if got.Trend != Declining {
		t.Errorf("trend = %s, want declining", got.Trend)
	}
	if math.Abs(got.PositivityRate-0.5) > 1e-9 {
		t.Errorf("positivity = %v, want 0.5", got.PositivityRate)
	}
}

func TestImproving(t *testing.T) {
	got := Classify(moodWindow(
		entry.MoodLow, entry.MoodStruggling, entry.MoodLow,
		entry.MoodGood, entry.MoodGreat, entry.MoodGood,
	))
	if got.Trend != Improving {
		t.Errorf("trend = %s, want improving", got.Trend)
	}
}

func TestExactThresholdIsStable(t *testing.T) {
	// Earlier half 0/10 positive, later half 1/10: delta is exactly the
	// 10-point threshold and must classify stable.
	var levels []entry.Category
	for i := 0; i < 10; i++ {
		levels = append(levels, entry.MoodOkay)
	}
	levels = append(levels, entry.MoodGood)
	for i := 0; i < 9; i++ {
		levels = append(levels, entry.MoodOkay)
	}
	got := Classify(moodWindow(levels...))
	if got.Trend != Stable {
		t.Errorf("delta of exactly the threshold = %s, want stable", got.Trend)
	}
	if got.LowConfidence {
		t.Error("a 20-entry window is not low confidence")
	}
}

func TestJustOverThreshold(t *testing.T) {
	// Earlier half 0/10, later half 2/10: delta 20 points, improving.
	var levels []entry.Category
	for i := 0; i < 10; i++ {
		levels = append(levels, entry.MoodOkay)
	}
	levels = append(levels, entry.MoodGood, entry.MoodGreat)
	for i := 0; i < 8; i++ {
		levels = append(levels, entry.MoodOkay)
	}
	got := Classify(moodWindow(levels...))
	if got.Trend != Improving {
		t.Errorf("delta over the threshold = %s, want improving", got.Trend)
	}
}

func TestDominantMoodMode(t *testing.T) {
	got := Classify(moodWindow(
		entry.MoodGood, entry.MoodGood, entry.MoodLow, entry.MoodGood, entry.MoodOkay,
	))
	if got.DominantMood != entry.MoodGood {
		t.Errorf("dominant = %s, want good", got.DominantMood)
	}
}

func TestDominantMoodTieBreaksMostRecent(t *testing.T) {
	// good x2 and low x2 tie; low appears most recently.
	got := Classify(moodWindow(
		entry.MoodGood, entry.MoodLow, entry.MoodGood, entry.MoodLow,
	))
	if got.DominantMood != entry.MoodLow {
		t.Errorf("dominant = %s, want low (most recent among tied)", got.DominantMood)
	}
}

func TestOddWindowSplit(t *testing.T) {
	// Five entries: earlier half is the first two, later half the last
	// three. Earlier 0/2, later 3/3: improving.
	got := Classify(moodWindow(
		entry.MoodLow, entry.MoodOkay,
		entry.MoodGood, entry.MoodGreat, entry.MoodGood,
	))
	if got.Trend != Improving {
		t.Errorf("trend = %s, want improving", got.Trend)
	}
}

func TestClassifySortsByDate(t *testing.T) {
	// Entries arriving out of order must be windowed chronologically.
	entries := moodWindow(
		entry.MoodLow, entry.MoodLow, entry.MoodGood, entry.MoodGreat,
	)
	shuffled := []entry.Entry{entries[3], entries[0], entries[2], entries[1]}
	got := Classify(shuffled)
	if got.Trend != Improving {
		t.Errorf("trend = %s, want improving after chronological ordering", got.Trend)
	}
}
