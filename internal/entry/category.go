package entry

import "fmt"

// Category is one tag from a tracker's fixed taxonomy: a mood level, a
// gratitude category, or a habit kind.
type Category string

// Mood levels, ordered best to worst. The order doubles as the distribution
// tie-break order.
const (
	MoodGreat      Category = "great"
	MoodGood       Category = "good"
	MoodOkay       Category = "okay"
	MoodLow        Category = "low"
	MoodStruggling Category = "struggling"
)

// Gratitude categories.
const (
	GratitudeFaith     Category = "faith"
	GratitudeFamily    Category = "family"
	GratitudeProvision Category = "provision"
	GratitudeHealth    Category = "health"
	GratitudeCommunity Category = "community"
	GratitudeOther     Category = "other"
)

// Habit kinds.
const (
	HabitPrayer  Category = "prayer"
	HabitReading Category = "reading"
	HabitFasting Category = "fasting"
	HabitService Category = "service"
)

// Valence classifies a mood level as positive, neutral, or negative.
// The mapping is fixed by the mood taxonomy, not derived from numbers.
type Valence int

const (
	ValencePositive Valence = iota
	ValenceNeutral
	ValenceNegative
)

var moodValence = map[Category]Valence{
	MoodGreat:      ValencePositive,
	MoodGood:       ValencePositive,
	MoodOkay:       ValenceNeutral,
	MoodLow:        ValenceNegative,
	MoodStruggling: ValenceNegative,
}

// taxonomies holds each tracker's categories in declared order.
var taxonomies = map[Tracker][]Category{
	TrackerMood:      {MoodGreat, MoodGood, MoodOkay, MoodLow, MoodStruggling},
	TrackerGratitude: {GratitudeFaith, GratitudeFamily, GratitudeProvision, GratitudeHealth, GratitudeCommunity, GratitudeOther},
	TrackerHabit:     {HabitPrayer, HabitReading, HabitFasting, HabitService},
}

var displayNames = map[Category]string{
	MoodGreat:          "Great",
	MoodGood:           "Good",
	MoodOkay:           "Okay",
	MoodLow:            "Low",
	MoodStruggling:     "Struggling",
	GratitudeFaith:     "Faith",
	GratitudeFamily:    "Family",
	GratitudeProvision: "Provision",
	GratitudeHealth:    "Health",
	GratitudeCommunity: "Community",
	GratitudeOther:     "Other",
	HabitPrayer:        "Prayer",
	HabitReading:       "Scripture reading",
	HabitFasting:       "Fasting",
	HabitService:       "Service",
}

// Categories returns the tracker's taxonomy in declared order. Journal
// entries carry no categories and return nil.
func Categories(t Tracker) []Category {
	return taxonomies[t]
}

// CategoryRank returns the category's position within its tracker's declared
// order, for deterministic distribution tie-breaks. Unknown categories sort
// last.
func CategoryRank(t Tracker, c Category) int {
	for i, candidate := range taxonomies[t] {
		if candidate == c {
			return i
		}
	}
	return len(taxonomies[t])
}

// ValidateCategory checks that c belongs to the tracker's taxonomy.
func ValidateCategory(t Tracker, c Category) error {
	for _, candidate := range taxonomies[t] {
		if candidate == c {
			return nil
		}
	}
	return fmt.Errorf("unknown %s category: %q", t, c)
}

// MoodValence returns the fixed valence for a mood level. Unknown levels are
// neutral so a stray value can never inflate the positivity rate.
func MoodValence(c Category) Valence {
	if v, ok := moodValence[c]; ok {
		return v
	}
	return ValenceNeutral
}

// DisplayName returns the human-readable name shown in lists and matched by
// text search.
func (c Category) DisplayName() string {
	if name, ok := displayNames[c]; ok {
		return name
	}
	return string(c)
}
