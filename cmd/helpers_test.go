package cmd

import (
	"testing"

	"github.com/devoto-app/devoto/internal/config"
	"github.com/devoto-app/devoto/internal/store"
)

func setupTestEnv(t *testing.T) {
	t.Helper()
	reg, err := store.NewRegistry(store.Options{})
	if err != nil {
		t.Fatalf("creating registry: %v", err)
	}
	registry = reg
	appConfig = &config.Config{
		Storage:   "markdown",
		DataDir:   t.TempDir(),
		WeekStart: "monday",
	}
	jsonOutput = false

	jotVerse, jotNote, jotDate, jotFavorite = "", "", "", false
	thanksCategory, thanksDate = "", ""
	habitNote, habitDate = "", ""
	moodNote, moodDate = "", ""
	listHabit, listCategory, listFrom, listTo, listSearch, listSort = "", "", "", "", "", ""
	listFavorites, listVerse, listByMonth, listIDOnly = false, false, false, false
	editVerse = ""
	exportHabit, exportFrom, exportTo = "", "", ""
}
