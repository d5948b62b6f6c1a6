package shell

import (
	"testing"
	"time"
)

func TestCacheRoundTrip(t *testing.T) {
	dir := t.TempDir()
	c := &PromptCache{
		Today:          true,
		Streak:         4,
		TodayDate:      time.Now().Format("2006-01-02"),
		StorageBackend: "markdown",
		UpdatedAt:      time.Now(),
	}
	if err := WriteCache(dir, c); err != nil {
		t.Fatalf("WriteCache: %v", err)
	}

	got := ReadCache(dir)
	if got == nil {
		t.Fatal("expected cache to be readable")
	}
	if got.Streak != 4 || !got.Today || got.StorageBackend != "markdown" {
		t.Errorf("unexpected cache contents: %+v", got)
	}
}

func TestReadCacheMissing(t *testing.T) {
	if c := ReadCache(t.TempDir()); c != nil {
		t.Errorf("expected nil for missing cache, got %+v", c)
	}
}

func TestIsFresh(t *testing.T) {
	today := time.Now().Format("2006-01-02")

	var nilCache *PromptCache
	if nilCache.IsFresh(time.Minute) {
		t.Error("nil cache must be stale")
	}

	fresh := &PromptCache{TodayDate: today, UpdatedAt: time.Now()}
	if !fresh.IsFresh(time.Minute) {
		t.Error("recent cache must be fresh")
	}

	expired := &PromptCache{TodayDate: today, UpdatedAt: time.Now().Add(-10 * time.Minute)}
	if expired.IsFresh(time.Minute) {
		t.Error("cache past TTL must be stale")
	}

	// Midnight rollover invalidates regardless of TTL
	yesterday := &PromptCache{TodayDate: time.Now().AddDate(0, 0, -1).Format("2006-01-02"), UpdatedAt: time.Now()}
	if yesterday.IsFresh(time.Hour) {
		t.Error("cache from a previous day must be stale")
	}
}

func TestInvalidateCache(t *testing.T) {
	dir := t.TempDir()
	c := &PromptCache{TodayDate: time.Now().Format("2006-01-02"), UpdatedAt: time.Now()}
	if err := WriteCache(dir, c); err != nil {
		t.Fatalf("WriteCache: %v", err)
	}
	if err := InvalidateCache(dir); err != nil {
		t.Fatalf("InvalidateCache: %v", err)
	}
	if ReadCache(dir) != nil {
		t.Error("expected cache gone after invalidation")
	}

	// Invalidating an absent cache is not an error
	if err := InvalidateCache(dir); err != nil {
		t.Errorf("second InvalidateCache: %v", err)
	}
}
