package debounce

import (
	"reflect"
	"sync"
	"testing"
	"time"
)

// recorder collects fired evaluations behind a mutex.
type recorder struct {
	mu    sync.Mutex
	texts []string
	fired chan struct{}
}

func newRecorder() *recorder {
	return &recorder{fired: make(chan struct{}, 16)}
}

func (r *recorder) run(_ uint64, text string) {
	r.mu.Lock()
	r.texts = append(r.texts, text)
	r.mu.Unlock()
	r.fired <- struct{}{}
}

func (r *recorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.texts))
	copy(out, r.texts)
	return out
}

func waitFired(t *testing.T, r *recorder) {
	t.Helper()
	select {
	case <-r.fired:
	case <-time.After(2 * time.Second):
		t.Fatal("evaluation never fired")
	}
}

func TestBurstCoalescesToOne(t *testing.T) {
	r := newRecorder()
	d := New(30*time.Millisecond, r.run)

	for _, text := range []string{"p", "pr", "pra", "pray", "praye", "prayer"} {
		d.Submit(text)
		time.Sleep(5 * time.Millisecond)
	}
	waitFired(t, r)

	// Let any stray timers land before asserting.
	time.Sleep(60 * time.Millisecond)
	got := r.all()
	if len(got) != 1 {
		t.Fatalf("burst fired %d evaluations, want 1: %v", len(got), got)
	}
	if got[0] != "prayer" {
		t.Errorf("evaluated %q, want the final text %q", got[0], "prayer")
	}
}

func TestQuiescentSubmissionsEachFire(t *testing.T) {
	r := newRecorder()
	d := New(20*time.Millisecond, r.run)

	d.Submit("first")
	waitFired(t, r)
	d.Submit("second")
	waitFired(t, r)

	if got := r.all(); !reflect.DeepEqual(got, []string{"first", "second"}) {
		t.Errorf("fired %v, want [first second]", got)
	}
}

func TestAcceptRejectsSuperseded(t *testing.T) {
	d := New(time.Hour, nil)
	old := d.Submit("stale")
	current := d.Submit("fresh")
	d.Cancel()

	if d.Accept(old) {
		t.Error("superseded sequence must not be accepted")
	}
	if !d.Accept(current) {
		t.Error("latest sequence must be accepted")
	}
}

func TestFlushFiresImmediately(t *testing.T) {
	r := newRecorder()
	d := New(time.Hour, r.run)

	d.Submit("now")
	d.Flush()
	waitFired(t, r)

	if got := r.all(); len(got) != 1 || got[0] != "now" {
		t.Errorf("flush fired %v, want [now]", got)
	}
}

func TestFlushWithNothingPending(t *testing.T) {
	r := newRecorder()
	d := New(20*time.Millisecond, r.run)
	d.Flush()

	time.Sleep(50 * time.Millisecond)
	if got := r.all(); len(got) != 0 {
		t.Errorf("flush with nothing pending fired %v", got)
	}
}

func TestCancelDropsPending(t *testing.T) {
	r := newRecorder()
	d := New(20*time.Millisecond, r.run)

	d.Submit("doomed")
	d.Cancel()

	time.Sleep(60 * time.Millisecond)
	if got := r.all(); len(got) != 0 {
		t.Errorf("cancelled submission fired %v", got)
	}
}

func TestHistoryMostRecentFirst(t *testing.T) {
	h := NewHistory(5)
	h.Commit("prayer")
	h.Commit("family")
	h.Commit("health")

	want := []string{"health", "family", "prayer"}
	if got := h.Recent(); !reflect.DeepEqual(got, want) {
		t.Errorf("Recent = %v, want %v", got, want)
	}
}

func TestHistoryDedupeCaseInsensitive(t *testing.T) {
	h := NewHistory(5)
	h.Commit("Prayer")
	h.Commit("family")
	h.Commit("PRAYER")

	got := h.Recent()
	want := []string{"PRAYER", "family"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Recent = %v, want %v (recommit moves to front)", got, want)
	}
}

func TestHistoryCap(t *testing.T) {
	h := NewHistory(5)
	for _, term := range []string{"a", "b", "c", "d", "e", "f"} {
		h.Commit(term)
	}

	got := h.Recent()
	if len(got) != 5 {
		t.Fatalf("len = %d, want 5", len(got))
	}
	if got[0] != "f" || got[4] != "b" {
		t.Errorf("Recent = %v, want newest five [f e d c b]", got)
	}
}

func TestHistoryIgnoresBlank(t *testing.T) {
	h := NewHistory(5)
	h.Commit("")
	h.Commit("   ")
	if got := h.Recent(); len(got) != 0 {
		t.Errorf("blank commits recorded: %v", got)
	}
}
