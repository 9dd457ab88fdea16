package leaderboard

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func assertRanked(t *testing.T, b *Board) {
	t.Helper()
	entries := b.Entries()
	seen := map[string]bool{}
	for i, e := range entries {
		if seen[e.Name] {
			t.Fatalf("expected one entry per name, %q appears twice in %+v", e.Name, entries)
		}
		seen[e.Name] = true
		if i > 0 && entries[i-1].Score < e.Score {
			t.Fatalf("expected non-increasing scores, got %+v", entries)
		}
	}
}

func TestUpsertSameNameAccumulates(t *testing.T) {
	b := New()
	b.Upsert("P", 20)
	got := b.Upsert("P", 30)

	if got.Score != 50 {
		t.Fatalf("expected score 50, got %d", got.Score)
	}
	if b.Len() != 1 {
		t.Fatalf("expected exactly one entry, got %d", b.Len())
	}
	e, ok := b.Find("P")
	if !ok || e.Score != 50 {
		t.Fatalf("expected P=50, got %+v (found=%v)", e, ok)
	}
}

func TestUpsertOrdersDescending(t *testing.T) {
	b := New()
	b.Upsert("ana", 10)
	b.Upsert("bia", 40)
	b.Upsert("caio", 20)
	b.Upsert("ana", 35)

	want := []Entry{{"ana", 45}, {"bia", 40}, {"caio", 20}}
	if diff := cmp.Diff(want, b.Entries()); diff != "" {
		t.Fatalf("unexpected ranking (-want +got):\n%s", diff)
	}
}

func TestUpsertTieNewestFirst(t *testing.T) {
	b := New()
	b.Upsert("old", 30)
	b.Upsert("new", 30)

	if top := b.Top(1); top[0].Name != "new" {
		t.Fatalf("expected newest update to rank first among ties, got %+v", b.Entries())
	}

	b.Upsert("old", 0)
	if top := b.Top(1); top[0].Name != "old" {
		t.Fatalf("expected re-updated entry to move ahead of equal score, got %+v", b.Entries())
	}
}

func TestUpsertNegativeDeltaMovesDown(t *testing.T) {
	b := New()
	b.Upsert("a", 50)
	b.Upsert("b", 40)
	b.Upsert("a", -20)

	want := []Entry{{"b", 40}, {"a", 30}}
	if diff := cmp.Diff(want, b.Entries()); diff != "" {
		t.Fatalf("unexpected ranking (-want +got):\n%s", diff)
	}
}

func TestFindIsCaseSensitive(t *testing.T) {
	b := New()
	b.Upsert("Player", 10)

	if _, ok := b.Find("player"); ok {
		t.Fatalf("expected case-sensitive lookup")
	}
	b.Upsert("player", 5)
	if b.Len() != 2 {
		t.Fatalf("expected two distinct entries, got %d", b.Len())
	}
}

func TestTopBounds(t *testing.T) {
	b := New()
	b.Upsert("a", 1)
	b.Upsert("b", 2)

	if got := b.Top(10); len(got) != 2 {
		t.Fatalf("expected all 2 entries when k exceeds size, got %d", len(got))
	}
	if got := b.Top(0); len(got) != 0 {
		t.Fatalf("expected no entries for k=0, got %d", len(got))
	}
	top := b.Top(1)
	top[0].Score = 999
	if e, _ := b.Find("b"); e.Score != 2 {
		t.Fatalf("expected Top to return a copy, board changed to %d", e.Score)
	}
}

func TestClear(t *testing.T) {
	b := New()
	b.Upsert("a", 1)
	b.Clear()
	if b.Len() != 0 {
		t.Fatalf("expected empty board after clear, got %d", b.Len())
	}
	if _, ok := b.Find("a"); ok {
		t.Fatalf("expected no entries after clear")
	}
}

func TestRestoreKeepsTieOrder(t *testing.T) {
	b := New()
	b.Restore([]Entry{{"x", 30}, {"y", 30}, {"z", 10}})

	want := []Entry{{"x", 30}, {"y", 30}, {"z", 10}}
	if diff := cmp.Diff(want, b.Entries()); diff != "" {
		t.Fatalf("unexpected restored ranking (-want +got):\n%s", diff)
	}
}

func TestRandomUpsertsStayRanked(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	b := New()
	names := map[string]bool{}
	for i := 0; i < 2000; i++ {
		name := fmt.Sprintf("p%d", rng.IntN(25))
		names[name] = true
		b.Upsert(name, rng.IntN(41)-10)
		assertRanked(t, b)
		if b.Len() != len(names) {
			t.Fatalf("expected %d entries after %d upserts, got %d", len(names), i+1, b.Len())
		}
	}
}
