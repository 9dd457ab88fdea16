package game

import (
	"context"
	"testing"
	"time"
)

func TestRunMenuNavigation(t *testing.T) {
	cases := []struct {
		name   string
		events []InputEvent
		want   RoundState
	}{
		{name: "play", events: keys(KeyEnter), want: StatePlaying},
		{name: "down twice", events: keys(KeyDown, KeyDown, KeyEnter), want: StateOptions},
		{name: "up wraps to exit", events: keys(KeyUp, KeyEnter), want: StateExit},
		{name: "down wraps to play", events: keys(KeyDown, KeyDown, KeyDown, KeyDown, KeyEnter), want: StatePlaying},
	}
	for _, tc := range cases {
		gc := newTestContext(AllLetters())
		fe := newScriptedFrontend(time.Millisecond, tc.events)
		if got := runMenu(context.Background(), gc, fe); got != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.name, tc.want, got)
		}
		if fe.polls != 1 {
			t.Fatalf("%s: expected selection on first poll, got %d polls", tc.name, fe.polls)
		}
	}
}

func TestRunMenuPresentsCursor(t *testing.T) {
	gc := newTestContext(AllLetters())
	fe := newScriptedFrontend(time.Millisecond, keys(KeyDown), keys(KeyEnter))

	if got := runMenu(context.Background(), gc, fe); got != StateLeaderboard {
		t.Fatalf("expected leaderboard, got %s", got)
	}
	if first, ok := fe.views[0].(MenuView); !ok || first.Cursor != 0 {
		t.Fatalf("expected menu drawn before the first poll, got %+v", fe.views[0])
	}
	view, ok := fe.views[1].(MenuView)
	if !ok || view.Cursor != 1 || len(view.Items) != 4 {
		t.Fatalf("unexpected menu view %+v", fe.views[1])
	}
}

func TestRunLeaderboardShowsTopEntries(t *testing.T) {
	gc := newTestContext(AllLetters())
	for i, name := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		gc.Board.Upsert(name, (i+1)*10)
	}
	fe := newScriptedFrontend(time.Millisecond, nil, keys(KeyEscape))

	if got := runLeaderboard(context.Background(), gc, fe); got != StateMenu {
		t.Fatalf("expected menu, got %s", got)
	}
	view := fe.views[0].(LeaderboardView)
	if len(view.Entries) != 5 || view.Entries[0].Name != "g" || view.Entries[4].Name != "c" {
		t.Fatalf("unexpected leaderboard view %+v", view.Entries)
	}
}
