package game

import "context"

type menuItem struct {
	Label string
	Next  RoundState
}

var menuItems = []menuItem{
	{Label: "Play", Next: StatePlaying},
	{Label: "Leaderboard", Next: StateLeaderboard},
	{Label: "Options", Next: StateOptions},
	{Label: "Exit", Next: StateExit},
}

func menuLabels() []string {
	labels := make([]string, len(menuItems))
	for i, item := range menuItems {
		labels[i] = item.Label
	}
	return labels
}

func runMenu(ctx context.Context, gc *GameContext, fe Frontend) RoundState {
	labels := menuLabels()
	cursor := 0
	for {
		fe.Present(MenuView{Items: labels, Cursor: cursor})
		events, quit := poll(ctx, fe)
		if quit {
			return StateExit
		}
		for _, ev := range events {
			if ev.Kind != EventKey {
				continue
			}
			switch ev.Key {
			case KeyUp:
				cursor = wrapIndex(cursor-1, len(menuItems))
			case KeyDown:
				cursor = wrapIndex(cursor+1, len(menuItems))
			case KeyEnter:
				return menuItems[cursor].Next
			}
		}
	}
}

func runLeaderboard(ctx context.Context, gc *GameContext, fe Frontend) RoundState {
	for {
		fe.Present(LeaderboardView{Entries: gc.Board.Top(gc.Settings.LeaderboardSize)})
		events, quit := poll(ctx, fe)
		if quit {
			return StateExit
		}
		if pressed(events, KeyEscape, KeyEnter) {
			return StateMenu
		}
	}
}
