package game

import "context"

const optionColumns = 6

func runOptions(ctx context.Context, gc *GameContext, fe Frontend) RoundState {
	cursor := 0
	for {
		fe.Present(OptionsView{Letters: gc.Letters, Cursor: cursor, Columns: optionColumns})
		events, quit := poll(ctx, fe)
		if quit {
			return StateExit
		}
		for _, ev := range events {
			if ev.Kind != EventKey {
				continue
			}
			switch ev.Key {
			case KeyEscape:
				return StateMenu
			case KeyEnter:
				gc.Letters.Toggle(rune('A' + cursor))
			default:
				cursor = moveLetterCursor(cursor, ev.Key)
			}
		}
	}
}

// moveLetterCursor walks the letter grid. Left and Right wrap inside a row;
// Up and Down stop at the grid edges.
func moveLetterCursor(cursor int, key Key) int {
	switch key {
	case KeyRight:
		if (cursor+1)%optionColumns == 0 {
			cursor -= optionColumns - 1
		} else if cursor+1 < alphabetSize {
			cursor++
		}
	case KeyLeft:
		if cursor%optionColumns == 0 {
			cursor += optionColumns - 1
		} else {
			cursor--
		}
		if cursor > alphabetSize-1 {
			cursor = alphabetSize - 1
		}
	case KeyDown:
		if cursor+optionColumns < alphabetSize {
			cursor += optionColumns
		}
	case KeyUp:
		if cursor-optionColumns >= 0 {
			cursor -= optionColumns
		}
	}
	return cursor
}
