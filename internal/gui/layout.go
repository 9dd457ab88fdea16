package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// formatClock renders whole seconds as m:ss.
func formatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

func clockColor(seconds int) rl.Color {
	switch {
	case seconds <= 10:
		return colorDanger
	case seconds <= 20:
		return colorWarn
	default:
		return colorText
	}
}

func gridCell(index int, columns int) (row int, col int) {
	if columns <= 0 {
		return index, 0
	}
	return index / columns, index % columns
}
