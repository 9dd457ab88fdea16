package gui

import (
	"fmt"
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/stop-it/internal/game"
)

func (w *Window) drawMenu(v game.MenuView) {
	titleRect := rl.NewRectangle(20, 20, float32(w.width-40), 120)
	drawPanel(titleRect, "")
	drawTextCentered("STOP!", titleRect, 22, 56, colorAccent)
	drawTextCentered("v"+w.version, titleRect, 86, 18, colorDim)

	menuHeight := float32(110 + len(v.Items)*72)
	menuRect := rl.NewRectangle(float32(w.width/2-230), 185, 460, menuHeight)
	drawPanel(menuRect, "Main Menu")
	for i, label := range v.Items {
		y := int32(menuRect.Y) + 60 + int32(i*72)
		r := rl.NewRectangle(menuRect.X+36, float32(y), menuRect.Width-72, 52)
		if i == v.Cursor {
			rl.DrawRectangleRounded(r, 0.3, 8, rl.Fade(colorAccent, 0.2))
			rl.DrawRectangleRoundedLinesEx(r, 0.3, 8, 2, colorAccent)
			rl.DrawText(label, int32(r.X)+18, y+14, 28, colorAccent)
		} else {
			rl.DrawRectangleRounded(r, 0.3, 8, rl.Fade(colorPanel, 0.7))
			rl.DrawRectangleRoundedLinesEx(r, 0.3, 8, 1.5, colorBorder)
			rl.DrawText(label, int32(r.X)+18, y+14, 28, colorText)
		}
	}
	drawHint("Up/Down to move, Enter to select", w.width, w.height)
}

func (w *Window) drawNotice(v game.NoticeView) {
	rect := rl.NewRectangle(float32(w.width/2-320), float32(w.height/2-110), 640, 220)
	rl.DrawRectangleRounded(rect, 0.06, 8, colorRaised)
	rl.DrawRectangleRoundedLinesEx(rect, 0.06, 8, 2, colorWarn)
	drawTextCentered(v.Title, rect, 56, 30, colorWarn)
	drawTextCentered(v.Detail, rect, 112, 20, colorText)
	drawTextCentered("Enter to continue", rect, 170, 16, colorMuted)
}

func (w *Window) drawLoading(v game.LoadingView) {
	rect := rl.NewRectangle(0, float32(w.height/2-40), float32(w.width), 80)
	drawTextCentered(v.Message, rect, 24, 32, colorText)
}

func (w *Window) drawPlaying(v game.PlayingView) {
	header := rl.NewRectangle(20, 20, float32(w.width-40), 110)
	drawPanel(header, "Round")
	rl.DrawText(string(v.Letter), int32(header.X)+40, int32(header.Y)+26, 72, colorAccent)
	rl.DrawText("Every answer must start with this letter", int32(header.X)+130, int32(header.Y)+50, 20, colorDim)
	clock := formatClock(v.SecondsLeft)
	clockSize := int32(48)
	rl.DrawText(clock, int32(header.X+header.Width)-rl.MeasureText(clock, clockSize)-30, int32(header.Y)+34, clockSize, clockColor(v.SecondsLeft))

	list := rl.NewRectangle(20, 146, float32(w.width-40), float32(w.height-230))
	drawPanel(list, "Answers")
	labelWidth := int32(list.Width * 0.35)
	for i, slot := range v.Slots {
		y := int32(list.Y) + 48 + int32(i*58)
		row := rl.NewRectangle(list.X+16, float32(y), list.Width-32, 48)
		active := i == v.Active
		if active {
			rl.DrawRectangleRounded(row, 0.3, 8, rl.Fade(colorAccent, 0.18))
			rl.DrawRectangleRoundedLinesEx(row, 0.3, 8, 2, colorAccent)
		} else {
			rl.DrawRectangleRounded(row, 0.3, 8, rl.Fade(colorRaised, 0.8))
		}
		rl.DrawText(fitText(slot.Theme, 24, labelWidth-24), int32(row.X)+16, y+12, 24, colorDim)

		text := slot.Text
		if active {
			text += "_"
		}
		rl.DrawText(fitText(text, 24, int32(row.Width)-labelWidth-120), int32(row.X)+labelWidth, y+12, 24, colorText)
		if active && v.MaxLength > 0 {
			counter := fmt.Sprintf("%d/%d", utf8.RuneCountInString(slot.Text), v.MaxLength-1)
			rl.DrawText(counter, int32(row.X+row.Width)-rl.MeasureText(counter, 18)-16, y+15, 18, colorMuted)
		}
	}
	drawHint("Type your answers, Tab for next theme, Enter to stop, Esc to give up", w.width, w.height)
}

func (w *Window) drawScoring(v game.ScoringView) {
	card := v.Card
	header := rl.NewRectangle(20, 20, float32(w.width-40), 110)
	drawPanel(header, "Score")
	drawTextCentered(fmt.Sprintf("Letter %c", card.Letter), header, 26, 26, colorDim)
	drawTextCentered(fmt.Sprintf("%d points", card.Total), header, 60, 36, colorAccent)

	list := rl.NewRectangle(20, 146, float32(w.width-40), float32(w.height-230))
	drawPanel(list, "Answers")
	labelWidth := int32(list.Width * 0.35)
	for i, line := range card.Lines {
		y := int32(list.Y) + 52 + int32(i*44)
		answer := line.Answer
		if answer == "" {
			answer = "-"
		}
		clr := colorMuted
		if line.Points > 0 {
			clr = colorGood
		}
		rl.DrawText(fitText(line.Theme, 22, labelWidth-24), int32(list.X)+28, y, 22, colorDim)
		rl.DrawText(fitText(answer, 22, int32(list.Width)-labelWidth-140), int32(list.X)+labelWidth, y, 22, colorText)
		points := fmt.Sprintf("+%d", line.Points)
		rl.DrawText(points, int32(list.X+list.Width)-rl.MeasureText(points, 22)-32, y, 22, clr)
	}
	if card.Degraded {
		y := int32(list.Y) + 52 + int32(len(card.Lines)*44) + 16
		rl.DrawText("Answers could not be judged, so this round scored zero.", int32(list.X)+28, y, 20, colorDanger)
	}
	drawHint("Enter to return to the menu", w.width, w.height)
}

func (w *Window) drawLeaderboard(v game.LeaderboardView) {
	rect := rl.NewRectangle(float32(w.width/2-300), 60, 600, float32(110+max(len(v.Entries), 1)*56))
	drawPanel(rect, "Leaderboard")
	if len(v.Entries) == 0 {
		drawTextCentered("No scores yet.", rect, 70, 24, colorMuted)
	}
	for i, entry := range v.Entries {
		y := int32(rect.Y) + 60 + int32(i*56)
		clr := colorText
		if i == 0 {
			clr = colorAccent
		}
		rl.DrawText(fmt.Sprintf("%d.", i+1), int32(rect.X)+36, y, 28, colorDim)
		rl.DrawText(fitText(entry.Name, 28, int32(rect.Width)-240), int32(rect.X)+90, y, 28, clr)
		score := fmt.Sprintf("%d", entry.Score)
		rl.DrawText(score, int32(rect.X+rect.Width)-rl.MeasureText(score, 28)-36, y, 28, clr)
	}
	drawHint("Enter or Esc to go back", w.width, w.height)
}

func (w *Window) drawOptions(v game.OptionsView) {
	columns := v.Columns
	if columns <= 0 {
		columns = 1
	}
	rows := (len(v.Letters) + columns - 1) / columns
	const cell = 72
	const gap = 12
	gridWidth := float32(columns*cell + (columns-1)*gap)
	rect := rl.NewRectangle(float32(w.width)/2-gridWidth/2-40, 40, gridWidth+80, float32(rows*(cell+gap)+120))
	drawPanel(rect, fmt.Sprintf("Letters (%d enabled)", v.Letters.Count()))

	for i := range v.Letters {
		row, col := gridCell(i, columns)
		r := rl.NewRectangle(rect.X+40+float32(col*(cell+gap)), rect.Y+56+float32(row*(cell+gap)), cell, cell)
		letter := rune('A' + i)
		fill, text := rl.Fade(colorRaised, 0.6), colorMuted
		if v.Letters.Enabled(letter) {
			fill, text = rl.Fade(colorGood, 0.55), colorText
		}
		rl.DrawRectangleRounded(r, 0.2, 8, fill)
		if i == v.Cursor {
			rl.DrawRectangleRoundedLinesEx(r, 0.2, 8, 3, colorAccent)
		}
		drawTextCentered(string(letter), r, 18, 36, text)
	}
	drawHint("Arrows to move, Enter to toggle, Esc to go back", w.width, w.height)
}
