package gui

import rl "github.com/gen2brain/raylib-go/raylib"

type Theme struct {
	Background  rl.Color
	Panel       rl.Color
	PanelRaised rl.Color
	Border      rl.Color
	TextPrimary rl.Color
	TextDim     rl.Color
	TextMuted   rl.Color
	Accent      rl.Color
	AccentAlt   rl.Color
	Warning     rl.Color
	Danger      rl.Color
}

var AppTheme = Theme{
	Background:  rl.NewColor(0x14, 0x1A, 0x1F, 255),
	Panel:       rl.NewColor(0x1C, 0x23, 0x29, 255),
	PanelRaised: rl.NewColor(0x21, 0x2A, 0x31, 255),
	Border:      rl.NewColor(0x2E, 0x3A, 0x40, 255),
	TextPrimary: rl.NewColor(0xE8, 0xE2, 0xD8, 255),
	TextDim:     rl.NewColor(0xA6, 0xAD, 0xB1, 255),
	TextMuted:   rl.NewColor(0x7D, 0x85, 0x8A, 255),
	Accent:      rl.NewColor(0xD4, 0x6A, 0x1E, 255),
	AccentAlt:   rl.NewColor(0x2F, 0x5D, 0x42, 255),
	Warning:     rl.NewColor(0xC1, 0x8B, 0x2F, 255),
	Danger:      rl.NewColor(0xB8, 0x4A, 0x3A, 255),
}

var (
	colorBG     = AppTheme.Background
	colorPanel  = AppTheme.Panel
	colorRaised = AppTheme.PanelRaised
	colorBorder = AppTheme.Border
	colorText   = AppTheme.TextPrimary
	colorDim    = AppTheme.TextDim
	colorMuted  = AppTheme.TextMuted
	colorAccent = AppTheme.Accent
	colorGood   = AppTheme.AccentAlt
	colorWarn   = AppTheme.Warning
	colorDanger = AppTheme.Danger
)

func drawPanel(rect rl.Rectangle, title string) {
	rl.DrawRectangleRounded(rect, 0.04, 8, colorPanel)
	rl.DrawRectangleRoundedLinesEx(rect, 0.04, 8, 2, colorBorder)
	if title != "" {
		rl.DrawText(title, int32(rect.X)+12, int32(rect.Y)+8, 20, colorAccent)
	}
}

func drawTextCentered(text string, rect rl.Rectangle, yOffset int32, fontSize int32, clr rl.Color) {
	width := rl.MeasureText(text, fontSize)
	x := int32(rect.X + (rect.Width-float32(width))/2)
	rl.DrawText(text, x, int32(rect.Y)+yOffset, fontSize, clr)
}

func drawHint(text string, width int32, height int32) {
	hintRect := rl.NewRectangle(20, float32(height-64), float32(width-40), 40)
	drawTextCentered(text, hintRect, 8, 18, colorDim)
}

// fitText shortens text with an ellipsis until it fits maxWidth.
func fitText(text string, size int32, maxWidth int32) string {
	if rl.MeasureText(text, size) <= maxWidth {
		return text
	}
	runes := []rune(text)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := string(runes) + "..."
		if rl.MeasureText(candidate, size) <= maxWidth {
			return candidate
		}
	}
	return ""
}
