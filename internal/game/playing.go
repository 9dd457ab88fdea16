package game

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type playingHandler struct {
	provider ContentProvider
}

func (h *playingHandler) Handle(ctx context.Context, gc *GameContext, fe Frontend) RoundState {
	letter, err := gc.Letters.Draw(gc.rng)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("cannot start round")
		return showNotice(ctx, gc, fe, NoticeView{
			Title:  "No letters enabled!",
			Detail: "Go to Options to enable some.",
		})
	}

	roundID := uuid.NewString()
	log := zerolog.Ctx(ctx).With().Str("round", roundID).Str("letter", string(letter)).Logger()
	log.Info().Msg("letter drawn")

	fe.Present(LoadingView{Message: "Drawing themes..."})
	raw, err := h.provider.GenerateThemes(ctx, letter, gc.Settings.ThemeCount)
	if err != nil {
		log.Warn().Err(fmt.Errorf("%w: %w", ErrContentAcquisitionFailed, err)).Msg("themes unavailable")
		return showNotice(ctx, gc, fe, NoticeView{
			Title:  "Could not reach the text service.",
			Detail: "Check your API key or connection.",
		})
	}
	themes := ParseThemes(raw, gc.Settings.ThemeCount)
	SortThemes(themes)

	ring, err := NewAnswerRing(themes, gc.Settings.MaxAnswerLength)
	if err != nil {
		gc.Fail(fmt.Errorf("build answer ring: %w", err))
		return StateExit
	}

	timer := StartTimer(fe.Now(), gc.Settings.RoundDuration)
	for {
		events, quit := poll(ctx, fe)
		if quit {
			return StateExit
		}
		for _, ev := range events {
			switch ev.Kind {
			case EventText:
				ring.Append(ev.Text)
			case EventKey:
				switch ev.Key {
				case KeyEscape:
					log.Info().Msg("round abandoned")
					return StateMenu
				case KeyEnter:
					return finishRound(gc, roundID, letter, ring)
				case KeyBackspace:
					ring.Backspace()
				case KeyTab:
					ring.Advance()
				}
			}
		}

		now := fe.Now()
		if timer.Expired(now) {
			log.Info().Msg("time is up")
			return finishRound(gc, roundID, letter, ring)
		}
		fe.Present(PlayingView{
			Letter:      letter,
			Slots:       ring.Slots(),
			Active:      ring.ActiveIndex(),
			SecondsLeft: timer.SecondsLeft(now),
			MaxLength:   gc.Settings.MaxAnswerLength,
		})
	}
}

func finishRound(gc *GameContext, roundID string, letter rune, ring *AnswerRing) RoundState {
	gc.finishRound(RoundResult{
		ID:      roundID,
		Letter:  letter,
		Themes:  ring.Themes(),
		Answers: ring.Answers(),
	})
	return StateScoring
}
