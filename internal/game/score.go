package game

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/appengine-ltd/stop-it/internal/game")

type scoringHandler struct {
	provider ContentProvider
}

func (h *scoringHandler) Handle(ctx context.Context, gc *GameContext, fe Frontend) RoundState {
	result, ok := gc.TakeResult()
	if !ok {
		return StateMenu
	}
	card := h.score(ctx, gc, fe, result)
	gc.LastScore = &card

	for {
		fe.Present(ScoringView{Card: card})
		events, quit := poll(ctx, fe)
		if quit {
			return StateExit
		}
		if pressed(events, KeyEscape, KeyEnter) {
			return StateMenu
		}
	}
}

// score judges the round with a single provider call and credits the total
// to the player.
func (h *scoringHandler) score(ctx context.Context, gc *GameContext, fe Frontend, result RoundResult) ScoreCard {
	ctx, span := tracer.Start(ctx, "round.score", trace.WithAttributes(
		attribute.String("round.id", result.ID),
		attribute.String("round.letter", string(result.Letter)),
	))
	defer span.End()
	log := zerolog.Ctx(ctx).With().Str("round", result.ID).Logger()

	fe.Present(LoadingView{Message: "Judging answers..."})
	n := len(result.Themes)
	var card ScoreCard
	raw, err := h.provider.ValidateAnswers(ctx, result.Letter, Pairs(result.Themes, result.Answers))
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrValidationFailed, err)
		log.Warn().Err(err).Msg("scoring round as zero")
		span.RecordError(err)
		span.SetStatus(codes.Error, "validation failed")
		card = newScoreCard(result, make([]int, n), true)
	} else {
		card = newScoreCard(result, ParseVerdicts(raw, n, gc.Settings.PointsPerTheme), false)
	}

	entry := gc.Board.Upsert(gc.PlayerName, card.Total)
	span.SetAttributes(attribute.Int("round.total", card.Total))
	log.Info().Int("total", card.Total).Str("player", entry.Name).Int("score", entry.Score).Msg("round scored")
	return card
}
