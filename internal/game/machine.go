package game

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Handler runs one state until it knows the next one. Handlers must return a
// valid state on every path, present before their first poll, and poll input
// on every loop iteration.
type Handler interface {
	Handle(ctx context.Context, gc *GameContext, fe Frontend) RoundState
}

type HandlerFunc func(ctx context.Context, gc *GameContext, fe Frontend) RoundState

func (f HandlerFunc) Handle(ctx context.Context, gc *GameContext, fe Frontend) RoundState {
	return f(ctx, gc, fe)
}

// Machine drives the game from Menu until Exit.
type Machine struct {
	handlers map[RoundState]Handler
}

func NewMachine(provider ContentProvider) *Machine {
	return &Machine{
		handlers: map[RoundState]Handler{
			StateMenu:        HandlerFunc(runMenu),
			StatePlaying:     &playingHandler{provider: provider},
			StateScoring:     &scoringHandler{provider: provider},
			StateLeaderboard: HandlerFunc(runLeaderboard),
			StateOptions:     HandlerFunc(runOptions),
		},
	}
}

// SetHandler replaces the handler for state.
func (m *Machine) SetHandler(state RoundState, h Handler) {
	m.handlers[state] = h
}

func (m *Machine) Run(ctx context.Context, gc *GameContext, fe Frontend) ExitCode {
	log := zerolog.Ctx(ctx)
	state := StateMenu
	for state != StateExit {
		if err := ctx.Err(); err != nil {
			log.Info().Err(err).Msg("context done, leaving game loop")
			break
		}
		h, ok := m.handlers[state]
		if !ok {
			gc.Fail(fmt.Errorf("no handler for state %s", state))
			break
		}
		next := h.Handle(ctx, gc, fe)
		log.Debug().Stringer("from", state).Stringer("to", next).Msg("state transition")
		state = next
	}
	if err := gc.Err(); err != nil {
		log.Error().Err(err).Msg("game loop failed")
		return ExitFailure
	}
	return ExitOK
}

// poll drains the frontend once. quit is true on a Quit event or when ctx is
// done.
func poll(ctx context.Context, fe Frontend) (events []InputEvent, quit bool) {
	if ctx.Err() != nil {
		return nil, true
	}
	events = fe.PollInput()
	for _, ev := range events {
		if ev.Kind == EventQuit {
			return events, true
		}
	}
	return events, false
}

func pressed(events []InputEvent, keys ...Key) bool {
	for _, ev := range events {
		if ev.Kind != EventKey {
			continue
		}
		for _, k := range keys {
			if ev.Key == k {
				return true
			}
		}
	}
	return false
}

// showNotice keeps a message on screen for the notice duration and then
// returns to the menu.
func showNotice(ctx context.Context, gc *GameContext, fe Frontend, notice NoticeView) RoundState {
	deadline := fe.Now().Add(gc.Settings.NoticeDuration)
	for fe.Now().Before(deadline) {
		fe.Present(notice)
		events, quit := poll(ctx, fe)
		if quit {
			return StateExit
		}
		if pressed(events, KeyEnter, KeyEscape) {
			break
		}
	}
	return StateMenu
}

func wrapIndex(i int, size int) int {
	if size <= 0 {
		return 0
	}
	for i < 0 {
		i += size
	}
	for i >= size {
		i -= size
	}
	return i
}
