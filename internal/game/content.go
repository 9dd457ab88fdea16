package game

import "context"

// ContentProvider is the text service consulted for themes and verdicts. Both
// calls return the raw reply text; the game parses it.
type ContentProvider interface {
	GenerateThemes(ctx context.Context, letter rune, count int) (string, error)
	ValidateAnswers(ctx context.Context, letter rune, pairs []AnswerPair) (string, error)
}
