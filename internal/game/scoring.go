package game

import "strings"

// DefaultPointsPerTheme is awarded for each accepted answer.
const DefaultPointsPerTheme = 10

var affirmativeTokens = []string{"yes", "sim"}

// AnswerPair is one theme with the answer given for it.
type AnswerPair struct {
	Theme  string
	Answer string
}

// ScoreLine is the judged result for one theme.
type ScoreLine struct {
	Theme  string
	Answer string
	Points int
}

// ScoreCard is the outcome of a scored round.
type ScoreCard struct {
	RoundID  string
	Letter   rune
	Lines    []ScoreLine
	Total    int
	Degraded bool
}

// ParseVerdicts maps a comma separated Yes/No reply onto n scores. Tokens are
// matched positionally; missing tokens score zero.
func ParseVerdicts(raw string, n int, points int) []int {
	scores := make([]int, n)
	tokens := strings.Split(raw, ",")
	for i := 0; i < n && i < len(tokens); i++ {
		if isAffirmative(strings.TrimSpace(tokens[i])) {
			scores[i] = points
		}
	}
	return scores
}

func isAffirmative(token string) bool {
	if len(token) < 3 {
		return false
	}
	prefix := token[:3]
	for _, yes := range affirmativeTokens {
		if strings.EqualFold(prefix, yes) {
			return true
		}
	}
	return false
}

// Pairs zips themes and answers for the validation request.
func Pairs(themes []string, answers []string) []AnswerPair {
	pairs := make([]AnswerPair, len(themes))
	for i, theme := range themes {
		pairs[i].Theme = theme
		if i < len(answers) {
			pairs[i].Answer = answers[i]
		}
	}
	return pairs
}

func newScoreCard(result RoundResult, scores []int, degraded bool) ScoreCard {
	card := ScoreCard{
		RoundID:  result.ID,
		Letter:   result.Letter,
		Lines:    make([]ScoreLine, len(result.Themes)),
		Degraded: degraded,
	}
	for i, theme := range result.Themes {
		line := ScoreLine{Theme: theme}
		if i < len(result.Answers) {
			line.Answer = result.Answers[i]
		}
		if i < len(scores) {
			line.Points = scores[i]
		}
		card.Total += line.Points
		card.Lines[i] = line
	}
	return card
}
