// Package prompt builds the text sent to the content service.
package prompt

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/appengine-ltd/stop-it/internal/game"
)

// Language selects the wording of prompts.
type Language int

const (
	English Language = iota
	Portuguese
)

var (
	supported = []language.Tag{language.English, language.BrazilianPortuguese}
	matcher   = language.NewMatcher(supported)
)

// ParseLanguage picks the closest supported language for a BCP 47 tag,
// falling back to English.
func ParseLanguage(tag string) Language {
	t, err := language.Parse(strings.TrimSpace(tag))
	if err != nil {
		return English
	}
	_, idx, conf := matcher.Match(t)
	if conf == language.No {
		return English
	}
	return Language(idx)
}

func (l Language) String() string {
	return supported[l].String()
}

// Themes asks for count comma separated themes that all have answers
// starting with letter.
func Themes(lang Language, letter rune, count int) string {
	if lang == Portuguese {
		return fmt.Sprintf(
			"Você cria rodadas do jogo Stop! (Adedonha). "+
				"Gere %d temas para a letra '%c', misturando categorias comuns com outras mais específicas. "+
				"Evite temas genéricos demais como 'Cor' ou 'Fruta'. "+
				"Cada tema precisa ter pelo menos uma resposta conhecida em português começando com '%c'. "+
				"Responda somente com os %d temas separados por vírgula, sem comentários e sem quebra de linha. "+
				"Exemplo: País,Marca de roupa,Profissão,Vilão de filme,Coisa que flutua",
			count, letter, letter, count)
	}
	return fmt.Sprintf(
		"You run rounds of the word game Stop!. "+
			"Create %d themes for the letter '%c', mixing common categories with a few more specific ones. "+
			"Avoid overly generic themes such as 'Color' or 'Fruit'. "+
			"Every theme must have at least one reasonably well known English answer starting with '%c'. "+
			"Reply with the %d themes only, separated by commas, with no commentary and no line breaks. "+
			"Example: Country,Clothing brand,Profession,Movie villain,Something that floats",
		count, letter, letter, count)
}

// Validation asks for one Yes/No verdict per pair, in order. Empty answers
// are listed explicitly.
func Validation(lang Language, letter rune, pairs []game.AnswerPair) string {
	var b strings.Builder
	if lang == Portuguese {
		fmt.Fprintf(&b,
			"Você é o juiz de uma rodada de Stop! (Adedonha) com a letra '%c'. "+
				"Para cada item, responda 'Sim' se a resposta for válida para o tema e começar com '%c', ou 'Nao' caso contrário. "+
				"Responda apenas com %d palavras Sim ou Nao separadas por vírgula, na mesma ordem, sem mais nada. "+
				"Exemplo: Sim,Nao,Sim,Sim,Nao\n\nItens:\n",
			letter, letter, len(pairs))
		for _, p := range pairs {
			fmt.Fprintf(&b, "Tema: %q, Resposta: %q\n", p.Theme, p.Answer)
		}
		return b.String()
	}
	fmt.Fprintf(&b,
		"You judge a round of the word game Stop! for the letter '%c'. "+
			"For each item answer 'Yes' if the answer fits the theme and starts with '%c', otherwise 'No'. "+
			"Reply with exactly %d words, Yes or No, separated by commas, in the same order, and nothing else. "+
			"Example: Yes,No,Yes,Yes,No\n\nItems:\n",
		letter, letter, len(pairs))
	for _, p := range pairs {
		fmt.Fprintf(&b, "Theme: %q, Answer: %q\n", p.Theme, p.Answer)
	}
	return b.String()
}
