package ai

import (
	"context"
	"math/rand/v2"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/appengine-ltd/stop-it/internal/game"
	"github.com/appengine-ltd/stop-it/internal/prompt"
)

var themeBanks = map[prompt.Language][]string{
	prompt.English: {
		"Animal", "Body part", "Board game", "Brand", "Capital city", "Car brand",
		"Clothing", "Country", "Dessert", "Drink", "Famous person", "First name",
		"Flower", "Food", "Fruit", "Household object", "Insect", "Job",
		"Kitchen utensil", "Movie", "Musical instrument", "Plant", "Sport",
		"Something in a supermarket", "Something that floats", "Tool", "TV show",
		"Vegetable", "Vehicle", "Verb",
	},
	prompt.Portuguese: {
		"Animal", "Ator ou atriz", "Bebida", "Capital", "Carro", "Cidade",
		"Comida", "Cor", "Doce", "Esporte", "Filme", "Flor", "Fruta", "Inseto",
		"Instrumento musical", "Jogo", "Marca", "Nome", "Objeto", "País",
		"Parte do corpo", "Personagem de ficção", "Planta", "Profissão",
		"Programa de TV", "Roupa", "Verbo", "Coisa que flutua",
		"Algo que se compra no supermercado", "Utensílio de cozinha",
	},
}

// Offline is a deterministic provider used when no text service is
// configured. Themes come from a fixed bank; verdicts follow simple rules.
// It is not safe for concurrent use.
type Offline struct {
	rng    *rand.Rand
	lang   prompt.Language
	themes []string
}

func NewOffline(seed int64, lang prompt.Language) *Offline {
	themes, ok := themeBanks[lang]
	if !ok {
		themes = themeBanks[prompt.English]
	}
	return &Offline{rng: game.NewRNG(seed), lang: lang, themes: themes}
}

// GenerateThemes returns count themes picked from the bank. Each call draws a
// fresh set, so a letter drawn twice in a session gets new themes; the same
// seed replays the same sequence.
func (o *Offline) GenerateThemes(ctx context.Context, letter rune, count int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	order := o.rng.Perm(len(o.themes))
	if count > len(order) {
		count = len(order)
	}
	picked := make([]string, 0, count)
	for _, i := range order[:count] {
		picked = append(picked, o.themes[i])
	}
	return strings.Join(picked, ","), nil
}

// ValidateAnswers accepts an answer when it starts with letter (ignoring case
// and accents), has at least two characters, differs from its theme, and is
// not within one edit of an answer already accepted this round.
func (o *Offline) ValidateAnswers(ctx context.Context, letter rune, pairs []game.AnswerPair) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	yes, no := "Yes", "No"
	if o.lang == prompt.Portuguese {
		yes, no = "Sim", "Nao"
	}
	want := fold(string(letter))
	accepted := make([]string, 0, len(pairs))
	verdicts := make([]string, len(pairs))
	for i, p := range pairs {
		answer := fold(p.Answer)
		if acceptable(answer, fold(p.Theme), want, accepted) {
			accepted = append(accepted, answer)
			verdicts[i] = yes
			continue
		}
		verdicts[i] = no
	}
	return strings.Join(verdicts, ","), nil
}

func acceptable(answer string, theme string, letter string, accepted []string) bool {
	if utf8.RuneCountInString(answer) < 2 {
		return false
	}
	if letter == "" || !strings.HasPrefix(answer, letter) {
		return false
	}
	if answer == theme {
		return false
	}
	for _, prev := range accepted {
		if levenshtein.ComputeDistance(answer, prev) <= 1 {
			return false
		}
	}
	return true
}

// fold lowercases s, strips accents, and collapses whitespace.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.Join(strings.Fields(out), " "))
}
