package ai

import (
	"context"
	"strings"
	"testing"

	"github.com/appengine-ltd/stop-it/internal/game"
	"github.com/appengine-ltd/stop-it/internal/prompt"
)

func TestOfflineThemesDeterministic(t *testing.T) {
	a := NewOffline(42, prompt.English)
	b := NewOffline(42, prompt.English)

	rawA, err := a.GenerateThemes(context.Background(), 'C', 5)
	if err != nil {
		t.Fatalf("generate themes: %v", err)
	}
	rawB, _ := b.GenerateThemes(context.Background(), 'C', 5)
	if rawA != rawB {
		t.Fatalf("expected same themes for same seed and letter, got %q and %q", rawA, rawB)
	}

	themes := game.ParseThemes(rawA, 5)
	seen := map[string]bool{}
	for _, theme := range themes {
		if theme == game.PlaceholderTheme {
			t.Fatalf("expected a full set of themes, got %v", themes)
		}
		if seen[theme] {
			t.Fatalf("expected distinct themes, got %v", themes)
		}
		seen[theme] = true
	}
}

func TestOfflineThemesChangeWhenLetterRepeats(t *testing.T) {
	o := NewOffline(42, prompt.English)
	first, _ := o.GenerateThemes(context.Background(), 'C', 5)
	second, _ := o.GenerateThemes(context.Background(), 'C', 5)
	if first == second {
		t.Fatalf("expected a fresh theme set for a repeated letter, got %q twice", first)
	}

	replay := NewOffline(42, prompt.English)
	again, _ := replay.GenerateThemes(context.Background(), 'C', 5)
	againSecond, _ := replay.GenerateThemes(context.Background(), 'C', 5)
	if again != first || againSecond != second {
		t.Fatalf("expected same seed to replay %q then %q, got %q then %q", first, second, again, againSecond)
	}
}

func TestOfflineThemesCappedByBank(t *testing.T) {
	o := NewOffline(1, prompt.English)
	raw, _ := o.GenerateThemes(context.Background(), 'A', 1000)
	if got := len(strings.Split(raw, ",")); got != len(themeBanks[prompt.English]) {
		t.Fatalf("expected %d themes, got %d", len(themeBanks[prompt.English]), got)
	}
}

func TestOfflineValidateRules(t *testing.T) {
	o := NewOffline(1, prompt.English)
	raw, err := o.ValidateAnswers(context.Background(), 'B', []game.AnswerPair{
		{Theme: "Animal", Answer: "Bear"},
		{Theme: "City", Answer: ""},
		{Theme: "Food", Answer: "pizza"},
		{Theme: "Fruit", Answer: "Bears"},
		{Theme: "Brand", Answer: "brand"},
		{Theme: "Name", Answer: "  bruno "},
		{Theme: "Letter", Answer: "B"},
	})
	if err != nil {
		t.Fatalf("validate answers: %v", err)
	}
	want := "Yes,No,No,No,No,Yes,No"
	if raw != want {
		t.Fatalf("expected %q, got %q", want, raw)
	}
}

func TestOfflineValidateFoldsAccents(t *testing.T) {
	o := NewOffline(1, prompt.Portuguese)
	raw, err := o.ValidateAnswers(context.Background(), 'E', []game.AnswerPair{
		{Theme: "Animal", Answer: "Égua"},
		{Theme: "Fruta", Answer: "uva"},
	})
	if err != nil {
		t.Fatalf("validate answers: %v", err)
	}
	if raw != "Sim,Nao" {
		t.Fatalf("expected Sim,Nao, got %q", raw)
	}
	scores := game.ParseVerdicts(raw, 2, 10)
	if scores[0] != 10 || scores[1] != 0 {
		t.Fatalf("expected portuguese verdicts to score [10 0], got %v", scores)
	}
}

func TestOfflineHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	o := NewOffline(1, prompt.English)
	if _, err := o.GenerateThemes(ctx, 'A', 5); err == nil {
		t.Fatal("expected error for canceled context")
	}
}
