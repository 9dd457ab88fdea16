package game

import (
	"math/rand/v2"
	"unicode"
)

const alphabetSize = 26

// LetterTable holds the enabled flag for each letter A-Z.
type LetterTable [alphabetSize]bool

// AllLetters returns a table with every letter enabled.
func AllLetters() LetterTable {
	var t LetterTable
	for i := range t {
		t[i] = true
	}
	return t
}

// LettersExcept returns a table with every letter enabled except the ones in
// disabled. Non-letters are ignored.
func LettersExcept(disabled string) LetterTable {
	t := AllLetters()
	for _, r := range disabled {
		if i, ok := letterIndex(r); ok {
			t[i] = false
		}
	}
	return t
}

func letterIndex(r rune) (int, bool) {
	r = unicode.ToUpper(r)
	if r < 'A' || r > 'Z' {
		return 0, false
	}
	return int(r - 'A'), true
}

func (t *LetterTable) Enabled(r rune) bool {
	i, ok := letterIndex(r)
	return ok && t[i]
}

func (t *LetterTable) Toggle(r rune) {
	if i, ok := letterIndex(r); ok {
		t[i] = !t[i]
	}
}

func (t *LetterTable) Count() int {
	n := 0
	for _, on := range t {
		if on {
			n++
		}
	}
	return n
}

// Pool returns the enabled letters in alphabetical order.
func (t *LetterTable) Pool() []rune {
	pool := make([]rune, 0, alphabetSize)
	for i, on := range t {
		if on {
			pool = append(pool, rune('A'+i))
		}
	}
	return pool
}

func (t *LetterTable) String() string {
	return string(t.Pool())
}

// Draw picks an enabled letter uniformly at random.
func (t *LetterTable) Draw(rng *rand.Rand) (rune, error) {
	pool := t.Pool()
	if len(pool) == 0 {
		return 0, ErrNoLetterAvailable
	}
	return pool[rng.IntN(len(pool))], nil
}
