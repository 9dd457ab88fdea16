package game

import "unicode/utf8"

// MaxAnswerLength bounds an answer slot; an answer always stays strictly
// shorter than this many characters.
const MaxAnswerLength = 50

// InputSlot is one theme with the answer typed for it.
type InputSlot struct {
	Theme string
	Text  string
}

// AnswerRing is the circular list of answer slots for a round. Slots are
// addressed by index and the active index always refers to a live slot.
type AnswerRing struct {
	slots  []InputSlot
	active int
	maxLen int
}

func NewAnswerRing(themes []string, maxLen int) (*AnswerRing, error) {
	if len(themes) == 0 || maxLen <= 0 {
		return nil, ErrAllocationFailure
	}
	slots := make([]InputSlot, len(themes))
	for i, theme := range themes {
		slots[i] = InputSlot{Theme: theme}
	}
	return &AnswerRing{slots: slots, maxLen: maxLen}, nil
}

func (r *AnswerRing) Len() int {
	return len(r.slots)
}

func (r *AnswerRing) ActiveIndex() int {
	return r.active
}

func (r *AnswerRing) Active() InputSlot {
	return r.slots[r.active]
}

// Advance moves to the next slot, wrapping from the last to the first.
func (r *AnswerRing) Advance() {
	r.active = (r.active + 1) % len(r.slots)
}

// Backspace drops the last character of the active slot.
func (r *AnswerRing) Backspace() {
	text := r.slots[r.active].Text
	if text == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(text)
	r.slots[r.active].Text = text[:len(text)-size]
}

// Append adds fragment to the active slot. The whole fragment is dropped when
// the result would reach the length limit.
func (r *AnswerRing) Append(fragment string) bool {
	if fragment == "" {
		return false
	}
	slot := &r.slots[r.active]
	if utf8.RuneCountInString(slot.Text)+utf8.RuneCountInString(fragment) >= r.maxLen {
		return false
	}
	slot.Text += fragment
	return true
}

// Slots returns a copy of the slots in ring order.
func (r *AnswerRing) Slots() []InputSlot {
	out := make([]InputSlot, len(r.slots))
	copy(out, r.slots)
	return out
}

func (r *AnswerRing) Themes() []string {
	out := make([]string, len(r.slots))
	for i, slot := range r.slots {
		out[i] = slot.Theme
	}
	return out
}

func (r *AnswerRing) Answers() []string {
	out := make([]string, len(r.slots))
	for i, slot := range r.slots {
		out[i] = slot.Text
	}
	return out
}
