// Package leaderboard keeps player totals ranked by score.
package leaderboard

import "sort"

// Entry is one player's running total. Names are case-sensitive keys.
type Entry struct {
	Name  string
	Score int
}

// Board holds entries in non-increasing score order. Among equal scores the
// most recently updated entry comes first.
type Board struct {
	entries []Entry
}

func New() *Board {
	return &Board{}
}

// Upsert adds delta to name's total, creating the entry when missing, and
// moves the entry to its ranked position.
func (b *Board) Upsert(name string, delta int) Entry {
	entry := Entry{Name: name, Score: delta}
	if i := b.index(name); i >= 0 {
		entry.Score += b.entries[i].Score
		b.entries = append(b.entries[:i], b.entries[i+1:]...)
	}
	b.insert(entry)
	return entry
}

func (b *Board) insert(entry Entry) {
	pos := sort.Search(len(b.entries), func(i int) bool {
		return b.entries[i].Score <= entry.Score
	})
	b.entries = append(b.entries, Entry{})
	copy(b.entries[pos+1:], b.entries[pos:])
	b.entries[pos] = entry
}

func (b *Board) index(name string) int {
	for i, e := range b.entries {
		if e.Name == name {
			return i
		}
	}
	return -1
}

func (b *Board) Find(name string) (Entry, bool) {
	i := b.index(name)
	if i < 0 {
		return Entry{}, false
	}
	return b.entries[i], true
}

// Top returns up to k entries in rank order.
func (b *Board) Top(k int) []Entry {
	if k <= 0 {
		return nil
	}
	if k > len(b.entries) {
		k = len(b.entries)
	}
	out := make([]Entry, k)
	copy(out, b.entries[:k])
	return out
}

func (b *Board) Entries() []Entry {
	return b.Top(len(b.entries))
}

func (b *Board) Len() int {
	return len(b.entries)
}

func (b *Board) Clear() {
	b.entries = nil
}

// Restore rebuilds the board from entries listed in rank order, keeping their
// relative order among equal scores. Duplicate names are merged.
func (b *Board) Restore(entries []Entry) {
	for i := len(entries) - 1; i >= 0; i-- {
		b.Upsert(entries[i].Name, entries[i].Score)
	}
}
