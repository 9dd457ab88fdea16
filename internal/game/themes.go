package game

import (
	"sort"
	"strings"
)

const (
	// DefaultThemeCount is the number of themes in a round.
	DefaultThemeCount = 5
	// PlaceholderTheme fills the slots a malformed reply did not provide.
	PlaceholderTheme = "AI error"
)

// ParseThemes reads a comma separated reply into exactly n themes. Empty
// tokens are skipped and any shortfall is padded with PlaceholderTheme.
func ParseThemes(raw string, n int) []string {
	if n <= 0 {
		return nil
	}
	themes := make([]string, 0, n)
	for _, token := range strings.Split(raw, ",") {
		if len(themes) == n {
			break
		}
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		themes = append(themes, token)
	}
	for len(themes) < n {
		themes = append(themes, PlaceholderTheme)
	}
	return themes
}

// SortThemes orders themes by byte-wise comparison for display.
func SortThemes(themes []string) {
	sort.Strings(themes)
}
