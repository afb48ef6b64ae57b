package model

import (
	"errors"
	"strconv"
	"strings"
)

// ErrNoMatch is returned when no window satisfies a query.
var ErrNoMatch = errors.New("no matching window")

// Query selects a window from a registry snapshot.
type Query struct {
	Text        string
	SearchOwner bool
}

// FindBestMatch returns the best-matching window for the query, evaluated in
// strict priority order, case-insensitive throughout:
//
//  1. exact title match
//  2. exact owner match (only when SearchOwner)
//  3. title substring match
//  4. owner substring match (only when SearchOwner)
//
// Within a tier the first window in the snapshot's front-to-back order wins.
// Owner search is opt-in and ranked below title search because an application
// name is a much coarser signal than the window's own title.
func FindBestMatch(windows []Window, q Query) (Window, error) {
	text := strings.ToLower(q.Text)

	type predicate func(title, owner string) bool
	tiers := []predicate{
		func(title, _ string) bool { return title == text },
		func(_, owner string) bool { return q.SearchOwner && owner == text },
		func(title, _ string) bool { return strings.Contains(title, text) },
		func(_, owner string) bool { return q.SearchOwner && strings.Contains(owner, text) },
	}

	for _, match := range tiers {
		for _, w := range windows {
			if match(strings.ToLower(w.Title), strings.ToLower(w.Owner)) {
				return w, nil
			}
		}
	}
	return Window{}, ErrNoMatch
}

// ResolveIdentifier resolves a raw identifier against a snapshot. An
// identifier that parses as an integer and names a window ID present in the
// snapshot bypasses matching entirely; anything else is treated as a title
// (and optionally owner) query via FindBestMatch.
func ResolveIdentifier(windows []Window, identifier string, searchOwner bool) (Window, error) {
	if id, err := strconv.Atoi(strings.TrimSpace(identifier)); err == nil {
		for _, w := range windows {
			if w.ID == id {
				return w, nil
			}
		}
	}
	return FindBestMatch(windows, Query{Text: identifier, SearchOwner: searchOwner})
}
