package payee

import (
	"cmp"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Normalize trims and lowercases s for case-insensitive substring matching.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Matcher resolves payee names against rules and renames.
//
// Evaluation order is fixed when the Matcher is built: rules oldest first,
// renames newest first, ties broken by id. The first entry whose match text is
// contained in the payee name wins; no preference is given to longer or more
// specific match texts.
type Matcher struct {
	rules   []Rule
	renames []Rename
}

func NewMatcher(rules []*Rule, renames []*Rename) *Matcher {
	m := &Matcher{
		rules:   make([]Rule, 0, len(rules)),
		renames: make([]Rename, 0, len(renames)),
	}

	for _, r := range rules {
		m.rules = append(m.rules, *r)
	}

	for _, r := range renames {
		m.renames = append(m.renames, *r)
	}

	slices.SortStableFunc(m.rules, func(a, b Rule) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}

		return cmp.Compare(a.ID.String(), b.ID.String())
	})

	slices.SortStableFunc(m.renames, func(a, b Rename) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}

		return cmp.Compare(a.ID.String(), b.ID.String())
	})

	return m
}

// Category returns the category of the first rule matching payeeName.
func (m *Matcher) Category(payeeName string) (uuid.UUID, bool) {
	normalized := Normalize(payeeName)
	if normalized == "" {
		return uuid.Nil, false
	}

	for _, r := range m.rules {
		if contains(normalized, r.MatchText) {
			return r.CategoryID, true
		}
	}

	return uuid.Nil, false
}

// Display returns the rename target of the first rename matching payeeName,
// or payeeName itself when nothing matches.
func (m *Matcher) Display(payeeName *string) *string {
	if payeeName == nil {
		return nil
	}

	normalized := Normalize(*payeeName)
	if normalized == "" {
		return payeeName
	}

	for _, r := range m.renames {
		if contains(normalized, r.MatchText) {
			return &r.RenameTo
		}
	}

	return payeeName
}

func contains(normalizedPayee, matchText string) bool {
	needle := Normalize(matchText)
	if needle == "" {
		return false
	}

	return strings.Contains(normalizedPayee, needle)
}
