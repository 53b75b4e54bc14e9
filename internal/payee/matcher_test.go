package payee_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/budgeter/internal/payee"
)

var base = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestMatcher_Display(t *testing.T) {
	renames := []*payee.Rename{
		{ID: uuid.New(), MatchText: "amzn", RenameTo: "Amazon", CreatedAt: base},
		{ID: uuid.New(), MatchText: "  Uber  ", RenameTo: "Uber", CreatedAt: base},
	}

	m := payee.NewMatcher(nil, renames)

	type testCase struct {
		name  string
		payee *string
		want  *string
	}

	tests := []testCase{
		{name: "CaseInsensitiveSubstring", payee: new("AMZN Mktp US"), want: new("Amazon")},
		{name: "MatchTextTrimmed", payee: new("UBER *TRIP"), want: new("Uber")},
		{name: "NoMatchKeepsOriginal", payee: new("Corner Shop"), want: new("Corner Shop")},
		{name: "Nil", payee: nil, want: nil},
		{name: "Blank", payee: new("   "), want: new("   ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Display(tt.payee))
		})
	}
}

func TestMatcher_DisplayNewestRenameWins(t *testing.T) {
	renames := []*payee.Rename{
		{ID: uuid.New(), MatchText: "amzn", RenameTo: "Old", CreatedAt: base},
		{ID: uuid.New(), MatchText: "amzn mktp", RenameTo: "New", CreatedAt: base.Add(time.Hour)},
	}

	m := payee.NewMatcher(nil, renames)
	assert.Equal(t, "New", *m.Display(new("AMZN Mktp US")))

	// Input order does not matter.
	m = payee.NewMatcher(nil, []*payee.Rename{renames[1], renames[0]})
	assert.Equal(t, "New", *m.Display(new("AMZN Mktp US")))
}

func TestMatcher_Category(t *testing.T) {
	groceries := uuid.New()
	transport := uuid.New()

	rules := []*payee.Rule{
		{ID: uuid.New(), MatchText: "uber", CategoryID: transport, CreatedAt: base.Add(time.Hour)},
		{ID: uuid.New(), MatchText: "Tesco", CategoryID: groceries, CreatedAt: base},
		{ID: uuid.New(), MatchText: "uber eats", CategoryID: groceries, CreatedAt: base.Add(2 * time.Hour)},
	}

	m := payee.NewMatcher(rules, nil)

	got, ok := m.Category("TESCO STORES 1234")
	assert.True(t, ok)
	assert.Equal(t, groceries, got)

	// The older "uber" rule wins over the more specific "uber eats".
	got, ok = m.Category("Uber Eats London")
	assert.True(t, ok)
	assert.Equal(t, transport, got)

	_, ok = m.Category("Unknown")
	assert.False(t, ok)

	_, ok = m.Category("  ")
	assert.False(t, ok)
}

func TestNewMatcher_DoesNotMutateInput(t *testing.T) {
	rules := []*payee.Rule{
		{ID: uuid.New(), MatchText: "b", CreatedAt: base.Add(time.Hour)},
		{ID: uuid.New(), MatchText: "a", CreatedAt: base},
	}

	payee.NewMatcher(rules, nil)

	assert.Equal(t, "b", rules[0].MatchText)
	assert.Equal(t, "a", rules[1].MatchText)
}
