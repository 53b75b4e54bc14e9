package budget_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/budgeter/internal/budget"
	"github.com/MrJamesThe3rd/budgeter/internal/category"
	"github.com/MrJamesThe3rd/budgeter/internal/spend"
)

func monthOf(year int, m time.Month) time.Time {
	return time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
}

func TestCompute_Rollover(t *testing.T) {
	groceries := &category.Category{ID: uuid.New(), Name: "Groceries"}

	in := budget.Inputs{
		Month:      monthOf(2024, time.February),
		Categories: []*category.Category{groceries},
		Budgets: []*budget.MonthlyBudget{
			{ID: uuid.New(), CategoryID: groceries.ID, Month: monthOf(2024, time.February), Amount: 1000},
		},
		PriorBudgets: []*budget.MonthlyBudget{
			{ID: uuid.New(), CategoryID: groceries.ID, Month: monthOf(2024, time.January), Amount: 1000},
		},
		PriorSpends: []*spend.Spend{
			{CategoryID: groceries.ID, Amount: 450},
			{CategoryID: groceries.ID, Amount: 150},
		},
	}

	lines := budget.Compute(in)
	require.Len(t, lines, 1)

	got := lines[0]
	assert.Equal(t, budget.SourceStored, got.Source)
	assert.Equal(t, "Groceries", got.CategoryName)
	assert.Equal(t, int64(400), got.RolloverAmount)
	assert.Equal(t, int64(1400), got.EffectiveAmount)
	assert.Nil(t, got.CarriedFrom)
}

func TestCompute_Overspend(t *testing.T) {
	fun := &category.Category{ID: uuid.New(), Name: "Fun"}

	in := budget.Inputs{
		Month:      monthOf(2024, time.May),
		Categories: []*category.Category{fun},
		Budgets: []*budget.MonthlyBudget{
			{CategoryID: fun.ID, Month: monthOf(2024, time.May), Amount: 200},
		},
		PriorBudgets: []*budget.MonthlyBudget{
			{CategoryID: fun.ID, Month: monthOf(2024, time.April), Amount: 200},
		},
		PriorSpends: []*spend.Spend{{CategoryID: fun.ID, Amount: 350}},
	}

	got := budget.Compute(in)[0]
	assert.Equal(t, int64(-150), got.RolloverAmount)
	assert.Equal(t, int64(50), got.EffectiveAmount)
}

func TestCompute_RecurringFallback(t *testing.T) {
	rent := &category.Category{ID: uuid.New(), Name: "Rent", Recurring: true}
	target := int64(6000)

	in := budget.Inputs{
		Month:      monthOf(2024, time.March),
		Categories: []*category.Category{rent},
		History: []*budget.MonthlyBudget{
			{ID: uuid.New(), CategoryID: rent.ID, Month: monthOf(2024, time.January), Amount: 500, TargetAmount: &target},
		},
	}

	lines := budget.Compute(in)
	require.Len(t, lines, 1)

	got := lines[0]
	assert.True(t, got.Synthesized())
	assert.Equal(t, uuid.Nil, got.ID)
	assert.Equal(t, int64(500), got.Amount)
	assert.Equal(t, &target, got.TargetAmount)
	assert.Equal(t, monthOf(2024, time.March), got.Month)
	require.NotNil(t, got.CarriedFrom)
	assert.Equal(t, monthOf(2024, time.January), *got.CarriedFrom)
	assert.Equal(t, int64(0), got.RolloverAmount)
	assert.Equal(t, int64(500), got.EffectiveAmount)
}

func TestCompute_Fallback(t *testing.T) {
	recurring := &category.Category{ID: uuid.New(), Name: "Rent", Recurring: true}
	oneOff := &category.Category{ID: uuid.New(), Name: "Gifts"}

	type testCase struct {
		name       string
		in         budget.Inputs
		wantLen    int
		wantAmount int64
	}

	tests := []testCase{
		{
			name: "ExplicitRowWins",
			in: budget.Inputs{
				Month:      monthOf(2024, time.March),
				Categories: []*category.Category{recurring},
				Budgets: []*budget.MonthlyBudget{
					{CategoryID: recurring.ID, Month: monthOf(2024, time.March), Amount: 700},
				},
				History: []*budget.MonthlyBudget{
					{CategoryID: recurring.ID, Month: monthOf(2024, time.March), Amount: 700},
				},
			},
			wantLen:    1,
			wantAmount: 700,
		},
		{
			name: "NonRecurringIgnored",
			in: budget.Inputs{
				Month:      monthOf(2024, time.March),
				Categories: []*category.Category{oneOff},
				History: []*budget.MonthlyBudget{
					{CategoryID: oneOff.ID, Month: monthOf(2024, time.January), Amount: 300},
				},
			},
			wantLen: 0,
		},
		{
			name: "NoHistory",
			in: budget.Inputs{
				Month:      monthOf(2024, time.March),
				Categories: []*category.Category{recurring},
			},
			wantLen: 0,
		},
		{
			name: "FutureRowsIgnored",
			in: budget.Inputs{
				Month:      monthOf(2024, time.March),
				Categories: []*category.Category{recurring},
				History: []*budget.MonthlyBudget{
					{CategoryID: recurring.ID, Month: monthOf(2024, time.June), Amount: 900},
					{CategoryID: recurring.ID, Month: monthOf(2024, time.February), Amount: 400},
					{CategoryID: recurring.ID, Month: monthOf(2023, time.December), Amount: 100},
				},
			},
			wantLen:    1,
			wantAmount: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := budget.Compute(tt.in)
			require.Len(t, lines, tt.wantLen)

			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantAmount, lines[0].Amount)
			}
		})
	}
}

func TestCompute_SortedByCategoryName(t *testing.T) {
	a := &category.Category{ID: uuid.New(), Name: "Utilities"}
	b := &category.Category{ID: uuid.New(), Name: "Groceries", Recurring: true}
	c := &category.Category{ID: uuid.New(), Name: "Rent"}
	m := monthOf(2024, time.March)

	in := budget.Inputs{
		Month:      m,
		Categories: []*category.Category{a, b, c},
		Budgets: []*budget.MonthlyBudget{
			{CategoryID: a.ID, Month: m, Amount: 1},
			{CategoryID: c.ID, Month: m, Amount: 2},
		},
		History: []*budget.MonthlyBudget{
			{CategoryID: b.ID, Month: monthOf(2024, time.January), Amount: 3},
		},
	}

	lines := budget.Compute(in)
	require.Len(t, lines, 3)

	names := []string{lines[0].CategoryName, lines[1].CategoryName, lines[2].CategoryName}
	assert.Equal(t, []string{"Groceries", "Rent", "Utilities"}, names)
}

func TestCompute_DoesNotMutateInputs(t *testing.T) {
	c := &category.Category{ID: uuid.New(), Name: "Food"}
	stored := &budget.MonthlyBudget{ID: uuid.New(), CategoryID: c.ID, Month: monthOf(2024, time.March), Amount: 100}

	in := budget.Inputs{
		Month:        monthOf(2024, time.March),
		Categories:   []*category.Category{c},
		Budgets:      []*budget.MonthlyBudget{stored},
		PriorBudgets: []*budget.MonthlyBudget{{CategoryID: c.ID, Amount: 50}},
	}

	lines := budget.Compute(in)
	lines[0].Amount = 999

	assert.Equal(t, int64(100), stored.Amount)
}
