package month_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/budgeter/internal/month"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestParse(t *testing.T) {
	type testCase struct {
		name    string
		token   string
		want    time.Time
		wantErr error
	}

	tests := []testCase{
		{name: "Valid", token: "2024-03", want: date(2024, 3, 1)},
		{name: "December", token: "1999-12", want: date(1999, 12, 1)},
		{name: "MonthThirteen", token: "2024-13", wantErr: month.ErrInvalidMonth},
		{name: "MonthZero", token: "2024-00", wantErr: month.ErrInvalidMonth},
		{name: "Garbage", token: "abc", wantErr: month.ErrInvalidMonth},
		{name: "SingleDigitMonth", token: "2024-3", wantErr: month.ErrInvalidMonth},
		{name: "TrailingDay", token: "2024-03-01", wantErr: month.ErrInvalidMonth},
		{name: "Empty", token: "", wantErr: month.ErrInvalidMonth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := month.Parse(tt.token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got))
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParse_FormatRoundTrip(t *testing.T) {
	for _, token := range []string{"0001-01", "1970-01", "2024-02", "2024-12", "9999-12"} {
		got, err := month.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, token, month.Format(got))
	}
}

func TestParseOrCurrent(t *testing.T) {
	now := time.Date(2024, 7, 31, 23, 30, 0, 0, time.FixedZone("x", -5*3600))

	got, err := month.ParseOrCurrent("", now)
	require.NoError(t, err)
	// 23:30 at UTC-5 is already August in UTC.
	assert.Equal(t, "2024-08", month.Format(got))

	got, err = month.ParseOrCurrent("2023-01", now)
	require.NoError(t, err)
	assert.Equal(t, date(2023, 1, 1), got)

	_, err = month.ParseOrCurrent("nope", now)
	assert.ErrorIs(t, err, month.ErrInvalidMonth)
}

func TestFormat_PadsMonth(t *testing.T) {
	assert.Equal(t, "2024-03", month.Format(date(2024, 3, 17)))
	assert.Equal(t, "2024-03", month.Format(time.Date(2024, 3, 31, 23, 0, 0, 0, time.UTC)))
}

func TestAdd(t *testing.T) {
	type testCase struct {
		name string
		from time.Time
		n    int
		want time.Time
	}

	tests := []testCase{
		{name: "Zero", from: date(2024, 5, 1), n: 0, want: date(2024, 5, 1)},
		{name: "Forward", from: date(2024, 5, 1), n: 2, want: date(2024, 7, 1)},
		{name: "IntoNextYear", from: date(2024, 12, 1), n: 1, want: date(2025, 1, 1)},
		{name: "Backward", from: date(2024, 1, 1), n: -1, want: date(2023, 12, 1)},
		{name: "ManyYears", from: date(2024, 3, 1), n: -27, want: date(2021, 12, 1)},
		{name: "MidMonthInput", from: date(2024, 1, 31), n: 1, want: date(2024, 2, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, month.Add(tt.from, tt.n))
		})
	}
}

func TestAdd_RoundTrip(t *testing.T) {
	d := date(2024, 2, 1)
	for n := -40; n <= 40; n++ {
		assert.Equal(t, d, month.Add(month.Add(d, n), -n), "n=%d", n)
	}
}

func TestParseRange(t *testing.T) {
	now := date(2024, 6, 15)

	r, err := month.ParseRange("2024-01", "2024-03", now)
	require.NoError(t, err)
	assert.Equal(t, date(2024, 1, 1), r.Start)
	assert.Equal(t, date(2024, 4, 1), r.End)
	assert.Len(t, r.Months(), 3)

	r, err = month.ParseRange("2024-02", "2024-02", now)
	require.NoError(t, err)
	assert.Equal(t, []time.Time{date(2024, 2, 1)}, r.Months())

	r, err = month.ParseRange("", "", now)
	require.NoError(t, err)
	assert.Equal(t, month.Single(now), r)

	_, err = month.ParseRange("2024-04", "2024-03", now)
	assert.ErrorIs(t, err, month.ErrInvalidRange)

	_, err = month.ParseRange("2024-13", "2024-03", now)
	assert.ErrorIs(t, err, month.ErrInvalidMonth)

	_, err = month.ParseRange("2024-01", "abc", now)
	assert.ErrorIs(t, err, month.ErrInvalidMonth)
}

func TestRange_MonthsAcrossYear(t *testing.T) {
	r := month.Range{Start: date(2023, 11, 1), End: date(2024, 3, 1)}

	var tokens []string
	for _, m := range r.Months() {
		tokens = append(tokens, month.Format(m))
	}

	assert.Equal(t, []string{"2023-11", "2023-12", "2024-01", "2024-02"}, tokens)
}

func TestRange_Contains(t *testing.T) {
	r := month.Single(date(2024, 2, 1))

	assert.True(t, r.Contains(date(2024, 2, 1)))
	assert.True(t, r.Contains(time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC)))
	assert.False(t, r.Contains(date(2024, 3, 1)))
	assert.False(t, r.Contains(date(2024, 1, 31)))
}
