package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPeriodPreset_Period(t *testing.T) {
	now := time.Date(2024, 2, 14, 18, 0, 0, 0, time.UTC)

	type testCase struct {
		name     string
		preset   PeriodPreset
		wantFrom string
		wantTo   string
	}

	tests := []testCase{
		{name: "ThisMonth", preset: PresetThisMonth, wantFrom: "2024-02", wantTo: "2024-02"},
		{name: "LastMonth", preset: PresetLastMonth, wantFrom: "2024-01", wantTo: "2024-01"},
		{name: "LastQuarter", preset: PresetLastQuarter, wantFrom: "2023-12", wantTo: "2024-02"},
		{name: "LastYear", preset: PresetLastYear, wantFrom: "2023-03", wantTo: "2024-02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to := tt.preset.Period(now).Tokens()
			assert.Equal(t, tt.wantFrom, from)
			assert.Equal(t, tt.wantTo, to)
		})
	}
}

func TestPeriod_Shift(t *testing.T) {
	p := NewPeriod(time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), 6)
	assert.Equal(t, "2023-08 → 2024-01", p.String())

	p = p.Shift(1)
	assert.Equal(t, "2023-09 → 2024-02", p.String())

	assert.Equal(t, "2024-01", NewPeriod(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), 0).String())
}
