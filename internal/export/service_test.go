package export

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/budgeter/internal/month"
	"github.com/MrJamesThe3rd/budgeter/internal/payee"
	"github.com/MrJamesThe3rd/budgeter/internal/spend"
)

type fakeSpends struct {
	listRangeFunc func(ctx context.Context, r month.Range) ([]*spend.Spend, error)
}

func (f *fakeSpends) ListRange(ctx context.Context, r month.Range) ([]*spend.Spend, error) {
	return f.listRangeFunc(ctx, r)
}

type fakePayees struct {
	matcher *payee.Matcher
}

func (f *fakePayees) Matcher(context.Context) (*payee.Matcher, error) {
	return f.matcher, nil
}

func ptr(s string) *string { return &s }

func TestService_Export(t *testing.T) {
	var gotRange month.Range

	spends := &fakeSpends{
		listRangeFunc: func(_ context.Context, r month.Range) ([]*spend.Spend, error) {
			gotRange = r
			return []*spend.Spend{
				{ID: uuid.New(), CategoryName: "Shopping", Amount: 4599, SpentAt: time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC), PayeeName: ptr("AMZN Mktp")},
				{ID: uuid.New(), CategoryName: "Food", Amount: 1250, SpentAt: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), Notes: ptr("lunch, with team")},
			}, nil
		},
	}

	payees := &fakePayees{
		matcher: payee.NewMatcher(nil, []*payee.Rename{{ID: uuid.New(), MatchText: "amzn", RenameTo: "Amazon"}}),
	}

	svc := NewService(spends, payees)

	r, got, err := svc.Export(context.Background(), "2024-01", "2024-02")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), gotRange.Start)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), gotRange.End)
	assert.Equal(t, "spends_2024-01_2024-02.csv", Filename(r))

	require.Len(t, got, 2)
	assert.Equal(t, "Food", got[0].CategoryName, "oldest first")

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, got))

	want := "date,category,payee,payee_display,amount,notes,recurring\n" +
		"2024-01-03,Food,,,1250,\"lunch, with team\",false\n" +
		"2024-02-20,Shopping,AMZN Mktp,Amazon,4599,,false\n"
	assert.Equal(t, want, buf.String())
}

func TestService_Export_Errors(t *testing.T) {
	boom := errors.New("boom")

	svc := NewService(&fakeSpends{
		listRangeFunc: func(context.Context, month.Range) ([]*spend.Spend, error) { return nil, boom },
	}, &fakePayees{})

	_, _, err := svc.Export(context.Background(), "2024-01", "2024-02")
	assert.ErrorIs(t, err, boom)

	_, _, err = svc.Export(context.Background(), "2024-03", "2024-02")
	assert.ErrorIs(t, err, month.ErrInvalidRange)
}
