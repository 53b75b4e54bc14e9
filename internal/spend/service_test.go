package spend_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/budgeter/internal/apperr"
	"github.com/MrJamesThe3rd/budgeter/internal/category"
	"github.com/MrJamesThe3rd/budgeter/internal/payee"
	"github.com/MrJamesThe3rd/budgeter/internal/spend"
)

func TestService_Create(t *testing.T) {
	groceries := &category.Category{ID: uuid.New(), Name: "Groceries"}
	shopping := &category.Category{ID: uuid.New(), Name: "Shopping"}

	matcher := payee.NewMatcher(
		[]*payee.Rule{{ID: uuid.New(), MatchText: "amzn", CategoryID: shopping.ID, CreatedAt: time.Now()}},
		[]*payee.Rename{{ID: uuid.New(), MatchText: "amzn", RenameTo: "Amazon", CreatedAt: time.Now()}},
	)

	spentAt := time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC)

	type args struct {
		params spend.CreateParams
	}

	type testCase struct {
		name         string
		args         args
		setupMock    func(repo *spend.MockRepository, categories *spend.MockCategoryGetter, payees *spend.MockMatcherSource)
		wantCategory uuid.UUID
		wantDisplay  *string
		wantErr      error
	}

	tests := []testCase{
		{
			name: "ExplicitCategory",
			args: args{
				params: spend.CreateParams{
					CategoryID: &groceries.ID,
					Amount:     1250,
					SpentAt:    spentAt,
					Notes:      "  weekly shop ",
				},
			},
			setupMock: func(repo *spend.MockRepository, categories *spend.MockCategoryGetter, payees *spend.MockMatcherSource) {
				payees.EXPECT().Matcher(gomock.Any()).Return(matcher, nil)
				categories.EXPECT().Get(gomock.Any(), groceries.ID).Return(groceries, nil)
				repo.EXPECT().
					CreateSpend(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, s *spend.Spend) error {
						if assert.NotNil(t, s.Notes) {
							assert.Equal(t, "weekly shop", *s.Notes)
						}
						s.ID = uuid.New()
						return nil
					})
			},
			wantCategory: groceries.ID,
		},
		{
			name: "ExplicitCategoryStillRenamesPayee",
			args: args{
				params: spend.CreateParams{
					CategoryID: &groceries.ID,
					Amount:     450,
					SpentAt:    spentAt,
					PayeeName:  "AMZN Fresh",
				},
			},
			setupMock: func(repo *spend.MockRepository, categories *spend.MockCategoryGetter, payees *spend.MockMatcherSource) {
				payees.EXPECT().Matcher(gomock.Any()).Return(matcher, nil).Times(1)
				categories.EXPECT().Get(gomock.Any(), groceries.ID).Return(groceries, nil)
				repo.EXPECT().CreateSpend(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantCategory: groceries.ID,
			wantDisplay:  new("Amazon"),
		},
		{
			name: "CategoryFromPayeeRule",
			args: args{
				params: spend.CreateParams{
					Amount:    999,
					SpentAt:   spentAt,
					PayeeName: "AMZN Mktp EU",
				},
			},
			setupMock: func(repo *spend.MockRepository, categories *spend.MockCategoryGetter, payees *spend.MockMatcherSource) {
				payees.EXPECT().Matcher(gomock.Any()).Return(matcher, nil)
				categories.EXPECT().Get(gomock.Any(), shopping.ID).Return(shopping, nil)
				repo.EXPECT().CreateSpend(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantCategory: shopping.ID,
			wantDisplay:  new("Amazon"),
		},
		{
			name: "NoCategoryNoRule",
			args: args{
				params: spend.CreateParams{
					Amount:    100,
					SpentAt:   spentAt,
					PayeeName: "Corner Cafe",
				},
			},
			setupMock: func(_ *spend.MockRepository, _ *spend.MockCategoryGetter, payees *spend.MockMatcherSource) {
				payees.EXPECT().Matcher(gomock.Any()).Return(matcher, nil)
			},
			wantErr: apperr.ErrMissingReference,
		},
		{
			name: "UnknownCategory",
			args: args{
				params: spend.CreateParams{
					CategoryID: &groceries.ID,
					Amount:     100,
					SpentAt:    spentAt,
				},
			},
			setupMock: func(_ *spend.MockRepository, categories *spend.MockCategoryGetter, payees *spend.MockMatcherSource) {
				payees.EXPECT().Matcher(gomock.Any()).Return(matcher, nil)
				categories.EXPECT().Get(gomock.Any(), groceries.ID).Return(nil, category.ErrNotFound)
			},
			wantErr: apperr.ErrMissingReference,
		},
		{
			name: "NegativeAmount",
			args: args{
				params: spend.CreateParams{
					CategoryID: &groceries.ID,
					Amount:     -5,
					SpentAt:    spentAt,
				},
			},
			wantErr: apperr.ErrValidation,
		},
		{
			name: "MissingDate",
			args: args{
				params: spend.CreateParams{
					CategoryID: &groceries.ID,
					Amount:     5,
				},
			},
			wantErr: apperr.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := spend.NewMockRepository(ctrl)
			categories := spend.NewMockCategoryGetter(ctrl)
			payees := spend.NewMockMatcherSource(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(repo, categories, payees)
			}

			svc := spend.NewService(repo, categories, payees)
			got, err := svc.Create(context.Background(), tt.args.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantCategory, got.CategoryID)
			assert.Equal(t, tt.wantDisplay, got.PayeeDisplay)
		})
	}
}

func TestService_ListMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := spend.NewMockRepository(ctrl)
	payees := spend.NewMockMatcherSource(ctrl)

	m := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	raw := "UBER *TRIP"

	repo.EXPECT().
		ListSpends(gomock.Any(), spend.ListFilter{Start: m, End: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}).
		Return([]*spend.Spend{
			{ID: uuid.New(), PayeeName: &raw},
			{ID: uuid.New()},
		}, nil)
	payees.EXPECT().
		Matcher(gomock.Any()).
		Return(payee.NewMatcher(nil, []*payee.Rename{{MatchText: "uber", RenameTo: "Uber"}}), nil)

	svc := spend.NewService(repo, nil, payees)

	got, err := svc.ListMonth(context.Background(), m)
	require.NoError(t, err)
	require.Len(t, got, 2)

	require.NotNil(t, got[0].PayeeDisplay)
	assert.Equal(t, "Uber", *got[0].PayeeDisplay)
	assert.Equal(t, raw, *got[0].PayeeName)
	assert.Nil(t, got[1].PayeeDisplay)
}

func TestService_ListMonth_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := spend.NewMockRepository(ctrl)
	repo.EXPECT().ListSpends(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))

	svc := spend.NewService(repo, nil, nil)

	got, err := svc.ListMonth(context.Background(), time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
	assert.Error(t, err)
	assert.Nil(t, got)
}
