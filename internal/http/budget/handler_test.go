package budget_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/budgeter/internal/budget"
	"github.com/MrJamesThe3rd/budgeter/internal/category"
	budgetHandler "github.com/MrJamesThe3rd/budgeter/internal/http/budget"
	"github.com/MrJamesThe3rd/budgeter/internal/month"
	"github.com/MrJamesThe3rd/budgeter/internal/spend"
)

type mocks struct {
	repo       *budget.MockRepository
	categories *budget.MockCategoryLister
	spends     *budget.MockSpendLister
}

func newRouter(t *testing.T) (http.Handler, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		repo:       budget.NewMockRepository(ctrl),
		categories: budget.NewMockCategoryLister(ctrl),
		spends:     budget.NewMockSpendLister(ctrl),
	}

	r := chi.NewRouter()
	r.Route("/budgets", budgetHandler.NewHandler(budget.NewService(m.repo, m.categories, m.spends)).Routes)

	return r, m
}

var (
	jan = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	feb = time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
)

type line struct {
	ID              string  `json:"id"`
	Month           string  `json:"month"`
	Source          string  `json:"source"`
	CarriedFrom     *string `json:"carriedFrom"`
	TargetAmount    *int64  `json:"targetAmount"`
	RolloverAmount  int64   `json:"rolloverAmount"`
	EffectiveAmount int64   `json:"effectiveAmount"`
}

func TestHandler_List(t *testing.T) {
	rent := &category.Category{ID: uuid.New(), Name: "Rent", Recurring: true}

	router, m := newRouter(t)
	m.categories.EXPECT().List(gomock.Any()).Return([]*category.Category{rent}, nil)
	m.repo.EXPECT().ListBudgets(gomock.Any(), feb).Return(nil, nil)
	m.repo.EXPECT().LatestBudgets(gomock.Any(), feb).Return([]*budget.MonthlyBudget{
		{ID: uuid.New(), CategoryID: rent.ID, Month: jan, Amount: 800},
	}, nil)
	m.repo.EXPECT().ListBudgets(gomock.Any(), jan).Return([]*budget.MonthlyBudget{
		{ID: uuid.New(), CategoryID: rent.ID, Month: jan, Amount: 800},
	}, nil)
	m.spends.EXPECT().ListRange(gomock.Any(), month.Single(jan)).Return([]*spend.Spend{
		{CategoryID: rent.ID, Amount: 700},
	}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/budgets/?month=2024-02", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var got []line
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)

	assert.Equal(t, "recurring-"+rent.ID.String(), got[0].ID)
	assert.Equal(t, "2024-02", got[0].Month)
	assert.Equal(t, "recurring", got[0].Source)
	require.NotNil(t, got[0].CarriedFrom)
	assert.Equal(t, "2024-01", *got[0].CarriedFrom)
	assert.Equal(t, int64(100), got[0].RolloverAmount)
	assert.Equal(t, int64(900), got[0].EffectiveAmount)
}

func TestHandler_Upsert(t *testing.T) {
	food := &category.Category{ID: uuid.New(), Name: "Food"}

	type args struct {
		body string
	}

	type testCase struct {
		name       string
		args       args
		wantWrite  *budget.UpsertBudgetParams
		wantStatus int
	}

	tests := []testCase{
		{
			name: "AmountOnlyKeepsTarget",
			args: args{body: `{"categoryId":"` + food.ID.String() + `","month":"2024-02","amount":500}`},
			wantWrite: &budget.UpsertBudgetParams{
				CategoryID: food.ID, Month: feb, Amount: 500, SetAmount: true,
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "NullClearsTarget",
			args: args{body: `{"categoryId":"` + food.ID.String() + `","month":"2024-02","targetAmount":null}`},
			wantWrite: &budget.UpsertBudgetParams{
				CategoryID: food.ID, Month: feb, SetTarget: true,
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "SetTarget",
			args: args{body: `{"categoryId":"` + food.ID.String() + `","month":"2024-02","targetAmount":9000}`},
			wantWrite: &budget.UpsertBudgetParams{
				CategoryID: food.ID, Month: feb, TargetAmount: new(int64(9000)), SetTarget: true,
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "TargetNotANumber",
			args:       args{body: `{"categoryId":"` + food.ID.String() + `","targetAmount":"lots"}`},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "BadMonth",
			args:       args{body: `{"categoryId":"` + food.ID.String() + `","month":"Feb"}`},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newRouter(t)

			if tt.wantWrite != nil {
				m.categories.EXPECT().Get(gomock.Any(), food.ID).Return(food, nil)
				m.repo.EXPECT().UpsertBudget(gomock.Any(), *tt.wantWrite).Return(&budget.MonthlyBudget{
					ID:           uuid.New(),
					CategoryID:   food.ID,
					Month:        feb,
					Amount:       tt.wantWrite.Amount,
					TargetAmount: tt.wantWrite.TargetAmount,
				}, nil)
				m.repo.EXPECT().ListBudgets(gomock.Any(), jan).Return(nil, nil)
				m.spends.EXPECT().ListRange(gomock.Any(), month.Single(jan)).Return(nil, nil)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/budgets/", strings.NewReader(tt.args.body)))

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
