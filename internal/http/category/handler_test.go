package category_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/budgeter/internal/category"
	categoryHandler "github.com/MrJamesThe3rd/budgeter/internal/http/category"
)

func newRouter(t *testing.T) (http.Handler, *category.MockRepository) {
	repo := category.NewMockRepository(gomock.NewController(t))

	r := chi.NewRouter()
	r.Route("/categories", categoryHandler.NewHandler(category.NewService(repo)).Routes)

	return r, repo
}

func TestHandler_Create(t *testing.T) {
	type args struct {
		body string
	}

	type testCase struct {
		name       string
		args       args
		setupMock  func(repo *category.MockRepository)
		wantStatus int
		wantBody   string
	}

	id := uuid.MustParse("6f1c2b9e-3f0a-4c7e-9d55-2b8f4a1e0c11")
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []testCase{
		{
			name: "Created",
			args: args{body: `{"name":" Rent ","recurring":true}`},
			setupMock: func(repo *category.MockRepository) {
				repo.EXPECT().
					CreateCategory(gomock.Any(), &category.Category{Name: "Rent", Recurring: true}).
					DoAndReturn(func(_ context.Context, c *category.Category) error {
						c.ID = id
						c.CreatedAt = created
						return nil
					})
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"id":"` + id.String() + `","name":"Rent","recurring":true,"createdAt":"2024-03-01T10:00:00Z"}`,
		},
		{
			name:       "MissingName",
			args:       args{body: `{"name":"  "}`},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"name is required"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, repo := newRouter(t)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/categories/", strings.NewReader(tt.args.body)))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestHandler_Update(t *testing.T) {
	id := uuid.New()

	router, repo := newRouter(t)
	repo.EXPECT().SetRecurring(gomock.Any(), id, false).Return(&category.Category{ID: id, Name: "Gym"}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/categories/"+id.String(), strings.NewReader(`{"recurring":false}`)))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/categories/"+id.String(), strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/categories/not-a-uuid", strings.NewReader(`{"recurring":true}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Delete(t *testing.T) {
	id := uuid.New()

	router, repo := newRouter(t)
	repo.EXPECT().DeleteCategory(gomock.Any(), id).Return(category.ErrNotFound)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/categories/"+id.String(), nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"category not found"}`, w.Body.String())
}
