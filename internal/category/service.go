package category

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/budgeter/internal/apperr"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=category
type Repository interface {
	CreateCategory(ctx context.Context, c *Category) error
	GetCategory(ctx context.Context, id uuid.UUID) (*Category, error)
	ListCategories(ctx context.Context) ([]*Category, error)
	SetRecurring(ctx context.Context, id uuid.UUID, recurring bool) (*Category, error)

	// DeleteCategory removes the category together with its budgets and payee rules.
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name      string
	Recurring bool
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Category, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, apperr.Invalid("name", "is required")
	}

	c := &Category{
		Name:      name,
		Recurring: params.Recurring,
	}
	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

// List returns all categories, oldest first.
func (s *Service) List(ctx context.Context) ([]*Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Category, error) {
	return s.repo.GetCategory(ctx, id)
}

func (s *Service) SetRecurring(ctx context.Context, id uuid.UUID, recurring bool) (*Category, error) {
	return s.repo.SetRecurring(ctx, id, recurring)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteCategory(ctx, id)
}
