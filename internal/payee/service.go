package payee

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/budgeter/internal/apperr"
	"github.com/MrJamesThe3rd/budgeter/internal/category"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=payee
type Repository interface {
	ListRules(ctx context.Context) ([]*Rule, error)
	CreateRule(ctx context.Context, r *Rule) error
	DeleteRule(ctx context.Context, id uuid.UUID) error

	ListRenames(ctx context.Context) ([]*Rename, error)
	CreateRename(ctx context.Context, r *Rename) error
	DeleteRename(ctx context.Context, id uuid.UUID) error
}

type CategoryGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*category.Category, error)
}

type Service struct {
	repo       Repository
	categories CategoryGetter
}

func NewService(repo Repository, categories CategoryGetter) *Service {
	return &Service{repo: repo, categories: categories}
}

// ListRules returns the rules newest first.
func (s *Service) ListRules(ctx context.Context) ([]*Rule, error) {
	return s.repo.ListRules(ctx)
}

func (s *Service) CreateRule(ctx context.Context, matchText string, categoryID uuid.UUID) (*Rule, error) {
	matchText = strings.TrimSpace(matchText)
	if matchText == "" {
		return nil, apperr.Invalid("matchText", "is required")
	}

	if categoryID == uuid.Nil {
		return nil, apperr.Invalid("categoryId", "is required")
	}

	c, err := s.categories.Get(ctx, categoryID)
	if err != nil {
		if errors.Is(err, category.ErrNotFound) {
			return nil, fmt.Errorf("category %s: %w", categoryID, apperr.ErrMissingReference)
		}

		return nil, fmt.Errorf("resolving category: %w", err)
	}

	r := &Rule{
		MatchText:    matchText,
		CategoryID:   c.ID,
		CategoryName: c.Name,
	}
	if err := s.repo.CreateRule(ctx, r); err != nil {
		return nil, err
	}

	return r, nil
}

func (s *Service) DeleteRule(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteRule(ctx, id)
}

// ListRenames returns the renames newest first.
func (s *Service) ListRenames(ctx context.Context) ([]*Rename, error) {
	return s.repo.ListRenames(ctx)
}

func (s *Service) CreateRename(ctx context.Context, matchText, renameTo string) (*Rename, error) {
	matchText = strings.TrimSpace(matchText)
	if matchText == "" {
		return nil, apperr.Invalid("matchText", "is required")
	}

	renameTo = strings.TrimSpace(renameTo)
	if renameTo == "" {
		return nil, apperr.Invalid("renameTo", "is required")
	}

	r := &Rename{
		MatchText: matchText,
		RenameTo:  renameTo,
	}
	if err := s.repo.CreateRename(ctx, r); err != nil {
		return nil, err
	}

	return r, nil
}

func (s *Service) DeleteRename(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteRename(ctx, id)
}

// Matcher snapshots the current rules and renames.
func (s *Service) Matcher(ctx context.Context) (*Matcher, error) {
	rules, err := s.repo.ListRules(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading payee rules: %w", err)
	}

	renames, err := s.repo.ListRenames(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading payee renames: %w", err)
	}

	return NewMatcher(rules, renames), nil
}
