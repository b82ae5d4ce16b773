package ingredient

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/osse101/Foodgram_Go/internal/domain"
	"github.com/osse101/Foodgram_Go/internal/repository"
)

// Service exposes the read side of the ingredient catalog
type Service interface {
	Search(ctx context.Context, prefix string) ([]domain.Ingredient, error)
	Get(ctx context.Context, id int64) (*domain.Ingredient, error)
}

type service struct {
	repo repository.Ingredient
}

// NewService creates a new ingredient service
func NewService(repo repository.Ingredient) Service {
	return &service{repo: repo}
}

// Search returns catalog entries whose name starts with prefix, ignoring case
func (s *service) Search(ctx context.Context, prefix string) ([]domain.Ingredient, error) {
	items, err := s.repo.SearchIngredients(ctx, strings.TrimSpace(prefix))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgSearchFailed, err)
	}
	if items == nil {
		items = []domain.Ingredient{}
	}
	return items, nil
}

func (s *service) Get(ctx context.Context, id int64) (*domain.Ingredient, error) {
	if id <= 0 {
		return nil, domain.ErrIngredientNotFound
	}
	item, err := s.repo.GetIngredientByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrIngredientNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf(ErrMsgGetFailed, err)
	}
	return item, nil
}
